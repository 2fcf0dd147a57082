// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "github.com/pdiddy/orcaconv/pkg/types"

// paramMaps is the per-profile-type dictionary from source parameter name to
// target key(s). A parameter mapping to more than one key fans the same
// converted value out to every listed key. Conversion iterates the source
// profile's own keys and ignores anything not present here; the detector
// counts hits against these same maps.
var paramMaps = map[types.ProfileType]map[string][]string{
	types.TypePrint:           printParams,
	types.TypeFilament:        filamentParams,
	types.TypePrinter:         printerParams,
	types.TypePhysicalPrinter: physicalPrinterParams,
}

var printParams = map[string][]string{
	"layer_height":               {"layer_height"},
	"first_layer_height":         {"initial_layer_print_height"},
	"perimeters":                 {"wall_loops"},
	"top_solid_layers":           {"top_shell_layers"},
	"bottom_solid_layers":        {"bottom_shell_layers"},
	"top_solid_min_thickness":    {"top_shell_thickness"},
	"bottom_solid_min_thickness": {"bottom_shell_thickness"},
	"fill_density":               {"sparse_infill_density"},
	"fill_pattern":               {"sparse_infill_pattern"},
	"top_fill_pattern":           {"top_surface_pattern"},
	"bottom_fill_pattern":        {"bottom_surface_pattern"},
	"solid_fill_pattern":         {"internal_solid_infill_pattern"},
	"fill_angle":                 {"infill_direction"},
	"infill_every_layers":        {"infill_combination"},
	"infill_anchor":              {"sparse_infill_anchor"},
	"infill_anchor_max":          {"sparse_infill_anchor_max"},
	"infill_overlap":             {"infill_wall_overlap"},
	"bridge_flow_ratio":          {"bridge_flow"},
	"fill_top_flow_ratio":        {"top_solid_infill_flow_ratio"},
	"first_layer_flow_ratio":     {"initial_layer_flow_ratio"},
	"bridge_angle":               {"bridge_angle"},

	"extrusion_width":                    {"line_width"},
	"first_layer_extrusion_width":        {"initial_layer_line_width"},
	"external_perimeter_extrusion_width": {"outer_wall_line_width"},
	"perimeter_extrusion_width":          {"inner_wall_line_width"},
	"infill_extrusion_width":             {"sparse_infill_line_width"},
	"solid_infill_extrusion_width":       {"internal_solid_infill_line_width"},
	"top_infill_extrusion_width":         {"top_surface_line_width"},
	"support_material_extrusion_width":   {"support_line_width"},

	"perimeter_speed":                  {"inner_wall_speed"},
	"external_perimeter_speed":         {"outer_wall_speed"},
	"solid_infill_speed":               {"internal_solid_infill_speed"},
	"infill_speed":                     {"sparse_infill_speed"},
	"small_perimeter_speed":            {"small_perimeter_speed"},
	"top_solid_infill_speed":           {"top_surface_speed"},
	"gap_fill_speed":                   {"gap_infill_speed"},
	"support_material_speed":           {"support_speed"},
	"support_material_interface_speed": {"support_interface_speed"},
	"bridge_speed":                     {"bridge_speed"},
	"first_layer_speed":                {"initial_layer_speed"},
	"first_layer_infill_speed":         {"initial_layer_infill_speed"},
	"travel_speed":                     {"travel_speed"},
	"small_perimeter_min_length":       {"small_perimeter_threshold"},

	"perimeter_acceleration":          {"inner_wall_acceleration"},
	"external_perimeter_acceleration": {"outer_wall_acceleration"},
	"infill_acceleration":             {"sparse_infill_acceleration"},
	"solid_infill_acceleration":       {"internal_solid_infill_acceleration"},
	"top_solid_infill_acceleration":   {"top_surface_acceleration"},
	"first_layer_acceleration":        {"initial_layer_acceleration"},
	"bridge_acceleration":             {"bridge_acceleration"},
	"default_acceleration":            {"default_acceleration"},
	"travel_acceleration":             {"travel_acceleration"},

	"external_perimeters_first":      {"wall_infill_order"},
	"infill_first":                   {"wall_infill_order"},
	"ironing":                        {"ironing_type"},
	"ironing_type":                   {"ironing_type"},
	"ironing_flowrate":               {"ironing_flow"},
	"ironing_spacing":                {"ironing_spacing"},
	"ironing_speed":                  {"ironing_speed"},
	"enable_dynamic_overhang_speeds": {"enable_overhang_speed"},

	"seam_position":           {"seam_position"},
	"staggered_inner_seams":   {"staggered_inner_seams"},
	"perimeter_generator":     {"wall_generator"},
	"thin_walls":              {"detect_thin_wall"},
	"overhangs":               {"detect_overhang_wall"},
	"fuzzy_skin":              {"fuzzy_skin"},
	"fuzzy_skin_point_dist":   {"fuzzy_skin_point_distance"},
	"fuzzy_skin_thickness":    {"fuzzy_skin_thickness"},
	"wall_transition_length":  {"wall_transition_length"},
	"wall_transition_angle":   {"wall_transition_angle"},
	"wall_distribution_count": {"wall_distribution_count"},
	"min_bead_width":          {"min_bead_width"},
	"min_feature_size":        {"min_feature_size"},

	"brim_width":      {"brim_width"},
	"brim_type":       {"brim_type"},
	"brim_separation": {"brim_object_gap"},
	"skirts":          {"skirt_loops"},
	"skirt_distance":  {"skirt_distance"},
	"skirt_height":    {"skirt_height"},
	"draft_shield":    {"draft_shield"},

	"raft_layers":                {"raft_layers"},
	"raft_contact_distance":      {"raft_contact_distance"},
	"raft_expansion":             {"raft_expansion"},
	"raft_first_layer_density":   {"raft_first_layer_density"},
	"raft_first_layer_expansion": {"raft_first_layer_expansion"},

	"support_material":                         {"enable_support"},
	"support_material_threshold":               {"support_threshold_angle"},
	"support_material_contact_distance":        {"support_top_z_distance"},
	"support_material_bottom_contact_distance": {"support_bottom_z_distance"},
	"support_material_spacing":                 {"support_base_pattern_spacing"},
	"support_material_xy_spacing":              {"support_object_xy_distance"},
	"support_material_pattern":                 {"support_base_pattern"},
	"support_material_interface_pattern":       {"support_interface_pattern"},
	"support_material_style":                   {"support_style"},
	"support_material_layer_height":            {"independent_support_layer_height"},
	"support_material_interface_layers":        {"support_interface_top_layers"},
	"support_material_bottom_interface_layers": {"support_interface_bottom_layers"},
	"support_material_interface_spacing":       {"support_interface_spacing"},
	"support_material_buildplate_only":         {"support_on_build_plate_only"},
	"support_material_angle":                   {"support_angle"},
	"dont_support_bridges":                     {"bridge_no_support"},

	"avoid_crossing_perimeters":            {"reduce_crossing_wall"},
	"avoid_crossing_perimeters_max_detour": {"max_travel_detour_distance"},
	"xy_size_compensation":                 {"xy_contour_compensation"},
	"elefant_foot_compensation":            {"elefant_foot_compensation"},
	"resolution":                           {"resolution"},
	"complete_objects":                     {"print_sequence"},
	"output_filename_format":               {"filename_format"},
	"notes":                                {"notes"},
	"post_process":                         {"post_process"},

	"wipe_tower":            {"enable_prime_tower"},
	"wipe_tower_width":      {"prime_tower_width"},
	"wipe_tower_brim_width": {"prime_tower_brim_width"},

	"compatible_printers_condition": {"compatible_printers_condition"},
}

var filamentParams = map[string][]string{
	"filament_type":     {"filament_type"},
	"filament_colour":   {"default_filament_colour"},
	"filament_diameter": {"filament_diameter"},
	"filament_density":  {"filament_density"},
	"filament_cost":     {"filament_cost"},
	"filament_vendor":   {"filament_vendor"},
	"filament_soluble":  {"filament_soluble"},
	"filament_shrink":   {"filament_shrink"},
	"filament_notes":    {"filament_notes"},

	"filament_max_volumetric_speed": {"filament_max_volumetric_speed"},

	"temperature":             {"nozzle_temperature"},
	"first_layer_temperature": {"nozzle_temperature_initial_layer"},
	"idle_temperature":        {"idle_temperature"},

	// The source has one bed temperature; the target has one per plate kind.
	"bed_temperature": {
		"cool_plate_temp",
		"eng_plate_temp",
		"hot_plate_temp",
		"textured_plate_temp",
	},
	"first_layer_bed_temperature": {
		"cool_plate_temp_initial_layer",
		"eng_plate_temp_initial_layer",
		"hot_plate_temp_initial_layer",
		"textured_plate_temp_initial_layer",
	},

	"fan_always_on":                {"reduce_fan_stop_start_freq"},
	"cooling":                      {"slow_down_for_layer_cooling"},
	"min_fan_speed":                {"fan_min_speed"},
	"max_fan_speed":                {"fan_max_speed"},
	"bridge_fan_speed":             {"overhang_fan_speed"},
	"external_perimeter_fan_speed": {"overhang_fan_threshold"},
	"min_print_speed":              {"slow_down_min_speed"},
	"slowdown_below_layer_time":    {"slow_down_layer_time"},
	"disable_fan_first_layers":     {"close_fan_the_first_x_layers"},
	"full_fan_speed_layer":         {"full_fan_speed_layer"},

	"filament_retract_length": {"filament_retraction_length"},
	"filament_retract_speed":  {"filament_retraction_speed"},
	"filament_retract_lift":   {"filament_z_hop"},
	"filament_wipe":           {"filament_wipe"},

	"start_filament_gcode": {"filament_start_gcode"},
	"end_filament_gcode":   {"filament_end_gcode"},

	"compatible_printers_condition": {"compatible_printers_condition"},
	"compatible_prints_condition":   {"compatible_prints_condition"},
}

var printerParams = map[string][]string{
	"printer_notes":    {"printer_notes"},
	"printer_model":    {"printer_model"},
	"printer_variant":  {"printer_variant"},
	"nozzle_diameter":  {"nozzle_diameter"},
	"bed_shape":        {"printable_area"},
	"max_print_height": {"printable_height"},
	"z_offset":         {"z_offset"},

	"max_layer_height": {"max_layer_height"},
	"min_layer_height": {"min_layer_height"},

	"retract_length":        {"retraction_length"},
	"retract_speed":         {"retraction_speed"},
	"deretract_speed":       {"deretraction_speed"},
	"retract_lift":          {"z_hop"},
	"retract_lift_above":    {"retract_lift_above"},
	"retract_lift_below":    {"retract_lift_below"},
	"retract_lift_top":      {"retract_lift_enforce"},
	"retract_restart_extra": {"retract_restart_extra"},
	"retract_before_wipe":   {"retract_before_wipe"},
	"retract_before_travel": {"retraction_minimum_travel"},
	"retract_layer_change":  {"retract_when_changing_layer"},
	"wipe":                  {"wipe"},

	"use_relative_e_distances":       {"use_relative_e_distances"},
	"use_firmware_retraction":        {"use_firmware_retraction"},
	"single_extruder_multi_material": {"single_extruder_multi_material"},

	"start_gcode":        {"machine_start_gcode"},
	"end_gcode":          {"machine_end_gcode"},
	"before_layer_gcode": {"before_layer_change_gcode"},
	"layer_gcode":        {"layer_change_gcode"},
	"toolchange_gcode":   {"change_filament_gcode"},
	"pause_print_gcode":  {"machine_pause_gcode"},

	"gcode_flavor":         {"gcode_flavor"},
	"thumbnails":           {"thumbnails"},
	"thumbnails_format":    {"thumbnails_format"},
	"remaining_times":      {"disable_m73"},
	"machine_limits_usage": {"emit_machine_limits_to_gcode"},

	"machine_max_acceleration_e":          {"machine_max_acceleration_e"},
	"machine_max_acceleration_extruding":  {"machine_max_acceleration_extruding"},
	"machine_max_acceleration_retracting": {"machine_max_acceleration_retracting"},
	"machine_max_acceleration_travel":     {"machine_max_acceleration_travel"},
	"machine_max_acceleration_x":          {"machine_max_acceleration_x"},
	"machine_max_acceleration_y":          {"machine_max_acceleration_y"},
	"machine_max_acceleration_z":          {"machine_max_acceleration_z"},
	"machine_max_feedrate_e":              {"machine_max_speed_e"},
	"machine_max_feedrate_x":              {"machine_max_speed_x"},
	"machine_max_feedrate_y":              {"machine_max_speed_y"},
	"machine_max_feedrate_z":              {"machine_max_speed_z"},
	"machine_max_jerk_e":                  {"machine_max_jerk_e"},
	"machine_max_jerk_x":                  {"machine_max_jerk_x"},
	"machine_max_jerk_y":                  {"machine_max_jerk_y"},
	"machine_max_jerk_z":                  {"machine_max_jerk_z"},
	"machine_min_extruding_rate":          {"machine_min_extruding_rate"},
	"machine_min_travel_rate":             {"machine_min_travel_rate"},

	"default_print_profile":    {"default_print_profile"},
	"default_filament_profile": {"default_filament_profile"},
}

var physicalPrinterParams = map[string][]string{
	"host_type":                    {"host_type"},
	"print_host":                   {"print_host"},
	"printhost_apikey":             {"printhost_apikey"},
	"printhost_cafile":             {"printhost_cafile"},
	"printhost_port":               {"printhost_port"},
	"printhost_authorization_type": {"printhost_authorization_type"},
	"printhost_user":               {"printhost_user"},
	"printhost_password":           {"printhost_password"},
	"printhost_ssl_ignore_revoke":  {"printhost_ssl_ignore_revoke"},
	"preset_name":                  {"preset_name"},
}

// firstValueParams are per-extruder vectors in the source that the target
// stores as a single value: split, keep the first element, and run the rest
// of the pipeline on that scalar.
var firstValueParams = map[string]bool{
	"filament_type":                 true,
	"filament_colour":               true,
	"filament_diameter":             true,
	"filament_density":              true,
	"filament_cost":                 true,
	"filament_soluble":              true,
	"filament_shrink":               true,
	"filament_max_volumetric_speed": true,
	"temperature":                   true,
	"first_layer_temperature":       true,
	"idle_temperature":              true,
	"bed_temperature":               true,
	"first_layer_bed_temperature":   true,
	"fan_always_on":                 true,
	"cooling":                       true,
	"min_fan_speed":                 true,
	"max_fan_speed":                 true,
	"bridge_fan_speed":              true,
	"external_perimeter_fan_speed":  true,
	"min_print_speed":               true,
	"slowdown_below_layer_time":     true,
	"disable_fan_first_layers":      true,
	"full_fan_speed_layer":          true,
	"filament_retract_length":       true,
	"filament_retract_speed":        true,
	"filament_retract_lift":         true,
	"filament_wipe":                 true,
	"default_filament_profile":      true,
	"retract_lift_top":              true,
	"max_layer_height":              true,
	"min_layer_height":              true,
}

// arrayParams keep their full element sequence; the split result is the
// converted value and no further per-value rules apply.
var arrayParams = map[string]bool{
	"nozzle_diameter":                     true,
	"retract_length":                      true,
	"retract_speed":                       true,
	"deretract_speed":                     true,
	"retract_lift":                        true,
	"retract_lift_above":                  true,
	"retract_lift_below":                  true,
	"retract_restart_extra":               true,
	"retract_before_wipe":                 true,
	"retract_before_travel":               true,
	"retract_layer_change":                true,
	"wipe":                                true,
	"machine_max_acceleration_e":          true,
	"machine_max_acceleration_extruding":  true,
	"machine_max_acceleration_retracting": true,
	"machine_max_acceleration_travel":     true,
	"machine_max_acceleration_x":          true,
	"machine_max_acceleration_y":          true,
	"machine_max_acceleration_z":          true,
	"machine_max_feedrate_e":              true,
	"machine_max_feedrate_x":              true,
	"machine_max_feedrate_y":              true,
	"machine_max_feedrate_z":              true,
	"machine_max_jerk_e":                  true,
	"machine_max_jerk_x":                  true,
	"machine_max_jerk_y":                  true,
	"machine_max_jerk_z":                  true,
	"machine_min_extruding_rate":          true,
	"machine_min_travel_rate":             true,
}

// gcodeParams carry g-code or free text: strip one layer of surrounding
// double quotes, then decode backslash escapes.
var gcodeParams = map[string]bool{
	"start_gcode":          true,
	"end_gcode":            true,
	"before_layer_gcode":   true,
	"layer_gcode":          true,
	"toolchange_gcode":     true,
	"pause_print_gcode":    true,
	"start_filament_gcode": true,
	"end_filament_gcode":   true,
	"notes":                true,
	"filament_notes":       true,
	"printer_notes":        true,
	"post_process":         true,
}
