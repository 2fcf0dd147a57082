// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"strconv"
	"strings"

	"github.com/pdiddy/orcaconv/pkg/types"
)

// notSet is the source sentinel for a parameter that carries no value.
const notSet = "nil"

// Decision is the operator's answer for a compatibility-condition parameter.
type Decision int

const (
	DecisionUndecided Decision = iota
	DecisionKeep
	DecisionDiscard
)

// Decider is the interactive collaborator consulted for compatibility
// conditions. Decide presents value and returns the operator's choice;
// DecisionUndecided or an error means the prompt was cancelled.
type Decider interface {
	Decide(profile, parameter, value string) (Decision, error)
}

// State is the mutable context threaded through one conversion run. It is
// not safe for concurrent use; callers converting several profiles do so
// sequentially, calling ResetProfile between them. The two decision slots
// survive ResetProfile so an operator's keep/discard answer holds for the
// whole run; ResetDecisions clears them when the answer was per-profile.
type State struct {
	// Type is the active profile type; conversion produces nothing while it
	// is unset or not convertible.
	Type types.ProfileType

	// Flavor is the detected source slicer family.
	Flavor types.Flavor

	// NozzleSize is the nozzle diameter in millimeters, the base for
	// percentage-to-millimeter conversions.
	NozzleSize string

	// ProfileName identifies the profile in prompts.
	ProfileName string

	externalPerimetersFirst bool
	infillFirst             bool
	ironing                 bool
	ironingType             string

	printersCondition Decision
	printsCondition   Decision
}

// ResetProfile clears the per-profile fields between profiles of one run.
func (s *State) ResetProfile() {
	s.externalPerimetersFirst = false
	s.infillFirst = false
	s.ironing = false
	s.ironingType = ""
	s.ProfileName = ""
}

// ResetDecisions clears the sticky keep/discard slots.
func (s *State) ResetDecisions() {
	s.printersCondition = DecisionUndecided
	s.printsCondition = DecisionUndecided
}

// Engine converts source parameters to target values. The zero value works
// for non-interactive use; set Decider to handle compatibility conditions.
type Engine struct {
	Decider Decider
}

// Convert produces the target value(s) for one source parameter. The second
// return is false when the parameter contributes nothing to the output from
// this call: missing or sentinel values, unresolvable profile types,
// combination flags (recorded in st) and fan-out parameters (written
// straight into out). The returned value is a string or, for array-valued
// parameters, a []string.
func (e *Engine) Convert(name string, src types.SourceProfile, st *State, out types.OutputProfile) (any, bool) {
	value, ok := src.Get(name)
	if !ok {
		return nil, false
	}
	// A blank extrusion width means auto and still converts; every other
	// blank parameter contributes nothing.
	if value == "" && name != "extrusion_width" {
		return nil, false
	}
	if value == notSet {
		return nil, false
	}

	if arrayParams[name] {
		return multivalueToArray(value), true
	}
	if firstValueParams[name] {
		parts := multivalueToArray(value)
		if len(parts) == 0 {
			value = ""
		} else {
			value = parts[0]
		}
	}

	if !st.Type.Convertible() {
		return nil, false
	}

	if targets := paramMaps[st.Type][name]; len(targets) > 1 {
		for _, t := range targets {
			out[t] = value
		}
		return nil, false
	}

	// Combination flags only update state; the print post-processor folds
	// them into the output.
	switch name {
	case "external_perimeters_first":
		st.externalPerimetersFirst = truthy(value)
		return nil, false
	case "infill_first":
		st.infillFirst = truthy(value)
		return nil, false
	case "ironing":
		st.ironing = truthy(value)
		return nil, false
	}

	return e.convertSpecial(name, value, src, st, out)
}

// convertSpecial applies the per-parameter rules; anything without a rule
// passes through unchanged.
func (e *Engine) convertSpecial(name, value string, src types.SourceProfile, st *State, out types.OutputProfile) (any, bool) {
	if gcodeParams[name] {
		return unbackslash(trimQuotes(value)), true
	}
	if _, isSpeed := speedRenames[name]; isSpeed {
		return convertSpeed(name, value, src, st, out), true
	}

	switch name {
	case "filament_type":
		if alias, ok := filamentTypeAliases[value]; ok {
			return alias, true
		}
		return value, true

	case "filament_max_volumetric_speed":
		if positiveNumber(value) {
			f, _ := strconv.ParseFloat(value, 64)
			return formatFloat(f), true
		}
		material := firstValue(src["filament_type"])
		if speed, ok := defaultVolumetricSpeeds[material]; ok {
			return speed, true
		}
		return fallbackVolumetricSpeed, true

	case "draft_shield":
		switch value {
		case "disabled":
			return "0", true
		case "enabled":
			return "1", true
		}
		return value, true

	case "external_perimeter_fan_speed":
		f, err := strconv.ParseFloat(removePercent(value), 64)
		if err != nil {
			return value, true
		}
		if f < 0 {
			return "0%", true
		}
		return formatFloat(f) + "%", true

	case "ironing_type":
		st.ironingType = value
		return value, true

	case "default_filament_profile":
		return unbackslash(value), true

	case "retract_lift_top":
		if alias, ok := zhopEnforcementAliases[value]; ok {
			return alias, true
		}
		return value, true

	case "compatible_printers_condition":
		return e.convertCondition(&st.printersCondition, st.ProfileName, name, value), true

	case "compatible_prints_condition":
		return e.convertCondition(&st.printsCondition, st.ProfileName, name, value), true

	case "max_layer_height", "min_layer_height",
		"fuzzy_skin_point_dist", "fuzzy_skin_thickness",
		"small_perimeter_min_length":
		if mm, ok := percentToMm(st.NozzleSize, value); ok {
			return mm, true
		}
		return "", true

	case "bridge_flow_ratio", "fill_top_flow_ratio", "first_layer_flow_ratio":
		return percentToFloat(value), true

	case "wall_transition_length":
		if pct, ok := mmToPercent(st.NozzleSize, value); ok {
			return pct, true
		}
		return value, true

	case "machine_limits_usage":
		if value == "emit_to_gcode" {
			return "1", true
		}
		return "0", true

	case "remaining_times":
		// The target flag disables M73 emission, so the polarity flips.
		if value == "0" {
			return "1", true
		}
		return "0", true

	case "support_material_bottom_contact_distance":
		if value == "0" {
			return firstValue(src["support_material_contact_distance"]), true
		}
		return value, true

	case "support_material_style":
		row, ok := supportStyleTable[value]
		if !ok {
			return value, true
		}
		suffix := "(manual)"
		if truthy(src["support_material_auto"]) {
			suffix = "(auto)"
		}
		out["support_type"] = row.supportType + suffix
		out["support_style"] = row.supportStyle
		return nil, false

	case "fill_pattern", "top_fill_pattern", "bottom_fill_pattern", "solid_fill_pattern":
		if alias, ok := infillPatternAliases[value]; ok {
			return alias, true
		}
		return value, true

	case "gcode_flavor":
		// Closed table: an unknown flavor becomes blank rather than leaking
		// an identifier the target cannot interpret.
		return gcodeFlavorAliases[value], true

	case "host_type":
		if alias, ok := hostTypeAliases[value]; ok {
			return alias, true
		}
		return value, true

	case "thumbnails_format":
		if alias, ok := thumbnailFormatAliases[value]; ok {
			return alias, true
		}
		return value, true

	case "support_material_pattern":
		if validSupportPatterns[value] {
			return value, true
		}
		return "default", true

	case "support_material_interface_pattern":
		if validSupportInterfacePatterns[value] {
			return value, true
		}
		return "auto", true

	case "seam_position":
		if alias, ok := seamPositionAliases[value]; ok {
			return alias, true
		}
		return value, true

	case "support_material_layer_height", "infill_every_layers":
		if positiveNumber(value) {
			return "1", true
		}
		return "0", true

	case "output_filename_format":
		value = strings.ReplaceAll(value, "[", "{")
		return strings.ReplaceAll(value, "]", "}"), true

	case "support_material_xy_spacing":
		base := firstValue(src["external_perimeter_extrusion_width"])
		if mm, ok := percentToMm(base, value); ok {
			return mm, true
		}
		if mm, ok := percentToMm(st.NozzleSize, value); ok {
			return mm, true
		}
		return "", true

	case "extrusion_width":
		// Empty means auto in the source; the target spells auto as zero.
		if value == "" {
			return "0", true
		}
		return value, true

	case "complete_objects":
		if truthy(value) {
			return "by object", true
		}
		return "by layer", true
	}

	return value, true
}

// convertCondition runs the keep/discard state machine for one
// compatibility-condition slot. A cancelled prompt discards the value
// without persisting a choice, so the next profile asks again.
func (e *Engine) convertCondition(slot *Decision, profile, name, value string) string {
	if *slot == DecisionDiscard {
		return ""
	}
	if value == "" || *slot == DecisionKeep {
		return value
	}
	if e.Decider == nil {
		return ""
	}
	d, err := e.Decider.Decide(profile, name, value)
	if err != nil || d == DecisionUndecided {
		return ""
	}
	*slot = d
	if d == DecisionKeep {
		return value
	}
	return ""
}

// speedBases gives, per speed parameter and flavor, where the percentage
// base comes from: a sibling source field or an already-converted output
// key. The two slicer families anchor their percentage speeds differently
// and not systematically, so the table is authoritative rather than derived.
type speedBase struct {
	srcField string
	outKey   string
}

var speedBases = map[string]map[types.Flavor]speedBase{
	"external_perimeter_speed": {
		types.FlavorPrusaSlicer: {srcField: "perimeter_speed"},
		types.FlavorSuperSlicer: {srcField: "perimeter_speed"},
	},
	"small_perimeter_speed": {
		types.FlavorPrusaSlicer: {srcField: "perimeter_speed"},
		types.FlavorSuperSlicer: {srcField: "external_perimeter_speed"},
	},
	"solid_infill_speed": {
		types.FlavorPrusaSlicer: {srcField: "infill_speed"},
		types.FlavorSuperSlicer: {outKey: "sparse_infill_speed"},
	},
	"top_solid_infill_speed": {
		types.FlavorPrusaSlicer: {outKey: "internal_solid_infill_speed"},
		types.FlavorSuperSlicer: {outKey: "internal_solid_infill_speed"},
	},
	"infill_speed": {
		types.FlavorPrusaSlicer: {srcField: "perimeter_speed"},
		types.FlavorSuperSlicer: {srcField: "solid_infill_speed"},
	},
	"support_material_interface_speed": {
		types.FlavorPrusaSlicer: {srcField: "support_material_speed"},
		types.FlavorSuperSlicer: {srcField: "support_material_speed"},
	},
	"first_layer_speed": {
		types.FlavorPrusaSlicer: {srcField: "perimeter_speed"},
		types.FlavorSuperSlicer: {srcField: "perimeter_speed"},
	},
	"first_layer_infill_speed": {
		types.FlavorPrusaSlicer: {srcField: "infill_speed"},
		types.FlavorSuperSlicer: {outKey: "initial_layer_speed"},
	},
	"gap_fill_speed": {
		types.FlavorPrusaSlicer: {srcField: "perimeter_speed"},
		types.FlavorSuperSlicer: {srcField: "perimeter_speed"},
	},
}

// convertSpeed resolves a percentage speed against its per-flavor base.
// Absolute speeds and unresolvable bases pass the source value through.
func convertSpeed(name, value string, src types.SourceProfile, st *State, out types.OutputProfile) string {
	if !isPercent(value) {
		return value
	}
	base, ok := speedBases[name][st.Flavor]
	if !ok {
		return value
	}
	var baseValue string
	if base.outKey != "" {
		baseValue = outString(out, base.outKey)
	} else {
		baseValue = firstValue(src[base.srcField])
	}
	if mm, ok := percentToMm(baseValue, value); ok {
		return mm
	}
	return value
}

// outString reads an already-converted output value as a string.
func outString(out types.OutputProfile, key string) string {
	switch v := out[key].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

// firstValue collapses a possibly multi-extruder raw value to its first
// element.
func firstValue(s string) string {
	parts := multivalueToArray(s)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

// trimQuotes strips one layer of surrounding double quotes.
func trimQuotes(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
