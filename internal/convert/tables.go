// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

// Static lookup data. Every table follows one of three policies on a miss:
// alias-or-pass-through, alias-or-blank (gcode flavor only), or
// validity-set-with-default (support patterns). The policy is applied at the
// call site in engine.go.

// filamentTypeAliases rewrites material names the target schema spells
// differently. Anything else passes through.
var filamentTypeAliases = map[string]string{
	"PET":     "PETG",
	"FLEX":    "TPU",
	"NYLON":   "PA",
	"PA-CF":   "PA",
	"PETG-CF": "PETG",
	"PLA+":    "PLA",
}

// defaultVolumetricSpeeds maps a source material to the fallback maximum
// volumetric speed (mm³/s) used when the source profile carries zero.
// Keyed by the raw source filament_type, before aliasing.
var defaultVolumetricSpeeds = map[string]string{
	"PLA":   "15",
	"PET":   "10",
	"PETG":  "10",
	"ABS":   "12",
	"ASA":   "12",
	"FLEX":  "3.2",
	"TPU":   "3.2",
	"NYLON": "8",
	"PA":    "8",
	"PC":    "10",
	"PVA":   "6",
	"HIPS":  "12",
}

// fallbackVolumetricSpeed applies when the material is not in the table.
const fallbackVolumetricSpeed = "15"

// infillPatternAliases maps source infill pattern names to target ones.
// Unmapped patterns share a name across both schemas and pass through.
var infillPatternAliases = map[string]string{
	"rectilinear":     "zig-zag",
	"stars":           "tri-hexagon",
	"monotoniclines":  "monotonicline",
	"smooth":          "monotonic",
	"rectilineargrid": "grid",
}

// seamPositionAliases maps seam position names; only "rear" differs.
var seamPositionAliases = map[string]string{
	"rear":    "back",
	"nearest": "nearest",
	"aligned": "aligned",
	"random":  "random",
}

// gcodeFlavorAliases is a closed map: a flavor missing here is one the
// target does not support and converts to the empty string.
var gcodeFlavorAliases = map[string]string{
	"marlin":         "marlin",
	"marlin2":        "marlin2",
	"klipper":        "klipper",
	"reprap":         "reprapfirmware",
	"reprapfirmware": "reprapfirmware",
	"repetier":       "repetier",
	"smoothie":       "smoothieware",
	"mach3":          "mach3",
	"machinekit":     "machinekit",
	"sailfish":       "sailfish",
	"teacup":         "teacup",
	"makerware":      "makerware",
	"no-extrusion":   "no-extrusion",
}

// hostTypeAliases maps print-host identifiers. The Prusa-specific hosts
// speak the octoprint protocol on the target side.
var hostTypeAliases = map[string]string{
	"prusalink":    "octoprint",
	"prusaconnect": "octoprint",
	"octoprint":    "octoprint",
	"duet":         "duet",
	"flashair":     "flashair",
	"astrobox":     "astrobox",
	"repetier":     "repetier",
	"mks":          "mks",
}

// zhopEnforcementAliases maps the source's retract-lift surface restriction
// to the target's enforcement enumeration.
var zhopEnforcementAliases = map[string]string{
	"All surfaces": "All Surfaces",
	"Top Only":     "Top Only",
	"Not on top":   "Bottom Only",
}

// thumbnailFormatAliases maps thumbnail encodings; the names happen to agree
// today, but the table keeps the policy explicit.
var thumbnailFormatAliases = map[string]string{
	"PNG": "PNG",
	"JPG": "JPG",
	"QOI": "QOI",
}

// supportStyleRow is the target (support_type, support_style) pair for one
// source support_material_style value.
type supportStyleRow struct {
	supportType  string
	supportStyle string
}

// supportStyleTable is two-dimensional: one source value fans out into the
// support_type and support_style output keys. support_type additionally gets
// an "(auto)" or "(manual)" suffix from the support_material_auto flag.
var supportStyleTable = map[string]supportStyleRow{
	"grid":    {supportType: "normal", supportStyle: "grid"},
	"snug":    {supportType: "normal", supportStyle: "snug"},
	"organic": {supportType: "tree", supportStyle: "organic"},
}

// validSupportPatterns is a validity set, not a rename table: anything
// outside it becomes "default".
var validSupportPatterns = map[string]bool{
	"default":          true,
	"rectilinear":      true,
	"rectilinear-grid": true,
	"honeycomb":        true,
	"lightning":        true,
	"hollow":           true,
}

// validSupportInterfacePatterns is the validity set for the interface
// pattern; anything outside it becomes "auto".
var validSupportInterfacePatterns = map[string]bool{
	"auto":                   true,
	"rectilinear":            true,
	"concentric":             true,
	"rectilinear_interlaced": true,
	"grid":                   true,
}

// speedRenames maps each source speed parameter to its target key. The order
// of speedOrder matters: later entries resolve their percentage bases
// against earlier entries' already-written output keys.
var speedRenames = map[string]string{
	"perimeter_speed":                  "inner_wall_speed",
	"external_perimeter_speed":         "outer_wall_speed",
	"solid_infill_speed":               "internal_solid_infill_speed",
	"infill_speed":                     "sparse_infill_speed",
	"small_perimeter_speed":            "small_perimeter_speed",
	"top_solid_infill_speed":           "top_surface_speed",
	"gap_fill_speed":                   "gap_infill_speed",
	"support_material_speed":           "support_speed",
	"support_material_interface_speed": "support_interface_speed",
	"bridge_speed":                     "bridge_speed",
	"first_layer_speed":                "initial_layer_speed",
	"first_layer_infill_speed":         "initial_layer_infill_speed",
}

// speedOrder fixes the post-processor's conversion sequence.
var speedOrder = []string{
	"perimeter_speed",
	"external_perimeter_speed",
	"solid_infill_speed",
	"infill_speed",
	"small_perimeter_speed",
	"top_solid_infill_speed",
	"gap_fill_speed",
	"support_material_speed",
	"support_material_interface_speed",
	"bridge_speed",
	"first_layer_speed",
	"first_layer_infill_speed",
}
