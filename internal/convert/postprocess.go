// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"math"
	"sort"
	"strconv"

	"github.com/pdiddy/orcaconv/pkg/types"
)

// overhangSpeedKeys are the target threshold keys, steepest overhang first.
// The source lists thresholds shallowest-first, so the writer reverses.
var overhangSpeedKeys = [...]string{
	"overhang_1_4_speed",
	"overhang_2_4_speed",
	"overhang_3_4_speed",
	"overhang_4_4_speed",
}

// overhangSourceFields are the four discretely-named threshold fields the
// prusaslicer flavor uses; the superslicer flavor packs the same four values
// into one comma-separated dynamic_overhang_speeds field.
var overhangSourceFields = [...]string{
	"overhang_speed_0",
	"overhang_speed_1",
	"overhang_speed_2",
	"overhang_speed_3",
}

// ConvertProfile runs the full per-parameter loop for one profile and, for
// print profiles, the finishing pass. Keys are visited in sorted order so a
// run is deterministic; speed parameters are left to FinalizePrint, which
// needs them in dependency order.
func (e *Engine) ConvertProfile(src types.SourceProfile, st *State) types.OutputProfile {
	out := types.OutputProfile{}

	names := make([]string, 0, len(src))
	for name := range src {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		targets := paramMaps[st.Type][name]
		if len(targets) == 0 {
			continue
		}
		if st.Type == types.TypePrint {
			if _, isSpeed := speedRenames[name]; isSpeed {
				continue
			}
		}
		if v, ok := e.Convert(name, src, st, out); ok {
			out[targets[0]] = v
		}
	}

	if st.Type == types.TypePrint {
		e.FinalizePrint(src, st, out)
	}
	return out
}

// FinalizePrint is the print-profile second pass: it normalizes the speed
// table in dependency order, translates the dynamic overhang speeds, and
// folds the accumulated combination flags into their output keys.
func (e *Engine) FinalizePrint(src types.SourceProfile, st *State, out types.OutputProfile) {
	for _, name := range speedOrder {
		v, ok := src.Get(name)
		if !ok || v == "" {
			continue
		}
		res, ok := e.Convert(name, src, st, out)
		if !ok {
			continue
		}
		s, _ := res.(string)
		if isDecimal(s) {
			f, err := strconv.ParseFloat(s, 64)
			if err == nil {
				s = formatFloat(math.Round(f*10) / 10)
			}
		}
		out[speedRenames[name]] = s
	}

	enabled := truthy(src["enable_dynamic_overhang_speeds"])
	if enabled {
		out["enable_overhang_speed"] = "1"
	} else {
		out["enable_overhang_speed"] = "0"
	}
	if enabled {
		var speeds []string
		if st.Flavor == types.FlavorSuperSlicer {
			speeds = multivalueToArray(src["dynamic_overhang_speeds"])
		} else {
			for _, field := range overhangSourceFields {
				speeds = append(speeds, src[field])
			}
		}
		// Reversed: the source orders thresholds shallowest overhang first,
		// the target steepest first.
		for i, key := range overhangSpeedKeys {
			j := len(speeds) - 1 - i
			if j < 0 || j >= len(speeds) {
				continue
			}
			out[key] = speeds[j]
		}
	}

	out["wall_infill_order"] = evaluatePrintOrder(st.externalPerimetersFirst, st.infillFirst)
	out["ironing_type"] = evaluateIroningType(st.ironing, st.ironingType)
}
