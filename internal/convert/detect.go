// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"strings"

	"github.com/pdiddy/orcaconv/pkg/types"
)

// detectThreshold is the minimum number of parameter-map hits a candidate
// type needs before the detector trusts it.
const detectThreshold = 10

// detectOrder fixes the candidate iteration so ties resolve the same way on
// every run.
var detectOrder = [...]types.ProfileType{
	types.TypePrint,
	types.TypeFilament,
	types.TypePrinter,
	types.TypePhysicalPrinter,
}

// Detect classifies an unlabeled source profile by counting how many of its
// parameter names each candidate type's map knows. An explicit "type" field
// in the profile wins outright. The result is absent when no candidate
// reaches the threshold; on equal counts the earlier candidate in
// detectOrder wins.
func Detect(src types.SourceProfile) (types.ProfileType, bool) {
	if explicit, ok := src.Get("type"); ok && explicit != "" {
		return types.ProfileType(explicit), true
	}

	var (
		best      types.ProfileType
		bestCount int
	)
	for _, candidate := range detectOrder {
		count := 0
		for name := range src {
			if _, ok := paramMaps[candidate][name]; ok {
				count++
			}
		}
		if count > bestCount {
			best = candidate
			bestCount = count
		}
	}
	if bestCount < detectThreshold {
		return "", false
	}
	return best, true
}

// DetectFlavor sniffs which slicer family wrote the profile. SuperSlicer
// forked the format and kept its parameter names a superset, so any of its
// private parameters is a positive signal; the generated-by comment line is
// handled by the INI reader, which stores it under "generated_by".
func DetectFlavor(src types.SourceProfile) types.Flavor {
	for _, marker := range [...]string{
		"dynamic_overhang_speeds",
		"print_temperature",
		"bridge_internal_fan_speed",
		"first_layer_infill_speed",
	} {
		if _, ok := src.Get(marker); ok {
			return types.FlavorSuperSlicer
		}
	}
	if gen, ok := src.Get("generated_by"); ok {
		switch {
		case containsFold(gen, "superslicer"):
			return types.FlavorSuperSlicer
		case containsFold(gen, "prusaslicer"):
			return types.FlavorPrusaSlicer
		}
	}
	return types.FlavorPrusaSlicer
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), sub)
}
