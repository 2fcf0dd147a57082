// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert maps slicer parameters from the PrusaSlicer INI family to
// the OrcaSlicer JSON schema. The entry points are Convert (one parameter),
// FinalizePrint (print-profile second pass) and Detect (profile-type
// heuristic); everything else in the package is lookup data and value
// plumbing. See docs/ARCHITECTURE § Conversion Engine.
package convert

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reDecimal = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)
	rePercent = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?%$`)
)

// isDecimal reports whether s is a plain decimal number: optional sign,
// digits, optional fraction. No exponent, no percent sign, no whitespace.
func isDecimal(s string) bool {
	return reDecimal.MatchString(s)
}

// isPercent reports whether s is a decimal number with a trailing percent sign.
func isPercent(s string) bool {
	return rePercent.MatchString(s)
}

// removePercent strips one trailing percent sign. Values without one pass
// through unchanged.
func removePercent(s string) string {
	return strings.TrimSuffix(s, "%")
}

// multivalueToArray splits a multi-extruder value into its elements. Commas
// win over semicolons: if any comma is present the value splits on commas
// only, otherwise on semicolons. Elements are trimmed. An empty value yields
// an empty slice; a bare scalar yields one element.
func multivalueToArray(s string) []string {
	if s == "" {
		return nil
	}
	sep := ";"
	if strings.Contains(s, ",") {
		sep = ","
	}
	parts := strings.Split(s, sep)
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// unbackslash decodes the escape sequences INI writers use for multi-line
// values. The replacements run in a fixed order, each over the result of the
// previous, which is what the source files' own round-tripping produces for
// overlapping sequences like a literal backslash before an n.
func unbackslash(s string) string {
	for _, r := range [...][2]string{
		{`\n`, "\n"},
		{`\t`, "\t"},
		{`\r`, "\r"},
		{`\\`, `\`},
		{`\"`, `"`},
		{`\'`, `'`},
	} {
		s = strings.ReplaceAll(s, r[0], r[1])
	}
	return s
}

// formatFloat renders f the way the target schema expects: shortest decimal
// form, no exponent, no trailing zeros.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// percentToFloat converts a percentage string to its ratio ("150%" -> "1.5").
// Non-percentage values pass through unchanged. Ratios are capped at 2,
// rendered as the integer string "2" when the cap applies.
func percentToFloat(s string) string {
	if !isPercent(s) {
		return s
	}
	f, err := strconv.ParseFloat(removePercent(s), 64)
	if err != nil {
		return s
	}
	f /= 100
	if f > 2 {
		return "2"
	}
	return formatFloat(f)
}

// percentToMm resolves a percentage against a millimeter base
// ("50%" of "10" -> "5"). A non-percentage pct passes through unchanged.
// There is no result when either argument is empty or when base is itself a
// percentage, which would make the comparison circular.
func percentToMm(base, pct string) (string, bool) {
	if base == "" || pct == "" {
		return "", false
	}
	if !isPercent(pct) {
		return pct, true
	}
	if isPercent(base) {
		return "", false
	}
	b, err := strconv.ParseFloat(base, 64)
	if err != nil {
		return "", false
	}
	p, err := strconv.ParseFloat(removePercent(pct), 64)
	if err != nil {
		return "", false
	}
	return formatFloat(b * p / 100), true
}

// mmToPercent expresses a millimeter value as a percentage of base
// ("5" of "10" -> "50%"). A value already in percent passes through
// unchanged. There is no result for empty arguments, a percentage base, or a
// zero base.
func mmToPercent(base, mm string) (string, bool) {
	if base == "" || mm == "" {
		return "", false
	}
	if isPercent(base) {
		return "", false
	}
	if isPercent(mm) {
		return mm, true
	}
	b, err := strconv.ParseFloat(base, 64)
	if err != nil || b == 0 {
		return "", false
	}
	m, err := strconv.ParseFloat(mm, 64)
	if err != nil {
		return "", false
	}
	return formatFloat(m/b*100) + "%", true
}

// evaluatePrintOrder folds the two print-order flags into the target's
// wall/infill order enumeration.
func evaluatePrintOrder(externalPerimetersFirst, infillFirst bool) string {
	switch {
	case externalPerimetersFirst && infillFirst:
		return "infill/outer wall/inner wall"
	case externalPerimetersFirst:
		return "outer wall/inner wall/infill"
	case infillFirst:
		return "infill/inner wall/outer wall"
	default:
		return "inner wall/outer wall/infill"
	}
}

// evaluateIroningType folds the ironing flag and the tracked ironing type
// into the target's ironing enumeration. Ironing off always wins.
func evaluateIroningType(ironing bool, ironingType string) string {
	if !ironing || ironingType == "" {
		return "no ironing"
	}
	return ironingType
}

// truthy reports whether an INI boolean-ish value is set. The writers emit
// "1"/"0", but older profiles carry "true" as well.
func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// positiveNumber reports whether s parses as a number greater than zero.
func positiveNumber(s string) bool {
	f, err := strconv.ParseFloat(removePercent(s), 64)
	return err == nil && f > 0
}
