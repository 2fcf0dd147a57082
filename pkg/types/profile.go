// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ProfileType identifies which preset family a profile belongs to.
// See docs/ARCHITECTURE § Profile Model.
type ProfileType string

const (
	TypePrint           ProfileType = "print"
	TypeFilament        ProfileType = "filament"
	TypePrinter         ProfileType = "printer"
	TypePhysicalPrinter ProfileType = "physical_printer"

	// TypeVendor and TypeObsolete mark sections that carry no convertible
	// parameters; the engine skips them entirely.
	TypeVendor   ProfileType = "vendor"
	TypeObsolete ProfileType = "obsolete"
)

// Convertible reports whether profiles of this type can be mapped to the
// target schema.
func (t ProfileType) Convertible() bool {
	switch t {
	case TypePrint, TypeFilament, TypePrinter, TypePhysicalPrinter:
		return true
	}
	return false
}

// Flavor identifies the slicer family that produced a source profile.
// The two families disagree on which sibling a percentage speed is
// relative to, so the engine needs to know which one it is reading.
type Flavor string

const (
	FlavorPrusaSlicer Flavor = "prusaslicer"
	FlavorSuperSlicer Flavor = "superslicer"
	FlavorUnknown     Flavor = "unknown"
)

// SourceProfile is one INI document after parsing: parameter name to raw
// string value. Read-only for the duration of a conversion pass.
type SourceProfile map[string]string

// Get returns the raw value for name and whether it was present.
func (p SourceProfile) Get(name string) (string, bool) {
	v, ok := p[name]
	return v, ok
}

// Profile pairs a parsed parameter set with the identity the reader gave it.
type Profile struct {
	// Name is the preset name, from the bundle section header or filename.
	Name string `json:"name" yaml:"name"`

	// Type is the preset family, explicit or detected.
	Type ProfileType `json:"type" yaml:"type"`

	// Source is the path of the INI file the profile was read from.
	Source string `json:"source" yaml:"source"`

	// Params holds the raw key/value pairs.
	Params SourceProfile `json:"params" yaml:"params"`
}

// OutputProfile accumulates converted parameters for one profile. Values are
// strings, numbers, or ordered string sequences, matching what the target
// JSON schema accepts. The conversion engine and the print post-processor
// are the only writers.
type OutputProfile map[string]any
