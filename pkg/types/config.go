// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects the serialization format for converted profiles.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// ConvertConfig holds settings for the conversion stage.
type ConvertConfig struct {
	// NozzleSize is the nozzle diameter in millimeters, used as the base
	// for percentage-to-millimeter conversions (default 0.4).
	NozzleSize string `json:"nozzle_size" yaml:"nozzle_size"`

	// OutputDir is the directory converted profiles are written to.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Format selects json or yaml output (default json).
	Format OutputFormat `json:"format" yaml:"format"`

	// SchemaVersion is stamped into every emitted profile.
	SchemaVersion string `json:"schema_version" yaml:"schema_version"`
}

// CatalogConfig holds settings for the conversion catalog.
type CatalogConfig struct {
	// CatalogDir is the directory containing the catalog database.
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`

	// MaxResults is the default maximum number of rows listed (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
