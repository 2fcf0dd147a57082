// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package emit serializes converted profiles to the target schema. The
// conversion core only fills the parameter map; identity, schema version and
// authorship are stamped here. See docs/ARCHITECTURE § Emitter.
package emit

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/orcaconv/pkg/types"
)

// DefaultSchemaVersion is stamped when the configuration does not pin one.
const DefaultSchemaVersion = "1.6.0.0"

// targetTypes maps source preset families to the target's type markers.
// Both printer families land in the machine schema.
var targetTypes = map[types.ProfileType]string{
	types.TypePrint:           "process",
	types.TypeFilament:        "filament",
	types.TypePrinter:         "machine",
	types.TypePhysicalPrinter: "machine",
}

// Document assembles the final key/value document for one converted profile:
// the accumulated output plus the non-conversion metadata.
func Document(p types.Profile, out types.OutputProfile, schemaVersion string) map[string]any {
	if schemaVersion == "" {
		schemaVersion = DefaultSchemaVersion
	}
	doc := make(map[string]any, len(out)+5)
	for k, v := range out {
		doc[k] = v
	}
	doc["name"] = p.Name
	doc["type"] = targetTypes[p.Type]
	doc["from"] = "User"
	doc["is_custom_defined"] = "0"
	doc["version"] = schemaVersion
	return doc
}

// Write serializes one converted profile to w in the requested format.
func Write(w io.Writer, p types.Profile, out types.OutputProfile, cfg types.ConvertConfig) error {
	doc := Document(p, out, cfg.SchemaVersion)

	switch cfg.Format {
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding %s: %w", p.Name, err)
		}
		return enc.Close()
	case types.OutputJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding %s: %w", p.Name, err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", cfg.Format)
	}
}

// FileName builds the output filename for a profile: the preset name with
// filesystem-hostile characters removed, plus the format extension.
func FileName(p types.Profile, format types.OutputFormat) string {
	ext := ".json"
	if format == types.OutputYAML {
		ext = ".yaml"
	}
	return SafeName(p.Name) + ext
}

// SafeName strips path separators and drive markers from a preset name.
// Preset names regularly contain both ("0.4mm nozzle / PLA").
func SafeName(name string) string {
	name = strings.ReplaceAll(name, "/", "")
	name = strings.ReplaceAll(name, ":", "")
	return strings.TrimSpace(name)
}
