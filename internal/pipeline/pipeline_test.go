// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/orcaconv/internal/catalog"
	"github.com/pdiddy/orcaconv/internal/convert"
	"github.com/pdiddy/orcaconv/internal/prompt"
	"github.com/pdiddy/orcaconv/pkg/types"
)

const printINI = `# generated by PrusaSlicer 2.7.1
layer_height = 0.2
first_layer_height = 0.25
perimeters = 3
top_solid_layers = 5
bottom_solid_layers = 4
fill_density = 15%
fill_pattern = gyroid
brim_width = 0
skirts = 1
seam_position = rear
perimeter_speed = 60
external_perimeter_speed = 50%
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readJSON(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	return doc
}

func TestRunSingleFile(t *testing.T) {
	tmp := t.TempDir()
	iniPath := writeFile(t, tmp, "0.20mm SPEED.ini", printINI)
	outDir := filepath.Join(tmp, "out")

	var log bytes.Buffer
	result := Run(Options{
		Convert: types.ConvertConfig{OutputDir: outDir},
	}, []string{iniPath}, &log)

	if result.Converted != 1 || result.Failed != 0 {
		t.Fatalf("result = %+v, want 1 converted", result)
	}
	if !strings.Contains(log.String(), "converted: 0.20mm SPEED (print)") {
		t.Errorf("log = %q", log.String())
	}

	doc := readJSON(t, filepath.Join(outDir, "0.20mm SPEED.json"))
	if doc["type"] != "process" {
		t.Errorf("type = %v", doc["type"])
	}
	if doc["layer_height"] != "0.2" {
		t.Errorf("layer_height = %v", doc["layer_height"])
	}
	if doc["seam_position"] != "back" {
		t.Errorf("seam_position = %v", doc["seam_position"])
	}
	if doc["inner_wall_speed"] != "60" {
		t.Errorf("inner_wall_speed = %v", doc["inner_wall_speed"])
	}
	// 50% of perimeter_speed.
	if doc["outer_wall_speed"] != "30" {
		t.Errorf("outer_wall_speed = %v", doc["outer_wall_speed"])
	}
	if doc["wall_infill_order"] != "inner wall/outer wall/infill" {
		t.Errorf("wall_infill_order = %v", doc["wall_infill_order"])
	}
}

func TestRunSkipsExisting(t *testing.T) {
	tmp := t.TempDir()
	iniPath := writeFile(t, tmp, "q.ini", printINI)
	outDir := filepath.Join(tmp, "out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, outDir, "q.json", "{}")

	var log bytes.Buffer
	result := Run(Options{
		Convert: types.ConvertConfig{OutputDir: outDir},
	}, []string{iniPath}, &log)

	if result.Skipped != 1 || result.Converted != 0 {
		t.Fatalf("result = %+v, want 1 skipped", result)
	}

	result = Run(Options{
		Force:   true,
		Convert: types.ConvertConfig{OutputDir: outDir},
	}, []string{iniPath}, &log)
	if result.Converted != 1 {
		t.Fatalf("force rerun result = %+v, want 1 converted", result)
	}
}

func TestRunIndeterminateType(t *testing.T) {
	tmp := t.TempDir()
	iniPath := writeFile(t, tmp, "stub.ini", "layer_height = 0.2\n")

	var log bytes.Buffer
	result := Run(Options{
		Convert: types.ConvertConfig{OutputDir: filepath.Join(tmp, "out")},
	}, []string{iniPath}, &log)

	if result.Skipped != 1 {
		t.Fatalf("result = %+v, want 1 skipped", result)
	}
	if !strings.Contains(log.String(), "type indeterminate") {
		t.Errorf("log = %q", log.String())
	}
}

func TestRunMissingFile(t *testing.T) {
	var log bytes.Buffer
	result := Run(Options{}, []string{filepath.Join(t.TempDir(), "nope.ini")}, &log)

	if result.Failed != 1 {
		t.Fatalf("result = %+v, want 1 failed", result)
	}
}

func TestRunBundleWithDiscardedConditions(t *testing.T) {
	tmp := t.TempDir()
	bundle := `[print:draft]
layer_height = 0.3
compatible_printers_condition = printer_model=="MK3S"

[filament:Generic PLA]
filament_type = PLA
compatible_printers_condition = nozzle_diameter[0]==0.4
`
	iniPath := writeFile(t, tmp, "bundle.ini", bundle)
	outDir := filepath.Join(tmp, "out")

	var log bytes.Buffer
	result := Run(Options{
		Bundle:  true,
		Decider: prompt.Static{Decision: convert.DecisionDiscard},
		Convert: types.ConvertConfig{OutputDir: outDir},
	}, []string{iniPath}, &log)

	if result.Converted != 2 {
		t.Fatalf("result = %+v, want 2 converted, log:\n%s", result, log.String())
	}

	doc := readJSON(t, filepath.Join(outDir, "Generic PLA.json"))
	if doc["filament_type"] != "PLA" {
		t.Errorf("filament_type = %v", doc["filament_type"])
	}
	if doc["compatible_printers_condition"] != "" {
		t.Errorf("condition = %v, want discarded", doc["compatible_printers_condition"])
	}
}

func TestRunRecordsCatalog(t *testing.T) {
	tmp := t.TempDir()
	iniPath := writeFile(t, tmp, "q.ini", printINI)

	store, err := catalog.NewStore(types.CatalogConfig{CatalogDir: tmp})
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	var log bytes.Buffer
	result := Run(Options{
		Convert: types.ConvertConfig{OutputDir: filepath.Join(tmp, "out")},
		Catalog: store,
	}, []string{iniPath}, &log)
	if result.Converted != 1 {
		t.Fatalf("result = %+v", result)
	}

	records, err := store.List(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Name != "q" {
		t.Fatalf("records = %+v", records)
	}
	if records[0].Type != types.TypePrint {
		t.Errorf("type = %v", records[0].Type)
	}
}
