// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pdiddy/orcaconv/pkg/types"
)

func testProfile() (types.Profile, types.OutputProfile) {
	p := types.Profile{Name: "0.20mm QUALITY", Type: types.TypePrint}
	out := types.OutputProfile{
		"layer_height":    "0.2",
		"wall_loops":      "3",
		"nozzle_diameter": []string{"0.4", "0.6"},
	}
	return p, out
}

func TestDocument(t *testing.T) {
	p, out := testProfile()

	doc := Document(p, out, "")

	want := map[string]any{
		"name":              "0.20mm QUALITY",
		"type":              "process",
		"from":              "User",
		"is_custom_defined": "0",
		"version":           DefaultSchemaVersion,
		"layer_height":      "0.2",
	}
	for k, v := range want {
		if doc[k] != v {
			t.Errorf("doc[%q] = %v, want %v", k, doc[k], v)
		}
	}
}

func TestDocumentMachineTypes(t *testing.T) {
	for _, typ := range []types.ProfileType{types.TypePrinter, types.TypePhysicalPrinter} {
		doc := Document(types.Profile{Name: "x", Type: typ}, types.OutputProfile{}, "")
		if doc["type"] != "machine" {
			t.Errorf("type for %s = %v, want machine", typ, doc["type"])
		}
	}
}

func TestWriteJSON(t *testing.T) {
	p, out := testProfile()
	var buf bytes.Buffer

	if err := Write(&buf, p, out, types.ConvertConfig{Format: types.OutputJSON}); err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got["name"] != "0.20mm QUALITY" {
		t.Errorf("name = %v", got["name"])
	}
	arr, ok := got["nozzle_diameter"].([]any)
	if !ok || len(arr) != 2 {
		t.Errorf("nozzle_diameter = %v, want two-element array", got["nozzle_diameter"])
	}
}

func TestWriteYAML(t *testing.T) {
	p, out := testProfile()
	var buf bytes.Buffer

	if err := Write(&buf, p, out, types.ConvertConfig{Format: types.OutputYAML}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "layer_height:") {
		t.Errorf("yaml output missing keys:\n%s", buf.String())
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	p, out := testProfile()
	if err := Write(&bytes.Buffer{}, p, out, types.ConvertConfig{Format: "toml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name   string
		format types.OutputFormat
		want   string
	}{
		{"0.20mm QUALITY", types.OutputJSON, "0.20mm QUALITY.json"},
		{"0.4mm nozzle / PLA", types.OutputJSON, "0.4mm nozzle  PLA.json"},
		{"draft: fast", types.OutputYAML, "draft fast.yaml"},
	}
	for _, tt := range tests {
		got := FileName(types.Profile{Name: tt.name}, tt.format)
		if got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
