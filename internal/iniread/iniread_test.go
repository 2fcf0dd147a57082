// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package iniread

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/orcaconv/pkg/types"
)

func writeINI(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead(t *testing.T) {
	path := writeINI(t, "0.20mm SPEED.ini", `# generated by PrusaSlicer 2.7.1 on 2024-01-15
layer_height = 0.2
fill_density = 15%
end_gcode = "M104 S0 ; turn off hotend\nM140 S0"
empty_value =
`)

	p, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "0.20mm SPEED", p.Name)
	assert.Equal(t, path, p.Source)
	assert.Equal(t, "0.2", p.Params["layer_height"])
	assert.Equal(t, "15%", p.Params["fill_density"])
	// Inline semicolons are data, not comments.
	assert.Equal(t, `"M104 S0 ; turn off hotend\nM140 S0"`, p.Params["end_gcode"])
	assert.Equal(t, "", p.Params["empty_value"])
	assert.Equal(t, "generated by PrusaSlicer 2.7.1 on 2024-01-15", p.Params["generated_by"])
}

func TestReadNoBanner(t *testing.T) {
	path := writeINI(t, "plain.ini", "layer_height = 0.2\n")

	p, err := Read(path)
	require.NoError(t, err)

	_, ok := p.Params["generated_by"]
	assert.False(t, ok)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.ini"))
	assert.Error(t, err)
}

func TestReadBundle(t *testing.T) {
	path := writeINI(t, "bundle.ini", `# generated by SuperSlicer 2.5.59
[print:0.20mm QUALITY]
layer_height = 0.2
perimeters = 3

[filament:Prusament PLA]
filament_type = PLA
temperature = 215

[printer:Original MK3S]
nozzle_diameter = 0.4

[physical_printer:shop-mk3s]
host_type = octoprint

[presets]
print = 0.20mm QUALITY

[vendor:PrusaResearch]
id = PrusaResearch
`)

	profiles, err := ReadBundle(path)
	require.NoError(t, err)
	require.Len(t, profiles, 4, "presets and vendor sections are dropped")

	byType := map[types.ProfileType]types.Profile{}
	for _, p := range profiles {
		byType[p.Type] = p
	}

	assert.Equal(t, "0.20mm QUALITY", byType[types.TypePrint].Name)
	assert.Equal(t, "3", byType[types.TypePrint].Params["perimeters"])
	assert.Equal(t, "Prusament PLA", byType[types.TypeFilament].Name)
	assert.Equal(t, "shop-mk3s", byType[types.TypePhysicalPrinter].Name)
	assert.Equal(t, "generated by SuperSlicer 2.5.59",
		byType[types.TypePrint].Params["generated_by"])
}
