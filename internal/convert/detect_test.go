// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"testing"

	"github.com/pdiddy/orcaconv/pkg/types"
)

func TestDetect(t *testing.T) {
	printProfile := types.SourceProfile{
		"layer_height":        "0.2",
		"first_layer_height":  "0.25",
		"perimeters":          "3",
		"top_solid_layers":    "5",
		"bottom_solid_layers": "4",
		"fill_density":        "15%",
		"fill_pattern":        "gyroid",
		"brim_width":          "0",
		"skirts":              "1",
		"seam_position":       "aligned",
		"perimeter_speed":     "60",
		"infill_speed":        "80",
	}

	tests := []struct {
		name   string
		src    types.SourceProfile
		want   types.ProfileType
		wantOK bool
	}{
		{
			name:   "print profile by parameter counting",
			src:    printProfile,
			want:   types.TypePrint,
			wantOK: true,
		},
		{
			name: "explicit type field wins",
			src: types.SourceProfile{
				"type":         "filament",
				"layer_height": "0.2",
			},
			want:   types.TypeFilament,
			wantOK: true,
		},
		{
			name: "below threshold is indeterminate",
			src: types.SourceProfile{
				"layer_height": "0.2",
				"perimeters":   "3",
			},
			wantOK: false,
		},
		{
			name:   "empty profile is indeterminate",
			src:    types.SourceProfile{},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Detect(tt.src)
			if ok != tt.wantOK {
				t.Fatalf("Detect ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Detect = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectFlavor(t *testing.T) {
	tests := []struct {
		name string
		src  types.SourceProfile
		want types.Flavor
	}{
		{
			name: "superslicer private parameter",
			src:  types.SourceProfile{"dynamic_overhang_speeds": "10,20,30,40"},
			want: types.FlavorSuperSlicer,
		},
		{
			name: "generated-by comment",
			src:  types.SourceProfile{"generated_by": "SuperSlicer 2.5.59 on 2023-11-02"},
			want: types.FlavorSuperSlicer,
		},
		{
			name: "defaults to prusaslicer",
			src:  types.SourceProfile{"layer_height": "0.2"},
			want: types.FlavorPrusaSlicer,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFlavor(tt.src); got != tt.want {
				t.Errorf("DetectFlavor = %q, want %q", got, tt.want)
			}
		})
	}
}
