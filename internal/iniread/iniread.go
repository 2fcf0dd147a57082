// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package iniread loads slicer INI profiles into flat parameter maps. The
// conversion core never touches INI syntax; everything format-specific stops
// here. See docs/ARCHITECTURE § Profile Reader.
package iniread

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/pdiddy/orcaconv/pkg/types"
)

// generatedByKey is the synthetic parameter the reader adds when the file
// carries a "# generated by ..." banner; the flavor sniffer consumes it.
const generatedByKey = "generated_by"

// loadOptions keeps inline semicolons intact: g-code values routinely
// contain them and they are not comments in this dialect.
var loadOptions = ini.LoadOptions{
	IgnoreInlineComment: true,
}

// Read parses a single sectionless profile file. The profile name is the
// filename without extension; the type is left unset for the detector.
func Read(path string) (types.Profile, error) {
	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return types.Profile{}, fmt.Errorf("reading profile %s: %w", path, err)
	}

	params := sectionParams(f.Section(ini.DefaultSection))
	if banner := readBanner(path); banner != "" {
		params[generatedByKey] = banner
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return types.Profile{
		Name:   name,
		Source: path,
		Params: params,
	}, nil
}

// ReadBundle splits a config bundle into its per-preset profiles. Sections
// are named "<type>:<preset name>"; sections of non-convertible or unnamed
// kinds ([presets], [vendor:...]) are dropped.
func ReadBundle(path string) ([]types.Profile, error) {
	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("reading bundle %s: %w", path, err)
	}

	banner := readBanner(path)

	var profiles []types.Profile
	for _, sec := range f.Sections() {
		kind, name, ok := strings.Cut(sec.Name(), ":")
		if !ok {
			continue
		}
		typ := types.ProfileType(kind)
		if !typ.Convertible() {
			continue
		}
		params := sectionParams(sec)
		if banner != "" {
			params[generatedByKey] = banner
		}
		profiles = append(profiles, types.Profile{
			Name:   strings.TrimSpace(name),
			Type:   typ,
			Source: path,
			Params: params,
		})
	}
	return profiles, nil
}

func sectionParams(sec *ini.Section) types.SourceProfile {
	params := make(types.SourceProfile, len(sec.Keys()))
	for _, key := range sec.Keys() {
		params[key.Name()] = key.Value()
	}
	return params
}

// readBanner returns the trimmed text of a leading "# generated by" comment,
// or "". Only the first few lines are considered; the banner is always at
// the top when present.
func readBanner(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	lines := strings.SplitN(string(data), "\n", 6)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "#") {
			return ""
		}
		text := strings.TrimSpace(strings.TrimLeft(line, "# "))
		if strings.HasPrefix(strings.ToLower(text), "generated by") {
			return text
		}
	}
	return ""
}
