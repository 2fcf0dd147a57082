// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives whole-file conversions: read, classify, convert,
// emit, record. Per-file status goes to an injected writer; the caller gets
// a batch summary. See docs/ARCHITECTURE § Pipeline.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/orcaconv/internal/catalog"
	"github.com/pdiddy/orcaconv/internal/convert"
	"github.com/pdiddy/orcaconv/internal/emit"
	"github.com/pdiddy/orcaconv/internal/iniread"
	"github.com/pdiddy/orcaconv/pkg/types"
)

// Options configures one conversion run.
type Options struct {
	// Type forces a profile type instead of detecting one. A type carried
	// by a bundle section still wins over this.
	Type types.ProfileType

	// Bundle treats every input file as a multi-profile config bundle.
	Bundle bool

	// Force overwrites existing output files instead of skipping them.
	Force bool

	// Decider answers compatibility-condition prompts; nil discards them.
	Decider convert.Decider

	// Convert carries nozzle size, output directory and format.
	Convert types.ConvertConfig

	// Catalog records completed conversions when non-nil.
	Catalog *catalog.Store
}

// Result holds the outcome of a batch run.
type Result struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the number of profiles processed.
func (r Result) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any profile failed conversion.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// stickyDecider is the optional contract a Decider implements to say its
// answer covers all remaining profiles; the run then keeps the engine's
// decision slots across profiles instead of resetting them.
type stickyDecider interface {
	Sticky() bool
}

// Run converts every profile in paths, printing per-profile status to w and
// returning a summary. Profiles are processed strictly sequentially over one
// shared conversion state.
func Run(opts Options, paths []string, w io.Writer) Result {
	engine := &convert.Engine{Decider: opts.Decider}
	st := &convert.State{NozzleSize: opts.Convert.NozzleSize}
	if st.NozzleSize == "" {
		st.NozzleSize = "0.4"
	}

	var result Result
	first := true
	for _, path := range paths {
		profiles, err := readInput(path, opts.Bundle)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", path, err)
			result.Failed++
			continue
		}
		for _, p := range profiles {
			if !first {
				st.ResetProfile()
				if !decisionsStick(opts.Decider) {
					st.ResetDecisions()
				}
			}
			first = false
			convertOne(engine, st, opts, p, w, &result)
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}

func readInput(path string, bundle bool) ([]types.Profile, error) {
	if bundle {
		return iniread.ReadBundle(path)
	}
	p, err := iniread.Read(path)
	if err != nil {
		return nil, err
	}
	return []types.Profile{p}, nil
}

func convertOne(engine *convert.Engine, st *convert.State, opts Options, p types.Profile, w io.Writer, result *Result) {
	typ := p.Type
	if typ == "" {
		typ = opts.Type
	}
	if typ == "" {
		detected, ok := convert.Detect(p.Params)
		if !ok {
			fmt.Fprintf(w, "skipped: %s (type indeterminate)\n", p.Name)
			result.Skipped++
			return
		}
		typ = detected
	}
	if !typ.Convertible() {
		fmt.Fprintf(w, "skipped: %s (%s profiles cannot be converted)\n", p.Name, typ)
		result.Skipped++
		return
	}
	p.Type = typ

	outPath := filepath.Join(opts.Convert.OutputDir, emit.FileName(p, opts.Convert.Format))
	if !opts.Force {
		if _, err := os.Stat(outPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", p.Name)
			result.Skipped++
			return
		}
	}

	st.Type = typ
	st.Flavor = convert.DetectFlavor(p.Params)
	st.ProfileName = p.Name

	out := engine.ConvertProfile(p.Params, st)

	if err := writeOutput(outPath, p, out, opts.Convert); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", p.Name, err)
		result.Failed++
		return
	}

	if opts.Catalog != nil {
		err := opts.Catalog.Add(catalog.Record{
			Name:       p.Name,
			Type:       p.Type,
			Flavor:     st.Flavor,
			SourcePath: p.Source,
			OutputPath: outPath,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	fmt.Fprintf(w, "converted: %s (%s)\n", p.Name, typ)
	result.Converted++
}

func writeOutput(path string, p types.Profile, out types.OutputProfile, cfg types.ConvertConfig) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return emit.Write(f, p, out, cfg)
}

func decisionsStick(d convert.Decider) bool {
	s, ok := d.(stickyDecider)
	return ok && s.Sticky()
}
