package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/orcaconv/internal/catalog"
	"github.com/pdiddy/orcaconv/internal/convert"
	"github.com/pdiddy/orcaconv/internal/pipeline"
	"github.com/pdiddy/orcaconv/internal/prompt"
	"github.com/pdiddy/orcaconv/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [profiles...]",
	Short: "Convert slicer INI profiles to OrcaSlicer JSON",
	Long: `Convert reads one or more INI profiles (or config bundles with --bundle),
classifies each as a print, filament, or printer profile, converts every
parameter to the OrcaSlicer schema, and writes one output file per profile.

Profiles carrying a compatibility condition trigger an interactive keep or
discard prompt unless --keep-conditions or --discard-conditions is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(cmd)
		if err != nil {
			return err
		}
		if opts.Catalog != nil {
			defer opts.Catalog.Close()
		}

		result := pipeline.Run(opts, args, os.Stdout)
		if result.HasFailures() {
			return fmt.Errorf("%d profile(s) failed to convert", result.Failed)
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().String("type", "", "force profile type: print, filament, printer, or physical_printer")
	convertCmd.Flags().Bool("bundle", false, "treat inputs as multi-profile config bundles")
	convertCmd.Flags().Bool("force", false, "overwrite existing output files")
	convertCmd.Flags().String("nozzle", "", "nozzle diameter in mm for percentage conversions")
	convertCmd.Flags().String("out", "", "output directory")
	convertCmd.Flags().String("format", "", "output format: json or yaml")
	convertCmd.Flags().Bool("keep-conditions", false, "keep all compatibility conditions without prompting")
	convertCmd.Flags().Bool("discard-conditions", false, "discard all compatibility conditions without prompting")
	convertCmd.Flags().Bool("no-catalog", false, "do not record conversions in the catalog")

	rootCmd.AddCommand(convertCmd)
}

func buildOptions(cmd *cobra.Command) (pipeline.Options, error) {
	typeFlag, _ := cmd.Flags().GetString("type")
	bundle, _ := cmd.Flags().GetBool("bundle")
	force, _ := cmd.Flags().GetBool("force")
	noCatalog, _ := cmd.Flags().GetBool("no-catalog")

	cfg := types.ConvertConfig{
		NozzleSize:    stringFlagOr(cmd, "nozzle", viper.GetString("nozzle_size")),
		OutputDir:     stringFlagOr(cmd, "out", viper.GetString("output_dir")),
		Format:        types.OutputFormat(stringFlagOr(cmd, "format", viper.GetString("format"))),
		SchemaVersion: viper.GetString("schema_version"),
	}

	opts := pipeline.Options{
		Type:    types.ProfileType(typeFlag),
		Bundle:  bundle,
		Force:   force,
		Decider: buildDecider(cmd),
		Convert: cfg,
	}
	if opts.Type != "" && !opts.Type.Convertible() {
		return opts, fmt.Errorf("unknown profile type %q", typeFlag)
	}

	if !noCatalog {
		store, err := catalog.NewStore(types.CatalogConfig{
			CatalogDir: viper.GetString("catalog_dir"),
			MaxResults: viper.GetInt("max_results"),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: catalog disabled: %v\n", err)
		} else {
			opts.Catalog = store
		}
	}
	return opts, nil
}

// buildDecider picks how compatibility conditions get answered: a forced
// answer from the flags, a terminal prompt, or discard-all when there is no
// terminal to ask.
func buildDecider(cmd *cobra.Command) convert.Decider {
	if keep, _ := cmd.Flags().GetBool("keep-conditions"); keep {
		return prompt.Static{Decision: convert.DecisionKeep}
	}
	if discard, _ := cmd.Flags().GetBool("discard-conditions"); discard {
		return prompt.Static{Decision: convert.DecisionDiscard}
	}
	if !prompt.IsInteractive() {
		return prompt.Static{Decision: convert.DecisionDiscard}
	}
	return prompt.NewTerminal()
}

func stringFlagOr(cmd *cobra.Command, name, fallback string) string {
	if v, _ := cmd.Flags().GetString(name); v != "" {
		return v
	}
	return fallback
}
