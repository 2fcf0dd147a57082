package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/orcaconv/internal/convert"
	"github.com/pdiddy/orcaconv/internal/iniread"
)

var detectCmd = &cobra.Command{
	Use:   "detect [profiles...]",
	Short: "Report the detected profile type and slicer flavor",
	Long: `Detect classifies each INI file as a print, filament, or printer profile by
counting how many of its parameters each profile family knows, and reports
which slicer family wrote it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			p, err := iniread.Read(path)
			if err != nil {
				return err
			}
			flavor := convert.DetectFlavor(p.Params)
			if typ, ok := convert.Detect(p.Params); ok {
				fmt.Printf("%s: %s (%s)\n", p.Name, typ, flavor)
			} else {
				fmt.Printf("%s: indeterminate\n", p.Name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
