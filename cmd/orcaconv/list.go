package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/orcaconv/internal/catalog"
	"github.com/pdiddy/orcaconv/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded conversions",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := catalog.NewStore(types.CatalogConfig{
			CatalogDir: viper.GetString("catalog_dir"),
			MaxResults: viper.GetInt("max_results"),
		})
		if err != nil {
			return err
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		records, err := store.List(limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No conversions recorded.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTYPE\tFLAVOR\tOUTPUT\tCONVERTED")
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				r.Name, r.Type, r.Flavor, r.OutputPath,
				r.ConvertedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().Int("limit", 0, "maximum number of rows (default from config)")
	rootCmd.AddCommand(listCmd)
}
