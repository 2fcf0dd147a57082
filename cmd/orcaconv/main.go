// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the orcaconv CLI.
// See docs/ARCHITECTURE § CLI Surface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the orcaconv CLI.
var rootCmd = &cobra.Command{
	Use:   "orcaconv",
	Short: "Convert PrusaSlicer-family profiles to OrcaSlicer JSON",
	Long: `orcaconv converts slicer configuration profiles written by PrusaSlicer or
SuperSlicer (INI key/value files) into the JSON profile format OrcaSlicer
imports. It handles unit conversions, enumerated-value remapping, speed-table
normalization and profile-type detection.

Each operation is a subcommand: convert, detect, and list.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./orcaconv.yaml or ~/.config/orcaconv/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("orcaconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "orcaconv"))
		}
	}

	viper.SetEnvPrefix("ORCACONV")
	viper.AutomaticEnv()

	viper.SetDefault("nozzle_size", "0.4")
	viper.SetDefault("output_dir", "output")
	viper.SetDefault("format", "json")
	viper.SetDefault("catalog_dir", ".orcaconv")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
