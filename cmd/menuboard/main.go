// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the menuboard CLI.
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

// rootCmd is the base command for the menuboard CLI.
var rootCmd = &cobra.Command{
	Use:   "menuboard",
	Short: "Weekly canteen menus from spreadsheet to printable boards",
	Long: `menuboard turns the weekly menu workbook into printable PDF menu boards.
The workbook is split into one CSV table per canteen, each day column is
composed into a colored LaTeX table with meal icons and generated dish
illustrations, compiled with pdflatex, and the accepted days are merged
into the two fixed board files.

Each stage is a subcommand: ingest splits the workbook, render turns the
CSV tables into boards, and generate runs the full chain.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./menuboard.yaml or ~/.config/menuboard/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("menuboard")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "menuboard"))
		}
	}

	viper.SetEnvPrefix("MENUBOARD")
	viper.AutomaticEnv()

	setConfigDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
