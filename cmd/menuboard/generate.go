package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mkaeser/menuboard/internal/ingest"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the full chain: workbook to merged menu boards",
	Long: `Generate runs ingestion and rendering back to back: the workbook is
split into CSV tables, every day column is rendered, and the accepted
days are merged into the two board files. This is the weekly one-shot.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("workbook", "", "path to the menu workbook (default Menues/menueplan.xlsx)")
	addRenderFlags(generateCmd)

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := renderConfig(cmd)
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("workbook"); v != "" {
		cfg.Ingest.WorkbookPath = v
	}

	if _, err := ingest.ConvertWorkbook(cfg.Ingest, os.Stdout); err != nil {
		return err
	}
	return renderTables(cmd.Context(), cfg)
}
