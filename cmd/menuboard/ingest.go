package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mkaeser/menuboard/internal/ingest"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Split the menu workbook into per-canteen CSV tables",
	Long: `Ingest opens the xlsx workbook and writes one CSV file per sheet.
Blank cells and headers are substituted with the placeholder so day
columns keep their position in the table.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().String("workbook", "", "path to the menu workbook (default Menues/menueplan.xlsx)")
	ingestCmd.Flags().String("csv-dir", "", "output directory for per-sheet CSV files (default csv_files)")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()
	if v, _ := cmd.Flags().GetString("workbook"); v != "" {
		cfg.Ingest.WorkbookPath = v
	}
	if v, _ := cmd.Flags().GetString("csv-dir"); v != "" {
		cfg.Ingest.CSVDir = v
	}

	_, err := ingest.ConvertWorkbook(cfg.Ingest, os.Stdout)
	return err
}
