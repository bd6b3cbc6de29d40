// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest turns the weekly menu workbook into per-sheet CSV
// tables and loads those tables into day columns for rendering.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mkaeser/menuboard/pkg/types"
)

// ConvertWorkbook reads every sheet of the xlsx workbook and writes one
// CSV per sheet into cfg.CSVDir. The configured header row supplies the
// column labels; blank labels and blank data cells are replaced by the
// placeholder token. Returns the written CSV paths in sheet order.
func ConvertWorkbook(cfg types.IngestConfig, w io.Writer) ([]string, error) {
	f, err := excelize.OpenFile(cfg.WorkbookPath)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", cfg.WorkbookPath, err)
	}
	defer f.Close()

	if err := os.MkdirAll(cfg.CSVDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating CSV directory: %w", err)
	}

	var written []string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			fmt.Fprintf(w, "warning: could not read sheet %s: %v\n", sheet, err)
			continue
		}

		records := sheetRecords(rows, cfg)
		csvPath := filepath.Join(cfg.CSVDir, sheet+".csv")
		if err := writeCSV(csvPath, records); err != nil {
			return written, fmt.Errorf("writing %s: %w", csvPath, err)
		}

		fmt.Fprintf(w, "converted: %s (%d data rows)\n", sheet, len(records)-1)
		written = append(written, csvPath)
	}
	return written, nil
}

// sheetRecords builds the CSV records for one sheet: a header record
// from the configured header row, then the data rows. All records are
// padded to the header width and blanks are replaced by the placeholder.
func sheetRecords(rows [][]string, cfg types.IngestConfig) [][]string {
	header := []string{}
	if cfg.HeaderRow < len(rows) {
		header = rows[cfg.HeaderRow]
	}
	cleaned := make([]string, len(header))
	for i, col := range header {
		cleaned[i] = orPlaceholder(col, cfg.Placeholder)
	}
	if len(cleaned) == 0 {
		cleaned = []string{cfg.Placeholder}
	}

	records := [][]string{cleaned}
	for i := cfg.DataStartRow; i < len(rows); i++ {
		record := make([]string, len(cleaned))
		for j := range record {
			cell := ""
			if j < len(rows[i]) {
				cell = rows[i][j]
			}
			record[j] = orPlaceholder(cell, cfg.Placeholder)
		}
		records = append(records, record)
	}
	return records
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(f)
	if err := cw.WriteAll(records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
