// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mkaeser/menuboard/internal/textenc"
	"github.com/mkaeser/menuboard/pkg/types"
)

// ListTables returns the CSV files under csvDir whose name starts with
// the table prefix, sorted by name for a stable processing order.
func ListTables(csvDir, prefix string) ([]string, error) {
	entries, err := os.ReadDir(csvDir)
	if err != nil {
		return nil, fmt.Errorf("reading CSV directory %s: %w", csvDir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".csv") && strings.HasPrefix(name, prefix) {
			paths = append(paths, filepath.Join(csvDir, name))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadTable reads one per-sheet CSV and builds the day columns. The file
// bytes are decoded with the encoding fallback chain before parsing.
// Columns beyond the first hold day data; the header record supplies the
// original labels preserved for the rendered table header.
func LoadTable(csvPath string, cfg types.BoardConfig) (*types.MenuTable, error) {
	data, err := os.ReadFile(csvPath)
	if err != nil {
		return nil, fmt.Errorf("reading table %s: %w", csvPath, err)
	}

	reader := csv.NewReader(strings.NewReader(textenc.Decode(data)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing table %s: %w", csvPath, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("table %s is empty", csvPath)
	}

	header := records[0]
	name := strings.TrimSuffix(filepath.Base(csvPath), filepath.Ext(csvPath))

	table := &types.MenuTable{Name: name}
	for colIdx := 1; colIdx < len(header); colIdx++ {
		label := types.DayLabel(colIdx)
		items := extractItems(records[1:], colIdx, cfg)
		table.Days = append(table.Days, types.DayColumn{
			Label:   label,
			Header:  header[colIdx],
			Index:   colIdx,
			Items:   types.PadItems(items),
			Midweek: types.IsMidweek(label),
		})
	}
	return table, nil
}

// extractItems collects the menu items of one day column, skipping
// placeholders and the configured section-label tokens, and truncating
// to the slot count before padding.
func extractItems(records [][]string, colIdx int, cfg types.BoardConfig) []string {
	var items []string
	for _, record := range records {
		if colIdx >= len(record) {
			continue
		}
		cell := strings.TrimSpace(record[colIdx])
		if cell == "" || cell == "-" || cell == "*" || isLabelToken(cell, cfg.LabelTokens) {
			continue
		}
		items = append(items, cell)
		if len(items) == types.DaySlots {
			break
		}
	}
	return items
}

func isLabelToken(cell string, tokens []string) bool {
	for _, t := range tokens {
		if cell == t {
			return true
		}
	}
	return false
}
