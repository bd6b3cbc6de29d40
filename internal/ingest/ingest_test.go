// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mkaeser/menuboard/pkg/types"
)

func testIngestConfig(dir string) types.IngestConfig {
	return types.IngestConfig{
		WorkbookPath: filepath.Join(dir, "menueplan.xlsx"),
		CSVDir:       filepath.Join(dir, "csv_files"),
		HeaderRow:    3,
		DataStartRow: 5,
		Placeholder:  "*",
	}
}

// writeWorkbook creates an xlsx file shaped like the production input:
// three decorative rows, a header row, a spacer row, then data.
func writeWorkbook(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := "K1"
	_, err := f.NewSheet(sheet)
	require.NoError(t, err)
	require.NoError(t, f.DeleteSheet("Sheet1"))

	// Header row (0-based index 3, so spreadsheet row 4).
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]interface{}{"", "Montag KW 35", "Dienstag KW 35"}))
	// Data starts at 0-based index 5 (spreadsheet row 6).
	require.NoError(t, f.SetSheetRow(sheet, "A6", &[]interface{}{"Tagesmenü:", "Suppe", "Salat"}))
	require.NoError(t, f.SetSheetRow(sheet, "A7", &[]interface{}{"", "Brot", ""}))

	require.NoError(t, f.SaveAs(path))
}

func TestConvertWorkbook(t *testing.T) {
	dir := t.TempDir()
	cfg := testIngestConfig(dir)
	writeWorkbook(t, cfg.WorkbookPath)

	var log bytes.Buffer
	paths, err := ConvertWorkbook(cfg, &log)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Contains(t, log.String(), "converted: K1")

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	content := string(data)

	// Blank header and data cells become the placeholder token.
	assert.Contains(t, content, "*,Montag KW 35,Dienstag KW 35")
	assert.Contains(t, content, "Tagesmenü:,Suppe,Salat")
	assert.Contains(t, content, "*,Brot,*")
}

func TestConvertWorkbook_MissingFile(t *testing.T) {
	cfg := testIngestConfig(t.TempDir())
	_, err := ConvertWorkbook(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestSheetRecords_PadsRaggedRows(t *testing.T) {
	cfg := types.IngestConfig{HeaderRow: 0, DataStartRow: 1, Placeholder: "*"}
	rows := [][]string{
		{"", "Montag", "Dienstag"},
		{"label", "Suppe"}, // short row
	}

	records := sheetRecords(rows, cfg)

	require.Len(t, records, 2)
	assert.Equal(t, []string{"*", "Montag", "Dienstag"}, records[0])
	assert.Equal(t, []string{"label", "Suppe", "*"}, records[1])
}

func TestSheetRecords_HeaderBeyondSheet(t *testing.T) {
	cfg := types.IngestConfig{HeaderRow: 3, DataStartRow: 5, Placeholder: "*"}
	records := sheetRecords([][]string{{"only row"}}, cfg)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"*"}, records[0])
}
