// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package board

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaeser/menuboard/pkg/types"
)

func TestReadBoardFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	content := `left_header: Uhrzeit
left_values:
  Montag: ["", "x", "y"]
label_tokens:
  - "Menü:"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	bf, err := ReadBoardFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Uhrzeit", bf.LeftHeader)
	assert.Equal(t, []string{"", "x", "y"}, bf.LeftValues["Montag"])
	assert.Equal(t, []string{"Menü:"}, bf.LabelTokens)
}

func TestReadBoardFile_Errors(t *testing.T) {
	_, err := ReadBoardFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("left_values: [not a map"), 0o644))
	_, err = ReadBoardFile(bad)
	assert.Error(t, err)
}

func TestBoardFileApply(t *testing.T) {
	cfg := types.BoardConfig{
		LeftHeader:  "Zeit",
		LabelTokens: types.DefaultLabelTokens,
		LeftValues:  map[string][]string{"Dienstag": {"a"}},
	}

	bf := &BoardFile{
		LeftValues: map[string][]string{"Montag": {"", "x"}},
	}
	bf.Apply(&cfg)

	// Unset fields stay.
	assert.Equal(t, "Zeit", cfg.LeftHeader)
	assert.Equal(t, types.DefaultLabelTokens, cfg.LabelTokens)

	// Overrides merge with existing per-day values.
	assert.Equal(t, []string{"a"}, cfg.LeftValues["Dienstag"])
	assert.Equal(t, []string{"", "x"}, cfg.LeftValues["Montag"])
}

func TestBoardFileApply_NilDestinationMap(t *testing.T) {
	var cfg types.BoardConfig
	bf := &BoardFile{LeftHeader: "Uhrzeit", LeftValues: map[string][]string{"Montag": {"x"}}}
	bf.Apply(&cfg)

	assert.Equal(t, "Uhrzeit", cfg.LeftHeader)
	assert.Equal(t, []string{"x"}, cfg.LeftValues["Montag"])
}
