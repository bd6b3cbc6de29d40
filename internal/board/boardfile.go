// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package board

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/mkaeser/menuboard/pkg/types"
)

// BoardFile is the on-disk representation of board customization. The
// kitchen staff keep one next to the workbook to override the left
// column and the section labels without touching the main config.
type BoardFile struct {
	// LeftHeader overrides the left-column header label.
	LeftHeader string `yaml:"left_header,omitempty"`

	// LeftValues maps day labels to ordered left-column values.
	LeftValues map[string][]string `yaml:"left_values,omitempty"`

	// LabelTokens replaces the built-in section labels entirely.
	LabelTokens []string `yaml:"label_tokens,omitempty"`
}

// ReadBoardFile loads a board customization file from disk.
func ReadBoardFile(path string) (*BoardFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading board file: %w", err)
	}
	var bf BoardFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("parsing board file %s: %w", path, err)
	}
	return &bf, nil
}

// Apply merges the overrides into cfg. Unset fields leave the existing
// configuration untouched.
func (bf *BoardFile) Apply(cfg *types.BoardConfig) {
	if bf.LeftHeader != "" {
		cfg.LeftHeader = bf.LeftHeader
	}
	if len(bf.LeftValues) > 0 {
		if cfg.LeftValues == nil {
			cfg.LeftValues = make(map[string][]string, len(bf.LeftValues))
		}
		for label, vals := range bf.LeftValues {
			cfg.LeftValues[label] = vals
		}
	}
	if len(bf.LabelTokens) > 0 {
		cfg.LabelTokens = bf.LabelTokens
	}
}
