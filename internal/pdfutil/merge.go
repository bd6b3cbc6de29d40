// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Merger concatenates PDFs, in the given order, into one output file.
type Merger interface {
	Merge(paths []string, outPath string) error
}

// PDFCPUMerger merges with pdfcpu. The merge is atomic: output is
// written to a temp file in the target directory and renamed on
// success, so a failed merge never leaves a partial board behind.
type PDFCPUMerger struct{}

// Merge concatenates paths into outPath.
func (PDFCPUMerger) Merge(paths []string, outPath string) error {
	if len(paths) == 0 {
		return fmt.Errorf("nothing to merge into %s", filepath.Base(outPath))
	}

	tmp := filepath.Join(filepath.Dir(outPath), "."+filepath.Base(outPath)+".tmp")
	if err := api.MergeCreateFile(paths, tmp, false, nil); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("merging %d files into %s: %w", len(paths), filepath.Base(outPath), err)
	}
	if err := os.Rename(tmp, outPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("finalizing %s: %w", filepath.Base(outPath), err)
	}
	return nil
}
