// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mkaeser/menuboard/internal/board"
)

// Setup creates the working directories and copies the fixed pikto
// images into the tex directory, so includegraphics can reference them
// by bare filename. Missing pikto files are not an error; the affected
// rows simply render without an icon.
func (p *Pipeline) Setup() error {
	for _, dir := range []string{
		p.cfg.Render.TexDir,
		p.cfg.Render.PDFDir,
		p.cfg.Render.ImgDir,
		p.cfg.Render.AuxDir,
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	for _, file := range board.PiktoFiles() {
		src := filepath.Join(p.cfg.Render.PiktoDir, file)
		if _, err := os.Stat(src); err != nil {
			continue
		}
		if err := copyFile(src, filepath.Join(p.cfg.Render.TexDir, file)); err != nil {
			return fmt.Errorf("copying pikto %s: %w", file, err)
		}
	}
	return nil
}

// Cleanup removes the intermediate working directories. The PDF output
// directory holding the merged boards stays.
func (p *Pipeline) Cleanup() error {
	var firstErr error
	for _, dir := range []string{
		p.cfg.Render.TexDir,
		p.cfg.Render.ImgDir,
		p.cfg.Render.AuxDir,
		p.cfg.Ingest.CSVDir,
	} {
		if dir == "" {
			continue
		}
		if err := os.RemoveAll(dir); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("removing %s: %w", dir, err)
		}
	}
	return firstErr
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
