// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives the menu board run: day columns are gated,
// composed, illustrated, compiled and filtered one at a time, then the
// accepted outputs are merged into the two fixed boards and the working
// directories are removed.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mkaeser/menuboard/internal/board"
	"github.com/mkaeser/menuboard/internal/illus"
	"github.com/mkaeser/menuboard/internal/latex"
	"github.com/mkaeser/menuboard/internal/pdfutil"
	"github.com/mkaeser/menuboard/pkg/types"
)

const (
	// firstBoardSize is the fixed split point: the first board receives
	// this many accepted days, the second board the remainder.
	firstBoardSize = 5

	firstBoardName  = "Kantine 1.pdf"
	secondBoardName = "Kantine 2.pdf"
)

// Deps holds the pipeline's collaborators. All are injected so the run
// can be tested without pdflatex, a PDF parser, or the image API.
type Deps struct {
	Compiler latex.Compiler
	Blank    pdfutil.BlankChecker
	Merger   pdfutil.Merger

	// Illustrator may be nil, in which case every cell renders text-only.
	Illustrator illus.Illustrator
}

// Pipeline renders menu tables into the merged boards.
type Pipeline struct {
	cfg  types.PipelineConfig
	deps Deps
}

// New creates a pipeline from explicit configuration and collaborators.
func New(cfg types.PipelineConfig, deps Deps) *Pipeline {
	return &Pipeline{cfg: cfg, deps: deps}
}

// dayStatus is the outcome of processing one day column.
type dayStatus int

const (
	statusRendered dayStatus = iota
	statusSkipped
	statusBlank
	statusFailed
)

// BatchResult holds the outcome of a pipeline run.
type BatchResult struct {
	Rendered int
	Skipped  int
	Blank    int
	Failed   int

	// Boards lists the merged output files that were produced.
	Boards []string
}

// Total returns the total number of day columns processed.
func (r BatchResult) Total() int {
	return r.Rendered + r.Skipped + r.Blank + r.Failed
}

// HasFailures reports whether any day failed to render.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Run processes every day column of every table, merges the accepted
// outputs and cleans up the working directories. Per-day failures are
// logged and counted; they never abort sibling days. The returned error
// covers merge and cleanup problems only.
func (p *Pipeline) Run(ctx context.Context, tables []types.MenuTable, w io.Writer) (BatchResult, error) {
	var result BatchResult
	var accepted []string

	for _, table := range tables {
		for _, day := range table.Days {
			if err := ctx.Err(); err != nil {
				return result, err
			}

			rendered, status := p.renderDay(ctx, table.Name, day, w)
			switch status {
			case statusRendered:
				result.Rendered++
				accepted = append(accepted, rendered.PDFPath)
			case statusSkipped:
				result.Skipped++
			case statusBlank:
				result.Blank++
			case statusFailed:
				result.Failed++
			}
		}
	}

	boards, mergeErr := p.mergeBoards(accepted, w)
	result.Boards = boards

	cleanupErr := p.Cleanup()

	fmt.Fprintf(w, "\nBatch summary: %d rendered, %d skipped, %d blank, %d failed (total: %d)\n",
		result.Rendered, result.Skipped, result.Blank, result.Failed, result.Total())

	return result, errors.Join(mergeErr, cleanupErr)
}

// renderDay takes one day column through the full chain: content gate,
// row composition, illustration, assembly, compilation, blank filter.
func (p *Pipeline) renderDay(ctx context.Context, tableName string, day types.DayColumn, w io.Writer) (types.RenderedDay, dayStatus) {
	name := tableName + "_" + day.Label
	rendered := types.RenderedDay{Name: name}

	if !board.HasContent(day.Items) {
		fmt.Fprintf(w, "skipped: %s (no content)\n", name)
		return rendered, statusSkipped
	}

	rows := board.RowsFor(day.Midweek, len(day.Items))
	left := board.LeftValues(p.cfg.Board.LeftValues, day.Label, day.Midweek)

	cells := make([]board.Cell, 0, len(rows))
	for rowIdx, rd := range rows {
		cell := board.Cell{
			Icon: rd.Icon,
			Band: rd.Band,
			Text: day.Items[rd.Slot],
		}
		if rowIdx < len(left) {
			cell.Left = left[rowIdx]
		}
		// Placeholder leftovers like "-" render as text but never earn
		// an illustration request.
		if p.deps.Illustrator != nil && board.Meaningful(cell.Text) {
			cell.ImageRef = p.resolveIllustration(ctx, tableName, rowIdx, day.Index, cell.Text, w)
		}
		cells = append(cells, cell)
	}

	doc := board.BuildDocument(day.Header, day.Index, cells, p.cfg.Board.WrapDocument)

	texPath := filepath.Join(p.cfg.Render.TexDir, name+".tex")
	rendered.TexPath = texPath
	if err := os.WriteFile(texPath, []byte(doc), 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
		return rendered, statusFailed
	}

	pdfPath, err := p.deps.Compiler.Compile(ctx, texPath)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
		return rendered, statusFailed
	}

	if p.deps.Blank.IsBlank(pdfPath) {
		os.Remove(pdfPath)
		fmt.Fprintf(w, "blank:   %s (discarded)\n", name)
		return rendered, statusBlank
	}

	finalPath := filepath.Join(p.cfg.Render.PDFDir, name+".pdf")
	if err := os.Rename(pdfPath, finalPath); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
		return rendered, statusFailed
	}

	rendered.PDFPath = finalPath
	rendered.Accepted = true
	fmt.Fprintf(w, "rendered: %s\n", name)
	return rendered, statusRendered
}

// resolveIllustration requests an image for one cell and returns its
// reference relative to the tex directory, forward slashes regardless of
// host path conventions. Failures degrade to a text-only cell.
func (p *Pipeline) resolveIllustration(ctx context.Context, tableName string, rowIdx, colIdx int, text string, w io.Writer) string {
	imgName := fmt.Sprintf("%s_row%d_c%d.png", tableName, rowIdx, colIdx)
	imgPath := filepath.Join(p.cfg.Render.ImgDir, imgName)

	if err := p.deps.Illustrator.Illustrate(ctx, text, imgPath); err != nil {
		fmt.Fprintf(w, "  warning: illustration %s: %v\n", imgName, err)
		return ""
	}

	rel, err := filepath.Rel(p.cfg.Render.TexDir, imgPath)
	if err != nil {
		rel = imgPath
	}
	return filepath.ToSlash(rel)
}

// mergeBoards partitions the accepted outputs at the fixed split point
// and merges each non-empty partition into its named board. Per-day
// files are deleted only after their partition merged successfully.
func (p *Pipeline) mergeBoards(accepted []string, w io.Writer) ([]string, error) {
	if len(accepted) == 0 {
		fmt.Fprintln(w, "no accepted days, nothing to merge")
		return nil, nil
	}

	split := firstBoardSize
	if len(accepted) < split {
		split = len(accepted)
	}
	partitions := []struct {
		name  string
		paths []string
	}{
		{firstBoardName, accepted[:split]},
		{secondBoardName, accepted[split:]},
	}

	var boards []string
	var errs []error
	for _, part := range partitions {
		if len(part.paths) == 0 {
			continue
		}
		outPath := filepath.Join(p.cfg.Render.PDFDir, part.name)
		if err := p.deps.Merger.Merge(part.paths, outPath); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", part.name, err)
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(w, "merged:  %s (%d days)\n", part.name, len(part.paths))
		boards = append(boards, outPath)

		for _, path := range part.paths {
			os.Remove(path)
		}
	}
	return boards, errors.Join(errs...)
}
