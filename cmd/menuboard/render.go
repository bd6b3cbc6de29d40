package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkaeser/menuboard/internal/board"
	"github.com/mkaeser/menuboard/internal/illus"
	"github.com/mkaeser/menuboard/internal/ingest"
	"github.com/mkaeser/menuboard/internal/latex"
	"github.com/mkaeser/menuboard/internal/pdfutil"
	"github.com/mkaeser/menuboard/internal/pipeline"
	"github.com/mkaeser/menuboard/pkg/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the CSV tables into the merged menu boards",
	Long: `Render reads the per-canteen CSV tables, composes each day column
into a colored LaTeX table, compiles it with pdflatex, discards blank
output, and merges the accepted days into the two board files.`,
	RunE: runRender,
}

func init() {
	addRenderFlags(renderCmd)
	rootCmd.AddCommand(renderCmd)
}

// addRenderFlags registers the rendering flags shared by render and
// generate.
func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().String("csv-dir", "", "directory holding the per-sheet CSV files (default csv_files)")
	cmd.Flags().String("pdf-dir", "", "output directory for the merged boards (default Menues)")
	cmd.Flags().String("board-file", "", "YAML file with left-column and label overrides")
	cmd.Flags().Bool("no-images", false, "skip dish illustrations, render text-only cells")
	cmd.Flags().Bool("fragments", false, "emit bare table fragments instead of complete documents")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := renderConfig(cmd)
	if err != nil {
		return err
	}
	return renderTables(cmd.Context(), cfg)
}

// renderConfig applies the shared rendering flags on top of the viper
// configuration.
func renderConfig(cmd *cobra.Command) (types.PipelineConfig, error) {
	cfg := pipelineConfig()

	if v, _ := cmd.Flags().GetString("csv-dir"); v != "" {
		cfg.Ingest.CSVDir = v
	}
	if v, _ := cmd.Flags().GetString("pdf-dir"); v != "" {
		cfg.Render.PDFDir = v
	}
	if noImages, _ := cmd.Flags().GetBool("no-images"); noImages {
		cfg.Illustration.Enabled = false
	}
	if fragments, _ := cmd.Flags().GetBool("fragments"); fragments {
		cfg.Board.WrapDocument = false
	}

	if path, _ := cmd.Flags().GetString("board-file"); path != "" {
		bf, err := board.ReadBoardFile(path)
		if err != nil {
			return cfg, err
		}
		bf.Apply(&cfg.Board)
	}
	return cfg, nil
}

// renderTables runs the board pipeline over every table found in the
// CSV directory.
func renderTables(ctx context.Context, cfg types.PipelineConfig) error {
	compiler := latex.NewPDFLaTeX(cfg.Render.AuxDir, cfg.Render.Timeout)
	if !compiler.Available() {
		return fmt.Errorf("pdflatex not found in PATH")
	}

	deps := pipeline.Deps{
		Compiler:    compiler,
		Blank:       pdfutil.TextBlankChecker{},
		Merger:      pdfutil.PDFCPUMerger{},
		Illustrator: newIllustrator(cfg.Illustration),
	}

	paths, err := ingest.ListTables(cfg.Ingest.CSVDir, cfg.Board.TablePrefix)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no %s*.csv tables found in %s", cfg.Board.TablePrefix, cfg.Ingest.CSVDir)
	}

	var tables []types.MenuTable
	for _, path := range paths {
		table, err := ingest.LoadTable(path, cfg.Board)
		if err != nil {
			return err
		}
		tables = append(tables, *table)
	}

	p := pipeline.New(cfg, deps)
	if err := p.Setup(); err != nil {
		return err
	}

	result, err := p.Run(ctx, tables, os.Stdout)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d day(s) failed rendering", result.Failed)
	}
	return nil
}

// newIllustrator builds the production illustration client, or returns
// nil for text-only rendering. A missing vocabulary file is tolerated:
// prompts go out untranslated.
func newIllustrator(cfg types.IllustrationConfig) illus.Illustrator {
	if !cfg.Enabled {
		return nil
	}

	vocab, err := illus.LoadVocab(cfg.MappingFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: word map %s: %v\n", cfg.MappingFile, err)
		vocab = nil
	}

	client := &http.Client{Timeout: cfg.Timeout}
	return illus.NewClient(client, vocab, cfg)
}
