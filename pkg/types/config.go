// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "menuboard/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// IngestConfig holds settings for the workbook ingestion stage.
type IngestConfig struct {
	// WorkbookPath is the xlsx file holding one sheet per canteen.
	WorkbookPath string `json:"workbook_path" yaml:"workbook_path"`

	// CSVDir receives one CSV file per workbook sheet.
	CSVDir string `json:"csv_dir" yaml:"csv_dir"`

	// HeaderRow is the 0-based sheet row holding the day labels (default 3).
	HeaderRow int `json:"header_row" yaml:"header_row"`

	// DataStartRow is the 0-based sheet row where menu data begins (default 5).
	DataStartRow int `json:"data_start_row" yaml:"data_start_row"`

	// Placeholder substitutes blank cells and headers (default "*").
	Placeholder string `json:"placeholder" yaml:"placeholder"`
}

// BoardConfig holds settings for day-table composition.
type BoardConfig struct {
	// TablePrefix restricts rendering to tables whose name starts with
	// this prefix (default "K").
	TablePrefix string `json:"table_prefix" yaml:"table_prefix"`

	// LabelTokens are cell values treated as section labels and skipped
	// during item extraction.
	LabelTokens []string `json:"label_tokens" yaml:"label_tokens"`

	// LeftHeader is the header label for the custom left-hand column
	// (default "Zeit"). The 4-column day header spans the full table
	// width, so the label is carried for callers embedding unwrapped
	// fragments under their own heading.
	LeftHeader string `json:"left_header" yaml:"left_header"`

	// LeftValues maps day labels to ordered left-column values,
	// overriding the built-in per-day defaults.
	LeftValues map[string][]string `json:"left_values" yaml:"left_values"`

	// WrapDocument controls whether each day is emitted as a complete
	// LaTeX document or a bare table fragment for embedding.
	WrapDocument bool `json:"wrap_document" yaml:"wrap_document"`
}

// RenderConfig holds settings for LaTeX compilation and working directories.
type RenderConfig struct {
	// TexDir receives the per-day LaTeX sources and the copied pikto images.
	TexDir string `json:"tex_dir" yaml:"tex_dir"`

	// PDFDir receives accepted per-day PDFs and the final merged boards.
	PDFDir string `json:"pdf_dir" yaml:"pdf_dir"`

	// ImgDir receives generated illustration images.
	ImgDir string `json:"img_dir" yaml:"img_dir"`

	// AuxDir receives pdflatex auxiliary output.
	AuxDir string `json:"aux_dir" yaml:"aux_dir"`

	// PiktoDir holds the fixed icon images A.jpg through D.jpg.
	PiktoDir string `json:"pikto_dir" yaml:"pikto_dir"`

	// Timeout bounds each pdflatex pass (default 60s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// IllustrationConfig holds settings for the illustration stage.
type IllustrationConfig struct {
	HTTPConfig `yaml:",inline"`

	// Enabled controls whether illustrations are requested at all.
	// When false every cell renders text-only.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// MappingFile is a JSON word map applied to prompts before the
	// request (default "dict.json"). Lookup is case-folded; unknown
	// words pass through unchanged.
	MappingFile string `json:"mapping_file" yaml:"mapping_file"`

	// PromptPrefix is prepended to every translated prompt.
	PromptPrefix string `json:"prompt_prefix" yaml:"prompt_prefix"`

	// Width and Height are the requested image dimensions (default 1024).
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// DefaultLabelTokens are the section labels found in the source sheets;
// they structure the column but are not menu items.
var DefaultLabelTokens = []string{
	"Tagesmenü:", "Vegetarisch:", "Salatteller:", "Ausweichmenü:", "Vegi di", "Vegi do",
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Ingest       IngestConfig       `json:"ingest" yaml:"ingest"`
	Board        BoardConfig        `json:"board" yaml:"board"`
	Render       RenderConfig       `json:"render" yaml:"render"`
	Illustration IllustrationConfig `json:"illustration" yaml:"illustration"`
}
