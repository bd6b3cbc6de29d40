// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/mkaeser/menuboard/pkg/types"
)

const defaultUserAgent = "menuboard/0.1"

// setConfigDefaults registers the built-in configuration so a bare
// checkout with the conventional directory layout works without any
// config file.
func setConfigDefaults() {
	viper.SetDefault("ingest.workbook_path", filepath.Join("Menues", "menueplan.xlsx"))
	viper.SetDefault("ingest.csv_dir", "csv_files")
	viper.SetDefault("ingest.header_row", 3)
	viper.SetDefault("ingest.data_start_row", 5)
	viper.SetDefault("ingest.placeholder", "*")

	viper.SetDefault("board.table_prefix", "K")
	viper.SetDefault("board.left_header", "Zeit")
	viper.SetDefault("board.wrap_document", true)

	viper.SetDefault("render.tex_dir", "output_tex")
	viper.SetDefault("render.pdf_dir", "Menues")
	viper.SetDefault("render.img_dir", "output_img")
	viper.SetDefault("render.aux_dir", "log")
	viper.SetDefault("render.pikto_dir", "Piktos")
	viper.SetDefault("render.timeout", 60*time.Second)

	viper.SetDefault("illustration.enabled", true)
	viper.SetDefault("illustration.mapping_file", "dict.json")
	viper.SetDefault("illustration.prompt_prefix", "generiere ein gericht: ")
	viper.SetDefault("illustration.timeout", 30*time.Second)
	viper.SetDefault("illustration.user_agent", defaultUserAgent)
	viper.SetDefault("illustration.width", 1024)
	viper.SetDefault("illustration.height", 1024)
}

// pipelineConfig assembles the full stage configuration from viper.
func pipelineConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Ingest: types.IngestConfig{
			WorkbookPath: viper.GetString("ingest.workbook_path"),
			CSVDir:       viper.GetString("ingest.csv_dir"),
			HeaderRow:    viper.GetInt("ingest.header_row"),
			DataStartRow: viper.GetInt("ingest.data_start_row"),
			Placeholder:  viper.GetString("ingest.placeholder"),
		},
		Board: types.BoardConfig{
			TablePrefix:  viper.GetString("board.table_prefix"),
			LabelTokens:  labelTokens(),
			LeftHeader:   viper.GetString("board.left_header"),
			LeftValues:   viper.GetStringMapStringSlice("board.left_values"),
			WrapDocument: viper.GetBool("board.wrap_document"),
		},
		Render: types.RenderConfig{
			TexDir:   viper.GetString("render.tex_dir"),
			PDFDir:   viper.GetString("render.pdf_dir"),
			ImgDir:   viper.GetString("render.img_dir"),
			AuxDir:   viper.GetString("render.aux_dir"),
			PiktoDir: viper.GetString("render.pikto_dir"),
			Timeout:  viper.GetDuration("render.timeout"),
		},
		Illustration: types.IllustrationConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("illustration.timeout"),
				UserAgent: viper.GetString("illustration.user_agent"),
			},
			Enabled:      viper.GetBool("illustration.enabled"),
			MappingFile:  viper.GetString("illustration.mapping_file"),
			PromptPrefix: viper.GetString("illustration.prompt_prefix"),
			Width:        viper.GetInt("illustration.width"),
			Height:       viper.GetInt("illustration.height"),
		},
	}
}

func labelTokens() []string {
	if tokens := viper.GetStringSlice("board.label_tokens"); len(tokens) > 0 {
		return tokens
	}
	return types.DefaultLabelTokens
}
