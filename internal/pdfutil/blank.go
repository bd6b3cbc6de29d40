// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfutil inspects and combines compiled PDF outputs: the
// blank-output quality gate and the merge of accepted boards.
package pdfutil

import (
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// blankTextThreshold is the maximum trimmed text length, in characters,
// at which a page still counts as visually empty. The value is a
// heuristic tuned for the expected table density, not a structural
// property of PDFs.
const blankTextThreshold = 50

// BlankChecker judges whether a compiled output is visually empty.
type BlankChecker interface {
	IsBlank(path string) bool
}

// TextBlankChecker decides blankness from the extracted text layer.
// Anything that cannot be parsed counts as blank: the gate fails safe
// toward exclusion.
type TextBlankChecker struct{}

// IsBlank reports whether the PDF at path has zero pages or no page
// whose trimmed extracted text exceeds the threshold.
func (TextBlankChecker) IsBlank(path string) (blank bool) {
	// The parser panics on some malformed inputs; treat those as blank too.
	defer func() {
		if recover() != nil {
			blank = true
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	numPages := r.NumPage()
	pages := make([]string, 0, numPages)
	fonts := make(map[string]*pdf.Font)
	for i := 1; i <= numPages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				ft := p.Font(name)
				fonts[name] = &ft
			}
		}
		text, err := p.GetPlainText(fonts)
		if err != nil {
			return true
		}
		pages = append(pages, text)
	}

	return blankByText(pages)
}

// blankByText applies the threshold rule to per-page extracted text:
// blank unless some page's trimmed text is longer than the threshold.
func blankByText(pages []string) bool {
	for _, text := range pages {
		if utf8.RuneCountInString(strings.TrimSpace(text)) > blankTextThreshold {
			return false
		}
	}
	return true
}
