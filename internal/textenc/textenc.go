// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textenc decodes bytes whose encoding depends on the host
// locale. Spreadsheet exports and pdflatex diagnostics arrive as UTF-8
// on most systems but as Latin-1 or Windows-1252 on others, so a fixed
// fallback chain is applied: UTF-8, then ISO 8859-1, then Windows-1252
// with lossy substitution as the last resort.
package textenc

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Decode converts raw bytes to a string using the fallback chain.
func Decode(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	if s, err := charmap.ISO8859_1.NewDecoder().Bytes(b); err == nil {
		return string(s)
	}
	s, _ := charmap.Windows1252.NewDecoder().Bytes(b)
	return string(s)
}
