// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlankByText(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
		want  bool
	}{
		{name: "zero pages", pages: nil, want: true},
		{name: "exactly threshold is blank", pages: []string{strings.Repeat("x", 50)}, want: true},
		{name: "one over threshold is not blank", pages: []string{strings.Repeat("x", 51)}, want: false},
		{name: "whitespace does not count", pages: []string{strings.Repeat("x", 40) + strings.Repeat(" ", 20)}, want: true},
		{name: "any dense page rescues the document", pages: []string{"", strings.Repeat("y", 80), ""}, want: false},
		{name: "multibyte text counts runes not bytes", pages: []string{strings.Repeat("ü", 51)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, blankByText(tt.pages))
		})
	}
}

func TestIsBlank_FailsSafeTowardExclusion(t *testing.T) {
	checker := TextBlankChecker{}

	t.Run("missing file", func(t *testing.T) {
		assert.True(t, checker.IsBlank(filepath.Join(t.TempDir(), "missing.pdf")))
	})

	t.Run("not a PDF", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "garbage.pdf")
		if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
			t.Fatal(err)
		}
		assert.True(t, checker.IsBlank(path))
	})

	t.Run("truncated PDF header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "truncated.pdf")
		if err := os.WriteFile(path, []byte("%PDF-1.5\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		assert.True(t, checker.IsBlank(path))
	})
}
