// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaeser/menuboard/pkg/types"
)

func TestHeaderColor_CyclesPalette(t *testing.T) {
	assert.Equal(t, "headerYellow", HeaderColor(1))
	assert.Equal(t, "headerGreen", HeaderColor(2))
	assert.Equal(t, "headerPink", HeaderColor(7))
	// Palette wraps for columns beyond the seventh.
	assert.Equal(t, "headerYellow", HeaderColor(8))
}

func TestBuildTable(t *testing.T) {
	cells := []Cell{
		{Left: "", Icon: types.IconA, ImageRef: "../output_img/K1_row0_c1.png", Text: "Soup", Band: types.BandCyan},
		{Left: "T", Text: "", Band: types.BandYellow},
	}

	table := BuildTable("Montag", 1, cells)

	assert.Contains(t, table, `\begin{tabular}{|m{2.5cm}|m{3cm}|m{3.5cm}|m{5.5cm}|}`)
	assert.Contains(t, table, `\multicolumn{4}{|c|}{\cellcolor{headerYellow} \rule{0pt}{20pt}\textbf{Montag}} \\`)
	assert.Contains(t, table, `\rowcolor{rowCyan}`)
	assert.Contains(t, table, `\includegraphics[width=3.5cm,height=3.5cm,keepaspectratio]{A.jpg}`)
	assert.Contains(t, table, `\includegraphics[width=3.5cm,height=3.5cm,keepaspectratio]{../output_img/K1_row0_c1.png}`)
	assert.Contains(t, table, "Soup")
}

func TestBuildTable_EmptyItemRendersNoImageOrText(t *testing.T) {
	cells := []Cell{
		// ImageRef set but the item itself is blank: neither image nor
		// text may appear in the row.
		{Left: "S", ImageRef: "ghost.png", Text: "   ", Band: types.BandGreen},
	}

	table := BuildTable("Freitag", 5, cells)

	assert.NotContains(t, table, "ghost.png")
	rowLine := ""
	for _, line := range strings.Split(table, "\n") {
		if strings.Contains(line, `\textbf{S}`) {
			rowLine = line
		}
	}
	require.NotEmpty(t, rowLine)
	assert.Equal(t, `\rule{0pt}{70pt}\centering\textbf{S} &  &  &  \\ \hline`, rowLine)
}

func TestBuildTable_EscapesLeftValueAndText(t *testing.T) {
	cells := []Cell{
		{Left: "100%", Text: "Mac & Cheese", Band: types.BandRed},
	}

	table := BuildTable("Sonntag", 7, cells)

	assert.Contains(t, table, `\textbf{100\%}`)
	assert.Contains(t, table, `Mac \& Cheese`)
}

func TestBuildDocument_Wrapped(t *testing.T) {
	cells := []Cell{{Left: "E", Text: "Salat", Band: types.BandGreen}}

	doc := BuildDocument("Mittwoch", 3, cells, true)

	assert.True(t, strings.HasPrefix(doc, `\documentclass[a4paper,20pt]{article}`))
	assert.True(t, strings.HasSuffix(doc, `\end{document}`))
	assert.Contains(t, doc, `\definecolor{rowCyan}{RGB}{230,248,255}`)
	assert.Contains(t, doc, `\pagestyle{empty}`)
}

func TestBuildDocument_Unwrapped(t *testing.T) {
	cells := []Cell{{Left: "E", Text: "Salat", Band: types.BandGreen}}

	doc := BuildDocument("Mittwoch", 3, cells, false)

	assert.True(t, strings.HasPrefix(doc, `\begin{center}`))
	assert.NotContains(t, doc, `\documentclass`)
	assert.NotContains(t, doc, `\end{document}`)
}
