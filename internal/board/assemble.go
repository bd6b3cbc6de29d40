// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package board

import (
	"fmt"
	"strings"

	"github.com/mkaeser/menuboard/pkg/types"
)

// Cell holds everything needed to emit one table row. Left and Text are
// raw; escaping happens here, exactly once.
type Cell struct {
	// Left is the custom left-column value, rendered bold.
	Left string

	// Icon selects the pikto image for the second column, "" for none.
	Icon types.Icon

	// ImageRef is the illustration path relative to the tex directory,
	// forward slashes, or "" when no illustration was resolved.
	ImageRef string

	// Text is the raw menu item.
	Text string

	// Band is the row background color.
	Band types.Band
}

// headerPalette is the fixed 7-color rotation for day headers, cycled by
// column index modulo the palette length.
var headerPalette = []string{
	"headerYellow", "headerGreen", "headerBlue", "headerRed",
	"headerOrange", "headerWhite", "headerPink",
}

// HeaderColor returns the header color name for a 1-based column index.
func HeaderColor(colIdx int) string {
	return headerPalette[(colIdx-1)%len(headerPalette)]
}

// includegraphics renders a centered, vertically aligned image cell.
func includegraphics(path string) string {
	return fmt.Sprintf(
		`\centering\raisebox{-0.5\height}{\includegraphics[width=3.5cm,height=3.5cm,keepaspectratio]{%s}}`,
		path,
	)
}

// BuildTable renders the 4-column day table: colored header spanning all
// columns, then one row per cell with left value, pikto, illustration,
// and item text.
func BuildTable(label string, colIdx int, cells []Cell) string {
	var rows []string
	for _, c := range cells {
		piktoCell := ""
		if file := PiktoFile(c.Icon); file != "" {
			piktoCell = includegraphics(file)
		}

		imgCell := ""
		textCell := ""
		if strings.TrimSpace(c.Text) != "" {
			if c.ImageRef != "" {
				imgCell = includegraphics(c.ImageRef)
			}
			textCell = Escape(c.Text)
		}

		row := fmt.Sprintf(
			"\\rowcolor{%s}\n\\rule{0pt}{70pt}\\centering\\textbf{%s} & %s & %s & %s \\\\ \\hline",
			c.Band, Escape(c.Left), piktoCell, imgCell, textCell,
		)
		rows = append(rows, row)
	}

	header := fmt.Sprintf(
		`\multicolumn{4}{|c|}{\cellcolor{%s} \rule{0pt}{20pt}\textbf{%s}} \\`,
		HeaderColor(colIdx), Escape(label),
	)

	return fmt.Sprintf(`\begin{center}
\Large
\begin{tabular}{|m{2.5cm}|m{3cm}|m{3.5cm}|m{5.5cm}|}
\hline
%s
\hline
%s
\end{tabular}
\end{center}`, header, strings.Join(rows, "\n"))
}

// BuildDocument renders a day table, optionally wrapped in the full
// document preamble and postamble. Unwrapped output is a bare fragment
// for embedding in a larger document.
func BuildDocument(label string, colIdx int, cells []Cell, wrap bool) string {
	table := BuildTable(label, colIdx, cells)
	if !wrap {
		return table
	}
	return Preamble + "\n\n" + table + "\n\n" + Postamble
}
