// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the menuboard pipeline.
package types

import "strconv"

// DaySlots is the fixed number of item slots per day column. Shorter item
// lists are padded with empty strings, longer ones truncated, before row
// composition.
const DaySlots = 6

// Icon identifies one of the fixed pikto images placed in a table row.
type Icon string

const (
	IconA Icon = "A"
	IconB Icon = "B"
	IconC Icon = "C"
	IconD Icon = "D"
)

// Band is a background color grouping applied to one or more adjacent
// table rows. Values are LaTeX color names defined in the preamble.
type Band string

const (
	BandCyan   Band = "rowCyan"
	BandYellow Band = "rowYellow"
	BandGreen  Band = "rowGreen"
	BandRed    Band = "rowRed"
)

// RowDescriptor maps one rendered table row to an item slot, an optional
// pikto icon, and a background band.
type RowDescriptor struct {
	// Slot indexes into the padded item list of a DayColumn.
	Slot int

	// Icon is the pikto key for this row, or "" when the row carries none.
	Icon Icon

	// Band is the background color for this row.
	Band Band
}

// DayColumn holds one day's menu items extracted from a weekly table.
type DayColumn struct {
	// Label is the day name ("Montag".."Sonntag") or a synthesized
	// fallback ("Tag8", ...) for columns beyond the calendar week. It
	// selects the row shape and the left-column defaults and is part of
	// output filenames.
	Label string

	// Header is the column's original label from the source table,
	// displayed in the rendered table header.
	Header string

	// Index is the 1-based column index in the source table. It selects
	// the header color and is part of generated image filenames.
	Index int

	// Items is the padded item list, always exactly DaySlots entries.
	// Values are raw text; LaTeX escaping happens at assembly time.
	Items []string

	// Midweek reports whether this day uses the 5-row shape.
	Midweek bool
}

// MenuTable is one logical weekly sheet with its ordered day columns.
type MenuTable struct {
	Name string
	Days []DayColumn
}

// RenderedDay records the outcome of rendering a single day column.
type RenderedDay struct {
	// Name is the table/day identifier, e.g. "K1_Montag".
	Name string

	// TexPath is the written LaTeX source file.
	TexPath string

	// PDFPath is the compiled output, or "" when compilation failed.
	PDFPath string

	// Accepted reports whether the compiled output exists and was not
	// judged blank.
	Accepted bool
}

// dayNames is the fixed calendar sequence assigned to day columns in order.
var dayNames = []string{
	"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag",
}

// DayLabel returns the calendar name for a 1-based column index, or a
// synthesized "TagN" label for columns beyond the seventh.
func DayLabel(colIdx int) string {
	if colIdx >= 1 && colIdx <= len(dayNames) {
		return dayNames[colIdx-1]
	}
	return "Tag" + strconv.Itoa(colIdx)
}

// IsMidweek reports whether the labeled day is one of the two designated
// midweek days that use the 5-row shape.
func IsMidweek(label string) bool {
	return label == "Dienstag" || label == "Donnerstag"
}

// PadItems returns items padded with empty strings or truncated so the
// result has exactly DaySlots entries.
func PadItems(items []string) []string {
	padded := make([]string, DaySlots)
	copy(padded, items)
	return padded
}
