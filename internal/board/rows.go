// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package board

import "github.com/mkaeser/menuboard/pkg/types"

// standardRows is the 6-row weekday shape.
var standardRows = []types.RowDescriptor{
	{Slot: 0, Icon: types.IconA, Band: types.BandCyan},
	{Slot: 1, Band: types.BandCyan},
	{Slot: 2, Icon: types.IconB, Band: types.BandYellow},
	{Slot: 3, Icon: types.IconC, Band: types.BandGreen},
	{Slot: 4, Band: types.BandGreen},
	{Slot: 5, Icon: types.IconD, Band: types.BandRed},
}

// midweekRows is the 5-row shape used on the two designated midweek days.
var midweekRows = []types.RowDescriptor{
	{Slot: 0, Icon: types.IconA, Band: types.BandCyan},
	{Slot: 1, Band: types.BandCyan},
	{Slot: 2, Icon: types.IconC, Band: types.BandGreen},
	{Slot: 3, Band: types.BandGreen},
	{Slot: 4, Icon: types.IconD, Band: types.BandRed},
}

// RowsFor returns the fixed row-shape template for a day. Descriptors
// whose slot index is not covered by itemCount are dropped silently.
func RowsFor(midweek bool, itemCount int) []types.RowDescriptor {
	template := standardRows
	if midweek {
		template = midweekRows
	}
	rows := make([]types.RowDescriptor, 0, len(template))
	for _, rd := range template {
		if rd.Slot >= itemCount {
			continue
		}
		rows = append(rows, rd)
	}
	return rows
}

// defaultLeftWeekday and defaultLeftMidweek are the built-in left-column
// values used when no per-day override is configured.
var (
	defaultLeftWeekday = []string{"", "", "T", "E", "S", ""}
	defaultLeftMidweek = []string{"", "", "E", "S", "A"}
)

// LeftValues returns the left-column values for a day: the configured
// override when present, otherwise the built-in defaults for the day shape.
func LeftValues(overrides map[string][]string, label string, midweek bool) []string {
	if vals, ok := overrides[label]; ok {
		return vals
	}
	if midweek {
		return defaultLeftMidweek
	}
	return defaultLeftWeekday
}

// piktoFiles maps icon keys to the fixed image filenames copied into the
// tex directory before rendering.
var piktoFiles = map[types.Icon]string{
	types.IconA: "A.jpg",
	types.IconB: "B.jpg",
	types.IconC: "C.jpg",
	types.IconD: "D.jpg",
}

// PiktoFile returns the image filename for an icon key, or "" for an
// unknown or empty key.
func PiktoFile(icon types.Icon) string {
	return piktoFiles[icon]
}

// PiktoFiles returns all fixed icon image filenames.
func PiktoFiles() []string {
	files := make([]string, 0, len(piktoFiles))
	for _, f := range piktoFiles {
		files = append(files, f)
	}
	return files
}
