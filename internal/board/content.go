// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package board

import "strings"

// placeholderItems are values that carry no menu content: blank cells,
// the sheet placeholder tokens, and pandas-style missing markers that
// survive spreadsheet round-trips.
var placeholderItems = map[string]bool{
	"":    true,
	"-":   true,
	"*":   true,
	"nan": true,
}

// Meaningful reports whether a single item holds renderable content.
// The check is case-sensitive: "nan" is a missing marker, "Nan" is food.
func Meaningful(item string) bool {
	return !placeholderItems[strings.TrimSpace(item)]
}

// HasContent reports whether at least one item in the list is meaningful.
// It must be applied to unescaped item text so escaping can never hide
// content from the gate.
func HasContent(items []string) bool {
	for _, item := range items {
		if Meaningful(item) {
			return true
		}
	}
	return false
}
