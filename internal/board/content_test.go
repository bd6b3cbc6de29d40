// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasContent(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  bool
	}{
		{name: "empty list", items: []string{}, want: false},
		{name: "nil list", items: nil, want: false},
		{name: "only placeholders", items: []string{"-", "*", "", "nan"}, want: false},
		{name: "whitespace only", items: []string{"   ", "\t"}, want: false},
		{name: "one real item among placeholders", items: []string{"-", "Soup"}, want: true},
		{name: "padded whitespace around placeholder", items: []string{" - ", " * "}, want: false},
		{name: "case-sensitive nan check", items: []string{"Nan"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasContent(tt.items))
		})
	}
}

func TestMeaningful(t *testing.T) {
	assert.True(t, Meaningful("Salat"))
	assert.False(t, Meaningful("  -  "))
	assert.False(t, Meaningful("nan"))
}
