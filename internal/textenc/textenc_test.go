// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{
			name: "valid UTF-8 passes through",
			in:   []byte("Menüplan für Zürich"),
			want: "Menüplan für Zürich",
		},
		{
			name: "latin-1 umlaut",
			in:   []byte{'M', 'e', 'n', 0xFC, 'p', 'l', 'a', 'n'}, // 0xFC = ü in ISO 8859-1
			want: "Menüplan",
		},
		{
			name: "empty input",
			in:   nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.in))
		})
	}
}
