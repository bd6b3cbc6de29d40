// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package illus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaeser/menuboard/pkg/types"
)

func TestTranslate(t *testing.T) {
	vocab := map[string]string{
		"härdöpfel": "potatoes",
		"gschwellti": "boiled potatoes",
		"mit":       "with",
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "known words replaced", in: "Gschwellti mit Chäs", want: "boiled potatoes with chäs"},
		{name: "lookup is case-folded", in: "HÄRDÖPFEL", want: "potatoes"},
		{name: "unknown words pass through", in: "Spaghetti Bolognese", want: "spaghetti bolognese"},
		{name: "empty input", in: "", want: ""},
		{name: "collapses whitespace", in: "  mit   mit  ", want: "with with"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Translate(vocab, tt.in))
		})
	}
}

func TestTranslate_NilVocab(t *testing.T) {
	assert.Equal(t, "tagessuppe", Translate(nil, "Tagessuppe"))
}

func TestLoadVocab(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"suppe": "soup"}`), 0o644))

	vocab, err := LoadVocab(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"suppe": "soup"}, vocab)
}

func TestLoadVocab_Errors(t *testing.T) {
	_, err := LoadVocab(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0o644))
	_, err = LoadVocab(bad)
	assert.Error(t, err)
}

func TestIllustrate(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte("\x89PNG fake image bytes"))
	}))
	defer ts.Close()

	old := imageAPIBase
	imageAPIBase = ts.URL + "/prompt/"
	defer func() { imageAPIBase = old }()

	vocab := map[string]string{"suppe": "soup"}
	client := NewClient(ts.Client(), vocab, types.IllustrationConfig{
		PromptPrefix: "generiere ein gericht: ",
		Width:        512,
		Height:       512,
	})

	outPath := filepath.Join(t.TempDir(), "K1_row0_c1.png")
	err := client.Illustrate(context.Background(), "Suppe", outPath)
	require.NoError(t, err)

	assert.Equal(t, "/prompt/generiere ein gericht: soup", gotPath)
	assert.Equal(t, []string{"512"}, gotQuery["width"])
	assert.Equal(t, []string{"true"}, gotQuery["nologo"])

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fake image bytes")

	// No stray temp file next to the output.
	_, err = os.Stat(outPath + ".part")
	assert.True(t, os.IsNotExist(err))
}

func TestIllustrate_NonSuccessResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	old := imageAPIBase
	imageAPIBase = ts.URL + "/prompt/"
	defer func() { imageAPIBase = old }()

	client := NewClient(ts.Client(), nil, types.IllustrationConfig{})
	outPath := filepath.Join(t.TempDir(), "out.png")

	err := client.Illustrate(context.Background(), "Suppe", outPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr), "failed request must not create the image file")
}
