// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package illus resolves illustration images for menu items: prompts are
// translated word by word through a local vocabulary map and sent to a
// remote image-generation API.
package illus

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// LoadVocab reads a JSON word map (source vocabulary to target
// vocabulary). Keys are expected in lower case; Translate folds input
// before lookup.
func LoadVocab(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mapping file %s: %w", path, err)
	}
	var vocab map[string]string
	if err := json.Unmarshal(data, &vocab); err != nil {
		return nil, fmt.Errorf("parsing mapping file %s: %w", path, err)
	}
	return vocab, nil
}

// Translate replaces each word of s with its mapped equivalent, literal
// and word for word. Lookup is case-folded; unknown words pass through
// unchanged (already lower-cased by the fold).
func Translate(vocab map[string]string, s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		if replacement, ok := vocab[w]; ok {
			words[i] = replacement
		}
	}
	return strings.Join(words, " ")
}
