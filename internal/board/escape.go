// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package board composes styled LaTeX menu tables from day columns:
// escaping, content classification, row-shape templates, and document
// assembly.
package board

import "strings"

// escapes maps LaTeX-special runes to their safe sequences. Escape walks
// the input once, so a backslash emitted for one rune is never picked up
// and re-escaped by a later rule.
var escapes = map[rune]string{
	'&':  `\&`,
	'%':  `\%`,
	'$':  `\$`,
	'#':  `\#`,
	'_':  `\_`,
	'{':  `\{`,
	'}':  `\}`,
	'~':  `\textasciitilde{}`,
	'^':  `\textasciicircum{}`,
	'\\': `\textbackslash{}`,
}

// unescapes lists the escape sequences with their original runes, longest
// sequence first so Unescape always matches the full sequence before any
// prefix of it.
var unescapes = []struct {
	seq string
	r   rune
}{
	{`\textasciicircum{}`, '^'},
	{`\textasciitilde{}`, '~'},
	{`\textbackslash{}`, '\\'},
	{`\&`, '&'},
	{`\%`, '%'},
	{`\$`, '$'},
	{`\#`, '#'},
	{`\_`, '_'},
	{`\{`, '{'},
	{`\}`, '}'},
}

// Escape replaces LaTeX-special characters in raw text with their safe
// sequences in a single pass.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if esc, ok := escapes[r]; ok {
			b.WriteString(esc)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Unescape is the exact left inverse of Escape restricted to its image:
// for any raw text t free of escape sequences, Unescape(Escape(t)) == t.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			i++
			continue
		}
		matched := false
		for _, u := range unescapes {
			if strings.HasPrefix(s[i:], u.seq) {
				b.WriteRune(u.r)
				i += len(u.seq)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}
