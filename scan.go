// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bbcode

import (
	"strings"

	"golang.org/x/text/cases"
)

type tokenKind int

const (
	textToken tokenKind = iota
	openToken
	closeToken
)

// A token is one lexical unit of bracket markup:
// a run of literal text, an opening tag, or a closing tag.
type token struct {
	kind    tokenKind
	name    string // case-folded tag name
	attr    string // attribute value, without quotes
	hasAttr bool
	raw     string // source text
	off     int    // offset of raw in the input
}

// scan splits s into tokens.
// The raw texts of the returned tokens concatenate to s.
//
// Bracket sequences that do not have the shape of a tag,
// such as "[1, 2, 3]" or an unterminated "[b", are left in the text tokens.
// Whether a well-formed tag names a known tag is decided later, by the matcher.
func scan(s string) []token {
	fold := cases.Fold()
	var toks []token
	emitted := 0
	for i := 0; i < len(s); {
		j := strings.IndexByte(s[i:], '[')
		if j < 0 {
			break
		}
		i += j
		t, end, ok := scanTag(s, i)
		if !ok {
			i++
			continue
		}
		if emitted < i {
			toks = append(toks, token{kind: textToken, raw: s[emitted:i], off: emitted})
		}
		t.name = fold.String(t.name)
		t.raw = s[i:end]
		t.off = i
		toks = append(toks, t)
		emitted = end
		i = end
	}
	if emitted < len(s) {
		toks = append(toks, token{kind: textToken, raw: s[emitted:], off: emitted})
	}
	return toks
}

// scanTag parses a tag starting at s[i], which is '['.
// It recognizes [name], [name=value], [name="value"] and [/name],
// returning the token and the offset just past its closing bracket.
func scanTag(s string, i int) (t token, end int, ok bool) {
	j := i + 1
	t.kind = openToken
	if j < len(s) && s[j] == '/' {
		t.kind = closeToken
		j++
	}
	start := j
	if j >= len(s) || !isLetter(s[j]) {
		return
	}
	for j < len(s) && isLetterDigit(s[j]) {
		j++
	}
	t.name = s[start:j]
	if j >= len(s) {
		return
	}
	if s[j] == ']' {
		return t, j + 1, true
	}
	if t.kind == closeToken || s[j] != '=' {
		return
	}
	j++
	t.hasAttr = true

	// A quoted value may contain brackets but not newlines.
	if j < len(s) && s[j] == '"' {
		if k := strings.IndexAny(s[j+1:], "\"\n"); k >= 0 {
			q := j + 1 + k
			if s[q] == '"' && q+1 < len(s) && s[q+1] == ']' {
				t.attr = s[j+1 : q]
				return t, q + 2, true
			}
		}
	}

	// An unquoted value runs to the first closing bracket.
	k := j
	for k < len(s) && s[k] != ']' && s[k] != '[' && s[k] != '\n' {
		k++
	}
	if k >= len(s) || s[k] != ']' {
		return
	}
	t.attr = s[j:k]
	return t, k + 1, true
}
