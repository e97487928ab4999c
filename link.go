// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bbcode

import (
	"strings"
	"unicode/utf8"

	"github.com/yosida95/uritemplate/v3"
)

// linkStart returns the start tag of a link to the accepted target u.
func (r *Renderer) linkStart(u string) string {
	if r.external(u) {
		return `<a href="` + href(u) + `" rel="external nofollow">`
	}
	return `<a href="` + href(u) + `">`
}

// expandURL expands the URI template t with the single variable name=value.
func expandURL(t *uritemplate.Template, name, value string) (string, bool) {
	vals := uritemplate.Values{}
	vals.Set(name, uritemplate.String(value))
	u, err := t.Expand(vals)
	if err != nil || u == "" {
		return "", false
	}
	return u, true
}

// parseAutoLink is an [inlineParser] for a bare http:// or https:// URL.
// The caller has checked that s[start] is 'h' or 'H'
// and that it does not follow a letter or digit.
//
// The link runs from the scheme through the host and then,
// if the host is followed by a path, query or fragment,
// to the first space or character not allowed in a URL.
// Trailing punctuation and unbalanced closing parentheses
// are left out of the link, so that "see http://example.com/." works.
func parseAutoLink(r *Renderer, s string, start int) (html string, end int, ok bool) {
	i := start
	switch {
	case hasPrefixFold(s[i:], "http://"):
		i += len("http://")
	case hasPrefixFold(s[i:], "https://"):
		i += len("https://")
	default:
		return
	}

	// Host, failing fast so that "http://http://..." is not rescanned.
	if i >= len(s) || !isLetterDigit(s[i]) {
		return
	}
	for i < len(s) && isHost(s[i]) {
		i++
	}

	paren := 0
	if i < len(s) && (s[i] == '/' || s[i] == '?' || s[i] == '#') {
		for i < len(s) {
			c, n := utf8.DecodeRuneInString(s[i:])
			if isURLStop(c) {
				break
			}
			switch c {
			case '(':
				paren++
			case ')':
				paren--
			}
			i += n
		}
	}

Trim:
	for i > start {
		switch s[i-1] {
		case '?', '!', '.', ',', ':', ';', '\'', '*':
			i--
		case ')':
			if paren >= 0 {
				break Trim
			}
			paren++
			i--
		default:
			break Trim
		}
	}

	u, ok := checkURL(s[start:i])
	if !ok {
		return "", 0, false
	}
	return r.linkStart(u) + htmlEscaper.Replace(u) + "</a>", i, true
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
