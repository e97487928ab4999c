// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bbcode

import (
	"strings"
)

// Inline Shortcuts
//
// Text outside links is scanned for shortcuts that expand to markup:
//
//	http://example.com/      a link
//	:iconNAME:               a user's icon and name, linking to the user
//	:NAMEicon:               a user's icon, linking to the user
//	:linkNAME:               a user's name, linking to the user
//	(c) (r) (tm)             © ® ™
//	-----                    a horizontal rule (five or more hyphens)
//	[1, 2, 3]                a PREV | FIRST | NEXT strip of submission links
//
// The scan is a single left-to-right pass: at each byte that can start
// a shortcut, the parser for that shortcut runs, and if it succeeds
// the shortcut is replaced and the scan resumes after it.
// Everything else is escaped.
//
// Each parser must fail in time proportional to the text it looked at,
// and a failed parse leaves that text to be scanned again from the next byte,
// so parsers stop at the first byte that cannot belong to their shortcut
// to avoid going quadratic.

// An inlineParser parses a shortcut at s[start:], returning its HTML
// and the index where the shortcut ends (that is, the HTML replaces s[start:end]).
// If there is no shortcut at s[start:], it returns ok=false.
type inlineParser func(r *Renderer, s string, start int) (html string, end int, ok bool)

// expand prints the HTML for the text s, expanding shortcuts.
func (r *Renderer) expand(p *printer, s string) {
	emitted := 0
	for off := 0; off < len(s); {
		var parser inlineParser
		switch s[off] {
		case 'h', 'H':
			if off == 0 || !isLetterDigit(s[off-1]) {
				parser = parseAutoLink
			}
		case ':':
			parser = parseUserLink
		case '(':
			parser = parseSymbol
		case '-':
			parser = parseRule
		case '[':
			parser = parseNav
		}
		if parser != nil {
			if html, end, ok := parser(r, s, off); ok {
				p.text(s[emitted:off])
				p.html(html)
				emitted = end
				off = end
				continue
			}
		}
		off++
	}
	p.text(s[emitted:])
}

// parseUserLink is an [inlineParser] for :iconNAME:, :NAMEicon: and :linkNAME:.
// The caller has checked that s[start] == ':'.
func parseUserLink(r *Renderer, s string, start int) (html string, end int, ok bool) {
	i := start + 1
	for i < len(s) && isUserName(s[i]) {
		i++
	}
	if i >= len(s) || s[i] != ':' {
		return
	}
	word := s[start+1 : i]
	end = i + 1

	var name string
	icon, text := true, true
	switch {
	case strings.HasPrefix(word, "icon") && len(word) > len("icon"):
		name = word[len("icon"):]
	case strings.HasPrefix(word, "link") && len(word) > len("link"):
		name = word[len("link"):]
		icon = false
	case strings.HasSuffix(word, "icon") && len(word) > len("icon"):
		name = word[:len(word)-len("icon")]
		text = false
	default:
		return
	}

	user, ok := expandURL(r.userURL, "name", name)
	if !ok {
		return "", 0, false
	}
	var b strings.Builder
	b.WriteString(r.linkStart(user))
	if icon {
		img, ok := expandURL(r.iconURL, "name", name)
		if !ok {
			return "", 0, false
		}
		b.WriteString(`<img src="` + href(img) + `">`)
		if text {
			b.WriteString(" ")
		}
	}
	if text {
		htmlEscaper.WriteString(&b, name)
	}
	b.WriteString("</a>")
	return b.String(), end, true
}

var symbols = []struct {
	text string
	sym  string
}{
	{"(c)", "©"},
	{"(r)", "®"},
	{"(tm)", "™"},
}

// parseSymbol is an [inlineParser] for (c), (r) and (tm), in any case.
// The caller has checked that s[start] == '('.
func parseSymbol(r *Renderer, s string, start int) (html string, end int, ok bool) {
	for _, x := range symbols {
		if hasPrefixFold(s[start:], x.text) {
			return x.sym, start + len(x.text), true
		}
	}
	return
}

// parseRule is an [inlineParser] for a horizontal rule,
// a run of five or more hyphens.
// The caller has checked that s[start] == '-'.
func parseRule(r *Renderer, s string, start int) (html string, end int, ok bool) {
	end = start
	for end < len(s) && s[end] == '-' {
		end++
	}
	if end-start < 5 {
		return "", 0, false
	}
	return "<hr>", end, true
}

var navLabels = [3]string{"<<< PREV", "FIRST", "NEXT >>>"}

// parseNav is an [inlineParser] for a navigation strip [PREV, FIRST, NEXT],
// where each entry is a submission number or - for none.
// The caller has checked that s[start] == '['.
func parseNav(r *Renderer, s string, start int) (html string, end int, ok bool) {
	var ids [3]string
	i := start + 1
	for k := range ids {
		if k > 0 {
			if i >= len(s) || s[i] != ',' {
				return
			}
			i++
		}
		i = skipSpace(s, i)
		switch {
		case i < len(s) && s[i] == '-':
			i++
		case i < len(s) && '1' <= s[i] && s[i] <= '9':
			j := i
			for i < len(s) && isDigit(s[i]) {
				i++
			}
			if i-j > 18 {
				return
			}
			ids[k] = s[j:i]
		default:
			return
		}
		i = skipSpace(s, i)
	}
	if i >= len(s) || s[i] != ']' {
		return
	}
	end = i + 1

	var b strings.Builder
	for k, id := range ids {
		if k > 0 {
			b.WriteString(" | ")
		}
		if id == "" {
			htmlEscaper.WriteString(&b, navLabels[k])
			continue
		}
		u, ok := expandURL(r.submissionURL, "id", id)
		if !ok {
			return "", 0, false
		}
		b.WriteString(r.linkStart(u))
		htmlEscaper.WriteString(&b, navLabels[k])
		b.WriteString("</a>")
	}
	return b.String(), end, true
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}
