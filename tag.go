// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bbcode

import (
	"net/url"
	"strings"

	"golang.org/x/net/html/atom"
)

type attrKind int

const (
	attrNone attrKind = iota
	attrOptional
	attrRequired
)

type tagKind int

const (
	wrapTag  tagKind = iota // [b] => <b>
	alignTag                // [center] => <div class="align-center">
	linkTag                 // [url]
	colorTag                // [color]
	quoteTag                // [quote]
)

// A tagDesc describes a recognized tag.
type tagDesc struct {
	kind tagKind
	attr attrKind
	elem atom.Atom

	// collapse reports whether the tag is ignored when it is
	// already open, so that [b][b]x[/b][/b] renders as <b>x</b>.
	collapse bool
}

// tags is the registry of recognized tags, keyed by lower-case name.
// It is never modified.
var tags = map[string]*tagDesc{
	"b":   {kind: wrapTag, elem: atom.B, collapse: true},
	"i":   {kind: wrapTag, elem: atom.I, collapse: true},
	"u":   {kind: wrapTag, elem: atom.U, collapse: true},
	"s":   {kind: wrapTag, elem: atom.S, collapse: true},
	"sup": {kind: wrapTag, elem: atom.Sup},
	"sub": {kind: wrapTag, elem: atom.Sub},

	"left":   {kind: alignTag, elem: atom.Div},
	"center": {kind: alignTag, elem: atom.Div},
	"right":  {kind: alignTag, elem: atom.Div},

	"url":   {kind: linkTag, attr: attrOptional, elem: atom.A},
	"color": {kind: colorTag, attr: attrRequired, elem: atom.Span},
	"quote": {kind: quoteTag, attr: attrOptional, elem: atom.Blockquote},
}

// openAttr checks the attribute of an opening tag t for d,
// returning the attribute to store in the element and whether the tag is acceptable.
// A link given a target is checked here, when it opens,
// so that a rejected [url=...] and its closer both stay literal text.
// A bare [url] is checked when it is rendered.
func (r *Renderer) openAttr(d *tagDesc, t token) (string, bool) {
	switch d.attr {
	case attrNone:
		return "", !t.hasAttr
	case attrRequired:
		if !t.hasAttr {
			return "", false
		}
	}
	if !t.hasAttr {
		return "", true
	}
	switch d.kind {
	case linkTag:
		return checkURL(t.attr)
	case colorTag:
		return r.checkColor(t.attr)
	}
	return t.attr, true
}

// checkURL reports whether u is an acceptable link target:
// an absolute http or https URL with a host, or a root-relative path.
// Everything else, including javascript: and data: URLs
// and protocol-relative //host URLs, is rejected.
func checkURL(u string) (string, bool) {
	u = strings.TrimSpace(u)
	if u == "" {
		return "", false
	}
	p, err := url.Parse(u)
	if err != nil {
		return "", false
	}
	if isRootRelative(u) {
		return u, true
	}
	if (p.Scheme != "http" && p.Scheme != "https") || p.Host == "" {
		return "", false
	}
	return u, true
}

// isRootRelative reports whether u is a path on the current host.
// Browsers treat both //host and /\host as references to another host.
func isRootRelative(u string) bool {
	return strings.HasPrefix(u, "/") && !strings.HasPrefix(u, "//") && !strings.HasPrefix(u, `/\`)
}

// external reports whether a link to the accepted target u
// leaves the site, and so should carry rel="external nofollow".
func (r *Renderer) external(u string) bool {
	if isRootRelative(u) {
		return false
	}
	p, err := url.Parse(u)
	if err != nil {
		return true
	}
	host := strings.ToLower(p.Hostname())
	for _, d := range r.internal {
		if host == d || strings.HasSuffix(host, "."+d) {
			return false
		}
	}
	return true
}

// checkColor validates a color specification:
// a known color name, or three or six hexadecimal digits with an optional leading #.
// Names are returned in lower case and hex colors with a leading #.
func (r *Renderer) checkColor(c string) (string, bool) {
	c = strings.TrimSpace(c)
	if name := strings.ToLower(c); r.colors[name] {
		return name, true
	}
	hex := strings.TrimPrefix(c, "#")
	if len(hex) != 3 && len(hex) != 6 {
		return "", false
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return "", false
		}
	}
	return "#" + hex, true
}
