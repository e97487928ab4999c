// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bbcode

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var (
	alignClass  = regexp.MustCompile(`^align-(left|center|right)$`)
	colorStyle  = regexp.MustCompile(`^color: (#[0-9A-Fa-f]{3}|#[0-9A-Fa-f]{6}|[a-z]+);$`)
	externalRel = regexp.MustCompile(`^external nofollow$`)
)

// Policy returns a sanitizer policy admitting the HTML that a [Renderer] emits
// and nothing else.
// A host that stores rendered HTML can use it to check stored output
// or to sanitize it again after later processing.
// Each call returns a new policy, which the caller may extend.
func Policy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "i", "u", "s", "sup", "sub", "p", "br", "hr", "blockquote", "header", "cite")
	p.AllowAttrs("class").Matching(alignClass).OnElements("div")
	p.AllowAttrs("style").Matching(colorStyle).OnElements("span")
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("rel").Matching(externalRel).OnElements("a")
	p.AllowAttrs("src").OnElements("img")
	p.AllowURLSchemes("http", "https")
	p.AllowRelativeURLs(true)
	p.RequireParseableURLs(true)
	return p
}
