// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bbcode

import (
	"bytes"

	"github.com/yuin/goldmark/util"
)

// A printer accumulates HTML output.
// Markup built by the renderer goes through html;
// everything that came from the input goes through text.
type printer struct {
	buf bytes.Buffer
}

// html writes trusted markup.
func (p *printer) html(list ...string) {
	for _, s := range list {
		p.buf.WriteString(s)
	}
}

// text writes escaped text.
func (p *printer) text(list ...string) {
	for _, s := range list {
		htmlEscaper.WriteString(&p.buf, s)
	}
}

// href returns the attribute-safe form of an accepted link target:
// characters not allowed in URLs are percent-encoded
// and the result is escaped for a quoted attribute.
func href(u string) string {
	return htmlEscaper.Replace(string(util.URLEscape([]byte(u), false)))
}
