// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bbcode

import (
	"strings"
)

const (
	lineSep = "\u2028" // forced line break
	paraSep = "\u2029" // forced paragraph break
)

var lineBreaker = strings.NewReplacer(
	"\n", "<br>",
	lineSep, "<br>",
	paraSep, "<br><br>",
)

// lineBreaks converts the line breaks in the rendered HTML s to <br> elements.
// A forced paragraph break counts as two line breaks.
func lineBreaks(s string) string {
	return lineBreaker.Replace(s)
}

// paragraphs splits the rendered HTML s into <p> elements.
// A forced paragraph break, or a run of two or more newlines, ends a paragraph.
// Each newline in a run beyond the first two adds a <br> between the paragraphs.
// Paragraphs holding only white space are dropped.
func paragraphs(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	var b strings.Builder
	for _, block := range strings.Split(s, paraSep) {
		start := 0
		for i := 0; i < len(block); {
			if block[i] != '\n' {
				i++
				continue
			}
			j := i
			for j < len(block) && block[j] == '\n' {
				j++
			}
			if j-i >= 2 {
				paragraph(&b, block[start:i])
				b.WriteString(strings.Repeat("<br>", j-i-2))
				start = j
			}
			i = j
		}
		paragraph(&b, block[start:])
	}
	return b.String()
}

func paragraph(b *strings.Builder, s string) {
	if strings.TrimSpace(s) == "" {
		return
	}
	b.WriteString("<p>")
	b.WriteString(lineBreaks(s))
	b.WriteString("</p>")
}
