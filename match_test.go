// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bbcode

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/FurAffinity/bbcode/internal/logging"
)

var parseTests = []struct {
	in   string
	dump string
}{
	{"", ""},
	{"text", `"text"`},
	{"[b]x[/b]", "(b\n\t\"x\")"},
	{"[b]x", "(b implicit\n\t\"x\")"},
	{"[url=/a]x[/url]", "(url =\"/a\"\n\t\"x\")"},
	{"[color=F00]x[/color]", "(color =\"#F00\"\n\t\"x\")"},
	{"[url=javascript:x]x[/url]", `"[url=javascript:x]x[/url]"`},
	{"a[foo]b[/foo]c", `"a[foo]b[/foo]c"`},
	{"[b]foo [i]bar[/b] baz[/i]", "(b\n\t\"foo \"\n\t(i implicit\n\t\t\"bar\"))\n(i\n\t\" baz\")"},
	{"[b][b]x[/b]y[/b]", "(b\n\t\"xy\")"},
	{"[b][i]x[/b][/i]", "(b\n\t(i implicit\n\t\t\"x\"))"},
	{"[quote][b]x[/quote]", "(quote\n\t(b implicit\n\t\t\"x\"))"},
}

func TestParse(t *testing.T) {
	for _, tt := range parseTests {
		if have := Dump(Parse(tt.in)); have != tt.dump {
			t.Errorf("Parse(%q):\nhave:\n%s\nwant:\n%s", tt.in, have, tt.dump)
		}
	}
}

func TestParseSource(t *testing.T) {
	// Without repairs or collapsed tags, the tree holds all of the input.
	for _, in := range []string{
		"[quote=\"some user\"]a [url=/x]b[/url] [color=red]c[/color][/quote] d",
		"[b]x[/i]y[/b]z[/u]",
		"[url=javascript:x]x[/url] [B]y[/b]",
		"[sup][sup][sup]x",
	} {
		var b strings.Builder
		for _, n := range Parse(in) {
			b.WriteString(n.Source())
		}
		if b.String() != in {
			t.Errorf("Parse(%q): source is %q", in, b.String())
		}
	}
}

func TestParseOffsets(t *testing.T) {
	in := "ab[b]cd[/b]ef"
	list := Parse(in)
	if len(list) != 3 {
		t.Fatalf("Parse(%q): %d nodes, want 3:\n%s", in, len(list), Dump(list))
	}
	for _, n := range list {
		src := n.Source()
		if !strings.HasPrefix(in[n.Offset:], src) {
			t.Errorf("Parse(%q): node %q at offset %d", in, src, n.Offset)
		}
	}
	if c := list[1].Children[0]; c.Offset != 5 {
		t.Errorf("Parse(%q): child offset %d, want 5", in, c.Offset)
	}
}

func TestMaxDepth(t *testing.T) {
	r, err := New(Config{MaxDepth: 2})
	if err != nil {
		t.Fatal(err)
	}
	in := "[quote][quote][quote]x[/quote][/quote][/quote]"
	want := "<blockquote><blockquote>[quote]x</blockquote></blockquote>[/quote]"
	if have := r.Render(in, nil); have != want {
		t.Errorf("Render(%q):\nhave %q\nwant %q", in, have, want)
	}

	// The limit is per tag name.
	in = "[quote][sup][quote][sup]x"
	want = "<blockquote><sup><blockquote><sup>x</sup></blockquote></sup></blockquote>"
	if have := r.Render(in, nil); have != want {
		t.Errorf("Render(%q):\nhave %q\nwant %q", in, have, want)
	}
}

func TestParseLogs(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(Config{Logger: logging.New(&buf, slog.LevelDebug)})
	if err != nil {
		t.Fatal(err)
	}
	r.Parse("[foo] [/b] [b]x [i]y[/b]")
	out := buf.String()
	for _, want := range []string{
		`reason="unknown tag"`,
		`reason="stranded closing tag"`,
		`msg="repairing overlapping tags"`,
		`tag=[/b]`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
}
