// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bbcode

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// Test runs the golden tests in testdata/*.txt.
// Each file is a txtar archive of NAME.bb and NAME.html pairs:
// rendering the first must produce the second.
// The archive comment holds option settings, one per line.
func Test(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no testdata")
	}
	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txt"), func(t *testing.T) {
			a, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}

			cfg := DefaultConfig()
			var opts Options
			if err := setOptions(&cfg, &opts, a.Comment); err != nil {
				t.Fatal(err)
			}
			r, err := New(cfg)
			if err != nil {
				t.Fatal(err)
			}

			var ncase, npass int
			for i := 0; i+2 <= len(a.Files); i += 2 {
				ncase++
				bb := a.Files[i]
				html := a.Files[i+1]
				name := strings.TrimSuffix(bb.Name, ".bb")
				if name != strings.TrimSuffix(html.Name, ".html") {
					t.Fatalf("mismatched file pair: %s and %s", bb.Name, html.Name)
				}

				t.Run(name, func(t *testing.T) {
					in := decode(string(bb.Data))
					have := r.Render(in, &opts)
					want := decode(string(html.Data))
					if have != want {
						t.Fatalf("input %q\nparse:\n%s\nhave %q\nwant %q", in, Dump(r.Parse(in)), have, want)
					}
					npass++
				})
			}
			t.Logf("%d/%d pass", npass, ncase)
		})
	}
}

// decode converts a test file section to the text it stands for.
// The final newline is dropped, and ^M, ^@, ^L, ^P and ^J stand for
// carriage return, NUL, line separator, paragraph separator and newline.
func decode(s string) string {
	s = strings.TrimSuffix(s, "\n")
	s = strings.ReplaceAll(s, "^M", "\r")
	s = strings.ReplaceAll(s, "^@", "\x00")
	s = strings.ReplaceAll(s, "^L", "\u2028")
	s = strings.ReplaceAll(s, "^P", "\u2029")
	s = strings.ReplaceAll(s, "^J", "\n")
	return s
}

// setOptions extracts lines of the form
//
//	key: value
//
// from data and sets the corresponding fields of cfg and opts.
func setOptions(cfg *Config, opts *Options, data []byte) error {
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "//") {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch key {
		case "AutomaticParagraphs":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return err
			}
			opts.AutomaticParagraphs = b
		case "InternalDomains":
			cfg.InternalDomains = strings.Fields(value)
		case "MaxDepth":
			n, err := strconv.Atoi(value)
			if err != nil {
				return err
			}
			cfg.MaxDepth = n
		default:
			return fmt.Errorf("unknown option: %q", key)
		}
	}
	return nil
}
