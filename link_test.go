// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bbcode

import (
	"testing"
)

func TestParseAutoLink(t *testing.T) {
	r := defaultRenderer()
	for _, tt := range []struct {
		in    string
		start int
		link  string
	}{
		{"http://example.com.", 0, "http://example.com"},
		{"see http://a.test/x(y) z", 4, "http://a.test/x(y)"},
		{"(http://a.test/x)", 1, "http://a.test/x"},
		{"http://a.test/x?!", 0, "http://a.test/x"},
		{"HTTPS://A.TEST/", 0, "HTTPS://A.TEST/"},
		{"http://a.test:8080/p?q=1#f, more", 0, "http://a.test:8080/p?q=1#f"},
		{"http://a.test/x[b]", 0, "http://a.test/x"},
		{"http://", 0, ""},
		{"http://-x", 0, ""},
		{"ftp://a.test/", 0, ""},
	} {
		_, end, ok := parseAutoLink(r, tt.in, tt.start)
		if tt.link == "" {
			if ok {
				t.Errorf("parseAutoLink(%q, %d) matched %q", tt.in, tt.start, tt.in[tt.start:end])
			}
			continue
		}
		if !ok {
			t.Errorf("parseAutoLink(%q, %d) failed, want %q", tt.in, tt.start, tt.link)
			continue
		}
		if have := tt.in[tt.start:end]; have != tt.link {
			t.Errorf("parseAutoLink(%q, %d) = %q, want %q", tt.in, tt.start, have, tt.link)
		}
	}
}
