// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bbcode

import (
	"strings"
	"unicode"
)

// isLetter reports whether c is an ASCII letter.
func isLetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isLetterDigit reports whether c is an ASCII letter or digit.
func isLetterDigit(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9'
}

// isHexDigit reports whether c is an ASCII hexadecimal digit.
func isHexDigit(c byte) bool {
	return 'A' <= c && c <= 'F' || 'a' <= c && c <= 'f' || '0' <= c && c <= '9'
}

// isUserName reports whether c can appear in a user name
// in an icon or link shortcut.
func isUserName(c byte) bool {
	return isLetterDigit(c) || c == '_' || c == '.' || c == '~' || c == '-'
}

// isHost reports whether c can appear in the host part of an auto-link,
// including a port number.
func isHost(c byte) bool {
	return isLetterDigit(c) || c == '.' || c == '-' || c == '_' || c == ':'
}

// isURLStop reports whether r ends an auto-link.
func isURLStop(r rune) bool {
	if r < 0x80 {
		return r <= ' ' || r == 0x7F || r == '<' || r == '>' || r == '"' || r == '[' || r == ']'
	}
	return unicode.IsSpace(r)
}

// htmlEscaper escapes text for HTML element content and quoted attribute values.
var htmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&#34;",
	`'`, "&#39;",
)

// inputCleaner normalizes line endings and removes NUL bytes from input text.
var inputCleaner = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\x00", "\uFFFD",
)
