// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bbcode converts bracket markup, also known as BBCode,
// in untrusted user text into safe HTML.
//
// The recognized tags are
//
//	[b] [i] [u] [s] [sup] [sub]       inline formatting
//	[left] [center] [right]           alignment blocks
//	[url] [url=TARGET]                links to http, https or root-relative targets
//	[color=NAME] [color=#RGB]         colored text
//	[quote] [quote=AUTHOR]            block quotations
//
// Tag names are case-insensitive. Attribute values may be quoted,
// as in [quote="some user"].
//
// Rendering never fails. Anything that cannot be rendered safely,
// such as an unknown tag, a closing tag with no opening tag,
// or a link to a javascript: URL, is kept as escaped text.
// Overlapping tags, as in [b]x [i]y[/b] z[/i], are repaired into
// properly nested elements that cover the same text.
//
// Text outside links is also scanned for shortcuts:
// bare http and https URLs, user links such as :iconNAME:,
// the symbols (c), (r) and (tm), rules made of five or more hyphens,
// and navigation strips such as [1, 2, 3].
//
// [Render] uses the default configuration.
// Sites with their own URLs, domains or colors use [New]
// to build a [Renderer], which is safe for concurrent use.
package bbcode
