// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bbcode

import (
	"bytes"
	"fmt"
	"strings"
)

// A NodeKind is the kind of a [Node].
type NodeKind int

const (
	TextNode    NodeKind = iota // literal text
	ElementNode                 // a recognized tag and its content
)

// A Node is an element of the tree produced by [Renderer.Parse].
// A Node owns its children; the tree never shares nodes.
type Node struct {
	Kind NodeKind

	// Text is the source text of a TextNode.
	Text string

	// Tag is the lower-case tag name of an ElementNode.
	Tag string

	// Attr is the validated attribute of an ElementNode.
	// Colors are normalized; other attributes are as written.
	Attr    string
	HasAttr bool

	// Open and Close are the source text of the opening and closing tags.
	// Close is empty when the element was closed by the end of the input
	// or by the closing of an enclosing tag.
	Open  string
	Close string

	Children []*Node

	// Offset is the byte offset in the input of Text or Open.
	Offset int
}

// Source returns the bracket markup that n was parsed from.
func (n *Node) Source() string {
	var b strings.Builder
	n.writeSource(&b)
	return b.String()
}

func (n *Node) writeSource(b *strings.Builder) {
	if n.Kind == TextNode {
		b.WriteString(n.Text)
		return
	}
	b.WriteString(n.Open)
	for _, c := range n.Children {
		c.writeSource(b)
	}
	b.WriteString(n.Close)
}

// mergeText merges each run of adjacent text nodes in list into a single node,
// recursively.
// Merging once at the end avoids the quadratic cost of extending
// a text node for every literal token.
func mergeText(list []*Node) []*Node {
	out := list[:0]
	for i := 0; i < len(list); {
		n := list[i]
		if n.Kind == ElementNode {
			n.Children = mergeText(n.Children)
			out = append(out, n)
			i++
			continue
		}
		j := i + 1
		for j < len(list) && list[j].Kind == TextNode {
			j++
		}
		if j-i > 1 {
			var b strings.Builder
			for _, t := range list[i:j] {
				b.WriteString(t.Text)
			}
			n = &Node{Kind: TextNode, Text: b.String(), Offset: n.Offset}
		}
		out = append(out, n)
		i = j
	}
	return out
}

// Dump returns a textual form of the tree, for debugging and tests.
// Each element is printed as (tag =attr implicit children...),
// where implicit marks an element without a closing tag of its own.
func Dump(list []*Node) string {
	var buf bytes.Buffer
	for i, n := range list {
		if i > 0 {
			buf.WriteByte('\n')
		}
		printNode(&buf, n, "")
	}
	return buf.String()
}

func printNode(buf *bytes.Buffer, n *Node, prefix string) {
	if n.Kind == TextNode {
		fmt.Fprintf(buf, "%q", n.Text)
		return
	}
	fmt.Fprintf(buf, "(%s", n.Tag)
	if n.HasAttr {
		fmt.Fprintf(buf, " =%q", n.Attr)
	}
	if n.Close == "" {
		buf.WriteString(" implicit")
	}
	prefix += "\t"
	for _, c := range n.Children {
		fmt.Fprintf(buf, "\n%s", prefix)
		printNode(buf, c, prefix)
	}
	buf.WriteString(")")
}
