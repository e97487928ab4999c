// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bbcode

// Matching Tags
//
// The matcher walks the token stream keeping a stack of open tags (frames).
// Each frame accumulates the nodes that appear while it is the innermost open tag;
// text and elements outside every frame go to the root list.
//
// An opening tag pushes a frame, unless the tag is unknown, its attribute is
// unacceptable, or too many tags of the same name are already open. In those
// cases the tag's source text is kept as literal text and nothing is pushed.
// Limiting the depth per tag name bounds both the tree depth and the cost of
// the repairs described below.
//
// A closing tag closes the nearest open frame with the same name.
// If there is none, the closer is stranded and kept as literal text.
// If the frame is not the innermost one, the tags were written overlapping:
//
//	[b]foo [i]bar[/b] baz[/i]
//
// HTML cannot express that, so the frames above the match are closed early,
// the match is closed, and the early-closed frames are reopened as fresh
// elements with the same tag and attribute. The example becomes
//
//	<b>foo <i>bar</i></b><i> baz</i>
//
// which renders the same spans. Reopening happens in the original order,
// outermost first, so any number of overlapping tags is handled the same way:
//
//	[i]one [b]two [s]three[/i] four[/b] five[/s] ⇒
//	<i>one <b>two <s>three</s></b></i><b><s> four</s></b><s> five</s>
//
// Frames still open at the end of the input are closed there.
//
// Some tags collapse: opening [b] inside [b] pushes a redundant frame whose
// content is spliced into its parent when it closes, instead of nesting a
// second <b>. The redundant frame still takes part in matching, so its
// closer is consumed rather than stranded.

// A frame is an open tag awaiting its closer.
type frame struct {
	node      *Node
	redundant bool
	reopened  bool // pushed by a repair rather than by an opening tag
}

// A matcher builds a tree from a token stream.
type matcher struct {
	r     *Renderer
	root  []*Node
	stack []frame
	depth map[string]int // open frames per tag name
}

// Parse parses text into a tree of nodes, repairing mis-nested tags.
// Parse never fails: anything that is not a usable tag is text.
func (r *Renderer) Parse(text string) []*Node {
	m := &matcher{r: r, depth: make(map[string]int)}
	for _, t := range scan(text) {
		switch t.kind {
		case textToken:
			m.text(t.raw, t.off)
		case openToken:
			m.open(t)
		case closeToken:
			m.close(t)
		}
	}
	for len(m.stack) > 0 {
		m.pop()
	}
	return mergeText(m.root)
}

// Parse parses text using the default configuration.
// See [Renderer.Parse].
func Parse(text string) []*Node {
	return defaultRenderer().Parse(text)
}

// add appends n to the children of the innermost frame, or to the root.
func (m *matcher) add(n ...*Node) {
	if len(m.stack) == 0 {
		m.root = append(m.root, n...)
		return
	}
	f := m.stack[len(m.stack)-1].node
	f.Children = append(f.Children, n...)
}

func (m *matcher) text(s string, off int) {
	m.add(&Node{Kind: TextNode, Text: s, Offset: off})
}

// literal keeps the tag t as text.
func (m *matcher) literal(t token, reason string) {
	m.r.log.Debug("tag kept as text", "tag", t.raw, "reason", reason, "offset", t.off)
	m.text(t.raw, t.off)
}

func (m *matcher) open(t token) {
	d := tags[t.name]
	if d == nil {
		m.literal(t, "unknown tag")
		return
	}
	attr, ok := m.r.openAttr(d, t)
	if !ok {
		m.literal(t, "invalid attribute")
		return
	}
	if m.depth[t.name] >= m.r.maxDepth {
		m.literal(t, "nesting too deep")
		return
	}
	m.push(frame{
		node: &Node{
			Kind:    ElementNode,
			Tag:     t.name,
			Attr:    attr,
			HasAttr: t.hasAttr,
			Open:    t.raw,
			Offset:  t.off,
		},
		redundant: d.collapse && m.depth[t.name] > 0,
	})
}

func (m *matcher) push(f frame) {
	m.stack = append(m.stack, f)
	m.depth[f.node.Tag]++
}

// pop closes the innermost frame, attaching its element to the level below.
// A redundant frame contributes its children instead.
// A reopened frame that gained no content is dropped,
// so that [b][i]x[/b][/i] does not leave an empty <i></i> behind.
func (m *matcher) pop() {
	f := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	m.depth[f.node.Tag]--
	if f.reopened && len(f.node.Children) == 0 {
		return
	}
	if f.redundant {
		m.add(f.node.Children...)
		return
	}
	m.add(f.node)
}

func (m *matcher) close(t token) {
	i := len(m.stack) - 1
	for i >= 0 && m.stack[i].node.Tag != t.name {
		i--
	}
	if i < 0 {
		m.literal(t, "stranded closing tag")
		return
	}

	// Close the frames overlapping the match, then the match itself,
	// then reopen the overlapping frames.
	var reopen []frame
	if i+1 < len(m.stack) {
		reopen = append(reopen, m.stack[i+1:]...)
		m.r.log.Debug("repairing overlapping tags", "tag", t.raw, "reopened", len(reopen), "offset", t.off)
	}
	for len(m.stack) > i+1 {
		m.pop()
	}
	m.stack[i].node.Close = t.raw
	m.pop()
	for _, f := range reopen {
		n := f.node
		m.push(frame{
			node: &Node{
				Kind:    ElementNode,
				Tag:     n.Tag,
				Attr:    n.Attr,
				HasAttr: n.HasAttr,
				Open:    n.Open,
				Offset:  t.off + len(t.raw),
			},
			redundant: f.redundant,
			reopened:  true,
		})
	}
}
