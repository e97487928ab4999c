// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bbcode

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/FurAffinity/bbcode/internal/logging"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yosida95/uritemplate/v3"
)

// DefaultMaxDepth is the default limit on the number of tags
// of a single name that can be open at once.
const DefaultMaxDepth = 21

var (
	// ErrBadTemplate is returned by [New] for a URL template
	// that does not parse or lacks its variable.
	ErrBadTemplate = errors.New("bbcode: bad URL template")

	// ErrInputTooLarge is returned by [Renderer.RenderString]
	// for input longer than the configured maximum.
	ErrInputTooLarge = errors.New("bbcode: input too large")

	// ErrInvalidUTF8 is returned by [Renderer.RenderString]
	// for input that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("bbcode: input is not valid UTF-8")
)

// A Config is the site configuration of a [Renderer].
// Zero fields take their values from [DefaultConfig].
type Config struct {
	// InternalDomains lists the hosts whose links do not get
	// rel="external nofollow". Subdomains of a listed host match too.
	InternalDomains []string

	// UserURL and IconURL are URI templates (RFC 6570)
	// for a user's page and icon, expanded with the variable name.
	UserURL string
	IconURL string

	// SubmissionURL is a URI template for a numbered submission,
	// expanded with the variable id.
	SubmissionURL string

	// Colors is the set of accepted color names, in lower case.
	Colors map[string]bool

	// MaxDepth limits how many tags of one name can be open at once.
	// Further opening tags of that name are kept as text.
	MaxDepth int

	// MaxInputSize limits the input length in bytes accepted by
	// [Renderer.RenderString]. Zero means no limit.
	MaxInputSize int

	// Sanitize runs the output through [Policy] before returning it.
	Sanitize bool

	// Logger receives debug messages about markup kept as text.
	// A nil Logger discards them.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration used by [Render] and [Parse].
func DefaultConfig() Config {
	return Config{
		UserURL:       "/users/{name}/",
		IconURL:       "/users/{name}/image",
		SubmissionURL: "/submissions/{id}",
		Colors:        setOf(colorNames),
		MaxDepth:      DefaultMaxDepth,
	}
}

// Options are the per-call rendering options.
type Options struct {
	// AutomaticParagraphs wraps the output in <p> elements,
	// splitting paragraphs at blank lines.
	AutomaticParagraphs bool
}

// A Renderer converts bracket markup to HTML.
// A Renderer is safe for concurrent use by multiple goroutines.
type Renderer struct {
	internal      []string
	userURL       *uritemplate.Template
	iconURL       *uritemplate.Template
	submissionURL *uritemplate.Template
	colors        map[string]bool
	maxDepth      int
	maxInput      int
	policy        *bluemonday.Policy
	log           *slog.Logger
}

// New returns a Renderer for the configuration cfg.
func New(cfg Config) (*Renderer, error) {
	def := DefaultConfig()
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("bbcode: invalid MaxDepth %d", cfg.MaxDepth)
	}
	if cfg.MaxInputSize < 0 {
		return nil, fmt.Errorf("bbcode: invalid MaxInputSize %d", cfg.MaxInputSize)
	}
	r := &Renderer{
		maxDepth: cfg.MaxDepth,
		maxInput: cfg.MaxInputSize,
		colors:   make(map[string]bool),
		log:      cfg.Logger,
	}
	if r.maxDepth == 0 {
		r.maxDepth = def.MaxDepth
	}
	if r.log == nil {
		r.log = logging.NewNop()
	}
	for _, d := range cfg.InternalDomains {
		d = strings.Trim(strings.ToLower(strings.TrimSpace(d)), ".")
		if d != "" && !slices.Contains(r.internal, d) {
			r.internal = append(r.internal, d)
		}
	}
	colors := cfg.Colors
	if colors == nil {
		colors = def.Colors
	}
	for name, ok := range colors {
		if ok {
			r.colors[strings.ToLower(name)] = true
		}
	}

	var err error
	if r.userURL, err = parseTemplate(cfg.UserURL, def.UserURL, "name"); err != nil {
		return nil, fmt.Errorf("UserURL: %w", err)
	}
	if r.iconURL, err = parseTemplate(cfg.IconURL, def.IconURL, "name"); err != nil {
		return nil, fmt.Errorf("IconURL: %w", err)
	}
	if r.submissionURL, err = parseTemplate(cfg.SubmissionURL, def.SubmissionURL, "id"); err != nil {
		return nil, fmt.Errorf("SubmissionURL: %w", err)
	}
	if cfg.Sanitize {
		r.policy = Policy()
	}
	return r, nil
}

// parseTemplate parses the URI template s, or def if s is empty,
// and checks that it uses the variable v.
func parseTemplate(s, def, v string) (*uritemplate.Template, error) {
	if s == "" {
		s = def
	}
	t, err := uritemplate.New(s)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrBadTemplate, s, err)
	}
	if !slices.Contains(t.Varnames(), v) {
		return nil, fmt.Errorf("%w %q: missing {%s}", ErrBadTemplate, s, v)
	}
	return t, nil
}

var defaultRenderer = sync.OnceValue(func() *Renderer {
	r, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return r
})

// Render converts text to HTML using the default configuration.
// A nil opts is the same as the zero Options.
func Render(text string, opts *Options) string {
	return defaultRenderer().Render(text, opts)
}

// Render converts text to HTML.
// A nil opts is the same as the zero Options.
//
// Render never fails: markup that cannot be rendered safely is kept as text.
// Invalid UTF-8 sequences are replaced by U+FFFD.
// Render does not check MaxInputSize; see [Renderer.RenderString].
func (r *Renderer) Render(text string, opts *Options) string {
	if opts == nil {
		opts = new(Options)
	}
	text = inputCleaner.Replace(strings.ToValidUTF8(text, "\uFFFD"))

	var p printer
	r.printNodes(&p, r.Parse(text), false)
	out := p.buf.String()
	if opts.AutomaticParagraphs {
		out = paragraphs(out)
	} else {
		out = lineBreaks(out)
	}
	if r.policy != nil {
		out = r.policy.Sanitize(out)
	}
	return out
}

// RenderString is like Render but rejects input that is larger
// than the configured MaxInputSize or that is not valid UTF-8.
func (r *Renderer) RenderString(text string, opts *Options) (string, error) {
	if r.maxInput > 0 && len(text) > r.maxInput {
		return "", fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrInputTooLarge, len(text), r.maxInput)
	}
	if !utf8.ValidString(text) {
		return "", ErrInvalidUTF8
	}
	return r.Render(text, opts), nil
}

// printNodes prints the HTML for list.
// Inside a link, text is not expanded and nested links are kept as text.
func (r *Renderer) printNodes(p *printer, list []*Node, inLink bool) {
	for _, n := range list {
		switch {
		case n.Kind == TextNode && inLink:
			p.text(n.Text)
		case n.Kind == TextNode:
			r.expand(p, n.Text)
		default:
			r.printElement(p, n, inLink)
		}
	}
}

func (r *Renderer) printElement(p *printer, n *Node, inLink bool) {
	d := tags[n.Tag]
	switch d.kind {
	case wrapTag:
		p.html("<", d.elem.String(), ">")
		r.printNodes(p, n.Children, inLink)
		p.html("</", d.elem.String(), ">")

	case alignTag:
		p.html(`<div class="align-`, n.Tag, `">`)
		r.printNodes(p, n.Children, inLink)
		p.html("</div>")

	case linkTag:
		r.printLink(p, n, inLink)

	case colorTag:
		p.html(`<span style="color: `, n.Attr, `;">`)
		r.printNodes(p, n.Children, inLink)
		p.html("</span>")

	case quoteTag:
		p.html("<blockquote>")
		if n.Attr != "" {
			p.html("<header><cite>")
			p.text(n.Attr)
			p.html("</cite> wrote:</header> ")
		}
		r.printNodes(p, n.Children, inLink)
		p.html("</blockquote>")
	}
}

// printLink prints a [url] element.
// A bare [url] links to its own content, which must be an acceptable target;
// otherwise, and for a link inside another link, the element is kept as text.
func (r *Renderer) printLink(p *printer, n *Node, inLink bool) {
	target := n.Attr
	ok := !inLink
	if ok && !n.HasAttr {
		var b strings.Builder
		for _, c := range n.Children {
			c.writeSource(&b)
		}
		target, ok = checkURL(b.String())
		if !ok {
			r.log.Debug("tag kept as text", "tag", n.Open, "reason", "invalid link target", "offset", n.Offset)
		}
	}
	if !ok {
		p.text(n.Source())
		return
	}
	p.html(r.linkStart(target))
	r.printNodes(p, n.Children, true)
	p.html("</a>")
}

// setOf returns a set holding the strings in list.
func setOf(list []string) map[string]bool {
	m := make(map[string]bool, len(list))
	for _, s := range list {
		m[s] = true
	}
	return m
}
