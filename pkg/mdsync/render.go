// Package mdsync keeps a markdown string and a live DOM tree in sync:
// markdown renders to HTML whose code fences and custom tokens become
// stable-id wrapper elements, and edited DOM extracts back to markdown
// with fence and token syntax restored.
package mdsync

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"

	"github.com/yaklabco/editkit/pkg/dom"
	"github.com/yaklabco/editkit/pkg/editor"
	"github.com/yaklabco/editkit/pkg/langdetect"
)

// Renderer converts markdown into an editable DOM fragment. Fenced
// code blocks become registry-backed wrapper elements; occurrences of
// registered token literals become id-bearing inline wrappers.
type Renderer struct {
	md       goldmark.Markdown
	registry *editor.Registry
	tokens   *TokenRegistry
}

// NewRenderer creates a renderer sharing the given registries. Nil
// registries get fresh ones.
func NewRenderer(registry *editor.Registry, tokens *TokenRegistry) *Renderer {
	if registry == nil {
		registry = editor.NewRegistry()
	}
	if tokens == nil {
		tokens = NewTokenRegistry()
	}
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
			),
		),
		registry: registry,
		tokens:   tokens,
	}
}

// Registry returns the shared code block registry.
func (r *Renderer) Registry() *editor.Registry { return r.registry }

// Tokens returns the shared token registry.
func (r *Renderer) Tokens() *TokenRegistry { return r.tokens }

// Render converts markdown to a detached container whose children are
// ready for insertion into the editable DOM.
func (r *Renderer) Render(markdown string) (*html.Node, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return nil, err
	}

	container := dom.ParseContainer(buf.String())
	r.wrapCodeFences(container)
	r.wrapTokens(container)
	return container, nil
}

// RenderHTML is Render serialized back to markup.
func (r *Renderer) RenderHTML(markdown string) (string, error) {
	container, err := r.Render(markdown)
	if err != nil {
		return "", err
	}
	return dom.RenderChildren(container), nil
}

// wrapCodeFences replaces every pre>code produced by the markdown
// renderer with a registered interactive wrapper.
func (r *Renderer) wrapCodeFences(container *html.Node) {
	var pres []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if dom.IsElement(n, "pre") {
			pres = append(pres, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(container)

	for _, pre := range pres {
		code := pre.FirstChild
		if !dom.IsElement(code, "code") {
			continue
		}
		content := strings.TrimSuffix(dom.TextContent(code), "\n")
		language := strings.TrimPrefix(dom.GetAttr(code, "class"), "language-")
		if language == dom.GetAttr(code, "class") {
			language = ""
		}
		if language == "" && content != "" {
			language = langdetect.Detect([]byte(content))
			if language == "text" {
				language = ""
			}
		}

		state := r.registry.Register(content, language)
		dom.ReplaceNode(pre, editor.BuildCodeBlockWrapper(state))
	}
}

// wrapTokens splits text nodes around registered token literals and
// wraps each occurrence in a span carrying the token id. Code regions
// are left alone.
func (r *Renderer) wrapTokens(container *html.Node) {
	tokens := r.tokens.All()
	if len(tokens) == 0 {
		return
	}

	for _, t := range dom.TextNodes(container) {
		if dom.ClosestCodeBlockWrapper(t, container) != nil {
			continue
		}
		for _, tok := range tokens {
			if tok.Literal == "" || !strings.Contains(t.Data, tok.Literal) {
				continue
			}
			r.splitAroundToken(t, tok)
			break
		}
	}
}

// splitAroundToken rewrites one text node as before-text, token
// wrapper, after-text. The after-text node is revisited for further
// occurrences.
func (r *Renderer) splitAroundToken(t *html.Node, tok *Token) {
	for {
		idx := strings.Index(t.Data, tok.Literal)
		if idx < 0 {
			return
		}

		parent := t.Parent
		before := t.Data[:idx]
		after := t.Data[idx+len(tok.Literal):]

		wrapper := dom.NewElement("span", AttrTokenID, tok.ID)
		display := tok.Display
		if display == "" {
			display = tok.Literal
		}
		wrapper.AppendChild(dom.NewText(display))

		if before != "" {
			parent.InsertBefore(dom.NewText(before), t)
		}
		parent.InsertBefore(wrapper, t)

		if after == "" {
			dom.Detach(t)
			return
		}
		t.Data = after
	}
}
