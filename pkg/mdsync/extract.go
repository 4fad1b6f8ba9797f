package mdsync

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/yaklabco/editkit/pkg/dom"
	"github.com/yaklabco/editkit/pkg/editor"
)

// CustomElementProcessor lets a host claim an element during
// extraction. Returning handled=true uses the returned markdown
// instead of the generic conversion of the element's contents.
type CustomElementProcessor func(n *html.Node) (markdown string, handled bool)

// Extractor serializes an edited DOM tree back to markdown. Code
// block wrappers re-emit fence syntax from the registry and token
// wrappers re-emit their original literal, so unmodified blocks
// round-trip exactly.
type Extractor struct {
	registry *editor.Registry
	tokens   *TokenRegistry

	// Custom runs before the built-in element handling.
	Custom CustomElementProcessor
}

// NewExtractor creates an extractor sharing the given registries. Nil
// registries get fresh ones.
func NewExtractor(registry *editor.Registry, tokens *TokenRegistry) *Extractor {
	if registry == nil {
		registry = editor.NewRegistry()
	}
	if tokens == nil {
		tokens = NewTokenRegistry()
	}
	return &Extractor{registry: registry, tokens: tokens}
}

// Extract converts the children of root to a markdown document.
func (e *Extractor) Extract(root *html.Node) string {
	var blocks []string
	for _, n := range dom.Children(root) {
		if b := e.block(n); b != "" {
			blocks = append(blocks, b)
		}
	}
	return strings.Join(blocks, "\n\n")
}

// block converts one block-level node to markdown without trailing
// newlines.
func (e *Extractor) block(n *html.Node) string {
	if e.Custom != nil {
		if md, handled := e.Custom(n); handled {
			return strings.TrimRight(md, "\n")
		}
	}

	if n.Type == html.TextNode {
		return strings.TrimSpace(dom.StripZwsp(n.Data))
	}
	if n.Type != html.ElementNode {
		return ""
	}

	if id := dom.GetAttr(n, dom.AttrCodeBlockID); id != "" {
		return e.codeFence(n, id)
	}

	switch strings.ToLower(n.Data) {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(n.Data[1] - '0')
		return strings.Repeat("#", level) + " " + e.inline(n)
	case "p", "div":
		return e.inline(n)
	case "ul", "ol":
		return e.list(n, 0)
	case "blockquote":
		return e.blockquote(n)
	case "table":
		return e.table(n)
	case "hr":
		return "---"
	case "pre":
		return e.rawFence(n)
	default:
		return e.inline(n)
	}
}

// codeFence re-emits fence syntax for a registered code block wrapper.
// A wrapper whose registry entry is gone falls back to its live DOM
// content.
func (e *Extractor) codeFence(wrapper *html.Node, id string) string {
	language := ""
	content := ""
	if state := e.registry.Get(id); state != nil {
		language = state.Language
		content = state.Content
	} else {
		// Wrapper from a foreign registry: recover what the DOM holds.
		content = strings.TrimSuffix(dom.StripZwsp(dom.TextContent(wrapper)), "\n")
		for _, t := range dom.TextNodes(wrapper) {
			if class := dom.GetAttr(t.Parent, "class"); strings.HasPrefix(class, "language-") {
				language = strings.TrimPrefix(class, "language-")
				break
			}
		}
	}
	return "```" + language + "\n" + content + "\n```"
}

// rawFence handles a pre>code that never went through the renderer.
func (e *Extractor) rawFence(pre *html.Node) string {
	language := ""
	if code := pre.FirstChild; dom.IsElement(code, "code") {
		class := dom.GetAttr(code, "class")
		if strings.HasPrefix(class, "language-") {
			language = strings.TrimPrefix(class, "language-")
		}
	}
	content := strings.TrimSuffix(dom.StripZwsp(dom.TextContent(pre)), "\n")
	return "```" + language + "\n" + content + "\n```"
}

func (e *Extractor) list(list *html.Node, depth int) string {
	ordered := dom.IsElement(list, "ol")
	indent := strings.Repeat("  ", depth)

	var lines []string
	index := 0
	for _, li := range dom.Children(list) {
		if !dom.IsElement(li, "li") {
			continue
		}
		index++

		marker := "- "
		if ordered {
			marker = strconv.Itoa(index) + ". "
		}

		var own []string
		var nested []string
		for _, c := range dom.Children(li) {
			if c.Type == html.TextNode && strings.TrimSpace(c.Data) == "" {
				continue
			}
			if dom.IsAnyElement(c, "ul", "ol") {
				nested = append(nested, e.list(c, depth+1))
				continue
			}
			if s := e.inlineNode(c); s != "" {
				own = append(own, s)
			}
		}

		lines = append(lines, indent+marker+strings.Join(own, ""))
		lines = append(lines, nested...)
	}
	return strings.Join(lines, "\n")
}

func (e *Extractor) blockquote(quote *html.Node) string {
	var inner []string
	for _, c := range dom.Children(quote) {
		if b := e.block(c); b != "" {
			inner = append(inner, b)
		}
	}

	var out []string
	for _, line := range strings.Split(strings.Join(inner, "\n\n"), "\n") {
		if line == "" {
			out = append(out, ">")
		} else {
			out = append(out, "> "+line)
		}
	}
	return strings.Join(out, "\n")
}

func (e *Extractor) table(table *html.Node) string {
	var rows [][]string
	var collect func(n *html.Node)
	collect = func(n *html.Node) {
		for _, c := range dom.Children(n) {
			switch {
			case dom.IsElement(c, "tr"):
				var cells []string
				for _, cell := range dom.Children(c) {
					if dom.IsAnyElement(cell, "td", "th") {
						cells = append(cells, strings.TrimSpace(e.inline(cell)))
					}
				}
				rows = append(rows, cells)
			case dom.IsAnyElement(c, "thead", "tbody", "tfoot"):
				collect(c)
			}
		}
	}
	collect(table)

	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	writeRow(rows[0])
	sep := make([]string, len(rows[0]))
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(sep)
	for _, row := range rows[1:] {
		writeRow(row)
	}
	return strings.TrimRight(b.String(), "\n")
}

// inline converts an element's children to inline markdown.
func (e *Extractor) inline(n *html.Node) string {
	var b strings.Builder
	for _, c := range dom.Children(n) {
		b.WriteString(e.inlineNode(c))
	}
	return b.String()
}

// inlineNode converts one inline node.
func (e *Extractor) inlineNode(n *html.Node) string {
	if e.Custom != nil {
		if md, handled := e.Custom(n); handled {
			return md
		}
	}

	if n.Type == html.TextNode {
		return dom.StripZwsp(n.Data)
	}
	if n.Type != html.ElementNode {
		return ""
	}

	if id := dom.GetAttr(n, AttrTokenID); id != "" {
		if tok := e.tokens.Get(id); tok != nil {
			return tok.Literal
		}
		return dom.StripZwsp(dom.TextContent(n))
	}
	if id := dom.GetAttr(n, dom.AttrCodeBlockID); id != "" {
		return e.codeFence(n, id)
	}

	switch strings.ToLower(n.Data) {
	case "strong", "b":
		return "**" + e.inline(n) + "**"
	case "em", "i":
		return "*" + e.inline(n) + "*"
	case "del", "s":
		return "~~" + e.inline(n) + "~~"
	case "code":
		return "`" + dom.StripZwsp(dom.TextContent(n)) + "`"
	case "a":
		href := dom.GetAttr(n, "href")
		return fmt.Sprintf("[%s](%s)", e.inline(n), href)
	case "br":
		return "  \n"
	case "img":
		return fmt.Sprintf("![%s](%s)", dom.GetAttr(n, "alt"), dom.GetAttr(n, "src"))
	default:
		return e.inline(n)
	}
}
