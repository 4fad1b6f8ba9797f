// Package dom is a thin editable-document layer over golang.org/x/net/html.
// It models the subset of the browser DOM the structural editors rely
// on: fragment parse/render, tree mutation, document-order text node
// traversal, a caret/range selection model, and a plain-text cursor
// offset engine with selective subtree exclusion.
package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Zwsp is the zero-width-space cursor anchor. Empty elements carry a
// lone U+200B so the editable surface keeps a valid cursor position
// inside them; content checks strip it.
const Zwsp = "\u200b"

// ParseFragment parses markup in a body context and returns the
// top-level nodes. Malformed markup degrades to whatever the HTML5
// parser recovers; it never fails for string input.
func ParseFragment(markup string) []*html.Node {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), body)
	if err != nil {
		return []*html.Node{NewText(markup)}
	}
	return nodes
}

// ParseContainer parses markup into a detached div acting as the
// content root.
func ParseContainer(markup string) *html.Node {
	root := NewElement("div")
	for _, n := range ParseFragment(markup) {
		root.AppendChild(n)
	}
	return root
}

// Render serializes a node including its own tag.
func Render(n *html.Node) string {
	var b strings.Builder
	_ = html.Render(&b, n)
	return b.String()
}

// RenderChildren serializes only the children of n.
func RenderChildren(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&b, c)
	}
	return b.String()
}

// NewElement creates a detached element. attrPairs alternate name,
// value.
func NewElement(tag string, attrPairs ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     strings.ToLower(tag),
		DataAtom: atom.Lookup([]byte(strings.ToLower(tag))),
	}
	for i := 0; i+1 < len(attrPairs); i += 2 {
		SetAttr(n, attrPairs[i], attrPairs[i+1])
	}
	return n
}

// NewText creates a detached text node.
func NewText(data string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: data}
}

// CloneShallow copies an element without its children.
func CloneShallow(n *html.Node) *html.Node {
	clone := &html.Node{Type: n.Type, Data: n.Data, DataAtom: n.DataAtom}
	clone.Attr = append(clone.Attr, n.Attr...)
	return clone
}

// IsElement reports whether n is an element with the given tag
// (case-insensitive).
func IsElement(n *html.Node, tag string) bool {
	return n != nil && n.Type == html.ElementNode && strings.EqualFold(n.Data, tag)
}

// IsAnyElement reports whether n is an element with one of the tags.
func IsAnyElement(n *html.Node, tags ...string) bool {
	for _, tag := range tags {
		if IsElement(n, tag) {
			return true
		}
	}
	return false
}

// IsText reports whether n is a text node.
func IsText(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode
}

// GetAttr returns the named attribute value, or "".
func GetAttr(n *html.Node, name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether n carries the named attribute.
func HasAttr(n *html.Node, name string) bool {
	if n == nil {
		return false
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

// SetAttr sets or replaces the named attribute.
func SetAttr(n *html.Node, name, value string) {
	for i := range n.Attr {
		if n.Attr[i].Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

// Detach removes n from its parent. Detached nodes are left untouched.
func Detach(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// InsertAfter places newNode as the next sibling of ref.
func InsertAfter(newNode, ref *html.Node) {
	if ref.Parent == nil {
		return
	}
	if ref.NextSibling != nil {
		ref.Parent.InsertBefore(newNode, ref.NextSibling)
		return
	}
	ref.Parent.AppendChild(newNode)
}

// ReplaceNode swaps newNode into oldNode's position.
func ReplaceNode(oldNode, newNode *html.Node) {
	parent := oldNode.Parent
	if parent == nil {
		return
	}
	parent.InsertBefore(newNode, oldNode)
	parent.RemoveChild(oldNode)
}

// MoveChildren appends every child of src to dst, in order.
func MoveChildren(src, dst *html.Node) {
	for src.FirstChild != nil {
		c := src.FirstChild
		src.RemoveChild(c)
		dst.AppendChild(c)
	}
}

// Children returns the direct children of n.
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// ChildCount returns the number of direct children.
func ChildCount(n *html.Node) int {
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count++
	}
	return count
}

// ChildIndex returns n's index among its siblings, or -1 if detached.
func ChildIndex(n *html.Node) int {
	if n == nil || n.Parent == nil {
		return -1
	}
	idx := 0
	for c := n.Parent.FirstChild; c != nil; c = c.NextSibling {
		if c == n {
			return idx
		}
		idx++
	}
	return -1
}

// PrevElement returns the nearest preceding sibling element.
func PrevElement(n *html.Node) *html.Node {
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

// NextElement returns the nearest following sibling element.
func NextElement(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

// TextNodes returns every text node under root in document order.
func TextNodes(root *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				out = append(out, c)
			} else {
				walk(c)
			}
		}
	}
	walk(root)
	return out
}

// TextContent concatenates all text node data under n.
func TextContent(n *html.Node) string {
	if IsText(n) {
		return n.Data
	}
	var b strings.Builder
	for _, t := range TextNodes(n) {
		b.WriteString(t.Data)
	}
	return b.String()
}

// StripZwsp removes cursor anchor characters for content checks.
func StripZwsp(s string) string {
	return strings.ReplaceAll(s, Zwsp, "")
}

// Contains reports whether ancestor is an ancestor of (or the same
// node as) n.
func Contains(ancestor, n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// nodePath returns child indices from the tree root down to n.
func nodePath(n *html.Node) []int {
	var path []int
	for p := n; p.Parent != nil; p = p.Parent {
		path = append([]int{ChildIndex(p)}, path...)
	}
	return path
}

// CompareOrder compares two nodes in document order: -1 if a precedes
// b, 1 if a follows b, 0 if identical. An ancestor precedes its
// descendants. Both nodes must share a tree.
func CompareOrder(a, b *html.Node) int {
	if a == b {
		return 0
	}
	pa, pb := nodePath(a), nodePath(b)
	for i := 0; i < len(pa) && i < len(pb); i++ {
		if pa[i] != pb[i] {
			if pa[i] < pb[i] {
				return -1
			}
			return 1
		}
	}
	if len(pa) < len(pb) {
		return -1
	}
	return 1
}
