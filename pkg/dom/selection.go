package dom

import "golang.org/x/net/html"

// Caret is a cursor position: a text node plus a byte offset into its
// data, or an element plus a child index (the boundary before that
// child; an index equal to the child count is the element's content
// end).
type Caret struct {
	Node   *html.Node
	Offset int
}

// IsValid reports whether the caret points at a node.
func (c Caret) IsValid() bool { return c.Node != nil }

// caretOrder positions a text node relative to a caret boundary:
// -1 the node lies entirely before the caret, 0 the node contains the
// caret, 1 the node lies at or after it.
func caretOrder(t *html.Node, c Caret) int {
	if t == c.Node {
		return 0
	}
	if IsText(c.Node) {
		if CompareOrder(t, c.Node) < 0 {
			return -1
		}
		return 1
	}

	// Element boundary: find the child the boundary precedes.
	ref := c.Node.FirstChild
	for i := 0; i < c.Offset && ref != nil; i++ {
		ref = ref.NextSibling
	}
	if ref != nil {
		if CompareOrder(t, ref) < 0 {
			return -1
		}
		return 1
	}
	// Boundary at content end: everything inside or before the element
	// precedes it.
	if Contains(c.Node, t) || CompareOrder(t, c.Node) < 0 {
		return -1
	}
	return 1
}

// Range is a pair of carets in document order.
type Range struct {
	Start Caret
	End   Caret
}

// Text returns the plain text contained in the range, mirroring the
// browser's Range.toString(): concatenated text node content between
// the boundaries, with partial inclusion of boundary text nodes.
func (r Range) Text() string {
	root := treeRoot(r.Start.Node)
	var out []byte
	for _, t := range TextNodes(root) {
		if caretOrder(t, r.Start) < 0 {
			continue
		}
		if t != r.End.Node && caretOrder(t, r.End) > 0 {
			break
		}

		lo, hi := 0, len(t.Data)
		if t == r.Start.Node {
			lo = clampOffset(r.Start.Offset, hi)
		}
		if t == r.End.Node {
			hi = clampOffset(r.End.Offset, hi)
		}
		if lo < hi {
			out = append(out, t.Data[lo:hi]...)
		}
		if t == r.End.Node {
			break
		}
	}
	return string(out)
}

// ExtractAfter removes and returns everything between the caret and
// the end of block, following Range.extractContents semantics:
// boundary text nodes are split and partially selected ancestors are
// shallow-cloned into the extracted fragment.
func ExtractAfter(block *html.Node, caret Caret) []*html.Node {
	if !caret.IsValid() || !Contains(block, caret.Node) {
		return nil
	}

	var taken []*html.Node
	var parent *html.Node

	if IsText(caret.Node) {
		offset := clampOffset(caret.Offset, len(caret.Node.Data))
		rest := caret.Node.Data[offset:]
		caret.Node.Data = caret.Node.Data[:offset]
		parent = caret.Node.Parent
		start := caret.Node.NextSibling
		if rest != "" {
			taken = append(taken, NewText(rest))
		}
		taken = append(taken, detachFollowing(start)...)
	} else {
		parent = caret.Node
		children := Children(caret.Node)
		if caret.Offset < len(children) {
			taken = detachFollowing(children[caret.Offset])
		}
	}

	for parent != nil && parent != block {
		wrapper := CloneShallow(parent)
		for _, n := range taken {
			wrapper.AppendChild(n)
		}
		next := parent.NextSibling
		taken = []*html.Node{wrapper}
		taken = append(taken, detachFollowing(next)...)
		parent = parent.Parent
	}

	return taken
}

// detachFollowing detaches start and all its following siblings,
// returning them in order.
func detachFollowing(start *html.Node) []*html.Node {
	var out []*html.Node
	for start != nil {
		next := start.NextSibling
		Detach(start)
		out = append(out, start)
		start = next
	}
	return out
}

func treeRoot(n *html.Node) *html.Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

func clampOffset(offset, max int) int {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}
