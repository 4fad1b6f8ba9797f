package dom

import "golang.org/x/net/html"

// OffsetOptions controls which subtrees count toward a plain-text
// cursor offset.
type OffsetOptions struct {
	// SkipAncestorTags names tags whose descendant text is excluded
	// from the count. Used to ignore nested lists when measuring a
	// position within an outer list item.
	SkipAncestorTags []string
}

// GetCursorOffset maps a caret to an integer offset into the logical
// plain text of container: the concatenation of all included text
// nodes in document order. Text nodes with a skip-tag ancestor
// strictly between themselves and the container contribute nothing.
func GetCursorOffset(container *html.Node, caret Caret, opts OffsetOptions) int {
	if !caret.IsValid() {
		return 0
	}

	total := 0
	for _, t := range TextNodes(container) {
		if hasSkippedAncestor(t, container, opts.SkipAncestorTags) {
			if t == caret.Node {
				return total
			}
			continue
		}

		switch caretOrder(t, caret) {
		case 0:
			return total + clampOffset(caret.Offset, len(t.Data))
		case 1:
			return total
		}
		total += len(t.Data)
	}
	return total
}

// SetCursorOffset places the caret at the given plain-text offset
// within container, honoring the same exclusion rules as
// GetCursorOffset. Offsets past the end of content clamp to the
// absolute end of the container: after the last text node, or at
// contents-end when no text exists.
func SetCursorOffset(container *html.Node, offset int, opts OffsetOptions) Caret {
	if offset < 0 {
		offset = 0
	}

	total := 0
	for _, t := range TextNodes(container) {
		if hasSkippedAncestor(t, container, opts.SkipAncestorTags) {
			continue
		}
		if offset <= total+len(t.Data) {
			return Caret{Node: t, Offset: offset - total}
		}
		total += len(t.Data)
	}

	if all := TextNodes(container); len(all) > 0 {
		last := all[len(all)-1]
		return Caret{Node: last, Offset: len(last.Data)}
	}
	return Caret{Node: container, Offset: ChildCount(container)}
}

// PositionCursorAtStart returns a caret at the logical start of el.
// A lone zero-width-space anchor is special-cased: the caret lands
// after it so typed input stays inside the element.
func PositionCursorAtStart(el *html.Node) Caret {
	texts := TextNodes(el)
	if len(texts) == 0 {
		return Caret{Node: el, Offset: 0}
	}
	first := texts[0]
	if first.Data == Zwsp {
		return Caret{Node: first, Offset: len(Zwsp)}
	}
	return Caret{Node: first, Offset: 0}
}

// PositionCursorAtEnd returns a caret at the logical end of el.
func PositionCursorAtEnd(el *html.Node) Caret {
	texts := TextNodes(el)
	if len(texts) == 0 {
		return Caret{Node: el, Offset: ChildCount(el)}
	}
	last := texts[len(texts)-1]
	return Caret{Node: last, Offset: len(last.Data)}
}

// TextContentExcluding concatenates the text node data that counts
// toward cursor offsets under the same exclusion rules as
// GetCursorOffset.
func TextContentExcluding(container *html.Node, opts OffsetOptions) string {
	var b []byte
	for _, t := range TextNodes(container) {
		if hasSkippedAncestor(t, container, opts.SkipAncestorTags) {
			continue
		}
		b = append(b, t.Data...)
	}
	return string(b)
}

// hasSkippedAncestor reports whether any element strictly between t
// and container matches a skip tag. Nodes outside the container are
// always skipped.
func hasSkippedAncestor(t, container *html.Node, skipTags []string) bool {
	for p := t.Parent; p != nil; p = p.Parent {
		if p == container {
			return false
		}
		if p.Type == html.ElementNode && IsAnyElement(p, skipTags...) {
			return true
		}
	}
	return true
}
