package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// AttrCodeBlockID marks an element as a code block wrapper; the value
// keys the surrounding editor's code block registry.
const AttrCodeBlockID = "data-code-block-id"

// BlockKind is a closed classification of structural block elements.
// Every editing operation's unit of work is exactly one block.
type BlockKind int

const (
	BlockOther BlockKind = iota
	BlockParagraph
	BlockHeading
	BlockListItem
	BlockBlockquote
	BlockCodeBlockWrapper
	BlockTableCell
)

// BlockClass carries the kind plus the heading level for headings.
type BlockClass struct {
	Kind         BlockKind
	HeadingLevel int
}

// ClassifyBlock classifies an element as a structural block. Non-block
// elements and non-elements classify as BlockOther.
func ClassifyBlock(n *html.Node) BlockClass {
	if n == nil || n.Type != html.ElementNode {
		return BlockClass{Kind: BlockOther}
	}
	if HasAttr(n, AttrCodeBlockID) {
		return BlockClass{Kind: BlockCodeBlockWrapper}
	}

	switch strings.ToLower(n.Data) {
	case "p":
		return BlockClass{Kind: BlockParagraph}
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return BlockClass{Kind: BlockHeading, HeadingLevel: int(n.Data[1] - '0')}
	case "li":
		return BlockClass{Kind: BlockListItem}
	case "blockquote":
		return BlockClass{Kind: BlockBlockquote}
	case "td", "th":
		return BlockClass{Kind: BlockTableCell}
	default:
		return BlockClass{Kind: BlockOther}
	}
}

// IsConvertibleBlock reports whether el can be converted in place
// between paragraph and heading forms.
func IsConvertibleBlock(el *html.Node) bool {
	return IsAnyElement(el, "p", "div", "h1", "h2", "h3", "h4", "h5", "h6")
}

// ClosestBlock returns the nearest ancestor-or-self of n (stopping at
// root, exclusive) that is a structural block or a convertible
// container.
func ClosestBlock(n, root *html.Node) *html.Node {
	for p := n; p != nil && p != root; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		if ClassifyBlock(p).Kind != BlockOther || IsConvertibleBlock(p) {
			return p
		}
	}
	return nil
}

// ClosestAncestorTag returns the nearest ancestor-or-self matching one
// of the tags, stopping at root (exclusive).
func ClosestAncestorTag(n, root *html.Node, tags ...string) *html.Node {
	for p := n; p != nil && p != root; p = p.Parent {
		if IsAnyElement(p, tags...) {
			return p
		}
	}
	return nil
}

// ClosestListItem returns the nearest enclosing li.
func ClosestListItem(n, root *html.Node) *html.Node {
	return ClosestAncestorTag(n, root, "li")
}

// ClosestList returns the nearest enclosing ul or ol.
func ClosestList(n, root *html.Node) *html.Node {
	return ClosestAncestorTag(n, root, "ul", "ol")
}

// ClosestCell returns the nearest enclosing table cell.
func ClosestCell(n, root *html.Node) *html.Node {
	return ClosestAncestorTag(n, root, "td", "th")
}

// ClosestTable returns the nearest enclosing table.
func ClosestTable(n, root *html.Node) *html.Node {
	return ClosestAncestorTag(n, root, "table")
}

// ClosestBlockquote returns the nearest enclosing blockquote.
func ClosestBlockquote(n, root *html.Node) *html.Node {
	return ClosestAncestorTag(n, root, "blockquote")
}

// ClosestCodeBlockWrapper returns the nearest enclosing element
// carrying a code block id.
func ClosestCodeBlockWrapper(n, root *html.Node) *html.Node {
	for p := n; p != nil && p != root; p = p.Parent {
		if p.Type == html.ElementNode && HasAttr(p, AttrCodeBlockID) {
			return p
		}
	}
	return nil
}
