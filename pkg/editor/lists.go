package editor

import (
	"golang.org/x/net/html"

	"github.com/yaklabco/editkit/pkg/dom"
)

func listSkipOpts() dom.OffsetOptions {
	return dom.OffsetOptions{SkipAncestorTags: listSkipTags}
}

// itemText returns the list item's own logical text: nested sub-list
// content is excluded, the cursor anchor is stripped.
func itemText(li *html.Node) string {
	return dom.StripZwsp(dom.TextContentExcluding(li, listSkipOpts()))
}

// lastNestedList returns the last child of li that is a list of the
// given tag, or nil.
func lastNestedList(li *html.Node, tag string) *html.Node {
	for c := li.LastChild; c != nil; c = c.PrevSibling {
		if dom.IsElement(c, tag) {
			return c
		}
	}
	return nil
}

// IndentListItem handles Tab inside a list item: the item moves into a
// nested list (created or reused) inside its previous sibling. Returns
// false when there is no previous sibling item, so the caller falls
// through to a generic tab insert.
func (s *Surface) IndentListItem() bool {
	li := dom.ClosestListItem(s.caret.Node, s.root)
	if li == nil {
		return false
	}
	prev := dom.PrevElement(li)
	if !dom.IsElement(prev, "li") {
		return false
	}
	list := li.Parent
	if !dom.IsAnyElement(list, "ul", "ol") {
		return false
	}

	offset := dom.GetCursorOffset(li, s.caret, listSkipOpts())

	nested := lastNestedList(prev, list.Data)
	if nested == nil {
		nested = dom.NewElement(list.Data)
		prev.AppendChild(nested)
	}
	dom.Detach(li)
	nested.AppendChild(li)

	s.caret = dom.SetCursorOffset(li, offset, listSkipOpts())
	s.notifyChange()
	return true
}

// OutdentListItem handles Shift+Tab inside a list item. A nested item
// is promoted into the grandparent list, carrying any following
// siblings along inside a new nested list so they stay logically after
// it. A top-level item converts to a paragraph spliced before, after,
// or into a split of its list depending on its position.
func (s *Surface) OutdentListItem() bool {
	li := dom.ClosestListItem(s.caret.Node, s.root)
	if li == nil {
		return false
	}
	list := li.Parent
	if !dom.IsAnyElement(list, "ul", "ol") {
		return false
	}

	offset := dom.GetCursorOffset(li, s.caret, listSkipOpts())

	if dom.IsElement(list.Parent, "li") {
		s.promoteNestedItem(li, list, offset)
	} else {
		s.itemToParagraph(li, list, offset)
	}

	s.notifyChange()
	return true
}

// promoteNestedItem lifts li out of a nested list into the grandparent
// list, demoting the item's following siblings into a fresh nested
// list inside it.
func (s *Surface) promoteNestedItem(li, list *html.Node, offset int) {
	parentLi := list.Parent

	var following []*html.Node
	for sib := li.NextSibling; sib != nil; sib = sib.NextSibling {
		following = append(following, sib)
	}

	dom.Detach(li)
	if len(following) > 0 {
		demoted := dom.NewElement(list.Data)
		for _, sib := range following {
			dom.Detach(sib)
			demoted.AppendChild(sib)
		}
		li.AppendChild(demoted)
	}
	dom.InsertAfter(li, parentLi)

	if list.FirstChild == nil {
		dom.Detach(list)
	}

	s.caret = dom.SetCursorOffset(li, offset, listSkipOpts())
}

// itemToParagraph converts a top-level li to a paragraph. First item:
// the paragraph goes before the list. Last item: after. Middle item:
// the list splits in two around the paragraph.
func (s *Surface) itemToParagraph(li, list *html.Node, offset int) {
	p := dom.NewElement("p")
	dom.MoveChildren(li, p)
	if p.FirstChild == nil {
		p.AppendChild(dom.NewText(dom.Zwsp))
	}

	first := li.PrevSibling == nil
	last := li.NextSibling == nil

	switch {
	case first:
		list.Parent.InsertBefore(p, list)
	case last:
		dom.InsertAfter(p, list)
	default:
		tail := dom.CloneShallow(list)
		for sib := li.NextSibling; sib != nil; {
			next := sib.NextSibling
			dom.Detach(sib)
			tail.AppendChild(sib)
			sib = next
		}
		dom.InsertAfter(p, list)
		dom.InsertAfter(tail, p)
	}

	dom.Detach(li)
	if list.FirstChild == nil {
		dom.Detach(list)
	}

	s.caret = dom.SetCursorOffset(p, offset, listSkipOpts())
}

// HandleListEnter implements Enter inside a list item. An empty nested
// item outdents; an empty top-level item becomes a paragraph; a
// cursor at the end appends a fresh sibling item; a mid-content cursor
// splits the remainder into the new item.
func (s *Surface) HandleListEnter() bool {
	li := dom.ClosestListItem(s.caret.Node, s.root)
	if li == nil {
		return false
	}

	if itemText(li) == "" {
		return s.OutdentListItem()
	}

	offset := dom.GetCursorOffset(li, s.caret, listSkipOpts())
	total := len(dom.TextContentExcluding(li, listSkipOpts()))

	newLi := dom.NewElement("li")
	if offset >= total {
		newLi.AppendChild(dom.NewText(dom.Zwsp))
	} else {
		for _, n := range dom.ExtractAfter(li, s.caret) {
			newLi.AppendChild(n)
		}
		if dom.TextContent(newLi) == "" {
			newLi.AppendChild(dom.NewText(dom.Zwsp))
		}
	}
	dom.InsertAfter(newLi, li)

	s.caret = dom.PositionCursorAtStart(newLi)
	s.notifyChange()
	return true
}

// ToggleList converts the current block to a one-item list of the
// given tag ("ul" or "ol"), or a list item back to a paragraph when it
// is already in a list of that tag.
func (s *Surface) ToggleList(tag string) bool {
	li := dom.ClosestListItem(s.caret.Node, s.root)
	if li != nil {
		list := li.Parent
		if dom.IsElement(list, tag) {
			return s.OutdentListItem()
		}
		// Switch list type in place.
		offset := dom.GetCursorOffset(li, s.caret, listSkipOpts())
		swapped := dom.NewElement(tag)
		dom.MoveChildren(list, swapped)
		dom.ReplaceNode(list, swapped)
		s.caret = dom.SetCursorOffset(li, offset, listSkipOpts())
		s.notifyChange()
		return true
	}

	block := s.CurrentBlock()
	if block == nil || !dom.IsConvertibleBlock(block) {
		return false
	}
	offset := dom.GetCursorOffset(block, s.caret, dom.OffsetOptions{})
	list := dom.NewElement(tag)
	item := dom.NewElement("li")
	dom.MoveChildren(block, item)
	if item.FirstChild == nil {
		item.AppendChild(dom.NewText(dom.Zwsp))
	}
	list.AppendChild(item)
	dom.ReplaceNode(block, list)
	s.caret = dom.SetCursorOffset(item, offset, listSkipOpts())
	s.notifyChange()
	return true
}
