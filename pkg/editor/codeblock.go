package editor

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/yaklabco/editkit/pkg/dom"
)

// BuildCodeBlockWrapper constructs the interactive wrapper for one
// fenced code block: a div carrying the registry id around a pre/code
// editable region.
func BuildCodeBlockWrapper(state *CodeBlockState) *html.Node {
	wrapper := dom.NewElement("div")
	dom.SetAttr(wrapper, dom.AttrCodeBlockID, state.ID)
	dom.SetAttr(wrapper, "class", "code-block-wrapper")

	pre := dom.NewElement("pre")
	code := dom.NewElement("code")
	if state.Language != "" {
		dom.SetAttr(code, "class", "language-"+state.Language)
	}
	if state.Content != "" {
		code.AppendChild(dom.NewText(state.Content))
	} else {
		code.AppendChild(dom.NewText(dom.Zwsp))
	}
	pre.AppendChild(code)
	wrapper.AppendChild(pre)
	return wrapper
}

// codeRegion returns the editable code element inside a wrapper.
func codeRegion(wrapper *html.Node) *html.Node {
	for pre := wrapper.FirstChild; pre != nil; pre = pre.NextSibling {
		if !dom.IsElement(pre, "pre") {
			continue
		}
		for code := pre.FirstChild; code != nil; code = code.NextSibling {
			if dom.IsElement(code, "code") {
				return code
			}
		}
	}
	return nil
}

// regionText returns the logical content of a code region with the
// cursor anchor stripped.
func regionText(region *html.Node) string {
	return dom.StripZwsp(dom.TextContent(region))
}

// setRegionText replaces the region's children with one text node.
func setRegionText(region *html.Node, text string) *html.Node {
	for region.FirstChild != nil {
		region.RemoveChild(region.FirstChild)
	}
	if text == "" {
		text = dom.Zwsp
	}
	t := dom.NewText(text)
	region.AppendChild(t)
	return t
}

// FindCodeBlock returns the wrapper element with the given id, or nil.
func FindCodeBlock(root *html.Node, id string) *html.Node {
	var found *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && dom.GetAttr(n, dom.AttrCodeBlockID) == id {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

// InsertCodeBlock registers a new code block and inserts its wrapper
// after the current block (or appends it to the root). The cursor
// moves into the code region.
func (s *Surface) InsertCodeBlock(language string) *CodeBlockState {
	state := s.registry.Register("", language)
	wrapper := BuildCodeBlockWrapper(state)

	if block := s.CurrentBlock(); block != nil && block != s.root {
		dom.InsertAfter(wrapper, block)
	} else {
		s.root.AppendChild(wrapper)
	}

	s.caret = dom.PositionCursorAtStart(codeRegion(wrapper))
	s.notifyChange()
	return state
}

// HandleCodeBlockEnter implements Enter inside a code region. A
// second Enter at the end of the content exits the block: the trailing
// blank line is removed and the cursor moves to a fresh paragraph
// after the wrapper. Any other Enter inserts a newline in place.
func (s *Surface) HandleCodeBlockEnter() bool {
	wrapper := dom.ClosestCodeBlockWrapper(s.caret.Node, s.root)
	if wrapper == nil {
		return false
	}
	region := codeRegion(wrapper)
	if region == nil {
		return false
	}

	offset := dom.GetCursorOffset(region, s.caret, dom.OffsetOptions{})
	raw := dom.TextContent(region)
	content := dom.StripZwsp(raw)
	atEnd := offset >= len(raw)

	if atEnd && strings.HasSuffix(content, "\n") {
		setRegionText(region, strings.TrimSuffix(content, "\n"))
		s.syncRegion(wrapper, region)

		p := dom.NewElement("p")
		p.AppendChild(dom.NewText(dom.Zwsp))
		dom.InsertAfter(p, wrapper)
		s.caret = dom.PositionCursorAtStart(p)
		s.notifyChange()
		return true
	}

	cut := offset - strings.Count(raw[:clamp(offset, len(raw))], dom.Zwsp)*len(dom.Zwsp)
	cut = clamp(cut, len(content))
	t := setRegionText(region, content[:cut]+"\n"+content[cut:])
	s.caret = dom.Caret{Node: t, Offset: cut + 1}
	s.syncRegion(wrapper, region)
	s.notifyChange()
	return true
}

// HandleCodeBlockBoundaryDelete implements Backspace (backward) or
// Delete (forward) pressed in an empty paragraph adjacent to a code
// block: the paragraph is removed and the cursor moves to the end of
// the code region instead of eating into the wrapper.
func (s *Surface) HandleCodeBlockBoundaryDelete(backward bool) bool {
	block := s.CurrentBlock()
	if block == nil || !dom.IsElement(block, "p") {
		return false
	}
	if dom.StripZwsp(dom.TextContent(block)) != "" {
		return false
	}

	var neighbor *html.Node
	if backward {
		neighbor = dom.PrevElement(block)
	} else {
		neighbor = dom.NextElement(block)
	}
	if neighbor == nil || dom.GetAttr(neighbor, dom.AttrCodeBlockID) == "" {
		return false
	}
	region := codeRegion(neighbor)
	if region == nil {
		return false
	}

	dom.Detach(block)
	s.caret = dom.PositionCursorAtEnd(region)
	s.notifyChange()
	return true
}

// DeleteCodeBlock removes the wrapper and its registry entry. The
// cursor parks at the end of the previous block.
func (s *Surface) DeleteCodeBlock(id string) bool {
	wrapper := FindCodeBlock(s.root, id)
	if wrapper == nil {
		return false
	}

	prev := dom.PrevElement(wrapper)
	dom.Detach(wrapper)
	s.registry.Delete(id)

	if prev != nil {
		s.caret = dom.PositionCursorAtEnd(prev)
	} else {
		s.caret = dom.PositionCursorAtEnd(s.root)
	}
	s.notifyChange()
	return true
}

// SetCodeBlockLanguage updates the language in the registry and on the
// code element's class.
func (s *Surface) SetCodeBlockLanguage(id, language string) bool {
	if !s.registry.SetLanguage(id, language) {
		return false
	}
	wrapper := FindCodeBlock(s.root, id)
	if wrapper != nil {
		if region := codeRegion(wrapper); region != nil {
			if language == "" {
				dom.SetAttr(region, "class", "")
			} else {
				dom.SetAttr(region, "class", "language-"+language)
			}
		}
	}
	s.notifyChange()
	return true
}

// UpdateCodeBlockContent replaces the block's content in both the
// registry and the DOM region.
func (s *Surface) UpdateCodeBlockContent(id, content string) bool {
	if !s.registry.SetContent(id, content) {
		return false
	}
	wrapper := FindCodeBlock(s.root, id)
	if wrapper != nil {
		if region := codeRegion(wrapper); region != nil {
			setRegionText(region, content)
		}
	}
	s.notifyChange()
	return true
}

// syncRegion mirrors the region's current text into the registry.
func (s *Surface) syncRegion(wrapper, region *html.Node) {
	id := dom.GetAttr(wrapper, dom.AttrCodeBlockID)
	if id != "" {
		s.registry.SetContent(id, regionText(region))
	}
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
