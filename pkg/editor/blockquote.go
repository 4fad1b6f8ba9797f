package editor

import "github.com/yaklabco/editkit/pkg/dom"

// ToggleBlockquote wraps the current block in a blockquote, or
// unwraps the block when it is already quoted. The cursor keeps its
// logical offset within the block.
func (s *Surface) ToggleBlockquote() bool {
	block := s.CurrentBlock()
	if block == nil {
		return false
	}

	offset := dom.GetCursorOffset(block, s.caret, dom.OffsetOptions{})

	if quote := dom.ClosestBlockquote(block, s.root); quote != nil {
		if quote == block {
			// Bare text directly inside the blockquote: unwrap its
			// contents into a paragraph.
			p := dom.NewElement("p")
			dom.MoveChildren(quote, p)
			if p.FirstChild == nil {
				p.AppendChild(dom.NewText(dom.Zwsp))
			}
			dom.ReplaceNode(quote, p)
			block = p
		} else {
			dom.Detach(block)
			quote.Parent.InsertBefore(block, quote)
			if quote.FirstChild == nil {
				dom.Detach(quote)
			}
		}
	} else {
		if !dom.IsConvertibleBlock(block) {
			return false
		}
		quote := dom.NewElement("blockquote")
		dom.ReplaceNode(block, quote)
		quote.AppendChild(block)
	}

	s.caret = dom.SetCursorOffset(block, offset, dom.OffsetOptions{})
	s.notifyChange()
	return true
}
