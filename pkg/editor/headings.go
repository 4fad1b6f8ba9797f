package editor

import (
	"fmt"

	"github.com/yaklabco/editkit/pkg/dom"
)

// ConvertHeading converts the current block to a heading of the given
// level (1..6). A block already at that level toggles back to a
// paragraph. The cursor keeps its logical offset.
func (s *Surface) ConvertHeading(level int) bool {
	if level < 1 || level > 6 {
		return false
	}
	block := s.CurrentBlock()
	if block == nil || !dom.IsConvertibleBlock(block) {
		return false
	}

	tag := fmt.Sprintf("h%d", level)
	class := dom.ClassifyBlock(block)
	if class.Kind == dom.BlockHeading && class.HeadingLevel == level {
		tag = "p"
	}

	offset := dom.GetCursorOffset(block, s.caret, dom.OffsetOptions{})
	converted := dom.NewElement(tag)
	dom.MoveChildren(block, converted)
	if converted.FirstChild == nil {
		converted.AppendChild(dom.NewText(dom.Zwsp))
	}
	dom.ReplaceNode(block, converted)

	s.caret = dom.SetCursorOffset(converted, offset, dom.OffsetOptions{})
	s.notifyChange()
	return true
}

// InsertHorizontalRule places an hr after the nearest enclosing block
// followed by a fresh paragraph that receives the cursor.
func (s *Surface) InsertHorizontalRule() bool {
	block := s.CurrentBlock()

	hr := dom.NewElement("hr")
	p := dom.NewElement("p")
	p.AppendChild(dom.NewText(dom.Zwsp))

	if block != nil && block != s.root {
		dom.InsertAfter(hr, block)
	} else {
		s.root.AppendChild(hr)
	}
	dom.InsertAfter(p, hr)

	s.caret = dom.PositionCursorAtStart(p)
	s.notifyChange()
	return true
}
