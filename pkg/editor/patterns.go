package editor

import (
	"regexp"

	"github.com/yaklabco/editkit/pkg/dom"
)

// listMarker matches a leading list marker typed at the start of a
// block: "- ", "* ", "+ ", or "1. " style.
var listMarker = regexp.MustCompile(`^([-*+]|\d+\.)\s+(.*)$`)

// ListPattern describes a detected list marker.
type ListPattern struct {
	Ordered bool
	Marker  string
	Rest    string
}

// DetectListPattern recognizes a list marker at the start of text.
func DetectListPattern(text string) (ListPattern, bool) {
	m := listMarker.FindStringSubmatch(text)
	if m == nil {
		return ListPattern{}, false
	}
	marker := m[1]
	return ListPattern{
		Ordered: marker[0] >= '0' && marker[0] <= '9',
		Marker:  marker,
		Rest:    m[2],
	}, true
}

// AutoConvertListPattern replaces the current block with a one-item
// list when its text begins with a list marker, leaving the cursor at
// the end of the remainder text. Runs on input events.
func (s *Surface) AutoConvertListPattern() bool {
	block := s.CurrentBlock()
	if block == nil || !dom.IsConvertibleBlock(block) {
		return false
	}

	text := dom.StripZwsp(dom.TextContent(block))
	pattern, ok := DetectListPattern(text)
	if !ok {
		return false
	}

	tag := "ul"
	if pattern.Ordered {
		tag = "ol"
	}
	list := dom.NewElement(tag)
	item := dom.NewElement("li")
	if pattern.Rest == "" {
		item.AppendChild(dom.NewText(dom.Zwsp))
	} else {
		item.AppendChild(dom.NewText(pattern.Rest))
	}
	list.AppendChild(item)
	dom.ReplaceNode(block, list)

	s.caret = dom.PositionCursorAtEnd(item)
	s.notifyChange()
	return true
}
