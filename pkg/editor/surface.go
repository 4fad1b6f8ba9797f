package editor

import (
	"golang.org/x/net/html"

	"github.com/yaklabco/editkit/pkg/dom"
)

// listSkipTags excludes nested sub-lists from cursor offset
// measurements inside a list item.
var listSkipTags = []string{"UL", "OL"}

// Surface binds the structural editors to one editable content root.
// The zero value is not usable; construct with NewSurface.
type Surface struct {
	root     *html.Node
	caret    dom.Caret
	registry *Registry

	// OnContentChange runs after every successful mutation, typically
	// scheduling a markdown re-sync.
	OnContentChange func()
}

// NewSurface creates an editing surface over root. registry may be
// shared with the sync engine; a nil registry gets a fresh one.
func NewSurface(root *html.Node, registry *Registry, onChange func()) *Surface {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Surface{root: root, registry: registry, OnContentChange: onChange}
}

// Root returns the content root element.
func (s *Surface) Root() *html.Node { return s.root }

// Registry returns the code block registry.
func (s *Surface) Registry() *Registry { return s.registry }

// Caret returns the current cursor position.
func (s *Surface) Caret() dom.Caret { return s.caret }

// SetCaret moves the cursor.
func (s *Surface) SetCaret(c dom.Caret) { s.caret = c }

// CurrentBlock returns the block element containing the cursor, or
// nil when the cursor is unset or outside the root.
func (s *Surface) CurrentBlock() *html.Node {
	if !s.caret.IsValid() || !dom.Contains(s.root, s.caret.Node) {
		return nil
	}
	return dom.ClosestBlock(s.caret.Node, s.root)
}

// notifyChange fires the content change callback.
func (s *Surface) notifyChange() {
	if s.OnContentChange != nil {
		s.OnContentChange()
	}
}
