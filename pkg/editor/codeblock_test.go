package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/editkit/pkg/dom"
)

func TestInsertCodeBlock(t *testing.T) {
	t.Parallel()

	s := surfaceFor("<p>intro</p>")
	placeCaret(t, s, "intro", 5)

	state := s.InsertCodeBlock("go")
	require.NotNil(t, state)
	assert.Equal(t, "code-block-1", state.ID)
	assert.Equal(t, "go", state.Language)
	assert.Equal(t, 1, s.Registry().Len())

	wrapper := FindCodeBlock(s.Root(), state.ID)
	require.NotNil(t, wrapper)
	region := codeRegion(wrapper)
	require.NotNil(t, region)
	assert.Equal(t, "language-go", dom.GetAttr(region, "class"))
	assert.True(t, dom.Contains(region, s.Caret().Node))
}

func TestHandleCodeBlockEnter_InsertsNewline(t *testing.T) {
	t.Parallel()

	s := surfaceFor("")
	state := s.InsertCodeBlock("")
	require.True(t, s.UpdateCodeBlockContent(state.ID, "ab"))

	wrapper := FindCodeBlock(s.Root(), state.ID)
	region := codeRegion(wrapper)
	s.SetCaret(dom.Caret{Node: region.FirstChild, Offset: 1})

	require.True(t, s.HandleCodeBlockEnter())
	assert.Equal(t, "a\nb", regionText(region))
	assert.Equal(t, "a\nb", s.Registry().Get(state.ID).Content)
	assert.Equal(t, 2, s.Caret().Offset)
}

func TestHandleCodeBlockEnter_DoubleEnterExitsBlock(t *testing.T) {
	t.Parallel()

	s := surfaceFor("")
	state := s.InsertCodeBlock("")
	require.True(t, s.UpdateCodeBlockContent(state.ID, "code\n"))

	wrapper := FindCodeBlock(s.Root(), state.ID)
	region := codeRegion(wrapper)
	s.SetCaret(dom.PositionCursorAtEnd(region))

	require.True(t, s.HandleCodeBlockEnter())

	assert.Equal(t, "code", s.Registry().Get(state.ID).Content)
	next := dom.NextElement(wrapper)
	require.NotNil(t, next)
	assert.True(t, dom.IsElement(next, "p"))
	assert.True(t, dom.Contains(next, s.Caret().Node))
}

func TestHandleCodeBlockEnter_OutsideBlock(t *testing.T) {
	t.Parallel()

	s := surfaceFor("<p>plain</p>")
	placeCaret(t, s, "plain", 0)

	assert.False(t, s.HandleCodeBlockEnter())
}

func TestHandleCodeBlockBoundaryDelete_Backspace(t *testing.T) {
	t.Parallel()

	s := surfaceFor("")
	state := s.InsertCodeBlock("")
	require.True(t, s.UpdateCodeBlockContent(state.ID, "body"))

	wrapper := FindCodeBlock(s.Root(), state.ID)
	p := dom.NewElement("p")
	p.AppendChild(dom.NewText(dom.Zwsp))
	dom.InsertAfter(p, wrapper)
	s.SetCaret(dom.PositionCursorAtStart(p))

	require.True(t, s.HandleCodeBlockBoundaryDelete(true))

	assert.Nil(t, dom.NextElement(wrapper))
	region := codeRegion(wrapper)
	assert.True(t, dom.Contains(region, s.Caret().Node))
	assert.Equal(t, "body", s.Registry().Get(state.ID).Content)
}

func TestHandleCodeBlockBoundaryDelete_NonEmptyParagraph(t *testing.T) {
	t.Parallel()

	s := surfaceFor("")
	state := s.InsertCodeBlock("")
	wrapper := FindCodeBlock(s.Root(), state.ID)

	p := dom.NewElement("p")
	p.AppendChild(dom.NewText("keep me"))
	dom.InsertAfter(p, wrapper)
	s.SetCaret(dom.PositionCursorAtStart(p))

	assert.False(t, s.HandleCodeBlockBoundaryDelete(true))
	assert.NotNil(t, dom.NextElement(wrapper))
}

func TestDeleteCodeBlock(t *testing.T) {
	t.Parallel()

	s := surfaceFor("<p>before</p>")
	placeCaret(t, s, "before", 6)
	state := s.InsertCodeBlock("json")

	require.True(t, s.DeleteCodeBlock(state.ID))
	assert.Equal(t, 0, s.Registry().Len())
	assert.Nil(t, FindCodeBlock(s.Root(), state.ID))
	assert.False(t, s.DeleteCodeBlock(state.ID))
}

func TestSetCodeBlockLanguage(t *testing.T) {
	t.Parallel()

	s := surfaceFor("")
	state := s.InsertCodeBlock("")

	require.True(t, s.SetCodeBlockLanguage(state.ID, "yaml"))
	assert.Equal(t, "yaml", s.Registry().Get(state.ID).Language)

	wrapper := FindCodeBlock(s.Root(), state.ID)
	region := codeRegion(wrapper)
	assert.Equal(t, "language-yaml", dom.GetAttr(region, "class"))
}

func TestRegistryIDsAreSequential(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	assert.Equal(t, "code-block-1", r.Register("", "").ID)
	assert.Equal(t, "code-block-2", r.Register("", "").ID)
	r.Delete("code-block-1")
	assert.Equal(t, "code-block-3", r.Register("", "").ID)
	assert.Equal(t, 2, r.Len())
}
