package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/editkit/pkg/dom"
)

func surfaceFor(markup string) *Surface {
	return NewSurface(dom.ParseContainer(markup), nil, nil)
}

func placeCaret(t *testing.T, s *Surface, substr string, offset int) {
	t.Helper()
	for _, tn := range dom.TextNodes(s.Root()) {
		if strings.Contains(tn.Data, substr) {
			s.SetCaret(dom.Caret{Node: tn, Offset: offset})
			return
		}
	}
	t.Fatalf("text %q not found in %s", substr, dom.RenderChildren(s.Root()))
}

func TestIndentListItem_NestsUnderPreviousSibling(t *testing.T) {
	t.Parallel()

	s := surfaceFor("<ul><li>one</li><li>two</li><li>three</li></ul>")
	placeCaret(t, s, "two", 1)

	require.True(t, s.IndentListItem())

	assert.Equal(t,
		"<ul><li>one<ul><li>two</li></ul></li><li>three</li></ul>",
		dom.RenderChildren(s.Root()))
	assert.Equal(t, 1, dom.GetCursorOffset(
		dom.ClosestListItem(s.Caret().Node, s.Root()), s.Caret(), listSkipOpts()))
}

func TestOutdentListItem_RestoresFlatList(t *testing.T) {
	t.Parallel()

	s := surfaceFor("<ul><li>one</li><li>two</li><li>three</li></ul>")
	placeCaret(t, s, "two", 1)

	require.True(t, s.IndentListItem())
	require.True(t, s.OutdentListItem())

	assert.Equal(t,
		"<ul><li>one</li><li>two</li><li>three</li></ul>",
		dom.RenderChildren(s.Root()))
}

func TestOutdentListItem_DemotesFollowingSiblings(t *testing.T) {
	t.Parallel()

	s := surfaceFor("<ul><li>a<ul><li>b</li><li>c</li><li>d</li></ul></li></ul>")
	placeCaret(t, s, "b", 0)

	require.True(t, s.OutdentListItem())

	assert.Equal(t,
		"<ul><li>a</li><li>b<ul><li>c</li><li>d</li></ul></li></ul>",
		dom.RenderChildren(s.Root()))
}

func TestIndentListItem_NoPreviousSibling(t *testing.T) {
	t.Parallel()

	s := surfaceFor("<ul><li>only</li></ul>")
	placeCaret(t, s, "only", 0)

	assert.False(t, s.IndentListItem())
}

func TestOutdentListItem_TopLevelPositions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		item string
		want string
	}{
		{
			name: "first item becomes paragraph before list",
			item: "one",
			want: "<p>one</p><ul><li>two</li><li>three</li></ul>",
		},
		{
			name: "last item becomes paragraph after list",
			item: "three",
			want: "<ul><li>one</li><li>two</li></ul><p>three</p>",
		},
		{
			name: "middle item splits the list",
			item: "two",
			want: "<ul><li>one</li></ul><p>two</p><ul><li>three</li></ul>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := surfaceFor("<ul><li>one</li><li>two</li><li>three</li></ul>")
			placeCaret(t, s, tt.item, 0)

			require.True(t, s.OutdentListItem())
			assert.Equal(t, tt.want, dom.RenderChildren(s.Root()))
		})
	}
}

func TestHandleListEnter_SplitsMidContent(t *testing.T) {
	t.Parallel()

	s := surfaceFor("<ul><li>hello</li></ul>")
	placeCaret(t, s, "hello", 2)

	require.True(t, s.HandleListEnter())

	assert.Equal(t, "<ul><li>he</li><li>llo</li></ul>", dom.RenderChildren(s.Root()))
	li := dom.ClosestListItem(s.Caret().Node, s.Root())
	assert.Equal(t, "llo", itemText(li))
}

func TestHandleListEnter_AtEndAppendsEmptyItem(t *testing.T) {
	t.Parallel()

	s := surfaceFor("<ul><li>hello</li></ul>")
	placeCaret(t, s, "hello", 5)

	require.True(t, s.HandleListEnter())

	list := dom.ClosestList(s.Caret().Node, s.Root())
	require.NotNil(t, list)
	items := dom.Children(list)
	require.Len(t, items, 2)
	assert.Equal(t, "", itemText(items[1]))
}

func TestHandleListEnter_EmptyTopLevelItemBecomesParagraph(t *testing.T) {
	t.Parallel()

	s := surfaceFor("<ul><li>one</li><li></li></ul>")
	li := dom.Children(dom.Children(s.Root())[0])[1]
	s.SetCaret(dom.Caret{Node: li, Offset: 0})

	require.True(t, s.HandleListEnter())

	got := dom.RenderChildren(s.Root())
	assert.Contains(t, got, "<ul><li>one</li></ul>")
	assert.Contains(t, got, "<p>")
}

func TestHandleListEnter_EmptyNestedItemOutdents(t *testing.T) {
	t.Parallel()

	s := surfaceFor("<ul><li>a<ul><li></li></ul></li></ul>")
	outer := dom.Children(s.Root())[0]
	inner := dom.Children(dom.Children(outer)[0])[1]
	li := dom.Children(inner)[0]
	s.SetCaret(dom.Caret{Node: li, Offset: 0})

	require.True(t, s.HandleListEnter())

	assert.Equal(t, "<ul><li>a</li><li></li></ul>", dom.RenderChildren(s.Root()))
}

func TestToggleList_ConvertsParagraph(t *testing.T) {
	t.Parallel()

	s := surfaceFor("<p>hi</p>")
	placeCaret(t, s, "hi", 1)

	require.True(t, s.ToggleList("ul"))
	assert.Equal(t, "<ul><li>hi</li></ul>", dom.RenderChildren(s.Root()))
}

func TestToggleList_SwitchesListTag(t *testing.T) {
	t.Parallel()

	s := surfaceFor("<ul><li>a</li><li>b</li></ul>")
	placeCaret(t, s, "b", 0)

	require.True(t, s.ToggleList("ol"))
	assert.Equal(t, "<ol><li>a</li><li>b</li></ol>", dom.RenderChildren(s.Root()))
}

func TestToggleList_SameTagConvertsBack(t *testing.T) {
	t.Parallel()

	s := surfaceFor("<ul><li>a</li></ul>")
	placeCaret(t, s, "a", 0)

	require.True(t, s.ToggleList("ul"))
	assert.Equal(t, "<p>a</p>", dom.RenderChildren(s.Root()))
}

func TestDetectListPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text    string
		ok      bool
		ordered bool
		rest    string
	}{
		{"- hello", true, false, "hello"},
		{"* x", true, false, "x"},
		{"+ y", true, false, "y"},
		{"1. first", true, true, "first"},
		{"12. later", true, true, "later"},
		{"-no space", false, false, ""},
		{"plain", false, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			p, ok := DetectListPattern(tt.text)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.ordered, p.Ordered)
				assert.Equal(t, tt.rest, p.Rest)
			}
		})
	}
}

func TestAutoConvertListPattern(t *testing.T) {
	t.Parallel()

	s := surfaceFor("<p>- hello</p>")
	placeCaret(t, s, "- hello", 7)

	require.True(t, s.AutoConvertListPattern())
	assert.Equal(t, "<ul><li>hello</li></ul>", dom.RenderChildren(s.Root()))

	li := dom.ClosestListItem(s.Caret().Node, s.Root())
	require.NotNil(t, li)
	assert.Equal(t, len("hello"), dom.GetCursorOffset(li, s.Caret(), listSkipOpts()))
}

func TestAutoConvertListPattern_Ordered(t *testing.T) {
	t.Parallel()

	s := surfaceFor("<p>1. step</p>")
	placeCaret(t, s, "1. step", 7)

	require.True(t, s.AutoConvertListPattern())
	assert.Equal(t, "<ol><li>step</li></ol>", dom.RenderChildren(s.Root()))
}

func TestAutoConvertListPattern_NoMarker(t *testing.T) {
	t.Parallel()

	s := surfaceFor("<p>hello</p>")
	placeCaret(t, s, "hello", 5)

	assert.False(t, s.AutoConvertListPattern())
}
