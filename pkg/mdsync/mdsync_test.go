package mdsync

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/yaklabco/editkit/pkg/dom"
	"github.com/yaklabco/editkit/pkg/editor"
)

func TestRender_WrapsCodeFences(t *testing.T) {
	t.Parallel()

	registry := editor.NewRegistry()
	r := NewRenderer(registry, nil)

	container, err := r.Render("```go\nfmt.Println(1)\n```")
	require.NoError(t, err)

	require.Equal(t, 1, registry.Len())
	state := registry.Get("code-block-1")
	require.NotNil(t, state)
	assert.Equal(t, "fmt.Println(1)", state.Content)
	assert.Equal(t, "go", state.Language)

	wrapper := editor.FindCodeBlock(container, state.ID)
	require.NotNil(t, wrapper)
	assert.Equal(t, state.ID, dom.GetAttr(wrapper, dom.AttrCodeBlockID))
}

func TestRender_DetectsMissingFenceLanguage(t *testing.T) {
	t.Parallel()

	registry := editor.NewRegistry()
	r := NewRenderer(registry, nil)

	_, err := r.Render("```\n{\"key\": \"value\"}\n```")
	require.NoError(t, err)

	state := registry.Get("code-block-1")
	require.NotNil(t, state)
	assert.Equal(t, "json", state.Language)
}

func TestRender_WrapsRegisteredTokens(t *testing.T) {
	t.Parallel()

	tokens := NewTokenRegistry()
	tok := tokens.Register("{{name}}", "name")
	r := NewRenderer(nil, tokens)

	container, err := r.Render("Hello {{name}} world")
	require.NoError(t, err)

	markup := dom.RenderChildren(container)
	assert.Contains(t, markup, `data-token-id="`+tok.ID+`"`)
	assert.Contains(t, markup, ">name</span>")
	assert.NotContains(t, markup, "{{name}}")
}

func TestExtract_RoundTripsDocument(t *testing.T) {
	t.Parallel()

	doc := strings.Join([]string{
		"# Title",
		"Para with **bold** and *em* and `code`.",
		"```go\nfmt.Println(1)\n```",
		"- one\n- two\n  - nested",
		"1. first\n2. second",
		"> quoted line",
		"| a | b |\n| --- | --- |\n| c | d |",
		"---",
	}, "\n\n")

	registry := editor.NewRegistry()
	tokens := NewTokenRegistry()
	r := NewRenderer(registry, tokens)
	x := NewExtractor(registry, tokens)

	container, err := r.Render(doc)
	require.NoError(t, err)

	assert.Equal(t, doc, x.Extract(container))
}

func TestExtract_TokenWrapperEmitsLiteral(t *testing.T) {
	t.Parallel()

	tokens := NewTokenRegistry()
	tokens.Register("{{user.email}}", "email")
	r := NewRenderer(nil, tokens)
	x := NewExtractor(r.Registry(), tokens)

	container, err := r.Render("Send to {{user.email}} today")
	require.NoError(t, err)

	assert.Equal(t, "Send to {{user.email}} today", x.Extract(container))
}

func TestExtract_CustomElementProcessor(t *testing.T) {
	t.Parallel()

	x := NewExtractor(nil, nil)
	x.Custom = func(n *html.Node) (string, bool) {
		if dom.GetAttr(n, "class") == "callout" {
			return ":::callout\n" + strings.TrimSpace(dom.TextContent(n)) + "\n:::", true
		}
		return "", false
	}

	container := dom.ParseContainer(`<p>plain</p><div class="callout">watch out</div>`)
	got := x.Extract(container)

	assert.Equal(t, "plain\n\n:::callout\nwatch out\n:::", got)
}

func TestExtract_LinksAndImages(t *testing.T) {
	t.Parallel()

	registry := editor.NewRegistry()
	r := NewRenderer(registry, nil)
	x := NewExtractor(registry, nil)

	doc := "See [docs](https://example.com) and ![logo](img.png)"
	container, err := r.Render(doc)
	require.NoError(t, err)

	assert.Equal(t, doc, x.Extract(container))
}

func TestEngine_SetMarkdownRendersRoot(t *testing.T) {
	t.Parallel()

	e := NewEngine(Options{})
	defer e.Close()

	require.NoError(t, e.SetMarkdown("# Hi"))
	assert.Contains(t, dom.RenderChildren(e.Root()), "<h1>Hi</h1>")
	assert.Equal(t, StateIdle, e.State())
	assert.Equal(t, "# Hi", e.Markdown())
}

func TestEngine_InputEmitsExtractedMarkdown(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var emitted []string
	e := NewEngine(Options{OnMarkdown: func(md string) {
		mu.Lock()
		emitted = append(emitted, md)
		mu.Unlock()
	}})
	defer e.Close()

	require.NoError(t, e.SetMarkdown("# Hi"))

	p := dom.NewElement("p")
	p.AppendChild(dom.NewText("added"))
	e.Root().AppendChild(p)
	e.NotifyInput()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, emitted, 1)
	assert.Equal(t, "# Hi\n\nadded", emitted[0])
}

func TestEngine_SuppressesEchoedValue(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var emitted []string
	e := NewEngine(Options{OnMarkdown: func(md string) {
		mu.Lock()
		emitted = append(emitted, md)
		mu.Unlock()
	}})
	defer e.Close()

	require.NoError(t, e.SetMarkdown("# Hi"))

	p := dom.NewElement("p")
	p.AppendChild(dom.NewText("edited"))
	e.Root().AppendChild(p)
	e.NotifyInput()

	mu.Lock()
	echo := emitted[0]
	mu.Unlock()

	// Host echoes the emitted value back; the edited DOM survives.
	require.NoError(t, e.SetMarkdown(echo))
	assert.Same(t, e.Root(), p.Parent)

	// A genuinely new value does re-render.
	require.NoError(t, e.SetMarkdown("fresh"))
	assert.Nil(t, p.Parent)
	assert.Contains(t, dom.RenderChildren(e.Root()), "fresh")
}

func TestEngine_DebouncedSyncCoalesces(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var calls int
	e := NewEngine(Options{
		SyncDelay: 15 * time.Millisecond,
		OnMarkdown: func(string) {
			mu.Lock()
			calls++
			mu.Unlock()
		},
	})
	defer e.Close()

	require.NoError(t, e.SetMarkdown("hello"))
	e.NotifyInput()
	e.NotifyInput()
	e.NotifyInput()
	assert.Equal(t, StatePendingSync, e.State())

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 1
	}, time.Second, 5*time.Millisecond)
}

func TestEngine_CloseCancelsPendingSync(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var calls int
	e := NewEngine(Options{
		SyncDelay: 10 * time.Millisecond,
		OnMarkdown: func(string) {
			mu.Lock()
			calls++
			mu.Unlock()
		},
	})

	require.NoError(t, e.SetMarkdown("doc"))
	e.NotifyInput()
	e.Close()

	time.Sleep(30 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 0, calls)
}

func TestEngine_CodeFenceSurvivesRoundTrip(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var emitted string
	e := NewEngine(Options{OnMarkdown: func(md string) {
		mu.Lock()
		emitted = md
		mu.Unlock()
	}})
	defer e.Close()

	doc := "before\n\n```yaml\nkey: value\n```\n\nafter"
	require.NoError(t, e.SetMarkdown(doc))
	e.NotifyInput()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, doc, emitted)
}

func TestTokenRegistry(t *testing.T) {
	t.Parallel()

	r := NewTokenRegistry()
	a := r.Register("{{a}}", "")
	b := r.Register("{{b}}", "B")

	assert.Equal(t, "token-1", a.ID)
	assert.Equal(t, "token-2", b.ID)
	require.Len(t, r.All(), 2)

	r.Delete(a.ID)
	all := r.All()
	require.Len(t, all, 1)
	assert.Equal(t, b.ID, all[0].ID)
	assert.Nil(t, r.Get(a.ID))
}
