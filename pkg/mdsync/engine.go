package mdsync

import (
	"sync"
	"time"

	"golang.org/x/net/html"

	"github.com/yaklabco/editkit/pkg/debounce"
	"github.com/yaklabco/editkit/pkg/dom"
	"github.com/yaklabco/editkit/pkg/editor"
)

// State is the engine's position in the sync cycle.
type State int

const (
	StateIdle State = iota
	StateRendering
	StatePendingSync
	StateExtracting
)

// Options configures an Engine.
type Options struct {
	// SyncDelay is the quiet period between the last input event and
	// DOM-to-markdown extraction. Zero extracts synchronously.
	SyncDelay time.Duration

	// OnMarkdown receives the markdown produced by each extraction.
	OnMarkdown func(markdown string)
}

// Engine owns one document's markdown⇄DOM round trip. External
// markdown renders into the live root; edits to the root extract back
// to markdown after a debounce window. An internal-update flag
// suppresses the feedback loop where the host echoes the just-emitted
// markdown straight back in.
type Engine struct {
	mu        sync.Mutex
	state     State
	root      *html.Node
	renderer  *Renderer
	extractor *Extractor

	markdown         string
	isInternalUpdate bool
	guardTimer       *time.Timer

	syncDebouncer *debounce.Debouncer
	onMarkdown    func(string)
	closed        bool
}

// NewEngine creates an engine with an empty document root and fresh
// registries.
func NewEngine(opts Options) *Engine {
	registry := editor.NewRegistry()
	tokens := NewTokenRegistry()

	e := &Engine{
		root:       dom.ParseContainer(""),
		renderer:   NewRenderer(registry, tokens),
		extractor:  NewExtractor(registry, tokens),
		onMarkdown: opts.OnMarkdown,
	}
	e.syncDebouncer = debounce.New(opts.SyncDelay, e.syncFromHTML)
	return e
}

// Root returns the live document root the structural editors mutate.
func (e *Engine) Root() *html.Node { return e.root }

// Registry returns the shared code block registry.
func (e *Engine) Registry() *editor.Registry { return e.renderer.Registry() }

// Tokens returns the shared token registry.
func (e *Engine) Tokens() *TokenRegistry { return e.renderer.Tokens() }

// Extractor returns the extractor, exposed so hosts can set a custom
// element processor.
func (e *Engine) Extractor() *Extractor { return e.extractor }

// State returns the current sync state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Markdown returns the last markdown value the engine saw, from either
// direction.
func (e *Engine) Markdown() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.markdown
}

// SetMarkdown renders external markdown into the live root, replacing
// its contents. A call that merely echoes the value just produced by
// extraction is suppressed so the edited DOM is not clobbered.
func (e *Engine) SetMarkdown(markdown string) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	if e.isInternalUpdate {
		e.isInternalUpdate = false
		if markdown == e.markdown {
			e.mu.Unlock()
			return nil
		}
	} else if markdown == e.markdown && e.root.FirstChild != nil {
		e.mu.Unlock()
		return nil
	}
	e.state = StateRendering
	e.mu.Unlock()

	container, err := e.renderer.Render(markdown)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StateIdle
	if err != nil {
		return err
	}

	e.dropStaleBlocks()
	for e.root.FirstChild != nil {
		e.root.RemoveChild(e.root.FirstChild)
	}
	dom.MoveChildren(container, e.root)
	e.markdown = markdown
	return nil
}

// NotifyInput records a user edit to the live DOM and schedules the
// debounced extraction.
func (e *Engine) NotifyInput() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.state = StatePendingSync
	e.mu.Unlock()

	e.syncDebouncer.Schedule()
}

// Flush runs a pending extraction immediately.
func (e *Engine) Flush() {
	e.syncDebouncer.Flush()
}

// Close cancels the pending extraction and the guard timer. The
// engine rejects further calls afterwards.
func (e *Engine) Close() {
	e.syncDebouncer.Close()

	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	if e.guardTimer != nil {
		e.guardTimer.Stop()
		e.guardTimer = nil
	}
}

// syncFromHTML extracts the live DOM back to markdown and emits it.
// The internal-update flag stays set until the host's next SetMarkdown
// call, with a next-tick reset as a safety net in case the host never
// round-trips the value.
func (e *Engine) syncFromHTML() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.state = StateExtracting

	markdown := e.extractor.Extract(e.root)
	e.markdown = markdown
	e.isInternalUpdate = true
	if e.guardTimer != nil {
		e.guardTimer.Stop()
	}
	e.guardTimer = time.AfterFunc(0, func() {
		e.mu.Lock()
		e.isInternalUpdate = false
		e.mu.Unlock()
	})

	e.state = StateIdle
	emit := e.onMarkdown
	e.mu.Unlock()

	if emit != nil {
		emit(markdown)
	}
}

// dropStaleBlocks removes registry entries for wrappers that are about
// to leave the DOM on a full re-render.
func (e *Engine) dropStaleBlocks() {
	registry := e.renderer.Registry()
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if id := dom.GetAttr(n, dom.AttrCodeBlockID); id != "" {
				registry.Delete(id)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.root)
}
