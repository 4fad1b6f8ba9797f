// Package editor implements the structural editing operations of a
// markdown editing surface: lists, tables, headings, blockquotes, and
// code blocks. Every operation mutates the DOM in place, keeps the
// cursor consistent, and reports whether it handled the event; false
// means the caller should let the default input behavior happen.
package editor

import (
	"strconv"
	"sync"
)

// CodeBlockState is the live state of one fenced code block instance.
// The DOM wrapper element references it through the data-code-block-id
// attribute.
type CodeBlockState struct {
	ID       string
	Content  string
	Language string
}

// Registry maps code block ids to their state. It is constructed per
// editor instance and passed by reference into every collaborating
// module; there is no process-wide registry. Mutation happens on the
// editor's single event thread, but a mutex keeps concurrent readers
// (sync, highlight) safe.
type Registry struct {
	mu     sync.Mutex
	blocks map[string]*CodeBlockState
	seq    int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{blocks: make(map[string]*CodeBlockState)}
}

// Register creates a new state entry with a generated id.
func (r *Registry) Register(content, language string) *CodeBlockState {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	state := &CodeBlockState{
		ID:       "code-block-" + strconv.Itoa(r.seq),
		Content:  content,
		Language: language,
	}
	r.blocks[state.ID] = state
	return state
}

// Get returns the state for id, or nil.
func (r *Registry) Get(id string) *CodeBlockState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.blocks[id]
}

// SetContent updates the stored content for id.
func (r *Registry) SetContent(id, content string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.blocks[id]
	if !ok {
		return false
	}
	state.Content = content
	return true
}

// SetLanguage updates the stored language for id.
func (r *Registry) SetLanguage(id, language string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.blocks[id]
	if !ok {
		return false
	}
	state.Language = language
	return true
}

// Delete removes the state for id.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.blocks, id)
}

// Len returns the number of live code blocks.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.blocks)
}
