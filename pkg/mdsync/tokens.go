package mdsync

import (
	"strconv"
	"sync"
)

// AttrTokenID marks an inline wrapper produced for a registered custom
// token; the value keys the token registry.
const AttrTokenID = "data-token-id"

// Token is one registered custom inline token. Literal is the exact
// markdown source text the token stands for; Display is the text shown
// inside the rendered wrapper (the literal when empty).
type Token struct {
	ID      string
	Literal string
	Display string
}

// TokenRegistry maps token ids to their state, mirroring the code
// block registry: constructed per editor instance and shared between
// the renderer and the extractor.
type TokenRegistry struct {
	mu     sync.Mutex
	tokens map[string]*Token
	order  []string
	seq    int
}

// NewTokenRegistry creates an empty token registry.
func NewTokenRegistry() *TokenRegistry {
	return &TokenRegistry{tokens: make(map[string]*Token)}
}

// Register creates a token entry for a literal with a generated id.
func (r *TokenRegistry) Register(literal, display string) *Token {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	tok := &Token{
		ID:      "token-" + strconv.Itoa(r.seq),
		Literal: literal,
		Display: display,
	}
	r.tokens[tok.ID] = tok
	r.order = append(r.order, tok.ID)
	return tok
}

// Get returns the token for id, or nil.
func (r *TokenRegistry) Get(id string) *Token {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tokens[id]
}

// Delete removes the token for id.
func (r *TokenRegistry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, id)
	for i, known := range r.order {
		if known == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// All returns the live tokens in registration order.
func (r *TokenRegistry) All() []*Token {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Token, 0, len(r.order))
	for _, id := range r.order {
		if tok, ok := r.tokens[id]; ok {
			out = append(out, tok)
		}
	}
	return out
}
