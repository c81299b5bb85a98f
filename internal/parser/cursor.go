package parser

import (
	"github.com/nitrate-lang/nitratec/internal/lexer"
	"github.com/nitrate-lang/nitratec/internal/token"
)

// TokenCursor is an immutable cursor over a lexer.TokenStream: every
// navigation method returns a new cursor rather than mutating state,
// letting the parser backtrack (Mark/ResetTo) without hand-rolled
// save/restore bookkeeping. This mirrors the teacher's TokenCursor design
// (internal/parser/cursor.go), ported onto the Language's token stream.
type TokenCursor struct {
	stream  lexer.TokenStream
	current token.Token
	tokens  []token.Token
	index   int
}

// NewTokenCursor buffers the first token from s and returns a cursor
// positioned at it.
func NewTokenCursor(s lexer.TokenStream) *TokenCursor {
	first := s.Next()
	tokens := make([]token.Token, 1, 32)
	tokens[0] = first
	return &TokenCursor{stream: s, current: first, tokens: tokens}
}

func (c *TokenCursor) Current() token.Token { return c.current }

// Peek returns the token n positions ahead, buffering from the stream as
// needed. Peek(0) equals Current().
func (c *TokenCursor) Peek(n int) token.Token {
	if n < 0 {
		return c.current
	}
	target := c.index + n
	for target >= len(c.tokens) && c.tokens[len(c.tokens)-1].Kind != token.EOF {
		c.tokens = append(c.tokens, c.stream.Next())
	}
	if target < len(c.tokens) {
		return c.tokens[target]
	}
	return c.tokens[len(c.tokens)-1]
}

func (c *TokenCursor) Advance() *TokenCursor { return c.AdvanceN(1) }

func (c *TokenCursor) AdvanceN(n int) *TokenCursor {
	if n <= 0 {
		return c
	}
	c.Peek(n)
	idx := c.index + n
	if idx >= len(c.tokens) {
		idx = len(c.tokens) - 1
	}
	return &TokenCursor{stream: c.stream, current: c.tokens[idx], tokens: c.tokens, index: idx}
}

func (c *TokenCursor) Is(k token.Kind) bool { return c.current.Kind == k }

func (c *TokenCursor) IsAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if c.current.Kind == k {
			return true
		}
	}
	return false
}

func (c *TokenCursor) PeekIs(n int, k token.Kind) bool { return c.Peek(n).Kind == k }

// Skip advances past the current token if it matches k.
func (c *TokenCursor) Skip(k token.Kind) (*TokenCursor, bool) {
	if c.current.Kind == k {
		return c.Advance(), true
	}
	return c, false
}

func (c *TokenCursor) IsEOF() bool { return c.current.Kind == token.EOF }

type Mark struct{ index int }

func (c *TokenCursor) Mark() Mark { return Mark{index: c.index} }

func (c *TokenCursor) ResetTo(m Mark) *TokenCursor {
	if m.index < 0 || m.index >= len(c.tokens) {
		return c
	}
	return &TokenCursor{stream: c.stream, current: c.tokens[m.index], tokens: c.tokens, index: m.index}
}
