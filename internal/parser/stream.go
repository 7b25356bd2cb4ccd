// Package parser implements the CSS Syntax Module Level 3 parser: a
// random-access token stream plus the recursive-descent entry points from
// §4.4/§5 for stylesheets, at-rules, qualified rules, declarations,
// component values, and simple blocks. The stream design generalizes the
// teacher's internal/parser.Cursor (Peek/Advance/Mark/ResetTo) from
// DWScript tokens to CSS tokens.
package parser

import (
	"github.com/csssyntax/csssyntax/internal/tokenizer"
	"github.com/csssyntax/csssyntax/pkg/token"
)

// TokenStream is a random-access cursor over a Tokenizer's output. Reading
// past the end always yields EOF tokens (§4.4: "consuming the current input
// code point" at EOF is always safe): once EOF has been buffered, further
// reads append copies of that EOF token instead of calling the tokenizer
// again.
type TokenStream struct {
	tz  *tokenizer.Tokenizer
	buf []token.Token
	idx int
}

func NewTokenStream(tz *tokenizer.Tokenizer) *TokenStream {
	return &TokenStream{tz: tz}
}

func (s *TokenStream) ensure(i int) {
	for len(s.buf) <= i {
		if n := len(s.buf); n > 0 && s.buf[n-1].IsEOF() {
			s.buf = append(s.buf, s.buf[n-1])
			continue
		}
		s.buf = append(s.buf, s.tz.Next())
	}
}

// Peek returns the token n positions ahead without consuming (n=1 is the
// next token to be returned by Next).
func (s *TokenStream) Peek(n int) token.Token {
	i := s.idx + n - 1
	s.ensure(i)
	return s.buf[i]
}

// Next consumes and returns the next token.
func (s *TokenStream) Next() token.Token {
	tok := s.Peek(1)
	s.idx++
	return tok
}

// Reconsume steps the cursor back by one.
func (s *TokenStream) Reconsume() {
	if s.idx > 0 {
		s.idx--
	}
}

// Mark/ResetTo save and restore the cursor position for unbounded
// backtracking. No parser production currently calls them; '!important'
// detection works on the already-consumed value slice instead.
type Mark struct{ idx int }

func (s *TokenStream) Mark() Mark       { return Mark{idx: s.idx} }
func (s *TokenStream) ResetTo(m Mark)   { s.idx = m.idx }

// SkipWhitespace consumes a run of WHITESPACE tokens, matching the many
// "while the next token is whitespace, discard it" steps in §4.4.
func (s *TokenStream) SkipWhitespace() {
	for s.Peek(1).Type == token.WHITESPACE {
		s.Next()
	}
}
