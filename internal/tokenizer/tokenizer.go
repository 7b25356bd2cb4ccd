// Package tokenizer implements the CSS Syntax Module Level 3 tokenizer: the
// state machine that turns a preprocessed code point stream into the closed
// set of token kinds in pkg/token. It plays the role the teacher's
// internal/lexer.Lexer plays (readChar/peekChar/peekCharN, tokenHandlers
// dispatch map, handleDot/handleColon/... for multi-char disambiguation),
// generalized from DWScript's grammar to CSS's.
package tokenizer

import (
	"golang.org/x/text/encoding/unicode"

	"github.com/csssyntax/csssyntax/internal/codepoint"
	"github.com/csssyntax/csssyntax/internal/errsink"
	"github.com/csssyntax/csssyntax/pkg/token"
)

// Option configures a Tokenizer at construction time, mirroring the
// teacher's functional-options LexerOption pattern.
type Option func(*Tokenizer)

// WithSink sets the sink that recoverable parse errors are reported to.
// The default is errsink.DiscardSink{}.
func WithSink(sink errsink.Sink) Option {
	return func(t *Tokenizer) { t.sink = sink }
}

// WithComments makes the tokenizer emit COMMENT tokens instead of
// discarding comments silently. Off by default, matching §4.2's note that
// comments "are not visible to the tokenizer proper" unless a caller
// specifically wants to preserve them (e.g. to round-trip exact
// formatting).
func WithComments(enabled bool) Option {
	return func(t *Tokenizer) { t.keepComments = enabled }
}

// Tokenizer turns preprocessed CSS source text into a sequence of tokens,
// one at a time. It holds no buffered lookahead of its own: all lookahead
// is delegated to the bounded codepoint.Stream it wraps.
type Tokenizer struct {
	s            *codepoint.Stream
	sink         errsink.Sink
	keepComments bool
}

// New preprocesses source and builds a Tokenizer over it.
func New(source string, opts ...Option) *Tokenizer {
	t := &Tokenizer{
		s:    codepoint.New(codepoint.Preprocess(source)),
		sink: errsink.DiscardSink{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewFromUTF16 decodes raw UTF-16 bytes (per spec §3's "a UTF-16 string that
// is decoded into scalar values") via codepoint.DecodeUTF16 and builds a
// Tokenizer over the result, same as New does for a UTF-8 string. bom
// controls how a leading byte order mark is handled; pass
// unicode.ExpectBOM when the caller can't otherwise tell endianness.
func NewFromUTF16(b []byte, bom unicode.BOMPolicy, opts ...Option) (*Tokenizer, error) {
	s, err := codepoint.DecodeUTF16(b, bom)
	if err != nil {
		return nil, err
	}
	return New(s, opts...), nil
}

func (t *Tokenizer) reportAt(pos token.Position, code, message string) {
	t.sink.Report(&errsink.ParseError{Code: code, Message: message, Pos: pos})
}

func (t *Tokenizer) atCommentStart() bool {
	return t.s.Peek(1) == '/' && t.s.Peek(2) == '*'
}

// Next consumes and returns the next token (§4.3.1). It always makes
// progress: every branch either consumes at least one code point or
// returns EOF, so a caller looping on Next until IsEOF() is guaranteed to
// terminate.
func (t *Tokenizer) Next() token.Token {
	if t.keepComments && t.atCommentStart() {
		return t.consumeOneComment()
	}
	for !t.keepComments && t.atCommentStart() {
		t.consumeOneComment()
	}

	start := t.s.NextPos()
	r := t.s.Advance()

	switch {
	case isWhitespace(r):
		t.consumeWhitespaceRun()
		return token.New(token.WHITESPACE, start)

	case r == '"', r == '\'':
		return t.consumeString(r, start)

	case r == '#':
		return t.consumeHash(start)

	case r == '(':
		return token.New(token.LEFT_PAREN, start)
	case r == ')':
		return token.New(token.RIGHT_PAREN, start)
	case r == '[':
		return token.New(token.LEFT_SQUARE, start)
	case r == ']':
		return token.New(token.RIGHT_SQUARE, start)
	case r == '{':
		return token.New(token.LEFT_CURLY, start)
	case r == '}':
		return token.New(token.RIGHT_CURLY, start)
	case r == ',':
		return token.New(token.COMMA, start)
	case r == ':':
		return token.New(token.COLON, start)
	case r == ';':
		return token.New(token.SEMICOLON, start)

	case r == '$':
		return t.consumeMatchOrDelim(r, token.SUFFIX_MATCH, start)
	case r == '*':
		return t.consumeMatchOrDelim(r, token.SUBSTR_MATCH, start)
	case r == '^':
		return t.consumeMatchOrDelim(r, token.PREFIX_MATCH, start)
	case r == '~':
		return t.consumeMatchOrDelim(r, token.INCLUDE_MATCH, start)

	case r == '|':
		if t.s.Peek(1) == '=' {
			t.s.Advance()
			return token.New(token.DASH_MATCH, start)
		}
		if t.s.Peek(1) == '|' {
			t.s.Advance()
			return token.New(token.COLUMN, start)
		}
		return token.NewDelim(r, start)

	case r == '+':
		t.s.Reconsume()
		if t.s.StartsWithNumber() {
			return t.consumeNumeric(start)
		}
		t.s.Advance()
		return token.NewDelim(r, start)

	case r == '-':
		t.s.Reconsume()
		if t.s.StartsWithNumber() {
			return t.consumeNumeric(start)
		}
		if t.s.Peek(2) == '-' && t.s.Peek(3) == '>' {
			t.s.Advance()
			t.s.Advance()
			t.s.Advance()
			return token.New(token.CDC, start)
		}
		if t.s.StartsWithIdentifier() {
			return t.consumeIdentLike(start)
		}
		t.s.Advance()
		return token.NewDelim('-', start)

	case r == '.':
		t.s.Reconsume()
		if t.s.StartsWithNumber() {
			return t.consumeNumeric(start)
		}
		t.s.Advance()
		return token.NewDelim('.', start)

	case r == '<':
		if t.s.Peek(1) == '!' && t.s.Peek(2) == '-' {
			mark := t.s.Mark()
			t.s.Advance()
			t.s.Advance()
			if t.s.Peek(1) == '-' {
				t.s.Advance()
				return token.New(token.CDO, start)
			}
			t.s.ResetTo(mark)
		}
		return token.NewDelim(r, start)

	case r == '@':
		if t.s.StartsWithIdentifier() {
			name := t.consumeName()
			return token.NewIdentLike(token.AT_KEYWORD, name, start)
		}
		return token.NewDelim(r, start)

	case r == '\\':
		if isNewline(t.s.Peek(1)) {
			t.reportAt(start, errsink.ErrBadEscape, "stray backslash before newline")
			return token.NewDelim(r, start)
		}
		t.s.Reconsume()
		return t.consumeIdentLike(start)

	case isDigit(r):
		t.s.Reconsume()
		return t.consumeNumeric(start)

	case isNameStart(r):
		t.s.Reconsume()
		return t.consumeIdentLike(start)

	case r == codepoint.EOF:
		return token.New(token.EOF, start)

	default:
		return token.NewDelim(r, start)
	}
}

func (t *Tokenizer) consumeMatchOrDelim(r rune, matchType token.Type, start token.Position) token.Token {
	if t.s.Peek(1) == '=' {
		t.s.Advance()
		return token.New(matchType, start)
	}
	return token.NewDelim(r, start)
}

// consumeOneComment consumes a single "/* ... */" run, reporting a parse
// error if it runs to EOF unterminated (§4.3.2). With comment preservation
// off, the caller discards the returned token's text; with it on, Next
// returns the token directly.
func (t *Tokenizer) consumeOneComment() token.Token {
	start := t.s.NextPos()
	t.s.Advance()
	t.s.Advance()

	var text []rune
	closed := false
	for {
		c := t.s.Peek(1)
		if c == codepoint.EOF {
			break
		}
		if c == '*' && t.s.Peek(2) == '/' {
			t.s.Advance()
			t.s.Advance()
			closed = true
			break
		}
		text = append(text, t.s.Advance())
	}
	if !closed {
		t.reportAt(start, errsink.ErrUnterminatedComment, "unterminated comment runs to end of input")
	}
	return token.Token{Type: token.COMMENT, Value: "/*" + string(text) + "*/", Pos: start}
}
