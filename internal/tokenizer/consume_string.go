package tokenizer

import (
	"github.com/csssyntax/csssyntax/internal/codepoint"
	"github.com/csssyntax/csssyntax/internal/errsink"
	"github.com/csssyntax/csssyntax/pkg/token"
)

// consumeString consumes a string token (§4.3.5), with the opening quote
// already consumed as r. An unescaped newline inside the string reports a
// parse error, reconsumes the newline, and yields BAD_STRING rather than
// aborting — the tokenizer never stops at a malformed string.
func (t *Tokenizer) consumeString(quote rune, start token.Position) token.Token {
	var sb []rune
	for {
		c := t.s.Peek(1)
		switch {
		case c == quote:
			t.s.Advance()
			return token.NewIdentLike(token.STRING, string(sb), start)
		case c == codepoint.EOF:
			t.reportAt(start, errsink.ErrUnterminatedString, "unterminated string runs to end of input")
			return token.NewIdentLike(token.STRING, string(sb), start)
		case isNewline(c):
			t.reportAt(start, errsink.ErrUnterminatedString, "newline inside string")
			return token.NewIdentLike(token.BAD_STRING, string(sb), start)
		case c == '\\':
			t.s.Advance()
			if isNewline(t.s.Peek(1)) {
				t.s.Advance()
				continue
			}
			if t.s.Peek(1) == codepoint.EOF {
				continue
			}
			sb = append(sb, t.consumeEscapedCodePoint())
		default:
			sb = append(sb, t.s.Advance())
		}
	}
}
