package tokenizer

import (
	"strings"

	"github.com/csssyntax/csssyntax/internal/codepoint"
	"github.com/csssyntax/csssyntax/internal/errsink"
	"github.com/csssyntax/csssyntax/pkg/token"
)

// consumeIdentLike consumes an ident-like token (§4.3.4): IDENT, FUNCTION,
// URL, or BAD_URL, distinguished by the name consumed and what (if
// anything) follows it.
func (t *Tokenizer) consumeIdentLike(start token.Position) token.Token {
	name := t.consumeName()

	if strings.EqualFold(name, "url") && t.s.Peek(1) == '(' {
		t.s.Advance()
		for isWhitespace(t.s.Peek(1)) && isWhitespace(t.s.Peek(2)) {
			t.s.Advance()
		}
		if isWhitespace(t.s.Peek(1)) {
			// exactly one trailing whitespace code point before a quote
			// still routes to the function-token path below, matching the
			// spec's "one whitespace, then a quote" case; whitespace then
			// EOF goes on to consumeURL.
			if t.s.Peek(2) == '"' || t.s.Peek(2) == '\'' {
				return token.NewIdentLike(token.FUNCTION, name, start)
			}
		}
		if t.s.Peek(1) == '"' || t.s.Peek(1) == '\'' {
			return token.NewIdentLike(token.FUNCTION, name, start)
		}
		return t.consumeURL(start)
	}

	if t.s.Peek(1) == '(' {
		t.s.Advance()
		return token.NewIdentLike(token.FUNCTION, name, start)
	}

	return token.NewIdentLike(token.IDENT, name, start)
}

// consumeURL consumes a url token's contents (§4.3.6), with "url(" already
// consumed. Any leading whitespace the caller left in place is skipped
// here first.
func (t *Tokenizer) consumeURL(start token.Position) token.Token {
	for isWhitespace(t.s.Peek(1)) {
		t.s.Advance()
	}

	var sb []rune
	for {
		c := t.s.Peek(1)
		switch {
		case c == ')':
			t.s.Advance()
			return token.NewIdentLike(token.URL, string(sb), start)
		case c == codepoint.EOF:
			t.reportAt(start, errsink.ErrUnterminatedString, "unterminated url()")
			return token.NewIdentLike(token.URL, string(sb), start)
		case isWhitespace(c):
			for isWhitespace(t.s.Peek(1)) {
				t.s.Advance()
			}
			if t.s.Peek(1) == ')' {
				t.s.Advance()
				return token.NewIdentLike(token.URL, string(sb), start)
			}
			if t.s.Peek(1) == codepoint.EOF {
				t.reportAt(start, errsink.ErrUnterminatedString, "unterminated url()")
				return token.NewIdentLike(token.URL, string(sb), start)
			}
			t.reportAt(start, errsink.ErrBadURL, "whitespace inside unquoted url()")
			t.consumeBadURLRemnants()
			return token.NewIdentLike(token.BAD_URL, "", start)
		case c == '"' || c == '\'' || c == '(' || isNonPrintable(c):
			t.reportAt(start, errsink.ErrBadURL, "disallowed character in unquoted url()")
			t.consumeBadURLRemnants()
			return token.NewIdentLike(token.BAD_URL, "", start)
		case c == '\\':
			if isNewline(t.s.Peek(2)) {
				t.reportAt(start, errsink.ErrBadEscape, "escaped newline in unquoted url()")
				t.consumeBadURLRemnants()
				return token.NewIdentLike(token.BAD_URL, "", start)
			}
			t.s.Advance()
			sb = append(sb, t.consumeEscapedCodePoint())
		default:
			sb = append(sb, t.s.Advance())
		}
	}
}

// consumeBadURLRemnants discards input up to the next ')' or EOF (§4.3.14),
// so a malformed url() still ends at a predictable point instead of
// swallowing the rest of the stylesheet.
func (t *Tokenizer) consumeBadURLRemnants() {
	for {
		c := t.s.Peek(1)
		if c == ')' {
			t.s.Advance()
			return
		}
		if c == codepoint.EOF {
			return
		}
		if c == '\\' && !isNewline(t.s.Peek(2)) {
			t.s.Advance()
			t.consumeEscapedCodePoint()
			continue
		}
		t.s.Advance()
	}
}

func isNonPrintable(r rune) bool {
	return (r >= 0x00 && r <= 0x08) || r == 0x0B || (r >= 0x0E && r <= 0x1F) || r == 0x7F
}
