package tokenizer

import "github.com/csssyntax/csssyntax/internal/codepoint"

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isNameStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r >= 0x80
}

func isNameCodePoint(r rune) bool {
	return isNameStart(r) || isDigit(r) || r == '-'
}

func isNewline(r rune) bool {
	return r == '\n'
}

func (t *Tokenizer) consumeWhitespaceRun() {
	for isWhitespace(t.s.Peek(1)) {
		t.s.Advance()
	}
}

// consumeName consumes a name (§4.3.12): a maximal run of name code points
// and valid escapes.
func (t *Tokenizer) consumeName() string {
	var sb []rune
	for {
		c := t.s.Peek(1)
		switch {
		case isNameCodePoint(c):
			sb = append(sb, t.s.Advance())
		case c == '\\' && !isNewline(t.s.Peek(2)):
			t.s.Advance()
			sb = append(sb, t.consumeEscapedCodePoint())
		default:
			return string(sb)
		}
	}
}

// consumeEscapedCodePoint consumes an escape sequence's value, with the
// leading backslash already consumed (§4.3.7).
func (t *Tokenizer) consumeEscapedCodePoint() rune {
	c := t.s.Peek(1)
	switch {
	case c == codepoint.EOF:
		return 0xFFFD
	case isHexDigit(c):
		var hex []rune
		for i := 0; i < 6 && isHexDigit(t.s.Peek(1)); i++ {
			hex = append(hex, t.s.Advance())
		}
		if isWhitespace(t.s.Peek(1)) {
			t.s.Advance()
		}
		v := hexToRune(hex)
		if v == 0 || v > 0x10FFFF || (v >= 0xD800 && v <= 0xDFFF) {
			return 0xFFFD
		}
		return v
	default:
		return t.s.Advance()
	}
}

func hexToRune(digits []rune) rune {
	var v rune
	for _, d := range digits {
		v <<= 4
		switch {
		case d >= '0' && d <= '9':
			v |= d - '0'
		case d >= 'a' && d <= 'f':
			v |= d - 'a' + 10
		case d >= 'A' && d <= 'F':
			v |= d - 'A' + 10
		}
	}
	return v
}
