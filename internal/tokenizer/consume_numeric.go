package tokenizer

import (
	"strconv"

	"github.com/csssyntax/csssyntax/pkg/token"
)

// consumeNumeric consumes a numeric token (§4.3.3): a number followed by
// either a unit (Dimension), a '%' (Percentage), or nothing (Number).
func (t *Tokenizer) consumeNumeric(start token.Position) token.Token {
	repr, value, flag := t.consumeNumber()

	if t.s.StartsWithIdentifier() {
		unit := t.consumeName()
		return token.NewDimension(repr, value, flag, unit, start)
	}
	if t.s.Peek(1) == '%' {
		t.s.Advance()
		return token.NewNumeric(token.PERCENTAGE, repr, value, flag, start)
	}
	return token.NewNumeric(token.NUMBER, repr, value, flag, start)
}

// consumeNumber consumes a number (§4.3.13) and returns its source
// representation, its numeric value, and whether a fractional part or
// exponent was present.
func (t *Tokenizer) consumeNumber() (repr string, value float64, flag token.NumericFlag) {
	var sb []rune
	flag = token.NumberInteger

	if t.s.Peek(1) == '+' || t.s.Peek(1) == '-' {
		sb = append(sb, t.s.Advance())
	}
	for isDigit(t.s.Peek(1)) {
		sb = append(sb, t.s.Advance())
	}
	if t.s.Peek(1) == '.' && isDigit(t.s.Peek(2)) {
		sb = append(sb, t.s.Advance(), t.s.Advance())
		flag = token.NumberNonInteger
		for isDigit(t.s.Peek(1)) {
			sb = append(sb, t.s.Advance())
		}
	}
	if t.s.Peek(1) == 'e' || t.s.Peek(1) == 'E' {
		n := 1
		if t.s.Peek(2) == '+' || t.s.Peek(2) == '-' {
			n = 2
		}
		if isDigit(t.s.Peek(n + 1)) {
			for i := 0; i < n; i++ {
				sb = append(sb, t.s.Advance())
			}
			flag = token.NumberNonInteger
			for isDigit(t.s.Peek(1)) {
				sb = append(sb, t.s.Advance())
			}
		}
	}

	repr = string(sb)
	value, _ = strconv.ParseFloat(repr, 64)
	return repr, value, flag
}
