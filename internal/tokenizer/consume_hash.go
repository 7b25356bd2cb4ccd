package tokenizer

import "github.com/csssyntax/csssyntax/pkg/token"

// consumeHash consumes a hash token (§4.3.3) with the leading '#' already
// consumed. If what follows would itself start an identifier, the hash is
// flagged "id"; otherwise "unrestricted". A '#' followed by nothing
// name-like is not a hash at all and falls back to a DELIM.
func (t *Tokenizer) consumeHash(start token.Position) token.Token {
	c := t.s.Peek(1)
	if !isNameCodePoint(c) && !(c == '\\' && !isNewline(t.s.Peek(2))) {
		return token.NewDelim('#', start)
	}

	flag := token.HashUnrestricted
	if t.s.StartsWithIdentifier() {
		flag = token.HashID
	}
	name := t.consumeName()
	return token.NewHash(name, flag, start)
}
