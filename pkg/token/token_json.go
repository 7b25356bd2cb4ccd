package token

import "encoding/json"

// jsonTokenName returns the lowercase, kebab-case token name used by the
// JSON projection (e.g. "at-keyword", "left-curly"), distinct from Type's
// own upper-snake Go-identifier-shaped String() used in CLI/debug output.
func jsonTokenName(t Type) string {
	switch t {
	case WHITESPACE:
		return "whitespace"
	case STRING:
		return "string"
	case BAD_STRING:
		return "bad-string"
	case HASH:
		return "hash"
	case SUFFIX_MATCH:
		return "suffix-match"
	case SUBSTR_MATCH:
		return "substr-match"
	case PREFIX_MATCH:
		return "prefix-match"
	case DASH_MATCH:
		return "dash-match"
	case INCLUDE_MATCH:
		return "include-match"
	case COLUMN:
		return "column"
	case LEFT_PAREN:
		return "left-paren"
	case RIGHT_PAREN:
		return "right-paren"
	case LEFT_SQUARE:
		return "left-square"
	case RIGHT_SQUARE:
		return "right-square"
	case LEFT_CURLY:
		return "left-curly"
	case RIGHT_CURLY:
		return "right-curly"
	case COMMA:
		return "comma"
	case COLON:
		return "colon"
	case SEMICOLON:
		return "semicolon"
	case CDO:
		return "cdo"
	case CDC:
		return "cdc"
	case AT_KEYWORD:
		return "at-keyword"
	case IDENT:
		return "ident"
	case FUNCTION:
		return "function"
	case URL:
		return "url"
	case BAD_URL:
		return "bad-url"
	case NUMBER:
		return "number"
	case PERCENTAGE:
		return "percentage"
	case DIMENSION:
		return "dimension"
	case DELIM:
		return "delim"
	case COMMENT:
		return "comment"
	case EOF:
		return "eof"
	default:
		return "illegal"
	}
}

// MarshalJSON projects a Token to `{token: <tokenType>, …payload}` per §3's
// token payload table, used by round-trip JSON tests and the parse --json
// CLI output. Only the fields meaningful for this Token's Type are emitted.
func (t Token) MarshalJSON() ([]byte, error) {
	m := map[string]any{"token": jsonTokenName(t.Type)}

	switch t.Type {
	case STRING, BAD_STRING, URL, BAD_URL, AT_KEYWORD, IDENT, HASH:
		m["value"] = t.Value
	}
	switch t.Type {
	case HASH:
		m["flag"] = t.HashFlag.String()
	case FUNCTION:
		m["value"] = t.Value
		m["mirror"] = ")"
	case DELIM:
		m["value"] = t.Value
	case NUMBER, PERCENTAGE:
		m["repr"] = t.Repr
		m["value"] = t.Num
		m["type"] = t.NumFlag.String()
	case DIMENSION:
		m["repr"] = t.Repr
		m["value"] = t.Num
		m["type"] = t.NumFlag.String()
		m["unit"] = t.Unit
	case LEFT_PAREN:
		m["mirror"] = ")"
	case LEFT_SQUARE:
		m["mirror"] = "]"
	case LEFT_CURLY:
		m["mirror"] = "}"
	}

	return json.Marshal(m)
}
