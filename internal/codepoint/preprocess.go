// Package codepoint implements the input preprocessing and bounded-lookahead
// code point stream that the tokenizer (internal/tokenizer) is built on. The
// stream works over a pre-decoded []rune vector, exactly as the teacher's
// Lexer works over a []byte/[]rune source with readChar/peekChar/peekCharN —
// generalized here to code points instead of bytes, and to the CSS Syntax
// preprocessing rules instead of DWScript's raw source text.
package codepoint

import (
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
)

// EOF is the sentinel rune returned by Stream.Peek/Current once the stream
// is exhausted. It is never mistaken for real content: valid code points are
// always non-negative.
const EOF rune = -1

// Preprocess applies the CSS Syntax Module Level 3 input preprocessing
// (§4.1) to s: every CRLF and lone CR or FF is replaced by a single LF, and
// every U+0000 (plus any surrogate code point, which cannot occur in a
// well-formed string to begin with) is replaced by U+FFFD.
func Preprocess(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\r':
			sb.WriteRune('\n')
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
		case r == '\f':
			sb.WriteRune('\n')
		case r == 0, r >= 0xD800 && r <= 0xDFFF:
			sb.WriteRune('�')
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// DecodeUTF16 decodes raw UTF-16 bytes (as might arrive from a
// @charset-less <link> fetch that the caller already knows is UTF-16) into a
// Go string, using golang.org/x/text/encoding/unicode so byte order marks
// and endianness are handled the way a browser's network layer would rather
// than by hand-rolled shifting. The decoder itself replaces unpaired
// surrogates with U+FFFD; Preprocess is not applied here.
func DecodeUTF16(b []byte, bom unicode.BOMPolicy) (string, error) {
	dec := unicode.UTF16(unicode.BigEndian, bom).NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EncodeSurrogatePair returns the UTF-16 high and low surrogate halves of
// an astral code point r. Tests use it to build UTF-16 input for
// DecodeUTF16 without depending on unicode/utf16 directly.
func EncodeSurrogatePair(r rune) (hi, lo rune) {
	h, l := utf16.EncodeRune(r)
	return h, l
}
