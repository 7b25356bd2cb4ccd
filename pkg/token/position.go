// Package token defines the wire contract for the CSS Syntax tokenizer: the
// closed set of token kinds, their payloads, and source positions.
package token

import "fmt"

// Position identifies a location in the original source text.
//
// Column and Line count Unicode scalar values (code points), not bytes and
// not display width, matching the tokenizer's code-point-level cursor.
type Position struct {
	Offset int // code-point offset from the start of input
	Line   int // 1-based line number
	Column int // 1-based column, counted in code points from the start of the line
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Add returns the position advanced by n code points on the same line.
func (p Position) Add(n int) Position {
	p.Offset += n
	p.Column += n
	return p
}
