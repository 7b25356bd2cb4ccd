package tree

import "github.com/csssyntax/csssyntax/pkg/token"

// AtRule is an @-rule: a name, an arbitrary prelude of component values,
// and an optional {...} block (nil for rules like @import that end in
// ';').
type AtRule struct {
	Name    string
	Prelude []ComponentValue
	Block   *SimpleBlock
	start   token.Position
	end     token.Position
}

func NewAtRule(name string, prelude []ComponentValue, block *SimpleBlock, start, end token.Position) *AtRule {
	return &AtRule{Name: name, Prelude: prelude, Block: block, start: start, end: end}
}

func (*AtRule) rule() {}
func (*AtRule) blockContent() {}

func (r *AtRule) Pos() token.Position { return r.start }
func (r *AtRule) End() token.Position { return r.end }

func (r *AtRule) ToSource() string {
	escaped, err := token.EscapeIdent(r.Name)
	if err != nil {
		escaped = r.Name
	}
	var sb []byte
	sb = append(sb, '@')
	sb = append(sb, escaped...)
	for _, cv := range r.Prelude {
		sb = append(sb, cv.ToSource()...)
	}
	if r.Block != nil {
		sb = append(sb, r.Block.ToSource()...)
	} else {
		sb = append(sb, ';')
	}
	return string(sb)
}

// QualifiedRule is a prelude (e.g. a selector list) followed by a {...}
// block of declarations.
type QualifiedRule struct {
	Prelude []ComponentValue
	Block   *SimpleBlock
	start   token.Position
	end     token.Position
}

func NewQualifiedRule(prelude []ComponentValue, block *SimpleBlock, start, end token.Position) *QualifiedRule {
	return &QualifiedRule{Prelude: prelude, Block: block, start: start, end: end}
}

func (*QualifiedRule) rule() {}

func (r *QualifiedRule) Pos() token.Position { return r.start }
func (r *QualifiedRule) End() token.Position { return r.end }

func (r *QualifiedRule) ToSource() string {
	var sb []byte
	for _, cv := range r.Prelude {
		sb = append(sb, cv.ToSource()...)
	}
	if r.Block != nil {
		sb = append(sb, r.Block.ToSource()...)
	}
	return string(sb)
}
