package tree

import "github.com/csssyntax/csssyntax/pkg/token"

// TokenValue wraps a pkg/token.Token so it can stand in a ComponentValue
// slice alongside SimpleBlock and Function. Go can't attach a componentValue
// marker method to a type defined in another package, so this thin wrapper
// is the adaptation point — exactly the "tagged variant" from the data
// model's component-value union, expressed as three concrete Go types
// behind one interface instead of a class hierarchy.
type TokenValue struct {
	token.Token
}

func (TokenValue) componentValue() {}

func (t TokenValue) Pos() token.Position { return t.Token.Pos }

func (t TokenValue) End() token.Position {
	return t.Token.Pos.Add(t.Token.RuneLen())
}

func (t TokenValue) ToSource() string { return t.Token.ToSource() }

// SimpleBlock is a {...}, [...], or (...) block: an opening token, the
// component values between it and its mirror, and an implicit closing
// token reconstructed from Open (§4.4, "consume a simple block").
type SimpleBlock struct {
	Open  token.Type // LEFT_CURLY, LEFT_SQUARE, or LEFT_PAREN
	Value []ComponentValue
	start token.Position
	end   token.Position
}

func NewSimpleBlock(open token.Type, value []ComponentValue, start, end token.Position) *SimpleBlock {
	return &SimpleBlock{Open: open, Value: value, start: start, end: end}
}

func (*SimpleBlock) componentValue() {}

func (b *SimpleBlock) Pos() token.Position { return b.start }
func (b *SimpleBlock) End() token.Position { return b.end }

func (b *SimpleBlock) ToSource() string {
	var sb []byte
	sb = append(sb, string(token.Opener(b.Open))...)
	for _, cv := range b.Value {
		sb = append(sb, cv.ToSource()...)
	}
	closer, _ := token.Mirror(b.Open)
	sb = append(sb, string(token.Closer(closer))...)
	return string(sb)
}

// Function is a name followed by a parenthesized sequence of component
// values (§4.4, "consume a function").
type Function struct {
	Name  string
	Value []ComponentValue
	start token.Position
	end   token.Position
}

func NewFunction(name string, value []ComponentValue, start, end token.Position) *Function {
	return &Function{Name: name, Value: value, start: start, end: end}
}

func (*Function) componentValue() {}

func (f *Function) Pos() token.Position { return f.start }
func (f *Function) End() token.Position { return f.end }

func (f *Function) ToSource() string {
	escaped, err := token.EscapeIdent(f.Name)
	if err != nil {
		escaped = f.Name
	}
	var sb []byte
	sb = append(sb, escaped...)
	sb = append(sb, '(')
	for _, cv := range f.Value {
		sb = append(sb, cv.ToSource()...)
	}
	sb = append(sb, ')')
	return string(sb)
}
