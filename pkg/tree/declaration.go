package tree

import "github.com/csssyntax/csssyntax/pkg/token"

// Declaration is a name/value pair, optionally flagged !important (§3,
// "declaration"; §5 for the !important detection rule).
type Declaration struct {
	Name      string
	Value     []ComponentValue
	Important bool
	start     token.Position
	end       token.Position
}

func NewDeclaration(name string, value []ComponentValue, important bool, start, end token.Position) *Declaration {
	return &Declaration{Name: name, Value: value, Important: important, start: start, end: end}
}

func (*Declaration) blockContent() {}

func (d *Declaration) Pos() token.Position { return d.start }
func (d *Declaration) End() token.Position { return d.end }

func (d *Declaration) ToSource() string {
	escaped, err := token.EscapeIdent(d.Name)
	if err != nil {
		escaped = d.Name
	}
	var sb []byte
	sb = append(sb, escaped...)
	sb = append(sb, ':')
	for _, cv := range d.Value {
		sb = append(sb, cv.ToSource()...)
	}
	if d.Important {
		sb = append(sb, "!important"...)
	}
	return string(sb)
}

// Stylesheet is a top-level list of rules (§3, "stylesheet").
type Stylesheet struct {
	Rules []Rule
}

func (s *Stylesheet) Pos() token.Position {
	if len(s.Rules) == 0 {
		return token.Position{Line: 1, Column: 1}
	}
	return s.Rules[0].Pos()
}

func (s *Stylesheet) End() token.Position {
	if len(s.Rules) == 0 {
		return token.Position{Line: 1, Column: 1}
	}
	return s.Rules[len(s.Rules)-1].End()
}

func (s *Stylesheet) ToSource() string {
	var sb []byte
	for _, r := range s.Rules {
		sb = append(sb, r.ToSource()...)
	}
	return string(sb)
}
