// Package tree defines the CSS Syntax parse tree: component values, simple
// blocks, functions, rules, declarations, and stylesheets, plus
// serialization back to source text. It plays the role the teacher's
// internal/ast package plays for DWScript's AST — a closed set of node
// kinds reached through small marker-method interfaces rather than a class
// hierarchy, since Go has no sum types.
package tree

import "github.com/csssyntax/csssyntax/pkg/token"

// Node is implemented by every parse tree node.
type Node interface {
	Pos() token.Position
	End() token.Position
	ToSource() string
}

// ComponentValue is a Token, SimpleBlock, or Function — the three
// constituents a component value can be (§4.4, "consume a component
// value"). The marker method closes the set the way the teacher's
// Expression/Statement marker methods close theirs in internal/ast.
type ComponentValue interface {
	Node
	componentValue()
}

// Rule is an AtRule or QualifiedRule (§3, "rule").
type Rule interface {
	Node
	rule()
}

// BlockContent is a Declaration or AtRule, the two things a list of
// declarations can hold (§4.4, "consume a list of declarations" — a
// declaration block can itself contain nested at-rules, e.g. @media
// queries inside a style rule).
type BlockContent interface {
	Node
	blockContent()
}
