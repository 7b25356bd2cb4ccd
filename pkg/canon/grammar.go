// Package canon implements the optional canonicalizer from the data model's
// §4.5: it walks a parsed stylesheet against a small declarative grammar
// table keyed by at-rule name and produces a plain record tree (nested
// declarations/rules/errors) instead of the raw component-value soup a
// bare parse leaves behind. Unknown at-rules are passed through
// unvalidated rather than rejected, since the table only encodes the
// well-known at-rules a generic syntax-level parser can meaningfully
// check; anything else is left to whatever higher-level consumer actually
// understands it.
package canon

import "strings"

// Grammar describes what is allowed inside an at-rule's block.
//
//	Declarations  block holds a list of declarations (plus any at-rules
//	              named in Children, e.g. @page's margin boxes)
//	Qualified     block holds a list of qualified rules (plus any at-rules
//	              named in Children, e.g. @font-feature-values' named
//	              blocks), each validated against Children[""]
//	Stylesheet    block holds a nested stylesheet (both qualified rules and
//	              at-rules, recursively validated against the same table)
//	Children      per-child-at-rule-name override grammar, keyed by lower
//	              cased name; "" is the fallback grammar for qualified rule
//	              bodies when Qualified is set
//
// A nil *Grammar (as opposed to an empty one) means the at-rule takes no
// block at all — a bare prelude terminated by ';' (e.g. @import).
type Grammar struct {
	Declarations bool
	Qualified    bool
	Stylesheet   bool
	Children     map[string]*Grammar
}

// DefaultTable is the grammar table for the at-rules defined by CSS itself.
// Names are lower case; lookups in Canonicalize fold case before indexing.
var DefaultTable = map[string]*Grammar{
	"media":   {Stylesheet: true},
	"supports": {Stylesheet: true},
	"scope":   {Stylesheet: true},

	"keyframes": {
		Qualified: true,
		Children: map[string]*Grammar{
			"": {Declarations: true},
		},
	},

	"font-face":     {Declarations: true},
	"counter-style": {Declarations: true},
	"viewport":      {Declarations: true},

	"page": {
		Declarations: true,
		Children: map[string]*Grammar{
			"top-left-corner":     {Declarations: true},
			"top-left":            {Declarations: true},
			"top-center":          {Declarations: true},
			"top-right":           {Declarations: true},
			"top-right-corner":    {Declarations: true},
			"bottom-left-corner":  {Declarations: true},
			"bottom-left":         {Declarations: true},
			"bottom-center":       {Declarations: true},
			"bottom-right":        {Declarations: true},
			"bottom-right-corner": {Declarations: true},
			"left-top":            {Declarations: true},
			"left-middle":         {Declarations: true},
			"left-bottom":         {Declarations: true},
			"right-top":           {Declarations: true},
			"right-middle":        {Declarations: true},
			"right-bottom":        {Declarations: true},
		},
	},

	"font-feature-values": {
		Qualified: true,
		Children: map[string]*Grammar{
			"swash":           {Declarations: true},
			"annotation":      {Declarations: true},
			"ornaments":       {Declarations: true},
			"stylistic":       {Declarations: true},
			"styleset":        {Declarations: true},
			"character-variant": {Declarations: true},
		},
	},

	"import":         nil,
	"custom-selector": nil,
	"custom-media":   nil,
}

// Lookup returns the grammar for an at-rule name (case-insensitive), and
// whether the name is known to the table at all. An unknown name should be
// passed through unvalidated by the caller.
func Lookup(table map[string]*Grammar, name string) (*Grammar, bool) {
	g, ok := table[strings.ToLower(name)]
	return g, ok
}
