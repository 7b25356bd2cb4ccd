package canon

import (
	"fmt"
	"strings"

	"github.com/csssyntax/csssyntax/internal/parser"
	"github.com/csssyntax/csssyntax/pkg/token"
	"github.com/csssyntax/csssyntax/pkg/tree"
)

// Decl is a canonicalized declaration: name, serialized value, and the
// !important flag.
type Decl struct {
	Name      string
	Value     string
	Important bool
}

// Record is a canonicalized rule: a style rule (Selector set, Declarations
// set) or an at-rule (Name set), optionally holding nested Records for
// @media/@supports/@scope/@keyframes/@font-feature-values/@page bodies.
type Record struct {
	Kind         string // "style", "at-rule", "margin-box", "unknown"
	Name         string // at-rule name, lower case; empty for style rules
	Selector     string // serialized prelude, for style rules
	Declarations []Decl
	Rules        []*Record
	Prelude      string // serialized prelude, for at-rules with no further structure
}

// Canonicalize walks sheet against table (use DefaultTable for the at-rules
// CSS itself defines) and returns the resulting record tree plus any
// grammar violations found along the way. A violation does not stop the
// walk — the offending rule is still recorded as best-effort, the way the
// tokenizer and parser themselves never abort on a recoverable error.
func Canonicalize(sheet *tree.Stylesheet, table map[string]*Grammar) ([]*Record, []string) {
	c := &canonicalizer{table: table}
	var records []*Record
	for _, r := range sheet.Rules {
		records = append(records, c.rule(r))
	}
	return records, c.errors
}

type canonicalizer struct {
	table  map[string]*Grammar
	errors []string
}

func (c *canonicalizer) errorf(format string, args ...any) {
	c.errors = append(c.errors, fmt.Sprintf(format, args...))
}

func (c *canonicalizer) rule(r tree.Rule) *Record {
	switch v := r.(type) {
	case *tree.QualifiedRule:
		return c.styleRule(v.Prelude, v.Block)
	case *tree.AtRule:
		return c.atRule(v, c.table)
	default:
		c.errorf("unrecognized rule node %T", r)
		return &Record{Kind: "unknown"}
	}
}

func (c *canonicalizer) styleRule(prelude []tree.ComponentValue, block *tree.SimpleBlock) *Record {
	rec := &Record{Kind: "style", Selector: serialize(prelude)}
	if block == nil {
		c.errorf("style rule %q has no block", rec.Selector)
		return rec
	}
	rec.Declarations, rec.Rules = c.declarationsOf(block, nil)
	return rec
}

func (c *canonicalizer) atRule(a *tree.AtRule, table map[string]*Grammar) *Record {
	name := strings.ToLower(a.Name)
	rec := &Record{Kind: "at-rule", Name: name, Prelude: serialize(a.Prelude)}

	grammar, known := Lookup(table, name)
	if !known {
		return rec
	}
	if grammar == nil {
		if a.Block != nil {
			c.errorf("@%s does not take a block", a.Name)
		}
		return rec
	}
	if a.Block == nil {
		c.errorf("@%s requires a block", a.Name)
		return rec
	}

	switch {
	case grammar.Stylesheet:
		rec.Rules = c.nestedStylesheet(a.Block, table)
	case grammar.Qualified:
		rec.Rules = c.nestedQualified(a.Block, grammar)
	case grammar.Declarations:
		rec.Declarations, rec.Rules = c.declarationsOf(a.Block, grammar)
	}
	return rec
}

// declarationsOf interprets a block's contents as a list of declarations
// plus any nested at-rules grammar.Children allows (e.g. @page's margin
// boxes), which come back as "margin-box" Records rather than Decls since
// they carry their own declaration list.
func (c *canonicalizer) declarationsOf(block *tree.SimpleBlock, grammar *Grammar) ([]Decl, []*Record) {
	items := parser.ConsumeAListOfDeclarations(block)
	var decls []Decl
	var nested []*Record
	for _, item := range items {
		switch v := item.(type) {
		case *tree.Declaration:
			decls = append(decls, Decl{Name: v.Name, Value: serialize(v.Value), Important: v.Important})
		case *tree.AtRule:
			childName := strings.ToLower(v.Name)
			if grammar == nil || grammar.Children == nil {
				c.errorf("at-rule @%s not allowed in this declaration list", v.Name)
				continue
			}
			childGrammar, ok := grammar.Children[childName]
			if !ok {
				c.errorf("at-rule @%s not allowed here", v.Name)
				continue
			}
			rec := &Record{Kind: "margin-box", Name: childName, Prelude: serialize(v.Prelude)}
			if v.Block != nil && childGrammar != nil && childGrammar.Declarations {
				rec.Declarations, _ = c.declarationsOf(v.Block, childGrammar)
			}
			nested = append(nested, rec)
		}
	}
	return decls, nested
}

func (c *canonicalizer) nestedStylesheet(block *tree.SimpleBlock, table map[string]*Grammar) []*Record {
	rules := parser.ParseBlockAsListOfRules(block)
	var recs []*Record
	for _, r := range rules {
		switch v := r.(type) {
		case *tree.QualifiedRule:
			recs = append(recs, c.styleRule(v.Prelude, v.Block))
		case *tree.AtRule:
			recs = append(recs, c.atRule(v, table))
		}
	}
	return recs
}

func (c *canonicalizer) nestedQualified(block *tree.SimpleBlock, grammar *Grammar) []*Record {
	rules := parser.ParseBlockAsListOfRules(block)
	var recs []*Record
	for _, r := range rules {
		switch v := r.(type) {
		case *tree.QualifiedRule:
			childGrammar := grammar.Children[""]
			rec := &Record{Kind: "style", Selector: serialize(v.Prelude)}
			if v.Block == nil {
				c.errorf("rule %q has no block", rec.Selector)
			} else {
				rec.Declarations, rec.Rules = c.declarationsOf(v.Block, childGrammar)
			}
			recs = append(recs, rec)
		case *tree.AtRule:
			childName := strings.ToLower(v.Name)
			childGrammar, ok := grammar.Children[childName]
			if !ok {
				c.errorf("at-rule @%s not allowed here", v.Name)
				continue
			}
			rec := &Record{Kind: "margin-box", Name: childName, Prelude: serialize(v.Prelude)}
			if v.Block != nil && childGrammar != nil && childGrammar.Declarations {
				rec.Declarations, _ = c.declarationsOf(v.Block, childGrammar)
			}
			recs = append(recs, rec)
		}
	}
	return recs
}

func serialize(cvs []tree.ComponentValue) string {
	var sb strings.Builder
	for _, cv := range cvs {
		if tv, ok := cv.(tree.TokenValue); ok && tv.Type == token.WHITESPACE {
			sb.WriteString(" ")
			continue
		}
		sb.WriteString(cv.ToSource())
	}
	return strings.TrimSpace(sb.String())
}
