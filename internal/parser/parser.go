package parser

import (
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/csssyntax/csssyntax/internal/errsink"
	"github.com/csssyntax/csssyntax/internal/tokenizer"
	"github.com/csssyntax/csssyntax/pkg/token"
	"github.com/csssyntax/csssyntax/pkg/tree"
)

// Option configures a Parser, mirroring the tokenizer's functional-options
// style and, further back, the teacher's LexerOption pattern.
type Option func(*Parser)

// WithSink sets the sink that recoverable parse errors are reported to.
func WithSink(sink errsink.Sink) Option {
	return func(p *Parser) { p.sink = sink }
}

// Parser holds a token stream and the error sink its productions report
// to. Its methods are direct translations of the "consume a ___" and
// "parse a ___" algorithms, kept close to the teacher's parser.go in
// shape: error accumulation via a sink instead of a panic/recover, and a
// small set of exported entry points over a larger set of unexported
// production methods.
type Parser struct {
	s    *TokenStream
	sink errsink.Sink
}

// New tokenizes source and builds a Parser over the result.
func New(source string, opts ...Option) *Parser {
	p := &Parser{sink: errsink.DiscardSink{}}
	for _, opt := range opts {
		opt(p)
	}
	tz := tokenizer.New(source, tokenizer.WithSink(p.sink))
	p.s = NewTokenStream(tz)
	return p
}

// NewFromUTF16 decodes raw UTF-16 bytes (per spec §3) via
// tokenizer.NewFromUTF16 and builds a Parser over the result, for callers
// handed a UTF-16 stylesheet (e.g. from a network layer that preserves the
// original transfer encoding) rather than an already-decoded Go string.
func NewFromUTF16(b []byte, bom unicode.BOMPolicy, opts ...Option) (*Parser, error) {
	p := &Parser{sink: errsink.DiscardSink{}}
	for _, opt := range opts {
		opt(p)
	}
	tz, err := tokenizer.NewFromUTF16(b, bom, tokenizer.WithSink(p.sink))
	if err != nil {
		return nil, err
	}
	p.s = NewTokenStream(tz)
	return p, nil
}

func (p *Parser) reportAt(pos token.Position, code, message string) {
	p.sink.Report(&errsink.ParseError{Code: code, Message: message, Pos: pos})
}

// ParseStylesheet runs "parse a stylesheet" (§5.3.1): a top-level list of
// rules with CDO/CDC discarded.
func (p *Parser) ParseStylesheet() *tree.Stylesheet {
	return &tree.Stylesheet{Rules: p.consumeAListOfRules(true)}
}

// ParseListOfRules runs "parse a list of rules" (§5.3.2): like
// ParseStylesheet but CDO/CDC are treated as ordinary qualified-rule
// preludes rather than discarded, for contexts like @media preludes or
// nested style contexts that never see a literal HTML comment delimiter
// meaningfully.
func (p *Parser) ParseListOfRules() []tree.Rule {
	return p.consumeAListOfRules(false)
}

// ParseRule runs "parse a rule" (§5.3.3): exactly one qualified or at-rule,
// erroring on leading/trailing content beyond optional whitespace.
func (p *Parser) ParseRule() (tree.Rule, error) {
	p.s.SkipWhitespace()

	var rule tree.Rule
	switch p.s.Peek(1).Type {
	case token.EOF:
		return nil, newSyntaxError("unexpected EOF while parsing a rule")
	case token.AT_KEYWORD:
		rule = p.consumeAnAtRule()
	default:
		r, ok := p.consumeAQualifiedRule()
		if !ok {
			return nil, newSyntaxError("EOF while parsing a qualified rule")
		}
		rule = r
	}

	p.s.SkipWhitespace()
	if p.s.Peek(1).Type != token.EOF {
		return nil, newSyntaxError("unexpected trailing content after rule")
	}
	return rule, nil
}

// ParseDeclaration runs "parse a declaration" (§5.3.4).
func (p *Parser) ParseDeclaration() (*tree.Declaration, error) {
	p.s.SkipWhitespace()
	if p.s.Peek(1).Type != token.IDENT {
		return nil, newSyntaxError("declaration must start with an identifier")
	}
	decl, ok := p.consumeADeclaration()
	if !ok {
		return nil, newSyntaxError("malformed declaration")
	}
	p.s.SkipWhitespace()
	if p.s.Peek(1).Type != token.EOF {
		return nil, newSyntaxError("unexpected trailing content after declaration")
	}
	return decl, nil
}

// ParseComponentValue runs "parse a component value" (§5.3.6): exactly one
// component value, erroring on EOF or trailing content.
func (p *Parser) ParseComponentValue() (tree.ComponentValue, error) {
	p.s.SkipWhitespace()
	if p.s.Peek(1).Type == token.EOF {
		return nil, newSyntaxError("unexpected EOF while parsing a component value")
	}
	cv := p.consumeAComponentValue()
	p.s.SkipWhitespace()
	if p.s.Peek(1).Type != token.EOF {
		return nil, newSyntaxError("unexpected trailing content after component value")
	}
	return cv, nil
}

// ParseListOfComponentValues runs "parse a list of component values"
// (§5.3.7).
func (p *Parser) ParseListOfComponentValues() []tree.ComponentValue {
	var out []tree.ComponentValue
	for p.s.Peek(1).Type != token.EOF {
		out = append(out, p.consumeAComponentValue())
	}
	return out
}

// ParseListOfDeclarations runs "parse a list of declarations" (§4.4 via
// §6's `parseAListOfDeclarations(input) → (Declaration | AtRule)[]`), for
// callers with a raw string input — the canonical use case being an inline
// `style="..."` attribute, which is a declaration list but never a full
// stylesheet. This is the string-accepting counterpart to
// ConsumeAListOfDeclarations, which takes an already-built
// *tree.SimpleBlock instead.
func (p *Parser) ParseListOfDeclarations() []tree.BlockContent {
	return p.consumeAListOfDeclarations()
}

// ParseCommaSeparatedListOfComponentValues runs "parse a comma-separated
// list of component values" (§5.3.8): splits the input on top-level COMMA
// tokens, each group itself parsed like a list of component values. Used
// for things like `grid-template-columns` or any property whose grammar is
// "a comma-separated list of <foo>".
func (p *Parser) ParseCommaSeparatedListOfComponentValues() [][]tree.ComponentValue {
	var groups [][]tree.ComponentValue
	var cur []tree.ComponentValue
	for {
		tok := p.s.Peek(1)
		if tok.Type == token.EOF {
			groups = append(groups, cur)
			return groups
		}
		if tok.Type == token.COMMA {
			p.s.Next()
			groups = append(groups, cur)
			cur = nil
			continue
		}
		cur = append(cur, p.consumeAComponentValue())
	}
}

// consumeAListOfRules runs "consume a list of rules" (§4.4).
func (p *Parser) consumeAListOfRules(topLevel bool) []tree.Rule {
	var rules []tree.Rule
	for {
		tok := p.s.Peek(1)
		switch {
		case tok.Type == token.WHITESPACE:
			p.s.Next()
		case tok.Type == token.EOF:
			return rules
		case tok.Type == token.CDO || tok.Type == token.CDC:
			if topLevel {
				p.s.Next()
				continue
			}
			if r, ok := p.consumeAQualifiedRule(); ok {
				rules = append(rules, r)
			}
		case tok.Type == token.AT_KEYWORD:
			rules = append(rules, p.consumeAnAtRule())
		default:
			if r, ok := p.consumeAQualifiedRule(); ok {
				rules = append(rules, r)
			}
		}
	}
}

// consumeAnAtRule runs "consume an at-rule" (§4.4). The leading AT_KEYWORD
// is assumed already to be the current token.
func (p *Parser) consumeAnAtRule() *tree.AtRule {
	start := p.s.Peek(1).Pos
	name := p.s.Next().Value

	var prelude []tree.ComponentValue
	var block *tree.SimpleBlock
	end := start

	for {
		tok := p.s.Peek(1)
		switch tok.Type {
		case token.SEMICOLON:
			end = tok.Pos.Add(1)
			p.s.Next()
			return tree.NewAtRule(name, prelude, nil, start, end)
		case token.EOF:
			p.reportAt(tok.Pos, errsink.ErrEOFInPrelude, "unexpected EOF in at-rule prelude")
			end = tok.Pos
			return tree.NewAtRule(name, prelude, nil, start, end)
		case token.LEFT_CURLY:
			block = p.consumeASimpleBlock(token.LEFT_CURLY)
			return tree.NewAtRule(name, prelude, block, start, block.End())
		default:
			cv := p.consumeAComponentValue()
			prelude = append(prelude, cv)
			end = cv.End()
		}
	}
}

// consumeAQualifiedRule runs "consume a qualified rule" (§4.4). ok is false
// when EOF is reached before a block, per the spec's "this is a parse
// error, return nothing".
func (p *Parser) consumeAQualifiedRule() (*tree.QualifiedRule, bool) {
	start := p.s.Peek(1).Pos
	var prelude []tree.ComponentValue

	for {
		tok := p.s.Peek(1)
		switch tok.Type {
		case token.EOF:
			p.reportAt(tok.Pos, errsink.ErrEOFInPrelude, "unexpected EOF in qualified rule prelude")
			return nil, false
		case token.LEFT_CURLY:
			block := p.consumeASimpleBlock(token.LEFT_CURLY)
			return tree.NewQualifiedRule(prelude, block, start, block.End()), true
		default:
			prelude = append(prelude, p.consumeAComponentValue())
		}
	}
}

// consumeAListOfDeclarations runs "consume a list of declarations" (§4.4).
func (p *Parser) consumeAListOfDeclarations() []tree.BlockContent {
	var items []tree.BlockContent
	for {
		tok := p.s.Peek(1)
		switch {
		case tok.Type == token.WHITESPACE || tok.Type == token.SEMICOLON:
			p.s.Next()
		case tok.Type == token.EOF:
			return items
		case tok.Type == token.AT_KEYWORD:
			items = append(items, p.consumeAnAtRule())
		case tok.Type == token.IDENT:
			if decl, ok := p.consumeADeclaration(); ok {
				items = append(items, decl)
			}
		default:
			p.reportAt(tok.Pos, errsink.ErrUnexpectedTokenInDecl, "unexpected token in declaration list, discarding until ';'")
			p.consumeUntilSemicolonOrEOF()
		}
	}
}

func (p *Parser) consumeUntilSemicolonOrEOF() {
	for {
		tok := p.s.Peek(1)
		if tok.Type == token.SEMICOLON || tok.Type == token.EOF {
			return
		}
		p.consumeAComponentValue()
	}
}

// consumeADeclaration runs "consume a declaration" (§4.4 and §5.1). The
// leading IDENT is assumed already to be the current token. ok is false
// when no colon follows the name.
func (p *Parser) consumeADeclaration() (*tree.Declaration, bool) {
	start := p.s.Peek(1).Pos
	name := p.s.Next().Value

	p.s.SkipWhitespace()
	if p.s.Peek(1).Type != token.COLON {
		p.reportAt(start, errsink.ErrMissingColon, "declaration missing ':'")
		p.consumeUntilSemicolonOrEOF()
		return nil, false
	}
	p.s.Next()
	p.s.SkipWhitespace()

	var value []tree.ComponentValue
	end := start
	for {
		tok := p.s.Peek(1)
		if tok.Type == token.SEMICOLON || tok.Type == token.EOF {
			break
		}
		cv := p.consumeAComponentValue()
		value = append(value, cv)
		end = cv.End()
	}

	important, value := extractImportant(value)
	return tree.NewDeclaration(name, value, important, start, end), true
}

// extractImportant implements §5's "!important" detection: scan the
// declaration's value from the end for DELIM('!') IDENT("important")
// (whitespace permitted between and around them), and if found strip it
// from the value and set the flag.
func extractImportant(value []tree.ComponentValue) (bool, []tree.ComponentValue) {
	i := len(value) - 1
	for i >= 0 {
		if tv, ok := value[i].(tree.TokenValue); ok && tv.Type == token.WHITESPACE {
			i--
			continue
		}
		break
	}
	if i < 0 {
		return false, value
	}
	tv, ok := value[i].(tree.TokenValue)
	if !ok || tv.Type != token.IDENT || !strings.EqualFold(tv.Value, "important") {
		return false, value
	}
	i--
	for i >= 0 {
		if tv2, ok := value[i].(tree.TokenValue); ok && tv2.Type == token.WHITESPACE {
			i--
			continue
		}
		break
	}
	if i < 0 {
		return false, value
	}
	tv2, ok := value[i].(tree.TokenValue)
	if !ok || !tv2.Delim('!') {
		return false, value
	}
	return true, value[:i]
}

// consumeAComponentValue runs "consume a component value" (§4.4).
func (p *Parser) consumeAComponentValue() tree.ComponentValue {
	tok := p.s.Peek(1)
	switch tok.Type {
	case token.LEFT_CURLY, token.LEFT_SQUARE, token.LEFT_PAREN:
		return p.consumeASimpleBlock(tok.Type)
	case token.FUNCTION:
		p.s.Next()
		return p.consumeAFunction(tok.Value, tok.Pos)
	default:
		p.s.Next()
		return tree.TokenValue{Token: tok}
	}
}

// consumeASimpleBlock runs "consume a simple block" (§4.4), with the
// opening bracket-like token assumed to be the current token (open names
// which of LEFT_CURLY/LEFT_SQUARE/LEFT_PAREN it is).
func (p *Parser) consumeASimpleBlock(open token.Type) *tree.SimpleBlock {
	start := p.s.Peek(1).Pos
	p.s.Next()
	closer, _ := token.Mirror(open)

	var value []tree.ComponentValue
	end := start.Add(1)
	for {
		tok := p.s.Peek(1)
		switch {
		case tok.Type == closer:
			end = tok.Pos.Add(1)
			p.s.Next()
			return tree.NewSimpleBlock(open, value, start, end)
		case tok.Type == token.EOF:
			p.reportAt(tok.Pos, errsink.ErrEOFInPrelude, "unexpected EOF inside block")
			end = tok.Pos
			return tree.NewSimpleBlock(open, value, start, end)
		default:
			cv := p.consumeAComponentValue()
			value = append(value, cv)
			end = cv.End()
		}
	}
}

// consumeAFunction runs "consume a function" (§4.4), with the FUNCTION
// token already consumed.
func (p *Parser) consumeAFunction(name string, start token.Position) *tree.Function {
	var value []tree.ComponentValue
	end := start
	for {
		tok := p.s.Peek(1)
		switch {
		case tok.Type == token.RIGHT_PAREN:
			end = tok.Pos.Add(1)
			p.s.Next()
			return tree.NewFunction(name, value, start, end)
		case tok.Type == token.EOF:
			p.reportAt(tok.Pos, errsink.ErrEOFInPrelude, "unexpected EOF inside function")
			end = tok.Pos
			return tree.NewFunction(name, value, start, end)
		default:
			cv := p.consumeAComponentValue()
			value = append(value, cv)
			end = cv.End()
		}
	}
}

// ConsumeAListOfDeclarations exposes ParseListOfDeclarations for callers
// that already have a *tree.SimpleBlock in hand (e.g. the canonicalizer
// walking a style rule's block) rather than a raw string, by first
// re-serializing the block's contents back to source.
func ConsumeAListOfDeclarations(block *tree.SimpleBlock, opts ...Option) []tree.BlockContent {
	return New(serializeBlockContents(block), opts...).ParseListOfDeclarations()
}

// ParseBlockAsListOfRules interprets a block's contents as a nested list of
// rules (§4.4's "consume a list of rules" with topLevel=false), for
// canonicalizer grammars like @media/@supports/@scope (Stylesheet) and
// @keyframes/@font-feature-values (Qualified) whose blocks hold rules
// rather than plain declarations.
func ParseBlockAsListOfRules(block *tree.SimpleBlock, opts ...Option) []tree.Rule {
	p := New(serializeBlockContents(block), opts...)
	return p.consumeAListOfRules(false)
}

func serializeBlockContents(block *tree.SimpleBlock) string {
	var sb strings.Builder
	for _, cv := range block.Value {
		sb.WriteString(cv.ToSource())
	}
	return sb.String()
}
