package parser

import (
	"testing"

	"golang.org/x/text/encoding/unicode"

	"github.com/csssyntax/csssyntax/pkg/tree"
)

func TestParseStylesheetBasicRule(t *testing.T) {
	p := New("div { color: lime; }")
	sheet := p.ParseStylesheet()
	if len(sheet.Rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(sheet.Rules))
	}
	qr, ok := sheet.Rules[0].(*tree.QualifiedRule)
	if !ok {
		t.Fatalf("rule is %T, want *tree.QualifiedRule", sheet.Rules[0])
	}
	if qr.Block == nil {
		t.Fatal("expected a block")
	}
	items := ConsumeAListOfDeclarations(qr.Block)
	if len(items) != 1 {
		t.Fatalf("got %d declarations, want 1", len(items))
	}
	decl, ok := items[0].(*tree.Declaration)
	if !ok || decl.Name != "color" {
		t.Fatalf("got %+v, want declaration named color", items[0])
	}
}

func TestParseStylesheetAtRuleNoBlock(t *testing.T) {
	p := New(`@import "a.css";`)
	sheet := p.ParseStylesheet()
	if len(sheet.Rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(sheet.Rules))
	}
	at, ok := sheet.Rules[0].(*tree.AtRule)
	if !ok || at.Name != "import" || at.Block != nil {
		t.Fatalf("got %+v, want @import with no block", sheet.Rules[0])
	}
}

func TestDeclarationImportantDetection(t *testing.T) {
	p := New("a{width:10px !important}")
	sheet := p.ParseStylesheet()
	qr := sheet.Rules[0].(*tree.QualifiedRule)
	items := ConsumeAListOfDeclarations(qr.Block)
	decl := items[0].(*tree.Declaration)
	if !decl.Important {
		t.Fatal("expected Important to be true")
	}
	if decl.ToSource() != "width:10px !important" {
		t.Fatalf("ToSource() = %q", decl.ToSource())
	}
}

func TestParseRuleRejectsTrailingContent(t *testing.T) {
	p := New("a{} b{}")
	if _, err := p.ParseRule(); err == nil {
		t.Fatal("expected a SyntaxError for trailing content")
	}
}

func TestParseDeclarationRequiresColon(t *testing.T) {
	p := New("color lime")
	if _, err := p.ParseDeclaration(); err == nil {
		t.Fatal("expected an error for a missing colon")
	}
}

func TestParseComponentValueSingle(t *testing.T) {
	p := New("foo(1, 2)")
	cv, err := p.ParseComponentValue()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn, ok := cv.(*tree.Function)
	if !ok || fn.Name != "foo" {
		t.Fatalf("got %+v, want *tree.Function foo", cv)
	}
}

func TestParseCommaSeparatedListOfComponentValues(t *testing.T) {
	p := New("a, b c, d")
	groups := p.ParseCommaSeparatedListOfComponentValues()
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
}

func TestRoundTripSerialization(t *testing.T) {
	src := "div{color:red;width:10px}"
	p := New(src)
	sheet := p.ParseStylesheet()
	got := sheet.ToSource()
	p2 := New(got)
	sheet2 := p2.ParseStylesheet()
	if sheet2.ToSource() != got {
		t.Fatalf("serialization is not idempotent: %q -> %q", got, sheet2.ToSource())
	}
}

func TestParseListOfDeclarationsFromString(t *testing.T) {
	// The inline `style="..."` use case: a raw declaration-list string with
	// no surrounding block.
	p := New("color: red; width : 10px !important ;; --custom: 1")
	items := p.ParseListOfDeclarations()
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	d0, ok := items[0].(*tree.Declaration)
	if !ok || d0.Name != "color" {
		t.Fatalf("items[0] = %+v, want Declaration color", items[0])
	}
	d1, ok := items[1].(*tree.Declaration)
	if !ok || d1.Name != "width" || !d1.Important {
		t.Fatalf("items[1] = %+v, want Declaration width !important", items[1])
	}
	d2, ok := items[2].(*tree.Declaration)
	if !ok || d2.Name != "--custom" {
		t.Fatalf("items[2] = %+v, want Declaration --custom", items[2])
	}
}

func TestParseStylesheetFromUTF16(t *testing.T) {
	// "a{color:red}" encoded big-endian with a leading BOM.
	src := "a{color:red}"
	b := make([]byte, 0, 2+2*len(src))
	b = append(b, 0xFE, 0xFF)
	for _, r := range src {
		b = append(b, 0x00, byte(r))
	}
	p, err := NewFromUTF16(b, unicode.UseBOM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sheet := p.ParseStylesheet()
	if sheet.ToSource() != src {
		t.Fatalf("got %q, want %q", sheet.ToSource(), src)
	}
}
