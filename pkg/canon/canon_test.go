package canon

import (
	"testing"

	"github.com/csssyntax/csssyntax/internal/parser"
)

func TestCanonicalizeStyleRule(t *testing.T) {
	p := parser.New("div { color: lime; width: 10px !important; }")
	sheet := p.ParseStylesheet()
	recs, errs := Canonicalize(sheet, DefaultTable)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(recs) != 1 || recs[0].Kind != "style" {
		t.Fatalf("got %+v", recs)
	}
	if recs[0].Selector != "div" {
		t.Fatalf("selector = %q, want %q", recs[0].Selector, "div")
	}
	if len(recs[0].Declarations) != 2 {
		t.Fatalf("got %d declarations, want 2", len(recs[0].Declarations))
	}
	if !recs[0].Declarations[1].Important {
		t.Fatal("expected second declaration to be important")
	}
}

func TestCanonicalizeMedia(t *testing.T) {
	p := parser.New("@media screen { a { color: red; } }")
	sheet := p.ParseStylesheet()
	recs, errs := Canonicalize(sheet, DefaultTable)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if recs[0].Kind != "at-rule" || recs[0].Name != "media" {
		t.Fatalf("got %+v", recs[0])
	}
	if len(recs[0].Rules) != 1 || recs[0].Rules[0].Selector != "a" {
		t.Fatalf("got %+v", recs[0].Rules)
	}
}

func TestCanonicalizeImportTakesNoBlock(t *testing.T) {
	p := parser.New(`@import "a.css" { color: red; }`)
	sheet := p.ParseStylesheet()
	_, errs := Canonicalize(sheet, DefaultTable)
	if len(errs) == 0 {
		t.Fatal("expected an error for @import with a block")
	}
}

func TestCanonicalizeKeyframes(t *testing.T) {
	p := parser.New("@keyframes spin { from { opacity: 0; } to { opacity: 1; } }")
	sheet := p.ParseStylesheet()
	recs, errs := Canonicalize(sheet, DefaultTable)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if recs[0].Name != "keyframes" || len(recs[0].Rules) != 2 {
		t.Fatalf("got %+v", recs[0])
	}
}
