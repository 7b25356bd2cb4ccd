package tree

import (
	"encoding/json"
	"testing"

	"github.com/csssyntax/csssyntax/pkg/token"
)

func TestSimpleBlockToSource(t *testing.T) {
	inner := TokenValue{Token: token.NewIdentLike(token.IDENT, "a", token.Position{})}
	block := NewSimpleBlock(token.LEFT_CURLY, []ComponentValue{inner}, token.Position{}, token.Position{})
	if block.ToSource() != "{a}" {
		t.Fatalf("got %q", block.ToSource())
	}
}

func TestFunctionToSource(t *testing.T) {
	arg := TokenValue{Token: token.NewNumeric(token.NUMBER, "1", 1, token.NumberInteger, token.Position{})}
	fn := NewFunction("rgb", []ComponentValue{arg}, token.Position{}, token.Position{})
	if fn.ToSource() != "rgb(1)" {
		t.Fatalf("got %q", fn.ToSource())
	}
}

func TestAtRuleNoBlockEndsWithSemicolon(t *testing.T) {
	r := NewAtRule("import", nil, nil, token.Position{}, token.Position{})
	if r.ToSource() != "@import;" {
		t.Fatalf("got %q", r.ToSource())
	}
}

func TestDeclarationImportantSource(t *testing.T) {
	d := NewDeclaration("color", []ComponentValue{
		TokenValue{Token: token.NewIdentLike(token.IDENT, "red", token.Position{})},
	}, true, token.Position{}, token.Position{})
	if d.ToSource() != "color:red!important" {
		t.Fatalf("got %q", d.ToSource())
	}
}

func TestDeclarationMarshalJSON(t *testing.T) {
	d := NewDeclaration("color", []ComponentValue{
		TokenValue{Token: token.NewIdentLike(token.IDENT, "red", token.Position{})},
	}, true, token.Position{}, token.Position{})
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m["type"] != "DECLARATION" || m["name"] != "color" || m["important"] != true {
		t.Fatalf("got %v", m)
	}
	value, ok := m["value"].([]any)
	if !ok || len(value) != 1 {
		t.Fatalf("value = %v, want one token", m["value"])
	}
	tok, ok := value[0].(map[string]any)
	if !ok || tok["token"] != "ident" || tok["value"] != "red" {
		t.Fatalf("value[0] = %v, want an ident token", value[0])
	}
}

func TestStylesheetMarshalJSONRoundTrip(t *testing.T) {
	block := NewSimpleBlock(token.LEFT_CURLY, []ComponentValue{}, token.Position{}, token.Position{})
	qr := NewQualifiedRule(nil, block, token.Position{}, token.Position{})
	sheet := &Stylesheet{Rules: []Rule{qr}}

	b, err := json.Marshal(sheet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m["type"] != "STYLESHEET" {
		t.Fatalf("got %v", m)
	}
	rules, ok := m["rules"].([]any)
	if !ok || len(rules) != 1 {
		t.Fatalf("rules = %v, want one rule", m["rules"])
	}
	rule, ok := rules[0].(map[string]any)
	if !ok || rule["type"] != "QUALIFIED_RULE" {
		t.Fatalf("rules[0] = %v, want a QUALIFIED_RULE", rules[0])
	}
}
