package tree

import (
	"encoding/json"

	"github.com/csssyntax/csssyntax/pkg/token"
)

// MarshalJSON projects a Stylesheet to `{type: "STYLESHEET", rules: […]}`
// per §3/§6's "each tree node to {type: <TYPE>, …}" JSON projection.
func (s *Stylesheet) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Rules []Rule `json:"rules"`
	}{Type: "STYLESHEET", Rules: s.Rules})
}

// MarshalJSON projects an AtRule to
// `{type: "AT_RULE", name, prelude: […], block: …|null}`.
func (r *AtRule) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string           `json:"type"`
		Name    string           `json:"name"`
		Prelude []ComponentValue `json:"prelude"`
		Block   *SimpleBlock     `json:"block"`
	}{Type: "AT_RULE", Name: r.Name, Prelude: r.Prelude, Block: r.Block})
}

// MarshalJSON projects a QualifiedRule to
// `{type: "QUALIFIED_RULE", prelude: […], block}`.
func (r *QualifiedRule) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string           `json:"type"`
		Prelude []ComponentValue `json:"prelude"`
		Block   *SimpleBlock     `json:"block"`
	}{Type: "QUALIFIED_RULE", Prelude: r.Prelude, Block: r.Block})
}

// MarshalJSON projects a Declaration to
// `{type: "DECLARATION", name, value: […], important}`.
func (d *Declaration) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string           `json:"type"`
		Name      string           `json:"name"`
		Value     []ComponentValue `json:"value"`
		Important bool             `json:"important"`
	}{Type: "DECLARATION", Name: d.Name, Value: d.Value, Important: d.Important})
}

// MarshalJSON projects a SimpleBlock to
// `{type: "SIMPLE_BLOCK", opener, mirror, value: […]}`.
func (b *SimpleBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string           `json:"type"`
		Opener string           `json:"opener"`
		Mirror string           `json:"mirror"`
		Value  []ComponentValue `json:"value"`
	}{
		Type:   "SIMPLE_BLOCK",
		Opener: string(token.Opener(b.Open)),
		Mirror: string(closerRuneFor(b.Open)),
		Value:  b.Value,
	})
}

// MarshalJSON projects a Function to
// `{type: "FUNCTION", name, value: […]}`.
func (f *Function) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string           `json:"type"`
		Name  string           `json:"name"`
		Value []ComponentValue `json:"value"`
	}{Type: "FUNCTION", Name: f.Name, Value: f.Value})
}

// closerRuneFor returns the closing bracket rune that mirrors a simple
// block's opener, used only by MarshalJSON — ToSource (componentvalue.go)
// already does this inline via token.Mirror/token.Closer.
func closerRuneFor(open token.Type) rune {
	closer, _ := token.Mirror(open)
	return token.Closer(closer)
}
