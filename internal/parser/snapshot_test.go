package parser

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// Snapshot-tests the serializer's output for a representative set of
// stylesheets, the way the teacher's internal/interp fixture tests snapshot
// interpreter output with go-snaps instead of hand-written expected
// strings.
func TestSerializationSnapshots(t *testing.T) {
	cases := map[string]string{
		"basic_rule":       "div { color: lime; }",
		"at_rule_import":   `@import "a.css";`,
		"important":        "a{width:10px !important}",
		"dimension_percent": "a{b:1.5e2%}",
		"url_unquoted":     "a{background:url( foo.png )}",
		"hash_id":          "#abc{color:red}",
		"hash_unrestricted": "#0a{color:red}",
		"custom_property":  "a{--b:1}",
		"media_nested":     "@media screen { a { color: red; } }",
		"keyframes":        "@keyframes spin { from { opacity: 0; } to { opacity: 1; } }",
	}

	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			sheet := New(src).ParseStylesheet()
			snaps.MatchSnapshot(t, sheet.ToSource())
		})
	}
}
