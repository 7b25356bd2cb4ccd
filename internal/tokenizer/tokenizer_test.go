package tokenizer

import (
	"testing"

	"golang.org/x/text/encoding/unicode"

	"github.com/csssyntax/csssyntax/internal/errsink"
	"github.com/csssyntax/csssyntax/pkg/token"
)

func allTokens(src string, opts ...Option) []token.Token {
	tz := New(src, opts...)
	var toks []token.Token
	for {
		tok := tz.Next()
		toks = append(toks, tok)
		if tok.IsEOF() {
			return toks
		}
	}
}

func types(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestTokenizeBasicDeclaration(t *testing.T) {
	toks := allTokens("div { color: lime; }")
	want := []token.Type{
		token.IDENT, token.WHITESPACE, token.LEFT_CURLY, token.WHITESPACE,
		token.IDENT, token.COLON, token.WHITESPACE, token.IDENT, token.SEMICOLON,
		token.WHITESPACE, token.RIGHT_CURLY, token.EOF,
	}
	got := types(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTokenizeAtRule(t *testing.T) {
	toks := allTokens(`@import "a.css";`)
	if toks[0].Type != token.AT_KEYWORD || toks[0].Value != "import" {
		t.Fatalf("first token = %+v, want AT_KEYWORD import", toks[0])
	}
}

func TestTokenizeImportant(t *testing.T) {
	toks := allTokens("a{width:10px !important}")
	var found bool
	for i, tok := range toks {
		if tok.Type == token.DELIM && tok.Value == "!" {
			found = true
			if toks[i+1].Type != token.IDENT || toks[i+1].Value != "important" {
				t.Fatalf("expected IDENT important after '!' delim, got %+v", toks[i+1])
			}
		}
	}
	if !found {
		t.Fatal("expected a '!' delim token")
	}
}

func TestTokenizeDimensionAndPercentage(t *testing.T) {
	toks := allTokens("a{b:1.5e2%}")
	var gotPercentage bool
	for _, tok := range toks {
		if tok.Type == token.PERCENTAGE {
			gotPercentage = true
			if tok.Num != 150 {
				t.Errorf("percentage value = %v, want 150", tok.Num)
			}
		}
	}
	if !gotPercentage {
		t.Fatal("expected a PERCENTAGE token")
	}
}

func TestTokenizeURL(t *testing.T) {
	toks := allTokens("url( foo.png )")
	if toks[0].Type != token.URL || toks[0].Value != "foo.png" {
		t.Fatalf("got %+v, want URL foo.png", toks[0])
	}
}

func TestTokenizeURLWithQuotedArgBecomesFunction(t *testing.T) {
	toks := allTokens(`url("foo.png")`)
	if toks[0].Type != token.FUNCTION || toks[0].Value != "url" {
		t.Fatalf("got %+v, want FUNCTION url", toks[0])
	}
}

func TestTokenizeHash(t *testing.T) {
	toks := allTokens("#abc")
	if toks[0].Type != token.HASH || toks[0].HashFlag != token.HashID || toks[0].Value != "abc" {
		t.Fatalf("got %+v, want HASH id abc", toks[0])
	}

	toks = allTokens("#0a")
	if toks[0].Type != token.HASH || toks[0].HashFlag != token.HashUnrestricted {
		t.Fatalf("got %+v, want HASH unrestricted", toks[0])
	}
}

func TestTokenizeUnterminatedComment(t *testing.T) {
	sink := &errsink.CollectingSink{}
	toks := allTokens("a/* oops", WithSink(sink))
	if len(sink.Errors) != 1 {
		t.Fatalf("expected 1 parse error, got %d", len(sink.Errors))
	}
	if toks[len(toks)-1].Type != token.EOF {
		t.Fatalf("expected tokenizer to still reach EOF, got %+v", toks)
	}
}

func TestTokenizeBadStringOnUnescapedNewline(t *testing.T) {
	toks := allTokens("'\\0a foo'")
	if toks[0].Type != token.STRING || toks[0].Value != "\nfoo" {
		t.Fatalf("got %+v, want STRING with escaped newline decoded into the value", toks[0])
	}

	toks2 := allTokens("'foo\nbar'")
	if toks2[0].Type != token.BAD_STRING {
		t.Fatalf("got %+v, want BAD_STRING", toks2[0])
	}
	if toks2[1].Type != token.WHITESPACE {
		t.Fatalf("expected reconsumed newline to retokenize as WHITESPACE, got %+v", toks2[1])
	}
}

func TestTokenizeDanglingExponent(t *testing.T) {
	toks := allTokens("10E-")
	if toks[0].Type != token.DIMENSION || toks[0].Unit != "E-" {
		t.Fatalf("got %+v, want DIMENSION with unit E- (dangling exponent not consumed as part of the number)", toks[0])
	}
}

func TestTokenizeCustomProperty(t *testing.T) {
	toks := allTokens("a{--b:1}")
	var foundCustom bool
	for _, tok := range toks {
		if tok.Type == token.IDENT && tok.Value == "--b" {
			foundCustom = true
		}
	}
	if !foundCustom {
		t.Fatal("expected IDENT --b")
	}
}

func TestTokenizeCDOCDC(t *testing.T) {
	toks := allTokens("<!-- -->")
	if toks[0].Type != token.CDO {
		t.Fatalf("got %+v, want CDO", toks[0])
	}
}

func TestTokenizeEscapedIdent(t *testing.T) {
	toks := allTokens(`\61 bc`)
	if toks[0].Type != token.IDENT || toks[0].Value != "abc" {
		t.Fatalf("got %+v, want IDENT abc", toks[0])
	}
}

func TestTokenizeCommentsDiscardedByDefault(t *testing.T) {
	toks := allTokens("a/* hi */b")
	want := []token.Type{token.IDENT, token.IDENT, token.EOF}
	got := types(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenizeCommentsPreservedWithOption(t *testing.T) {
	toks := allTokens("a/* hi */b", WithComments(true))
	want := []token.Type{token.IDENT, token.COMMENT, token.IDENT, token.EOF}
	got := types(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenizeFromUTF16(t *testing.T) {
	// "a{}" encoded big-endian with a leading BOM.
	b := []byte{0xFE, 0xFF, 0x00, 'a', 0x00, '{', 0x00, '}'}
	tz, err := NewFromUTF16(b, unicode.UseBOM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	toks := []token.Token{}
	for {
		tok := tz.Next()
		toks = append(toks, tok)
		if tok.IsEOF() {
			break
		}
	}
	want := []token.Type{token.IDENT, token.LEFT_CURLY, token.RIGHT_CURLY, token.EOF}
	got := types(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
