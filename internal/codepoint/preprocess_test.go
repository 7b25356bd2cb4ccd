package codepoint

import (
	"testing"

	"golang.org/x/text/encoding/unicode"
)

func TestDecodeUTF16BigEndianWithBOM(t *testing.T) {
	// U+FEFF (BOM) + "a{}" encoded big-endian.
	b := []byte{0xFE, 0xFF, 0x00, 'a', 0x00, '{', 0x00, '}'}
	got, err := DecodeUTF16(b, unicode.UseBOM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a{}" {
		t.Fatalf("got %q, want %q", got, "a{}")
	}
}

func TestDecodeUTF16AstralSurrogatePair(t *testing.T) {
	hi, lo := EncodeSurrogatePair(0x1F600)
	b := []byte{
		byte(hi >> 8), byte(hi),
		byte(lo >> 8), byte(lo),
	}
	got, err := DecodeUTF16(b, unicode.IgnoreBOM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	runes := []rune(got)
	if len(runes) != 1 || runes[0] != 0x1F600 {
		t.Fatalf("got %q (%v), want single rune U+1F600", got, runes)
	}
}
