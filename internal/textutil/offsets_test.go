package textutil

import (
	"testing"
	"unicode/utf16"
	"unicode/utf8"
)

func TestOffsetIndexMatchesDirectCounting(t *testing.T) {
	inputs := []string{
		"",
		"plain ascii",
		"żółw **ß**",
		"a\U0001F600b\U0001F469\u200d\U0001F467c",
		"\xff\xfe**x**",
		"日本語テキスト",
	}
	for _, text := range inputs {
		idx := NewOffsetIndex(text)
		for off := 0; off <= len(text); off++ {
			if !utf8.RuneStart(byteAt(text, off)) {
				continue
			}
			prefix := text[:off]
			if got, want := idx.Rune(off), utf8.RuneCountInString(prefix); got != want {
				t.Fatalf("%q: Rune(%d)=%d want %d", text, off, got, want)
			}
			if got, want := idx.UTF16(off), len(utf16.Encode([]rune(prefix))); got != want {
				t.Fatalf("%q: UTF16(%d)=%d want %d", text, off, got, want)
			}
		}
	}
}

func TestOffsetIndexClampsAndRoundsDown(t *testing.T) {
	text := "a\U0001F600b"
	idx := NewOffsetIndex(text)
	if got := idx.Rune(-3); got != 0 {
		t.Fatalf("Rune(-3)=%d want 0", got)
	}
	if got := idx.Rune(100); got != 3 {
		t.Fatalf("Rune(100)=%d want 3", got)
	}
	if got := idx.UTF16(100); got != 4 {
		t.Fatalf("UTF16(100)=%d want 4", got)
	}
	// offset 2 is inside the 4-byte emoji starting at 1
	if got := idx.Rune(2); got != 1 {
		t.Fatalf("Rune(2)=%d want 1", got)
	}
	if got := idx.UTF16(3); got != 1 {
		t.Fatalf("UTF16(3)=%d want 1", got)
	}
	if got := idx.UTF16(5); got != 3 {
		t.Fatalf("UTF16(5)=%d want 3", got)
	}
}

// byteAt returns a rune-start byte for the end offset so the loop checks it.
func byteAt(text string, off int) byte {
	if off >= len(text) {
		return 0
	}
	return text[off]
}
