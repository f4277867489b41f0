package textutil

import (
	"sort"
	"unicode/utf8"
)

// OffsetIndex converts byte offsets of one string to rune and UTF-16 code
// unit offsets. Span offsets are bytes; hosts that index strings by code
// point or by UTF-16 unit translate through this.
type OffsetIndex struct {
	asciiPrefix int
	length      int
	// starts holds the byte offset of every rune past the ASCII prefix,
	// followed by len(text). utf16Before[i] is the UTF-16 length of
	// text[:starts[i]].
	starts      []int
	utf16Before []int
}

// NewOffsetIndex precomputes rune boundaries of text. Invalid bytes count as
// one rune (U+FFFD) each, matching range-over-string.
func NewOffsetIndex(text string) *OffsetIndex {
	idx := &OffsetIndex{length: len(text)}
	i := 0
	for i < len(text) && text[i] < utf8.RuneSelf {
		i++
	}
	idx.asciiPrefix = i
	units := i
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		idx.starts = append(idx.starts, i)
		idx.utf16Before = append(idx.utf16Before, units)
		if r >= 0x10000 {
			units += 2
		} else {
			units++
		}
		i += size
	}
	idx.starts = append(idx.starts, len(text))
	idx.utf16Before = append(idx.utf16Before, units)
	return idx
}

func (idx *OffsetIndex) clamp(off int) int {
	if off < 0 {
		return 0
	}
	if off > idx.length {
		return idx.length
	}
	return off
}

// position returns the number of rune starts strictly before off past the
// ASCII prefix, rounding offsets inside a rune down to its start.
func (idx *OffsetIndex) position(off int) int {
	n := sort.SearchInts(idx.starts, off)
	if n < len(idx.starts) && idx.starts[n] == off {
		return n
	}
	return n - 1
}

// Rune converts a byte offset to a rune offset. Offsets inside a multi-byte
// rune map to that rune.
func (idx *OffsetIndex) Rune(off int) int {
	off = idx.clamp(off)
	if off <= idx.asciiPrefix {
		return off
	}
	return idx.asciiPrefix + idx.position(off)
}

// UTF16 converts a byte offset to a UTF-16 code unit offset.
func (idx *OffsetIndex) UTF16(off int) int {
	off = idx.clamp(off)
	if off <= idx.asciiPrefix {
		return off
	}
	return idx.utf16Before[idx.position(off)]
}
