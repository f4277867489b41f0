package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const DefaultTabWidth = 4

// DisplayWidth reports the terminal column width of text. Each grapheme
// cluster is measured as a unit, so ZWJ emoji sequences and flags take two
// columns rather than one per rune.
func DisplayWidth(text string) int {
	if isPrintableASCII(text) {
		return len(text)
	}
	width := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		width += clusterWidth(g.Str())
	}
	return width
}

func clusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 1 {
		w = 1
	}
	return w
}

// ExpandTabs replaces tab characters with spaces respecting terminal column width.
func ExpandTabs(text string, tabWidth int) string {
	return ExpandTabsFrom(text, tabWidth, 0)
}

// ExpandTabsFrom expands tabs as if text began at column start. A newline
// resets the column.
func ExpandTabsFrom(text string, tabWidth, start int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var builder strings.Builder
	column := start
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		switch cluster {
		case "\t":
			spaces := tabWidth - (column % tabWidth)
			builder.WriteString(strings.Repeat(" ", spaces))
			column += spaces
			continue
		case "\n", "\r\n":
			builder.WriteString(cluster)
			column = 0
			continue
		}
		builder.WriteString(cluster)
		column += clusterWidth(cluster)
	}
	return builder.String()
}

// Truncate cuts text to at most width columns on grapheme boundaries and
// appends ellipsis when anything was dropped. The ellipsis counts toward
// width; if it does not fit it is omitted.
func Truncate(text string, width int, ellipsis string) string {
	if width <= 0 {
		return ""
	}
	if DisplayWidth(text) <= width {
		return text
	}
	budget := width - DisplayWidth(ellipsis)
	if ellipsis == "" || budget < 0 {
		budget = width
		ellipsis = ""
	}
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		w := clusterWidth(cluster)
		if used+w > budget {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	b.WriteString(ellipsis)
	return b.String()
}

func isPrintableASCII(text string) bool {
	for i := 0; i < len(text); i++ {
		if c := text[i]; c < 0x20 || c >= 0x7f {
			return false
		}
	}
	return true
}
