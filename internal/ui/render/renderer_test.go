package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/chatmd/internal/markdown"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func rowText(screen tcell.SimulationScreen, y, width int) string {
	var out []rune
	for x := 0; x < width; x++ {
		mainc, combc, _, w := screen.GetContent(x, y)
		out = append(out, mainc)
		out = append(out, combc...)
		if w > 1 {
			x += w - 1
		}
	}
	return string(out)
}

func TestDrawLinesPaintsStyledText(t *testing.T) {
	screen := newTestScreen(t, 20, 3)
	r := NewRenderer(screen)
	lines := Lines(markdown.Build("Hello **world**."), DefaultOptions())

	r.DrawLines(lines, 0, 2)

	if got := rowText(screen, 0, 20); got != "Hello world.        " {
		t.Fatalf("row 0 = %q", got)
	}
	if got := rowText(screen, 1, 20); got != "                    " {
		t.Fatalf("row 1 should be cleared, got %q", got)
	}
	_, _, style, _ := screen.GetContent(6, 0)
	if style != r.Theme().StyleFor(TextStyleStrong) {
		t.Fatalf("expected bold style at column 6")
	}
	_, _, plain, _ := screen.GetContent(0, 0)
	if plain != r.Theme().StyleFor(TextStylePlain) {
		t.Fatalf("expected plain style at column 0")
	}
}

func TestDrawLinesScrollsAndClips(t *testing.T) {
	screen := newTestScreen(t, 6, 2)
	r := NewRenderer(screen)
	lines := [][]StyledTextSegment{
		{{Text: "first"}},
		{{Text: "second line"}},
		{{Text: "日本語"}},
	}

	r.DrawLines(lines, 1, 2)

	if got := rowText(screen, 0, 6); got != "second" {
		t.Fatalf("row 0 = %q", got)
	}
	if got := rowText(screen, 1, 6); got != "日本語" {
		t.Fatalf("row 1 = %q", got)
	}
	mainc, _, _, width := screen.GetContent(2, 1)
	if mainc != '本' || width != 2 {
		t.Fatalf("expected wide rune at column 2, got %q width %d", mainc, width)
	}
}

func TestDrawLinesDropsClusterCrossingEdge(t *testing.T) {
	screen := newTestScreen(t, 3, 1)
	r := NewRenderer(screen)

	r.DrawLines([][]StyledTextSegment{{{Text: "a日本"}}}, 0, 1)

	if got := rowText(screen, 0, 3); got != "a日" {
		t.Fatalf("row = %q", got)
	}
}

func TestDrawStatus(t *testing.T) {
	screen := newTestScreen(t, 10, 2)
	r := NewRenderer(screen)

	r.DrawStatus(1, "status line too long")

	if got := rowText(screen, 1, 10); got != "status li…" {
		t.Fatalf("status row = %q", got)
	}
	_, _, style, _ := screen.GetContent(0, 1)
	if style != r.Theme().StatusStyle() {
		t.Fatalf("status row not drawn in status style")
	}
}

func TestStyleForKinds(t *testing.T) {
	theme := DefaultTheme()
	base := theme.BaseStyle()
	if theme.StyleFor(TextStylePlain) != base {
		t.Fatalf("plain text should use the base style")
	}
	kinds := []TextStyleKind{
		TextStyleStrong, TextStyleEmphasis, TextStyleStrike, TextStyleCode, TextStyleCodeBlock,
		TextStyleLink, TextStyleHeading, TextStyleRule, TextStyleHighlight, TextStyleQuote, TextStyleMarker,
	}
	for _, kind := range kinds {
		if theme.StyleFor(kind) == base {
			t.Fatalf("style kind %d renders identical to plain text", kind)
		}
	}
}
