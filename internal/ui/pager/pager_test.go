package pager

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/chatmd/internal/markdown"
	"github.com/kk-code-lab/chatmd/internal/ui/input"
	"github.com/kk-code-lab/chatmd/internal/ui/render"
)

func newTestPager(t *testing.T, text string, opts markdown.Options, w, h int) (*Pager, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	p := NewPager(render.NewRenderer(screen), markdown.BuildWith(text, opts), render.DefaultOptions(), "", w, h)
	return p, screen
}

func rowText(screen tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(mainc)
	}
	return strings.TrimRight(b.String(), " ")
}

const fiveParagraphs = "l0\n\nl1\n\nl2\n\nl3\n\nl4"

func TestPagerScrolling(t *testing.T) {
	p, _ := newTestPager(t, fiveParagraphs, markdown.DefaultOptions(), 20, 4)
	if p.LineCount() != 9 {
		t.Fatalf("expected 9 lines, got %d", p.LineCount())
	}

	steps := []struct {
		action  input.Action
		offset  int
		changed bool
	}{
		{input.ScrollUpAction{}, 0, false},
		{input.ScrollDownAction{}, 1, true},
		{input.ScrollBottomAction{}, 6, true},
		{input.ScrollDownAction{}, 6, false},
		{input.ScrollPageUpAction{}, 3, true},
		{input.ScrollPageDownAction{}, 6, true},
		{input.ScrollTopAction{}, 0, true},
		{struct{}{}, 0, false},
	}
	for i, step := range steps {
		changed := p.Apply(step.action)
		if p.Offset() != step.offset || changed != step.changed {
			t.Fatalf("step %d (%T): offset=%d changed=%v, want %d %v", i, step.action, p.Offset(), changed, step.offset, step.changed)
		}
	}
}

func TestPagerDraw(t *testing.T) {
	p, screen := newTestPager(t, fiveParagraphs, markdown.DefaultOptions(), 40, 4)
	p.Apply(input.ScrollDownAction{})
	p.Apply(input.ScrollDownAction{})

	p.Draw()

	want := []string{"l1", "", "l2"}
	for y, line := range want {
		if got := rowText(screen, y, 40); got != line {
			t.Fatalf("row %d = %q, want %q", y, got, line)
		}
	}
	status := rowText(screen, 3, 40)
	if !strings.HasPrefix(status, " 3-5/9 lines") {
		t.Fatalf("status row = %q", status)
	}
}

func TestPagerResizeRewraps(t *testing.T) {
	p, _ := newTestPager(t, "abcdefghij", markdown.DefaultOptions(), 20, 5)
	if p.LineCount() != 1 {
		t.Fatalf("expected one line at width 20, got %d", p.LineCount())
	}
	if !p.Apply(input.ResizeAction{Width: 5, Height: 5}) {
		t.Fatalf("resize should report a change")
	}
	if p.LineCount() != 2 {
		t.Fatalf("expected two lines at width 5, got %d", p.LineCount())
	}
}

func TestPagerToggleLinkURLs(t *testing.T) {
	p, screen := newTestPager(t, "see [docs](u)", markdown.Options{Resolver: markdown.ResolveRich}, 30, 3)
	p.Draw()
	if got := rowText(screen, 0, 30); got != "see docs (u)" {
		t.Fatalf("row 0 = %q", got)
	}
	p.Apply(input.ToggleLinkURLsAction{})
	p.Draw()
	if got := rowText(screen, 0, 30); got != "see docs" {
		t.Fatalf("row 0 after toggle = %q", got)
	}
}

func TestPagerEmptyDocument(t *testing.T) {
	p, screen := newTestPager(t, "", markdown.DefaultOptions(), 30, 3)
	p.Apply(input.ScrollBottomAction{})
	if p.Offset() != 0 {
		t.Fatalf("empty document scrolled to %d", p.Offset())
	}
	p.Draw()
	if got := rowText(screen, 2, 30); !strings.HasPrefix(got, " 0-0/0 lines") {
		t.Fatalf("status row = %q", got)
	}
}
