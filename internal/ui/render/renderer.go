package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/chatmd/internal/textutil"
	"github.com/rivo/uniseg"
)

// Renderer paints rendered message lines onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  DefaultTheme(),
	}
}

func (r *Renderer) SetTheme(theme ColorTheme) {
	r.theme = theme
}

func (r *Renderer) Theme() ColorTheme {
	return r.theme
}

// DrawLines paints lines[top:] into screen rows [0, height). Rows past the
// last line are cleared.
func (r *Renderer) DrawLines(lines [][]StyledTextSegment, top, height int) {
	width, _ := r.screen.Size()
	base := r.theme.BaseStyle()
	for y := 0; y < height; y++ {
		r.clearRow(y, width, base)
		idx := top + y
		if idx < 0 || idx >= len(lines) {
			continue
		}
		r.drawSegments(0, y, width, lines[idx])
	}
}

// DrawStatus paints text across row y in the status style.
func (r *Renderer) DrawStatus(y int, text string) {
	width, _ := r.screen.Size()
	style := r.theme.StatusStyle()
	r.clearRow(y, width, style)
	text = textutil.Truncate(textutil.SanitizeTerminalText(text), width, "…")
	r.drawText(0, y, width, text, style)
}

func (r *Renderer) clearRow(y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

func (r *Renderer) drawSegments(startX, y, maxWidth int, segments []StyledTextSegment) {
	x := startX
	limit := startX + maxWidth
	base := r.theme.BaseStyle()
	for _, seg := range segments {
		if x >= limit {
			return
		}
		x = r.drawText(x, y, limit-x, seg.Text, r.theme.styleForSegment(base, seg.Style))
	}
}

// drawText draws one grapheme cluster per cell run and returns the next
// free column. A cluster that would cross maxWidth is not drawn.
func (r *Renderer) drawText(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		w := textutil.DisplayWidth(g.Str())
		if x-startX+w > maxWidth {
			break
		}
		r.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
	return x
}
