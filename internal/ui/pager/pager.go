package pager

import (
	"fmt"

	"github.com/kk-code-lab/chatmd/internal/markdown"
	"github.com/kk-code-lab/chatmd/internal/ui/input"
	"github.com/kk-code-lab/chatmd/internal/ui/render"
)

// Pager is the scrollable view of one rendered message. The last screen row
// is reserved for the status line.
type Pager struct {
	renderer *render.Renderer
	doc      markdown.Document
	opts     render.Options
	title    string
	lines    [][]render.StyledTextSegment
	offset   int
	width    int
	height   int
}

// NewPager lays doc out for a width x height viewport.
func NewPager(renderer *render.Renderer, doc markdown.Document, opts render.Options, title string, width, height int) *Pager {
	p := &Pager{
		renderer: renderer,
		doc:      doc,
		opts:     opts,
		title:    title,
	}
	p.Resize(width, height)
	return p
}

// Resize re-wraps the document when the width changes and keeps the scroll
// offset in range.
func (p *Pager) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width != p.width || p.lines == nil {
		p.width = width
		p.relayout()
	}
	p.height = height
	p.clampScroll()
}

func (p *Pager) relayout() {
	opts := p.opts
	if opts.MaxWidth <= 0 || opts.MaxWidth > p.width {
		opts.MaxWidth = p.width
	}
	p.lines = render.Lines(p.doc, opts)
	if p.lines == nil {
		p.lines = [][]render.StyledTextSegment{}
	}
}

func (p *Pager) contentRows() int {
	rows := p.height - 1
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (p *Pager) clampScroll() {
	if p.offset < 0 {
		p.offset = 0
	}
	maxOffset := len(p.lines) - p.contentRows()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.offset > maxOffset {
		p.offset = maxOffset
	}
}

// Apply executes one viewer action. It reports whether the view changed.
func (p *Pager) Apply(action input.Action) bool {
	before := p.offset
	switch a := action.(type) {
	case input.ScrollUpAction:
		p.offset--
	case input.ScrollDownAction:
		p.offset++
	case input.ScrollPageUpAction:
		p.offset -= p.contentRows()
	case input.ScrollPageDownAction:
		p.offset += p.contentRows()
	case input.ScrollTopAction:
		p.offset = 0
	case input.ScrollBottomAction:
		p.offset = len(p.lines)
	case input.ToggleLinkURLsAction:
		p.opts.ShowLinkURLs = !p.opts.ShowLinkURLs
		p.relayout()
		p.clampScroll()
		return true
	case input.ResizeAction:
		p.Resize(a.Width, a.Height)
		return true
	default:
		return false
	}
	p.clampScroll()
	return p.offset != before
}

// Draw paints the visible lines and the status line.
func (p *Pager) Draw() {
	rows := p.contentRows()
	p.renderer.DrawLines(p.lines, p.offset, rows)
	if p.height > 1 {
		p.renderer.DrawStatus(p.height-1, p.statusLine())
	}
}

func (p *Pager) Offset() int {
	return p.offset
}

func (p *Pager) LineCount() int {
	return len(p.lines)
}

func (p *Pager) statusLine() string {
	total := len(p.lines)
	start, end := 0, 0
	if total > 0 {
		start = p.offset + 1
		end = p.offset + p.contentRows()
		if end > total {
			end = total
		}
	}
	urls := "off"
	if p.opts.ShowLinkURLs {
		urls = "on"
	}
	status := fmt.Sprintf(" %d-%d/%d lines  %d blocks  urls:%s  ↑↓/PgUp/PgDn scroll  u urls  q exit", start, end, total, len(p.doc.Nodes), urls)
	if p.title != "" {
		status = " " + p.title + " ·" + status
	}
	return status
}
