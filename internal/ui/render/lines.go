package render

import (
	"fmt"
	"strings"

	"github.com/kk-code-lab/chatmd/internal/markdown"
	"github.com/kk-code-lab/chatmd/internal/textutil"
)

const (
	defaultRuleWidth = 40
	codeIndent       = "    "
	bulletMarker     = "• "
	quoteMarker      = "│ "
)

// Options controls how a Document is laid out as terminal lines.
type Options struct {
	// MaxWidth wraps text and clamps tables to this many columns. Zero means unlimited.
	MaxWidth int
	// TabWidth is the tab stop distance used when expanding tabs.
	TabWidth int
	// ShowLinkURLs appends " (url)" after each link label.
	ShowLinkURLs bool
	// Ellipsis marks truncated table cells. Defaults to "…" when empty.
	Ellipsis string
	// MaxCellLines limits how many wrapped lines a table cell may emit. Zero means unlimited.
	MaxCellLines int
}

func DefaultOptions() Options {
	return Options{
		TabWidth:     textutil.DefaultTabWidth,
		ShowLinkURLs: true,
		Ellipsis:     "…",
	}
}

func (o Options) normalized() Options {
	if o.TabWidth <= 0 {
		o.TabWidth = textutil.DefaultTabWidth
	}
	if o.Ellipsis == "" {
		o.Ellipsis = "…"
	}
	if o.MaxWidth < 0 {
		o.MaxWidth = 0
	}
	return o
}

// Lines lays out doc as styled display lines. Blocks are separated by one
// empty line.
func Lines(doc markdown.Document, opts Options) [][]StyledTextSegment {
	opts = opts.normalized()
	var lines [][]StyledTextSegment
	for _, node := range doc.Nodes {
		rendered := renderNode(node, opts)
		if len(rendered) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, nil)
		}
		lines = append(lines, rendered...)
	}
	return lines
}

func renderNode(node markdown.Node, opts Options) [][]StyledTextSegment {
	switch b := node.Block.(type) {
	case markdown.Heading:
		prefix := []StyledTextSegment{{Text: strings.Repeat("#", b.Level) + " ", Style: TextStyleHeading}}
		content := inlineLines(b.Text, node.SpansFor(markdown.FieldText, 0, 0), TextStyleHeading, opts)
		return wrapIndented(content, opts.MaxWidth, prefix, indentFor(prefix))
	case markdown.Paragraph:
		content := inlineLines(b.Text, node.SpansFor(markdown.FieldText, 0, 0), TextStylePlain, opts)
		return wrapIndented(content, opts.MaxWidth, nil, nil)
	case markdown.CodeBlock:
		return renderCodeBlock(b, opts)
	case markdown.UnorderedList:
		return renderList(node, b.Items, func(int) string { return bulletMarker }, opts)
	case markdown.OrderedList:
		return renderList(node, b.Items, func(i int) string { return fmt.Sprintf("%d. ", i+1) }, opts)
	case markdown.BlockQuote:
		prefix := []StyledTextSegment{{Text: quoteMarker, Style: TextStyleMarker}}
		content := inlineLines(b.Content, node.SpansFor(markdown.FieldContent, 0, 0), TextStyleQuote, opts)
		return wrapIndented(content, opts.MaxWidth, prefix, prefix)
	case markdown.HorizontalRule:
		width := opts.MaxWidth
		if width <= 0 {
			width = defaultRuleWidth
		}
		return [][]StyledTextSegment{{{Text: strings.Repeat("─", width), Style: TextStyleRule}}}
	case markdown.Table:
		return renderTable(node, b, opts)
	default:
		return nil
	}
}

func inlineLines(text string, spans []markdown.Span, base TextStyleKind, opts Options) [][]StyledTextSegment {
	lines := splitSegmentLines(inlineSegments(text, spans, base, opts.ShowLinkURLs))
	for i, line := range lines {
		lines[i] = cleanSegments(line, opts.TabWidth)
	}
	return lines
}

func renderCodeBlock(b markdown.CodeBlock, opts Options) [][]StyledTextSegment {
	prefix := []StyledTextSegment{{Text: codeIndent, Style: TextStyleCodeBlock}}
	var lines [][]StyledTextSegment
	if b.Language != "" {
		label := textutil.SanitizeTerminalText("[" + b.Language + "]")
		lines = append(lines, []StyledTextSegment{{Text: codeIndent + label, Style: TextStyleCode}})
	}
	if b.Code == "" {
		return lines
	}
	var code [][]StyledTextSegment
	for _, line := range strings.Split(b.Code, "\n") {
		code = append(code, cleanSegments([]StyledTextSegment{{Text: line, Style: TextStyleCodeBlock}}, opts.TabWidth))
	}
	for _, line := range code {
		lines = append(lines, wrapIndented([][]StyledTextSegment{line}, opts.MaxWidth, prefix, prefix)...)
	}
	return lines
}

func renderList(node markdown.Node, items []string, marker func(int) string, opts Options) [][]StyledTextSegment {
	var lines [][]StyledTextSegment
	for i, item := range items {
		first := []StyledTextSegment{{Text: marker(i), Style: TextStyleMarker}}
		content := inlineLines(item, node.SpansFor(markdown.FieldItem, 0, i), TextStylePlain, opts)
		lines = append(lines, wrapIndented(content, opts.MaxWidth, first, indentFor(first))...)
	}
	return lines
}

func indentFor(prefix []StyledTextSegment) []StyledTextSegment {
	return []StyledTextSegment{{Text: strings.Repeat(" ", segmentsWidth(prefix))}}
}
