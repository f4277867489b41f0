package render

import (
	"strings"

	"github.com/kk-code-lab/chatmd/internal/markdown"
)

const minColumnWidth = 3

type tableLayout struct {
	widths []int
	header []tableCell
	rows   [][]tableCell
}

type tableBorders struct {
	topLeft, topSep, topRight          string
	midLeft, midSep, midRight          string
	bottomLeft, bottomSep, bottomRight string
	vertical                           string
}

func defaultTableBorders() tableBorders {
	return tableBorders{
		topLeft:     "┌",
		topSep:      "┬",
		topRight:    "┐",
		midLeft:     "├",
		midSep:      "┼",
		midRight:    "┤",
		bottomLeft:  "└",
		bottomSep:   "┴",
		bottomRight: "┘",
		vertical:    "│",
	}
}

type tableCell struct {
	lines []cellLine
}

type cellLine struct {
	segments []StyledTextSegment
	width    int
}

func newCellLine(segments []StyledTextSegment) cellLine {
	return cellLine{segments: segments, width: segmentsWidth(segments)}
}

func renderTable(node markdown.Node, tbl markdown.Table, opts Options) [][]StyledTextSegment {
	if len(tbl.Headers) == 0 {
		return nil
	}
	layout := buildTableLayout(node, tbl, opts)
	return renderTableLayout(layout, tbl.Align, defaultTableBorders())
}

func buildTableLayout(node markdown.Node, tbl markdown.Table, opts Options) tableLayout {
	header := make([]tableCell, len(tbl.Headers))
	for i, h := range tbl.Headers {
		header[i] = makeTableCell(h, node.SpansFor(markdown.FieldHeader, 0, i), TextStyleStrong, opts)
	}
	rows := make([][]tableCell, len(tbl.Rows))
	for r, row := range tbl.Rows {
		rows[r] = make([]tableCell, len(tbl.Headers))
		for c := range tbl.Headers {
			text := ""
			if c < len(row) {
				text = row[c]
			}
			rows[r][c] = makeTableCell(text, node.SpansFor(markdown.FieldCell, r, c), TextStylePlain, opts)
		}
	}

	widths := computeColumnWidths(header, rows)
	widths = clampColumnWidths(widths, opts.MaxWidth)

	for i := range header {
		header[i] = wrapCellLines(header[i], widths[i], opts)
	}
	for r := range rows {
		for c := range rows[r] {
			rows[r][c] = wrapCellLines(rows[r][c], widths[c], opts)
		}
	}
	return tableLayout{widths: widths, header: header, rows: rows}
}

func makeTableCell(text string, spans []markdown.Span, base TextStyleKind, opts Options) tableCell {
	segments := inlineSegments(text, spans, base, opts.ShowLinkURLs)
	return tableCell{lines: []cellLine{newCellLine(cleanSegments(segments, opts.TabWidth))}}
}

func renderTableLayout(layout tableLayout, align []markdown.Alignment, borders tableBorders) [][]StyledTextSegment {
	hCells := make([]string, len(layout.widths))
	for i, w := range layout.widths {
		hCells[i] = strings.Repeat("─", w+2)
	}
	border := func(left, sep, right string) []StyledTextSegment {
		return []StyledTextSegment{{Text: left + strings.Join(hCells, sep) + right, Style: TextStyleMarker}}
	}

	var lines [][]StyledTextSegment
	lines = append(lines, border(borders.topLeft, borders.topSep, borders.topRight))
	for i := 0; i < cellBlockHeight(layout.header); i++ {
		lines = append(lines, renderTableRow(layout.header, i, layout.widths, align, borders.vertical))
	}
	lines = append(lines, border(borders.midLeft, borders.midSep, borders.midRight))
	for _, row := range layout.rows {
		for i := 0; i < cellBlockHeight(row); i++ {
			lines = append(lines, renderTableRow(row, i, layout.widths, align, borders.vertical))
		}
	}
	lines = append(lines, border(borders.bottomLeft, borders.bottomSep, borders.bottomRight))
	return lines
}

func computeColumnWidths(header []tableCell, rows [][]tableCell) []int {
	widths := make([]int, len(header))
	update := func(cell tableCell, idx int) {
		for _, line := range cell.lines {
			if line.width > widths[idx] {
				widths[idx] = line.width
			}
		}
	}
	for i, cell := range header {
		update(cell, i)
	}
	for _, row := range rows {
		for i := range widths {
			if i < len(row) {
				update(row[i], i)
			}
		}
	}
	return widths
}

// clampColumnWidths narrows the widest column one step at a time until the
// table fits maxWidth or every column is at minColumnWidth.
func clampColumnWidths(widths []int, maxWidth int) []int {
	if maxWidth <= 0 || len(widths) == 0 {
		return widths
	}
	total := tableWidth(widths)
	for total > maxWidth {
		idx := widestColumn(widths, minColumnWidth)
		if idx == -1 {
			break
		}
		widths[idx]--
		total--
	}
	return widths
}

func wrapCellLines(cell tableCell, width int, opts Options) tableCell {
	if width <= 0 {
		width = 1
	}
	var wrapped []cellLine
	for _, line := range cell.lines {
		for _, segLine := range wrapSegmentsToWidth(line.segments, width) {
			wrapped = append(wrapped, newCellLine(segLine))
		}
	}
	if len(wrapped) == 0 {
		wrapped = []cellLine{{}}
	}
	if opts.MaxCellLines > 0 && len(wrapped) > opts.MaxCellLines {
		wrapped = wrapped[:opts.MaxCellLines]
		last := wrapped[len(wrapped)-1]
		wrapped[len(wrapped)-1] = newCellLine(endWithEllipsis(last.segments, width, opts.Ellipsis))
	}
	return tableCell{lines: wrapped}
}

func widestColumn(widths []int, minWidth int) int {
	maxIdx := -1
	maxVal := minWidth
	for i, w := range widths {
		if w > maxVal {
			maxVal = w
			maxIdx = i
		}
	}
	return maxIdx
}

func tableWidth(widths []int) int {
	if len(widths) == 0 {
		return 0
	}
	total := 0
	for _, w := range widths {
		total += w
	}
	// Each column gets 2 spaces + 1 border, plus one extra border at the end.
	return total + len(widths)*3 + 1
}

func renderTableRow(cells []tableCell, lineIdx int, widths []int, align []markdown.Alignment, vertical string) []StyledTextSegment {
	segments := []StyledTextSegment{{Text: vertical, Style: TextStyleMarker}, {Text: " "}}
	for i, cell := range cells {
		var line cellLine
		if lineIdx < len(cell.lines) {
			line = cell.lines[lineIdx]
		}
		segments = append(segments, alignCell(line, widths[i], alignAt(i, align))...)
		segments = append(segments, StyledTextSegment{Text: " "}, StyledTextSegment{Text: vertical, Style: TextStyleMarker})
		if i < len(cells)-1 {
			segments = append(segments, StyledTextSegment{Text: " "})
		}
	}
	return segments
}

func alignCell(line cellLine, width int, alignment markdown.Alignment) []StyledTextSegment {
	space := width - line.width
	if space < 0 {
		space = 0
	}
	left, right := 0, space
	switch alignment {
	case markdown.AlignCenter:
		left = space / 2
		right = space - left
	case markdown.AlignRight:
		left = space
		right = 0
	}

	segments := make([]StyledTextSegment, 0, 2+len(line.segments))
	if left > 0 {
		segments = append(segments, StyledTextSegment{Text: strings.Repeat(" ", left)})
	}
	segments = append(segments, line.segments...)
	if right > 0 {
		segments = append(segments, StyledTextSegment{Text: strings.Repeat(" ", right)})
	}
	return segments
}

func alignAt(idx int, align []markdown.Alignment) markdown.Alignment {
	if idx < len(align) {
		return align[idx]
	}
	return markdown.AlignDefault
}

func cellBlockHeight(cells []tableCell) int {
	max := 0
	for _, cell := range cells {
		if len(cell.lines) > max {
			max = len(cell.lines)
		}
	}
	if max == 0 {
		return 1
	}
	return max
}
