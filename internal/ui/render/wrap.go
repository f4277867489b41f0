package render

import (
	"strings"

	"github.com/kk-code-lab/chatmd/internal/textutil"
	"github.com/rivo/uniseg"
)

func segmentsWidth(segments []StyledTextSegment) int {
	width := 0
	for _, seg := range segments {
		width += textutil.DisplayWidth(seg.Text)
	}
	return width
}

// cleanSegments expands tabs across segment boundaries and sanitizes each
// segment for terminal output.
func cleanSegments(segments []StyledTextSegment, tabWidth int) []StyledTextSegment {
	if len(segments) == 0 {
		return segments
	}
	out := make([]StyledTextSegment, 0, len(segments))
	column := 0
	for _, seg := range segments {
		text := textutil.ExpandTabsFrom(seg.Text, tabWidth, column)
		text = textutil.SanitizeTerminalText(text)
		column += textutil.DisplayWidth(text)
		out = append(out, StyledTextSegment{Text: text, Style: seg.Style})
	}
	return out
}

// wrapSegmentsToWidth breaks one display line into lines of at most width
// columns on grapheme boundaries. Clusters wider than width are dropped.
func wrapSegmentsToWidth(segments []StyledTextSegment, width int) [][]StyledTextSegment {
	if width <= 0 {
		return [][]StyledTextSegment{segments}
	}
	var lines [][]StyledTextSegment
	var current []StyledTextSegment
	currentWidth := 0

	flush := func() {
		line := make([]StyledTextSegment, len(current))
		copy(line, current)
		lines = append(lines, line)
		current = current[:0]
		currentWidth = 0
	}

	for _, seg := range segments {
		if seg.Text == "" {
			continue
		}
		var buf strings.Builder
		g := uniseg.NewGraphemes(seg.Text)
		for g.Next() {
			cluster := g.Str()
			w := textutil.DisplayWidth(cluster)
			if currentWidth > 0 && currentWidth+w > width {
				if buf.Len() > 0 {
					current = append(current, StyledTextSegment{Text: buf.String(), Style: seg.Style})
					buf.Reset()
				}
				flush()
			}
			if w > width {
				continue
			}
			buf.WriteString(cluster)
			currentWidth += w
		}
		if buf.Len() > 0 {
			current = append(current, StyledTextSegment{Text: buf.String(), Style: seg.Style})
		}
	}
	if len(current) > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// truncateSegments cuts a line to width columns and appends ellipsis when
// something was dropped.
func truncateSegments(segments []StyledTextSegment, width int, ellipsis string) []StyledTextSegment {
	if width <= 0 {
		return nil
	}
	if segmentsWidth(segments) <= width {
		return segments
	}
	return endWithEllipsis(segments, width, ellipsis)
}

// endWithEllipsis keeps as much of segments as fits in width together with
// a trailing ellipsis.
func endWithEllipsis(segments []StyledTextSegment, width int, ellipsis string) []StyledTextSegment {
	ellWidth := textutil.DisplayWidth(ellipsis)
	if ellWidth >= width {
		return []StyledTextSegment{{Text: textutil.Truncate(ellipsis, width, ""), Style: TextStylePlain}}
	}
	out := cutSegments(segments, width-ellWidth)
	return append(out, StyledTextSegment{Text: ellipsis, Style: TextStylePlain})
}

func cutSegments(segments []StyledTextSegment, target int) []StyledTextSegment {
	var out []StyledTextSegment
	used := 0
	for _, seg := range segments {
		var buf strings.Builder
		g := uniseg.NewGraphemes(seg.Text)
		for g.Next() {
			cluster := g.Str()
			w := textutil.DisplayWidth(cluster)
			if used+w > target {
				if buf.Len() > 0 {
					out = append(out, StyledTextSegment{Text: buf.String(), Style: seg.Style})
				}
				return out
			}
			buf.WriteString(cluster)
			used += w
		}
		if buf.Len() > 0 {
			out = append(out, StyledTextSegment{Text: buf.String(), Style: seg.Style})
		}
	}
	return out
}

// wrapIndented wraps each line to width and prefixes the result: first on
// the very first output line, rest on every other one.
func wrapIndented(lines [][]StyledTextSegment, width int, first, rest []StyledTextSegment) [][]StyledTextSegment {
	inner := width
	if width > 0 {
		inner = width - segmentsWidth(first)
		if inner < 1 {
			inner = 1
		}
	}
	var out [][]StyledTextSegment
	for _, line := range lines {
		for _, wrapped := range wrapSegmentsToWidth(line, inner) {
			prefix := rest
			if len(out) == 0 {
				prefix = first
			}
			out = append(out, prepend(prefix, wrapped))
		}
	}
	return out
}
