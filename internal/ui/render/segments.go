package render

import "strings"

// TextStyleKind describes a semantic style for rendered message segments.
type TextStyleKind int

const (
	TextStylePlain TextStyleKind = iota
	TextStyleEmphasis
	TextStyleStrong
	TextStyleStrike
	TextStyleCode
	TextStyleCodeBlock
	TextStyleLink
	TextStyleHeading
	TextStyleRule
	TextStyleHighlight
	TextStyleQuote
	TextStyleMarker
)

// StyledTextSegment is a chunk of text with an associated style.
type StyledTextSegment struct {
	Text  string
	Style TextStyleKind
}

func joinSegmentsText(segments []StyledTextSegment) string {
	if len(segments) == 0 {
		return ""
	}
	total := 0
	for _, seg := range segments {
		total += len(seg.Text)
	}
	buf := make([]byte, 0, total)
	for _, seg := range segments {
		buf = append(buf, seg.Text...)
	}
	return string(buf)
}

// PlainText joins rendered lines without styling, one line per row.
func PlainText(lines [][]StyledTextSegment) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(strings.TrimRight(joinSegmentsText(line), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// splitSegmentLines breaks segments at '\n'. The result always has at least
// one (possibly empty) line.
func splitSegmentLines(segments []StyledTextSegment) [][]StyledTextSegment {
	lines := [][]StyledTextSegment{nil}
	for _, seg := range segments {
		parts := strings.Split(seg.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part != "" {
				last := len(lines) - 1
				lines[last] = append(lines[last], StyledTextSegment{Text: part, Style: seg.Style})
			}
		}
	}
	return lines
}

func prepend(prefix []StyledTextSegment, line []StyledTextSegment) []StyledTextSegment {
	out := make([]StyledTextSegment, 0, len(prefix)+len(line))
	out = append(out, prefix...)
	return append(out, line...)
}
