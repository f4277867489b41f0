package render

import "github.com/kk-code-lab/chatmd/internal/markdown"

// StyleInline renders text with its resolved spans, dropping delimiter bytes
// and styling span contents by kind. Text outside any span keeps base. The
// result is split into display lines at '\n'.
func StyleInline(text string, spans []markdown.Span, base TextStyleKind) [][]StyledTextSegment {
	return splitSegmentLines(inlineSegments(text, spans, base, false))
}

func inlineSegments(text string, spans []markdown.Span, base TextStyleKind, showURLs bool) []StyledTextSegment {
	var segments []StyledTextSegment
	emit := func(s string, style TextStyleKind) {
		if s != "" {
			segments = append(segments, StyledTextSegment{Text: s, Style: style})
		}
	}

	pos := 0
	for _, span := range spans {
		start, end := span.Inner()
		if span.Start < pos || span.End > len(text) || start > end {
			continue
		}
		emit(text[pos:span.Start], base)
		emit(text[start:end], styleForSpan(span.Kind, base))
		if span.Kind == markdown.SpanLink && showURLs {
			emit(" (", base)
			emit(span.URL, TextStyleLink)
			emit(")", base)
		}
		pos = span.End
	}
	emit(text[pos:], base)
	return segments
}

func styleForSpan(kind markdown.SpanKind, base TextStyleKind) TextStyleKind {
	switch kind {
	case markdown.SpanBold:
		return TextStyleStrong
	case markdown.SpanItalic:
		return TextStyleEmphasis
	case markdown.SpanStrikethrough:
		return TextStyleStrike
	case markdown.SpanCode:
		return TextStyleCode
	case markdown.SpanLink:
		return TextStyleLink
	case markdown.SpanHighlight:
		return TextStyleHighlight
	default:
		return base
	}
}
