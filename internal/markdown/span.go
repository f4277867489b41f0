package markdown

// SpanKind is the inline style a Span applies.
type SpanKind int

const (
	SpanBold SpanKind = iota
	SpanCode
	SpanStrikethrough
	SpanItalic
	SpanLink
	SpanHighlight
)

var spanKindNames = [...]string{
	SpanBold:          "bold",
	SpanCode:          "code",
	SpanStrikethrough: "strike",
	SpanItalic:        "italic",
	SpanLink:          "link",
	SpanHighlight:     "highlight",
}

func (k SpanKind) String() string {
	if k < 0 || int(k) >= len(spanKindNames) {
		return "unknown"
	}
	return spanKindNames[k]
}

// Span marks the byte range [Start, End) of the resolved text, delimiters
// included. URL is set for links only.
type Span struct {
	Kind  SpanKind
	Start int
	End   int
	URL   string
}

// Delims returns how many bytes at each end of the span are markup.
func (s Span) Delims() (lead, trail int) {
	switch s.Kind {
	case SpanBold, SpanStrikethrough, SpanHighlight:
		return 2, 2
	case SpanCode, SpanItalic:
		return 1, 1
	case SpanLink:
		// [label](url)
		return 1, len(s.URL) + 3
	default:
		return 0, 0
	}
}

// Inner returns the content range between the delimiters.
func (s Span) Inner() (start, end int) {
	lead, trail := s.Delims()
	return s.Start + lead, s.End - trail
}

func (s Span) Len() int { return s.End - s.Start }

func (s Span) overlaps(start, end int) bool {
	return s.Start < end && start < s.End
}
