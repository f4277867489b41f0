package markdown

import (
	"errors"
	"fmt"
	"strings"
)

// InvariantError describes one violated document or span invariant.
type InvariantError struct {
	Node  int // -1 when not tied to a node
	Field Field
	Item  int
	Msg   string
}

func (e *InvariantError) Error() string {
	if e.Node < 0 {
		return e.Msg
	}
	return fmt.Sprintf("node %d: %s", e.Node, e.Msg)
}

var delimiterBytes = map[SpanKind]string{
	SpanBold:          "**",
	SpanStrikethrough: "~~",
	SpanHighlight:     "==",
	SpanCode:          "`",
	SpanItalic:        "*",
}

// CheckSpans verifies that spans are in bounds, sorted, pairwise disjoint
// and bounded by their kind's delimiters in text.
func CheckSpans(text string, spans []Span) error {
	return errors.Join(checkSpans(-1, FieldText, 0, text, spans)...)
}

func checkSpans(node int, field Field, item int, text string, spans []Span) []error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, &InvariantError{Node: node, Field: field, Item: item, Msg: fmt.Sprintf(format, args...)})
	}
	prevEnd := 0
	for i, s := range spans {
		if s.Start < 0 || s.Start >= s.End || s.End > len(text) {
			fail("span %d (%s) has invalid range [%d,%d) for text of %d bytes", i, s.Kind, s.Start, s.End, len(text))
			continue
		}
		if s.Start < prevEnd {
			fail("span %d (%s) at %d overlaps or precedes previous span ending at %d", i, s.Kind, s.Start, prevEnd)
		}
		prevEnd = s.End
		lead, trail := s.Delims()
		if lead+trail > s.Len() {
			fail("span %d (%s) shorter than its delimiters", i, s.Kind)
			continue
		}
		raw := text[s.Start:s.End]
		if s.Kind == SpanLink {
			if !strings.HasPrefix(raw, "[") || !strings.HasSuffix(raw, "]("+s.URL+")") {
				fail("span %d (link) %q does not match [label](%s)", i, raw, s.URL)
			}
			continue
		}
		if d, ok := delimiterBytes[s.Kind]; ok {
			if !strings.HasPrefix(raw, d) || !strings.HasSuffix(raw, d) {
				fail("span %d (%s) %q not delimited by %q", i, s.Kind, raw, d)
			}
		}
	}
	return errs
}

// Validate checks the structural invariants of doc and every resolved field.
func Validate(doc Document) error {
	var errs []error
	prevEnd := 0
	for idx, node := range doc.Nodes {
		fail := func(format string, args ...any) {
			errs = append(errs, &InvariantError{Node: idx, Msg: fmt.Sprintf(format, args...)})
		}
		if node.Lines.Start < prevEnd || node.Lines.Len() <= 0 {
			fail("line range [%d,%d) out of order", node.Lines.Start, node.Lines.End)
		}
		prevEnd = node.Lines.End

		switch b := node.Block.(type) {
		case Heading:
			if b.Level < 1 || b.Level > 6 {
				fail("heading level %d out of range", b.Level)
			}
		case Table:
			if len(b.Align) != len(b.Headers) {
				fail("table has %d alignments for %d columns", len(b.Align), len(b.Headers))
			}
			for r, row := range b.Rows {
				if len(row) != len(b.Headers) {
					fail("table row %d has %d cells, want %d", r, len(row), len(b.Headers))
				}
			}
		case nil:
			fail("missing block")
			continue
		}

		for _, fs := range node.Inline {
			text, ok := fieldText(node.Block, fs)
			if !ok {
				fail("spans recorded for absent field %d[%d,%d]", fs.Field, fs.Row, fs.Item)
				continue
			}
			errs = append(errs, checkSpans(idx, fs.Field, fs.Item, text, fs.Spans)...)
		}
	}
	return errors.Join(errs...)
}

func fieldText(block Block, fs FieldSpans) (string, bool) {
	switch b := block.(type) {
	case Paragraph:
		return b.Text, fs.Field == FieldText
	case Heading:
		return b.Text, fs.Field == FieldText
	case BlockQuote:
		return b.Content, fs.Field == FieldContent
	case UnorderedList:
		return listItem(b.Items, fs)
	case OrderedList:
		return listItem(b.Items, fs)
	case Table:
		switch fs.Field {
		case FieldHeader:
			if fs.Item >= 0 && fs.Item < len(b.Headers) {
				return b.Headers[fs.Item], true
			}
		case FieldCell:
			if fs.Row >= 0 && fs.Row < len(b.Rows) && fs.Item >= 0 && fs.Item < len(b.Rows[fs.Row]) {
				return b.Rows[fs.Row][fs.Item], true
			}
		}
	}
	return "", false
}

func listItem(items []string, fs FieldSpans) (string, bool) {
	if fs.Field != FieldItem || fs.Item < 0 || fs.Item >= len(items) {
		return "", false
	}
	return items[fs.Item], true
}
