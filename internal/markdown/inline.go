package markdown

import "strings"

// Resolver returns the inline spans of one block's text.
type Resolver func(text string) []Span

type matcher func(text string) []Span

// Matchers in precedence order. A later matcher never claims bytes an
// earlier one already accepted.
var (
	basicMatchers = []matcher{
		scanCode,
		doubledMatcher(SpanStrikethrough, '~'),
		doubledMatcher(SpanBold, '*'),
	}
	richMatchers = []matcher{
		scanCode,
		doubledMatcher(SpanStrikethrough, '~'),
		doubledMatcher(SpanBold, '*'),
		scanItalic,
		scanLinks,
		doubledMatcher(SpanHighlight, '='),
	}
)

// Resolve finds code, strikethrough and bold spans. Offsets index text
// itself; the string is never rewritten.
func Resolve(text string) []Span {
	return resolve(text, basicMatchers)
}

// ResolveRich is Resolve plus italic, link and highlight spans.
func ResolveRich(text string) []Span {
	return resolve(text, richMatchers)
}

func resolve(text string, matchers []matcher) []Span {
	if len(text) < 2 {
		return nil
	}
	var accepted []Span
	for _, match := range matchers {
		accepted = mergeCandidates(accepted, match(text))
	}
	return accepted
}

// mergeCandidates adds every candidate that does not intersect an accepted
// span. Both inputs are sorted and internally disjoint; so is the result.
func mergeCandidates(accepted, candidates []Span) []Span {
	if len(candidates) == 0 {
		return accepted
	}
	out := make([]Span, 0, len(accepted)+len(candidates))
	j := 0
	for _, c := range candidates {
		for j < len(accepted) && accepted[j].End <= c.Start {
			out = append(out, accepted[j])
			j++
		}
		if j < len(accepted) && accepted[j].overlaps(c.Start, c.End) {
			continue
		}
		out = append(out, c)
	}
	return append(out, accepted[j:]...)
}

// scanCode matches `([^`]+)` leftmost-first.
func scanCode(text string) []Span {
	var spans []Span
	i := 0
	for i < len(text) {
		j := strings.IndexByte(text[i:], '`')
		if j < 0 {
			break
		}
		i += j
		k := strings.IndexByte(text[i+1:], '`')
		if k < 0 {
			break
		}
		k += i + 1
		if k == i+1 {
			i++
			continue
		}
		spans = append(spans, Span{Kind: SpanCode, Start: i, End: k + 1})
		i = k + 1
	}
	return spans
}

// doubledMatcher matches dd([^d]+)dd, e.g. **bold** for d='*'.
func doubledMatcher(kind SpanKind, d byte) matcher {
	return func(text string) []Span {
		var spans []Span
		i := 0
		for i+1 < len(text) {
			if text[i] != d || text[i+1] != d {
				i++
				continue
			}
			k := strings.IndexByte(text[i+2:], d)
			if k < 0 {
				break
			}
			k += i + 2
			if k > i+2 && k+1 < len(text) && text[k+1] == d {
				spans = append(spans, Span{Kind: kind, Start: i, End: k + 2})
				i = k + 2
				continue
			}
			i++
		}
		return spans
	}
}

// scanItalic matches \*([^*]+)\* where neither delimiter touches another
// asterisk, so **bold** runs never produce italic candidates.
func scanItalic(text string) []Span {
	var spans []Span
	i := 0
	for i < len(text) {
		j := strings.IndexByte(text[i:], '*')
		if j < 0 {
			break
		}
		i += j
		if (i > 0 && text[i-1] == '*') || i+1 >= len(text) || text[i+1] == '*' {
			i++
			continue
		}
		k := strings.IndexByte(text[i+1:], '*')
		if k < 0 {
			break
		}
		k += i + 1
		if k+1 < len(text) && text[k+1] == '*' {
			i++
			continue
		}
		spans = append(spans, Span{Kind: SpanItalic, Start: i, End: k + 1})
		i = k + 1
	}
	return spans
}

// scanLinks matches \[([^\]]+)\]\(([^)]+)\). The next ']' and the ')' after
// it are cached so runs of '[' with no closer stay linear.
func scanLinks(text string) []Span {
	var spans []Span
	closeBracket := -1
	parenFor, closeParen := -1, -1
	i := 0
	for i < len(text) {
		j := strings.IndexByte(text[i:], '[')
		if j < 0 {
			break
		}
		i += j
		if closeBracket <= i {
			k := strings.IndexByte(text[i+1:], ']')
			if k < 0 {
				break
			}
			closeBracket = i + 1 + k
		}
		if closeBracket == i+1 || closeBracket+1 >= len(text) || text[closeBracket+1] != '(' {
			i++
			continue
		}
		if parenFor != closeBracket {
			parenFor = closeBracket
			closeParen = -1
			if p := strings.IndexByte(text[closeBracket+2:], ')'); p >= 0 {
				closeParen = closeBracket + 2 + p
			}
		}
		if closeParen <= closeBracket+2 {
			i++
			continue
		}
		spans = append(spans, Span{
			Kind:  SpanLink,
			Start: i,
			End:   closeParen + 1,
			URL:   text[closeBracket+2 : closeParen],
		})
		i = closeParen + 1
	}
	return spans
}

// Strip drops the delimiter bytes of every span and keeps everything else.
// spans must be sorted and disjoint, as Resolve returns them; malformed
// entries are skipped.
func Strip(text string, spans []Span) string {
	if len(spans) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for _, s := range spans {
		inStart, inEnd := s.Inner()
		if s.Start < pos || s.End > len(text) || inStart > inEnd || inStart < s.Start {
			continue
		}
		b.WriteString(text[pos:s.Start])
		b.WriteString(text[inStart:inEnd])
		pos = s.End
	}
	b.WriteString(text[pos:])
	return b.String()
}
