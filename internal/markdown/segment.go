package markdown

import (
	"strings"
)

// Segment splits text into blocks in source order. It never fails; lines it
// cannot classify end up in a Paragraph.
func Segment(text string) []Block {
	blocks, _ := SegmentLines(text)
	return blocks
}

// SegmentLines is Segment plus the line range each block consumed. Line
// numbers refer to text after line ending normalization.
func SegmentLines(text string) ([]Block, []LineRange) {
	lines := splitLines(text)
	var blocks []Block
	var ranges []LineRange
	i := 0
	for i < len(lines) {
		if isBlankLine(lines[i]) {
			i++
			continue
		}
		block, next := parseBlock(lines, i)
		blocks = append(blocks, block)
		ranges = append(ranges, LineRange{Start: i, End: next})
		i = next
	}
	return blocks, ranges
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(normalizeNewlines(text), "\n")
}

func normalizeNewlines(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// parseBlock classifies lines[start] and consumes the block it opens. It
// always advances past at least one line.
func parseBlock(lines []string, start int) (Block, int) {
	trimmed := trimIndent(lines[start])

	if fence, ok := detectFence(trimmed); ok {
		code, next := parseFencedCodeBlock(lines, start, fence)
		return code, next
	}

	if level, text, ok := parseHeading(trimmed); ok {
		return Heading{Level: level, Text: text}, start + 1
	}

	if tbl, next, ok := parseTable(lines, start); ok {
		return tbl, next
	}

	if isHorizontalRule(trimmed) {
		return HorizontalRule{}, start + 1
	}

	if _, ok := bulletItem(trimmed); ok {
		items, next := collectItems(lines, start, bulletItem)
		return UnorderedList{Items: items}, next
	}

	if _, ok := orderedItem(trimmed); ok {
		items, next := collectItems(lines, start, orderedItem)
		return OrderedList{Items: items}, next
	}

	if _, ok := quoteLine(trimmed); ok {
		quote, next := parseBlockQuote(lines, start)
		return quote, next
	}

	paragraph, next := parseParagraph(lines, start)
	return paragraph, next
}

func parseParagraph(lines []string, start int) (Paragraph, int) {
	parts := []string{strings.TrimSpace(lines[start])}
	i := start + 1
	for i < len(lines) {
		line := lines[i]
		if isBlankLine(line) || startsBlock(lines, i) {
			break
		}
		parts = append(parts, strings.TrimSpace(line))
		i++
	}
	return Paragraph{Text: strings.Join(parts, "\n")}, i
}

func parseBlockQuote(lines []string, start int) (BlockQuote, int) {
	var parts []string
	i := start
	for i < len(lines) {
		rest, ok := quoteLine(trimIndent(lines[i]))
		if !ok {
			break
		}
		parts = append(parts, rest)
		i++
	}
	return BlockQuote{Content: strings.Join(parts, "\n")}, i
}

type itemMatcher func(trimmed string) (string, bool)

// collectItems gathers the contiguous run of lines accepted by match.
func collectItems(lines []string, start int, match itemMatcher) ([]string, int) {
	var items []string
	i := start
	for i < len(lines) {
		trimmed := trimIndent(lines[i])
		if isHorizontalRule(trimmed) {
			break
		}
		item, ok := match(trimmed)
		if !ok {
			break
		}
		items = append(items, item)
		i++
	}
	return items, i
}

type fenceInfo struct {
	delimiter byte
	length    int
	language  string
}

func detectFence(trimmed string) (fenceInfo, bool) {
	if trimmed == "" {
		return fenceInfo{}, false
	}
	first := trimmed[0]
	if first != '`' && first != '~' {
		return fenceInfo{}, false
	}
	count := countRepeat(trimmed, first)
	if count < 3 {
		return fenceInfo{}, false
	}
	info := strings.TrimSpace(trimmed[count:])
	// ```a``` on one line is inline code, not a fence.
	if first == '`' && strings.IndexByte(info, '`') >= 0 {
		return fenceInfo{}, false
	}
	language := ""
	if fields := strings.Fields(info); len(fields) > 0 {
		language = fields[0]
	}
	return fenceInfo{delimiter: first, length: count, language: language}, true
}

func isClosingFence(line string, fence fenceInfo) bool {
	trimmed := strings.TrimSpace(line)
	n := countRepeat(trimmed, fence.delimiter)
	return n == len(trimmed) && n >= fence.length
}

// parseFencedCodeBlock takes lines verbatim until the closing fence. An
// unterminated fence swallows the rest of the input.
func parseFencedCodeBlock(lines []string, start int, fence fenceInfo) (CodeBlock, int) {
	var content []string
	i := start + 1
	for i < len(lines) {
		line := lines[i]
		if isClosingFence(line, fence) {
			return CodeBlock{Language: fence.language, Code: strings.Join(content, "\n")}, i + 1
		}
		content = append(content, line)
		i++
	}
	return CodeBlock{Language: fence.language, Code: strings.Join(content, "\n")}, i
}

func parseHeading(trimmed string) (int, string, bool) {
	level := countRepeat(trimmed, '#')
	if level == 0 || level > 6 || level >= len(trimmed) {
		return 0, "", false
	}
	if !isSpaceOrTab(trimmed[level]) {
		return 0, "", false
	}
	text := strings.TrimSpace(trimmed[level:])
	if text == "" {
		return 0, "", false
	}
	return level, text, true
}

func bulletItem(trimmed string) (string, bool) {
	if len(trimmed) < 2 || !isBullet(trimmed[0]) || !isSpaceOrTab(trimmed[1]) {
		return "", false
	}
	item := strings.TrimSpace(trimmed[2:])
	return item, item != ""
}

func orderedItem(trimmed string) (string, bool) {
	j := 0
	for j < len(trimmed) && isDigit(trimmed[j]) {
		j++
	}
	if j == 0 || j+1 >= len(trimmed) {
		return "", false
	}
	if trimmed[j] != '.' && trimmed[j] != ')' {
		return "", false
	}
	if !isSpaceOrTab(trimmed[j+1]) {
		return "", false
	}
	item := strings.TrimSpace(trimmed[j+2:])
	return item, item != ""
}

func quoteLine(trimmed string) (string, bool) {
	if trimmed == "" || trimmed[0] != '>' {
		return "", false
	}
	rest := trimmed[1:]
	if rest != "" && isSpaceOrTab(rest[0]) {
		rest = rest[1:]
	}
	return strings.TrimRight(rest, " \t"), true
}

func isHorizontalRule(trimmed string) bool {
	if len(trimmed) < 3 {
		return false
	}
	var marker byte
	count := 0
	for i := 0; i < len(trimmed); i++ {
		ch := trimmed[i]
		switch {
		case isSpaceOrTab(ch):
			continue
		case ch != '-' && ch != '*' && ch != '_':
			return false
		case marker == 0:
			marker = ch
		case ch != marker:
			return false
		}
		count++
	}
	return count >= 3
}

// startsBlock reports whether lines[index] opens something other than a
// paragraph, which ends a running paragraph.
func startsBlock(lines []string, index int) bool {
	trimmed := trimIndent(lines[index])
	if trimmed == "" {
		return false
	}
	if _, ok := detectFence(trimmed); ok {
		return true
	}
	if _, _, ok := parseHeading(trimmed); ok {
		return true
	}
	if isTableRow(trimmed) {
		return true
	}
	if isHorizontalRule(trimmed) {
		return true
	}
	if _, ok := bulletItem(trimmed); ok {
		return true
	}
	if _, ok := orderedItem(trimmed); ok {
		return true
	}
	_, ok := quoteLine(trimmed)
	return ok
}
