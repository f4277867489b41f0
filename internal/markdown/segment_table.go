package markdown

import "strings"

// parseTable consumes a header row, an optional separator row and the data
// rows that follow. Rows are padded or truncated to the header width.
func parseTable(lines []string, start int) (Table, int, bool) {
	header := trimIndent(lines[start])
	if !isTableRow(header) {
		return Table{}, start, false
	}
	headers := splitTableRow(header)
	if len(headers) == 0 {
		return Table{}, start, false
	}

	align := make([]Alignment, len(headers))
	i := start + 1
	if i < len(lines) {
		if parts, ok := separatorCells(trimIndent(lines[i])); ok {
			copy(align, parseTableAlignment(parts))
			i++
		}
	}

	var rows [][]string
	for i < len(lines) {
		line := trimIndent(lines[i])
		if !isTableRow(line) {
			break
		}
		rows = append(rows, fitRow(splitTableRow(line), len(headers)))
		i++
	}

	return Table{Headers: headers, Rows: rows, Align: align}, i, true
}

// isTableRow reports whether trimmed is a |...| line with something between
// the outer pipes.
func isTableRow(trimmed string) bool {
	t := strings.TrimRight(trimmed, " \t")
	if len(t) < 3 || t[0] != '|' || t[len(t)-1] != '|' {
		return false
	}
	return t[len(t)-2] != '\\'
}

func fitRow(cells []string, width int) []string {
	row := make([]string, width)
	copy(row, cells)
	return row
}

// separatorCells accepts ---|:--:|--: style rows. Outer pipes are optional
// but the row must contain at least one pipe so a lone --- stays a rule.
func separatorCells(trimmed string) ([]string, bool) {
	t := strings.TrimSpace(trimmed)
	if !strings.Contains(t, "|") {
		return nil, false
	}
	t = strings.TrimPrefix(t, "|")
	t = strings.TrimSuffix(t, "|")
	parts := strings.Split(t, "|")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || !strings.Contains(part, "-") {
			return nil, false
		}
		if strings.IndexFunc(part, func(r rune) bool { return r != '-' && r != ':' }) != -1 {
			return nil, false
		}
		parts[i] = part
	}
	return parts, true
}

func parseTableAlignment(parts []string) []Alignment {
	align := make([]Alignment, len(parts))
	for i, part := range parts {
		left := strings.HasPrefix(part, ":")
		right := strings.HasSuffix(part, ":")
		switch {
		case left && right:
			align[i] = AlignCenter
		case right:
			align[i] = AlignRight
		case left:
			align[i] = AlignLeft
		default:
			align[i] = AlignDefault
		}
	}
	return align
}

// splitTableRow splits on unescaped pipes outside code spans and drops the
// empty cells before the first and after the last pipe.
func splitTableRow(line string) []string {
	parts := splitPipes(strings.TrimSpace(line))
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func splitPipes(line string) []string {
	var parts []string
	var buf strings.Builder
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch ch {
		case '\\':
			if i+1 < len(line) && line[i+1] == '|' {
				buf.WriteByte('|')
				i++
				continue
			}
		case '`':
			run := countRepeat(line[i:], '`')
			if end := findClosingRun(line, i+run, '`', run); end >= 0 {
				buf.WriteString(line[i : end+run])
				i = end + run - 1
				continue
			}
			buf.WriteString(line[i : i+run])
			i += run - 1
			continue
		case '|':
			parts = append(parts, buf.String())
			buf.Reset()
			continue
		}
		buf.WriteByte(ch)
	}
	parts = append(parts, buf.String())
	return parts
}

// findClosingRun returns the index of the next run of exactly count target
// bytes at or after from, or -1.
func findClosingRun(text string, from int, target byte, count int) int {
	for i := from; i < len(text); {
		if text[i] != target {
			i++
			continue
		}
		n := countRepeat(text[i:], target)
		if n == count {
			return i
		}
		i += n
	}
	return -1
}
