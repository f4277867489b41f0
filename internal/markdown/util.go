package markdown

import "strings"

func trimIndent(line string) string {
	return strings.TrimLeft(line, " \t")
}

func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isBullet(ch byte) bool {
	return ch == '-' || ch == '+' || ch == '*'
}

func isSpaceOrTab(ch byte) bool {
	return ch == ' ' || ch == '\t'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func countRepeat(text string, target byte) int {
	n := 0
	for n < len(text) && text[n] == target {
		n++
	}
	return n
}
