package markdown

import (
	"fmt"
	"strings"
)

// Dump renders doc as an indented debugging listing.
func Dump(doc Document) string {
	var b strings.Builder
	for i, node := range doc.Nodes {
		fmt.Fprintf(&b, "%d %s [%d,%d)", i, node.Block.Kind(), node.Lines.Start, node.Lines.End)
		switch blk := node.Block.(type) {
		case Heading:
			fmt.Fprintf(&b, " h%d %q", blk.Level, blk.Text)
		case Paragraph:
			fmt.Fprintf(&b, " %q", blk.Text)
		case CodeBlock:
			fmt.Fprintf(&b, " lang=%q %q", blk.Language, blk.Code)
		case Table:
			fmt.Fprintf(&b, " %q", blk.Headers)
			for _, row := range blk.Rows {
				fmt.Fprintf(&b, "\n    row %q", row)
			}
		case UnorderedList:
			fmt.Fprintf(&b, " %q", blk.Items)
		case OrderedList:
			fmt.Fprintf(&b, " %q", blk.Items)
		case BlockQuote:
			fmt.Fprintf(&b, " %q", blk.Content)
		case HorizontalRule:
		}
		b.WriteByte('\n')
		for _, fs := range node.Inline {
			for _, s := range fs.Spans {
				fmt.Fprintf(&b, "    %s", s.Kind)
				if fs.Field == FieldItem || fs.Field == FieldHeader || fs.Field == FieldCell {
					fmt.Fprintf(&b, " item=%d", fs.Item)
				}
				if fs.Field == FieldCell {
					fmt.Fprintf(&b, " row=%d", fs.Row)
				}
				fmt.Fprintf(&b, " [%d,%d)", s.Start, s.End)
				if s.URL != "" {
					fmt.Fprintf(&b, " url=%q", s.URL)
				}
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}
