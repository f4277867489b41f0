package render

import (
	"reflect"
	"strings"
	"testing"

	"github.com/kk-code-lab/chatmd/internal/markdown"
	"github.com/kk-code-lab/chatmd/internal/textutil"
)

func TestStyleInline(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		spans []markdown.Span
		want  [][]StyledTextSegment
	}{
		{
			name:  "bold word",
			text:  "Hello **world**.",
			spans: markdown.Resolve("Hello **world**."),
			want: [][]StyledTextSegment{{
				{Text: "Hello ", Style: TextStylePlain},
				{Text: "world", Style: TextStyleStrong},
				{Text: ".", Style: TextStylePlain},
			}},
		},
		{
			name:  "span across newline",
			text:  "a **b\nc** d",
			spans: markdown.Resolve("a **b\nc** d"),
			want: [][]StyledTextSegment{
				{{Text: "a ", Style: TextStylePlain}, {Text: "b", Style: TextStyleStrong}},
				{{Text: "c", Style: TextStyleStrong}, {Text: " d", Style: TextStylePlain}},
			},
		},
		{
			name:  "rich kinds",
			text:  "*i* ~~s~~ `c` ==h== [l](u)",
			spans: markdown.ResolveRich("*i* ~~s~~ `c` ==h== [l](u)"),
			want: [][]StyledTextSegment{{
				{Text: "i", Style: TextStyleEmphasis},
				{Text: " ", Style: TextStyleQuote},
				{Text: "s", Style: TextStyleStrike},
				{Text: " ", Style: TextStyleQuote},
				{Text: "c", Style: TextStyleCode},
				{Text: " ", Style: TextStyleQuote},
				{Text: "h", Style: TextStyleHighlight},
				{Text: " ", Style: TextStyleQuote},
				{Text: "l", Style: TextStyleLink},
			}},
		},
		{
			name:  "malformed span ignored",
			text:  "**x**",
			spans: []markdown.Span{{Kind: markdown.SpanBold, Start: 0, End: 40}},
			want:  [][]StyledTextSegment{{{Text: "**x**", Style: TextStylePlain}}},
		},
		{
			name: "empty text",
			want: [][]StyledTextSegment{nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := TextStylePlain
			if tt.name == "rich kinds" {
				base = TextStyleQuote
			}
			got := StyleInline(tt.text, tt.spans, base)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("StyleInline(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestLinesScenario(t *testing.T) {
	got := Lines(markdown.Build("# Title\n\nHello **world**."), DefaultOptions())
	want := [][]StyledTextSegment{
		{{Text: "# ", Style: TextStyleHeading}, {Text: "Title", Style: TextStyleHeading}},
		nil,
		{{Text: "Hello ", Style: TextStylePlain}, {Text: "world", Style: TextStyleStrong}, {Text: ".", Style: TextStylePlain}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines = %+v, want %+v", got, want)
	}
}

func TestLinesPlainText(t *testing.T) {
	rich := markdown.Options{Resolver: markdown.ResolveRich}
	tests := []struct {
		name  string
		text  string
		build markdown.Options
		opts  Options
		want  string
	}{
		{
			name:  "lists",
			text:  "- a\n- **b**\n\n1. x\n7. y",
			build: markdown.DefaultOptions(),
			opts:  DefaultOptions(),
			want:  "• a\n• b\n\n1. x\n2. y\n",
		},
		{
			name:  "quote keeps empty line",
			text:  "> a\n>\n> ~~b~~",
			build: markdown.DefaultOptions(),
			opts:  DefaultOptions(),
			want:  "│ a\n│\n│ b\n",
		},
		{
			name:  "code block keeps markup and expands tabs",
			text:  "```go\n\t**x**\n```",
			build: markdown.DefaultOptions(),
			opts:  DefaultOptions(),
			want:  "    [go]\n        **x**\n",
		},
		{
			name:  "rule spans width",
			text:  "---",
			build: markdown.DefaultOptions(),
			opts:  Options{MaxWidth: 5},
			want:  "─────\n",
		},
		{
			name:  "rule default width",
			text:  "***",
			build: markdown.DefaultOptions(),
			opts:  DefaultOptions(),
			want:  strings.Repeat("─", defaultRuleWidth) + "\n",
		},
		{
			name:  "paragraph wraps on width",
			text:  "aaa bbb ccc",
			build: markdown.DefaultOptions(),
			opts:  Options{MaxWidth: 5},
			want:  "aaa b\nbb cc\nc\n",
		},
		{
			name:  "list item hangs under marker",
			text:  "- abcdefgh",
			build: markdown.DefaultOptions(),
			opts:  Options{MaxWidth: 6},
			want:  "• abcd\n  efgh\n",
		},
		{
			name:  "link url shown",
			text:  "see [docs](https://x.io)",
			build: rich,
			opts:  DefaultOptions(),
			want:  "see docs (https://x.io)\n",
		},
		{
			name:  "link url hidden",
			text:  "see [docs](https://x.io)",
			build: rich,
			opts:  Options{ShowLinkURLs: false},
			want:  "see docs\n",
		},
		{
			name:  "control characters sanitized",
			text:  "bad\x1b[2Jtext",
			build: markdown.DefaultOptions(),
			opts:  DefaultOptions(),
			want:  "bad?[2Jtext\n",
		},
		{
			name:  "empty document",
			text:  "\n\n",
			build: markdown.DefaultOptions(),
			opts:  DefaultOptions(),
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlainText(Lines(markdown.BuildWith(tt.text, tt.build), tt.opts))
			if got != tt.want {
				t.Fatalf("rendered %q\nwant     %q", got, tt.want)
			}
		})
	}
}

func TestLinesRespectMaxWidth(t *testing.T) {
	text := "# A heading that is long\n\nSome paragraph text with 日本語 inside.\n\n" +
		"- item with words\n\n> quoted line of text\n\n```\ncode line that is long\n```\n\n" +
		"|column one|column two|\n|---|---|\n|a long cell value|b|"
	for _, width := range []int{16, 24, 40} {
		lines := Lines(markdown.Build(text), Options{MaxWidth: width})
		for i, line := range lines {
			if w := segmentsWidth(line); w > width {
				t.Fatalf("width %d: line %d %q is %d columns", width, i, joinSegmentsText(line), w)
			}
		}
	}
}

func TestLinesDeterministic(t *testing.T) {
	text := "# T\n\n**a** `b`\n\n|x|y|\n|-|-|\n|1|2|"
	first := Lines(markdown.Build(text), DefaultOptions())
	second := Lines(markdown.Build(text), DefaultOptions())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Lines is not deterministic")
	}
	if textutil.DisplayWidth(PlainText(first)) == 0 {
		t.Fatalf("expected rendered output")
	}
}
