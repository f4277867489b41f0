package textutil

import "testing"

func TestDisplayWidthGraphemeClusters(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"ascii", "hello", 5},
		{"empty", "", 0},
		{"cjk", "日本語", 6},
		{"combining accent", "é", 1},
		{"family zwj", "\U0001F468\u200d\U0001F469\u200d\U0001F467", 2},
		{"decomposed accent is one cluster", "e\u0301x", 2},
		{"mixed ascii + cjk", "a日b", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayWidth(tt.text); got != tt.want {
				t.Fatalf("DisplayWidth(%q)=%d want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		start int
		want  string
	}{
		{"no tabs", "abc", 4, 0, "abc"},
		{"leading tab", "\tx", 4, 0, "    x"},
		{"aligns to stop", "ab\tc", 4, 0, "ab  c"},
		{"wide rune counts two", "日\tx", 4, 0, "日  x"},
		{"newline resets column", "abc\n\tx", 4, 0, "abc\n    x"},
		{"start column", "\tx", 4, 3, " x"},
		{"disabled", "\tx", 0, 0, "\tx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandTabsFrom(tt.text, tt.width, tt.start); got != tt.want {
				t.Fatalf("ExpandTabsFrom(%q, %d, %d) = %q, want %q", tt.text, tt.width, tt.start, got, tt.want)
			}
		})
	}
	if got := ExpandTabs("a\tb", DefaultTabWidth); got != "a   b" {
		t.Fatalf("ExpandTabs default = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		ellipsis string
		want     string
	}{
		{"fits", "short", 10, "…", "short"},
		{"exact", "abcde", 5, "…", "abcde"},
		{"cut with ellipsis", "abcdef", 4, "…", "abc…"},
		{"never splits wide rune", "日本語", 5, "…", "日本…"},
		{"keeps cluster whole", "ééé", 2, "…", "é…"},
		{"no ellipsis", "abcdef", 3, "", "abc"},
		{"ellipsis wider than width", "abcdef", 1, "...", "a"},
		{"zero width", "abc", 0, "…", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.text, tt.width, tt.ellipsis)
			if got != tt.want {
				t.Fatalf("Truncate(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
			if w := DisplayWidth(got); w > tt.width {
				t.Fatalf("Truncate(%q, %d) is %d columns wide", tt.text, tt.width, w)
			}
		})
	}
}
