package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines viewer colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HeadingFg   tcell.Color
	MarkerFg    tcell.Color
	QuoteFg     tcell.Color
	LinkFg      tcell.Color
	RuleFg      tcell.Color
	CodeBg      tcell.Color
	CodeFg      tcell.Color
	CodeBlockBg tcell.Color
	CodeBlockFg tcell.Color
	HighlightBg tcell.Color
	HighlightFg tcell.Color
	StatusBg    tcell.Color
	StatusFg    tcell.Color
}

// DefaultTheme returns the default color scheme.
func DefaultTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		HeadingFg:   tcell.Color33,
		MarkerFg:    tcell.ColorLightSlateGray,
		QuoteFg:     tcell.Color250,
		LinkFg:      tcell.Color39,
		RuleFg:      tcell.ColorLightSlateGray,
		CodeBg:      tcell.ColorDefault,
		CodeFg:      tcell.Color44,  // brighter cyan text for code
		CodeBlockBg: tcell.Color234, // darker grey background for fenced code
		CodeBlockFg: tcell.Color252, // light grey text for fenced code
		HighlightBg: tcell.Color220,
		HighlightFg: tcell.ColorBlack,
		StatusBg:    tcell.Color33,
		StatusFg:    tcell.ColorWhite,
	}
}

// BaseStyle is the style of unformatted message text.
func (t ColorTheme) BaseStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.Foreground).Background(t.Background)
}

// StatusStyle is the style of the viewer status line.
func (t ColorTheme) StatusStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.StatusFg).Background(t.StatusBg)
}

// StyleFor maps a semantic segment style to a terminal style.
func (t ColorTheme) StyleFor(kind TextStyleKind) tcell.Style {
	return t.styleForSegment(t.BaseStyle(), kind)
}

func (t ColorTheme) styleForSegment(base tcell.Style, kind TextStyleKind) tcell.Style {
	switch kind {
	case TextStyleStrong:
		return base.Bold(true)
	case TextStyleHeading:
		return withColors(base.Bold(true), t.HeadingFg, tcell.ColorDefault)
	case TextStyleEmphasis:
		return base.Italic(true)
	case TextStyleStrike:
		return base.StrikeThrough(true)
	case TextStyleCode:
		return withColors(base, t.CodeFg, t.CodeBg).Dim(false)
	case TextStyleCodeBlock:
		return withColors(base, t.CodeBlockFg, t.CodeBlockBg).Dim(false)
	case TextStyleLink:
		return withColors(base.Underline(true), t.LinkFg, tcell.ColorDefault)
	case TextStyleHighlight:
		return withColors(base, t.HighlightFg, t.HighlightBg)
	case TextStyleQuote:
		return withColors(base.Italic(true), t.QuoteFg, tcell.ColorDefault)
	case TextStyleMarker:
		return withColors(base, t.MarkerFg, tcell.ColorDefault)
	case TextStyleRule:
		return withColors(base, t.RuleFg, tcell.ColorDefault).Dim(true)
	default:
		return base
	}
}

func withColors(style tcell.Style, fg, bg tcell.Color) tcell.Style {
	if fg != tcell.ColorDefault {
		style = style.Foreground(fg)
	}
	if bg != tcell.ColorDefault {
		style = style.Background(bg)
	}
	return style
}
