package pdf

import (
	"pkt.systems/notesheet"
)

// Layout holds everything needed to measure elements: the fixed geometry,
// the text styles and a side-effect-free Measurer.
type Layout struct {
	geo     geometry
	styles  Styles
	measure Measurer
}

// NewLayout returns a Layout measuring with the given fonts. The measurer is
// private to the Layout and never touches an output document.
func NewLayout(fonts *Fonts) (*Layout, error) {
	if fonts == nil {
		fonts = DefaultFonts()
	}
	m, err := newMeasurer(fonts)
	if err != nil {
		return nil, err
	}
	return newLayoutWithMeasurer(fonts.Styles(), m), nil
}

func newLayoutWithMeasurer(styles Styles, m Measurer) *Layout {
	return &Layout{geo: a4Geometry(), styles: styles, measure: m}
}

// ColumnWidth returns the width of one text column.
func (l *Layout) ColumnWidth() float64 {
	return l.geo.colW
}

// Estimate predicts the vertical space el will take when drawn at width,
// including the fixed spacing that follows it. Main titles always span the
// full usable width. Breaks take no space.
func (l *Layout) Estimate(el notesheet.Element, width float64) float64 {
	if el.IsBreak() {
		return 0
	}
	switch el.Kind {
	case notesheet.KindMainTitle:
		return l.textHeight(el.Text, l.styles.MainTitle, l.geo.usable) + spaceAfterMainTitle
	case notesheet.KindSubTitle:
		return l.textHeight(el.Text, l.styles.SubTitle, width) + spaceAfterSubTitle
	case notesheet.KindBox:
		return l.textHeight(el.Text, l.styles.Box, width-2*boxPadding) + 2*boxPadding + 2*spaceAroundBox
	case notesheet.KindPoint:
		indent := l.bulletIndent(el.Symbol)
		return l.textHeight(el.Text, l.styles.Body, width-indent) + spaceBetweenPoints
	default:
		return l.textHeight(el.Text, l.styles.Body, width)
	}
}

func (l *Layout) textHeight(text string, st Style, width float64) float64 {
	return linesHeight(wrapText(l.measure, text, st, width), st)
}

// bulletIndent is the horizontal offset of point text: the bullet and a
// trailing space plus a small gap, or zero without a bullet.
func (l *Layout) bulletIndent(symbol string) float64 {
	if symbol == "" {
		return 0
	}
	return l.measure.StringWidth(bulletText(symbol), l.styles.Body) + bulletGap
}

func bulletText(symbol string) string {
	return symbol + " "
}
