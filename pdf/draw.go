package pdf

// renderer draws single elements. Every draw method takes the top of the
// element and returns the height it actually used, excluding the spacing the
// flow controller adds after it.
type renderer struct {
	layout  *Layout
	surface Surface
}

func (r *renderer) lines(lines []string, x, top float64, st Style) {
	for i, line := range lines {
		r.surface.Text(x, top+float64(i)*st.Leading+st.baseline(), line, st)
	}
}

// mainTitle centers each wrapped line across both columns.
func (r *renderer) mainTitle(text string, top float64) float64 {
	geo, st := r.layout.geo, r.layout.styles.MainTitle
	lines := wrapText(r.layout.measure, text, st, geo.usable)
	for i, line := range lines {
		x := geo.left + (geo.usable-r.layout.measure.StringWidth(line, st))/2
		r.surface.Text(x, top+float64(i)*st.Leading+st.baseline(), line, st)
	}
	return linesHeight(lines, st)
}

// subTitle draws the text over a translucent highlight sized to the widest
// wrapped line.
func (r *renderer) subTitle(text string, x, top, width float64) float64 {
	st := r.layout.styles.SubTitle
	lines := wrapText(r.layout.measure, text, st, width)
	h := linesHeight(lines, st)
	if len(lines) > 0 {
		w := widestLine(r.layout.measure, lines, st)
		r.surface.BeginDecoration()
		r.surface.Rect(x-highlightPadding, top, w+2*highlightPadding, h, RectStyle{
			Fill:      true,
			FillColor: colorHighlight,
			FillAlpha: highlightAlpha,
		})
		r.surface.EndDecoration()
	}
	r.lines(lines, x, top, st)
	return h
}

// point draws the bullet at the left edge and the body indented past it.
func (r *renderer) point(symbol, text string, x, top, width float64) float64 {
	st := r.layout.styles.Body
	indent := r.layout.bulletIndent(symbol)
	if symbol != "" {
		r.surface.Text(x, top+st.baseline(), bulletText(symbol), st)
	}
	lines := wrapText(r.layout.measure, text, st, width-indent)
	r.lines(lines, x+indent, top, st)
	return linesHeight(lines, st)
}

// box draws a filled, outlined rectangle spanning width with the text inset
// by the box padding.
func (r *renderer) box(text string, x, top, width float64) float64 {
	st := r.layout.styles.Box
	lines := wrapText(r.layout.measure, text, st, width-2*boxPadding)
	h := linesHeight(lines, st) + 2*boxPadding
	r.surface.BeginDecoration()
	r.surface.Rect(x, top, width, h, RectStyle{
		Fill:      true,
		FillColor: colorBoxFill,
		FillAlpha: boxFillAlpha,
		Stroke:    true,
		Color:     colorBoxOutline,
		LineWidth: boxLineWidth,
	})
	r.surface.EndDecoration()
	r.lines(lines, x+boxPadding, top+boxPadding, st)
	return h
}

// divider draws the column separator from top down to the bottom margin.
func (r *renderer) divider(top float64) {
	geo := r.layout.geo
	r.surface.BeginDecoration()
	r.surface.Line(geo.dividerX, top, geo.dividerX, geo.bottom, colorDivider, dividerLineWidth)
	r.surface.EndDecoration()
}
