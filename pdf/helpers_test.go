package pdf

import (
	"image/color"
	"io"
	"unicode/utf8"

	"pkt.systems/notesheet"
)

// fixedMeasurer gives every rune half the font size in width, which makes
// wrap points easy to predict.
type fixedMeasurer struct{}

func (fixedMeasurer) StringWidth(text string, st Style) float64 {
	return float64(utf8.RuneCountInString(text)) * st.Size * 0.5
}

type op struct {
	Page       int
	Kind       string
	X, Y       float64
	W, H       float64
	Text       string
	Decoration bool
}

type recordingSurface struct {
	page       int
	decoration bool
	ops        []op
}

func (s *recordingSurface) AddPage() { s.page++ }

func (s *recordingSurface) Text(x, y float64, text string, st Style) {
	s.ops = append(s.ops, op{Page: s.page, Kind: "text", X: x, Y: y, Text: text, H: st.Size})
}

func (s *recordingSurface) Rect(x, y, w, h float64, rs RectStyle) {
	s.ops = append(s.ops, op{Page: s.page, Kind: "rect", X: x, Y: y, W: w, H: h, Decoration: s.decoration})
}

func (s *recordingSurface) Line(x1, y1, x2, y2 float64, c color.RGBA, width float64) {
	s.ops = append(s.ops, op{Page: s.page, Kind: "line", X: x1, Y: y1, H: y2 - y1, Decoration: s.decoration})
}

func (s *recordingSurface) BeginDecoration() { s.decoration = true }
func (s *recordingSurface) EndDecoration()   { s.decoration = false }
func (s *recordingSurface) Err() error       { return nil }

func (s *recordingSurface) Output(w io.Writer) error { return nil }

func (s *recordingSurface) filter(kind string) []op {
	var out []op
	for _, o := range s.ops {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}

func (s *recordingSurface) textOp(text string) (op, bool) {
	for _, o := range s.ops {
		if o.Kind == "text" && o.Text == text {
			return o, true
		}
	}
	return op{}, false
}

func testLayout() *Layout {
	return newLayoutWithMeasurer(DefaultFonts().Styles(), fixedMeasurer{})
}

func runTestFlow(elements ...notesheet.Element) (*recordingSurface, Cursor) {
	surface := &recordingSurface{}
	cur := newFlow(testLayout(), surface, elements, nil).run()
	return surface, cur
}
