package pdf

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Style is the text attribute set bound to one role.
type Style struct {
	Family    string
	FontStyle string
	Size      float64
	Leading   float64
	Color     color.RGBA
}

// Styles groups the four text roles.
type Styles struct {
	Body      Style
	SubTitle  Style
	MainTitle Style
	Box       Style
}

var (
	colorText       = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	colorHighlight  = color.RGBA{R: 220, G: 210, B: 255, A: 0xff}
	colorDivider    = colornames.Silver
	colorBoxOutline = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	colorBoxFill    = colornames.Whitesmoke
)

const (
	highlightAlpha = 0.6
	boxFillAlpha   = 0.5

	bodyLineHeight  = 1.4
	titleLineHeight = 1.2
	boxTextScale    = 0.95
)

func newStyles(main, sub fontFace) Styles {
	body := Style{
		Family:    sub.family,
		FontStyle: sub.style,
		Size:      bodyTextSize,
		Leading:   bodyTextSize * bodyLineHeight,
		Color:     colorText,
	}
	subTitle := body
	subTitle.Size = subTitleSize
	subTitle.Leading = subTitleSize * bodyLineHeight
	box := body
	box.Size = bodyTextSize * boxTextScale
	box.Leading = body.Leading * boxTextScale
	return Styles{
		Body:     body,
		SubTitle: subTitle,
		MainTitle: Style{
			Family:    main.family,
			FontStyle: main.style,
			Size:      mainTitleSize,
			Leading:   mainTitleSize * titleLineHeight,
			Color:     colorText,
		},
		Box: box,
	}
}

// baseline returns the offset from a line's top to its text baseline.
func (s Style) baseline() float64 {
	return (s.Leading+s.Size)/2 - 0.2*s.Size
}
