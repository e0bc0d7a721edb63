package pdf

// mm is one millimetre in points.
const mm = 72.0 / 25.4

// A4 portrait in points.
const (
	pageWidth  = 595.28
	pageHeight = 841.89
)

const (
	marginTop    = 20 * mm
	marginBottom = 20 * mm
	marginLeft   = 15 * mm
	marginRight  = 15 * mm
	columnGap    = 10 * mm

	mainTitleSize = 38.0
	subTitleSize  = 18.0
	bodyTextSize  = 11.0

	highlightPadding    = 1.5 * mm
	boxPadding          = 3 * mm
	bulletGap           = 1.5 * mm
	spaceAfterMainTitle = 8 * mm
	spaceAfterSubTitle  = 4 * mm
	spaceBetweenPoints  = 2 * mm
	spaceAroundBox      = 5 * mm

	dividerLineWidth = 0.5
	boxLineWidth     = 0.5
)

// geometry holds the fixed page layout every element is measured and drawn
// against. The y axis grows downward from the top edge of the page.
type geometry struct {
	pageW, pageH float64
	top, bottom  float64
	left         float64
	usable       float64
	colW         float64
	col1X, col2X float64
	dividerX     float64
}

func a4Geometry() geometry {
	usable := pageWidth - marginLeft - marginRight
	colW := (usable - columnGap) / 2
	return geometry{
		pageW:    pageWidth,
		pageH:    pageHeight,
		top:      marginTop,
		bottom:   pageHeight - marginBottom,
		left:     marginLeft,
		usable:   usable,
		colW:     colW,
		col1X:    marginLeft,
		col2X:    marginLeft + colW + columnGap,
		dividerX: marginLeft + colW + columnGap/2,
	}
}
