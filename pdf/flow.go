package pdf

import (
	"log/slog"

	"pkt.systems/notesheet"
)

// overflowEpsilon absorbs floating point noise when an element exactly fills
// the remaining column space.
const overflowEpsilon = 1e-6

// Column is the column index on a page.
type Column int

// Page columns.
const (
	Column1 Column = 1
	Column2 Column = 2
)

// Cursor is the layout state threaded through one generation. Y is the top of
// the next element, measured from the top edge of the page; ContentTop is
// where a column starts on the current page (below the main title on the
// first page).
type Cursor struct {
	Page       int
	Column     Column
	Y          float64
	ContentTop float64
	FirstPage  bool

	titleDrawn bool
}

func (c Cursor) nextPage(geo geometry) Cursor {
	c.Page++
	c.FirstPage = c.Page == 1
	c.Column = Column1
	c.Y = geo.top
	c.ContentTop = geo.top
	return c
}

func (c Cursor) nextColumn() Cursor {
	c.Column = Column2
	c.Y = c.ContentTop
	return c
}

func (c Cursor) advance(h float64) Cursor {
	c.Y += h
	return c
}

func (c Cursor) x(geo geometry) float64 {
	if c.Column == Column2 {
		return geo.col2X
	}
	return geo.col1X
}

func (c Cursor) overflows(h float64, geo geometry) bool {
	return c.Y+h > geo.bottom+overflowEpsilon
}

// flow drives the element stream through the estimator and renderer. It owns
// the cursor and the surface for the duration of one run.
type flow struct {
	layout   *Layout
	draw     renderer
	log      *slog.Logger
	cur      Cursor
	elements []notesheet.Element
}

func newFlow(layout *Layout, surface Surface, elements []notesheet.Element, logger *slog.Logger) *flow {
	if logger == nil {
		logger = slog.Default()
	}
	return &flow{
		layout:   layout,
		draw:     renderer{layout: layout, surface: surface},
		log:      logger,
		elements: elements,
	}
}

// run lays out every element. The first page is always created so an empty
// stream still yields a valid one-page document.
func (f *flow) run() Cursor {
	f.newPage()
	for i, el := range f.elements {
		more := i+1 < len(f.elements)
		switch el.Kind {
		case notesheet.KindColumnBreak:
			if f.cur.Column == Column1 {
				f.log.Debug("manual column break", "page", f.cur.Page)
				f.cur = f.cur.nextColumn()
			}
		case notesheet.KindPageBreak:
			f.log.Debug("manual page break", "page", f.cur.Page)
			f.newPage()
			if more {
				f.divider()
			}
		default:
			f.place(el)
		}
	}
	return f.cur
}

func (f *flow) newPage() {
	f.draw.surface.AddPage()
	f.cur = f.cur.nextPage(f.layout.geo)
}

func (f *flow) divider() {
	f.draw.divider(f.cur.ContentTop)
}

// makeRoom runs the overflow check before anything is drawn. An element that
// does not fit moves to column 2, or to a new page from column 2. It is drawn
// where it lands even if it still does not fit there.
func (f *flow) makeRoom(el notesheet.Element) {
	geo := f.layout.geo
	est := f.layout.Estimate(el, geo.colW)
	if !f.cur.overflows(est, geo) {
		return
	}
	if f.cur.Column == Column1 {
		f.log.Debug("column switch", "page", f.cur.Page, "y", f.cur.Y, "estimate", est)
		f.cur = f.cur.nextColumn()
		return
	}
	f.log.Debug("page break", "page", f.cur.Page, "y", f.cur.Y, "estimate", est)
	f.newPage()
	f.divider()
}

func (f *flow) place(el notesheet.Element) {
	f.makeRoom(el)
	geo := f.layout.geo
	if el.Kind == notesheet.KindMainTitle {
		f.mainTitle(el)
		return
	}
	x, w := f.cur.x(geo), geo.colW
	switch el.Kind {
	case notesheet.KindSubTitle:
		h := f.draw.subTitle(el.Text, x, f.cur.Y, w)
		f.cur = f.cur.advance(h + spaceAfterSubTitle)
	case notesheet.KindPoint:
		h := f.draw.point(el.Symbol, el.Text, x, f.cur.Y, w)
		f.cur = f.cur.advance(h + spaceBetweenPoints)
	case notesheet.KindBox:
		f.cur = f.cur.advance(spaceAroundBox)
		h := f.draw.box(el.Text, x, f.cur.Y, w)
		f.cur = f.cur.advance(h + spaceAroundBox)
	default:
		f.log.Warn("skipping element of unknown kind", "kind", el.Kind.String())
	}
}

// mainTitle draws the first main title of the first page and moves the
// column top below it. The first page gets its divider only here. Later
// titles only restore a divider when the cursor sits at the very top of a
// page.
func (f *flow) mainTitle(el notesheet.Element) {
	if f.cur.FirstPage && !f.cur.titleDrawn {
		h := f.draw.mainTitle(el.Text, f.cur.Y)
		f.cur = f.cur.advance(h + spaceAfterMainTitle)
		f.cur.ContentTop = f.cur.Y
		f.cur.titleDrawn = true
		f.divider()
		return
	}
	if f.cur.Y == f.layout.geo.top {
		f.divider()
	}
}
