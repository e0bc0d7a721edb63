package pdf

import (
	"fmt"
	"image/color"
	"io"

	"github.com/go-pdf/fpdf"
)

// RectStyle describes how a rectangle is painted.
type RectStyle struct {
	Fill      bool
	FillColor color.RGBA
	FillAlpha float64
	Stroke    bool
	Color     color.RGBA
	LineWidth float64
}

// Surface is the drawing target of the renderer. Coordinates are in points
// from the top-left corner of the current page; text is placed at its
// baseline.
type Surface interface {
	AddPage()
	Text(x, y float64, text string, st Style)
	Rect(x, y, w, h float64, rs RectStyle)
	Line(x1, y1, x2, y2 float64, c color.RGBA, width float64)
	// BeginDecoration and EndDecoration bracket non-text drawing.
	BeginDecoration()
	EndDecoration()
	Err() error
	Output(w io.Writer) error
}

type fpdfSurface struct {
	pdf     *fpdf.Fpdf
	tr      func(string) string
	layered bool
	layer   int
}

func newFPDFSurface(fonts *Fonts, cfg Config) (*fpdfSurface, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetCatalogSort(true)
	if cfg.Creator != "" {
		pdf.SetCreator(cfg.Creator, true)
	}
	if cfg.Title != "" {
		pdf.SetTitle(cfg.Title, true)
	}
	if cfg.Author != "" {
		pdf.SetAuthor(cfg.Author, true)
	}
	if !cfg.CreationDate.IsZero() {
		pdf.SetCreationDate(cfg.CreationDate)
		pdf.SetModificationDate(cfg.CreationDate)
	}
	if err := fonts.install(pdf); err != nil {
		return nil, err
	}
	s := &fpdfSurface{pdf: pdf, tr: fonts.translator(pdf)}
	if cfg.DecorationLayer {
		s.layered = true
		s.layer = pdf.AddLayer("decorations", true)
		if cfg.OpenLayerPane {
			pdf.OpenLayerPane()
		}
	}
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("surface setup: %w", err)
	}
	return s, nil
}

func (s *fpdfSurface) AddPage() {
	s.pdf.AddPage()
}

func (s *fpdfSurface) Text(x, y float64, text string, st Style) {
	s.pdf.SetFont(st.Family, st.FontStyle, st.Size)
	s.pdf.SetTextColor(int(st.Color.R), int(st.Color.G), int(st.Color.B))
	s.pdf.Text(x, y, s.tr(text))
}

func (s *fpdfSurface) Rect(x, y, w, h float64, rs RectStyle) {
	if rs.Fill {
		s.pdf.SetFillColor(int(rs.FillColor.R), int(rs.FillColor.G), int(rs.FillColor.B))
		if rs.FillAlpha > 0 && rs.FillAlpha < 1 {
			s.pdf.SetAlpha(rs.FillAlpha, "Normal")
		}
		s.pdf.Rect(x, y, w, h, "F")
		s.pdf.SetAlpha(1, "Normal")
	}
	if rs.Stroke {
		s.pdf.SetDrawColor(int(rs.Color.R), int(rs.Color.G), int(rs.Color.B))
		s.pdf.SetLineWidth(rs.LineWidth)
		s.pdf.Rect(x, y, w, h, "D")
	}
}

func (s *fpdfSurface) Line(x1, y1, x2, y2 float64, c color.RGBA, width float64) {
	s.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	s.pdf.SetLineWidth(width)
	s.pdf.Line(x1, y1, x2, y2)
}

func (s *fpdfSurface) BeginDecoration() {
	if s.layered {
		s.pdf.BeginLayer(s.layer)
	}
}

func (s *fpdfSurface) EndDecoration() {
	if s.layered {
		s.pdf.EndLayer()
	}
}

func (s *fpdfSurface) Err() error {
	return s.pdf.Error()
}

func (s *fpdfSurface) Output(w io.Writer) error {
	return s.pdf.Output(w)
}
