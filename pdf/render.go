package pdf

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"pkt.systems/notesheet"
)

// GenerateRequest contains inputs for Generate.
type GenerateRequest struct {
	Elements []notesheet.Element
	Config   Config
	// Fonts overrides the fonts named in Config. Load them once with
	// LoadFonts to share them between runs.
	Fonts  *Fonts
	Logger *slog.Logger
}

// RenderRequest contains inputs for Render.
type RenderRequest struct {
	Reader io.Reader
	Writer io.Writer
	Config Config
	Fonts  *Fonts
	Logger *slog.Logger
}

// Generate lays out the elements on two-column A4 pages and returns the
// serialized PDF. An empty element list yields a valid one-page document.
// On error no bytes are returned.
func Generate(req GenerateRequest) ([]byte, error) {
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)
	logger := req.Logger
	if logger == nil {
		logger = slog.Default()
	}
	fonts := req.Fonts
	if fonts == nil {
		var err error
		if fonts, err = LoadFonts(cfg); err != nil {
			return nil, fmt.Errorf("pdf generate: %w", err)
		}
	}
	layout, err := NewLayout(fonts)
	if err != nil {
		return nil, fmt.Errorf("pdf generate: %w", err)
	}
	surface, err := newFPDFSurface(fonts, cfg)
	if err != nil {
		return nil, fmt.Errorf("pdf generate: %w", err)
	}
	if len(req.Elements) == 0 {
		logger.Warn("no content elements to draw")
	}
	cur := newFlow(layout, surface, req.Elements, logger).run()
	if m, ok := layout.measure.(*fpdfMeasurer); ok {
		if err := m.Err(); err != nil {
			return nil, fmt.Errorf("pdf generate: %w", err)
		}
	}
	if err := surface.Err(); err != nil {
		return nil, fmt.Errorf("pdf generate: layout: %w", err)
	}
	var buf bytes.Buffer
	if err := surface.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf generate: output: %w", err)
	}
	logger.Debug("pdf generated", "elements", len(req.Elements), "pages", cur.Page, "bytes", buf.Len())
	return buf.Bytes(), nil
}

// Render parses markup from Reader and writes the PDF to Writer. Parse
// warnings go to Logger and do not stop rendering; markup without any
// recognized element is an error.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("pdf render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}
	logger := req.Logger
	if logger == nil {
		logger = slog.Default()
	}
	elements, err := notesheet.ParseReader(req.Reader, notesheet.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	if len(elements) == 0 {
		return ErrNoContent
	}
	data, err := Generate(GenerateRequest{
		Elements: elements,
		Config:   req.Config,
		Fonts:    req.Fonts,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	if _, err := req.Writer.Write(data); err != nil {
		return fmt.Errorf("pdf render: output: %w", err)
	}
	return nil
}
