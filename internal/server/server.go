package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"pkt.systems/notesheet"
	"pkt.systems/notesheet/pdf"
)

const (
	// DownloadName is the attachment name of generated documents.
	DownloadName = "generated_notes.pdf"

	defaultBodyLimit = "2M"
	shutdownTimeout  = 5 * time.Second
)

// Server is the HTTP front end turning posted markup into PDF downloads.
type Server struct {
	e      *echo.Echo
	fonts  *pdf.Fonts
	cfg    pdf.Config
	logger *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for request and generation logs.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFonts shares a loaded font set between requests.
func WithFonts(fonts *pdf.Fonts) Option {
	return func(s *Server) {
		s.fonts = fonts
	}
}

// WithConfig sets the PDF configuration used for every request.
func WithConfig(cfg pdf.Config) Option {
	return func(s *Server) {
		s.cfg = cfg
	}
}

// New returns a Server with its routes and middleware installed.
func New(opts ...Option) *Server {
	s := &Server{
		e:      echo.New(),
		fonts:  pdf.DefaultFonts(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	e := s.e
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(defaultBodyLimit))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Debug("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))

	e.GET("/", s.guide)

	group := e.Group("/api")
	// Turn markup into a PDF download
	group.POST("/generate", s.generate)
	// Health check endpoint
	group.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return s
}

// Handler returns the HTTP handler serving the API.
func (s *Server) Handler() http.Handler {
	return s.e
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("serving", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		s.logger.Error("Failed to start server", "error", err)
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func (s *Server) guide(c echo.Context) error {
	return c.String(http.StatusOK, notesheet.MarkupGuide)
}

func (s *Server) generate(c echo.Context) error {
	markup, err := readMarkup(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(markup) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "no markup provided: send form field \"markup\" or file \"file\"")
	}

	elements, err := notesheet.ParseReader(strings.NewReader(markup), notesheet.WithLogger(s.logger))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(elements) == 0 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, pdf.ErrNoContent.Error())
	}

	data, err := pdf.Generate(pdf.GenerateRequest{
		Elements: elements,
		Config:   s.cfg,
		Fonts:    s.fonts,
		Logger:   s.logger,
	})
	if err != nil {
		s.logger.Error("Failed to generate pdf", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to generate pdf")
	}

	s.logger.Debug("generated pdf", "elements", len(elements), "bytes", len(data))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", DownloadName))
	return c.Blob(http.StatusOK, "application/pdf", data)
}

// readMarkup prefers the "markup" form field and falls back to an uploaded
// "file".
func readMarkup(c echo.Context) (string, error) {
	if markup := c.FormValue("markup"); strings.TrimSpace(markup) != "" {
		return markup, nil
	}
	fh, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", fmt.Errorf("read upload: %w", err)
	}
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()
	buf, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	return string(buf), nil
}
