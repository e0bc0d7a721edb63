package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/notesheet"
	"pkt.systems/notesheet/internal/server"
	"pkt.systems/notesheet/pdf"
	"pkt.systems/version"
)

const (
	defaultWidth  = 80
	defaultOutput = server.DownloadName
)

func init() {
	version.SetDefaultModule("pkt.systems/notesheet")
}

func main() {
	var (
		outPath       string
		preview       bool
		themeName     string
		widthFlag     int
		listThemes    bool
		showGuide     bool
		serveAddr     string
		layers        bool
		openLayerPane bool
		mainFont      string
		subFont       string
		title         string
		author        string
		verbose       bool
		quiet         bool
	)

	flags := pflag.NewFlagSet("notesheet", pflag.ExitOnError)
	flags.StringVarP(&outPath, "output", "o", defaultOutput, "Output PDF path (- for stdout)")
	flags.BoolVarP(&preview, "preview", "p", false, "Print a terminal preview instead of writing a PDF")
	flags.StringVarP(&themeName, "theme", "t", "", "Preview theme name (default, or boring without color support)")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Preview width override (0 uses terminal width if available)")
	flags.BoolVar(&listThemes, "list-themes", false, "List available preview themes")
	flags.BoolVar(&showGuide, "guide", false, "Print the markup guide")
	flags.StringVar(&serveAddr, "serve", "", "Serve the HTTP API on this address (host:port or unix://path)")
	flags.BoolVar(&layers, "layers", false, "Put highlights, boxes and the divider on a hideable PDF layer")
	flags.BoolVar(&openLayerPane, "open-layer-pane", false, "Ask the PDF viewer to open the layer pane")
	flags.StringVar(&mainFont, "main-font", "", "TTF path for titles (requires --sub-font)")
	flags.StringVar(&subFont, "sub-font", "", "TTF path for body text (requires --main-font)")
	flags.StringVar(&title, "title", "", "PDF document title")
	flags.StringVar(&author, "author", "", "PDF document author")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log layout decisions")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Only log errors")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: notesheet [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, markup is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(verbose, quiet)}))
	slog.SetDefault(logger)

	if listThemes {
		printThemes(os.Stdout)
		return
	}
	if showGuide {
		fmt.Fprint(os.Stdout, notesheet.MarkupGuide)
		return
	}

	cfg := buildConfig(fontPaths{main: mainFont, sub: subFont}, layers, openLayerPane, title, author)

	if preview {
		toFile := flags.Changed("output") && outPath != "-"
		color := !toFile && isTerminal(os.Stdout) && notesheet.DetectColorSupport()
		theme, ok := notesheet.PreviewTheme(themeName, color)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", themeName)
			printThemes(os.Stderr)
			os.Exit(2)
		}
		reader, closer := mustOpenInputs(flags.Args())
		if closer != nil {
			defer func() { _ = closer.Close() }()
		}
		elements, err := notesheet.ParseReader(reader, notesheet.WithLogger(logger))
		if err != nil {
			fmt.Fprintf(os.Stderr, "read markup: %v\n", err)
			os.Exit(1)
		}
		writer := io.Writer(os.Stdout)
		if toFile {
			w, closeOut, err := resolveOutput(outPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "open output: %v\n", err)
				os.Exit(1)
			}
			defer func() { _ = closeOut.Close() }()
			writer = w
		}
		if err := notesheet.Preview(notesheet.PreviewRequest{
			Writer:   writer,
			Elements: elements,
			Width:    resolveWidth(widthFlag),
			Theme:    theme,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "preview: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Fonts are resolved before any markup is read so a bad path fails fast.
	fonts, err := pdf.LoadFonts(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fonts: %v\n", err)
		os.Exit(1)
	}

	if serveAddr != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := serve(ctx, serveAddr, cfg, fonts, logger); err != nil {
			fmt.Fprintf(os.Stderr, "serve: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if outPath == "-" && isTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "refusing to write PDF to terminal; use -o/--output")
		os.Exit(2)
	}

	reader, closer := mustOpenInputs(flags.Args())
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	data, err := generatePDF(reader, cfg, fonts, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate pdf: %v\n", err)
		os.Exit(1)
	}
	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}
	if _, err := writer.Write(data); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		os.Exit(1)
	}
	if outPath != "-" {
		logger.Info("wrote pdf", "path", normalizePath(outPath), "bytes", len(data))
	}
}

type fontPaths struct {
	main string
	sub  string
}

func buildConfig(fp fontPaths, layers, openLayerPane bool, title, author string) pdf.Config {
	cfg := pdf.DefaultConfig()
	if m := strings.TrimSpace(fp.main); m != "" {
		cfg.MainFont = normalizePath(m)
	}
	if s := strings.TrimSpace(fp.sub); s != "" {
		cfg.SubFont = normalizePath(s)
	}
	cfg.DecorationLayer = layers || openLayerPane
	cfg.OpenLayerPane = openLayerPane
	cfg.Title = title
	cfg.Author = author
	return cfg
}

// generatePDF parses all markup before producing output so a failed run
// never leaves a truncated file behind.
func generatePDF(r io.Reader, cfg pdf.Config, fonts *pdf.Fonts, logger *slog.Logger) ([]byte, error) {
	elements, err := notesheet.ParseReader(r, notesheet.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, pdf.ErrNoContent
	}
	return pdf.Generate(pdf.GenerateRequest{
		Elements: elements,
		Config:   cfg,
		Fonts:    fonts,
		Logger:   logger,
	})
}

func serve(ctx context.Context, addr string, cfg pdf.Config, fonts *pdf.Fonts, logger *slog.Logger) error {
	ln, err := server.Listen(ctx, addr)
	if err != nil {
		return err
	}
	srv := server.New(server.WithLogger(logger), server.WithConfig(cfg), server.WithFonts(fonts))
	return srv.Serve(ctx, ln)
}

func logLevel(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelError
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

func mustOpenInputs(args []string) (io.Reader, io.Closer) {
	reader, closer, err := openInputs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	return reader, closer
}

func printThemes(w io.Writer) {
	for _, name := range notesheet.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool

	// pendingSep emits a newline between sources so the last line of one
	// input never merges with the first line of the next.
	pendingSep bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.pendingSep && len(p) > 0 {
			m.pendingSep = false
			p[0] = '\n'
			return 1, nil
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if errors.Is(err, io.EOF) {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			m.pendingSep = m.idx < len(m.sources)
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	if raw == "-" {
		return inputSource{open: func() (io.Reader, io.Closer, error) {
			return os.Stdin, nil, nil
		}}, nil
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	clean := normalizePath(path)
	f, err := os.Open(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" || path == "-" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
