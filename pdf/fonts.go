package pdf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-pdf/fpdf"
)

const (
	mainFontFamily = "MainHeadingFont"
	subFontFamily  = "SubTextFont"
)

// Fonts is the font registry shared by measurement and drawing. A Fonts value
// is immutable once loaded and may be reused across generations; every
// measurer and surface installs the same font data so widths agree.
type Fonts struct {
	main   fontFace
	sub    fontFace
	core   bool
	styles Styles
}

type fontFace struct {
	family string
	style  string
	data   []byte
}

var (
	defaultFontsOnce sync.Once
	defaultFonts     *Fonts
)

// DefaultFonts returns the process-wide core font set (Times bold titles,
// Helvetica body). It is created on first use.
func DefaultFonts() *Fonts {
	defaultFontsOnce.Do(func() {
		defaultFonts = newFonts(fontFace{family: "Times", style: "B"}, fontFace{family: "Helvetica"}, true)
	})
	return defaultFonts
}

// LoadFonts resolves the font sources named in cfg. It reads and checks any
// TTF data up front so a missing font fails before layout starts.
func LoadFonts(cfg Config) (*Fonts, error) {
	hasPath := cfg.MainFont != "" || cfg.SubFont != ""
	hasBytes := len(cfg.MainFontBytes) > 0 || len(cfg.SubFontBytes) > 0
	switch {
	case hasPath && hasBytes:
		return nil, fmt.Errorf("pdf fonts: cannot mix font paths with font bytes")
	case hasBytes:
		if len(cfg.MainFontBytes) == 0 || len(cfg.SubFontBytes) == 0 {
			return nil, fmt.Errorf("pdf fonts: main and sub font bytes must both be provided")
		}
		return fontsFromBytes(cfg.MainFontBytes, cfg.SubFontBytes)
	case hasPath:
		if cfg.MainFont == "" || cfg.SubFont == "" {
			return nil, fmt.Errorf("pdf fonts: main and sub font paths must both be provided")
		}
		mainData, err := readFont(cfg.MainFont)
		if err != nil {
			return nil, fmt.Errorf("pdf fonts: main font: %w", err)
		}
		subData, err := readFont(cfg.SubFont)
		if err != nil {
			return nil, fmt.Errorf("pdf fonts: sub font: %w", err)
		}
		return fontsFromBytes(mainData, subData)
	default:
		return DefaultFonts(), nil
	}
}

func fontsFromBytes(mainData, subData []byte) (*Fonts, error) {
	if !isTrueType(mainData) {
		return nil, fmt.Errorf("pdf fonts: main font is not a TrueType font")
	}
	if !isTrueType(subData) {
		return nil, fmt.Errorf("pdf fonts: sub font is not a TrueType font")
	}
	return newFonts(
		fontFace{family: mainFontFamily, data: mainData},
		fontFace{family: subFontFamily, data: subData},
		false,
	), nil
}

func newFonts(main, sub fontFace, core bool) *Fonts {
	f := &Fonts{main: main, sub: sub, core: core}
	f.styles = newStyles(main, sub)
	return f
}

// Styles returns the four text styles derived from the font set.
func (f *Fonts) Styles() Styles {
	return f.styles
}

func (f *Fonts) install(pdf *fpdf.Fpdf) error {
	if !f.core {
		pdf.AddUTF8FontFromBytes(f.main.family, f.main.style, f.main.data)
		pdf.AddUTF8FontFromBytes(f.sub.family, f.sub.style, f.sub.data)
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("pdf fonts: install: %w", err)
	}
	return nil
}

// translator returns the text conversion applied before measuring or drawing.
// Core fonts use cp1252, UTF-8 fonts take text unchanged.
func (f *Fonts) translator(pdf *fpdf.Fpdf) func(string) string {
	if f.core {
		return pdf.UnicodeTranslatorFromDescriptor("")
	}
	return func(s string) string { return s }
}

func readFont(path string) ([]byte, error) {
	if strings.ToLower(filepath.Ext(path)) != ".ttf" {
		return nil, fmt.Errorf("expected .ttf font file: %s", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("font missing: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("font path is a directory: %s", path)
	}
	return os.ReadFile(path)
}

func isTrueType(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	magic := data[:4]
	return bytes.Equal(magic, []byte{0x00, 0x01, 0x00, 0x00}) || bytes.Equal(magic, []byte("true"))
}
