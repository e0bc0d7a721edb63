package pdf

import "time"

// Config holds the adjustable parts of PDF generation. Page geometry, font
// sizes, colors and spacing are fixed and not part of Config.
type Config struct {
	// MainFont and SubFont are TTF paths for titles and body text. Both must
	// be set together; when neither is set the core Times/Helvetica fonts are
	// used.
	MainFont      string
	SubFont       string
	MainFontBytes []byte
	SubFontBytes  []byte

	// DecorationLayer places highlights, boxes and the column divider in an
	// optional content group that viewers can hide.
	DecorationLayer bool
	OpenLayerPane   bool

	Title        string
	Author       string
	Creator      string
	CreationDate time.Time
}

// DefaultConfig returns a baseline configuration.
func DefaultConfig() Config {
	return Config{
		Creator: "notesheet",
	}
}

func applyConfig(dst *Config, src Config) {
	if src.MainFont != "" {
		dst.MainFont = src.MainFont
	}
	if src.SubFont != "" {
		dst.SubFont = src.SubFont
	}
	if len(src.MainFontBytes) > 0 {
		dst.MainFontBytes = src.MainFontBytes
	}
	if len(src.SubFontBytes) > 0 {
		dst.SubFontBytes = src.SubFontBytes
	}
	if src.DecorationLayer {
		dst.DecorationLayer = true
	}
	if src.OpenLayerPane {
		dst.OpenLayerPane = true
	}
	if src.Title != "" {
		dst.Title = src.Title
	}
	if src.Author != "" {
		dst.Author = src.Author
	}
	if src.Creator != "" {
		dst.Creator = src.Creator
	}
	if !src.CreationDate.IsZero() {
		dst.CreationDate = src.CreationDate
	}
}
