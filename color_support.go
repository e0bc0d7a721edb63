package notesheet

import (
	"os"
	"strings"
)

// DetectColorSupport reports whether the environment allows ANSI styling in
// the terminal preview. NO_COLOR (any value) and TERM=dumb disable it.
func DetectColorSupport() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("NOTESHEET_COLOR") == "0" {
		return false
	}
	term := strings.ToLower(os.Getenv("TERM"))
	return term != "dumb"
}

// PreviewTheme returns the named theme, or the boring theme when name is
// empty and color is not supported.
func PreviewTheme(name string, color bool) (Theme, bool) {
	if strings.TrimSpace(name) == "" && !color {
		return ThemeByName("boring")
	}
	return ThemeByName(name)
}
