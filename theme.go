package notesheet

import (
	"sort"
	"strings"
)

const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiDim       = "\x1b[2m"
	ansiUnderline = "\x1b[4m"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the terminal preview.
type Styles struct {
	MainTitle Style
	SubTitle  Style
	Bullet    Style
	Text      Style
	Box       Style
	BoxBorder Style
	Break     Style
}

// Theme provides named styles for the terminal preview.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	return Style{Prefix: strings.Join(prefixes, "")}
}

func fg256(n string) string { return "\x1b[38;5;" + n + "m" }

func bg256(n string) string { return "\x1b[48;5;" + n + "m" }

var builtinThemes = map[string]Theme{
	"default": NewTheme("default", Styles{
		MainTitle: style(ansiBold, ansiUnderline, fg256("236")),
		SubTitle:  style(ansiBold, fg256("236"), bg256("189")),
		Bullet:    style(fg256("30")),
		Text:      style(fg256("237")),
		Box:       style(fg256("237"), bg256("255")),
		BoxBorder: style(fg256("240")),
		Break:     style(ansiDim),
	}),
	"night": NewTheme("night", Styles{
		MainTitle: style(ansiBold, ansiUnderline, fg256("255")),
		SubTitle:  style(ansiBold, fg256("189"), bg256("60")),
		Bullet:    style(fg256("44")),
		Text:      style(fg256("252")),
		Box:       style(fg256("252"), bg256("236")),
		BoxBorder: style(fg256("245")),
		Break:     style(ansiDim),
	}),
	"boring": NewTheme("boring", Styles{}),
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	t, ok := builtinThemes[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// AvailableThemes returns the sorted names of the built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s Style) apply(text string) string {
	if s.Prefix == "" || text == "" {
		return text
	}
	return s.Prefix + text + ansiReset
}
