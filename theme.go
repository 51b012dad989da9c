package overmark

import (
	"sort"
	"strings"

	"github.com/overmark/overmark/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the terminal encoder. The six
// category styles follow the usual highlighter colours; Neutral covers
// spans with unknown or missing metadata.
type Styles struct {
	Text      Style
	Yellow    Style
	Green     Style
	Blue      Style
	Pink      Style
	Purple    Style
	Orange    Style
	Neutral   Style
	Inner     Style
	Stack     Style
	Reference Style
}

// Category returns the highlight style for a category name. Unknown
// categories resolve to the neutral style.
func (s Styles) Category(name string) Style {
	switch strings.ToLower(name) {
	case "yellow":
		return s.Yellow
	case "green":
		return s.Green
	case "blue":
		return s.Blue
	case "pink":
		return s.Pink
	case "purple":
		return s.Purple
	case "orange":
		return s.Orange
	default:
		return s.Neutral
	}
}

// Theme provides named styles for terminal highlight rendering.
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
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Text:      style(p.Text),
		Yellow:    style(p.Yellow),
		Green:     style(p.Green),
		Blue:      style(p.Blue),
		Pink:      style(p.Pink),
		Purple:    style(p.Purple),
		Orange:    style(p.Orange),
		Neutral:   style(p.Neutral),
		Inner:     style(palette.Underline, p.Inner),
		Stack:     style(palette.Bold, palette.Reverse, p.Stack),
		Reference: style(palette.Italic, p.Reference),
	}
}

var builtinThemes = map[string]Theme{
	"default":         theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"mono":            theme{name: "mono", styles: stylesFromPalette(palette.PaletteMono)},
	"gruvbox":         theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteGruvbox)},
	"dracula":         theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDracula)},
	"nord":            theme{name: "nord", styles: stylesFromPalette(palette.PaletteNord)},
	"solarized-light": theme{name: "solarized-light", styles: stylesFromPalette(palette.PaletteSolarizedLight)},
	"github-light":    theme{name: "github-light", styles: stylesFromPalette(palette.PaletteGithubLight)},
	"github-dark":     theme{name: "github-dark", styles: stylesFromPalette(palette.PaletteGithubDark)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
