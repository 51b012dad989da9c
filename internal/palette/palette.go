// Package palette holds the raw ANSI prefix tables the built-in themes are
// assembled from. Prefixes are SGR sequences without a trailing reset; the
// terminal encoder manages resets.
package palette

// SGR attribute prefixes shared by all palettes.
const (
	Bold      = "\x1b[1m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
	Reverse   = "\x1b[7m"
)

// Palette lists the colour prefixes a theme derives its styles from. The
// six named entries are the highlighter categories; Neutral covers spans
// with unknown or missing metadata. Inner, Stack and Reference are extra
// colour applied on top of the fixed attributes for those roles.
type Palette struct {
	Text      string
	Yellow    string
	Green     string
	Blue      string
	Pink      string
	Purple    string
	Orange    string
	Neutral   string
	Inner     string
	Stack     string
	Reference string
}

// PaletteDefault works on light and dark terminals: bright 256-colour
// backgrounds with near-black text.
var PaletteDefault = Palette{
	Yellow:    "\x1b[48;5;227m\x1b[38;5;16m",
	Green:     "\x1b[48;5;157m\x1b[38;5;16m",
	Blue:      "\x1b[48;5;153m\x1b[38;5;16m",
	Pink:      "\x1b[48;5;218m\x1b[38;5;16m",
	Purple:    "\x1b[48;5;183m\x1b[38;5;16m",
	Orange:    "\x1b[48;5;215m\x1b[38;5;16m",
	Neutral:   "\x1b[48;5;254m\x1b[38;5;16m",
	Reference: "\x1b[38;5;245m",
}

// PaletteMono uses attributes only, for terminals without colour support.
var PaletteMono = Palette{
	Yellow:  Reverse,
	Green:   Reverse,
	Blue:    Reverse,
	Pink:    Reverse,
	Purple:  Reverse,
	Orange:  Reverse,
	Neutral: Reverse,
}

var PaletteGruvbox = Palette{
	Text:      "\x1b[38;5;223m",
	Yellow:    "\x1b[48;5;214m\x1b[38;5;235m",
	Green:     "\x1b[48;5;142m\x1b[38;5;235m",
	Blue:      "\x1b[48;5;109m\x1b[38;5;235m",
	Pink:      "\x1b[48;5;167m\x1b[38;5;235m",
	Purple:    "\x1b[48;5;175m\x1b[38;5;235m",
	Orange:    "\x1b[48;5;208m\x1b[38;5;235m",
	Neutral:   "\x1b[48;5;245m\x1b[38;5;235m",
	Reference: "\x1b[38;5;246m",
}

var PaletteDracula = Palette{
	Text:      "\x1b[38;5;253m",
	Yellow:    "\x1b[48;5;228m\x1b[38;5;235m",
	Green:     "\x1b[48;5;84m\x1b[38;5;235m",
	Blue:      "\x1b[48;5;117m\x1b[38;5;235m",
	Pink:      "\x1b[48;5;212m\x1b[38;5;235m",
	Purple:    "\x1b[48;5;141m\x1b[38;5;235m",
	Orange:    "\x1b[48;5;215m\x1b[38;5;235m",
	Neutral:   "\x1b[48;5;240m\x1b[38;5;255m",
	Reference: "\x1b[38;5;103m",
}

var PaletteNord = Palette{
	Text:      "\x1b[38;5;254m",
	Yellow:    "\x1b[48;5;222m\x1b[38;5;236m",
	Green:     "\x1b[48;5;108m\x1b[38;5;236m",
	Blue:      "\x1b[48;5;110m\x1b[38;5;236m",
	Pink:      "\x1b[48;5;174m\x1b[38;5;236m",
	Purple:    "\x1b[48;5;139m\x1b[38;5;236m",
	Orange:    "\x1b[48;5;173m\x1b[38;5;236m",
	Neutral:   "\x1b[48;5;245m\x1b[38;5;236m",
	Reference: "\x1b[38;5;245m",
}

var PaletteSolarizedLight = Palette{
	Text:      "\x1b[38;5;66m",
	Yellow:    "\x1b[48;5;187m\x1b[38;5;23m",
	Green:     "\x1b[48;5;151m\x1b[38;5;23m",
	Blue:      "\x1b[48;5;152m\x1b[38;5;23m",
	Pink:      "\x1b[48;5;217m\x1b[38;5;23m",
	Purple:    "\x1b[48;5;182m\x1b[38;5;23m",
	Orange:    "\x1b[48;5;180m\x1b[38;5;23m",
	Neutral:   "\x1b[48;5;254m\x1b[38;5;23m",
	Reference: "\x1b[38;5;102m",
}

var PaletteGithubLight = Palette{
	Yellow:    "\x1b[48;5;230m\x1b[38;5;16m",
	Green:     "\x1b[48;5;194m\x1b[38;5;16m",
	Blue:      "\x1b[48;5;189m\x1b[38;5;16m",
	Pink:      "\x1b[48;5;224m\x1b[38;5;16m",
	Purple:    "\x1b[48;5;225m\x1b[38;5;16m",
	Orange:    "\x1b[48;5;223m\x1b[38;5;16m",
	Neutral:   "\x1b[48;5;255m\x1b[38;5;16m",
	Reference: "\x1b[38;5;244m",
}

var PaletteGithubDark = Palette{
	Text:      "\x1b[38;5;252m",
	Yellow:    "\x1b[48;5;100m\x1b[38;5;255m",
	Green:     "\x1b[48;5;22m\x1b[38;5;255m",
	Blue:      "\x1b[48;5;24m\x1b[38;5;255m",
	Pink:      "\x1b[48;5;95m\x1b[38;5;255m",
	Purple:    "\x1b[48;5;54m\x1b[38;5;255m",
	Orange:    "\x1b[48;5;130m\x1b[38;5;255m",
	Neutral:   "\x1b[48;5;238m\x1b[38;5;255m",
	Reference: "\x1b[38;5;246m",
}
