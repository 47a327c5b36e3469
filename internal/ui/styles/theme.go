package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/teleproj/internal/config"
)

// Theme defines the color palette for UI components
type Theme struct {
	Primary color.Color // project names, picker prompt
	Accent  color.Color // selected item, matched characters
	Muted   color.Color // indexes, paths, help text
	Warning color.Color // missing directories
}

// Preset themes
var (
	// DefaultTheme is the default color scheme
	DefaultTheme = Theme{
		Primary: lipgloss.Color("62"),  // cyan/teal
		Accent:  lipgloss.Color("212"), // pink/magenta
		Muted:   lipgloss.Color("240"), // dark gray
		Warning: lipgloss.Color("214"), // orange
	}

	// DraculaTheme is based on the Dracula color scheme
	DraculaTheme = Theme{
		Primary: lipgloss.Color("#bd93f9"), // purple
		Accent:  lipgloss.Color("#ff79c6"), // pink
		Muted:   lipgloss.Color("#6272a4"), // comment
		Warning: lipgloss.Color("#ffb86c"), // orange
	}

	// NordTheme is based on the Nord color scheme
	NordTheme = Theme{
		Primary: lipgloss.Color("#88c0d0"), // nord8 (frost cyan)
		Accent:  lipgloss.Color("#b48ead"), // nord15 (aurora purple)
		Muted:   lipgloss.Color("#4c566a"), // nord3 (polar night)
		Warning: lipgloss.Color("#ebcb8b"), // nord13 (aurora yellow)
	}

	// NoneTheme renders without any colors (uses terminal defaults)
	NoneTheme = Theme{
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
	}
)

var presets = map[string]Theme{
	"default": DefaultTheme,
	"dracula": DraculaTheme,
	"nord":    NordTheme,
	"none":    NoneTheme,
}

// currentTheme holds the active theme
var currentTheme = DefaultTheme

// plain disables all styling, including bold and underline.
var plain bool

// Current returns the current theme
func Current() Theme {
	return currentTheme
}

// Plain reports whether styling is disabled for stdout.
func Plain() bool {
	return plain
}

// Init selects the theme from config. When colorize is false the package
// level styles render plain text regardless of the theme. colorize should
// reflect stdout. The picker draws on stderr and builds its own Set with For.
// Call this after loading config and before printing any styled output.
func Init(cfg config.ThemeConfig, colorize bool) {
	theme, ok := presets[cfg.Name]
	if !ok {
		theme = DefaultTheme
	}

	if cfg.Primary != "" {
		theme.Primary = lipgloss.Color(cfg.Primary)
	}
	if cfg.Accent != "" {
		theme.Accent = lipgloss.Color(cfg.Accent)
	}
	if cfg.Muted != "" {
		theme.Muted = lipgloss.Color(cfg.Muted)
	}
	if cfg.Warning != "" {
		theme.Warning = lipgloss.Color(cfg.Warning)
	}

	currentTheme = theme
	plain = !colorize
}

func style() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Set renders the current theme for one output stream. A plain Set renders
// text unchanged.
type Set struct {
	plain bool
}

// For returns the Set for a stream that is colorized or not.
func For(colorize bool) Set {
	return Set{plain: !colorize}
}

// Stdout returns the Set chosen by Init, which follows stdout.
func Stdout() Set {
	return Set{plain: plain}
}

// Header styles table headers.
func Header() lipgloss.Style { return Stdout().Header() }

// Name styles a project name.
func Name() lipgloss.Style { return Stdout().Name() }

// Muted styles secondary text such as indexes and paths.
func Muted() lipgloss.Style { return Stdout().Muted() }

// Warning styles problems such as a missing directory.
func Warning() lipgloss.Style { return Stdout().Warning() }

// Selected styles the picker row under the cursor.
func Selected() lipgloss.Style { return Stdout().Selected() }

// Highlight styles matched characters in the picker.
func Highlight() lipgloss.Style { return Stdout().Highlight() }

func (s Set) Header() lipgloss.Style {
	if s.plain {
		return style()
	}
	return style().Bold(true)
}

func (s Set) Name() lipgloss.Style {
	if s.plain {
		return style()
	}
	return style().Foreground(currentTheme.Primary).Bold(true)
}

func (s Set) Muted() lipgloss.Style {
	if s.plain {
		return style()
	}
	return style().Foreground(currentTheme.Muted)
}

func (s Set) Warning() lipgloss.Style {
	if s.plain {
		return style()
	}
	return style().Foreground(currentTheme.Warning)
}

func (s Set) Selected() lipgloss.Style {
	if s.plain {
		return style()
	}
	return style().Foreground(currentTheme.Accent).Bold(true)
}

func (s Set) Highlight() lipgloss.Style {
	if s.plain {
		return style()
	}
	return style().Foreground(currentTheme.Accent).Bold(true).Underline(true)
}
