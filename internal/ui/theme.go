package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// DefaultTheme is used when no theme, or an unknown one, is requested.
const DefaultTheme = "terminal"

// Theme defines the color scheme and styles for the TUI
type Theme struct {
	Name string

	// Core colors
	Primary    lipgloss.AdaptiveColor
	Secondary  lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor
	Warning    lipgloss.AdaptiveColor

	// UI element colors
	Border     lipgloss.AdaptiveColor // Separator lines, borders
	Dimmed     lipgloss.AdaptiveColor // Very subtle text (hints)
	Subtle     lipgloss.AdaptiveColor // Selection backgrounds
	Background lipgloss.AdaptiveColor // Background for overlays

	// GlamourStyle names the glamour standard style used for markdown
	GlamourStyle string

	// Component styles
	Table       TableStyles
	Title       lipgloss.Style // Page headings
	Heading     lipgloss.Style // Section headings inside a page
	NavActive   lipgloss.Style
	NavInactive lipgloss.Style
	Prompt      lipgloss.Style // The → marker in the palette and hero
	Chip        lipgloss.Style // Tags and tech labels
}

// TableStyles defines styles for table components
type TableStyles struct {
	Header      lipgloss.Style
	Cell        lipgloss.Style
	SelectedRow lipgloss.Style
}

// ToTableStyles converts Theme.Table to bubbles table.Styles
func (t *Theme) ToTableStyles() table.Styles {
	return table.Styles{
		Header:   t.Table.Header,
		Cell:     t.Table.Cell,
		Selected: t.Table.SelectedRow,
	}
}

// palette is the raw color set a theme is derived from
type palette struct {
	primary    lipgloss.AdaptiveColor
	secondary  lipgloss.AdaptiveColor
	accent     lipgloss.AdaptiveColor
	foreground lipgloss.AdaptiveColor
	muted      lipgloss.AdaptiveColor
	err        lipgloss.AdaptiveColor
	success    lipgloss.AdaptiveColor
	warning    lipgloss.AdaptiveColor
	border     lipgloss.AdaptiveColor
	subtle     lipgloss.AdaptiveColor
	background lipgloss.AdaptiveColor
	selectedFg lipgloss.Color
	selectedBg lipgloss.Color
	glamour    string
}

func newTheme(name string, p palette) *Theme {
	t := &Theme{
		Name:         name,
		Primary:      p.primary,
		Secondary:    p.secondary,
		Accent:       p.accent,
		Foreground:   p.foreground,
		Muted:        p.muted,
		Error:        p.err,
		Success:      p.success,
		Warning:      p.warning,
		Border:       p.border,
		Dimmed:       p.muted,
		Subtle:       p.subtle,
		Background:   p.background,
		GlamourStyle: p.glamour,
	}

	t.Table.Header = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Foreground(t.Primary).
		Bold(true).
		PaddingLeft(1).
		PaddingRight(1)

	t.Table.Cell = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	t.Table.SelectedRow = lipgloss.NewStyle().
		Foreground(p.selectedFg).
		Background(p.selectedBg).
		Bold(false)

	t.Title = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Bold(true)

	t.Heading = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.NavActive = lipgloss.NewStyle().
		Foreground(t.Primary).
		Underline(true).
		Bold(true)

	t.NavInactive = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Prompt = lipgloss.NewStyle().
		Foreground(t.Primary)

	t.Chip = lipgloss.NewStyle().
		Foreground(t.Secondary).
		Background(t.Subtle).
		Padding(0, 1)

	return t
}

// ThemeTerminal is the green-on-black look of the portfolio site
func ThemeTerminal() *Theme {
	return newTheme("terminal", palette{
		primary:    lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#22c55e"},
		secondary:  lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"},
		accent:     lipgloss.AdaptiveColor{Light: "#0f766e", Dark: "#2dd4bf"},
		foreground: lipgloss.AdaptiveColor{Light: "#111827", Dark: "#f3f4f6"},
		muted:      lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#6b7280"},
		err:        lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"},
		success:    lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#22c55e"},
		warning:    lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"},
		border:     lipgloss.AdaptiveColor{Light: "#d1d5db", Dark: "#1f2937"},
		subtle:     lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#1f2937"},
		background: lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#030712"},
		selectedFg: lipgloss.Color("#030712"),
		selectedBg: lipgloss.Color("#22c55e"),
		glamour:    "dark",
	})
}

// ThemeCharm returns the Charm look
func ThemeCharm() *Theme {
	return newTheme("charm", palette{
		primary:    lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"},
		secondary:  lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"},
		accent:     lipgloss.AdaptiveColor{Light: "#F780E2", Dark: "#F780E2"},
		foreground: lipgloss.AdaptiveColor{Light: "235", Dark: "252"},
		muted:      lipgloss.AdaptiveColor{Light: "243", Dark: "243"},
		err:        lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"},
		success:    lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"},
		warning:    lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFAA00"},
		border:     lipgloss.AdaptiveColor{Light: "240", Dark: "240"},
		subtle:     lipgloss.AdaptiveColor{Light: "241", Dark: "241"},
		background: lipgloss.AdaptiveColor{Light: "254", Dark: "235"},
		selectedFg: lipgloss.Color("229"),
		selectedBg: lipgloss.Color("57"),
		glamour:    "dark",
	})
}

// ThemeDracula returns a Dracula-inspired theme
func ThemeDracula() *Theme {
	return newTheme("dracula", palette{
		primary:    lipgloss.AdaptiveColor{Light: "#bd93f9", Dark: "#bd93f9"},
		secondary:  lipgloss.AdaptiveColor{Light: "#8be9fd", Dark: "#8be9fd"},
		accent:     lipgloss.AdaptiveColor{Light: "#ff79c6", Dark: "#ff79c6"},
		foreground: lipgloss.AdaptiveColor{Light: "#282a36", Dark: "#f8f8f2"},
		muted:      lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#6272a4"},
		err:        lipgloss.AdaptiveColor{Light: "#ff5555", Dark: "#ff5555"},
		success:    lipgloss.AdaptiveColor{Light: "#50fa7b", Dark: "#50fa7b"},
		warning:    lipgloss.AdaptiveColor{Light: "#f1fa8c", Dark: "#f1fa8c"},
		border:     lipgloss.AdaptiveColor{Light: "61", Dark: "61"},
		subtle:     lipgloss.AdaptiveColor{Light: "#44475a", Dark: "#44475a"},
		background: lipgloss.AdaptiveColor{Light: "#f8f8f2", Dark: "#282a36"},
		selectedFg: lipgloss.Color("#282a36"),
		selectedBg: lipgloss.Color("#bd93f9"),
		glamour:    "dracula",
	})
}

// ThemeNord returns a Nord-inspired theme
func ThemeNord() *Theme {
	return newTheme("nord", palette{
		primary:    lipgloss.AdaptiveColor{Light: "#5e81ac", Dark: "#88c0d0"},
		secondary:  lipgloss.AdaptiveColor{Light: "#81a1c1", Dark: "#81a1c1"},
		accent:     lipgloss.AdaptiveColor{Light: "#b48ead", Dark: "#b48ead"},
		foreground: lipgloss.AdaptiveColor{Light: "#2e3440", Dark: "#eceff4"},
		muted:      lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#4c566a"},
		err:        lipgloss.AdaptiveColor{Light: "#bf616a", Dark: "#bf616a"},
		success:    lipgloss.AdaptiveColor{Light: "#a3be8c", Dark: "#a3be8c"},
		warning:    lipgloss.AdaptiveColor{Light: "#ebcb8b", Dark: "#ebcb8b"},
		border:     lipgloss.AdaptiveColor{Light: "#d8dee9", Dark: "#3b4252"},
		subtle:     lipgloss.AdaptiveColor{Light: "#434c5e", Dark: "#434c5e"},
		background: lipgloss.AdaptiveColor{Light: "#eceff4", Dark: "#2e3440"},
		selectedFg: lipgloss.Color("#2e3440"),
		selectedBg: lipgloss.Color("#88c0d0"),
		glamour:    "dark",
	})
}

// ThemeLight is for light terminal backgrounds
func ThemeLight() *Theme {
	return newTheme("light", palette{
		primary:    lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#15803d"},
		secondary:  lipgloss.AdaptiveColor{Light: "#0369a1", Dark: "#0369a1"},
		accent:     lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#7c3aed"},
		foreground: lipgloss.AdaptiveColor{Light: "#111827", Dark: "#111827"},
		muted:      lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#6b7280"},
		err:        lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#b91c1c"},
		success:    lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#15803d"},
		warning:    lipgloss.AdaptiveColor{Light: "#a16207", Dark: "#a16207"},
		border:     lipgloss.AdaptiveColor{Light: "#d1d5db", Dark: "#d1d5db"},
		subtle:     lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#e5e7eb"},
		background: lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#ffffff"},
		selectedFg: lipgloss.Color("#ffffff"),
		selectedBg: lipgloss.Color("#15803d"),
		glamour:    "light",
	})
}

var themes = map[string]func() *Theme{
	"terminal": ThemeTerminal,
	"charm":    ThemeCharm,
	"dracula":  ThemeDracula,
	"nord":     ThemeNord,
	"light":    ThemeLight,
}

// GetTheme returns a theme by name, defaulting to the terminal theme
func GetTheme(name string) *Theme {
	if ctor, ok := themes[name]; ok {
		return ctor()
	}
	return themes[DefaultTheme]()
}

// IsTheme reports whether name is a known theme
func IsTheme(name string) bool {
	_, ok := themes[name]
	return ok
}

// AvailableThemes returns the sorted theme names
func AvailableThemes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
