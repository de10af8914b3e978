package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// DefaultGlyph replaces the x of completed tasks on screen.
const DefaultGlyph = "✔"

// Theme defines the colors of the session view. All colors use lipgloss
// ANSI 256-color codes. An empty color leaves the terminal default.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Cursor row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	Title     lipgloss.Color
	Completed lipgloss.Color // completion glyph
	Warning   lipgloss.Color // the ! of confirmation prompts
	HelpKey   lipgloss.Color
	HelpText  lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	Title:     lipgloss.Color("255"),
	Completed: lipgloss.Color("114"), // green
	Warning:   lipgloss.Color("196"), // bright red
	HelpKey:   lipgloss.Color("75"),  // blue
	HelpText:  lipgloss.Color("241"),
}

// LightTheme suits terminals with a light background.
var LightTheme = Theme{
	NormalText: lipgloss.Color("235"),
	FaintText:  lipgloss.Color("243"),

	SelectedBackground: lipgloss.Color("254"),
	SelectedForeground: lipgloss.Color("232"),

	Title:     lipgloss.Color("232"),
	Completed: lipgloss.Color("28"),  // dark green
	Warning:   lipgloss.Color("160"), // red
	HelpKey:   lipgloss.Color("25"),  // dark blue
	HelpText:  lipgloss.Color("245"),
}

// PlainTheme uses no colors at all.
var PlainTheme = Theme{}

// Theme names understood by ThemeByName.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
	ThemePlain = "plain"
)

// ThemeByName returns the built-in theme called name. An empty name selects
// the default theme.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", ThemeDark:
		return DefaultTheme, nil
	case ThemeLight:
		return LightTheme, nil
	case ThemePlain:
		return PlainTheme, nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q (want %s, %s or %s)", name, ThemeDark, ThemeLight, ThemePlain)
	}
}

// styles are the lipgloss styles derived from a Theme.
type styles struct {
	title     lipgloss.Style
	task      lipgloss.Style
	selected  lipgloss.Style
	done      lipgloss.Style
	warning   lipgloss.Style
	status    lipgloss.Style
	cursor    lipgloss.Style
	helpKey   lipgloss.Style
	helpDesc  lipgloss.Style
	helpTitle lipgloss.Style
	helpHint  lipgloss.Style
}

func newStyles(theme Theme) styles {
	selected := colored(lipgloss.NewStyle(), theme.SelectedForeground)
	if theme.SelectedBackground != "" {
		selected = selected.Background(theme.SelectedBackground)
	} else {
		selected = selected.Reverse(true)
	}
	return styles{
		title:     colored(lipgloss.NewStyle(), theme.Title).Bold(true),
		task:      colored(lipgloss.NewStyle(), theme.NormalText),
		selected:  selected,
		done:      colored(lipgloss.NewStyle(), theme.Completed).Bold(true),
		warning:   colored(lipgloss.NewStyle(), theme.Warning).Bold(true),
		status:    colored(lipgloss.NewStyle(), theme.FaintText).Italic(true),
		cursor:    lipgloss.NewStyle().Reverse(true),
		helpKey:   colored(lipgloss.NewStyle(), theme.HelpKey).Width(8),
		helpDesc:  colored(lipgloss.NewStyle(), theme.NormalText),
		helpTitle: colored(lipgloss.NewStyle(), theme.Title).Bold(true),
		helpHint:  colored(lipgloss.NewStyle(), theme.HelpText),
	}
}

func colored(style lipgloss.Style, fg lipgloss.Color) lipgloss.Style {
	if fg == "" {
		return style
	}
	return style.Foreground(fg)
}
