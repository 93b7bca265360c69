package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the configurable visual styles for the shell chrome:
// the scoreboard, its sidebar and the mode tabs. Game boards draw
// through the Screen buffer and are not themed here.
type Theme struct {
	// Headline styles
	Title lipgloss.Style
	Stats lipgloss.Style
	Help  lipgloss.Style

	// Panel styles
	Panel lipgloss.Style // Bordered box around sidebar and table
	Empty lipgloss.Style // Placeholder when a board has no rows

	// Sidebar list styles
	ItemNormal lipgloss.Style
	ItemActive lipgloss.Style

	// Mode tab styles (narrow layout)
	TabNormal lipgloss.Style
	TabActive lipgloss.Style

	// Score table styles
	TableHeaderBorder lipgloss.Color
	TableSelected     lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1),
		Stats: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4),

		ItemNormal: lipgloss.NewStyle(),
		ItemActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),

		TabNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1),

		TableHeaderBorder: lipgloss.Color("240"),
		TableSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals where the
// default palette reads poorly.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).MarginBottom(1)
	theme.ItemActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	theme.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("232")).
		Background(lipgloss.Color("250")).
		Padding(0, 1)
	theme.TableSelected = lipgloss.NewStyle().
		Foreground(lipgloss.Color("232")).
		Background(lipgloss.Color("250"))
	return theme
}

// Global theme variable (can be changed at runtime)
var currentTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return currentTheme
}
