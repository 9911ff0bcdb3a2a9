package formatter

import (
	"github.com/alexanderramin/later/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#b8bb26")
	ColorAqua   = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen     = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleAqua      = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleYellow    = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed       = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue      = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim       = lipgloss.NewStyle().Foreground(ColorDim)
	StyleUnderline = lipgloss.NewStyle().Underline(true)
)

// UrgencyStyle returns the style used for a date tag of the given urgency.
func UrgencyStyle(u domain.Urgency) lipgloss.Style {
	switch u {
	case domain.Overdue:
		return StyleRed
	case domain.DueSoon:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}
