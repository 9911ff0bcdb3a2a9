package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/later/internal/cli/formatter"
	"github.com/alexanderramin/later/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// laterHuhTheme styles huh forms with the formatter palette.
func laterHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("title is required")
	}
	return nil
}

// validateOptionalDate accepts empty or YYYY/MM/DD.
func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := domain.ParseDate(s); err != nil {
		return errors.New("use yyyy/mm/dd format")
	}
	return nil
}

// validateOptionalClock accepts empty or HH:MM.
func validateOptionalClock(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := domain.ParseClock(s); err != nil {
		return errors.New("use hh:mm format")
	}
	return nil
}

// infoForm returns a themed form for title, date and time. current, when
// set, is shown as a reminder under the date field.
func infoForm(title, date, clock *string, current *domain.When) *huh.Form {
	dateField := huh.NewInput().
		Title("Date (yyyy/mm/dd, blank for none)").
		Placeholder("2025/06/30").
		Value(date).
		Validate(validateOptionalDate)
	if current != nil {
		dateField = dateField.Description("currently " + formatter.DateHint(current))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(title).
				Validate(validateTitle),
			dateField,
			huh.NewInput().
				Title("Time (hh:mm, blank for none)").
				Placeholder("09:30").
				Value(clock).
				Validate(validateOptionalClock),
		),
	).WithTheme(laterHuhTheme()).WithShowHelp(false)
}

// confirmForm creates a huh form for a yes/no confirmation.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(laterHuhTheme()).WithShowHelp(false)
}
