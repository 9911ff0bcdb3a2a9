package cli

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/later/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formPrompter collects input with huh forms. Forms draw on out so stdout
// stays clean for the rendered list.
type formPrompter struct {
	out io.Writer
	now func() time.Time
}

// NewFormPrompter returns a Prompter backed by interactive terminal forms.
func NewFormPrompter(out io.Writer, now func() time.Time) Prompter {
	if now == nil {
		now = time.Now
	}
	return &formPrompter{out: out, now: now}
}

func (p *formPrompter) Info(existing *domain.Node) (domain.Info, error) {
	var title, date, clock string
	var current *domain.When
	if existing != nil {
		title = existing.Title
		current = existing.Date
		if current != nil {
			date, clock = current.DateString(), current.TimeString()
		}
	}

	if err := p.run(infoForm(&title, &date, &clock, current)); err != nil {
		return domain.Info{}, err
	}

	when, err := domain.ParseParts(date, clock, p.now())
	if err != nil {
		return domain.Info{}, err
	}
	return domain.Info{Title: strings.TrimSpace(title), Date: when}, nil
}

func (p *formPrompter) Confirm(message string, defaultYes bool) (bool, error) {
	result := defaultYes
	if err := p.run(confirmForm(strings.TrimSpace(message), &result)); err != nil {
		return false, err
	}
	return result, nil
}

func (p *formPrompter) run(form *huh.Form) error {
	err := form.WithProgramOptions(tea.WithOutput(p.out)).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return domain.ErrCancelled
	}
	return err
}
