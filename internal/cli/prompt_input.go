package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/later/internal/domain"
)

// Prompter collects item details and confirmations from the user.
type Prompter interface {
	// Info asks for a title and an optional date and time. existing, when
	// non-nil, supplies the current values.
	Info(existing *domain.Node) (domain.Info, error)
	Confirm(message string, defaultYes bool) (bool, error)
}

// clearValue typed at a date or time prompt removes the current value.
const clearValue = "-"

// linePrompter reads plain lines. It serves pipes, dumb terminals and tests.
type linePrompter struct {
	in  io.Reader
	out io.Writer
	now func() time.Time
}

// NewLinePrompter returns a Prompter that writes prompts to out and reads
// answers from in, one line each.
func NewLinePrompter(in io.Reader, out io.Writer, now func() time.Time) Prompter {
	if now == nil {
		now = time.Now
	}
	return &linePrompter{in: in, out: out, now: now}
}

func (p *linePrompter) Confirm(message string, defaultYes bool) (bool, error) {
	fmt.Fprint(p.out, message)
	text, err := readPromptLine(p.in)
	if err != nil {
		return false, domain.ErrCancelled
	}
	return parseYesNo(text, defaultYes), nil
}

func parseYesNo(text string, defaultYes bool) bool {
	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		return defaultYes
	}
	return text == "y" || text == "yes"
}

func (p *linePrompter) Info(existing *domain.Node) (domain.Info, error) {
	var current domain.Info
	if existing != nil {
		current = existing.Info()
	}

	title, err := p.ask("title", current.Title, func(s string) string {
		if s == "" {
			return "Please give the new item a title."
		}
		return ""
	})
	if err != nil {
		return domain.Info{}, err
	}

	var curDate, curClock string
	if current.Date != nil {
		curDate, curClock = current.Date.DateString(), current.Date.TimeString()
	}

	date, err := p.ask("date (?)", curDate, func(s string) string {
		if s == "" || s == clearValue {
			return ""
		}
		if _, err := domain.ParseDate(s); err != nil {
			return "Error parsing date (format: yyyy/mm/dd)"
		}
		return ""
	})
	if err != nil {
		return domain.Info{}, err
	}

	clock, err := p.ask("time (?)", curClock, func(s string) string {
		if s == "" || s == clearValue {
			return ""
		}
		if _, err := domain.ParseClock(s); err != nil {
			return "Error parsing time (format: hh:mm)"
		}
		return ""
	})
	if err != nil {
		return domain.Info{}, err
	}

	when, err := domain.ParseParts(blankIfCleared(date), blankIfCleared(clock), p.now())
	if err != nil {
		return domain.Info{}, err
	}
	return domain.Info{Title: title, Date: when}, nil
}

// ask repeats the prompt until check returns no complaint. A blank answer
// keeps current when there is one.
func (p *linePrompter) ask(label, current string, check func(string) string) (string, error) {
	prompt := label + ": "
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, current)
	}
	for {
		fmt.Fprint(p.out, prompt)
		text, err := readPromptLine(p.in)
		if err != nil {
			return "", domain.ErrCancelled
		}
		text = strings.TrimSpace(text)
		if text == "" {
			text = current
		}
		if complaint := check(text); complaint != "" {
			fmt.Fprintln(p.out, complaint)
			continue
		}
		return text, nil
	}
}

func blankIfCleared(s string) string {
	if s == clearValue {
		return ""
	}
	return s
}

// readPromptLine reads until either LF or CR so Enter works in normal and raw terminal modes.
func readPromptLine(in io.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}

	var buf []byte
	var one [1]byte

	for {
		n, err := in.Read(one[:])
		if n > 0 {
			switch one[0] {
			case '\n', '\r':
				return string(buf), nil
			default:
				buf = append(buf, one[0])
			}
		}

		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return string(buf), err
		}
	}
}
