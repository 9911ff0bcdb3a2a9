// Package teatest drives bubbletea models synchronously in tests.
//
// It stands in for tea.Program by calling Update directly and draining the
// returned Cmds, so huh forms can be exercised without a terminal. Cmds that
// block (cursor blink timers) are skipped after a short timeout.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth is the safety limit for command draining to prevent infinite loops.
const MaxDrainDepth = 100

// cmdTimeout separates message factories, which return at once, from blink
// timers that block for about half a second.
const cmdTimeout = 10 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.QuitMsg has been seen.
	Quitting bool
}

// New creates a Driver for model. Call DrainInit afterwards to run Init.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Option configures the Driver during construction.
type Option func(*Driver)

// WithSize sends an initial WindowSizeMsg before any other processing.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		d.Model = updated
	}
}

// DrainInit executes the model's Init command and drains the resulting messages.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drainCmd(d.Model.Init(), 0)
}

// Send dispatches a message through Update and drains all resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// PressEnter sends the Enter key.
func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

// PressCtrlC sends Ctrl+C.
func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
}

// View returns the full rendered output of the model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := execCmdWithTimeout(cmd)
	if msg == nil || isCursorBlink(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drainCmd(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(next, depth+1)
}

// execCmdWithTimeout runs cmd in a goroutine and returns nil if it does not
// finish within cmdTimeout.
func execCmdWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink detects the unexported blink messages of bubbles/cursor,
// which chain into blocking timer Cmds.
func isCursorBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
