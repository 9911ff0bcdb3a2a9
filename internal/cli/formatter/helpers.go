package formatter

import (
	"time"

	"github.com/alexanderramin/later/internal/domain"
)

// DateTag returns "(<relative date>)" colored by urgency, or "" for nil.
func DateTag(w *domain.When, now time.Time) string {
	if w == nil {
		return ""
	}
	return UrgencyStyle(w.Urgency(now)).Render("(" + w.Describe(now) + ")")
}

// DateHint returns the raw date and time text of w, dimmed, for prompts that
// show the current value. Empty for nil.
func DateHint(w *domain.When) string {
	if w == nil {
		return ""
	}
	text := w.DateString()
	if w.HasTime() {
		text += " " + w.TimeString()
	}
	return Dim(text)
}
