package domain

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Input layouts accepted from users and shown back to them.
const (
	DateLayout  = "2006/01/02"
	ClockLayout = "15:04"

	dateFormatHint  = "yyyy/mm/dd"
	clockFormatHint = "hh:mm"
)

// WhenKind distinguishes a bare calendar date from a date with a time of day.
type WhenKind int

const (
	DateOnly WhenKind = iota
	DateTime
)

// Urgency classifies how close a When is relative to now. Display only.
type Urgency int

const (
	Upcoming Urgency = iota
	DueSoon
	Overdue
)

func (u Urgency) String() string {
	switch u {
	case Overdue:
		return "overdue"
	case DueSoon:
		return "due_soon"
	default:
		return "upcoming"
	}
}

// When is an optional due date attached to entries and lists. It is either a
// calendar date or a local date-time. Values are immutable.
type When struct {
	kind WhenKind
	t    time.Time
}

// NewDate returns a date-only When.
func NewDate(year int, month time.Month, day int) When {
	return When{kind: DateOnly, t: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// NewDateTime returns a When pinned to t in the local zone.
func NewDateTime(t time.Time) When {
	return When{kind: DateTime, t: t.In(time.Local)}
}

// FromParts combines optional date and clock parts. A clock without a date
// lands on now's calendar day. Both absent yields nil.
func FromParts(date, clock *time.Time, now time.Time) *When {
	switch {
	case date == nil && clock == nil:
		return nil
	case clock == nil:
		w := NewDate(date.Date())
		return &w
	}

	base := now.In(time.Local)
	if date != nil {
		base = *date
	}
	y, m, d := base.Date()
	w := NewDateTime(time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, time.Local))
	return &w
}

// ParseDate parses a YYYY/MM/DD date. Month and day may omit the leading zero.
func ParseDate(s string) (time.Time, error) {
	f, ok := numericFields(s, "/", 3)
	if !ok || f[1] < 1 || f[1] > 12 || f[2] < 1 {
		return time.Time{}, &ParseError{Input: s, Format: dateFormatHint, Err: errors.New("not a date")}
	}
	t := time.Date(f[0], time.Month(f[1]), f[2], 0, 0, 0, 0, time.Local)
	if t.Day() != f[2] {
		return time.Time{}, &ParseError{Input: s, Format: dateFormatHint, Err: errors.New("no such day")}
	}
	return t, nil
}

// ParseClock parses a 24h HH:MM time of day. Either field may be one digit.
func ParseClock(s string) (time.Time, error) {
	f, ok := numericFields(s, ":", 2)
	if !ok || f[0] > 23 || f[1] > 59 {
		return time.Time{}, &ParseError{Input: s, Format: clockFormatHint, Err: errors.New("not a time")}
	}
	return time.Date(0, 1, 1, f[0], f[1], 0, 0, time.Local), nil
}

// numericFields splits s on sep into exactly n unsigned decimal fields.
func numericFields(s, sep string, n int) ([]int, bool) {
	parts := strings.Split(strings.TrimSpace(s), sep)
	if len(parts) != n {
		return nil, false
	}
	out := make([]int, n)
	for i, p := range parts {
		if p == "" || strings.TrimLeft(p, "0123456789") != "" {
			return nil, false
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// ParseParts parses optional date and clock text. Blank text means absent.
func ParseParts(date, clock string, now time.Time) (*When, error) {
	var d, c *time.Time
	if strings.TrimSpace(date) != "" {
		t, err := ParseDate(date)
		if err != nil {
			return nil, err
		}
		d = &t
	}
	if strings.TrimSpace(clock) != "" {
		t, err := ParseClock(clock)
		if err != nil {
			return nil, err
		}
		c = &t
	}
	return FromParts(d, c, now), nil
}

func (w When) Kind() WhenKind  { return w.kind }
func (w When) HasTime() bool   { return w.kind == DateTime }
func (w When) Time() time.Time { return w.t }

// DateString formats the date portion as YYYY/MM/DD.
func (w When) DateString() string {
	return w.t.Format(DateLayout)
}

// TimeString formats the time of day as HH:MM, or "" for date-only values.
func (w When) TimeString() string {
	if w.kind == DateOnly {
		return ""
	}
	return w.t.Format(ClockLayout)
}

// Equal reports whether both values have the same kind and instant.
func (w When) Equal(o When) bool {
	return w.kind == o.kind && w.t.Equal(o.t)
}

// String describes w relative to the current time.
func (w When) String() string {
	return w.Describe(time.Now())
}

// Describe returns a human label for w relative to now, for example
// "Tomorrow", "upcoming Friday; in 3 days" or "March 04, 09:30am; in 3 weeks".
func (w When) Describe(now time.Time) string {
	now = now.In(w.t.Location())
	days := w.daysFrom(now)

	var label, suffix string
	switch days {
	case -1:
		label = "Yesterday"
	case 0:
		label = "Today"
	case 1:
		label = "Tomorrow"
	default:
		switch {
		case days >= 1 && days <= 7:
			label = "upcoming " + w.t.Format("Monday")
		case days >= -7 && days <= -1:
			label = "recent " + w.t.Format("Monday")
		case w.t.Year() == now.Year():
			label = w.t.Format("January 02")
		default:
			label = w.t.Format("January 02 2006")
		}
		suffix = relativeSuffix(days)
	}

	if w.kind == DateTime {
		return fmt.Sprintf("%s, %s%s", label, w.t.Format("03:04pm"), suffix)
	}
	return label + suffix
}

func relativeSuffix(days int) string {
	n, unit := days, "days"
	if days <= -14 || days >= 14 {
		n, unit = days/7, "weeks"
	}
	if days < 0 {
		return fmt.Sprintf("; %d %s ago", -n, unit)
	}
	return fmt.Sprintf("; in %d %s", n, unit)
}

// Urgency classifies the remaining time until w. Date-only values count
// whole days from today, so a date of today is due soon and tomorrow is not.
func (w When) Urgency(now time.Time) Urgency {
	var remaining time.Duration
	if w.kind == DateOnly {
		remaining = time.Duration(w.daysFrom(now.In(w.t.Location()))) * 24 * time.Hour
	} else {
		remaining = w.t.Sub(now)
	}

	switch {
	case remaining < 0:
		return Overdue
	case remaining < 24*time.Hour:
		return DueSoon
	default:
		return Upcoming
	}
}

// daysFrom counts calendar days from now's date to w's date.
func (w When) daysFrom(now time.Time) int {
	return int(dayNumber(w.t) - dayNumber(now))
}

func dayNumber(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

func secondOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// Compare orders two optional values by (date, time of day). Nil sorts after
// every present value and a date-only value precedes date-times on its day.
func Compare(a, b *When) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	if c := cmp.Compare(dayNumber(a.t), dayNumber(b.t)); c != 0 {
		return c
	}
	if a.kind != b.kind {
		if a.kind == DateOnly {
			return -1
		}
		return 1
	}
	if a.kind == DateOnly {
		return 0
	}
	if c := cmp.Compare(secondOfDay(a.t), secondOfDay(b.t)); c != 0 {
		return c
	}
	return cmp.Compare(a.t.Nanosecond(), b.t.Nanosecond())
}

// whenJSON keeps the stored shape {"Date": "..."} or {"DateTime": "..."}.
type whenJSON struct {
	Date     *string `json:"Date,omitempty"`
	DateTime *string `json:"DateTime,omitempty"`
}

const storedDateLayout = "2006-01-02"

func (w When) MarshalJSON() ([]byte, error) {
	var out whenJSON
	if w.kind == DateOnly {
		s := w.t.Format(storedDateLayout)
		out.Date = &s
	} else {
		s := w.t.Format(time.RFC3339Nano)
		out.DateTime = &s
	}
	return json.Marshal(out)
}

func (w *When) UnmarshalJSON(data []byte) error {
	var in whenJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch {
	case in.Date != nil:
		t, err := time.ParseInLocation(storedDateLayout, *in.Date, time.Local)
		if err != nil {
			return fmt.Errorf("decoding date: %w", err)
		}
		*w = NewDate(t.Date())
	case in.DateTime != nil:
		t, err := time.Parse(time.RFC3339Nano, *in.DateTime)
		if err != nil {
			return fmt.Errorf("decoding date-time: %w", err)
		}
		*w = NewDateTime(t)
	default:
		return errors.New("decoding date: expected Date or DateTime")
	}
	return nil
}
