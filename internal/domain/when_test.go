package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sunday.
var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)

func dateOffset(days int) When {
	return NewDate(testNow.AddDate(0, 0, days).Date())
}

func TestDescribe_DateOnly(t *testing.T) {
	cases := []struct {
		days int
		want string
	}{
		{-1, "Yesterday"},
		{0, "Today"},
		{1, "Tomorrow"},
		{3, "upcoming Wednesday; in 3 days"},
		{7, "upcoming Sunday; in 7 days"},
		{8, "June 23; in 8 days"},
		{10, "June 25; in 10 days"},
		{14, "June 29; in 2 weeks"},
		{20, "July 05; in 2 weeks"},
		{-3, "recent Thursday; 3 days ago"},
		{-7, "recent Sunday; 7 days ago"},
		{-14, "June 01; 2 weeks ago"},
		{-20, "May 26; 2 weeks ago"},
		{209, "January 10 2026; in 29 weeks"},
	}
	for _, tc := range cases {
		w := dateOffset(tc.days)
		assert.Equal(t, tc.want, w.Describe(testNow), "days=%d", tc.days)
	}
}

func TestDescribe_DateTime(t *testing.T) {
	tomorrow := NewDateTime(time.Date(2025, 6, 16, 14, 30, 0, 0, time.Local))
	assert.Equal(t, "Tomorrow, 02:30pm", tomorrow.Describe(testNow))

	soon := NewDateTime(time.Date(2025, 6, 18, 9, 5, 0, 0, time.Local))
	assert.Equal(t, "upcoming Wednesday, 09:05am; in 3 days", soon.Describe(testNow))

	later := NewDateTime(time.Date(2025, 7, 5, 18, 0, 0, 0, time.Local))
	assert.Equal(t, "July 05, 06:00pm; in 2 weeks", later.Describe(testNow))
}

func TestUrgency(t *testing.T) {
	cases := []struct {
		name string
		when When
		want Urgency
	}{
		{"date yesterday", dateOffset(-1), Overdue},
		{"date today", dateOffset(0), DueSoon},
		{"date tomorrow", dateOffset(1), Upcoming},
		{"datetime past", NewDateTime(testNow.Add(-time.Minute)), Overdue},
		{"datetime within a day", NewDateTime(testNow.Add(23 * time.Hour)), DueSoon},
		{"datetime beyond a day", NewDateTime(testNow.Add(25 * time.Hour)), Upcoming},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.when.Urgency(testNow))
		})
	}
}

func TestFromParts(t *testing.T) {
	date, err := ParseDate("2025/07/01")
	require.NoError(t, err)
	clock, err := ParseClock("08:15")
	require.NoError(t, err)

	assert.Nil(t, FromParts(nil, nil, testNow))

	dateOnly := FromParts(&date, nil, testNow)
	require.NotNil(t, dateOnly)
	assert.Equal(t, DateOnly, dateOnly.Kind())
	assert.Equal(t, "2025/07/01", dateOnly.DateString())
	assert.Equal(t, "", dateOnly.TimeString())

	both := FromParts(&date, &clock, testNow)
	require.NotNil(t, both)
	assert.Equal(t, DateTime, both.Kind())
	assert.Equal(t, "2025/07/01", both.DateString())
	assert.Equal(t, "08:15", both.TimeString())

	clockOnly := FromParts(nil, &clock, testNow)
	require.NotNil(t, clockOnly)
	assert.Equal(t, "2025/06/15", clockOnly.DateString(), "clock without date lands on today")
	assert.Equal(t, time.Local, clockOnly.Time().Location())
}

func TestParseParts_Errors(t *testing.T) {
	_, err := ParseParts("2025-07-01", "", testNow)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "yyyy/mm/dd", pe.Format)

	_, err = ParseParts("", "25:99", testNow)
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "hh:mm", pe.Format)

	w, err := ParseParts("  ", "", testNow)
	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2025/07/01", want: "2025/07/01"},
		{in: "2025/1/5", want: "2025/01/05"},
		{in: " 2025/12/31 ", want: "2025/12/31"},
		{in: "2024/2/29", want: "2024/02/29"},
		{in: "2025/2/29", wantErr: true},
		{in: "2025/13/01", wantErr: true},
		{in: "2025/0/10", wantErr: true},
		{in: "2025/06", wantErr: true},
		{in: "2025/06/+1", wantErr: true},
		{in: "2025-06-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				var pe *ParseError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, "yyyy/mm/dd", pe.Format)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format(DateLayout))
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "08:15", want: "08:15"},
		{in: "9:5", want: "09:05"},
		{in: "23:59", want: "23:59"},
		{in: "0:00", want: "00:00"},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "12", wantErr: true},
		{in: "12:-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				var pe *ParseError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, "hh:mm", pe.Format)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format(ClockLayout))
		})
	}
}

func TestParseParts_Unpadded(t *testing.T) {
	w, err := ParseParts("2025/7/1", "9:5", testNow)
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.True(t, w.HasTime())
	assert.Equal(t, "2025/07/01", w.DateString())
	assert.Equal(t, "09:05", w.TimeString())
}

func TestCompare(t *testing.T) {
	day := dateOffset(2)
	morning := NewDateTime(time.Date(2025, 6, 17, 8, 0, 0, 0, time.Local))
	evening := NewDateTime(time.Date(2025, 6, 17, 20, 0, 0, 0, time.Local))
	earlier := dateOffset(1)

	assert.Equal(t, 0, Compare(nil, nil))
	assert.Equal(t, 1, Compare(nil, &day))
	assert.Equal(t, -1, Compare(&day, nil))
	assert.Equal(t, -1, Compare(&earlier, &day))
	assert.Equal(t, -1, Compare(&day, &morning), "date-only precedes times on the same day")
	assert.Equal(t, -1, Compare(&morning, &evening))
	assert.Equal(t, 0, Compare(&morning, &morning))
}

func TestWhenJSON_RoundTrip(t *testing.T) {
	cases := []When{
		NewDate(2024, time.February, 29),
		NewDateTime(time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local)),
	}
	for _, w := range cases {
		data, err := json.Marshal(w)
		require.NoError(t, err)

		var got When
		require.NoError(t, json.Unmarshal(data, &got))
		assert.True(t, w.Equal(got), "round trip of %s", data)
	}
}

func TestWhenJSON_StoredShape(t *testing.T) {
	var w When
	require.NoError(t, json.Unmarshal([]byte(`{"Date":"2022-05-01"}`), &w))
	assert.Equal(t, DateOnly, w.Kind())
	assert.Equal(t, "2022/05/01", w.DateString())

	require.NoError(t, json.Unmarshal([]byte(`{"DateTime":"2022-05-01T09:30:00.123456789+00:00"}`), &w))
	assert.Equal(t, DateTime, w.Kind())

	assert.Error(t, json.Unmarshal([]byte(`{}`), &w))
}
