package datemath_test

import (
	"errors"
	"testing"
	"time"

	"study-tracker/pkg/datemath"
)

func mustParser(t *testing.T) *datemath.Parser {
	t.Helper()
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return p
}

func TestParseDate(t *testing.T) {
	p := mustParser(t)
	newYear := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	lateDec := time.Date(2025, 12, 20, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		now  time.Time
		want string
	}{
		{name: "ISO passthrough", text: "2025-03-01", now: lateDec, want: "2025-03-01"},
		{name: "ISO inside text", text: "on 2024-02-29 please", now: newYear, want: "2024-02-29"},
		{name: "ordinal day month", text: "14th dec", now: newYear, want: "2025-12-14"},
		{name: "ordinal day month rolls over", text: "14th dec", now: lateDec, want: "2026-12-14"},
		{name: "month day", text: "dec 14", now: newYear, want: "2025-12-14"},
		{name: "full month name ordinal", text: "December 14th", now: newYear, want: "2025-12-14"},
		{name: "day of month", text: "3rd of march", now: newYear, want: "2025-03-03"},
		{name: "explicit year not rolled", text: "14 dec 2024", now: lateDec, want: "2024-12-14"},
		{name: "numeric day month", text: "15/3", now: newYear, want: "2025-03-15"},
		{name: "numeric with short year", text: "15-03-26", now: newYear, want: "2026-03-15"},
		{name: "numeric with long year", text: "1/2/2027", now: newYear, want: "2027-02-01"},
		{name: "numeric past date rolls over", text: "1/6", now: lateDec, want: "2026-06-01"},
		{name: "today is not rolled", text: "20 dec", now: lateDec, want: "2025-12-20"},
		{name: "tomorrow", text: "tomorrow", now: lateDec, want: "2025-12-21"},
		{name: "in three days", text: "in 3 days", now: lateDec, want: "2025-12-23"},
		{name: "next monday", text: "next monday", now: lateDec, want: "2025-12-22"},
		{name: "invalid day falls back to today", text: "31 feb", now: newYear, want: "2025-01-01"},
		{name: "garbage falls back to today", text: "whenever you like", now: lateDec, want: "2025-12-20"},
		{name: "empty falls back to today", text: "", now: lateDec, want: "2025-12-20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.ParseDate(tt.text, tt.now)
			if got.String() != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseDate_UsesParserTimezone(t *testing.T) {
	p, err := datemath.NewParser("Asia/Tokyo")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 20:00 UTC on Dec 31 is already Jan 1 in Tokyo.
	now := time.Date(2025, 12, 31, 20, 0, 0, 0, time.UTC)
	if got := p.ParseDate("today", now).String(); got != "2026-01-01" {
		t.Errorf("ParseDate(today) = %s, want 2026-01-01", got)
	}
}

func TestParseDateRange(t *testing.T) {
	p := mustParser(t)
	newYear := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	midFeb := time.Date(2025, 2, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		text    string
		now     time.Time
		want    string
		wantErr error
	}{
		{name: "dash range", text: "15-19 jan", now: newYear, want: "2025-01-15 to 2025-01-19"},
		{name: "to range", text: "15 to 19 january", now: newYear, want: "2025-01-15 to 2025-01-19"},
		{name: "filler words between days", text: "from the 15th to the 19th of jan", now: newYear, wantErr: datemath.ErrNoDateRange},
		{name: "ordinal dash", text: "15th-19th jan", now: newYear, want: "2025-01-15 to 2025-01-19"},
		{name: "month first", text: "jan 15-19", now: newYear, want: "2025-01-15 to 2025-01-19"},
		{name: "past range rolls together", text: "15-19 jan", now: midFeb, want: "2026-01-15 to 2026-01-19"},
		{name: "range ending today stays", text: "10-15 feb", now: midFeb, want: "2025-02-10 to 2025-02-15"},
		{name: "ISO range passthrough", text: "2025-01-15 to 2025-01-19", now: midFeb, want: "2025-01-15 to 2025-01-19"},
		{name: "inverted day range", text: "19-15 jan", now: newYear, wantErr: datemath.ErrInvalidDateRange},
		{name: "inverted ISO range", text: "2025-01-19 to 2025-01-15", now: newYear, wantErr: datemath.ErrInvalidDateRange},
		{name: "impossible day", text: "28-31 feb", now: newYear, wantErr: datemath.ErrInvalidDateRange},
		{name: "no range", text: "14th dec", now: newYear, wantErr: datemath.ErrNoDateRange},
		{name: "across months", text: "28 jan to 3 feb", now: newYear, want: "2025-01-28 to 2025-02-03"},
		{name: "across months month first", text: "jan 28 - feb 3", now: newYear, want: "2025-01-28 to 2025-02-03"},
		{name: "across the new year", text: "28th dec to 3rd jan", now: newYear, want: "2025-12-28 to 2026-01-03"},
		{name: "across months rolls together", text: "28 jan to 3 feb", now: midFeb, want: "2026-01-28 to 2026-02-03"},
		{name: "across months explicit end year", text: "28 dec to 3 jan 2027", now: newYear, want: "2026-12-28 to 2027-01-03"},
		{name: "across months inverted", text: "3 feb 2025 to 28 jan 2025", now: newYear, wantErr: datemath.ErrInvalidDateRange},
		{name: "two dates no range form", text: "28 jan and 3 feb", now: newYear, wantErr: datemath.ErrInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseDateRange(tt.text, tt.now)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseDateRange(%q) error = %v, want %v", tt.text, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateRange(%q) unexpected error: %v", tt.text, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseDateRange(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseTime(t *testing.T) {
	p := mustParser(t)

	tests := []struct {
		text string
		want string
	}{
		{text: "2 pm", want: "14:00"},
		{text: "2pm", want: "14:00"},
		{text: "2:30 PM", want: "14:30"},
		{text: "7:05 a.m.", want: "07:05"},
		{text: "9.30pm", want: "21:30"},
		{text: "9.30 a.m.", want: "09:30"},
		{text: "12 pm", want: "12:00"},
		{text: "12 am", want: "00:00"},
		{text: "at 14:45", want: "14:45"},
		{text: "noon", want: "12:00"},
		{text: "midnight", want: "00:00"},
		{text: "", want: "09:00"},
		{text: "sometime", want: "09:00"},
		{text: "25:00", want: "09:00"},
		{text: "13 pm", want: "09:00"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := p.ParseTime(tt.text).String(); got != tt.want {
				t.Errorf("ParseTime(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}
