package studyday

import (
	"fmt"
	"strings"
	"time"
)

// WindowFor returns the study window of the given period that contains ref,
// for days that start offsetMinutes after midnight. All arithmetic happens
// in ref's location.
//
// A daily window opens at the offset on some calendar date and closes just
// before the offset on the next one; an instant earlier than the offset
// belongs to the previous date's window, and an instant exactly at the offset
// opens a new one. Weekly windows are seven consecutive daily windows starting
// on Sunday; monthly windows run from the offset on the 1st to just before the
// offset on the 1st of the following month. Both are anchored on the date of
// the daily window containing ref, so every instant lands in the same day,
// week and month regardless of which view aggregates it.
func WindowFor(ref time.Time, p Period, offsetMinutes int) (Window, error) {
	if err := ValidateOffset(offsetMinutes); err != nil {
		return Window{}, err
	}

	day := dailyWindow(ref, offsetMinutes)

	switch p {
	case Daily:
		return day, nil
	case Weekly:
		return weeklyWindow(day, offsetMinutes), nil
	case Monthly:
		return monthlyWindow(day, offsetMinutes), nil
	default:
		return Window{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, p)
	}
}

// dailyWindow compares instants, not wall clocks: when clocks fall back a
// wall time repeats and only the instant says which side of the boundary
// ref is on.
func dailyWindow(ref time.Time, offset int) Window {
	y, m, d := ref.Date()
	loc := ref.Location()

	start := boundary(y, m, d, offset, loc)
	if ref.Before(start) {
		d--
		start = boundary(y, m, d, offset, loc)
	}
	return Window{
		Start: start,
		End:   boundary(y, m, d+1, offset, loc).Add(-time.Millisecond),
	}
}

func weeklyWindow(day Window, offset int) Window {
	y, m, d := day.Start.Date()
	first := d - int(day.Start.Weekday())
	loc := day.Start.Location()
	return Window{
		Start: boundary(y, m, first, offset, loc),
		End:   boundary(y, m, first+7, offset, loc).Add(-time.Millisecond),
	}
}

func monthlyWindow(day Window, offset int) Window {
	y, m, _ := day.Start.Date()
	loc := day.Start.Location()
	return Window{
		Start: boundary(y, m, 1, offset, loc),
		End:   boundary(y, m+1, 1, offset, loc).Add(-time.Millisecond),
	}
}

// boundary is the instant offset minutes after midnight on the given date.
// Out-of-range days and months are normalised by time.Date.
func boundary(y int, m time.Month, d, offset int, loc *time.Location) time.Time {
	return time.Date(y, m, d, 0, offset, 0, 0, loc)
}

// ValidateOffset checks 0 <= minutes < MinutesPerDay.
func ValidateOffset(minutes int) error {
	if minutes < 0 || minutes >= MinutesPerDay {
		return fmt.Errorf("%w: got %d", ErrInvalidOffset, minutes)
	}
	return nil
}

// ParseOffset parses an "HH:MM" day start into minutes after midnight.
func ParseOffset(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatOffset renders minutes after midnight as "HH:MM".
func FormatOffset(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParsePeriod parses a period name, case-insensitively.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case Daily, Weekly, Monthly:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
}
