package studyday

import (
	"time"

	"study-tracker/pkg/datemath"
)

// Calendar binds a day offset and a location so callers can bucket
// instants without repeating the boundary arithmetic.
type Calendar struct {
	offset int
	loc    *time.Location
}

// NewCalendar returns a Calendar for days starting offsetMinutes after
// midnight in loc. A nil loc means UTC.
func NewCalendar(offsetMinutes int, loc *time.Location) (*Calendar, error) {
	if err := ValidateOffset(offsetMinutes); err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{offset: offsetMinutes, loc: loc}, nil
}

// Offset returns the day start in minutes after midnight.
func (c *Calendar) Offset() int { return c.offset }

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location { return c.loc }

// Window returns the window of period p containing ref.
func (c *Calendar) Window(ref time.Time, p Period) (Window, error) {
	return WindowFor(ref.In(c.loc), p, c.offset)
}

// DayOf returns the date of the study day containing t.
func (c *Calendar) DayOf(t time.Time) datemath.Date {
	return datemath.DateOf(dailyWindow(t.In(c.loc), c.offset).Start)
}

// Days splits w into its consecutive daily windows.
func (c *Calendar) Days(w Window) []Window {
	var days []Window
	for cursor := w.Start.In(c.loc); cursor.Before(w.Next()); {
		day := dailyWindow(cursor, c.offset)
		days = append(days, day)
		cursor = day.Next()
	}
	return days
}
