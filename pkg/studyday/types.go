package studyday

import "time"

// Period is the granularity of a study window.
type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
)

// MinutesPerDay bounds a day offset: 0 <= offset < MinutesPerDay.
const MinutesPerDay = 24 * 60

// Window is a study period. End is the last included millisecond, so the
// window covers [Start, End+1ms).
type Window struct {
	Start time.Time
	End   time.Time
}

// Next returns the exclusive upper bound of w, which is also the start of
// the window that follows it.
func (w Window) Next() time.Time {
	return w.End.Add(time.Millisecond)
}

// Contains reports whether t falls inside w.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.Next())
}
