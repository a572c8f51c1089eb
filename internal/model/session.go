package model

import "time"

// StudySession is one completed focus block (e.g. a pomodoro).
type StudySession struct {
	ID              string
	UserID          string
	Subject         string
	StartedAt       time.Time
	DurationMinutes int
	CreatedAt       time.Time
}

// UserSettings holds per-user preferences.
type UserSettings struct {
	UserID           string
	DayOffsetMinutes int // minutes after midnight at which the study day starts
	UpdatedAt        time.Time
}
