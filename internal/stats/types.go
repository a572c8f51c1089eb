package stats

import (
	"time"

	"study-tracker/pkg/datemath"
	"study-tracker/pkg/studyday"
)

type LogSessionInput struct {
	Subject         string
	StartedAt       time.Time // zero means now minus the duration
	DurationMinutes int
}

type SummaryInput struct {
	Period studyday.Period
	At     time.Time // zero means now
}

// DayTotal is the aggregate for one study day.
type DayTotal struct {
	Date     datemath.Date
	Window   studyday.Window
	Minutes  int
	Sessions int
}

type SummaryOutput struct {
	Window       studyday.Window
	TotalMinutes int
	SessionCount int
	Days         []DayTotal
}

type UpdateSettingsInput struct {
	DayOffsetMinutes int
}
