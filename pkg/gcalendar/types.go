package gcalendar

import "time"

// DefaultCalendarID targets the authorised account's own calendar.
const DefaultCalendarID = "primary"

// DefaultTokenPath is where the desktop OAuth flow stores its token.
const DefaultTokenPath = "token.json"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Europe/London"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
