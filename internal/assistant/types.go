package assistant

import (
	"study-tracker/pkg/datemath"
)

// Role is the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message of the client-held transcript.
type Turn struct {
	Role    Role
	Content string
}

type ChatInput struct {
	Message string
	History []Turn
}

type ChatOutput struct {
	Response        string
	CreatedTask     bool
	CreatedReminder bool
	ReminderCount   int
}

// ActionType is the kind of entry a proposal creates.
type ActionType string

const (
	ActionTask     ActionType = "TASK"
	ActionReminder ActionType = "REMINDER"
)

// DateKind tags the variant held by a DateSpec.
type DateKind int

const (
	DateNone DateKind = iota
	DateSingle
	DateRange
)

// DateSpec is either a single date or an inclusive date range.
type DateSpec struct {
	Kind  DateKind
	Date  datemath.Date
	Range datemath.DateRange
}

// SingleDate returns a DateSpec for one day.
func SingleDate(d datemath.Date) DateSpec {
	return DateSpec{Kind: DateSingle, Date: d}
}

// RangeOf returns a DateSpec spanning r.
func RangeOf(r datemath.DateRange) DateSpec {
	return DateSpec{Kind: DateRange, Range: r}
}

// Days lists the covered dates in ascending order.
func (s DateSpec) Days() []datemath.Date {
	switch s.Kind {
	case DateSingle:
		return []datemath.Date{s.Date}
	case DateRange:
		return s.Range.Days()
	default:
		return nil
	}
}

// Proposal is a scheduling action awaiting confirmation.
// Task proposals carry no date or time.
type Proposal struct {
	Action ActionType
	Title  string
	When   DateSpec
	Time   datemath.Clock
}

// OutcomeKind tags the variant held by an Outcome.
type OutcomeKind int

const (
	OutcomeDirect OutcomeKind = iota
	OutcomePropose
	OutcomeCommit
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomePropose:
		return "propose"
	case OutcomeCommit:
		return "commit"
	default:
		return "direct"
	}
}

// Draft holds the action fields as the Oracle wrote them, before date and
// time resolution.
type Draft struct {
	Action ActionType
	Title  string
	Date   string
	Time   string
}

// Outcome is the Oracle reply decoded once. Text is set for OutcomeDirect,
// Draft for the other kinds.
type Outcome struct {
	Kind  OutcomeKind
	Text  string
	Draft Draft
}
