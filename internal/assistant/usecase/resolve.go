package usecase

import (
	"errors"
	"strings"
	"time"

	"study-tracker/internal/assistant"
	"study-tracker/pkg/datemath"
)

var (
	errMissingTitle = errors.New("proposal has no title")
	errBadDateRange = errors.New("unusable date range")
)

// resolve turns the Oracle's draft into a concrete proposal, running the
// free-text date and time through the parser.
func (uc *implUseCase) resolve(d assistant.Draft, now time.Time) (assistant.Proposal, error) {
	title := assistant.SanitizeTitle(d.Title)
	if title == "" {
		return assistant.Proposal{}, errMissingTitle
	}

	action := d.Action
	if action != assistant.ActionTask && action != assistant.ActionReminder {
		action = assistant.ActionTask
		if strings.TrimSpace(d.Date) != "" || strings.TrimSpace(d.Time) != "" {
			action = assistant.ActionReminder
		}
	}

	if action == assistant.ActionTask {
		return assistant.Proposal{Action: assistant.ActionTask, Title: title}, nil
	}

	when, err := uc.resolveDate(d.Date, now)
	if err != nil {
		return assistant.Proposal{}, err
	}

	timeText := d.Time
	if strings.TrimSpace(timeText) == "" {
		timeText = d.Date
	}

	return assistant.Proposal{
		Action: assistant.ActionReminder,
		Title:  title,
		When:   when,
		Time:   uc.parser.ParseTime(timeText),
	}, nil
}

// resolveDate prefers a range; a text without one is a single date.
func (uc *implUseCase) resolveDate(text string, now time.Time) (assistant.DateSpec, error) {
	r, err := uc.parser.ParseDateRange(text, now)
	switch {
	case err == nil:
		if r.Len() > uc.maxRangeDays {
			return assistant.DateSpec{}, errBadDateRange
		}
		return assistant.RangeOf(r), nil
	case errors.Is(err, datemath.ErrNoDateRange):
		return assistant.SingleDate(uc.parser.ParseDate(text, now)), nil
	default:
		return assistant.DateSpec{}, errBadDateRange
	}
}
