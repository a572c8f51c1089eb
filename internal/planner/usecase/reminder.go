package usecase

import (
	"context"
	"strings"
	"time"

	"study-tracker/internal/model"
	"study-tracker/internal/planner"
	repo "study-tracker/internal/planner/repository"
	"study-tracker/pkg/gcalendar"
	"study-tracker/pkg/studyday"
)

// reminderEventDuration is the length of the mirrored calendar event.
const reminderEventDuration = 30 * time.Minute

// CreateReminder stores a reminder and mirrors it to Google Calendar when configured.
func (uc *implUseCase) CreateReminder(ctx context.Context, sc model.Scope, input planner.CreateReminderInput) (model.Reminder, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Reminder{}, planner.ErrEmptyTitle
	}
	if input.When.IsZero() {
		return model.Reminder{}, planner.ErrMissingTime
	}

	rem, err := uc.repo.CreateReminder(ctx, repo.CreateReminderOptions{
		UserID:      userID(sc),
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		RemindAt:    input.When,
	})
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.CreateReminder: %v", err)
		return model.Reminder{}, err
	}

	if link := uc.tryCreateCalendarEvent(ctx, rem); link != "" {
		if err := uc.repo.SetReminderCalendarLink(ctx, rem.ID, link); err != nil {
			uc.l.Warnf(ctx, "planner.usecase.CreateReminder: saving calendar link for %s (non-fatal): %v", rem.ID, err)
		} else {
			rem.CalendarLink = link
		}
	}

	return rem, nil
}

// ListReminders lists reminders falling inside the caller's study window.
func (uc *implUseCase) ListReminders(ctx context.Context, sc model.Scope, input planner.ListRemindersInput) (planner.ListRemindersOutput, error) {
	period := input.Period
	if period == "" {
		period = studyday.Daily
	}
	at := input.At
	if at.IsZero() {
		at = uc.now()
	}

	offset := 0
	if uc.offsets != nil {
		o, err := uc.offsets.DayOffset(ctx, sc)
		if err != nil {
			uc.l.Errorf(ctx, "planner.usecase.ListReminders DayOffset: %v", err)
			return planner.ListRemindersOutput{}, err
		}
		offset = o
	}

	cal, err := studyday.NewCalendar(offset, uc.location)
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.ListReminders NewCalendar: %v", err)
		return planner.ListRemindersOutput{}, err
	}

	w, err := cal.Window(at, period)
	if err != nil {
		return planner.ListRemindersOutput{}, err
	}

	reminders, err := uc.repo.ListReminders(ctx, repo.ListRemindersOptions{
		UserID: userID(sc),
		From:   w.Start,
		To:     w.Next(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.ListReminders: %v", err)
		return planner.ListRemindersOutput{}, err
	}

	return planner.ListRemindersOutput{Window: w, Reminders: reminders}, nil
}

// tryCreateCalendarEvent mirrors a reminder as a calendar event.
// Returns the event link, or "" when mirroring is disabled or fails.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, rem model.Reminder) string {
	if uc.calendar == nil {
		return ""
	}

	start := rem.RemindAt.In(uc.location)
	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     rem.Title,
		Description: rem.Description,
		StartTime:   start,
		EndTime:     start.Add(reminderEventDuration),
		Timezone:    uc.location.String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "planner.usecase.CreateReminder: calendar event creation failed for %q (non-fatal): %v", rem.Title, err)
		return ""
	}

	return event.HtmlLink
}
