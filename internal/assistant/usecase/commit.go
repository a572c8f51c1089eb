package usecase

import (
	"context"
	"fmt"
	"strings"

	"study-tracker/internal/assistant"
	"study-tracker/internal/model"
)

// commit performs the effects of a confirmed proposal. Range days are
// created in ascending order, each independently; failures are reported
// alongside the successes rather than rolled back.
func (uc *implUseCase) commit(ctx context.Context, sc model.Scope, p assistant.Proposal) assistant.ChatOutput {
	if p.Action == assistant.ActionTask {
		if _, err := uc.scheduler.CreateTask(ctx, sc, p.Title); err != nil {
			uc.l.Errorf(ctx, "%s: CreateTask %q: %v", LogPrefixCommit, p.Title, err)
			return assistant.ChatOutput{Response: fmt.Sprintf(MsgTaskFailed, p.Title)}
		}
		return assistant.ChatOutput{Response: fmt.Sprintf(MsgCreatedTask, p.Title), CreatedTask: true}
	}

	if p.When.Kind == assistant.DateRange && p.When.Range.Len() > uc.maxRangeDays {
		return assistant.ChatOutput{Response: MsgBadDateRange}
	}

	days := p.When.Days()
	if len(days) == 0 {
		return assistant.ChatOutput{Response: MsgBadDateRange}
	}

	loc := uc.parser.Location()
	created := 0
	var failed []string
	for _, d := range days {
		if err := ctx.Err(); err != nil {
			failed = append(failed, d.String())
			continue
		}
		if _, err := uc.scheduler.CreateReminder(ctx, sc, p.Title, "", d.At(p.Time, loc)); err != nil {
			uc.l.Errorf(ctx, "%s: CreateReminder %q on %s: %v", LogPrefixCommit, p.Title, d, err)
			failed = append(failed, d.String())
			continue
		}
		created++
	}

	out := assistant.ChatOutput{
		CreatedReminder: created > 0,
		ReminderCount:   created,
	}

	switch {
	case created == 0 && p.When.Kind == assistant.DateSingle:
		out.Response = fmt.Sprintf(MsgReminderFailed, p.Title)
	case len(failed) > 0:
		out.Response = fmt.Sprintf(MsgPartialRange, created, len(days), p.Title, days[0], days[len(days)-1], p.Time, strings.Join(failed, ", "))
	case p.When.Kind == assistant.DateRange:
		start, end := spanDays(p.When.Range)
		out.Response = fmt.Sprintf(MsgCreatedRange, created, p.Title, start, end, p.Time)
	default:
		out.Response = fmt.Sprintf(MsgCreatedReminder, p.Title, formatDay(days[0]), p.Time)
	}

	return out
}
