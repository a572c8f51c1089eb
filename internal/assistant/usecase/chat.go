package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"study-tracker/internal/assistant"
	"study-tracker/internal/model"
	"study-tracker/pkg/datemath"
)

// Chat runs one turn. A pending proposal lives only in the immediately
// preceding assistant turn; an affirmation commits it without consulting
// the Oracle. Every other message goes to the Oracle.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input assistant.ChatInput) (assistant.ChatOutput, error) {
	input.Message = strings.TrimSpace(input.Message)
	if input.Message == "" {
		return assistant.ChatOutput{}, assistant.ErrEmptyMessage
	}

	confirmed := false
	if prev, ok := previousAssistantTurn(input.History); ok && assistant.IsAffirmation(input.Message) && assistant.LooksLikeConfirmation(prev) {
		confirmed = true
		if payload, found := assistant.FindEnvelope(prev); found {
			p, err := assistant.DecodeEnvelope(payload)
			if err == nil {
				uc.l.Infof(ctx, "%s: committing confirmed %s proposal", LogPrefixChat, p.Action)
				return uc.commit(ctx, sc, p), nil
			}
			uc.l.Warnf(ctx, "%s: ignoring envelope in previous turn: %v", LogPrefixChat, err)
		}
	}

	out, err := uc.ask(ctx, sc, input, confirmed)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixChat, err)
		return assistant.ChatOutput{}, err
	}

	switch out.Kind {
	case assistant.OutcomePropose, assistant.OutcomeCommit:
		p, err := uc.resolve(out.Draft, uc.now())
		if err != nil {
			return assistant.ChatOutput{Response: resolveErrorMessage(err)}, nil
		}
		if out.Kind == assistant.OutcomeCommit {
			uc.l.Infof(ctx, "%s: oracle committed %s directly", LogPrefixChat, p.Action)
			return uc.commit(ctx, sc, p), nil
		}
		return assistant.ChatOutput{Response: proposalMessage(p) + "\n\n" + assistant.EncodeEnvelope(p)}, nil

	default:
		if out.Text == "" {
			return assistant.ChatOutput{Response: MsgEmptyOracleMessage}, nil
		}
		return assistant.ChatOutput{Response: out.Text}, nil
	}
}

// previousAssistantTurn returns the last turn when it is the assistant's.
func previousAssistantTurn(history []assistant.Turn) (string, bool) {
	if len(history) == 0 {
		return "", false
	}
	last := history[len(history)-1]
	if last.Role != assistant.RoleAssistant {
		return "", false
	}
	return last.Content, true
}

func resolveErrorMessage(err error) string {
	if errors.Is(err, errBadDateRange) {
		return MsgBadDateRange
	}
	return MsgMissingTitle
}

func proposalMessage(p assistant.Proposal) string {
	switch {
	case p.Action == assistant.ActionTask:
		return fmt.Sprintf(MsgProposeTask, p.Title) + " " + fmt.Sprintf(MsgConfirmSuffix, "it")
	case p.When.Kind == assistant.DateRange:
		r := p.When.Range
		start, end := spanDays(r)
		return fmt.Sprintf(MsgProposeRange, p.Title, start, end, p.Time, r.Len()) + " " + fmt.Sprintf(MsgConfirmSuffix, "them")
	default:
		return fmt.Sprintf(MsgProposeReminder, p.Title, formatDay(p.When.Date), p.Time) + " " + fmt.Sprintf(MsgConfirmSuffix, "it")
	}
}

func formatDay(d datemath.Date) string {
	return d.At(datemath.Clock{}, nil).Format(DayLayout)
}

// spanDays formats both ends of r, naming the year once when it is shared.
func spanDays(r datemath.DateRange) (string, string) {
	if r.Start.Year == r.End.Year {
		return r.Start.At(datemath.Clock{}, nil).Format(DayLayoutNoYr), formatDay(r.End)
	}
	return formatDay(r.Start), formatDay(r.End)
}
