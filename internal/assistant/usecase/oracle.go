package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"study-tracker/internal/assistant"
	"study-tracker/internal/model"
	"study-tracker/pkg/datemath"
	"study-tracker/pkg/llmprovider"
	"study-tracker/pkg/studyday"
)

// oracleReply is the JSON contract from SystemPrompt.
type oracleReply struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Action  string `json:"action"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// ask sends the conversation to the Oracle and decodes its reply.
func (uc *implUseCase) ask(ctx context.Context, sc model.Scope, input assistant.ChatInput, confirmed bool) (assistant.Outcome, error) {
	system := fmt.Sprintf(SystemPrompt, uc.timeContext(ctx, sc))
	if confirmed {
		system += ConfirmedHint
	}

	history := input.History
	if len(history) > uc.maxHistory {
		history = history[len(history)-uc.maxHistory:]
	}

	messages := make([]llmprovider.Message, 0, len(history)+1)
	for _, t := range history {
		if strings.TrimSpace(t.Content) == "" {
			continue
		}
		role := string(assistant.RoleUser)
		if t.Role == assistant.RoleAssistant {
			role = string(assistant.RoleAssistant)
		}
		messages = append(messages, llmprovider.Message{Role: role, Parts: []llmprovider.Part{{Text: t.Content}}})
	}
	messages = append(messages, llmprovider.Message{
		Role:  string(assistant.RoleUser),
		Parts: []llmprovider.Part{{Text: input.Message}},
	})

	resp, err := uc.oracle.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: llmprovider.RoleSystem, Parts: []llmprovider.Part{{Text: system}}},
		Messages:          messages,
		Temperature:       OracleTemperature,
		MaxTokens:         OracleMaxTokens,
	})
	if err != nil {
		return assistant.Outcome{}, fmt.Errorf("%w: %v", assistant.ErrOracleUnavailable, err)
	}

	out := decodeOutcome(resp.Content.Text())
	uc.l.Debugf(ctx, "%s: oracle outcome %s", LogPrefixChat, out.Kind)
	return out, nil
}

// timeContext describes now, today, tomorrow and the current study week.
func (uc *implUseCase) timeContext(ctx context.Context, sc model.Scope) string {
	loc := uc.parser.Location()
	now := uc.now().In(loc)

	offset := 0
	if uc.offsets != nil {
		o, err := uc.offsets.DayOffset(ctx, sc)
		if err != nil {
			uc.l.Warnf(ctx, "%s: DayOffset (using midnight): %v", LogPrefixChat, err)
		} else {
			offset = o
		}
	}

	today := datemath.DateOf(now)
	weekStart, weekEnd := today, today.AddDays(6)
	if cal, err := studyday.NewCalendar(offset, loc); err == nil {
		if w, err := cal.Window(now, studyday.Weekly); err == nil {
			weekStart, weekEnd = datemath.DateOf(w.Start), datemath.DateOf(w.End)
		}
	}

	return fmt.Sprintf(TimeContextTemplate,
		now.Format(time.RFC3339), now.Weekday(),
		today, today.AddDays(1),
		weekStart, weekEnd,
	)
}

// decodeOutcome classifies an Oracle reply once. The JSON contract is tried
// first, then the line markers CONFIRM:, TASK: and REMINDER:. Anything else
// is a direct answer.
func decodeOutcome(text string) assistant.Outcome {
	trimmed := stripCodeFence(text)

	if reply, ok := decodeJSONReply(trimmed); ok {
		switch strings.ToLower(strings.TrimSpace(reply.Type)) {
		case "propose":
			return assistant.Outcome{Kind: assistant.OutcomePropose, Draft: reply.draft()}
		case "commit":
			return assistant.Outcome{Kind: assistant.OutcomeCommit, Draft: reply.draft()}
		case "direct":
			return assistant.Outcome{Kind: assistant.OutcomeDirect, Text: strings.TrimSpace(reply.Message)}
		}
	}

	if out, ok := decodeMarkers(trimmed); ok {
		return out
	}

	return assistant.Outcome{Kind: assistant.OutcomeDirect, Text: strings.TrimSpace(text)}
}

func (r oracleReply) draft() assistant.Draft {
	return assistant.Draft{
		Action: assistant.ActionType(strings.ToUpper(strings.TrimSpace(r.Action))),
		Title:  strings.TrimSpace(r.Title),
		Date:   strings.TrimSpace(r.Date),
		Time:   strings.TrimSpace(r.Time),
	}
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

// decodeJSONReply accepts a bare object or one object embedded in prose.
func decodeJSONReply(s string) (oracleReply, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return oracleReply{}, false
	}

	var reply oracleReply
	if err := json.Unmarshal([]byte(s[start:end+1]), &reply); err != nil {
		return oracleReply{}, false
	}
	return reply, reply.Type != ""
}

// decodeMarkers reads the line-oriented form:
//
//	CONFIRM: REMINDER | title | DATE: ... | TIME: ...   -> propose
//	TASK: title                                        -> commit
//	REMINDER: title | DATE: ... | TIME: ...            -> commit
func decodeMarkers(s string) (assistant.Outcome, bool) {
	if payload, ok := assistant.FindEnvelope(s); ok {
		rest := strings.TrimSpace(strings.TrimPrefix(payload, "CONFIRM:"))
		action, fields, _ := strings.Cut(rest, "|")
		d := draftFromFields(assistant.ActionType(strings.ToUpper(strings.TrimSpace(action))), fields)
		return assistant.Outcome{Kind: assistant.OutcomePropose, Draft: d}, true
	}

	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case hasPrefixFold(line, "TASK:"):
			d := draftFromFields(assistant.ActionTask, line[len("TASK:"):])
			return assistant.Outcome{Kind: assistant.OutcomeCommit, Draft: d}, true
		case hasPrefixFold(line, "REMINDER:"):
			d := draftFromFields(assistant.ActionReminder, line[len("REMINDER:"):])
			return assistant.Outcome{Kind: assistant.OutcomeCommit, Draft: d}, true
		}
	}

	return assistant.Outcome{}, false
}

// draftFromFields splits "title | DATE: x | TIME: y" leniently.
func draftFromFields(action assistant.ActionType, s string) assistant.Draft {
	d := assistant.Draft{Action: action}
	for i, f := range strings.Split(s, "|") {
		f = strings.TrimSpace(f)
		switch {
		case hasPrefixFold(f, "DATE_RANGE:"):
			d.Date = strings.TrimSpace(f[len("DATE_RANGE:"):])
		case hasPrefixFold(f, "DATE:"):
			d.Date = strings.TrimSpace(f[len("DATE:"):])
		case hasPrefixFold(f, "TIME:"):
			d.Time = strings.TrimSpace(f[len("TIME:"):])
		case i == 0:
			d.Title = f
		}
	}
	return d
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
