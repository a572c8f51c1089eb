package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"study-tracker/internal/assistant"
)

func TestDecodeOutcome(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		kind  assistant.OutcomeKind
		draft assistant.Draft
		reply string
	}{
		{
			name:  "json direct",
			text:  `{"type":"direct","message":"Take a break every 25 minutes."}`,
			kind:  assistant.OutcomeDirect,
			reply: "Take a break every 25 minutes.",
		},
		{
			name:  "json propose in code fence",
			text:  "```json\n{\"type\":\"propose\",\"action\":\"reminder\",\"title\":\"Exam\",\"date\":\"dec 14\",\"time\":\"9 am\"}\n```",
			kind:  assistant.OutcomePropose,
			draft: assistant.Draft{Action: assistant.ActionReminder, Title: "Exam", Date: "dec 14", Time: "9 am"},
		},
		{
			name:  "json commit inside prose",
			text:  `Sure! {"type":"commit","action":"TASK","title":"Read"}`,
			kind:  assistant.OutcomeCommit,
			draft: assistant.Draft{Action: assistant.ActionTask, Title: "Read"},
		},
		{
			name:  "confirm marker",
			text:  "I can do that.\nCONFIRM: REMINDER | Gym | DATE_RANGE: 15-19 jan | TIME: 7 am",
			kind:  assistant.OutcomePropose,
			draft: assistant.Draft{Action: assistant.ActionReminder, Title: "Gym", Date: "15-19 jan", Time: "7 am"},
		},
		{
			name:  "task marker",
			text:  "TASK: Buy pens",
			kind:  assistant.OutcomeCommit,
			draft: assistant.Draft{Action: assistant.ActionTask, Title: "Buy pens"},
		},
		{
			name:  "plain text",
			text:  "  Mitochondria produce ATP.  ",
			kind:  assistant.OutcomeDirect,
			reply: "Mitochondria produce ATP.",
		},
		{
			name:  "json without type",
			text:  `{"answer": 42}`,
			kind:  assistant.OutcomeDirect,
			reply: `{"answer": 42}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := decodeOutcome(tt.text)
			assert.Equal(t, tt.kind, out.Kind)
			if tt.kind == assistant.OutcomeDirect {
				assert.Equal(t, tt.reply, out.Text)
			} else {
				assert.Equal(t, tt.draft, out.Draft)
			}
		})
	}
}
