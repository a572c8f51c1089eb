package http

import (
	"study-tracker/internal/assistant"
)

// --- Request DTOs ---

type turnReq struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatReq struct {
	Message string    `json:"message" binding:"max=4000"`
	History []turnReq `json:"history"`
}

func (r chatReq) validate() error {
	for _, t := range r.History {
		switch assistant.Role(t.Role) {
		case assistant.RoleUser, assistant.RoleAssistant:
		default:
			return errInvalidRole
		}
	}
	return nil
}

func (r chatReq) toInput() assistant.ChatInput {
	history := make([]assistant.Turn, len(r.History))
	for i, t := range r.History {
		history[i] = assistant.Turn{Role: assistant.Role(t.Role), Content: t.Content}
	}
	return assistant.ChatInput{Message: r.Message, History: history}
}

// --- Response DTOs ---

// chatResp keeps the camelCase field names chat clients already send back.
type chatResp struct {
	Response        string `json:"response"`
	CreatedTask     bool   `json:"createdTask,omitempty"`
	CreatedReminder bool   `json:"createdReminder,omitempty"`
	ReminderCount   int    `json:"reminderCount,omitempty"`
}

func (h *handler) newChatResp(out assistant.ChatOutput) chatResp {
	return chatResp{
		Response:        out.Response,
		CreatedTask:     out.CreatedTask,
		CreatedReminder: out.CreatedReminder,
		ReminderCount:   out.ReminderCount,
	}
}
