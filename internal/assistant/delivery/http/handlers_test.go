package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study-tracker/internal/assistant"
	"study-tracker/internal/middleware"
	"study-tracker/internal/model"
	pkgLog "study-tracker/pkg/log"
	"study-tracker/pkg/response"
)

type mockUseCase struct {
	input assistant.ChatInput
	out   assistant.ChatOutput
	err   error
}

func (m *mockUseCase) Chat(ctx context.Context, sc model.Scope, input assistant.ChatInput) (assistant.ChatOutput, error) {
	m.input = input
	return m.out, m.err
}

func newTestRouter(uc assistant.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/assistant"), New(pkgLog.NewNop(), uc), middleware.New(pkgLog.NewNop(), 0))
	return r
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatHandler(t *testing.T) {
	uc := &mockUseCase{out: assistant.ChatOutput{Response: "Done!", CreatedReminder: true, ReminderCount: 5}}
	r := newTestRouter(uc)

	w := post(r, `{"message":"yes","history":[{"role":"user","content":"gym 15-19 jan"},{"role":"assistant","content":"Would you like me to create them?"}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Done!", body.Data["response"])
	assert.Equal(t, true, body.Data["createdReminder"])
	assert.Equal(t, float64(5), body.Data["reminderCount"])
	assert.NotContains(t, body.Data, "createdTask")

	require.Len(t, uc.input.History, 2)
	assert.Equal(t, assistant.RoleAssistant, uc.input.History[1].Role)
}

func TestChatHandler_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		code int
	}{
		{"bad role", `{"message":"hi","history":[{"role":"system","content":"x"}]}`, nil, http.StatusBadRequest},
		{"empty message", `{"message":""}`, assistant.ErrEmptyMessage, http.StatusBadRequest},
		{"oracle down", `{"message":"hi"}`, assistant.ErrOracleUnavailable, http.StatusServiceUnavailable},
		{"unexpected", `{"message":"hi"}`, assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(newTestRouter(&mockUseCase{err: tt.err}), tt.body)
			assert.Equal(t, tt.code, w.Code)

			var resp response.Resp
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Message)
		})
	}
}
