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

	"study-tracker/internal/middleware"
	"study-tracker/internal/model"
	"study-tracker/internal/stats"
	pkgLog "study-tracker/pkg/log"
	"study-tracker/pkg/studyday"
)

type mockUseCase struct {
	updated stats.UpdateSettingsInput
	summary stats.SummaryInput
}

func (m *mockUseCase) LogSession(ctx context.Context, sc model.Scope, input stats.LogSessionInput) (model.StudySession, error) {
	if input.DurationMinutes <= 0 {
		return model.StudySession{}, stats.ErrInvalidDuration
	}
	return model.StudySession{ID: "s1", DurationMinutes: input.DurationMinutes}, nil
}

func (m *mockUseCase) Summary(ctx context.Context, sc model.Scope, input stats.SummaryInput) (stats.SummaryOutput, error) {
	m.summary = input
	return stats.SummaryOutput{TotalMinutes: 50, SessionCount: 2}, nil
}

func (m *mockUseCase) GetSettings(ctx context.Context, sc model.Scope) (model.UserSettings, error) {
	return model.UserSettings{UserID: sc.UserID, DayOffsetMinutes: 300}, nil
}

func (m *mockUseCase) UpdateSettings(ctx context.Context, sc model.Scope, input stats.UpdateSettingsInput) (model.UserSettings, error) {
	m.updated = input
	if err := studyday.ValidateOffset(input.DayOffsetMinutes); err != nil {
		return model.UserSettings{}, err
	}
	return model.UserSettings{UserID: sc.UserID, DayOffsetMinutes: input.DayOffsetMinutes}, nil
}

func (m *mockUseCase) DayOffset(ctx context.Context, sc model.Scope) (int, error) {
	return 300, nil
}

func newTestRouter(uc stats.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(pkgLog.NewNop(), uc), middleware.New(pkgLog.NewNop(), 0))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateStudyDay(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantMins int
	}{
		{"day_start", `{"day_start":"05:00"}`, http.StatusOK, 300},
		{"minutes", `{"day_offset_minutes":90}`, http.StatusOK, 90},
		{"midnight", `{"day_offset_minutes":0}`, http.StatusOK, 0},
		{"bad clock", `{"day_start":"25:00"}`, http.StatusBadRequest, 0},
		{"out of range", `{"day_offset_minutes":1440}`, http.StatusBadRequest, 1440},
		{"empty", `{}`, http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			w := do(newTestRouter(uc), http.MethodPut, "/api/v1/settings/study-day", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantMins, uc.updated.DayOffsetMinutes)
		})
	}
}

func TestGetStudyDay(t *testing.T) {
	w := do(newTestRouter(&mockUseCase{}), http.MethodGet, "/api/v1/settings/study-day", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data studyDayResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "05:00", body.Data.DayStart)
}

func TestSummaryAndSessions(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	w := do(r, http.MethodGet, "/api/v1/stats/summary?period=monthly", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, studyday.Monthly, uc.summary.Period)

	w = do(r, http.MethodGet, "/api/v1/stats/summary?at=not-a-time", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/v1/sessions", `{"duration_minutes":25,"started_at":"2025-01-15T09:00:00Z"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/api/v1/sessions", `{"duration_minutes":-5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
