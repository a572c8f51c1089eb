package http

import (
	"time"

	"study-tracker/internal/model"
	"study-tracker/internal/stats"
	"study-tracker/pkg/studyday"
)

// --- Request DTOs ---

type logSessionReq struct {
	Subject         string `json:"subject"          binding:"max=255"`
	StartedAt       string `json:"started_at"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
}

type summaryReq struct {
	Period string `form:"period"`
	At     string `form:"at"`
}

// updateStudyDayReq accepts either day_start ("05:00") or day_offset_minutes.
type updateStudyDayReq struct {
	DayStart         string `json:"day_start"`
	DayOffsetMinutes *int   `json:"day_offset_minutes"`
}

// --- Response DTOs ---

type sessionResp struct {
	ID              string    `json:"id"`
	Subject         string    `json:"subject,omitempty"`
	StartedAt       time.Time `json:"started_at"`
	DurationMinutes int       `json:"duration_minutes"`
}

func newSessionResp(s model.StudySession) sessionResp {
	return sessionResp{
		ID:              s.ID,
		Subject:         s.Subject,
		StartedAt:       s.StartedAt,
		DurationMinutes: s.DurationMinutes,
	}
}

type dayTotalResp struct {
	Date     string    `json:"date"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Minutes  int       `json:"minutes"`
	Sessions int       `json:"sessions"`
}

type summaryResp struct {
	Start        time.Time      `json:"start"`
	End          time.Time      `json:"end"`
	TotalMinutes int            `json:"total_minutes"`
	SessionCount int            `json:"session_count"`
	Days         []dayTotalResp `json:"days"`
}

func (h *handler) newSummaryResp(out stats.SummaryOutput) summaryResp {
	days := make([]dayTotalResp, len(out.Days))
	for i, d := range out.Days {
		days[i] = dayTotalResp{
			Date:     d.Date.String(),
			Start:    d.Window.Start,
			End:      d.Window.End,
			Minutes:  d.Minutes,
			Sessions: d.Sessions,
		}
	}
	return summaryResp{
		Start:        out.Window.Start,
		End:          out.Window.End,
		TotalMinutes: out.TotalMinutes,
		SessionCount: out.SessionCount,
		Days:         days,
	}
}

type studyDayResp struct {
	DayStart         string `json:"day_start"`
	DayOffsetMinutes int    `json:"day_offset_minutes"`
}

func newStudyDayResp(s model.UserSettings) studyDayResp {
	return studyDayResp{
		DayStart:         studyday.FormatOffset(s.DayOffsetMinutes),
		DayOffsetMinutes: s.DayOffsetMinutes,
	}
}
