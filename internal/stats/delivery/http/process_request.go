package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"study-tracker/internal/stats"
	"study-tracker/pkg/studyday"
)

func (h *handler) processLogSessionReq(c *gin.Context) (stats.LogSessionInput, error) {
	var req logSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return stats.LogSessionInput{}, err
	}

	input := stats.LogSessionInput{Subject: req.Subject, DurationMinutes: req.DurationMinutes}
	if req.StartedAt != "" {
		t, err := time.Parse(time.RFC3339, req.StartedAt)
		if err != nil {
			return input, errInvalidTimestamp
		}
		input.StartedAt = t
	}
	return input, nil
}

func (h *handler) processSummaryReq(c *gin.Context) (stats.SummaryInput, error) {
	var req summaryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return stats.SummaryInput{}, err
	}

	input := stats.SummaryInput{Period: studyday.Daily}
	if req.Period != "" {
		p, err := studyday.ParsePeriod(req.Period)
		if err != nil {
			return input, errInvalidPeriod
		}
		input.Period = p
	}
	if req.At != "" {
		t, err := time.Parse(time.RFC3339, req.At)
		if err != nil {
			return input, errInvalidTimestamp
		}
		input.At = t
	}
	return input, nil
}

func (h *handler) processUpdateStudyDayReq(c *gin.Context) (stats.UpdateSettingsInput, error) {
	var req updateStudyDayReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return stats.UpdateSettingsInput{}, err
	}

	switch {
	case req.DayStart != "":
		minutes, err := studyday.ParseOffset(req.DayStart)
		if err != nil {
			return stats.UpdateSettingsInput{}, errInvalidOffset
		}
		return stats.UpdateSettingsInput{DayOffsetMinutes: minutes}, nil
	case req.DayOffsetMinutes != nil:
		return stats.UpdateSettingsInput{DayOffsetMinutes: *req.DayOffsetMinutes}, nil
	default:
		return stats.UpdateSettingsInput{}, errInvalidOffset
	}
}
