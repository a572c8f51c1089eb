package http

import (
	"github.com/gin-gonic/gin"

	"study-tracker/internal/model"
	"study-tracker/pkg/response"
)

// LogSession godoc
// @Summary     Log a study session
// @Description Records a completed focus block. started_at defaults to now minus the duration.
// @Tags        Stats
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string        false "Caller identity"
// @Param       body      body   logSessionReq true  "Session data"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions [POST]
func (h *handler) LogSession(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	input, err := h.processLogSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	s, err := h.uc.LogSession(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "stats.http.LogSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(s))
}

// Summary godoc
// @Summary     Study summary
// @Description Totals for the study window containing at, split per study day.
// @Tags        Stats
// @Produce     json
// @Param       X-User-ID header string false "Caller identity"
// @Param       period    query  string false "daily (default), weekly or monthly"
// @Param       at        query  string false "Reference instant, RFC3339 (default now)"
// @Success     200 {object} summaryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/stats/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	input, err := h.processSummaryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Summary(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "stats.http.Summary: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSummaryResp(out))
}

// GetStudyDay godoc
// @Summary     Get study-day start
// @Tags        Settings
// @Produce     json
// @Param       X-User-ID header string false "Caller identity"
// @Success     200 {object} studyDayResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/settings/study-day [GET]
func (h *handler) GetStudyDay(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	s, err := h.uc.GetSettings(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "stats.http.GetStudyDay: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newStudyDayResp(s))
}

// UpdateStudyDay godoc
// @Summary     Set study-day start
// @Description Sets when the caller's study day begins, as day_start "HH:MM" or day_offset_minutes.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string            false "Caller identity"
// @Param       body      body   updateStudyDayReq true  "New day start"
// @Success     200 {object} studyDayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/settings/study-day [PUT]
func (h *handler) UpdateStudyDay(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	input, err := h.processUpdateStudyDayReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	s, err := h.uc.UpdateSettings(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "stats.http.UpdateStudyDay: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newStudyDayResp(s))
}
