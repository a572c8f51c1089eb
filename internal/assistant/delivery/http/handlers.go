package http

import (
	"github.com/gin-gonic/gin"

	"study-tracker/internal/model"
	"study-tracker/pkg/response"
)

// Chat godoc
// @Summary     Chat with the scheduling assistant
// @Description Runs one stateless turn. The client sends the transcript back on every call; a "yes" after a confirmation prompt commits the proposed task or reminders.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  false "Caller identity"
// @Param       body      body   chatReq true  "Message and prior turns"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     503 {object} response.Resp "Assistant unavailable"
// @Router      /api/v1/assistant/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Chat(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "assistant.http.Chat: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newChatResp(out))
}
