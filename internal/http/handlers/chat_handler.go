// README: Conversational quoting endpoint handler.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"skyquote/internal/modules/dialogue"
)

type ChatHandler struct {
	dialogue *dialogue.Service
}

func NewChatHandler(svc *dialogue.Service) *ChatHandler {
	return &ChatHandler{dialogue: svc}
}

type chatReq struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

type chatResp struct {
	SessionID string      `json:"session_id"`
	Reply     string      `json:"reply"`
	Complete  bool        `json:"complete"`
	Quote     *quoteView  `json:"quote,omitempty"`
	Alternate []quoteView `json:"alternates,omitempty"`
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFieldErrors(c, http.StatusBadRequest, bindingFieldErrors(err))
		return
	}

	req.SessionID = strings.TrimSpace(req.SessionID)
	req.Message = strings.TrimSpace(req.Message)
	if req.SessionID == "" || req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing session_id or message")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	reply := h.dialogue.Chat(ctx, req.SessionID, req.Message)

	resp := chatResp{
		SessionID: req.SessionID,
		Reply:     reply.Text,
		Complete:  reply.Complete,
	}
	if len(reply.Quotes) > 0 {
		top := newQuoteView(reply.Quotes[0])
		resp.Quote = &top
		for _, q := range reply.Quotes[1:] {
			resp.Alternate = append(resp.Alternate, newQuoteView(q))
		}
	}
	writeJSON(c, http.StatusOK, resp)
}
