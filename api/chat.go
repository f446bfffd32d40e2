package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lidorubov/neurosales/domain"
)

// ChatRequest is the body of POST /api/chat. SessionID is client-generated
// and any non-empty string is accepted.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// ChatResponse is the success body of POST /api/chat. Response is always
// populated, even when the completion service is down.
type ChatResponse struct {
	Response  string  `json:"response"`
	IsLead    bool    `json:"isLead"`
	LeadStage *string `json:"leadStage"`
	Fallback  bool    `json:"fallback,omitempty"`
}

// Chat handles one chat turn.
// POST /api/chat
func (h *Handler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	result, err := h.service.Chat(c.Request().Context(), req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": domain.ErrInvalidRequest.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	resp := ChatResponse{
		Response: result.Reply,
		IsLead:   result.IsLead,
		Fallback: result.Fallback,
	}
	if result.Stage != "" {
		resp.LeadStage = &result.Stage
	}
	return c.JSON(http.StatusOK, resp)
}
