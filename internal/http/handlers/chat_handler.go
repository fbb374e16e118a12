// README: Chat turn handler; deserializes a turn, runs the dialogue state
// machine, serializes the response.
package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"voyago/internal/modules/conversation"
	"voyago/internal/types"
)

// turnTimeout bounds a whole turn including provider calls and retries.
const turnTimeout = 30 * time.Second

type ChatHandler struct {
	svc *conversation.Service
}

func NewChatHandler(svc *conversation.Service) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type chatRequest struct {
	Messages    []conversation.Message    `json:"messages"`
	ChatState   *conversation.State       `json:"chatState"`
	TripDetails *conversation.TripDetails `json:"tripDetails"`
}

type chatResponse struct {
	Message      string             `json:"message"`
	ChatState    conversation.State `json:"chatState"`
	Places       []types.Place      `json:"places"`
	CanExportPDF bool               `json:"canExportPdf"`
}

// Chat handles POST /api/chat. Malformed bodies and turns without a user
// message both map to HTTP 500 with an error payload; provider failures
// never surface here — the state machine degrades internally.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("chat: malformed request: %v", err)
		writeError(c, http.StatusInternalServerError, "failed to process chat message")
		return
	}

	state := conversation.NewState()
	if req.ChatState != nil {
		state = *req.ChatState
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), turnTimeout)
	defer cancel()

	result, err := h.svc.HandleTurn(ctx, state, req.Messages, req.TripDetails)
	if err != nil {
		log.Printf("chat: turn failed: %v", err)
		writeError(c, http.StatusInternalServerError, "failed to process chat message")
		return
	}

	writeJSON(c, http.StatusOK, chatResponse{
		Message:      result.Message,
		ChatState:    result.State,
		Places:       result.Places,
		CanExportPDF: result.State.Stage == conversation.StageRecommendations,
	})
}
