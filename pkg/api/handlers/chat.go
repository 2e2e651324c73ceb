package handlers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/folio/folio/pkg/api/middleware"
	"github.com/folio/folio/pkg/api/models"
	"github.com/folio/folio/pkg/api/response"
	"github.com/folio/folio/pkg/chatbot"
	"github.com/folio/folio/pkg/logger"
)

// Chatter is the chatbot surface the handler needs.
type Chatter interface {
	Chat(ctx context.Context, req chatbot.Request) (*chatbot.Response, error)
	ClearConversation(id string) bool
	CacheStats() chatbot.CacheStats
	RetryAfter(clientID string) time.Duration
}

// ChatHandler serves /api/chatbot.
type ChatHandler struct {
	chat   Chatter
	logger logger.Logger
}

// NewChatHandler creates a chat handler.
func NewChatHandler(chat Chatter, log logger.Logger) *ChatHandler {
	return &ChatHandler{chat: chat, logger: log}
}

// SendMessage handles POST /api/chatbot/message
// @Summary Ask the portfolio assistant
// @Description Rate limited per client. Identical questions are answered from a 24h cache.
// @Tags chatbot
// @Accept json
// @Produce json
// @Param message body models.ChatRequest true "Visitor message"
// @Success 200 {object} chatbot.Response
// @Failure 400 {object} response.ErrorResponse "Empty or overlong message"
// @Failure 429 {object} response.ErrorResponse "Rate limited"
// @Failure 500 {object} response.ErrorResponse "Inference failed"
// @Router /api/chatbot/message [post]
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ChatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.DebugContext(ctx, "chat request rejected", "error", err)
		response.HandleError(w, err, getRequestID(ctx))
		return
	}

	clientID := middleware.GetClientIP(ctx)
	resp, err := h.chat.Chat(ctx, chatbot.Request{
		Message:        req.Message,
		ConversationID: req.ConversationID,
		ClientID:       clientID,
	})
	if err != nil {
		if errors.Is(err, chatbot.ErrRateLimited) {
			w.Header().Set("Retry-After", retryAfterSeconds(h.chat.RetryAfter(clientID)))
		}
		// The orchestrator already logged inference causes.
		response.HandleError(w, err, getRequestID(ctx))
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

// ClearConversation handles DELETE /api/chatbot/clear/{conversationID}
// @Summary Forget a conversation
// @Tags chatbot
// @Produce json
// @Param conversationID path string true "Conversation id"
// @Success 200 {object} models.MessageResponse
// @Router /api/chatbot/clear/{conversationID} [delete]
func (h *ChatHandler) ClearConversation(w http.ResponseWriter, r *http.Request) {
	msg := "Conversation not found"
	if h.chat.ClearConversation(chi.URLParam(r, "conversationID")) {
		msg = "Conversation cleared successfully"
	}
	response.JSON(w, http.StatusOK, models.MessageResponse{Message: msg})
}

// CacheStats handles GET /api/chatbot/cache/stats
// @Summary Response cache statistics
// @Tags chatbot
// @Produce json
// @Success 200 {object} chatbot.CacheStats
// @Router /api/chatbot/cache/stats [get]
func (h *ChatHandler) CacheStats(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.chat.CacheStats())
}

func retryAfterSeconds(d time.Duration) string {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
