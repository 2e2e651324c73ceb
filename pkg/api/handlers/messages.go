package handlers

import (
	"context"
	"net/http"

	"github.com/folio/folio/pkg/api/models"
	"github.com/folio/folio/pkg/api/response"
	"github.com/folio/folio/pkg/logger"
	"github.com/folio/folio/pkg/portfolio"
)

// MessageService stores contact-form submissions and sends replies.
type MessageService interface {
	ListMessages(ctx context.Context) ([]portfolio.Message, error)
	GetMessage(ctx context.Context, id int64) (portfolio.Message, error)
	CreateMessage(ctx context.Context, in portfolio.MessageInput) (portfolio.Message, error)
	UpdateMessage(ctx context.Context, id int64, patch portfolio.MessagePatch) (portfolio.Message, error)
	DeleteMessage(ctx context.Context, id int64) error
	ReplyToMessage(ctx context.Context, in portfolio.ReplyInput) (string, error)
}

// MessageHandler serves /api/messages.
type MessageHandler struct {
	svc MessageService
	crud
}

// NewMessageHandler creates a message handler.
func NewMessageHandler(svc MessageService, log logger.Logger) *MessageHandler {
	return &MessageHandler{svc: svc, crud: crud{logger: log, validator: newValidator()}}
}

// Create handles POST /api/messages
// @Summary Submit the contact form
// @Description Stores the message and notifies the owner by e-mail in the background.
// @Tags messages
// @Accept json
// @Produce json
// @Param message body portfolio.MessageInput true "Contact form"
// @Success 201 {object} portfolio.Message
// @Failure 400 {object} response.ErrorResponse
// @Router /api/messages [post]
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	serveCreate(h.crud, w, r, h.svc.CreateMessage)
}

// List handles GET /api/messages
// @Summary List messages, newest first
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Success 200 {array} portfolio.Message
// @Failure 401 {object} response.ErrorResponse
// @Router /api/messages [get]
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	serveList(h.crud, w, r, h.svc.ListMessages)
}

// Get handles GET /api/messages/{id}
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	serveGet(h.crud, w, r, h.svc.GetMessage)
}

// Update handles PUT /api/messages/{id}
// @Summary Mark a message read or unread
// @Tags messages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Message id"
// @Param patch body portfolio.MessagePatch true "Read flag"
// @Success 200 {object} portfolio.Message
// @Router /api/messages/{id} [put]
func (h *MessageHandler) Update(w http.ResponseWriter, r *http.Request) {
	serveUpdate(h.crud, w, r, h.svc.UpdateMessage)
}

// Delete handles DELETE /api/messages/{id}
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serveDelete(h.crud, w, r, h.svc.DeleteMessage)
}

// Reply handles POST /api/messages/reply
// @Summary E-mail a reply to the sender of a message
// @Tags messages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param reply body portfolio.ReplyInput true "Reply"
// @Success 200 {object} models.ReplyResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse "Delivery failed"
// @Router /api/messages/reply [post]
func (h *MessageHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var in portfolio.ReplyInput
	if !bind(w, r, h.validator, h.logger, &in) {
		return
	}

	emailID, err := h.svc.ReplyToMessage(r.Context(), in)
	if err != nil {
		writeError(w, r, h.logger, "reply failed", err)
		return
	}
	response.JSON(w, http.StatusOK, models.ReplyResponse{Message: "Reply sent successfully", EmailID: emailID})
}
