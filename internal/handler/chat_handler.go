package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/saarthi-api/internal/models"
	"github.com/noah-isme/saarthi-api/pkg/response"
)

type chatService interface {
	History(ctx context.Context, userID, limit int) ([]models.ChatMessage, error)
	Send(ctx context.Context, req models.CreateChatMessageRequest) (*models.ChatExchange, error)
}

// ChatHandler serves the AI tutor chat.
type ChatHandler struct {
	service chatService
}

// NewChatHandler constructs a ChatHandler.
func NewChatHandler(svc chatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// History godoc
// @Summary Chat history
// @Description Most recent messages of a user, oldest first
// @Tags Chat
// @Produce json
// @Param userId path int true "User ID"
// @Param limit query int false "Maximum number of messages (default 50)"
// @Success 200 {array} models.ChatMessage
// @Failure 400 {object} response.ErrorBody
// @Router /chat/{userId} [get]
func (h *ChatHandler) History(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	limit, ok := queryID(c, "limit")
	if !ok {
		return
	}

	var n int
	if limit != nil {
		n = *limit
	}
	messages, err := h.service.History(c.Request.Context(), userID, n)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, messages)
}

// Send godoc
// @Summary Send chat message
// @Description Stores the message; unless it is AI-authored a tutor reply is generated and returned with it
// @Tags Chat
// @Accept json
// @Produce json
// @Param payload body models.CreateChatMessageRequest true "Message"
// @Success 200 {object} models.ChatExchange
// @Failure 400 {object} response.ErrorBody
// @Router /chat [post]
func (h *ChatHandler) Send(c *gin.Context) {
	var req models.CreateChatMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	exchange, err := h.service.Send(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, exchange)
}
