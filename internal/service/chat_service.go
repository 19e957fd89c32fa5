package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/saarthi-api/internal/generator"
	"github.com/noah-isme/saarthi-api/internal/models"
	appErrors "github.com/noah-isme/saarthi-api/pkg/errors"
)

// ChatRepository stores chat messages.
type ChatRepository interface {
	ListByUser(ctx context.Context, userID, limit int) ([]models.ChatMessage, error)
	Create(ctx context.Context, msg *models.ChatMessage) error
}

// ChatService runs the AI tutor conversation.
type ChatService struct {
	repo         ChatRepository
	responder    generator.ResponseGenerator
	validator    *validator.Validate
	metrics      *MetricsService
	logger       *zap.Logger
	historyLimit int
}

// NewChatService constructs a ChatService. historyLimit applies when callers pass no limit.
func NewChatService(repo ChatRepository, responder generator.ResponseGenerator, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger, historyLimit int) *ChatService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if responder == nil {
		responder = generator.NewTemplateResponder(nil)
	}
	if historyLimit <= 0 {
		historyLimit = 50
	}
	return &ChatService{repo: repo, responder: responder, validator: validate, metrics: metrics, logger: logger, historyLimit: historyLimit}
}

// History returns the latest messages of userID oldest first.
func (s *ChatService) History(ctx context.Context, userID, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = s.historyLimit
	}
	messages, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to load chat history")
	}
	return messages, nil
}

// Send stores the message and, unless it was written by the tutor, stores a generated reply
// with the same user and subject.
func (s *ChatService) Send(ctx context.Context, req models.CreateChatMessageRequest) (*models.ChatExchange, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid chat message")
	}

	userMessage := &models.ChatMessage{
		UserID:  req.UserID,
		Message: req.Message,
		IsAI:    req.IsAI,
		Subject: req.Subject,
	}
	if err := s.repo.Create(ctx, userMessage); err != nil {
		return nil, appErrors.Internal(err, "failed to store chat message")
	}
	exchange := &models.ChatExchange{UserMessage: *userMessage}
	if req.IsAI {
		return exchange, nil
	}

	var subject string
	if req.Subject != nil {
		subject = *req.Subject
	}
	reply, err := s.responder.Generate(ctx, req.Message, subject)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to generate tutor reply")
	}
	s.metrics.RecordGeneration("reply")

	aiMessage := &models.ChatMessage{
		UserID:  req.UserID,
		Message: reply,
		IsAI:    true,
		Subject: req.Subject,
	}
	if err := s.repo.Create(ctx, aiMessage); err != nil {
		return nil, appErrors.Internal(err, "failed to store tutor reply")
	}
	exchange.AIMessage = aiMessage

	s.logger.Debug("tutor reply generated", zap.Int("user_id", req.UserID), zap.String("subject", subject))
	return exchange, nil
}
