package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/saarthi-api/internal/generator"
	"github.com/noah-isme/saarthi-api/internal/models"
	"github.com/noah-isme/saarthi-api/internal/repository"
	"github.com/noah-isme/saarthi-api/internal/store"
	appErrors "github.com/noah-isme/saarthi-api/pkg/errors"
)

type failingResponder struct{}

func (failingResponder) Generate(ctx context.Context, message, subject string) (string, error) {
	return "", errors.New("model unavailable")
}

func newChatService(s *store.Store, limit int) (*ChatService, *MetricsService) {
	metrics := NewMetricsService()
	responder := generator.NewTemplateResponder(rand.NewSource(7))
	return NewChatService(repository.NewChatRepository(s), responder, nil, metrics, nil, limit), metrics
}

func TestChatServiceSendCreatesTutorReply(t *testing.T) {
	s := store.New()
	svc, metrics := newChatService(s, 0)

	exchange, err := svc.Send(context.Background(), models.CreateChatMessageRequest{
		UserID:  4,
		Message: "How do derivatives work?",
		Subject: strPtr("Mathematics"),
	})
	require.NoError(t, err)
	require.NotNil(t, exchange.AIMessage)

	assert.False(t, exchange.UserMessage.IsAI)
	assert.True(t, exchange.AIMessage.IsAI)
	assert.Equal(t, 4, exchange.AIMessage.UserID)
	require.NotNil(t, exchange.AIMessage.Subject)
	assert.Equal(t, "Mathematics", *exchange.AIMessage.Subject)
	assert.Contains(t, generator.RepliesFor("Mathematics"), exchange.AIMessage.Message)
	assert.Greater(t, exchange.AIMessage.ID, exchange.UserMessage.ID)
	assert.Equal(t, 2, s.Len(store.KindChatMessages))
	assert.Equal(t, uint64(1), metrics.Snapshot().Generations)
}

func TestChatServiceAIAuthoredMessageGetsNoReply(t *testing.T) {
	s := store.New()
	svc, _ := newChatService(s, 0)

	exchange, err := svc.Send(context.Background(), models.CreateChatMessageRequest{UserID: 4, Message: "Welcome back!", IsAI: true})
	require.NoError(t, err)
	assert.Nil(t, exchange.AIMessage)
	assert.Equal(t, 1, s.Len(store.KindChatMessages))
}

func TestChatServiceSendValidation(t *testing.T) {
	svc, _ := newChatService(store.New(), 0)

	_, err := svc.Send(context.Background(), models.CreateChatMessageRequest{UserID: 4})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Send(context.Background(), models.CreateChatMessageRequest{UserID: -1, Message: "hi"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestChatServiceSendAcceptsZeroUserID(t *testing.T) {
	svc, _ := newChatService(store.New(), 0)

	exchange, err := svc.Send(context.Background(), models.CreateChatMessageRequest{UserID: 0, Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, 0, exchange.UserMessage.UserID)
	require.NotNil(t, exchange.AIMessage)
	assert.Equal(t, 0, exchange.AIMessage.UserID)
}

func TestChatServiceHistoryUsesConfiguredLimit(t *testing.T) {
	s := store.New()
	svc, _ := newChatService(s, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Send(ctx, models.CreateChatMessageRequest{UserID: 9, Message: "question"})
		require.NoError(t, err)
	}

	history, err := svc.History(ctx, 9, 0)
	require.NoError(t, err)
	assert.Len(t, history, 3)
	for _, m := range history {
		assert.Equal(t, 9, m.UserID)
	}
	assert.True(t, history[2].IsAI, "newest message is the last tutor reply")

	all, err := svc.History(ctx, 9, 100)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestChatServiceResponderFailure(t *testing.T) {
	svc := NewChatService(repository.NewChatRepository(store.New()), failingResponder{}, nil, nil, nil, 0)

	_, err := svc.Send(context.Background(), models.CreateChatMessageRequest{UserID: 1, Message: "hi"})
	assert.ErrorIs(t, err, appErrors.ErrInternal)
}
