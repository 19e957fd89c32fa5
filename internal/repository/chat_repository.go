package repository

import (
	"context"
	"sort"
	"time"

	"github.com/noah-isme/saarthi-api/internal/models"
	"github.com/noah-isme/saarthi-api/internal/store"
)

// DefaultChatHistoryLimit bounds chat history reads when no limit is given.
const DefaultChatHistoryLimit = 50

// ChatRepository stores AI tutor conversations.
type ChatRepository struct {
	store *store.Store
	now   func() time.Time
}

// NewChatRepository constructs a chat repository.
func NewChatRepository(s *store.Store) *ChatRepository {
	return &ChatRepository{store: s, now: utcNow}
}

// ListByUser returns the most recent limit messages of userID in chronological order.
// Messages without a timestamp sort as if created at the Unix epoch.
func (r *ChatRepository) ListByUser(ctx context.Context, userID, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultChatHistoryLimit
	}
	messages := store.Filter(r.store, store.KindChatMessages, func(m models.ChatMessage) bool { return m.UserID == userID })
	sort.SliceStable(messages, func(i, j int) bool {
		a, b := epochMillis(messages[i].CreatedAt), epochMillis(messages[j].CreatedAt)
		if a != b {
			return a < b
		}
		return messages[i].ID < messages[j].ID
	})
	if len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}
	return messages, nil
}

// Create stamps the message with the current time and stores it. The user id is not checked.
func (r *ChatRepository) Create(ctx context.Context, msg *models.ChatMessage) error {
	msg.ID = r.store.AllocateID()
	msg.CreatedAt = r.now()
	r.store.Put(store.KindChatMessages, msg.ID, *msg)
	return nil
}

func epochMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}
