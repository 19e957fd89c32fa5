package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/saarthi-api/internal/models"
	"github.com/noah-isme/saarthi-api/internal/store"
	appErrors "github.com/noah-isme/saarthi-api/pkg/errors"
)

type fixedClock struct {
	t time.Time
}

func (c *fixedClock) now() time.Time { return c.t }

func (c *fixedClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fixedClock {
	return &fixedClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func TestUserRepositoryLookups(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(store.New())

	users := []models.User{
		{Username: "admin1", Email: "admin@example.com", Role: models.RoleAdmin},
		{Username: "s1", Email: "s1@example.com", Role: models.RoleStudent},
		{Username: "s2", Email: "s2@example.com", Role: models.RoleStudent},
	}
	for i := range users {
		require.NoError(t, repo.Create(ctx, &users[i]))
	}
	assert.Equal(t, []int{1, 2, 3}, []int{users[0].ID, users[1].ID, users[2].ID})
	assert.False(t, users[0].CreatedAt.IsZero())

	admins, err := repo.ListByRole(ctx, models.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "admin1", admins[0].Username)

	students, err := repo.ListByRole(ctx, models.RoleStudent)
	require.NoError(t, err)
	assert.Len(t, students, 2)
	assert.Equal(t, 2, students[0].ID)

	none, err := repo.ListByRole(ctx, "Admin")
	require.NoError(t, err)
	assert.Empty(t, none)

	byName, err := repo.FindByUsername(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, 3, byName.ID)

	byEmail, err := repo.FindByEmail(ctx, "s1@example.com")
	require.NoError(t, err)
	assert.Equal(t, "s1", byEmail.Username)

	_, err = repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestChatRepositoryHistory(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	repo := NewChatRepository(s)
	clock := newClock()
	repo.now = clock.now

	for i := 0; i < 5; i++ {
		msg := &models.ChatMessage{UserID: 7, Message: string(rune('a' + i))}
		require.NoError(t, repo.Create(ctx, msg))
		clock.advance(time.Second)
	}
	require.NoError(t, repo.Create(ctx, &models.ChatMessage{UserID: 8, Message: "other"}))
	s.Put(store.KindChatMessages, 100, models.ChatMessage{ID: 100, UserID: 7, Message: "legacy"})

	history, err := repo.ListByUser(ctx, 7, 0)
	require.NoError(t, err)
	require.Len(t, history, 6)
	assert.Equal(t, "legacy", history[0].Message, "missing timestamps sort first")
	assert.Equal(t, "e", history[5].Message)

	last, err := repo.ListByUser(ctx, 7, 2)
	require.NoError(t, err)
	require.Len(t, last, 2)
	assert.Equal(t, "d", last[0].Message)
	assert.Equal(t, "e", last[1].Message)

	empty, err := repo.ListByUser(ctx, 99, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestChatRepositoryEqualTimestampsKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewChatRepository(store.New())
	clock := newClock()
	repo.now = clock.now

	for _, text := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &models.ChatMessage{UserID: 1, Message: text}))
	}

	history, err := repo.ListByUser(ctx, 1, 50)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "first", history[0].Message)
	assert.Equal(t, "third", history[2].Message)
}

func TestAssessmentRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewAssessmentRepository(store.New())

	a := &models.Assessment{Title: "Quiz", CreatedBy: 3, Status: models.AssessmentDraft, Questions: json.RawMessage(`[]`)}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, &models.Assessment{Title: "Other", CreatedBy: 4}))

	creator := 3
	mine, err := repo.List(ctx, &creator)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Quiz", mine[0].Title)

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	status := models.AssessmentActive
	patch := models.AssessmentPatch{Status: &status}
	first, err := repo.Update(ctx, a.ID, patch)
	require.NoError(t, err)
	second, err := repo.Update(ctx, a.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, models.AssessmentActive, second.Status)
	assert.Equal(t, "Quiz", second.Title)

	_, err = repo.Update(ctx, 999, patch)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStudentAssessmentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentAssessmentRepository(store.New())
	clock := newClock()
	repo.now = clock.now

	first := &models.StudentAssessment{StudentID: 1, AssessmentID: 10}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, &models.StudentAssessment{StudentID: 1, AssessmentID: 10}))
	require.NoError(t, repo.Create(ctx, &models.StudentAssessment{StudentID: 2, AssessmentID: 10}))
	assert.Equal(t, clock.t, first.StartedAt)

	attempts, err := repo.ListByStudent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, attempts, 2)

	match, err := repo.FindByStudentAndAssessment(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, first.ID, match.ID)

	_, err = repo.FindByStudentAndAssessment(ctx, 1, 11)
	assert.ErrorIs(t, err, store.ErrNotFound)

	score := 8
	updated, err := repo.Update(ctx, first.ID, models.StudentAssessmentPatch{Score: &score})
	require.NoError(t, err)
	require.NotNil(t, updated.Score)
	assert.Equal(t, 8, *updated.Score)
}

func TestStudentProgressRepositoryRefreshesLastActivity(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentProgressRepository(store.New())
	clock := newClock()
	repo.now = clock.now

	sp := &models.StudentProgress{StudentID: 1, Subject: "Physics", EngagementScore: 100, RiskLevel: models.RiskLow}
	require.NoError(t, repo.Create(ctx, sp))
	created := sp.LastActivity

	clock.advance(time.Hour)
	progress := 40
	updated, err := repo.Update(ctx, sp.ID, models.StudentProgressPatch{Progress: &progress})
	require.NoError(t, err)
	assert.Equal(t, 40, updated.Progress)
	assert.True(t, updated.LastActivity.After(created))

	found, err := repo.FindByStudentAndSubject(ctx, 1, "Physics")
	require.NoError(t, err)
	assert.Equal(t, 40, found.Progress)

	_, err = repo.FindByStudentAndSubject(ctx, 1, "physics")
	assert.ErrorIs(t, err, store.ErrNotFound)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestInterventionRepositoryFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewInterventionRepository(store.New())

	seed := []models.Intervention{
		{StudentID: 1, EducatorID: 5},
		{StudentID: 1, EducatorID: 6},
		{StudentID: 2, EducatorID: 5},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	student, educator := 1, 5
	both, err := repo.List(ctx, models.InterventionFilter{StudentID: &student, EducatorID: &educator})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, seed[0].ID, both[0].ID)

	byEducator, err := repo.List(ctx, models.InterventionFilter{EducatorID: &educator})
	require.NoError(t, err)
	assert.Len(t, byEducator, 2)

	all, err := repo.List(ctx, models.InterventionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = repo.Update(ctx, 404, models.InterventionPatch{})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCacheRepositoryWithoutClientMisses(t *testing.T) {
	ctx := context.Background()
	repo := NewCacheRepository(nil, nil)

	assert.False(t, repo.Enabled())
	require.NoError(t, repo.Set(ctx, "k", map[string]int{"a": 1}, time.Minute))

	var dest map[string]int
	assert.ErrorIs(t, repo.Get(ctx, "k", &dest), appErrors.ErrCacheMiss)
	assert.NoError(t, repo.DeleteByPattern(ctx, "k*"))
	assert.NoError(t, repo.Close())
}
