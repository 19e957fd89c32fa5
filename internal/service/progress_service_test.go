package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/saarthi-api/internal/models"
	"github.com/noah-isme/saarthi-api/internal/repository"
	"github.com/noah-isme/saarthi-api/internal/store"
	appErrors "github.com/noah-isme/saarthi-api/pkg/errors"
)

func TestProgressServiceCreateDefaults(t *testing.T) {
	cache := newMemoryCache()
	svc := NewProgressService(repository.NewStudentProgressRepository(store.New()), NewCacheService(cache, nil, time.Minute, nil, true), nil, nil)

	sp, err := svc.Create(context.Background(), models.CreateStudentProgressRequest{StudentID: 1, Subject: "Physics"})
	require.NoError(t, err)
	assert.Equal(t, 0, sp.Progress)
	assert.Equal(t, 100, sp.EngagementScore)
	assert.Equal(t, models.RiskLow, sp.RiskLevel)
	assert.False(t, sp.LastActivity.IsZero())
	assert.Equal(t, []string{analyticsCachePattern}, cache.deleted)
}

func TestProgressServiceValidation(t *testing.T) {
	svc := NewProgressService(repository.NewStudentProgressRepository(store.New()), nil, nil, nil)

	_, err := svc.Create(context.Background(), models.CreateStudentProgressRequest{StudentID: 1, Subject: "Physics", Progress: intPtr(101)})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	risk := models.RiskLevel("extreme")
	_, err = svc.Update(context.Background(), 1, models.StudentProgressPatch{RiskLevel: &risk})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestProgressServiceUpdateAndLookup(t *testing.T) {
	svc := NewProgressService(repository.NewStudentProgressRepository(store.New()), nil, nil, nil)
	ctx := context.Background()

	sp, err := svc.Create(ctx, models.CreateStudentProgressRequest{StudentID: 2, Subject: "Chemistry", Progress: intPtr(0)})
	require.NoError(t, err)

	risk := models.RiskHigh
	updated, err := svc.Update(ctx, sp.ID, models.StudentProgressPatch{Progress: intPtr(15), RiskLevel: &risk})
	require.NoError(t, err)
	assert.Equal(t, 15, updated.Progress)
	assert.Equal(t, models.RiskHigh, updated.RiskLevel)
	assert.Equal(t, 100, updated.EngagementScore)
	assert.False(t, updated.LastActivity.Before(sp.LastActivity))

	found, err := svc.FindBySubject(ctx, 2, "Chemistry")
	require.NoError(t, err)
	assert.Equal(t, sp.ID, found.ID)

	_, err = svc.FindBySubject(ctx, 2, "Biology")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	_, err = svc.Update(ctx, 404, models.StudentProgressPatch{Progress: intPtr(1)})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	list, err := svc.ListByStudent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestStudentAssessmentService(t *testing.T) {
	svc := NewStudentAssessmentService(repository.NewStudentAssessmentRepository(store.New()), nil, nil)
	ctx := context.Background()

	sa, err := svc.Create(ctx, models.CreateStudentAssessmentRequest{StudentID: 1, AssessmentID: 5, MaxScore: intPtr(10)})
	require.NoError(t, err)
	assert.False(t, sa.StartedAt.IsZero())
	assert.Nil(t, sa.CompletedAt)

	_, err = svc.Create(ctx, models.CreateStudentAssessmentRequest{StudentID: 1})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	done := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	updated, err := svc.Update(ctx, sa.ID, models.StudentAssessmentPatch{Score: intPtr(7), CompletedAt: &done})
	require.NoError(t, err)
	assert.Equal(t, 7, *updated.Score)
	assert.Equal(t, 10, *updated.MaxScore)
	assert.Equal(t, done, *updated.CompletedAt)

	found, err := svc.Find(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, sa.ID, found.ID)

	_, err = svc.Find(ctx, 1, 6)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	_, err = svc.Update(ctx, 77, models.StudentAssessmentPatch{Score: intPtr(1)})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	list, err := svc.ListByStudent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestInterventionService(t *testing.T) {
	cache := newMemoryCache()
	svc := NewInterventionService(repository.NewInterventionRepository(store.New()), NewCacheService(cache, nil, time.Minute, nil, true), nil, nil)
	ctx := context.Background()

	i, err := svc.Create(ctx, models.CreateInterventionRequest{
		StudentID:   1,
		EducatorID:  2,
		Type:        models.InterventionTutoring,
		Description: "Weekly algebra session",
	})
	require.NoError(t, err)
	assert.Equal(t, models.InterventionPending, i.Status)

	_, err = svc.Create(ctx, models.CreateInterventionRequest{StudentID: 1, EducatorID: 2, Type: "detention", Description: "x"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	status := models.InterventionCompleted
	updated, err := svc.Update(ctx, i.ID, models.InterventionPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.InterventionCompleted, updated.Status)
	assert.Equal(t, "Weekly algebra session", updated.Description)

	_, err = svc.Update(ctx, 999, models.InterventionPatch{Status: &status})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	educator := 2
	list, err := svc.List(ctx, models.InterventionFilter{EducatorID: &educator})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.Len(t, cache.deleted, 2)
}
