package service

import (
	"context"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/saarthi-api/internal/models"
	"github.com/noah-isme/saarthi-api/internal/store"
	appErrors "github.com/noah-isme/saarthi-api/pkg/errors"
)

const (
	analyticsCachePattern = "analytics:*"
	riskOverviewCacheKey  = "analytics:risk"
)

type analyticsUserRepository interface {
	ListByRole(ctx context.Context, role models.UserRole) ([]models.User, error)
}

type analyticsProgressRepository interface {
	List(ctx context.Context) ([]models.StudentProgress, error)
}

type analyticsInterventionRepository interface {
	List(ctx context.Context, filter models.InterventionFilter) ([]models.Intervention, error)
}

type recordCounter interface {
	Counts() map[store.Kind]int
}

// AnalyticsService aggregates progress, intervention and runtime data for educators and admins.
type AnalyticsService struct {
	users         analyticsUserRepository
	progress      analyticsProgressRepository
	interventions analyticsInterventionRepository
	records       recordCounter
	cache         *CacheService
	metrics       *MetricsService
	logger        *zap.Logger
	ttl           time.Duration
	now           func() time.Time
}

// NewAnalyticsService constructs an AnalyticsService.
func NewAnalyticsService(users analyticsUserRepository, progress analyticsProgressRepository, interventions analyticsInterventionRepository, records recordCounter, cache *CacheService, metrics *MetricsService, logger *zap.Logger, ttl time.Duration) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{
		users:         users,
		progress:      progress,
		interventions: interventions,
		records:       records,
		cache:         cache,
		metrics:       metrics,
		logger:        logger,
		ttl:           ttl,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// RiskOverview returns the risk summary and whether it came from cache.
func (s *AnalyticsService) RiskOverview(ctx context.Context) (*models.RiskOverview, bool, error) {
	overview, hit, err := cached(ctx, s.cache, riskOverviewCacheKey, s.ttl, s.buildRiskOverview)
	if err != nil {
		return nil, false, err
	}
	return &overview, hit, nil
}

func (s *AnalyticsService) buildRiskOverview(ctx context.Context) (models.RiskOverview, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveStoreScan("risk_overview", time.Since(start)) }()

	students, err := s.users.ListByRole(ctx, models.RoleStudent)
	if err != nil {
		return models.RiskOverview{}, appErrors.Internal(err, "failed to load students")
	}
	progress, err := s.progress.List(ctx)
	if err != nil {
		return models.RiskOverview{}, appErrors.Internal(err, "failed to load progress")
	}
	interventions, err := s.interventions.List(ctx, models.InterventionFilter{})
	if err != nil {
		return models.RiskOverview{}, appErrors.Internal(err, "failed to load interventions")
	}

	byID := make(map[int]models.User, len(students))
	for _, u := range students {
		byID[u.ID] = u
	}

	overview := models.RiskOverview{
		TotalStudents:  len(students),
		TrackedRecords: len(progress),
		AtRisk:         []models.RiskStudent{},
		GeneratedAt:    s.now(),
	}

	open := make(map[int]int)
	for _, i := range interventions {
		overview.Interventions.Total++
		switch i.Status {
		case models.InterventionPending:
			overview.Interventions.Pending++
			open[i.StudentID]++
		case models.InterventionInProgress:
			overview.Interventions.InProgress++
			open[i.StudentID]++
		case models.InterventionCompleted:
			overview.Interventions.Completed++
		}
	}

	var progressSum, engagementSum int
	for _, sp := range progress {
		progressSum += sp.Progress
		engagementSum += sp.EngagementScore
		switch sp.RiskLevel {
		case models.RiskHigh:
			overview.RiskCounts.High++
		case models.RiskMedium:
			overview.RiskCounts.Medium++
		default:
			overview.RiskCounts.Low++
			continue
		}
		overview.AtRisk = append(overview.AtRisk, riskRow(sp, byID, open))
	}
	if n := len(progress); n > 0 {
		overview.AverageProgress = round2(float64(progressSum) / float64(n))
		overview.AverageEngagement = round2(float64(engagementSum) / float64(n))
	}

	sort.SliceStable(overview.AtRisk, func(i, j int) bool {
		a, b := overview.AtRisk[i], overview.AtRisk[j]
		if a.RiskLevel != b.RiskLevel {
			return a.RiskLevel == models.RiskHigh
		}
		if a.Progress != b.Progress {
			return a.Progress < b.Progress
		}
		return a.StudentID < b.StudentID
	})
	return overview, nil
}

// System returns the runtime snapshot enriched with per-collection record counts.
func (s *AnalyticsService) System(ctx context.Context) models.SystemMetrics {
	snapshot := s.metrics.Snapshot()
	snapshot.Records = make(map[string]int)
	if s.records != nil {
		for kind, n := range s.records.Counts() {
			snapshot.Records[string(kind)] = n
		}
	}
	return snapshot
}

func riskRow(sp models.StudentProgress, students map[int]models.User, open map[int]int) models.RiskStudent {
	row := models.RiskStudent{
		StudentID:         sp.StudentID,
		Subject:           sp.Subject,
		RiskLevel:         sp.RiskLevel,
		Progress:          sp.Progress,
		EngagementScore:   sp.EngagementScore,
		LastActivity:      sp.LastActivity,
		OpenInterventions: open[sp.StudentID],
	}
	if u, ok := students[sp.StudentID]; ok {
		row.Name = u.Name
		if u.Grade != nil {
			row.Grade = *u.Grade
		}
	}
	return row
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
