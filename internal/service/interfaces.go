package service

import (
	"context"
	"time"

	"github.com/aurumlife/aurum/internal/contract"
	"github.com/aurumlife/aurum/internal/domain"
)

type PillarService interface {
	Create(ctx context.Context, p *domain.Pillar) error
	GetByID(ctx context.Context, id string) (*domain.Pillar, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Pillar, error)
	Update(ctx context.Context, p *domain.Pillar) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}

type AreaService interface {
	Create(ctx context.Context, a *domain.Area) error
	GetByID(ctx context.Context, id string) (*domain.Area, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Area, error)
	ListByPillar(ctx context.Context, pillarID string) ([]*domain.Area, error)
	Update(ctx context.Context, a *domain.Area) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	ListByArea(ctx context.Context, areaID string) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	// Complete marks the task done and records alignment points in the same
	// transaction. A task that already earned points never earns twice.
	Complete(ctx context.Context, id string) (*contract.CompletionResult, error)
	Reopen(ctx context.Context, id string) error
	SetDependencies(ctx context.Context, id string, dependencyIDs []string) error
	// RecalculateScores rescores every active task and persists the cached
	// scores. Returns the number of tasks updated.
	RecalculateScores(ctx context.Context, now time.Time) (int, error)
	Delete(ctx context.Context, id string) error
}

type JournalService interface {
	Create(ctx context.Context, e *domain.JournalEntry) error
	GetByID(ctx context.Context, id string) (*domain.JournalEntry, error)
	List(ctx context.Context, limit int, includeDeleted bool) ([]*domain.JournalEntry, error)
	Update(ctx context.Context, e *domain.JournalEntry) error
	Delete(ctx context.Context, id string) error
	// Trends aggregates sentiment over the trailing window, bucketing days
	// in now's location.
	Trends(ctx context.Context, days int, now time.Time) (*contract.SentimentTrends, error)
}

type AlignmentService interface {
	WeeklyScore(ctx context.Context, now time.Time) (int, error)
	MonthlyScore(ctx context.Context, now time.Time) (int, error)
	SetMonthlyGoal(ctx context.Context, goal int) error
	Dashboard(ctx context.Context, now time.Time) (*contract.AlignmentDashboard, error)
}

type TodayService interface {
	Today(ctx context.Context, req contract.TodayRequest) (*contract.TodayResponse, error)
}

type InsightsService interface {
	Snapshot(ctx context.Context, now time.Time) (*contract.InsightsResponse, error)
}

type QuotaService interface {
	Status(ctx context.Context) (*contract.QuotaStatus, error)
	// Consume records one interaction for the feature, failing with
	// ErrQuotaExceeded when the monthly allowance is spent.
	Consume(ctx context.Context, feature domain.AIFeature) error
}

// SeedResult summarizes what the demo seed created.
type SeedResult struct {
	Pillars  int
	Areas    int
	Projects int
	Tasks    int
	Entries  int
}

type SeedService interface {
	Seed(ctx context.Context) (*SeedResult, error)
}
