package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aurumlife/aurum/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// TaskCandidate is a joined view of a task with its full hierarchy context,
// used by the scoring engine and the Today/coach pipelines.
type TaskCandidate struct {
	Task              domain.Task
	ProjectName       string
	ProjectPriority   domain.Priority
	ProjectImportance int
	AreaID            *string
	AreaName          string
	AreaImportance    int
	PillarID          *string
	PillarName        string
	PillarTimePct     float64

	// UnmetDependencies counts predecessor tasks not yet completed.
	UnmetDependencies int
}

// DependenciesMet reports whether every predecessor is completed (or none exist).
func (c TaskCandidate) DependenciesMet() bool {
	return c.UnmetDependencies == 0
}

type PillarRepo interface {
	Create(ctx context.Context, p *domain.Pillar) error
	GetByID(ctx context.Context, id string) (*domain.Pillar, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Pillar, error)
	Update(ctx context.Context, p *domain.Pillar) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type AreaRepo interface {
	Create(ctx context.Context, a *domain.Area) error
	GetByID(ctx context.Context, id string) (*domain.Area, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Area, error)
	ListByPillar(ctx context.Context, pillarID string) ([]*domain.Area, error)
	Update(ctx context.Context, a *domain.Area) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	ListByArea(ctx context.Context, areaID string) ([]*domain.Project, error)
	CountByStatus(ctx context.Context, status domain.ProjectStatus) (int, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	// ListCandidates returns active tasks joined with project/area/pillar
	// context and unmet-dependency counts.
	ListCandidates(ctx context.Context) ([]TaskCandidate, error)
	// ListDueCandidates is ListCandidates restricted to tasks due before the
	// cutoff or carrying no due date at all.
	ListDueCandidates(ctx context.Context, dueBefore time.Time) ([]TaskCandidate, error)
	Update(ctx context.Context, t *domain.Task) error
	SetCompleted(ctx context.Context, id string, completed bool, at time.Time) error
	UpdateScore(ctx context.Context, id string, score float64, at time.Time) error
	SetDependencies(ctx context.Context, id string, dependencyIDs []string) error
	CountCompletedSince(ctx context.Context, since time.Time) (int, error)
	// CountCompletedByProject returns completed-task counts keyed by project.
	CountCompletedByProject(ctx context.Context) (map[string]int, error)
	Delete(ctx context.Context, id string) error
}

type JournalRepo interface {
	Create(ctx context.Context, e *domain.JournalEntry) error
	GetByID(ctx context.Context, id string) (*domain.JournalEntry, error)
	List(ctx context.Context, limit int, includeDeleted bool) ([]*domain.JournalEntry, error)
	ListSince(ctx context.Context, since time.Time) ([]*domain.JournalEntry, error)
	Update(ctx context.Context, e *domain.JournalEntry) error
	UpdateSentiment(ctx context.Context, id string, s *domain.SentimentResult) error
	SoftDelete(ctx context.Context, id string) error
}

type AlignmentRepo interface {
	Create(ctx context.Context, r *domain.AlignmentRecord) error
	ListByTask(ctx context.Context, taskID string) ([]*domain.AlignmentRecord, error)
	SumSince(ctx context.Context, since time.Time) (int, error)
	HasRecordForTask(ctx context.Context, taskID string) (bool, error)
}

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}

type InteractionRepo interface {
	Create(ctx context.Context, i *domain.AIInteraction) error
	CountSince(ctx context.Context, since time.Time) (int, error)
	BreakdownSince(ctx context.Context, since time.Time) (map[domain.AIFeature]int, error)
}

type EmbeddingRepo interface {
	Upsert(ctx context.Context, e *domain.Embedding) error
	ListByDomains(ctx context.Context, domains []domain.EmbeddingDomain) ([]*domain.Embedding, error)
	DeleteByEntity(ctx context.Context, domainTag domain.EmbeddingDomain, entityID string) error
}
