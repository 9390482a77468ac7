package testutil

import (
	"time"

	"github.com/aurumlife/aurum/internal/domain"
	"github.com/google/uuid"
)

// Pillar options
type PillarOption func(*domain.Pillar)

func WithTimeAllocation(pct float64) PillarOption {
	return func(p *domain.Pillar) {
		p.TimeAllocationPct = pct
	}
}

func NewTestPillar(name string, opts ...PillarOption) *domain.Pillar {
	now := time.Now().UTC()
	p := &domain.Pillar{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Area options
type AreaOption func(*domain.Area)

func WithImportance(importance int) AreaOption {
	return func(a *domain.Area) {
		a.Importance = importance
	}
}

func WithPillar(pillarID string) AreaOption {
	return func(a *domain.Area) {
		a.PillarID = &pillarID
	}
}

func NewTestArea(name string, opts ...AreaOption) *domain.Area {
	now := time.Now().UTC()
	a := &domain.Area{
		ID:         uuid.New().String(),
		Name:       name,
		Importance: 3,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Project options
type ProjectOption func(*domain.Project)

func WithProjectPriority(p domain.Priority) ProjectOption {
	return func(pr *domain.Project) {
		pr.Priority = p
	}
}

func WithProjectImportance(importance int) ProjectOption {
	return func(pr *domain.Project) {
		pr.Importance = importance
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(pr *domain.Project) {
		pr.Status = s
	}
}

func NewTestProject(areaID, name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:         uuid.New().String(),
		AreaID:     areaID,
		Name:       name,
		Status:     domain.ProjectInProgress,
		Priority:   domain.PriorityMedium,
		Importance: 3,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithDependencies(ids ...string) TaskOption {
	return func(t *domain.Task) {
		t.DependencyIDs = ids
	}
}

func WithCompleted(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
		t.Status = domain.TaskCompleted
		t.CompletedAt = &at
	}
}

func WithCreatedAt(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = at
		t.UpdatedAt = at
	}
}

func NewTestTask(projectID, name string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		Status:    domain.TaskTodo,
		Priority:  domain.PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Journal options
type JournalOption func(*domain.JournalEntry)

func WithMood(m domain.Mood) JournalOption {
	return func(e *domain.JournalEntry) {
		e.Mood = m
	}
}

func WithEntryCreatedAt(at time.Time) JournalOption {
	return func(e *domain.JournalEntry) {
		e.CreatedAt = at
		e.UpdatedAt = at
	}
}

func NewTestEntry(title, content string, opts ...JournalOption) *domain.JournalEntry {
	now := time.Now().UTC()
	e := &domain.JournalEntry{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		Mood:      domain.MoodReflective,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
