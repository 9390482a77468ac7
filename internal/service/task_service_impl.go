package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aurumlife/aurum/internal/contract"
	"github.com/aurumlife/aurum/internal/db"
	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/repository"
	"github.com/aurumlife/aurum/internal/scoring"
	"github.com/google/uuid"
)

type taskService struct {
	tasks    repository.TaskRepo
	projects repository.ProjectRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTaskService(tasks repository.TaskRepo, projects repository.ProjectRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TaskService {
	return &taskService{
		tasks:    tasks,
		projects: projects,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Name == "" {
		return fmt.Errorf("task name is required")
	}
	if t.ProjectID == "" {
		return fmt.Errorf("task requires a project")
	}
	if _, err := s.projects.GetByID(ctx, t.ProjectID); err != nil {
		return fmt.Errorf("resolving project: %w", err)
	}
	if t.Status == "" {
		t.Status = domain.TaskTodo
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	return s.tasks.ListByProject(ctx, projectID)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

// Complete transitions the task to completed and awards alignment points.
// The status flip and the alignment record commit or roll back together.
func (s *taskService) Complete(ctx context.Context, id string) (*contract.CompletionResult, error) {
	start := time.Now()
	result := &contract.CompletionResult{TaskID: id, Completed: true}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txAreas := repository.NewSQLiteAreaRepo(tx)
		txAlignments := repository.NewSQLiteAlignmentRepo(tx)

		task, err := txTasks.GetByID(ctx, id)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if !task.Completed {
			if err := txTasks.SetCompleted(ctx, id, true, now); err != nil {
				return err
			}
		}

		// A task that earned points before never earns twice, even if it was
		// reopened and completed again.
		recorded, err := txAlignments.HasRecordForTask(ctx, id)
		if err != nil {
			return err
		}
		if recorded {
			result.AlreadyRecorded = true
			return nil
		}

		candidate := repository.TaskCandidate{Task: *task}
		rec := &domain.AlignmentRecord{
			ID:           uuid.New().String(),
			TaskID:       id,
			TaskPriority: task.Priority,
			CreatedAt:    now,
		}

		project, err := txProjects.GetByID(ctx, task.ProjectID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if project != nil {
			candidate.ProjectPriority = project.Priority
			rec.ProjectPriority = &project.Priority

			if project.AreaID != "" {
				area, err := txAreas.GetByID(ctx, project.AreaID)
				if err != nil && !errors.Is(err, repository.ErrNotFound) {
					return err
				}
				if area != nil {
					candidate.AreaID = &area.ID
					candidate.AreaImportance = area.Importance
					rec.AreaImportance = &area.Importance
				}
			}
		}

		breakdown := scoring.TaskPoints(candidate)
		rec.PointsEarned = breakdown.Total()
		result.Points = breakdown

		return txAlignments.Create(ctx, rec)
	})

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "task_complete",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"task_id": id},
		StartedAt: start,
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *taskService) Reopen(ctx context.Context, id string) error {
	return s.tasks.SetCompleted(ctx, id, false, time.Now().UTC())
}

func (s *taskService) SetDependencies(ctx context.Context, id string, dependencyIDs []string) error {
	if _, err := s.tasks.GetByID(ctx, id); err != nil {
		return err
	}
	for _, depID := range dependencyIDs {
		if depID == id {
			continue
		}
		if _, err := s.tasks.GetByID(ctx, depID); err != nil {
			return fmt.Errorf("resolving dependency %s: %w", depID, err)
		}
	}
	return s.tasks.SetDependencies(ctx, id, dependencyIDs)
}

// RecalculateScores refreshes the cached priority score on every active task.
func (s *taskService) RecalculateScores(ctx context.Context, now time.Time) (int, error) {
	start := time.Now()
	var updated int

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)

		candidates, err := txTasks.ListCandidates(ctx)
		if err != nil {
			return err
		}
		for _, c := range candidates {
			scored := scoring.ScoreTask(scoring.InputFromCandidate(c, now))
			if err := txTasks.UpdateScore(ctx, c.Task.ID, scored.Score, now); err != nil {
				return err
			}
			updated++
		}
		return nil
	})

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "task_rescore",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"updated": updated},
		StartedAt: start,
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
