package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
	areas    repository.AreaRepo
}

func NewProjectService(projects repository.ProjectRepo, areas repository.AreaRepo) ProjectService {
	return &projectService{projects: projects, areas: areas}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if p.AreaID == "" {
		return fmt.Errorf("project requires an area")
	}
	if _, err := s.areas.GetByID(ctx, p.AreaID); err != nil {
		return fmt.Errorf("resolving area: %w", err)
	}
	if p.Status == "" {
		p.Status = domain.ProjectNotStarted
	}
	if p.Priority == "" {
		p.Priority = domain.PriorityMedium
	}
	if p.Importance == 0 {
		p.Importance = 3
	}
	if p.Importance < 1 || p.Importance > 5 {
		return fmt.Errorf("project importance must be 1-5, got %d", p.Importance)
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, includeArchived)
}

func (s *projectService) ListByArea(ctx context.Context, areaID string) ([]*domain.Project, error) {
	return s.projects.ListByArea(ctx, areaID)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) Archive(ctx context.Context, id string) error {
	return s.projects.Archive(ctx, id)
}

func (s *projectService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		p, err := s.projects.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p.ArchivedAt == nil {
			return fmt.Errorf("project must be archived before deletion (use --force to override)")
		}
	}
	return s.projects.Delete(ctx, id)
}
