package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/repository"
	"github.com/google/uuid"
)

type areaService struct {
	areas repository.AreaRepo
}

func NewAreaService(areas repository.AreaRepo) AreaService {
	return &areaService{areas: areas}
}

func (s *areaService) Create(ctx context.Context, a *domain.Area) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Name == "" {
		return fmt.Errorf("area name is required")
	}
	if a.Importance == 0 {
		a.Importance = 3
	}
	if a.Importance < 1 || a.Importance > 5 {
		return fmt.Errorf("area importance must be 1-5, got %d", a.Importance)
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	return s.areas.Create(ctx, a)
}

func (s *areaService) GetByID(ctx context.Context, id string) (*domain.Area, error) {
	return s.areas.GetByID(ctx, id)
}

func (s *areaService) List(ctx context.Context, includeArchived bool) ([]*domain.Area, error) {
	return s.areas.List(ctx, includeArchived)
}

func (s *areaService) ListByPillar(ctx context.Context, pillarID string) ([]*domain.Area, error) {
	return s.areas.ListByPillar(ctx, pillarID)
}

func (s *areaService) Update(ctx context.Context, a *domain.Area) error {
	if a.Importance < 1 || a.Importance > 5 {
		return fmt.Errorf("area importance must be 1-5, got %d", a.Importance)
	}
	a.UpdatedAt = time.Now().UTC()
	return s.areas.Update(ctx, a)
}

func (s *areaService) Archive(ctx context.Context, id string) error {
	return s.areas.Archive(ctx, id)
}

func (s *areaService) Unarchive(ctx context.Context, id string) error {
	return s.areas.Unarchive(ctx, id)
}

func (s *areaService) Delete(ctx context.Context, id string) error {
	return s.areas.Delete(ctx, id)
}
