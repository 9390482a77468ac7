package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/repository"
	"github.com/google/uuid"
)

type pillarService struct {
	pillars repository.PillarRepo
}

func NewPillarService(pillars repository.PillarRepo) PillarService {
	return &pillarService{pillars: pillars}
}

func (s *pillarService) Create(ctx context.Context, p *domain.Pillar) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Name == "" {
		return fmt.Errorf("pillar name is required")
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.pillars.Create(ctx, p)
}

func (s *pillarService) GetByID(ctx context.Context, id string) (*domain.Pillar, error) {
	return s.pillars.GetByID(ctx, id)
}

func (s *pillarService) List(ctx context.Context, includeArchived bool) ([]*domain.Pillar, error) {
	return s.pillars.List(ctx, includeArchived)
}

func (s *pillarService) Update(ctx context.Context, p *domain.Pillar) error {
	p.UpdatedAt = time.Now().UTC()
	return s.pillars.Update(ctx, p)
}

func (s *pillarService) Archive(ctx context.Context, id string) error {
	return s.pillars.Archive(ctx, id)
}

func (s *pillarService) Unarchive(ctx context.Context, id string) error {
	return s.pillars.Unarchive(ctx, id)
}

func (s *pillarService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		p, err := s.pillars.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p.ArchivedAt == nil {
			return fmt.Errorf("pillar must be archived before deletion (use --force to override)")
		}
	}
	// Deleting cascades through areas, projects and tasks.
	return s.pillars.Delete(ctx, id)
}
