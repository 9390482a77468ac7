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
	"github.com/google/uuid"
)

// ErrQuotaExceeded is returned when the monthly AI allowance is spent.
var ErrQuotaExceeded = errors.New("monthly ai quota exceeded")

type quotaService struct {
	profiles     repository.ProfileRepo
	interactions repository.InteractionRepo
	uow          db.UnitOfWork
	now          func() time.Time
}

func NewQuotaService(profiles repository.ProfileRepo, interactions repository.InteractionRepo, uow db.UnitOfWork) QuotaService {
	return &quotaService{
		profiles:     profiles,
		interactions: interactions,
		uow:          uow,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *quotaService) Status(ctx context.Context) (*contract.QuotaStatus, error) {
	return s.status(ctx, s.profiles, s.interactions)
}

func (s *quotaService) status(ctx context.Context, profiles repository.ProfileRepo, interactions repository.InteractionRepo) (*contract.QuotaStatus, error) {
	profile, err := profiles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	monthStart, _ := domain.MonthWindow(s.now())

	used, err := interactions.CountSince(ctx, monthStart)
	if err != nil {
		return nil, fmt.Errorf("counting interactions: %w", err)
	}
	breakdown, err := interactions.BreakdownSince(ctx, monthStart)
	if err != nil {
		return nil, fmt.Errorf("reading usage breakdown: %w", err)
	}

	limit := domain.MonthlyQuota(profile.Tier)
	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}
	return &contract.QuotaStatus{
		Tier:      profile.Tier,
		Limit:     limit,
		Used:      used,
		Remaining: remaining,
		Breakdown: breakdown,
	}, nil
}

// Consume checks the allowance and records the interaction inside one
// transaction, so concurrent consumers cannot slip past the cap between the
// count and the insert.
func (s *quotaService) Consume(ctx context.Context, feature domain.AIFeature) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txInteractions := repository.NewSQLiteInteractionRepo(tx)
		status, err := s.status(ctx, repository.NewSQLiteProfileRepo(tx), txInteractions)
		if err != nil {
			return err
		}
		if status.Exhausted() {
			return fmt.Errorf("%w: %d/%d used on tier %s", ErrQuotaExceeded, status.Used, status.Limit, status.Tier)
		}
		return txInteractions.Create(ctx, &domain.AIInteraction{
			ID:        uuid.New().String(),
			Feature:   feature,
			CreatedAt: s.now(),
		})
	})
}
