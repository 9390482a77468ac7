package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aurumlife/aurum/internal/contract"
	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/repository"
)

type alignmentService struct {
	alignments repository.AlignmentRepo
	profiles   repository.ProfileRepo
}

func NewAlignmentService(alignments repository.AlignmentRepo, profiles repository.ProfileRepo) AlignmentService {
	return &alignmentService{alignments: alignments, profiles: profiles}
}

func (s *alignmentService) WeeklyScore(ctx context.Context, now time.Time) (int, error) {
	return s.alignments.SumSince(ctx, now.UTC().AddDate(0, 0, -7))
}

func (s *alignmentService) MonthlyScore(ctx context.Context, now time.Time) (int, error) {
	monthStart, _ := domain.MonthWindow(now)
	return s.alignments.SumSince(ctx, monthStart)
}

func (s *alignmentService) SetMonthlyGoal(ctx context.Context, goal int) error {
	if goal <= 0 {
		return fmt.Errorf("monthly goal must be positive, got %d", goal)
	}
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return err
	}
	profile.MonthlyAlignmentGoal = &goal
	profile.UpdatedAt = time.Now().UTC()
	return s.profiles.Upsert(ctx, profile)
}

func (s *alignmentService) Dashboard(ctx context.Context, now time.Time) (*contract.AlignmentDashboard, error) {
	weekly, err := s.WeeklyScore(ctx, now)
	if err != nil {
		return nil, err
	}
	monthly, err := s.MonthlyScore(ctx, now)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}

	dash := &contract.AlignmentDashboard{
		RollingWeekly: weekly,
		Monthly:       monthly,
		MonthlyGoal:   profile.MonthlyAlignmentGoal,
	}
	if profile.MonthlyAlignmentGoal != nil && *profile.MonthlyAlignmentGoal > 0 {
		dash.HasGoal = true
		dash.ProgressPct = float64(monthly) / float64(*profile.MonthlyAlignmentGoal) * 100
		if dash.ProgressPct > 100 {
			dash.ProgressPct = 100
		}
	}
	return dash, nil
}
