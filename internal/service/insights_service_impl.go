package service

import (
	"context"
	"sort"
	"time"

	"github.com/aurumlife/aurum/internal/contract"
	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/repository"
	"golang.org/x/sync/errgroup"
)

type insightsService struct {
	pillars    repository.PillarRepo
	areas      repository.AreaRepo
	projects   repository.ProjectRepo
	tasks      repository.TaskRepo
	alignments repository.AlignmentRepo
}

func NewInsightsService(
	pillars repository.PillarRepo,
	areas repository.AreaRepo,
	projects repository.ProjectRepo,
	tasks repository.TaskRepo,
	alignments repository.AlignmentRepo,
) InsightsService {
	return &insightsService{
		pillars:    pillars,
		areas:      areas,
		projects:   projects,
		tasks:      tasks,
		alignments: alignments,
	}
}

// Snapshot gathers the alignment overview. The independent queries fan out
// concurrently; SQLite serializes them underneath but the shape mirrors the
// dashboard's parallel gather.
func (s *insightsService) Snapshot(ctx context.Context, now time.Time) (*contract.InsightsResponse, error) {
	resp := &contract.InsightsResponse{GeneratedAt: now.UTC()}

	var (
		pillars         []*domain.Pillar
		areas           []*domain.Area
		projects        []*domain.Project
		completedByProj map[string]int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pillars, err = s.pillars.List(gctx, true)
		return err
	})
	g.Go(func() error {
		var err error
		areas, err = s.areas.List(gctx, true)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = s.projects.List(gctx, true)
		return err
	})
	g.Go(func() error {
		var err error
		completedByProj, err = s.tasks.CountCompletedByProject(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		resp.Lifetime.CompletedProjects, err = s.projects.CountByStatus(gctx, domain.ProjectCompleted)
		return err
	})
	g.Go(func() error {
		var err error
		resp.RollingWeekly, err = s.alignments.SumSince(gctx, now.UTC().AddDate(0, 0, -7))
		return err
	})
	g.Go(func() error {
		monthStart, _ := domain.MonthWindow(now)
		var err error
		resp.Monthly, err = s.alignments.SumSince(gctx, monthStart)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp.Distribution = pillarDistribution(pillars, areas, projects, completedByProj)
	for _, n := range completedByProj {
		resp.Lifetime.CompletedTasks += n
	}
	return resp, nil
}

// pillarDistribution attributes completed tasks pillar-ward through the
// project -> area -> pillar lookup chain.
func pillarDistribution(
	pillars []*domain.Pillar,
	areas []*domain.Area,
	projects []*domain.Project,
	completedByProj map[string]int,
) []contract.PillarShare {
	areaToPillar := make(map[string]string, len(areas))
	for _, a := range areas {
		if a.PillarID != nil {
			areaToPillar[a.ID] = *a.PillarID
		}
	}
	projectToPillar := make(map[string]string, len(projects))
	for _, p := range projects {
		if pillarID, ok := areaToPillar[p.AreaID]; ok {
			projectToPillar[p.ID] = pillarID
		}
	}

	counts := make(map[string]int)
	var total int
	for projectID, n := range completedByProj {
		total += n
		if pillarID, ok := projectToPillar[projectID]; ok {
			counts[pillarID] += n
		}
	}

	var shares []contract.PillarShare
	for _, p := range pillars {
		n := counts[p.ID]
		if n == 0 {
			continue
		}
		share := contract.PillarShare{
			PillarID:   p.ID,
			PillarName: p.Name,
			TaskCount:  n,
		}
		if total > 0 {
			share.Percentage = float64(n) / float64(total) * 100
		}
		shares = append(shares, share)
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].TaskCount != shares[j].TaskCount {
			return shares[i].TaskCount > shares[j].TaskCount
		}
		return shares[i].PillarName < shares[j].PillarName
	})
	return shares
}
