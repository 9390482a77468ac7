package service

import (
	"context"
	"time"

	"github.com/aurumlife/aurum/internal/contract"
	"github.com/aurumlife/aurum/internal/repository"
	"github.com/aurumlife/aurum/internal/scoring"
)

type todayService struct {
	tasks    repository.TaskRepo
	observer UseCaseObserver
}

func NewTodayService(tasks repository.TaskRepo, observers ...UseCaseObserver) TodayService {
	return &todayService{tasks: tasks, observer: useCaseObserverOrNoop(observers)}
}

// Today ranks the tasks worth doing today: everything due by end of day
// plus tasks with no due date, scored and canonically sorted.
func (s *todayService) Today(ctx context.Context, req contract.TodayRequest) (*contract.TodayResponse, error) {
	start := time.Now()
	now := start.UTC()
	if req.Now != nil {
		now = req.Now.UTC()
	}
	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	loc := req.Location
	if loc == nil {
		loc = time.UTC
	}

	// Day boundaries follow the caller's location so "due today" means the
	// user's today, not UTC's.
	local := now.In(loc)
	endOfDay := time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 0, loc)
	candidates, err := s.tasks.ListDueCandidates(ctx, endOfDay)
	if err != nil {
		s.observeToday(ctx, start, 0, err)
		return nil, err
	}

	scored := make([]scoring.ScoredTask, 0, len(candidates))
	byTask := make(map[string]repository.TaskCandidate, len(candidates))
	for _, c := range candidates {
		byTask[c.Task.ID] = c
		scored = append(scored, scoring.ScoreTask(scoring.InputFromCandidate(c, now)))
	}
	scoring.CanonicalSort(scored)

	// Stats count every open candidate, not just the ones the cap lets
	// through to the view.
	open := len(scored)
	if len(scored) > limit {
		scored = scored[:limit]
	}

	resp := &contract.TodayResponse{GeneratedAt: now}
	for _, st := range scored {
		c := byTask[st.Input.TaskID]
		resp.Tasks = append(resp.Tasks, contract.TodayTask{
			TaskID:      c.Task.ID,
			Name:        c.Task.Name,
			ProjectName: c.ProjectName,
			AreaName:    c.AreaName,
			PillarName:  c.PillarName,
			DueDate:     c.Task.DueDate,
			Priority:    string(c.Task.Priority),
			Score:       st.Score,
			Reasons:     st.Reasons,
			Blocked:     !c.DependenciesMet(),
		})
	}

	stats, err := s.stats(ctx, local, open)
	if err != nil {
		s.observeToday(ctx, start, len(resp.Tasks), err)
		return nil, err
	}
	resp.Stats = stats

	s.observeToday(ctx, start, len(resp.Tasks), nil)
	return resp, nil
}

// stats buckets completions by the day local points into.
func (s *todayService) stats(ctx context.Context, local time.Time, open int) (contract.TodayStats, error) {
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
	completedToday, err := s.tasks.CountCompletedSince(ctx, dayStart)
	if err != nil {
		return contract.TodayStats{}, err
	}

	stats := contract.TodayStats{
		TotalToday:     open + completedToday,
		CompletedToday: completedToday,
	}
	if stats.TotalToday > 0 {
		stats.CompletionRate = float64(completedToday) / float64(stats.TotalToday) * 100
	}
	return stats, nil
}

func (s *todayService) observeToday(ctx context.Context, start time.Time, tasks int, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "today_view",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"tasks": tasks},
		StartedAt: start,
	})
}
