package coach

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/llm"
	"github.com/aurumlife/aurum/internal/repository"
	"github.com/aurumlife/aurum/internal/service"
	"github.com/google/uuid"
)

// DefaultCoachingTop is how many top-scored tasks get a coaching message.
const DefaultCoachingTop = 3

// CoachService produces priority coaching, why-statements and project
// decomposition suggestions.
type CoachService interface {
	// TodayPriorities scores all active tasks with the coach breakdown and
	// attaches a coaching message to the top N. Quota exhaustion downgrades
	// the messages to deterministic text instead of failing.
	TodayPriorities(ctx context.Context, topN int, now time.Time) ([]ScoredTask, error)

	// WhyStatements builds contextual why sentences for the given tasks,
	// or for all active tasks when ids is empty.
	WhyStatements(ctx context.Context, taskIDs []string) ([]WhyStatement, error)

	// SuggestProjectTasks proposes starter tasks for a project.
	SuggestProjectTasks(ctx context.Context, projectID, templateType string) ([]SuggestedTask, error)

	// CreateSuggestedTasks persists accepted suggestions as real tasks.
	CreateSuggestedTasks(ctx context.Context, projectID string, suggestions []SuggestedTask) ([]*domain.Task, error)
}

type coachService struct {
	tasks    repository.TaskRepo
	projects repository.ProjectRepo
	client   llm.LLMClient
	quota    service.QuotaService
	observer service.UseCaseObserver
}

func NewCoachService(
	tasks repository.TaskRepo,
	projects repository.ProjectRepo,
	client llm.LLMClient,
	quota service.QuotaService,
	observers ...service.UseCaseObserver,
) CoachService {
	return &coachService{
		tasks:    tasks,
		projects: projects,
		client:   client,
		quota:    quota,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *coachService) TodayPriorities(ctx context.Context, topN int, now time.Time) ([]ScoredTask, error) {
	started := time.Now()

	candidates, err := s.tasks.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}

	scored := make([]ScoredTask, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, ScoredTask{
			Candidate: c,
			Breakdown: Score(c, now),
		})
	}
	sortScored(scored)

	if topN < 0 {
		topN = 0
	}
	if topN > len(scored) {
		topN = len(scored)
	}

	useLLM := topN > 0
	if useLLM {
		if err := s.quota.Consume(ctx, domain.FeatureTodayPriorities); err != nil {
			if !errors.Is(err, service.ErrQuotaExceeded) {
				return nil, err
			}
			useLLM = false
		}
	}

	for i := 0; i < topN; i++ {
		scored[i].Coaching, scored[i].AIPowered = s.coachingMessage(ctx, scored[i], useLLM)
	}

	s.observer.ObserveUseCase(ctx, service.UseCaseEvent{
		Name:      "coach_today_priorities",
		Duration:  time.Since(started),
		Success:   true,
		StartedAt: started,
		Fields: map[string]any{
			"tasks":   len(scored),
			"coached": topN,
			"llm":     useLLM,
		},
	})
	return scored, nil
}

// coachingMessage asks the LLM for a motivational note, falling back to a
// deterministic sentence built from the breakdown.
func (s *coachService) coachingMessage(ctx context.Context, st ScoredTask, useLLM bool) (string, bool) {
	if useLLM {
		prompt := fmt.Sprintf("Task: %q\nProject: %q\nArea: %q\nPillar: %q\nScore reasons: %s",
			st.Candidate.Task.Name,
			st.Candidate.ProjectName,
			st.Candidate.AreaName,
			st.Candidate.PillarName,
			strings.Join(st.Breakdown.Reasons, "; "))

		resp, err := s.client.Generate(ctx, llm.GenerateRequest{
			Task:         llm.TaskCoaching,
			SystemPrompt: coachingSystemPrompt,
			UserPrompt:   prompt,
		})
		if err == nil {
			if text := strings.TrimSpace(resp.Text); text != "" {
				return text, true
			}
		}
	}
	return deterministicCoaching(st), false
}

func deterministicCoaching(st ScoredTask) string {
	why := WhyForCandidate(st.Candidate)
	if len(st.Breakdown.Reasons) == 0 {
		return why.Statement
	}
	return strings.Join(st.Breakdown.Reasons, ". ") + ". " + why.Statement
}

func (s *coachService) WhyStatements(ctx context.Context, taskIDs []string) ([]WhyStatement, error) {
	if err := s.quota.Consume(ctx, domain.FeatureWhyStatements); err != nil {
		return nil, err
	}

	candidates, err := s.tasks.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}

	var wanted map[string]bool
	if len(taskIDs) > 0 {
		wanted = make(map[string]bool, len(taskIDs))
		for _, id := range taskIDs {
			wanted[id] = true
		}
	}

	var out []WhyStatement
	for _, c := range candidates {
		if wanted != nil && !wanted[c.Task.ID] {
			continue
		}
		out = append(out, WhyForCandidate(c))
	}
	return out, nil
}

func (s *coachService) SuggestProjectTasks(ctx context.Context, projectID, templateType string) ([]SuggestedTask, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := s.quota.Consume(ctx, domain.FeatureDecomposition); err != nil {
		return nil, err
	}
	return SuggestTasks(templateType, project.Name), nil
}

func (s *coachService) CreateSuggestedTasks(ctx context.Context, projectID string, suggestions []SuggestedTask) ([]*domain.Task, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := make([]*domain.Task, 0, len(suggestions))
	for i, sg := range suggestions {
		seq := sg.Sequence
		if seq == 0 {
			seq = i + 1
		}
		task := &domain.Task{
			ID:          uuid.New().String(),
			ProjectID:   projectID,
			Name:        sg.Name,
			Description: fmt.Sprintf("Suggested starter task %d of %d", seq, len(suggestions)),
			Status:      domain.TaskTodo,
			Priority:    sg.Priority,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if task.Priority == "" {
			task.Priority = domain.PriorityMedium
		}
		if err := s.tasks.Create(ctx, task); err != nil {
			return created, err
		}
		created = append(created, task)
	}
	return created, nil
}

func useCaseObserverOrNoop(observers []service.UseCaseObserver) service.UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return service.NoopUseCaseObserver{}
}
