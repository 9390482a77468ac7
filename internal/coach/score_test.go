package coach

import (
	"testing"
	"time"

	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/repository"
	"github.com/stretchr/testify/assert"
)

func candidate(opts ...func(*repository.TaskCandidate)) repository.TaskCandidate {
	c := repository.TaskCandidate{
		Task: domain.Task{
			ID:       "t1",
			Name:     "Test task",
			Priority: domain.PriorityMedium,
		},
		ProjectName:       "Project",
		ProjectImportance: 3,
		AreaImportance:    3,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func TestScore(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	todayMorning := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		c     repository.TaskCandidate
		total int
	}{
		{
			name:  "baseline gets only the dependency bonus",
			c:     candidate(),
			total: DependenciesMetBonus,
		},
		{
			name: "overdue",
			c: candidate(func(c *repository.TaskCandidate) {
				c.Task.DueDate = &yesterday
			}),
			total: OverdueBonus + DependenciesMetBonus,
		},
		{
			name: "due today",
			c: candidate(func(c *repository.TaskCandidate) {
				c.Task.DueDate = &todayMorning
			}),
			total: DueTodayBonus + DependenciesMetBonus,
		},
		{
			name: "high priority",
			c: candidate(func(c *repository.TaskCandidate) {
				c.Task.Priority = domain.PriorityHigh
			}),
			total: HighPriorityBonus + DependenciesMetBonus,
		},
		{
			name: "important project and area",
			c: candidate(func(c *repository.TaskCandidate) {
				c.ProjectImportance = 4
				c.AreaImportance = 5
			}),
			total: ProjectImportanceBonus + AreaImportanceBonus + DependenciesMetBonus,
		},
		{
			name: "blocked loses the dependency bonus",
			c: candidate(func(c *repository.TaskCandidate) {
				c.UnmetDependencies = 1
			}),
			total: 0,
		},
		{
			name: "everything stacks",
			c: candidate(func(c *repository.TaskCandidate) {
				c.Task.DueDate = &yesterday
				c.Task.Priority = domain.PriorityHigh
				c.ProjectImportance = 5
				c.AreaImportance = 4
			}),
			total: OverdueBonus + HighPriorityBonus + ProjectImportanceBonus + AreaImportanceBonus + DependenciesMetBonus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Score(tt.c, now)
			assert.Equal(t, tt.total, b.Total)
			assert.Equal(t, tt.total,
				b.Urgency+b.Priority+b.ProjectImportance+b.AreaImportance+b.Dependencies,
				"total matches the component sum")
		})
	}
}

func TestScore_OverdueReasonCountsDays(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, -3)
	b := Score(candidate(func(c *repository.TaskCandidate) {
		c.Task.DueDate = &due
	}), now)
	assert.Contains(t, b.Reasons, "Overdue by 3 days")

	due = now.AddDate(0, 0, -1)
	b = Score(candidate(func(c *repository.TaskCandidate) {
		c.Task.DueDate = &due
	}), now)
	assert.Contains(t, b.Reasons, "Overdue by 1 day")
}

func TestSortScored(t *testing.T) {
	early := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	late := early.AddDate(0, 0, 5)

	mk := func(id string, total int, created time.Time) ScoredTask {
		st := ScoredTask{Candidate: candidate()}
		st.Candidate.Task.ID = id
		st.Candidate.Task.CreatedAt = created
		st.Breakdown.Total = total
		return st
	}

	tasks := []ScoredTask{
		mk("c", 50, late),
		mk("b", 50, early),
		mk("a", 200, late),
	}
	sortScored(tasks)

	assert.Equal(t, "a", tasks[0].Candidate.Task.ID, "highest total first")
	assert.Equal(t, "b", tasks[1].Candidate.Task.ID, "older task wins the tie")
	assert.Equal(t, "c", tasks[2].Candidate.Task.ID)
}
