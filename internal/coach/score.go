package coach

import (
	"fmt"
	"sort"
	"time"

	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/repository"
)

// Coach score weights. Unlike the 0-100 priority score used by the Today
// ranking, the coach breakdown is additive and uncapped; it exists to pick
// the handful of tasks worth a coaching message.
const (
	OverdueBonus           = 100
	DueTodayBonus          = 80
	HighPriorityBonus      = 30
	ProjectImportanceBonus = 50
	AreaImportanceBonus    = 25
	DependenciesMetBonus   = 60

	importanceCutoff = 4
)

// ScoreBreakdown itemizes the coach score for one task.
type ScoreBreakdown struct {
	Urgency           int
	Priority          int
	ProjectImportance int
	AreaImportance    int
	Dependencies      int
	Total             int
	Reasons           []string
}

// Score computes the coach breakdown for a candidate. Due dates are compared
// as UTC calendar days.
func Score(c repository.TaskCandidate, now time.Time) ScoreBreakdown {
	var b ScoreBreakdown
	today := now.UTC().Truncate(24 * time.Hour)

	if c.Task.DueDate != nil {
		due := c.Task.DueDate.UTC().Truncate(24 * time.Hour)
		switch {
		case due.Before(today):
			b.Urgency = OverdueBonus
			days := int(today.Sub(due).Hours() / 24)
			plural := "s"
			if days == 1 {
				plural = ""
			}
			b.Reasons = append(b.Reasons, fmt.Sprintf("Overdue by %d day%s", days, plural))
		case due.Equal(today):
			b.Urgency = DueTodayBonus
			b.Reasons = append(b.Reasons, "Due today")
		}
	}

	if c.Task.Priority == domain.PriorityHigh {
		b.Priority = HighPriorityBonus
		b.Reasons = append(b.Reasons, "Task priority: High")
	}

	if c.ProjectImportance >= importanceCutoff {
		b.ProjectImportance = ProjectImportanceBonus
		b.Reasons = append(b.Reasons, "Project importance: High")
	}
	if c.AreaImportance >= importanceCutoff {
		b.AreaImportance = AreaImportanceBonus
		b.Reasons = append(b.Reasons, "Area importance: High")
	}

	if c.DependenciesMet() {
		b.Dependencies = DependenciesMetBonus
		b.Reasons = append(b.Reasons, "Dependencies met")
	}

	b.Total = b.Urgency + b.Priority + b.ProjectImportance + b.AreaImportance + b.Dependencies
	return b
}

// ScoredTask pairs a candidate with its coach breakdown.
type ScoredTask struct {
	Candidate repository.TaskCandidate
	Breakdown ScoreBreakdown

	// Coaching is filled for the top tasks only.
	Coaching  string
	AIPowered bool
}

// sortScored orders by total desc, then created asc, then task ID for
// deterministic output.
func sortScored(tasks []ScoredTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Breakdown.Total != b.Breakdown.Total {
			return a.Breakdown.Total > b.Breakdown.Total
		}
		if !a.Candidate.Task.CreatedAt.Equal(b.Candidate.Task.CreatedAt) {
			return a.Candidate.Task.CreatedAt.Before(b.Candidate.Task.CreatedAt)
		}
		return a.Candidate.Task.ID < b.Candidate.Task.ID
	})
}
