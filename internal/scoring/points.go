package scoring

import (
	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/repository"
)

// Alignment point components. A completion earns the base plus a bonus for
// each level of the hierarchy that marks the work as important, to a
// maximum of 50 per task.
const (
	BasePoints             = 5
	TaskHighBonus          = 10
	ProjectHighBonus       = 15
	AreaImportanceBonus    = 20
	areaImportanceCutoff   = 5
	MaxPointsPerCompletion = BasePoints + TaskHighBonus + ProjectHighBonus + AreaImportanceBonus
)

// TaskPoints computes the alignment points earned by completing a task,
// itemized so callers can show the user where the points came from.
func TaskPoints(c repository.TaskCandidate) domain.PointsBreakdown {
	b := domain.PointsBreakdown{Base: BasePoints}
	if c.Task.Priority == domain.PriorityHigh {
		b.TaskPriority = TaskHighBonus
	}
	if c.ProjectPriority == domain.PriorityHigh {
		b.ProjectPriority = ProjectHighBonus
	}
	if c.AreaImportance >= areaImportanceCutoff {
		b.AreaImportance = AreaImportanceBonus
	}
	return b
}
