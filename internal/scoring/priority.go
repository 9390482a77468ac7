package scoring

import (
	"fmt"
	"math"
	"time"

	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/repository"
)

// Factor weights. Each factor contributes at most its weight; the final
// score is clamped to MaxScore.
const (
	MaxScore         = 100.0
	UrgencyWeight    = 40.0
	PriorityWeight   = 20.0
	HierarchyWeight  = 25.0
	DependencyWeight = 15.0
	ProgressWeight   = 10.0
	AgeBonusCap      = 3.0
)

// Defaults applied when a task sits outside a full pillar hierarchy.
const (
	defaultImportance   = 3
	defaultPillarWeight = 1.0
)

type ReasonCode string

const (
	ReasonOverdue      ReasonCode = "overdue"
	ReasonDueSoon      ReasonCode = "due_soon"
	ReasonNoDueDate    ReasonCode = "no_due_date"
	ReasonTaskPriority ReasonCode = "task_priority"
	ReasonHierarchy    ReasonCode = "hierarchy"
	ReasonUnblocked    ReasonCode = "unblocked"
	ReasonBlocked      ReasonCode = "blocked"
	ReasonProgress     ReasonCode = "progress"
	ReasonStagnation   ReasonCode = "stagnation"
)

// Reason explains one factor's contribution to a task's score.
type Reason struct {
	Code    ReasonCode
	Message string
	Delta   float64
}

// ScoringInput carries everything the score needs, resolved up front so a
// batch recalculation never goes back to the database per task.
type ScoringInput struct {
	TaskID      string
	TaskName    string
	ProjectName string
	Priority    domain.Priority
	DueDate     *time.Time
	CreatedAt   time.Time
	ProgressPct float64

	AreaImportance    int
	ProjectImportance int
	PillarWeight      float64
	DependenciesMet   bool

	Now time.Time
}

// InputFromCandidate resolves a repository candidate into a scoring input,
// applying the neutral defaults for tasks outside a full hierarchy.
func InputFromCandidate(c repository.TaskCandidate, now time.Time) ScoringInput {
	in := ScoringInput{
		TaskID:            c.Task.ID,
		TaskName:          c.Task.Name,
		ProjectName:       c.ProjectName,
		Priority:          c.Task.Priority,
		DueDate:           c.Task.DueDate,
		CreatedAt:         c.Task.CreatedAt,
		ProgressPct:       float64(c.Task.ProgressPct),
		ProjectImportance: c.ProjectImportance,
		AreaImportance:    defaultImportance,
		PillarWeight:      defaultPillarWeight,
		DependenciesMet:   c.DependenciesMet(),
		Now:               now,
	}
	if in.ProjectImportance == 0 {
		in.ProjectImportance = defaultImportance
	}
	if c.AreaID != nil {
		in.AreaImportance = c.AreaImportance
	}
	if c.PillarID != nil {
		in.PillarWeight = c.PillarTimePct / 100.0
	}
	return in
}

// ScoredTask is a task with its computed priority score and the itemized
// reasons behind it.
type ScoredTask struct {
	Input   ScoringInput
	Score   float64
	Reasons []Reason
}

// ScoreTask computes the 0-100 priority score that orders the Today view.
func ScoreTask(input ScoringInput) ScoredTask {
	result := ScoredTask{Input: input}

	var score float64
	factors := []func(ScoringInput) (float64, *Reason){
		scoreUrgency,
		scorePriority,
		scoreHierarchy,
		scoreDependencies,
		scoreProgress,
		scoreAge,
	}
	for _, f := range factors {
		delta, reason := f(input)
		score += delta
		if reason != nil {
			result.Reasons = append(result.Reasons, *reason)
		}
	}

	result.Score = math.Min(score, MaxScore)
	return result
}

func scoreUrgency(input ScoringInput) (float64, *Reason) {
	if input.DueDate == nil {
		return 5.0, &Reason{Code: ReasonNoDueDate, Message: "No due date", Delta: 5.0}
	}
	daysUntil := int(input.DueDate.Sub(input.Now).Hours() / 24)
	var delta float64
	code := ReasonDueSoon
	switch {
	case daysUntil <= 0:
		delta = UrgencyWeight
		code = ReasonOverdue
	case daysUntil <= 1:
		delta = 35.0
	case daysUntil <= 3:
		delta = 25.0
	case daysUntil <= 7:
		delta = 15.0
	case daysUntil <= 14:
		delta = 8.0
	default:
		delta = math.Max(0, 5.0-float64(daysUntil)*0.1)
	}
	return delta, &Reason{Code: code, Message: formatDueMessage(daysUntil), Delta: delta}
}

func scorePriority(input ScoringInput) (float64, *Reason) {
	var delta float64
	switch input.Priority {
	case domain.PriorityHigh:
		delta = PriorityWeight
	case domain.PriorityLow:
		delta = 5.0
	default:
		delta = 12.0
	}
	return delta, &Reason{
		Code:    ReasonTaskPriority,
		Message: fmt.Sprintf("Priority %s", input.Priority),
		Delta:   delta,
	}
}

func scoreHierarchy(input ScoringInput) (float64, *Reason) {
	areaScore := float64(input.AreaImportance) / 5.0 * 10.0
	projectScore := float64(input.ProjectImportance) / 5.0 * 10.0
	pillarScore := math.Min(input.PillarWeight*2.5, 5.0)
	delta := areaScore + projectScore + pillarScore
	return delta, &Reason{
		Code:    ReasonHierarchy,
		Message: "Importance inherited from area, project and pillar",
		Delta:   delta,
	}
}

func scoreDependencies(input ScoringInput) (float64, *Reason) {
	if input.DependenciesMet {
		delta := DependencyWeight
		return delta, &Reason{Code: ReasonUnblocked, Message: "Ready to start", Delta: delta}
	}
	// Blocked tasks keep a sliver of score so they still show up in planning.
	return 2.0, &Reason{Code: ReasonBlocked, Message: "Waiting on dependencies", Delta: 2.0}
}

func scoreProgress(input ScoringInput) (float64, *Reason) {
	if input.ProgressPct <= 0 {
		return 0, nil
	}
	delta := math.Min(input.ProgressPct/10.0, ProgressWeight)
	return delta, &Reason{Code: ReasonProgress, Message: "Already underway", Delta: delta}
}

func scoreAge(input ScoringInput) (float64, *Reason) {
	daysOld := int(input.Now.Sub(input.CreatedAt).Hours() / 24)
	if daysOld <= 7 {
		return 0, nil
	}
	delta := math.Min(float64(daysOld)*0.1, AgeBonusCap)
	return delta, &Reason{Code: ReasonStagnation, Message: "Aging task, nudged up", Delta: delta}
}

func formatDueMessage(daysUntil int) string {
	switch {
	case daysUntil <= 0:
		return "Past due"
	case daysUntil == 1:
		return "Due tomorrow"
	case daysUntil <= 7:
		return "Due this week"
	default:
		return "Due later"
	}
}
