package contract

import "github.com/aurumlife/aurum/internal/domain"

// AlignmentDashboard is the combined alignment payload shown on the dashboard.
type AlignmentDashboard struct {
	RollingWeekly int
	Monthly       int
	MonthlyGoal   *int
	ProgressPct   float64 // toward the monthly goal, 0-100, 0 when no goal
	HasGoal       bool
}

// CompletionResult reports what a task completion earned.
type CompletionResult struct {
	TaskID    string
	Completed bool
	Points    domain.PointsBreakdown
	// AlreadyRecorded is true when the task had earned points before and no
	// new record was written.
	AlreadyRecorded bool
}
