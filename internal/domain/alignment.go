package domain

import "time"

// AlignmentRecord is the point award written when a task is completed.
type AlignmentRecord struct {
	ID           string
	TaskID       string
	PointsEarned int

	// Context captured at award time, so history survives later edits.
	TaskPriority    Priority
	ProjectPriority *Priority
	AreaImportance  *int

	CreatedAt time.Time
}

// PointsBreakdown itemizes how an award was composed.
type PointsBreakdown struct {
	Base            int
	TaskPriority    int
	ProjectPriority int
	AreaImportance  int
}

func (b PointsBreakdown) Total() int {
	return b.Base + b.TaskPriority + b.ProjectPriority + b.AreaImportance
}
