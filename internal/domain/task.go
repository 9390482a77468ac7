package domain

import "time"

type Task struct {
	ID           string
	ProjectID    string
	ParentTaskID *string
	Name         string
	Description  string
	Status       TaskStatus
	Priority     Priority

	Completed   bool
	CompletedAt *time.Time
	DueDate     *time.Time

	// ProgressPct is manual completion progress (0-100).
	ProgressPct int

	// CurrentScore is the cached priority score; refreshed whenever a
	// completion changes the dependency picture.
	CurrentScore   float64
	ScoreUpdatedAt *time.Time

	// DependencyIDs lists predecessor tasks that should be completed first.
	DependencyIDs []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the task still counts as workable.
func (t *Task) IsActive() bool {
	if t.Completed {
		return false
	}
	return t.Status == "" || ActiveTaskStatuses[t.Status]
}

// AgeDays returns whole days since the task was created.
func (t *Task) AgeDays(now time.Time) int {
	return int(now.Sub(t.CreatedAt).Hours() / 24)
}
