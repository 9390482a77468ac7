package domain

import "time"

type Project struct {
	ID          string
	AreaID      string
	Name        string
	Description string
	Icon        string
	Status      ProjectStatus
	Priority    Priority

	// Importance is a 1-5 scale like Area.Importance.
	Importance int

	Deadline   *time.Time
	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
