package domain

import "time"

// Pillar is a top-level life domain. Areas hang off pillars, projects off
// areas, tasks off projects; the chain is enforced by foreign keys.
type Pillar struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Color       string

	// TimeAllocationPct expresses how much of the user's time this pillar
	// should ideally receive (0-100). Feeds the hierarchy scoring factor.
	TimeAllocationPct float64

	SortOrder  int
	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Area struct {
	ID          string
	PillarID    *string
	Name        string
	Description string
	Icon        string
	Color       string

	// Importance is a 1-5 scale; 5 marks a top-importance area.
	Importance int

	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
