package contract

import "time"

// PillarShare is one pillar's slice of completed-work attribution.
type PillarShare struct {
	PillarID   string
	PillarName string
	TaskCount  int
	Percentage float64
}

// LifetimeStats counts completed work across the whole history.
type LifetimeStats struct {
	CompletedTasks    int
	CompletedProjects int
}

// InsightsResponse is the alignment snapshot combining lifetime stats,
// pillar distribution and the current score windows.
type InsightsResponse struct {
	GeneratedAt   time.Time
	Lifetime      LifetimeStats
	Distribution  []PillarShare
	RollingWeekly int
	Monthly       int
}
