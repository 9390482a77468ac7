package contract

import "time"

// SentimentTrendPoint is a per-day average sentiment score.
type SentimentTrendPoint struct {
	Day      time.Time
	AvgScore float64
	Entries  int
}

// SentimentTrends summarizes recent journaling health.
type SentimentTrends struct {
	Points []SentimentTrendPoint
	// WellnessScore maps mean sentiment onto 0-100.
	WellnessScore float64
	// StreakDays counts consecutive days with at least one entry,
	// ending today or yesterday.
	StreakDays int
	Analyzed   int
	Total      int
}
