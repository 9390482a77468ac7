package domain

import "time"

type JournalEntry struct {
	ID      string
	Title   string
	Content string
	Mood    Mood
	Tags    []string

	Sentiment *SentimentResult

	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SentimentResult holds the emotional analysis attached to a journal entry.
type SentimentResult struct {
	// Score ranges -1 (very negative) to +1 (very positive).
	Score      float64
	Category   SentimentCategory
	Confidence float64
	Keywords   []string
	Themes     []string
	Reasoning  string
	AnalyzedAt time.Time
}

// CategoryForScore maps a sentiment score onto its display category.
func CategoryForScore(score float64) SentimentCategory {
	switch {
	case score >= 0.6:
		return SentimentVeryPositive
	case score >= 0.2:
		return SentimentPositive
	case score >= -0.2:
		return SentimentNeutral
	case score >= -0.6:
		return SentimentNegative
	default:
		return SentimentVeryNegative
	}
}
