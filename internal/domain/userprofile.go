package domain

import "time"

// UserProfile is the single local profile row. The hosted original kept one
// row per auth user; locally there is exactly one.
type UserProfile struct {
	Name     string
	Timezone string
	Tier     Tier

	// MonthlyAlignmentGoal is the points target for the current month.
	// nil means no goal set.
	MonthlyAlignmentGoal *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AIInteraction is one row in the AI quota ledger.
type AIInteraction struct {
	ID        string
	Feature   AIFeature
	CreatedAt time.Time
}

// MonthlyQuota returns the monthly AI interaction allowance for a tier.
func MonthlyQuota(t Tier) int {
	switch t {
	case TierFree:
		return 50
	case TierPremium:
		return 300
	case TierEnterprise:
		return 1000
	default:
		return 100 // pro
	}
}

// MonthWindow returns the start of the month containing now and the start of
// the following month, both in UTC.
func MonthWindow(now time.Time) (start, next time.Time) {
	now = now.UTC()
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	next = start.AddDate(0, 1, 0)
	return start, next
}
