package contract

import "github.com/aurumlife/aurum/internal/domain"

// QuotaStatus reports AI usage against the tier's monthly allowance.
type QuotaStatus struct {
	Tier      domain.Tier
	Limit     int
	Used      int
	Remaining int
	Breakdown map[domain.AIFeature]int
}

// Exhausted reports whether no interactions remain this month.
func (q QuotaStatus) Exhausted() bool {
	return q.Remaining <= 0
}
