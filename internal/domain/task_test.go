package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTask_IsActive(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"todo", Task{Status: TaskTodo}, true},
		{"in progress", Task{Status: TaskInProgress}, true},
		{"review", Task{Status: TaskReview}, true},
		{"empty status defaults active", Task{}, true},
		{"completed flag wins", Task{Status: TaskTodo, Completed: true}, false},
		{"completed status", Task{Status: TaskCompleted}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.task.IsActive())
		})
	}
}

func TestMonthWindow(t *testing.T) {
	now := time.Date(2025, time.December, 14, 9, 30, 0, 0, time.UTC)
	start, next := MonthWindow(now)
	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), next, "December rolls over the year")
}

func TestMonthlyQuota(t *testing.T) {
	assert.Equal(t, 50, MonthlyQuota(TierFree))
	assert.Equal(t, 100, MonthlyQuota(TierPro))
	assert.Equal(t, 300, MonthlyQuota(TierPremium))
	assert.Equal(t, 1000, MonthlyQuota(TierEnterprise))
	assert.Equal(t, 100, MonthlyQuota(Tier("unknown")), "unknown tiers fall back to pro")
}
