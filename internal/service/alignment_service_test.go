package service

import (
	"context"
	"testing"
	"time"

	"github.com/aurumlife/aurum/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) award(t *testing.T, taskID string, points int, at time.Time) {
	t.Helper()
	require.NoError(t, e.alignments.Create(context.Background(), &domain.AlignmentRecord{
		ID:           uuid.NewString(),
		TaskID:       taskID,
		PointsEarned: points,
		TaskPriority: domain.PriorityMedium,
		CreatedAt:    at,
	}))
}

func TestAlignmentScores_Windows(t *testing.T) {
	env := newTestEnv(t)
	_, _, project := env.seedHierarchy(t)
	ctx := context.Background()

	task := env.addTask(t, project.ID, "Long run")
	now := time.Now().UTC()
	monthStart, _ := domain.MonthWindow(now)

	env.award(t, task.ID, 10, now.Add(-2*time.Hour))      // this week and this month
	env.award(t, task.ID, 20, now.AddDate(0, 0, -10))     // outside the week
	env.award(t, task.ID, 40, monthStart.Add(-time.Hour)) // last month

	svc := NewAlignmentService(env.alignments, env.profiles)

	weekly, err := svc.WeeklyScore(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 10, weekly)

	monthly, err := svc.MonthlyScore(ctx, now)
	require.NoError(t, err)
	// The 10-day-old award only counts if it falls inside the calendar month.
	if now.AddDate(0, 0, -10).After(monthStart) {
		assert.Equal(t, 30, monthly)
	} else {
		assert.Equal(t, 10, monthly)
	}
}

func TestAlignmentDashboard_GoalProgress(t *testing.T) {
	env := newTestEnv(t)
	_, _, project := env.seedHierarchy(t)
	ctx := context.Background()

	task := env.addTask(t, project.ID, "Long run")
	now := time.Now().UTC()
	env.award(t, task.ID, 50, now.Add(-time.Hour))

	svc := NewAlignmentService(env.alignments, env.profiles)
	require.NoError(t, svc.SetMonthlyGoal(ctx, 200))

	dash, err := svc.Dashboard(ctx, now)
	require.NoError(t, err)
	assert.True(t, dash.HasGoal)
	assert.Equal(t, 50, dash.Monthly)
	assert.InDelta(t, 25.0, dash.ProgressPct, 0.001)
}

func TestAlignmentDashboard_NoGoal(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAlignmentService(env.alignments, env.profiles)

	dash, err := svc.Dashboard(context.Background(), time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, dash.HasGoal)
	assert.Nil(t, dash.MonthlyGoal)
	assert.Zero(t, dash.ProgressPct)
}

func TestSetMonthlyGoal_RejectsNonPositive(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAlignmentService(env.alignments, env.profiles)

	assert.Error(t, svc.SetMonthlyGoal(context.Background(), 0))
	assert.Error(t, svc.SetMonthlyGoal(context.Background(), -5))
}

func TestDashboard_ProgressCapsAtFull(t *testing.T) {
	env := newTestEnv(t)
	_, _, project := env.seedHierarchy(t)
	ctx := context.Background()

	task := env.addTask(t, project.ID, "Long run")
	env.award(t, task.ID, 500, time.Now().UTC().Add(-time.Hour))

	svc := NewAlignmentService(env.alignments, env.profiles)
	require.NoError(t, svc.SetMonthlyGoal(ctx, 100))

	dash, err := svc.Dashboard(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 100.0, dash.ProgressPct)
}
