package service

import (
	"context"
	"testing"
	"time"

	"github.com/aurumlife/aurum/internal/contract"
	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToday_FiltersAndRanks(t *testing.T) {
	env := newTestEnv(t)
	_, _, project := env.seedHierarchy(t)
	ctx := context.Background()

	now := time.Now().UTC()
	overdueTask := env.addTask(t, project.ID, "Overdue",
		testutil.WithTaskPriority(domain.PriorityHigh),
		testutil.WithDueDate(now.Add(-24*time.Hour)))
	noDueTask := env.addTask(t, project.ID, "No due date",
		testutil.WithTaskPriority(domain.PriorityLow))
	env.addTask(t, project.ID, "Next month",
		testutil.WithDueDate(now.AddDate(0, 1, 0)))

	svc := NewTodayService(env.tasks)
	resp, err := svc.Today(ctx, contract.NewTodayRequest())
	require.NoError(t, err)

	require.Len(t, resp.Tasks, 2, "future-dated task stays out of today")
	assert.Equal(t, overdueTask.ID, resp.Tasks[0].TaskID, "overdue high ranks first")
	assert.Equal(t, noDueTask.ID, resp.Tasks[1].TaskID)
	assert.Greater(t, resp.Tasks[0].Score, resp.Tasks[1].Score)
	assert.NotEmpty(t, resp.Tasks[0].Reasons)
}

func TestToday_MarksBlockedTasks(t *testing.T) {
	env := newTestEnv(t)
	_, _, project := env.seedHierarchy(t)
	ctx := context.Background()

	prereq := env.addTask(t, project.ID, "Prereq")
	blocked := env.addTask(t, project.ID, "Blocked",
		testutil.WithDependencies(prereq.ID))

	svc := NewTodayService(env.tasks)
	resp, err := svc.Today(ctx, contract.NewTodayRequest())
	require.NoError(t, err)

	var blockedEntry *contract.TodayTask
	for i := range resp.Tasks {
		if resp.Tasks[i].TaskID == blocked.ID {
			blockedEntry = &resp.Tasks[i]
		}
	}
	require.NotNil(t, blockedEntry)
	assert.True(t, blockedEntry.Blocked)
}

func TestToday_Stats(t *testing.T) {
	env := newTestEnv(t)
	_, _, project := env.seedHierarchy(t)
	ctx := context.Background()

	env.addTask(t, project.ID, "Open A")
	env.addTask(t, project.ID, "Open B")
	done := env.addTask(t, project.ID, "Done today")
	taskSvc := NewTaskService(env.tasks, env.projects, env.uow)
	_, err := taskSvc.Complete(ctx, done.ID)
	require.NoError(t, err)

	svc := NewTodayService(env.tasks)
	resp, err := svc.Today(ctx, contract.NewTodayRequest())
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Stats.TotalToday)
	assert.Equal(t, 1, resp.Stats.CompletedToday)
	assert.InDelta(t, 33.3, resp.Stats.CompletionRate, 0.1)
}

func TestToday_LimitCapsResults(t *testing.T) {
	env := newTestEnv(t)
	_, _, project := env.seedHierarchy(t)

	for i := 0; i < 5; i++ {
		env.addTask(t, project.ID, "Task")
	}

	req := contract.NewTodayRequest()
	req.Limit = 2
	svc := NewTodayService(env.tasks)
	resp, err := svc.Today(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, resp.Tasks, 2)
}

func TestToday_HonorsLocation(t *testing.T) {
	env := newTestEnv(t)
	_, _, project := env.seedHierarchy(t)
	ctx := context.Background()

	// 16:00 UTC on June 15 is already 02:00 June 16 in UTC+10, so a task due
	// 10:00 UTC June 16 is due today in that zone but tomorrow in UTC.
	now := time.Date(2025, 6, 15, 16, 0, 0, 0, time.UTC)
	loc := time.FixedZone("UTC+10", 10*60*60)
	task := env.addTask(t, project.ID, "Evening run",
		testutil.WithDueDate(time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)))

	svc := NewTodayService(env.tasks)

	utcReq := contract.NewTodayRequest()
	utcReq.Now = &now
	resp, err := svc.Today(ctx, utcReq)
	require.NoError(t, err)
	assert.Empty(t, resp.Tasks, "not due within UTC's today")

	zonedReq := contract.NewTodayRequest()
	zonedReq.Now = &now
	zonedReq.Location = loc
	resp, err = svc.Today(ctx, zonedReq)
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, task.ID, resp.Tasks[0].TaskID)
}

func TestToday_StatsCountBeyondLimit(t *testing.T) {
	env := newTestEnv(t)
	_, _, project := env.seedHierarchy(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		env.addTask(t, project.ID, "Open")
	}
	done := env.addTask(t, project.ID, "Done today")
	taskSvc := NewTaskService(env.tasks, env.projects, env.uow)
	_, err := taskSvc.Complete(ctx, done.ID)
	require.NoError(t, err)

	req := contract.NewTodayRequest()
	req.Limit = 2
	svc := NewTodayService(env.tasks)
	resp, err := svc.Today(ctx, req)
	require.NoError(t, err)

	require.Len(t, resp.Tasks, 2)
	assert.Equal(t, 6, resp.Stats.TotalToday, "the cap trims the view, not the stats")
	assert.Equal(t, 1, resp.Stats.CompletedToday)
	assert.InDelta(t, 16.7, resp.Stats.CompletionRate, 0.1)
}
