package coach

import (
	"context"
	"testing"
	"time"

	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/service"
	"github.com/aurumlife/aurum/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodayPriorities_RanksAndCoaches(t *testing.T) {
	env := newTestEnv(t)
	_, _, project := env.seedHierarchy(t)
	now := time.Now().UTC()

	overdue := env.addTask(t, project.ID, "Submit race entry",
		testutil.WithTaskPriority(domain.PriorityHigh),
		testutil.WithDueDate(now.AddDate(0, 0, -2)))
	env.addTask(t, project.ID, "Buy new shoes",
		testutil.WithTaskPriority(domain.PriorityLow))

	quota := &stubQuota{}
	svc := NewCoachService(env.tasks, env.projects, fakeOllama(t, "This one keeps your marathon on track."), quota)

	scored, err := svc.TodayPriorities(context.Background(), 1, now)
	require.NoError(t, err)
	require.Len(t, scored, 2)

	assert.Equal(t, overdue.ID, scored[0].Candidate.Task.ID, "overdue high-priority task ranks first")
	assert.Greater(t, scored[0].Breakdown.Total, scored[1].Breakdown.Total)

	assert.Equal(t, "This one keeps your marathon on track.", scored[0].Coaching)
	assert.True(t, scored[0].AIPowered)
	assert.Empty(t, scored[1].Coaching, "only the top N get coached")

	assert.Equal(t, []domain.AIFeature{domain.FeatureTodayPriorities}, quota.consumed)
}

func TestTodayPriorities_DeterministicOnQuotaExhaustion(t *testing.T) {
	env := newTestEnv(t)
	_, _, project := env.seedHierarchy(t)
	now := time.Now().UTC()

	env.addTask(t, project.ID, "Long run", testutil.WithTaskPriority(domain.PriorityHigh))

	quota := &stubQuota{err: service.ErrQuotaExceeded}
	svc := NewCoachService(env.tasks, env.projects, fakeOllama(t, "should not be used"), quota)

	scored, err := svc.TodayPriorities(context.Background(), 1, now)
	require.NoError(t, err)
	require.Len(t, scored, 1)

	assert.NotEmpty(t, scored[0].Coaching)
	assert.False(t, scored[0].AIPowered)
	assert.NotContains(t, scored[0].Coaching, "should not be used")
}

func TestTodayPriorities_DeterministicWhenLLMDown(t *testing.T) {
	env := newTestEnv(t)
	_, _, project := env.seedHierarchy(t)
	now := time.Now().UTC()

	env.addTask(t, project.ID, "Long run", testutil.WithTaskPriority(domain.PriorityHigh))

	svc := NewCoachService(env.tasks, env.projects, deadOllama(t), &stubQuota{})

	scored, err := svc.TodayPriorities(context.Background(), 1, now)
	require.NoError(t, err)
	require.Len(t, scored, 1)

	assert.Contains(t, scored[0].Coaching, "'Marathon'")
	assert.False(t, scored[0].AIPowered)
}

func TestWhyStatements_FiltersByTaskID(t *testing.T) {
	env := newTestEnv(t)
	_, _, project := env.seedHierarchy(t)

	wanted := env.addTask(t, project.ID, "Interval session")
	env.addTask(t, project.ID, "Foam rolling")

	quota := &stubQuota{}
	svc := NewCoachService(env.tasks, env.projects, deadOllama(t), quota)

	statements, err := svc.WhyStatements(context.Background(), []string{wanted.ID})
	require.NoError(t, err)
	require.Len(t, statements, 1)
	assert.Equal(t, wanted.ID, statements[0].TaskID)
	assert.Contains(t, statements[0].Statement, "'Marathon'")
	assert.Contains(t, statements[0].Statement, "'Health'")

	all, err := svc.WhyStatements(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	assert.Equal(t, []domain.AIFeature{domain.FeatureWhyStatements, domain.FeatureWhyStatements}, quota.consumed)
}

func TestWhyStatements_QuotaErrorPropagates(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCoachService(env.tasks, env.projects, deadOllama(t), &stubQuota{err: service.ErrQuotaExceeded})

	_, err := svc.WhyStatements(context.Background(), nil)
	assert.ErrorIs(t, err, service.ErrQuotaExceeded)
}

func TestSuggestProjectTasks(t *testing.T) {
	env := newTestEnv(t)
	_, _, project := env.seedHierarchy(t)

	quota := &stubQuota{}
	svc := NewCoachService(env.tasks, env.projects, deadOllama(t), quota)

	suggestions, err := svc.SuggestProjectTasks(context.Background(), project.ID, "health")
	require.NoError(t, err)
	require.Len(t, suggestions, 5)
	assert.Contains(t, suggestions[0].Name, "'Marathon'")
	assert.Equal(t, []domain.AIFeature{domain.FeatureDecomposition}, quota.consumed)

	_, err = svc.SuggestProjectTasks(context.Background(), "missing", "health")
	assert.Error(t, err, "unknown project refused before consuming quota")
}

func TestCreateSuggestedTasks(t *testing.T) {
	env := newTestEnv(t)
	_, _, project := env.seedHierarchy(t)
	ctx := context.Background()

	svc := NewCoachService(env.tasks, env.projects, deadOllama(t), &stubQuota{})

	suggestions := SuggestTasks("general", project.Name)
	created, err := svc.CreateSuggestedTasks(ctx, project.ID, suggestions)
	require.NoError(t, err)
	require.Len(t, created, 5)

	stored, err := env.tasks.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 5)

	for i, task := range created {
		assert.Equal(t, suggestions[i].Name, task.Name)
		assert.Equal(t, suggestions[i].Priority, task.Priority)
		assert.Equal(t, domain.TaskTodo, task.Status)
	}
}
