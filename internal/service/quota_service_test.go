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

func setTier(t *testing.T, env *testEnv, tier domain.Tier) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, env.profiles.Upsert(context.Background(), &domain.UserProfile{
		Name: "Test", Timezone: "UTC", Tier: tier, CreatedAt: now, UpdatedAt: now,
	}))
}

func TestQuotaStatus_FreshMonth(t *testing.T) {
	env := newTestEnv(t)
	setTier(t, env, domain.TierFree)

	svc := NewQuotaService(env.profiles, env.inter, env.uow)
	status, err := svc.Status(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.TierFree, status.Tier)
	assert.Equal(t, 50, status.Limit)
	assert.Zero(t, status.Used)
	assert.Equal(t, 50, status.Remaining)
	assert.False(t, status.Exhausted())
}

func TestQuotaConsume_RecordsAndCounts(t *testing.T) {
	env := newTestEnv(t)
	setTier(t, env, domain.TierPro)
	ctx := context.Background()

	svc := NewQuotaService(env.profiles, env.inter, env.uow)
	require.NoError(t, svc.Consume(ctx, domain.FeatureSentimentAnalysis))
	require.NoError(t, svc.Consume(ctx, domain.FeatureSentimentAnalysis))
	require.NoError(t, svc.Consume(ctx, domain.FeatureGoalCoaching))

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, status.Used)
	assert.Equal(t, 97, status.Remaining)
	assert.Equal(t, 2, status.Breakdown[domain.FeatureSentimentAnalysis])
	assert.Equal(t, 1, status.Breakdown[domain.FeatureGoalCoaching])
}

func TestQuotaConsume_ExhaustionBlocks(t *testing.T) {
	env := newTestEnv(t)
	setTier(t, env, domain.TierFree)
	ctx := context.Background()

	// Fill the free-tier ledger to its 50-interaction limit directly.
	monthStart, _ := domain.MonthWindow(time.Now().UTC())
	for i := 0; i < 50; i++ {
		require.NoError(t, env.inter.Create(ctx, &domain.AIInteraction{
			ID:        uuid.NewString(),
			Feature:   domain.FeatureSentimentAnalysis,
			CreatedAt: monthStart.Add(time.Duration(i) * time.Minute),
		}))
	}

	svc := NewQuotaService(env.profiles, env.inter, env.uow)
	err := svc.Consume(ctx, domain.FeatureGoalCoaching)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.Exhausted())
	assert.Equal(t, 50, status.Used, "rejected consume must not be recorded")
}

func TestQuotaStatus_LastMonthDoesNotCount(t *testing.T) {
	env := newTestEnv(t)
	setTier(t, env, domain.TierPro)
	ctx := context.Background()

	monthStart, _ := domain.MonthWindow(time.Now().UTC())
	require.NoError(t, env.inter.Create(ctx, &domain.AIInteraction{
		ID:        uuid.NewString(),
		Feature:   domain.FeatureSemanticSearch,
		CreatedAt: monthStart.Add(-time.Hour),
	}))

	svc := NewQuotaService(env.profiles, env.inter, env.uow)
	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Zero(t, status.Used)
}

func TestQuotaConsume_LastSlotThenBlocked(t *testing.T) {
	env := newTestEnv(t)
	setTier(t, env, domain.TierFree)
	ctx := context.Background()

	monthStart, _ := domain.MonthWindow(time.Now().UTC())
	for i := 0; i < 49; i++ {
		require.NoError(t, env.inter.Create(ctx, &domain.AIInteraction{
			ID:        uuid.NewString(),
			Feature:   domain.FeatureSentimentAnalysis,
			CreatedAt: monthStart.Add(time.Duration(i) * time.Minute),
		}))
	}

	svc := NewQuotaService(env.profiles, env.inter, env.uow)
	require.NoError(t, svc.Consume(ctx, domain.FeatureGoalCoaching), "slot 50 of 50")

	err := svc.Consume(ctx, domain.FeatureGoalCoaching)
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, status.Used, "the cap binds exactly, nothing over-recorded")
}
