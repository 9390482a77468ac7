package repository

import (
	"context"
	"testing"
	"time"

	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignmentRepo_CreateAndListByTask(t *testing.T) {
	db, pillars, areas, projects, tasks := setupRepos(t)
	ctx, _, _, project := setupHierarchy(t, pillars, areas, projects)
	repo := NewSQLiteAlignmentRepo(db)

	task := testutil.NewTestTask(project.ID, "Long run")
	require.NoError(t, tasks.Create(ctx, task))

	projPriority := domain.PriorityHigh
	importance := 5
	rec := &domain.AlignmentRecord{
		ID:              uuid.NewString(),
		TaskID:          task.ID,
		PointsEarned:    50,
		TaskPriority:    domain.PriorityHigh,
		ProjectPriority: &projPriority,
		AreaImportance:  &importance,
		CreatedAt:       time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.Create(ctx, rec))

	records, err := repo.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 50, records[0].PointsEarned)
	assert.Equal(t, domain.PriorityHigh, records[0].TaskPriority)
	require.NotNil(t, records[0].ProjectPriority)
	assert.Equal(t, domain.PriorityHigh, *records[0].ProjectPriority)
	require.NotNil(t, records[0].AreaImportance)
	assert.Equal(t, 5, *records[0].AreaImportance)
}

func TestAlignmentRepo_NullableContext(t *testing.T) {
	db, pillars, areas, projects, tasks := setupRepos(t)
	ctx, _, _, project := setupHierarchy(t, pillars, areas, projects)
	repo := NewSQLiteAlignmentRepo(db)

	task := testutil.NewTestTask(project.ID, "Loose task")
	require.NoError(t, tasks.Create(ctx, task))

	rec := &domain.AlignmentRecord{
		ID:           uuid.NewString(),
		TaskID:       task.ID,
		PointsEarned: 5,
		TaskPriority: domain.PriorityLow,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, rec))

	records, err := repo.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].ProjectPriority)
	assert.Nil(t, records[0].AreaImportance)
}

func TestAlignmentRepo_SumSince(t *testing.T) {
	db, pillars, areas, projects, tasks := setupRepos(t)
	ctx, _, _, project := setupHierarchy(t, pillars, areas, projects)
	repo := NewSQLiteAlignmentRepo(db)

	task := testutil.NewTestTask(project.ID, "Long run")
	require.NoError(t, tasks.Create(ctx, task))

	now := time.Now().UTC()
	for _, rec := range []*domain.AlignmentRecord{
		{ID: uuid.NewString(), TaskID: task.ID, PointsEarned: 15, TaskPriority: domain.PriorityHigh, CreatedAt: now.Add(-48 * time.Hour)},
		{ID: uuid.NewString(), TaskID: task.ID, PointsEarned: 30, TaskPriority: domain.PriorityHigh, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: uuid.NewString(), TaskID: task.ID, PointsEarned: 5, TaskPriority: domain.PriorityLow, CreatedAt: now.Add(-30 * 24 * time.Hour)},
	} {
		require.NoError(t, repo.Create(ctx, rec))
	}

	weekly, err := repo.SumSince(ctx, now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 45, weekly)

	all, err := repo.SumSince(ctx, now.Add(-60*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 50, all)
}

func TestAlignmentRepo_SumSince_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAlignmentRepo(db)

	total, err := repo.SumSince(context.Background(), time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestAlignmentRepo_HasRecordForTask(t *testing.T) {
	db, pillars, areas, projects, tasks := setupRepos(t)
	ctx, _, _, project := setupHierarchy(t, pillars, areas, projects)
	repo := NewSQLiteAlignmentRepo(db)

	task := testutil.NewTestTask(project.ID, "Long run")
	require.NoError(t, tasks.Create(ctx, task))

	has, err := repo.HasRecordForTask(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, has)

	rec := &domain.AlignmentRecord{
		ID: uuid.NewString(), TaskID: task.ID, PointsEarned: 5,
		TaskPriority: domain.PriorityMedium, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, rec))

	has, err = repo.HasRecordForTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, has)
}
