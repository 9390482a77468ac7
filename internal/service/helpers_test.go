package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/aurumlife/aurum/internal/db"
	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/repository"
	"github.com/aurumlife/aurum/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db         *sql.DB
	uow        db.UnitOfWork
	pillars    *repository.SQLitePillarRepo
	areas      *repository.SQLiteAreaRepo
	projects   *repository.SQLiteProjectRepo
	tasks      *repository.SQLiteTaskRepo
	journal    *repository.SQLiteJournalRepo
	alignments *repository.SQLiteAlignmentRepo
	profiles   *repository.SQLiteProfileRepo
	inter      *repository.SQLiteInteractionRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		db:         database,
		uow:        testutil.NewTestUoW(database),
		pillars:    repository.NewSQLitePillarRepo(database),
		areas:      repository.NewSQLiteAreaRepo(database),
		projects:   repository.NewSQLiteProjectRepo(database),
		tasks:      repository.NewSQLiteTaskRepo(database),
		journal:    repository.NewSQLiteJournalRepo(database),
		alignments: repository.NewSQLiteAlignmentRepo(database),
		profiles:   repository.NewSQLiteProfileRepo(database),
		inter:      repository.NewSQLiteInteractionRepo(database),
	}
}

// seedHierarchy creates pillar -> area -> project and returns them.
func (e *testEnv) seedHierarchy(t *testing.T) (*domain.Pillar, *domain.Area, *domain.Project) {
	t.Helper()
	ctx := context.Background()

	pillar := testutil.NewTestPillar("Health", testutil.WithTimeAllocation(40))
	require.NoError(t, e.pillars.Create(ctx, pillar))

	area := testutil.NewTestArea("Fitness", testutil.WithPillar(pillar.ID), testutil.WithImportance(5))
	require.NoError(t, e.areas.Create(ctx, area))

	project := testutil.NewTestProject(area.ID, "Marathon",
		testutil.WithProjectPriority(domain.PriorityHigh),
		testutil.WithProjectImportance(4))
	require.NoError(t, e.projects.Create(ctx, project))

	return pillar, area, project
}

func (e *testEnv) addTask(t *testing.T, projectID, name string, opts ...testutil.TaskOption) *domain.Task {
	t.Helper()
	task := testutil.NewTestTask(projectID, name, opts...)
	require.NoError(t, e.tasks.Create(context.Background(), task))
	return task
}

func daysAgo(n int) time.Time {
	return time.Now().UTC().AddDate(0, 0, -n)
}
