package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Running migrations a second time must be a no-op.
	err := Migrate(db)
	require.NoError(t, err)

	// Third time for good measure.
	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"user_profile", "pillars", "areas", "projects", "tasks",
		"task_dependencies", "journal_entries", "alignment_scores",
		"ai_interactions", "embeddings",
	}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_areas_pillar",
		"idx_projects_area",
		"idx_tasks_project",
		"idx_tasks_completed",
		"idx_tasks_score",
		"idx_deps_task",
		"idx_journal_created",
		"idx_alignment_created",
		"idx_interactions_created",
		"idx_embeddings_domain",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestForeignKeys_CascadeHierarchy(t *testing.T) {
	db := openTestDB(t)

	mustExec := func(q string, args ...any) {
		t.Helper()
		_, err := db.Exec(q, args...)
		require.NoError(t, err)
	}

	now := "2025-01-01T00:00:00Z"
	mustExec(`INSERT INTO pillars (id, name, created_at, updated_at) VALUES ('p1', 'Health', ?, ?)`, now, now)
	mustExec(`INSERT INTO areas (id, pillar_id, name, created_at, updated_at) VALUES ('a1', 'p1', 'Fitness', ?, ?)`, now, now)
	mustExec(`INSERT INTO projects (id, area_id, name, created_at, updated_at) VALUES ('pr1', 'a1', 'Marathon', ?, ?)`, now, now)
	mustExec(`INSERT INTO tasks (id, project_id, name, created_at, updated_at) VALUES ('t1', 'pr1', 'Long run', ?, ?)`, now, now)

	// Deleting the pillar must cascade all the way down to tasks.
	mustExec(`DELETE FROM pillars WHERE id = 'p1'`)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&count))
	assert.Equal(t, 0, count, "tasks should be gone after cascading delete")
}
