package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS user_profile (
		id                     INTEGER PRIMARY KEY CHECK(id = 1),
		name                   TEXT NOT NULL DEFAULT '',
		timezone               TEXT NOT NULL DEFAULT 'UTC',
		tier                   TEXT NOT NULL DEFAULT 'pro'
		                       CHECK(tier IN ('free','pro','premium','enterprise')),
		monthly_alignment_goal INTEGER,
		created_at             TEXT NOT NULL,
		updated_at             TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS pillars (
		id                  TEXT PRIMARY KEY,
		name                TEXT NOT NULL,
		description         TEXT NOT NULL DEFAULT '',
		icon                TEXT NOT NULL DEFAULT '',
		color               TEXT NOT NULL DEFAULT '',
		time_allocation_pct REAL NOT NULL DEFAULT 0,
		sort_order          INTEGER NOT NULL DEFAULT 0,
		archived_at         TEXT,
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS areas (
		id          TEXT PRIMARY KEY,
		pillar_id   TEXT REFERENCES pillars(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		icon        TEXT NOT NULL DEFAULT '',
		color       TEXT NOT NULL DEFAULT '',
		importance  INTEGER NOT NULL DEFAULT 3 CHECK(importance BETWEEN 1 AND 5),
		archived_at TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		area_id     TEXT NOT NULL REFERENCES areas(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		icon        TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'not_started'
		            CHECK(status IN ('not_started','in_progress','completed','on_hold')),
		priority    TEXT NOT NULL DEFAULT 'medium'
		            CHECK(priority IN ('high','medium','low')),
		importance  INTEGER NOT NULL DEFAULT 3 CHECK(importance BETWEEN 1 AND 5),
		deadline    TEXT,
		archived_at TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id               TEXT PRIMARY KEY,
		project_id       TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		parent_task_id   TEXT REFERENCES tasks(id) ON DELETE SET NULL,
		name             TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		status           TEXT NOT NULL DEFAULT 'todo'
		                 CHECK(status IN ('todo','in_progress','review','completed')),
		priority         TEXT NOT NULL DEFAULT 'medium'
		                 CHECK(priority IN ('high','medium','low')),
		completed        INTEGER NOT NULL DEFAULT 0,
		completed_at     TEXT,
		due_date         TEXT,
		progress_pct     INTEGER NOT NULL DEFAULT 0 CHECK(progress_pct BETWEEN 0 AND 100),
		current_score    REAL NOT NULL DEFAULT 0,
		score_updated_at TEXT,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS task_dependencies (
		task_id       TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		depends_on_id TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		PRIMARY KEY (task_id, depends_on_id)
	)`,

	`CREATE TABLE IF NOT EXISTS journal_entries (
		id                   TEXT PRIMARY KEY,
		title                TEXT NOT NULL,
		content              TEXT NOT NULL,
		mood                 TEXT NOT NULL DEFAULT 'reflective'
		                     CHECK(mood IN ('optimistic','inspired','reflective','challenged','frustrated','anxious')),
		tags                 TEXT NOT NULL DEFAULT '[]',
		sentiment_score      REAL,
		sentiment_category   TEXT,
		sentiment_confidence REAL,
		sentiment_keywords   TEXT,
		sentiment_themes     TEXT,
		sentiment_reasoning  TEXT,
		analyzed_at          TEXT,
		deleted_at           TEXT,
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS alignment_scores (
		id               TEXT PRIMARY KEY,
		task_id          TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		points_earned    INTEGER NOT NULL,
		task_priority    TEXT NOT NULL,
		project_priority TEXT,
		area_importance  INTEGER,
		created_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS ai_interactions (
		id         TEXT PRIMARY KEY,
		feature    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS embeddings (
		id         TEXT PRIMARY KEY,
		domain_tag TEXT NOT NULL
		           CHECK(domain_tag IN ('pillar','area','project','task','journal_entry','conversation')),
		entity_id  TEXT NOT NULL,
		snippet    TEXT NOT NULL,
		vector     BLOB NOT NULL,
		updated_at TEXT NOT NULL,
		UNIQUE(domain_tag, entity_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_areas_pillar ON areas(pillar_id)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_area ON projects(area_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks(completed, due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_score ON tasks(current_score)`,
	`CREATE INDEX IF NOT EXISTS idx_deps_task ON task_dependencies(task_id)`,
	`CREATE INDEX IF NOT EXISTS idx_journal_created ON journal_entries(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_alignment_created ON alignment_scores(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_interactions_created ON ai_interactions(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_embeddings_domain ON embeddings(domain_tag)`,
}
