package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aurumlife/aurum/internal/db"
	"github.com/aurumlife/aurum/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(dbtx db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: dbtx}
}

const taskColumns = `id, project_id, parent_task_id, name, description, status, priority,
	completed, completed_at, due_date, progress_pct, current_score, score_updated_at,
	created_at, updated_at`

const taskColumnsAliased = `t.id, t.project_id, t.parent_task_id, t.name, t.description, t.status, t.priority,
	t.completed, t.completed_at, t.due_date, t.progress_pct, t.current_score, t.score_updated_at,
	t.created_at, t.updated_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ProjectID,
		nullableString(t.ParentTaskID),
		t.Name,
		t.Description,
		string(t.Status),
		string(t.Priority),
		boolToInt(t.Completed),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		nullableTimeToString(t.DueDate, time.RFC3339),
		t.ProgressPct,
		t.CurrentScore,
		nullableTimeToString(t.ScoreUpdatedAt, time.RFC3339),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	if len(t.DependencyIDs) > 0 {
		if err := r.SetDependencies(ctx, t.ID, t.DependencyIDs); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	deps, err := r.loadDependencies(ctx, id)
	if err != nil {
		return nil, err
	}
	t.DependencyIDs = deps
	return t, nil
}

func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE project_id = ? ORDER BY created_at`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

const candidateQuery = `SELECT ` + taskColumnsAliased + `,
		p.name, p.priority, p.importance,
		a.id, a.name, a.importance,
		pl.id, pl.name, pl.time_allocation_pct,
		(SELECT COUNT(*) FROM task_dependencies d
			JOIN tasks dt ON dt.id = d.depends_on_id
			WHERE d.task_id = t.id AND dt.completed = 0)
	FROM tasks t
	JOIN projects p ON p.id = t.project_id
	LEFT JOIN areas a ON a.id = p.area_id
	LEFT JOIN pillars pl ON pl.id = a.pillar_id
	WHERE t.completed = 0
	  AND t.status IN ('todo','in_progress','review')
	  AND p.archived_at IS NULL`

func (r *SQLiteTaskRepo) ListCandidates(ctx context.Context) ([]TaskCandidate, error) {
	return r.queryCandidates(ctx, candidateQuery+` ORDER BY t.created_at`)
}

func (r *SQLiteTaskRepo) ListDueCandidates(ctx context.Context, dueBefore time.Time) ([]TaskCandidate, error) {
	query := candidateQuery + ` AND (t.due_date IS NULL OR t.due_date <= ?) ORDER BY t.created_at`
	return r.queryCandidates(ctx, query, dueBefore.UTC().Format(time.RFC3339))
}

func (r *SQLiteTaskRepo) queryCandidates(ctx context.Context, query string, args ...any) ([]TaskCandidate, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing task candidates: %w", err)
	}
	defer rows.Close()

	var candidates []TaskCandidate
	for rows.Next() {
		var c TaskCandidate
		var t domain.Task
		var parentID, completedAt, dueDate, scoreAt sql.NullString
		var status, priority, createdAt, updatedAt string
		var completed int
		var projPriority string
		var areaID, areaName, pillarID, pillarName sql.NullString
		var areaImportance sql.NullInt64
		var pillarPct sql.NullFloat64

		err := rows.Scan(
			&t.ID, &t.ProjectID, &parentID, &t.Name, &t.Description, &status, &priority,
			&completed, &completedAt, &dueDate, &t.ProgressPct, &t.CurrentScore, &scoreAt,
			&createdAt, &updatedAt,
			&c.ProjectName, &projPriority, &c.ProjectImportance,
			&areaID, &areaName, &areaImportance,
			&pillarID, &pillarName, &pillarPct,
			&c.UnmetDependencies,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task candidate: %w", err)
		}

		t.Status = domain.TaskStatus(status)
		t.Priority = domain.Priority(priority)
		t.Completed = intToBool(completed)
		t.CompletedAt = parseNullableTime(completedAt, time.RFC3339)
		t.DueDate = parseNullableTime(dueDate, time.RFC3339)
		t.ScoreUpdatedAt = parseNullableTime(scoreAt, time.RFC3339)
		t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		if parentID.Valid {
			t.ParentTaskID = &parentID.String
		}

		c.Task = t
		c.ProjectPriority = domain.Priority(projPriority)
		if areaID.Valid {
			c.AreaID = &areaID.String
			c.AreaName = areaName.String
			c.AreaImportance = int(areaImportance.Int64)
		}
		if pillarID.Valid {
			c.PillarID = &pillarID.String
			c.PillarName = pillarName.String
			c.PillarTimePct = pillarPct.Float64
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task candidates: %w", err)
	}
	return candidates, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET project_id = ?, parent_task_id = ?, name = ?, description = ?,
		status = ?, priority = ?, completed = ?, completed_at = ?, due_date = ?,
		progress_pct = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		t.ProjectID,
		nullableString(t.ParentTaskID),
		t.Name,
		t.Description,
		string(t.Status),
		string(t.Priority),
		boolToInt(t.Completed),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		nullableTimeToString(t.DueDate, time.RFC3339),
		t.ProgressPct,
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) SetCompleted(ctx context.Context, id string, completed bool, at time.Time) error {
	var completedAt interface{}
	status := string(domain.TaskTodo)
	if completed {
		completedAt = at.UTC().Format(time.RFC3339)
		status = string(domain.TaskCompleted)
	}
	query := `UPDATE tasks SET completed = ?, completed_at = ?, status = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		boolToInt(completed), completedAt, status, at.UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("setting task completion: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) UpdateScore(ctx context.Context, id string, score float64, at time.Time) error {
	query := `UPDATE tasks SET current_score = ?, score_updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, score, at.UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating task score: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) SetDependencies(ctx context.Context, id string, dependencyIDs []string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM task_dependencies WHERE task_id = ?`, id); err != nil {
		return fmt.Errorf("clearing task dependencies: %w", err)
	}
	for _, depID := range dependencyIDs {
		if depID == "" || depID == id {
			continue
		}
		_, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO task_dependencies (task_id, depends_on_id) VALUES (?, ?)`, id, depID)
		if err != nil {
			return fmt.Errorf("inserting task dependency: %w", err)
		}
	}
	return nil
}

func (r *SQLiteTaskRepo) CountCompletedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE completed = 1 AND completed_at >= ?`,
		since.UTC().Format(time.RFC3339)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting completed tasks: %w", err)
	}
	return count, nil
}

func (r *SQLiteTaskRepo) CountCompletedByProject(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT project_id, COUNT(*) FROM tasks WHERE completed = 1 GROUP BY project_id`)
	if err != nil {
		return nil, fmt.Errorf("counting completed tasks by project: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var projectID string
		var n int
		if err := rows.Scan(&projectID, &n); err != nil {
			return nil, err
		}
		counts[projectID] = n
	}
	return counts, rows.Err()
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) loadDependencies(ctx context.Context, id string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT depends_on_id FROM task_dependencies WHERE task_id = ? ORDER BY depends_on_id`, id)
	if err != nil {
		return nil, fmt.Errorf("loading task dependencies: %w", err)
	}
	defer rows.Close()

	var deps []string
	for rows.Next() {
		var depID string
		if err := rows.Scan(&depID); err != nil {
			return nil, err
		}
		deps = append(deps, depID)
	}
	return deps, rows.Err()
}

func scanTask(scan func(...any) error) (*domain.Task, error) {
	var t domain.Task
	var parentID, completedAt, dueDate, scoreAt sql.NullString
	var status, priority, createdAt, updatedAt string
	var completed int

	err := scan(
		&t.ID, &t.ProjectID, &parentID, &t.Name, &t.Description, &status, &priority,
		&completed, &completedAt, &dueDate, &t.ProgressPct, &t.CurrentScore, &scoreAt,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Status = domain.TaskStatus(status)
	t.Priority = domain.Priority(priority)
	t.Completed = intToBool(completed)
	t.CompletedAt = parseNullableTime(completedAt, time.RFC3339)
	t.DueDate = parseNullableTime(dueDate, time.RFC3339)
	t.ScoreUpdatedAt = parseNullableTime(scoreAt, time.RFC3339)
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	if parentID.Valid {
		t.ParentTaskID = &parentID.String
	}
	return &t, nil
}
