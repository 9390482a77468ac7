package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aurumlife/aurum/internal/db"
	"github.com/aurumlife/aurum/internal/domain"
)

// SQLiteAlignmentRepo implements AlignmentRepo using a SQLite database.
type SQLiteAlignmentRepo struct {
	db db.DBTX
}

func NewSQLiteAlignmentRepo(dbtx db.DBTX) *SQLiteAlignmentRepo {
	return &SQLiteAlignmentRepo{db: dbtx}
}

func (r *SQLiteAlignmentRepo) Create(ctx context.Context, rec *domain.AlignmentRecord) error {
	query := `INSERT INTO alignment_scores (id, task_id, points_earned, task_priority, project_priority, area_importance, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	var projPriority interface{}
	if rec.ProjectPriority != nil {
		projPriority = string(*rec.ProjectPriority)
	}
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.TaskID,
		rec.PointsEarned,
		string(rec.TaskPriority),
		projPriority,
		nullableInt(rec.AreaImportance),
		rec.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting alignment record: %w", err)
	}
	return nil
}

func (r *SQLiteAlignmentRepo) ListByTask(ctx context.Context, taskID string) ([]*domain.AlignmentRecord, error) {
	query := `SELECT id, task_id, points_earned, task_priority, project_priority, area_importance, created_at
		FROM alignment_scores WHERE task_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing alignment records: %w", err)
	}
	defer rows.Close()

	var records []*domain.AlignmentRecord
	for rows.Next() {
		var rec domain.AlignmentRecord
		var taskPriority, createdAt string
		var projPriority sql.NullString
		var areaImportance sql.NullInt64

		err := rows.Scan(&rec.ID, &rec.TaskID, &rec.PointsEarned,
			&taskPriority, &projPriority, &areaImportance, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scanning alignment record: %w", err)
		}
		rec.TaskPriority = domain.Priority(taskPriority)
		if projPriority.Valid {
			p := domain.Priority(projPriority.String)
			rec.ProjectPriority = &p
		}
		if areaImportance.Valid {
			v := int(areaImportance.Int64)
			rec.AreaImportance = &v
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating alignment records: %w", err)
	}
	return records, nil
}

func (r *SQLiteAlignmentRepo) SumSince(ctx context.Context, since time.Time) (int, error) {
	var total sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		`SELECT SUM(points_earned) FROM alignment_scores WHERE created_at >= ?`,
		since.UTC().Format(time.RFC3339)).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("summing alignment points: %w", err)
	}
	return int(total.Int64), nil
}

func (r *SQLiteAlignmentRepo) HasRecordForTask(ctx context.Context, taskID string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM alignment_scores WHERE task_id = ?`, taskID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking alignment record: %w", err)
	}
	return count > 0, nil
}
