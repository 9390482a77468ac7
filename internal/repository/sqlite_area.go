package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aurumlife/aurum/internal/db"
	"github.com/aurumlife/aurum/internal/domain"
)

// SQLiteAreaRepo implements AreaRepo using a SQLite database.
type SQLiteAreaRepo struct {
	db db.DBTX
}

func NewSQLiteAreaRepo(dbtx db.DBTX) *SQLiteAreaRepo {
	return &SQLiteAreaRepo{db: dbtx}
}

const areaColumns = `id, pillar_id, name, description, icon, color, importance, archived_at, created_at, updated_at`

func (r *SQLiteAreaRepo) Create(ctx context.Context, a *domain.Area) error {
	query := `INSERT INTO areas (` + areaColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		nullableString(a.PillarID),
		a.Name,
		a.Description,
		a.Icon,
		a.Color,
		a.Importance,
		nullableTimeToString(a.ArchivedAt, time.RFC3339),
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting area: %w", err)
	}
	return nil
}

func (r *SQLiteAreaRepo) GetByID(ctx context.Context, id string) (*domain.Area, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+areaColumns+` FROM areas WHERE id = ?`, id)
	a, err := scanArea(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("area %s: %w", id, ErrNotFound)
	}
	return a, err
}

func (r *SQLiteAreaRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Area, error) {
	query := `SELECT ` + areaColumns + ` FROM areas`
	if !includeArchived {
		query += ` WHERE archived_at IS NULL`
	}
	query += ` ORDER BY importance DESC, created_at`
	return r.queryAreas(ctx, query)
}

func (r *SQLiteAreaRepo) ListByPillar(ctx context.Context, pillarID string) ([]*domain.Area, error) {
	query := `SELECT ` + areaColumns + ` FROM areas WHERE pillar_id = ? AND archived_at IS NULL ORDER BY importance DESC, created_at`
	return r.queryAreas(ctx, query, pillarID)
}

func (r *SQLiteAreaRepo) Update(ctx context.Context, a *domain.Area) error {
	query := `UPDATE areas SET pillar_id = ?, name = ?, description = ?, icon = ?, color = ?,
		importance = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		nullableString(a.PillarID),
		a.Name,
		a.Description,
		a.Icon,
		a.Color,
		a.Importance,
		a.UpdatedAt.Format(time.RFC3339),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating area: %w", err)
	}
	return nil
}

func (r *SQLiteAreaRepo) Archive(ctx context.Context, id string) error {
	now := nowUTC()
	_, err := r.db.ExecContext(ctx, `UPDATE areas SET archived_at = ?, updated_at = ? WHERE id = ?`, now, now, id)
	if err != nil {
		return fmt.Errorf("archiving area: %w", err)
	}
	return nil
}

func (r *SQLiteAreaRepo) Unarchive(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE areas SET archived_at = NULL, updated_at = ? WHERE id = ?`, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("unarchiving area: %w", err)
	}
	return nil
}

func (r *SQLiteAreaRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM areas WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting area: %w", err)
	}
	return nil
}

func (r *SQLiteAreaRepo) queryAreas(ctx context.Context, query string, args ...any) ([]*domain.Area, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing areas: %w", err)
	}
	defer rows.Close()

	var areas []*domain.Area
	for rows.Next() {
		a, err := scanArea(rows.Scan)
		if err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating areas: %w", err)
	}
	return areas, nil
}

func scanArea(scan func(...any) error) (*domain.Area, error) {
	var a domain.Area
	var pillarID, archivedAt sql.NullString
	var createdAt, updatedAt string

	err := scan(
		&a.ID, &pillarID, &a.Name, &a.Description, &a.Icon, &a.Color,
		&a.Importance, &archivedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if pillarID.Valid {
		a.PillarID = &pillarID.String
	}
	a.ArchivedAt = parseNullableTime(archivedAt, time.RFC3339)
	a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	a.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &a, nil
}
