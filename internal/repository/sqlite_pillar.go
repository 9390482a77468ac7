package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aurumlife/aurum/internal/db"
	"github.com/aurumlife/aurum/internal/domain"
)

// SQLitePillarRepo implements PillarRepo using a SQLite database.
type SQLitePillarRepo struct {
	db db.DBTX
}

// NewSQLitePillarRepo creates a new SQLitePillarRepo. Accepts either a
// *sql.DB or a transaction-scoped DBTX.
func NewSQLitePillarRepo(dbtx db.DBTX) *SQLitePillarRepo {
	return &SQLitePillarRepo{db: dbtx}
}

const pillarColumns = `id, name, description, icon, color, time_allocation_pct, sort_order, archived_at, created_at, updated_at`

func (r *SQLitePillarRepo) Create(ctx context.Context, p *domain.Pillar) error {
	query := `INSERT INTO pillars (` + pillarColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		p.Icon,
		p.Color,
		p.TimeAllocationPct,
		p.SortOrder,
		nullableTimeToString(p.ArchivedAt, time.RFC3339),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting pillar: %w", err)
	}
	return nil
}

func (r *SQLitePillarRepo) GetByID(ctx context.Context, id string) (*domain.Pillar, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+pillarColumns+` FROM pillars WHERE id = ?`, id)
	p, err := scanPillar(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("pillar %s: %w", id, ErrNotFound)
	}
	return p, err
}

func (r *SQLitePillarRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Pillar, error) {
	query := `SELECT ` + pillarColumns + ` FROM pillars`
	if !includeArchived {
		query += ` WHERE archived_at IS NULL`
	}
	query += ` ORDER BY sort_order, created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing pillars: %w", err)
	}
	defer rows.Close()

	var pillars []*domain.Pillar
	for rows.Next() {
		p, err := scanPillar(rows.Scan)
		if err != nil {
			return nil, err
		}
		pillars = append(pillars, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pillars: %w", err)
	}
	return pillars, nil
}

func (r *SQLitePillarRepo) Update(ctx context.Context, p *domain.Pillar) error {
	query := `UPDATE pillars SET name = ?, description = ?, icon = ?, color = ?,
		time_allocation_pct = ?, sort_order = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Description,
		p.Icon,
		p.Color,
		p.TimeAllocationPct,
		p.SortOrder,
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating pillar: %w", err)
	}
	return nil
}

func (r *SQLitePillarRepo) Archive(ctx context.Context, id string) error {
	now := nowUTC()
	_, err := r.db.ExecContext(ctx, `UPDATE pillars SET archived_at = ?, updated_at = ? WHERE id = ?`, now, now, id)
	if err != nil {
		return fmt.Errorf("archiving pillar: %w", err)
	}
	return nil
}

func (r *SQLitePillarRepo) Unarchive(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE pillars SET archived_at = NULL, updated_at = ? WHERE id = ?`, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("unarchiving pillar: %w", err)
	}
	return nil
}

func (r *SQLitePillarRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM pillars WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting pillar: %w", err)
	}
	return nil
}

func scanPillar(scan func(...any) error) (*domain.Pillar, error) {
	var p domain.Pillar
	var archivedAt sql.NullString
	var createdAt, updatedAt string

	err := scan(
		&p.ID, &p.Name, &p.Description, &p.Icon, &p.Color,
		&p.TimeAllocationPct, &p.SortOrder,
		&archivedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.ArchivedAt = parseNullableTime(archivedAt, time.RFC3339)
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &p, nil
}
