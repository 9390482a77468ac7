package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aurumlife/aurum/internal/db"
	"github.com/aurumlife/aurum/internal/domain"
)

// SQLiteInteractionRepo implements InteractionRepo, the AI quota ledger.
type SQLiteInteractionRepo struct {
	db db.DBTX
}

func NewSQLiteInteractionRepo(dbtx db.DBTX) *SQLiteInteractionRepo {
	return &SQLiteInteractionRepo{db: dbtx}
}

func (r *SQLiteInteractionRepo) Create(ctx context.Context, i *domain.AIInteraction) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO ai_interactions (id, feature, created_at) VALUES (?, ?, ?)`,
		i.ID, string(i.Feature), i.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting ai interaction: %w", err)
	}
	return nil
}

func (r *SQLiteInteractionRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM ai_interactions WHERE created_at >= ?`,
		since.UTC().Format(time.RFC3339)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting ai interactions: %w", err)
	}
	return count, nil
}

func (r *SQLiteInteractionRepo) BreakdownSince(ctx context.Context, since time.Time) (map[domain.AIFeature]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT feature, COUNT(*) FROM ai_interactions WHERE created_at >= ? GROUP BY feature`,
		since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("reading ai interaction breakdown: %w", err)
	}
	defer rows.Close()

	breakdown := make(map[domain.AIFeature]int)
	for rows.Next() {
		var feature string
		var count int
		if err := rows.Scan(&feature, &count); err != nil {
			return nil, err
		}
		breakdown[domain.AIFeature(feature)] = count
	}
	return breakdown, rows.Err()
}
