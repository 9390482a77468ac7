package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aurumlife/aurum/internal/db"
	"github.com/aurumlife/aurum/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo. The profile is a singleton row.
type SQLiteProfileRepo struct {
	db db.DBTX
}

func NewSQLiteProfileRepo(dbtx db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: dbtx}
}

// Get returns the profile, or defaults if no row has been written yet.
func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT name, timezone, tier, monthly_alignment_goal, created_at, updated_at FROM user_profile WHERE id = 1`)

	var p domain.UserProfile
	var tier, createdAt, updatedAt string
	var goal sql.NullInt64

	err := row.Scan(&p.Name, &p.Timezone, &tier, &goal, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		now := time.Now().UTC()
		return &domain.UserProfile{
			Timezone:  "UTC",
			Tier:      domain.TierPro,
			CreatedAt: now,
			UpdatedAt: now,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	p.Tier = domain.Tier(tier)
	if goal.Valid {
		g := int(goal.Int64)
		p.MonthlyAlignmentGoal = &g
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	query := `INSERT INTO user_profile (id, name, timezone, tier, monthly_alignment_goal, created_at, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			timezone = excluded.timezone,
			tier = excluded.tier,
			monthly_alignment_goal = excluded.monthly_alignment_goal,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Timezone,
		string(p.Tier),
		nullableInt(p.MonthlyAlignmentGoal),
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}
