package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aurumlife/aurum/internal/db"
	"github.com/aurumlife/aurum/internal/domain"
)

// SQLiteJournalRepo implements JournalRepo using a SQLite database.
type SQLiteJournalRepo struct {
	db db.DBTX
}

func NewSQLiteJournalRepo(dbtx db.DBTX) *SQLiteJournalRepo {
	return &SQLiteJournalRepo{db: dbtx}
}

const journalColumns = `id, title, content, mood, tags,
	sentiment_score, sentiment_category, sentiment_confidence,
	sentiment_keywords, sentiment_themes, sentiment_reasoning, analyzed_at,
	deleted_at, created_at, updated_at`

func (r *SQLiteJournalRepo) Create(ctx context.Context, e *domain.JournalEntry) error {
	query := `INSERT INTO journal_entries (id, title, content, mood, tags, deleted_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Title,
		e.Content,
		string(e.Mood),
		encodeStrings(e.Tags),
		nullableTimeToString(e.DeletedAt, time.RFC3339),
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting journal entry: %w", err)
	}
	return nil
}

func (r *SQLiteJournalRepo) GetByID(ctx context.Context, id string) (*domain.JournalEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+journalColumns+` FROM journal_entries WHERE id = ?`, id)
	e, err := scanJournalEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("journal entry %s: %w", id, ErrNotFound)
	}
	return e, err
}

func (r *SQLiteJournalRepo) List(ctx context.Context, limit int, includeDeleted bool) ([]*domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries`
	if !includeDeleted {
		query += ` WHERE deleted_at IS NULL`
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, limit)
	}
	return r.queryEntries(ctx, query)
}

func (r *SQLiteJournalRepo) ListSince(ctx context.Context, since time.Time) ([]*domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries
		WHERE deleted_at IS NULL AND created_at >= ? ORDER BY created_at`
	return r.queryEntries(ctx, query, since.UTC().Format(time.RFC3339))
}

func (r *SQLiteJournalRepo) Update(ctx context.Context, e *domain.JournalEntry) error {
	query := `UPDATE journal_entries SET title = ?, content = ?, mood = ?, tags = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		e.Title,
		e.Content,
		string(e.Mood),
		encodeStrings(e.Tags),
		e.UpdatedAt.Format(time.RFC3339),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating journal entry: %w", err)
	}
	return nil
}

func (r *SQLiteJournalRepo) UpdateSentiment(ctx context.Context, id string, s *domain.SentimentResult) error {
	query := `UPDATE journal_entries SET sentiment_score = ?, sentiment_category = ?,
		sentiment_confidence = ?, sentiment_keywords = ?, sentiment_themes = ?,
		sentiment_reasoning = ?, analyzed_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		s.Score,
		string(s.Category),
		s.Confidence,
		encodeStrings(s.Keywords),
		encodeStrings(s.Themes),
		s.Reasoning,
		s.AnalyzedAt.UTC().Format(time.RFC3339),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating journal sentiment: %w", err)
	}
	return nil
}

func (r *SQLiteJournalRepo) SoftDelete(ctx context.Context, id string) error {
	now := nowUTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE journal_entries SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`,
		now, now, id)
	if err != nil {
		return fmt.Errorf("deleting journal entry: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("journal entry %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteJournalRepo) queryEntries(ctx context.Context, query string, args ...any) ([]*domain.JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.JournalEntry
	for rows.Next() {
		e, err := scanJournalEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journal entries: %w", err)
	}
	return entries, nil
}

func scanJournalEntry(scan func(...any) error) (*domain.JournalEntry, error) {
	var e domain.JournalEntry
	var mood, tags, createdAt, updatedAt string
	var score, confidence sql.NullFloat64
	var category, keywords, themes, reasoning, analyzedAt, deletedAt sql.NullString

	err := scan(
		&e.ID, &e.Title, &e.Content, &mood, &tags,
		&score, &category, &confidence,
		&keywords, &themes, &reasoning, &analyzedAt,
		&deletedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Mood = domain.Mood(mood)
	e.Tags = decodeStrings(tags)
	e.DeletedAt = parseNullableTime(deletedAt, time.RFC3339)
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	e.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	if score.Valid {
		s := &domain.SentimentResult{
			Score:      score.Float64,
			Category:   domain.SentimentCategory(category.String),
			Confidence: confidence.Float64,
			Keywords:   decodeStrings(keywords.String),
			Themes:     decodeStrings(themes.String),
			Reasoning:  reasoning.String,
		}
		if at := parseNullableTime(analyzedAt, time.RFC3339); at != nil {
			s.AnalyzedAt = *at
		}
		e.Sentiment = s
	}
	return &e, nil
}
