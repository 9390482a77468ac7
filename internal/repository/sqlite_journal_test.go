package repository

import (
	"context"
	"testing"
	"time"

	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalRepo_CreateGetRoundtrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteJournalRepo(db)
	ctx := context.Background()

	entry := testutil.NewTestEntry("Morning pages", "Slept well, feeling sharp.",
		testutil.WithMood(domain.MoodOptimistic))
	entry.Tags = []string{"sleep", "energy"}
	require.NoError(t, repo.Create(ctx, entry))

	fetched, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "Morning pages", fetched.Title)
	assert.Equal(t, domain.MoodOptimistic, fetched.Mood)
	assert.Equal(t, []string{"sleep", "energy"}, fetched.Tags)
	assert.Nil(t, fetched.Sentiment, "sentiment is not set at creation")
	assert.Nil(t, fetched.DeletedAt)
}

func TestJournalRepo_UpdateSentiment(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteJournalRepo(db)
	ctx := context.Background()

	entry := testutil.NewTestEntry("Rough day", "Everything went sideways.")
	require.NoError(t, repo.Create(ctx, entry))

	result := &domain.SentimentResult{
		Score:      -0.7,
		Category:   domain.CategoryForScore(-0.7),
		Confidence: 0.9,
		Keywords:   []string{"sideways"},
		Themes:     []string{"work stress"},
		Reasoning:  "strongly negative language throughout",
		AnalyzedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.UpdateSentiment(ctx, entry.ID, result))

	fetched, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Sentiment)
	assert.Equal(t, -0.7, fetched.Sentiment.Score)
	assert.Equal(t, domain.SentimentVeryNegative, fetched.Sentiment.Category)
	assert.Equal(t, []string{"sideways"}, fetched.Sentiment.Keywords)
	assert.Equal(t, []string{"work stress"}, fetched.Sentiment.Themes)
}

func TestJournalRepo_SoftDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteJournalRepo(db)
	ctx := context.Background()

	entry := testutil.NewTestEntry("To remove", "temp")
	require.NoError(t, repo.Create(ctx, entry))
	require.NoError(t, repo.SoftDelete(ctx, entry.ID))

	// Gone from the default listing, still present when deleted rows are included.
	visible, err := repo.List(ctx, 0, false)
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := repo.List(ctx, 0, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.NotNil(t, all[0].DeletedAt)

	// Deleting twice reports not found.
	err = repo.SoftDelete(ctx, entry.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJournalRepo_ListSince(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteJournalRepo(db)
	ctx := context.Background()

	now := time.Now().UTC()
	old := testutil.NewTestEntry("Old", "last month", testutil.WithEntryCreatedAt(now.Add(-40*24*time.Hour)))
	recent := testutil.NewTestEntry("Recent", "yesterday", testutil.WithEntryCreatedAt(now.Add(-24*time.Hour)))
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, recent))

	entries, err := repo.ListSince(ctx, now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, recent.ID, entries[0].ID)
}
