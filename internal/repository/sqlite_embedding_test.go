package repository

import (
	"context"
	"testing"
	"time"

	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorBlobRoundtrip(t *testing.T) {
	vec := []float32{0.25, -1.5, 3.14159, 0}
	got := BlobToVector(VectorToBlob(vec))
	assert.Equal(t, vec, got)
}

func TestVectorBlob_Empty(t *testing.T) {
	assert.Empty(t, BlobToVector(nil))
	assert.Empty(t, VectorToBlob(nil))
}

func newEmbedding(tag domain.EmbeddingDomain, entityID, snippet string, vec []float32) *domain.Embedding {
	return &domain.Embedding{
		ID:        uuid.NewString(),
		Domain:    tag,
		EntityID:  entityID,
		Snippet:   snippet,
		Vector:    vec,
		UpdatedAt: time.Now().UTC(),
	}
}

func TestEmbeddingRepo_UpsertReplacesByEntity(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEmbeddingRepo(db)
	ctx := context.Background()

	first := newEmbedding(domain.DomainTask, "task-1", "old snippet", []float32{1, 0})
	require.NoError(t, repo.Upsert(ctx, first))

	second := newEmbedding(domain.DomainTask, "task-1", "new snippet", []float32{0, 1})
	require.NoError(t, repo.Upsert(ctx, second))

	all, err := repo.ListByDomains(ctx, []domain.EmbeddingDomain{domain.DomainTask})
	require.NoError(t, err)
	require.Len(t, all, 1, "upsert on the same entity replaces, not duplicates")
	assert.Equal(t, "new snippet", all[0].Snippet)
	assert.Equal(t, []float32{0, 1}, all[0].Vector)
}

func TestEmbeddingRepo_ListByDomains(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEmbeddingRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, newEmbedding(domain.DomainTask, "t1", "a task", []float32{1})))
	require.NoError(t, repo.Upsert(ctx, newEmbedding(domain.DomainProject, "p1", "a project", []float32{2})))
	require.NoError(t, repo.Upsert(ctx, newEmbedding(domain.DomainJournalEntry, "j1", "an entry", []float32{3})))

	metadata, err := repo.ListByDomains(ctx, []domain.EmbeddingDomain{domain.DomainTask, domain.DomainProject})
	require.NoError(t, err)
	assert.Len(t, metadata, 2)
	for _, e := range metadata {
		assert.NotEqual(t, domain.DomainJournalEntry, e.Domain)
	}
}

func TestEmbeddingRepo_DeleteByEntity(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEmbeddingRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, newEmbedding(domain.DomainTask, "t1", "a task", []float32{1})))
	require.NoError(t, repo.DeleteByEntity(ctx, domain.DomainTask, "t1"))

	all, err := repo.ListByDomains(ctx, []domain.EmbeddingDomain{domain.DomainTask})
	require.NoError(t, err)
	assert.Empty(t, all)
}
