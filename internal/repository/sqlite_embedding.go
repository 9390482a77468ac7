package repository

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/aurumlife/aurum/internal/db"
	"github.com/aurumlife/aurum/internal/domain"
)

// SQLiteEmbeddingRepo implements EmbeddingRepo. Vectors are stored as
// little-endian float32 blobs.
type SQLiteEmbeddingRepo struct {
	db db.DBTX
}

func NewSQLiteEmbeddingRepo(dbtx db.DBTX) *SQLiteEmbeddingRepo {
	return &SQLiteEmbeddingRepo{db: dbtx}
}

func (r *SQLiteEmbeddingRepo) Upsert(ctx context.Context, e *domain.Embedding) error {
	query := `INSERT INTO embeddings (id, domain_tag, entity_id, snippet, vector, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(domain_tag, entity_id) DO UPDATE SET
			snippet = excluded.snippet,
			vector = excluded.vector,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		string(e.Domain),
		e.EntityID,
		e.Snippet,
		VectorToBlob(e.Vector),
		e.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting embedding: %w", err)
	}
	return nil
}

func (r *SQLiteEmbeddingRepo) ListByDomains(ctx context.Context, domains []domain.EmbeddingDomain) ([]*domain.Embedding, error) {
	query := `SELECT id, domain_tag, entity_id, snippet, vector, updated_at FROM embeddings`
	var args []any
	if len(domains) > 0 {
		placeholders := make([]string, len(domains))
		for i, d := range domains {
			placeholders[i] = "?"
			args = append(args, string(d))
		}
		query += ` WHERE domain_tag IN (` + strings.Join(placeholders, ", ") + `)`
	}
	query += ` ORDER BY updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing embeddings: %w", err)
	}
	defer rows.Close()

	var embeddings []*domain.Embedding
	for rows.Next() {
		var e domain.Embedding
		var domainTag, updatedAt string
		var blob []byte
		if err := rows.Scan(&e.ID, &domainTag, &e.EntityID, &e.Snippet, &blob, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning embedding: %w", err)
		}
		e.Domain = domain.EmbeddingDomain(domainTag)
		e.Vector = BlobToVector(blob)
		e.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		embeddings = append(embeddings, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating embeddings: %w", err)
	}
	return embeddings, nil
}

func (r *SQLiteEmbeddingRepo) DeleteByEntity(ctx context.Context, domainTag domain.EmbeddingDomain, entityID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM embeddings WHERE domain_tag = ? AND entity_id = ?`,
		string(domainTag), entityID)
	if err != nil {
		return fmt.Errorf("deleting embedding: %w", err)
	}
	return nil
}

// VectorToBlob serializes a float32 vector as little-endian bytes.
func VectorToBlob(v []float32) []byte {
	blob := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(blob[i*4:], math.Float32bits(f))
	}
	return blob
}

// BlobToVector deserializes little-endian bytes back into a float32 vector.
func BlobToVector(blob []byte) []float32 {
	v := make([]float32, len(blob)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(blob[i*4:]))
	}
	return v
}
