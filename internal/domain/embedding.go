package domain

import "time"

// Embedding is one semantic-search row: a text snippet plus its vector.
type Embedding struct {
	ID        string
	Domain    EmbeddingDomain
	EntityID  string
	Snippet   string
	Vector    []float32
	UpdatedAt time.Time
}
