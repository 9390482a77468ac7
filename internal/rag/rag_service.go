package rag

import (
	"context"
	"sort"
	"time"

	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/llm"
	"github.com/aurumlife/aurum/internal/repository"
	"github.com/aurumlife/aurum/internal/service"
	"github.com/google/uuid"
)

// DefaultMaxResults caps a context search when the caller does not.
const DefaultMaxResults = 10

// ContextItem is one ranked snippet returned by a context search.
type ContextItem struct {
	Source     string // "metadata" or "conversation"
	Domain     domain.EmbeddingDomain
	EntityID   string
	Snippet    string
	Similarity float64
	UpdatedAt  time.Time
}

// Service provides semantic search over indexed entities and conversation
// memory.
type Service interface {
	// RelevantContext embeds the query and returns the most similar
	// snippets, half the budget from entity metadata and half from
	// conversation memory, ranked together.
	RelevantContext(ctx context.Context, query string, domainFilters []domain.EmbeddingDomain, maxResults int) ([]ContextItem, error)

	// IndexEntity embeds a snippet and upserts it for the entity.
	IndexEntity(ctx context.Context, domainTag domain.EmbeddingDomain, entityID, snippet string) error

	// RemoveEntity drops the stored embedding for an entity.
	RemoveEntity(ctx context.Context, domainTag domain.EmbeddingDomain, entityID string) error

	// StoreConversation embeds and remembers one conversation turn.
	StoreConversation(ctx context.Context, content string) error
}

// MetadataDomains lists every entity domain that is not conversation memory.
func MetadataDomains() []domain.EmbeddingDomain {
	return []domain.EmbeddingDomain{
		domain.DomainPillar,
		domain.DomainArea,
		domain.DomainProject,
		domain.DomainTask,
		domain.DomainJournalEntry,
	}
}

type ragService struct {
	embeddings repository.EmbeddingRepo
	client     llm.LLMClient
	quota      service.QuotaService
	now        func() time.Time
}

func NewService(embeddings repository.EmbeddingRepo, client llm.LLMClient, quota service.QuotaService) Service {
	return &ragService{
		embeddings: embeddings,
		client:     client,
		quota:      quota,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *ragService) RelevantContext(ctx context.Context, query string, domainFilters []domain.EmbeddingDomain, maxResults int) ([]ContextItem, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if len(domainFilters) == 0 {
		domainFilters = MetadataDomains()
	}

	if err := s.quota.Consume(ctx, domain.FeatureSemanticSearch); err != nil {
		return nil, err
	}

	queryVec, err := s.client.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	half := maxResults / 2
	if half == 0 {
		half = 1
	}

	metadata, err := s.search(ctx, queryVec, domainFilters, "metadata", half)
	if err != nil {
		return nil, err
	}
	conversation, err := s.search(ctx, queryVec, []domain.EmbeddingDomain{domain.DomainConversation}, "conversation", half)
	if err != nil {
		return nil, err
	}

	combined := append(metadata, conversation...)
	rankItems(combined)
	if len(combined) > maxResults {
		combined = combined[:maxResults]
	}
	return combined, nil
}

func (s *ragService) search(ctx context.Context, queryVec []float32, domains []domain.EmbeddingDomain, source string, limit int) ([]ContextItem, error) {
	rows, err := s.embeddings.ListByDomains(ctx, domains)
	if err != nil {
		return nil, err
	}

	items := make([]ContextItem, 0, len(rows))
	for _, row := range rows {
		sim, err := CosineSimilarity(queryVec, row.Vector)
		if err != nil {
			return nil, err
		}
		items = append(items, ContextItem{
			Source:     source,
			Domain:     row.Domain,
			EntityID:   row.EntityID,
			Snippet:    row.Snippet,
			Similarity: sim,
			UpdatedAt:  row.UpdatedAt,
		})
	}

	rankItems(items)
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// rankItems orders by similarity desc; equally similar items prefer the more
// recently updated one.
func rankItems(items []ContextItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Similarity != items[j].Similarity {
			return items[i].Similarity > items[j].Similarity
		}
		return items[i].UpdatedAt.After(items[j].UpdatedAt)
	})
}

func (s *ragService) IndexEntity(ctx context.Context, domainTag domain.EmbeddingDomain, entityID, snippet string) error {
	vec, err := s.client.Embed(ctx, snippet)
	if err != nil {
		return err
	}
	return s.embeddings.Upsert(ctx, &domain.Embedding{
		ID:        uuid.New().String(),
		Domain:    domainTag,
		EntityID:  entityID,
		Snippet:   snippet,
		Vector:    vec,
		UpdatedAt: s.now(),
	})
}

func (s *ragService) RemoveEntity(ctx context.Context, domainTag domain.EmbeddingDomain, entityID string) error {
	return s.embeddings.DeleteByEntity(ctx, domainTag, entityID)
}

func (s *ragService) StoreConversation(ctx context.Context, content string) error {
	vec, err := s.client.Embed(ctx, content)
	if err != nil {
		return err
	}
	return s.embeddings.Upsert(ctx, &domain.Embedding{
		ID:        uuid.New().String(),
		Domain:    domain.DomainConversation,
		EntityID:  uuid.New().String(),
		Snippet:   content,
		Vector:    vec,
		UpdatedAt: s.now(),
	})
}
