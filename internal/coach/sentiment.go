package coach

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/llm"
	"github.com/aurumlife/aurum/internal/repository"
	"github.com/aurumlife/aurum/internal/service"
)

// SentimentService analyzes journal entries and attaches the result.
type SentimentService interface {
	// AnalyzeEntry runs sentiment analysis for a stored entry and persists
	// the result. Returns nil without error when the quota is exhausted;
	// the entry stays unanalyzed rather than failing.
	AnalyzeEntry(ctx context.Context, entryID string) (*domain.SentimentResult, error)
}

type sentimentService struct {
	journal repository.JournalRepo
	client  llm.LLMClient
	quota   service.QuotaService
	now     func() time.Time
}

// NewSentimentService wires sentiment analysis over the journal repo.
func NewSentimentService(journal repository.JournalRepo, client llm.LLMClient, quota service.QuotaService) SentimentService {
	return &sentimentService{
		journal: journal,
		client:  client,
		quota:   quota,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

type sentimentPayload struct {
	SentimentScore    float64  `json:"sentiment_score"`
	ConfidenceScore   float64  `json:"confidence_score"`
	EmotionalKeywords []string `json:"emotional_keywords"`
	EmotionalThemes   []string `json:"emotional_themes"`
	Reasoning         string   `json:"reasoning"`
}

func validateSentimentPayload(p sentimentPayload) error {
	if p.SentimentScore < -1.0 || p.SentimentScore > 1.0 {
		return fmt.Errorf("sentiment_score %.2f out of range [-1, 1]", p.SentimentScore)
	}
	if p.ConfidenceScore < 0 || p.ConfidenceScore > 1.0 {
		return fmt.Errorf("confidence_score %.2f out of range [0, 1]", p.ConfidenceScore)
	}
	return nil
}

func (s *sentimentService) AnalyzeEntry(ctx context.Context, entryID string) (*domain.SentimentResult, error) {
	entry, err := s.journal.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if err := s.quota.Consume(ctx, domain.FeatureSentimentAnalysis); err != nil {
		if errors.Is(err, service.ErrQuotaExceeded) {
			return nil, nil
		}
		return nil, err
	}

	result := s.analyze(ctx, entry)
	if err := s.journal.UpdateSentiment(ctx, entry.ID, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *sentimentService) analyze(ctx context.Context, entry *domain.JournalEntry) *domain.SentimentResult {
	now := s.now()
	text := entry.Content
	if entry.Title != "" {
		text = entry.Title + "\n\n" + entry.Content
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSentiment,
		SystemPrompt: sentimentSystemPrompt,
		UserPrompt:   "Analyze this journal entry:\n\n" + text,
	})
	if err != nil {
		return FallbackSentiment(entry.Content, now)
	}

	payload, err := llm.ExtractJSON[sentimentPayload](resp.Text, validateSentimentPayload)
	if err != nil {
		return FallbackSentiment(entry.Content, now)
	}

	return &domain.SentimentResult{
		Score:      payload.SentimentScore,
		Category:   domain.CategoryForScore(payload.SentimentScore),
		Confidence: payload.ConfidenceScore,
		Keywords:   payload.EmotionalKeywords,
		Themes:     payload.EmotionalThemes,
		Reasoning:  payload.Reasoning,
		AnalyzedAt: now,
	}
}
