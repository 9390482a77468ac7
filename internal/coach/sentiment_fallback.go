package coach

import (
	"strings"
	"time"

	"github.com/aurumlife/aurum/internal/domain"
)

// Small keyword lexicon for offline sentiment. Scores lean toward neutral so
// a fallback result never swings the wellness trend hard in either direction.
var sentimentLexicon = map[string]float64{
	"happy":      0.6,
	"great":      0.6,
	"grateful":   0.7,
	"proud":      0.6,
	"excited":    0.6,
	"love":       0.7,
	"calm":       0.4,
	"good":       0.4,
	"progress":   0.4,
	"hopeful":    0.5,
	"energized":  0.5,
	"accomplish": 0.5,

	"tired":       -0.3,
	"stressed":    -0.5,
	"anxious":     -0.5,
	"sad":         -0.6,
	"angry":       -0.6,
	"frustrated":  -0.5,
	"overwhelmed": -0.6,
	"worried":     -0.4,
	"stuck":       -0.4,
	"failed":      -0.5,
	"exhausted":   -0.4,
	"bad":         -0.4,
}

// FallbackSentiment scores text by lexicon lookup. Used whenever the LLM is
// unavailable or returns garbage; the entry keeps a plausible, low-confidence
// result instead of failing.
func FallbackSentiment(text string, now time.Time) *domain.SentimentResult {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})

	var sum float64
	var hits []string
	for _, w := range words {
		if score, ok := sentimentLexicon[w]; ok {
			sum += score
			hits = append(hits, w)
		}
	}

	score := 0.0
	if len(hits) > 0 {
		score = sum / float64(len(hits))
		// Pull toward neutral; a word list is a blunt instrument.
		score *= 0.7
	}

	return &domain.SentimentResult{
		Score:      score,
		Category:   domain.CategoryForScore(score),
		Confidence: 0.3,
		Keywords:   hits,
		Reasoning:  "keyword-based analysis",
		AnalyzedAt: now.UTC(),
	}
}
