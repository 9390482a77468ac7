package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentimentPayload struct {
	Score    float64  `json:"sentiment_score"`
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

func TestExtractJSON_Plain(t *testing.T) {
	raw := `{"sentiment_score": 0.7, "category": "positive", "keywords": ["energy"]}`
	got, err := ExtractJSON[sentimentPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.7, got.Score)
	assert.Equal(t, []string{"energy"}, got.Keywords)
}

func TestExtractJSON_CodeFences(t *testing.T) {
	raw := "Here is the analysis:\n```json\n{\"sentiment_score\": -0.4, \"category\": \"negative\"}\n```\nHope that helps!"
	got, err := ExtractJSON[sentimentPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, -0.4, got.Score)
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	raw := `Sure! The result is {"sentiment_score": 0.1, "category": "neutral"} based on the text.`
	got, err := ExtractJSON[sentimentPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "neutral", got.Category)
}

func TestExtractJSON_StripsComments(t *testing.T) {
	raw := `{
		"sentiment_score": 0.5, // overall positive
		"category": "positive"
	}`
	got, err := ExtractJSON[sentimentPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.5, got.Score)
}

func TestExtractJSON_LeadingDecimal(t *testing.T) {
	raw := `{"sentiment_score": .8, "category": "very_positive"}`
	got, err := ExtractJSON[sentimentPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.8, got.Score)

	raw = `{"sentiment_score": -.3, "category": "negative"}`
	got, err = ExtractJSON[sentimentPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, -0.3, got.Score)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[sentimentPayload]("I could not analyze that.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	validator := func(p sentimentPayload) error {
		if p.Score < -1 || p.Score > 1 {
			return fmt.Errorf("score %v out of range", p.Score)
		}
		return nil
	}

	_, err := ExtractJSON[sentimentPayload](`{"sentiment_score": 3.5}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)

	got, err := ExtractJSON[sentimentPayload](`{"sentiment_score": 0.9}`, validator)
	require.NoError(t, err)
	assert.Equal(t, 0.9, got.Score)
}

func TestExtractJSON_NestedBraces(t *testing.T) {
	type nested struct {
		Breakdown map[string]int `json:"breakdown"`
	}
	raw := `prefix {"breakdown": {"urgency": 40, "priority": 20}} suffix`
	got, err := ExtractJSON[nested](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 40, got.Breakdown["urgency"])
}

func TestExtractJSON_StringValuesPassThrough(t *testing.T) {
	// Slashes and bare dots inside string values must survive the repairs
	// applied to the surrounding JSON.
	raw := `{"sentiment_score": .5, "category": "positive", "keywords": ["work/life", "b+ grade, almost .9"]} // done`
	got, err := ExtractJSON[sentimentPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.5, got.Score)
	assert.Equal(t, []string{"work/life", "b+ grade, almost .9"}, got.Keywords)
}
