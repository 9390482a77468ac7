package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) LLMConfig {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.MaxRetries = 1
	return cfg
}

func TestGenerate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)

		var req ollamaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.False(t, req.Stream)
		assert.Equal(t, "analyze this entry", req.Prompt)

		json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3.2", Response: "looks positive"})
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), nil)
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskSentiment,
		UserPrompt: "analyze this entry",
	})
	require.NoError(t, err)
	assert.Equal(t, "looks positive", resp.Text)
	assert.Equal(t, "llama3.2", resp.Model)
}

func TestGenerate_RetriesThenExhausts(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskSentiment, UserPrompt: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.Equal(t, 2, calls, "one attempt plus one retry")
}

func TestGenerate_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before the call so dialing fails

	client := NewOllamaClient(testConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskSentiment, UserPrompt: "x"})
	assert.ErrorIs(t, err, ErrOllamaUnavailable)
}

func TestGenerate_ObserverSeesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	var events []LLMCallEvent
	observer := observerFunc(func(e LLMCallEvent) { events = append(events, e) })

	client := NewOllamaClient(testConfig(srv.URL), observer)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskCoaching, UserPrompt: "x"})
	require.Error(t, err)

	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.Equal(t, TaskCoaching, events[0].Task)
	assert.NotEmpty(t, events[0].ErrorCode)
}

type observerFunc func(LLMCallEvent)

func (f observerFunc) OnCallComplete(e LLMCallEvent) { f(e) }

func TestEmbed_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/embeddings", r.URL.Path)

		var req embedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "nomic-embed-text", req.Model)

		json.NewEncoder(w).Encode(embedResponse{Embedding: []float32{0.1, 0.2, 0.3}})
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), nil)
	vec, err := client.Embed(context.Background(), "morning pages")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vec)
}

func TestEmbed_EmptyVector(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(embedResponse{})
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), nil)
	_, err := client.Embed(context.Background(), "text")
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), nil)
	assert.True(t, client.Available(context.Background()))

	srv.Close()
	assert.False(t, client.Available(context.Background()))
}
