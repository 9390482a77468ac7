package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskSentiment     TaskType = "sentiment"
	TaskWhyStatement  TaskType = "why_statement"
	TaskCoaching      TaskType = "coaching"
	TaskDecomposition TaskType = "decomposition"
	TaskEmbedding     TaskType = "embedding"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled        bool
	LogCalls       bool
	Endpoint       string
	Model          string
	EmbeddingModel string
	TimeoutMs      int
	MaxRetries     int
	Tasks          map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with sensible defaults.
// AI features are disabled by default so the rest of the app works offline.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:        false,
		LogCalls:       false,
		Endpoint:       "http://localhost:11434",
		Model:          "llama3.2",
		EmbeddingModel: "nomic-embed-text",
		TimeoutMs:      10000,
		MaxRetries:     1,
		Tasks: map[TaskType]TaskConfig{
			TaskSentiment:     {Temperature: 0.1, MaxTokens: 512, TimeoutMs: 10000},
			TaskWhyStatement:  {Temperature: 0.3, MaxTokens: 1024, TimeoutMs: 8000},
			TaskCoaching:      {Temperature: 0.4, MaxTokens: 2048, TimeoutMs: 20000},
			TaskDecomposition: {Temperature: 0.3, MaxTokens: 4096, TimeoutMs: 30000},
			TaskEmbedding:     {TimeoutMs: 10000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("AURUM_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("AURUM_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("AURUM_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("AURUM_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("AURUM_LLM_EMBEDDING_MODEL"); v != "" {
		cfg.EmbeddingModel = v
	}
	if v := os.Getenv("AURUM_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("AURUM_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskSentiment, "AURUM_LLM_SENTIMENT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskWhyStatement, "AURUM_LLM_WHY_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskCoaching, "AURUM_LLM_COACHING_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskDecomposition, "AURUM_LLM_DECOMPOSITION_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskEmbedding, "AURUM_LLM_EMBEDDING_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
