package scoring

import (
	"testing"
	"time"

	"github.com/aurumlife/aurum/internal/domain"
	"github.com/stretchr/testify/assert"
)

func scored(id string, score float64, opts func(*ScoringInput)) ScoredTask {
	input := ScoringInput{
		TaskID:    id,
		Priority:  domain.PriorityMedium,
		CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	if opts != nil {
		opts(&input)
	}
	return ScoredTask{Input: input, Score: score}
}

func order(tasks []ScoredTask) []string {
	ids := make([]string, len(tasks))
	for i, s := range tasks {
		ids[i] = s.Input.TaskID
	}
	return ids
}

func TestCanonicalSort_ScoreDescending(t *testing.T) {
	tasks := []ScoredTask{
		scored("low", 10, nil),
		scored("high", 90, nil),
		scored("mid", 50, nil),
	}
	CanonicalSort(tasks)
	assert.Equal(t, []string{"high", "mid", "low"}, order(tasks))
}

func TestCanonicalSort_DueDateBreaksTies(t *testing.T) {
	soon := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	later := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	tasks := []ScoredTask{
		scored("no-due", 50, nil),
		scored("later", 50, func(in *ScoringInput) { in.DueDate = &later }),
		scored("soon", 50, func(in *ScoringInput) { in.DueDate = &soon }),
	}
	CanonicalSort(tasks)
	assert.Equal(t, []string{"soon", "later", "no-due"}, order(tasks), "nil due dates sort last")
}

func TestCanonicalSort_PriorityBreaksTies(t *testing.T) {
	tasks := []ScoredTask{
		scored("low", 50, func(in *ScoringInput) { in.Priority = domain.PriorityLow }),
		scored("high", 50, func(in *ScoringInput) { in.Priority = domain.PriorityHigh }),
		scored("medium", 50, func(in *ScoringInput) { in.Priority = domain.PriorityMedium }),
	}
	CanonicalSort(tasks)
	assert.Equal(t, []string{"high", "medium", "low"}, order(tasks))
}

func TestCanonicalSort_CreatedAtThenID(t *testing.T) {
	older := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	tasks := []ScoredTask{
		scored("b", 50, nil),
		scored("a", 50, nil),
		scored("oldest", 50, func(in *ScoringInput) { in.CreatedAt = older }),
	}
	CanonicalSort(tasks)
	assert.Equal(t, []string{"oldest", "a", "b"}, order(tasks))
}

func TestCanonicalSort_Deterministic(t *testing.T) {
	build := func() []ScoredTask {
		return []ScoredTask{
			scored("c", 30, nil),
			scored("a", 70, nil),
			scored("b", 70, func(in *ScoringInput) { in.Priority = domain.PriorityHigh }),
			scored("d", 30, nil),
		}
	}
	first := build()
	second := build()
	CanonicalSort(first)
	CanonicalSort(second)
	assert.Equal(t, order(first), order(second))
	assert.Equal(t, []string{"b", "a", "c", "d"}, order(first))
}
