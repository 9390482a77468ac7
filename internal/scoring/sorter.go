package scoring

import (
	"sort"

	"github.com/aurumlife/aurum/internal/domain"
)

// CanonicalSort orders scored tasks by the deterministic canonical rules:
// 1. Score: higher first
// 2. Due date: earliest first (nil last)
// 3. Task priority: high > medium > low
// 4. Created at: oldest first
// 5. Task ID: lexical ascending
//
// Two runs over the same data always produce the same order.
func CanonicalSort(tasks []ScoredTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]

		if a.Score != b.Score {
			return a.Score > b.Score
		}

		dueA, dueB := a.Input.DueDate, b.Input.DueDate
		if (dueA == nil) != (dueB == nil) {
			return dueA != nil // non-nil before nil
		}
		if dueA != nil && dueB != nil && !dueA.Equal(*dueB) {
			return dueA.Before(*dueB)
		}

		rankA, rankB := domain.PriorityRank(a.Input.Priority), domain.PriorityRank(b.Input.Priority)
		if rankA != rankB {
			return rankA < rankB
		}

		if !a.Input.CreatedAt.Equal(b.Input.CreatedAt) {
			return a.Input.CreatedAt.Before(b.Input.CreatedAt)
		}

		return a.Input.TaskID < b.Input.TaskID
	})
}
