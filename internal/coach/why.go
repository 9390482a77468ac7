package coach

import (
	"fmt"

	"github.com/aurumlife/aurum/internal/domain"
	"github.com/aurumlife/aurum/internal/repository"
)

// WhyStatement explains what a task is really for by naming its place in
// the hierarchy.
type WhyStatement struct {
	TaskID    string
	TaskName  string
	Statement string
}

var priorityAdjective = map[domain.Priority]string{
	domain.PriorityHigh:   "high priority",
	domain.PriorityMedium: "priority",
	domain.PriorityLow:    "helpful",
}

// WhyForCandidate builds the contextual why sentence for one task. Wording
// strengthens when the project or area carries high importance and degrades
// gracefully as hierarchy context thins out.
func WhyForCandidate(c repository.TaskCandidate) WhyStatement {
	adj, ok := priorityAdjective[c.Task.Priority]
	if !ok {
		adj = "priority"
	}

	var statement string
	switch {
	case c.PillarName != "" && c.AreaName != "":
		if c.ProjectImportance >= importanceCutoff || c.AreaImportance >= importanceCutoff {
			statement = fmt.Sprintf(
				"This task is %s because it advances '%s', a critical project in your '%s' area under your '%s' pillar.",
				adj, c.ProjectName, c.AreaName, c.PillarName)
		} else {
			statement = fmt.Sprintf(
				"This task supports '%s' in your '%s' area, contributing to your '%s' pillar.",
				c.ProjectName, c.AreaName, c.PillarName)
		}
	case c.AreaName != "":
		statement = fmt.Sprintf("This task is %s for your '%s' project in the '%s' area.",
			adj, c.ProjectName, c.AreaName)
	default:
		statement = fmt.Sprintf("This task is part of your '%s' project and helps you make concrete progress.",
			c.ProjectName)
	}

	return WhyStatement{
		TaskID:    c.Task.ID,
		TaskName:  c.Task.Name,
		Statement: statement,
	}
}
