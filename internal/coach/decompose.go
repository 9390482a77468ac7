package coach

import (
	"fmt"
	"strings"

	"github.com/aurumlife/aurum/internal/domain"
)

// maxSuggestedTasks caps how many starter tasks a decomposition returns.
const maxSuggestedTasks = 5

// SuggestedTask is one starter task for a freshly created project.
type SuggestedTask struct {
	Name     string
	Priority domain.Priority
	Sequence int
}

var decompositionTemplates = map[string][]SuggestedTask{
	"learning": {
		{Name: "Research learning resources and materials", Priority: domain.PriorityHigh},
		{Name: "Create a structured study schedule", Priority: domain.PriorityHigh},
		{Name: "Complete first learning module or chapter", Priority: domain.PriorityMedium},
		{Name: "Set up progress tracking system", Priority: domain.PriorityMedium},
		{Name: "Schedule regular review sessions", Priority: domain.PriorityLow},
	},
	"health": {
		{Name: "Research and define specific health goals", Priority: domain.PriorityHigh},
		{Name: "Create a baseline measurement or assessment", Priority: domain.PriorityHigh},
		{Name: "Develop a daily or weekly routine", Priority: domain.PriorityHigh},
		{Name: "Set up tracking tools or apps", Priority: domain.PriorityMedium},
		{Name: "Schedule regular progress check-ins", Priority: domain.PriorityMedium},
	},
	"career": {
		{Name: "Define specific career objectives and outcomes", Priority: domain.PriorityHigh},
		{Name: "Research requirements and necessary skills", Priority: domain.PriorityHigh},
		{Name: "Create action plan with key milestones", Priority: domain.PriorityHigh},
		{Name: "Identify networking opportunities", Priority: domain.PriorityMedium},
		{Name: "Set up progress tracking and review schedule", Priority: domain.PriorityMedium},
	},
	"personal": {
		{Name: "Clarify the specific outcome you want", Priority: domain.PriorityHigh},
		{Name: "Break down into smaller manageable steps", Priority: domain.PriorityHigh},
		{Name: "Set realistic timeline and deadlines", Priority: domain.PriorityHigh},
		{Name: "Identify potential obstacles and solutions", Priority: domain.PriorityMedium},
		{Name: "Create accountability system", Priority: domain.PriorityMedium},
	},
	"work": {
		{Name: "Define project requirements and scope", Priority: domain.PriorityHigh},
		{Name: "Create detailed project timeline", Priority: domain.PriorityHigh},
		{Name: "Identify key stakeholders and communication plan", Priority: domain.PriorityHigh},
		{Name: "Set up project tracking and status reporting", Priority: domain.PriorityMedium},
		{Name: "Plan regular milestone reviews", Priority: domain.PriorityMedium},
	},
	"general": {
		{Name: "Research and gather necessary information", Priority: domain.PriorityHigh},
		{Name: "Create a detailed action plan", Priority: domain.PriorityHigh},
		{Name: "Set clear milestones and deadlines", Priority: domain.PriorityMedium},
		{Name: "Identify required resources and tools", Priority: domain.PriorityMedium},
		{Name: "Set up progress tracking system", Priority: domain.PriorityLow},
	},
}

// TemplateTypes lists the recognized decomposition template names.
func TemplateTypes() []string {
	return []string{"learning", "health", "career", "personal", "work", "general"}
}

// SuggestTasks returns starter tasks for a project. Unknown template types
// fall back to the general template. The first task gets customized with the
// project name so the list does not read fully canned.
func SuggestTasks(templateType, projectName string) []SuggestedTask {
	template, ok := decompositionTemplates[strings.ToLower(templateType)]
	if !ok {
		template = decompositionTemplates["general"]
	}

	out := make([]SuggestedTask, 0, maxSuggestedTasks)
	for i, t := range template {
		if i >= maxSuggestedTasks {
			break
		}
		task := t
		task.Sequence = i + 1
		if i == 0 && projectName != "" {
			lower := strings.ToLower(task.Name)
			switch {
			case strings.Contains(lower, "research"):
				task.Name = fmt.Sprintf("Research everything needed for '%s'", projectName)
			case strings.Contains(lower, "define") || strings.Contains(lower, "clarify"):
				task.Name = fmt.Sprintf("Define specific goals and outcomes for '%s'", projectName)
			}
		}
		out = append(out, task)
	}
	return out
}
