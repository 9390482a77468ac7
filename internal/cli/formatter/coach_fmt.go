package formatter

import (
	"fmt"
	"strings"

	"github.com/aurumlife/aurum/internal/coach"
	"github.com/aurumlife/aurum/internal/images"
	"github.com/aurumlife/aurum/internal/rag"
)

// FormatWhyStatements renders the contextual why list.
func FormatWhyStatements(statements []coach.WhyStatement) string {
	var b strings.Builder
	b.WriteString(Header("Why these tasks"))
	b.WriteString("\n")
	for _, s := range statements {
		b.WriteString(Bold(s.TaskName) + " " + Dim(ShortID(s.TaskID)) + "\n")
		b.WriteString("  " + s.Statement + "\n")
	}
	return b.String()
}

// FormatSuggestions renders decomposition suggestions.
func FormatSuggestions(projectName string, suggestions []coach.SuggestedTask) string {
	var b strings.Builder
	b.WriteString(Header("Suggested tasks for " + projectName))
	b.WriteString("\n")
	for _, s := range suggestions {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			Dim(fmt.Sprintf("%d.", s.Sequence)),
			Bold(s.Name),
			PriorityStyle(s.Priority).Render(string(s.Priority))))
	}
	return b.String()
}

// FormatContextItems renders semantic search results.
func FormatContextItems(items []rag.ContextItem) string {
	if len(items) == 0 {
		return Dim("No matching context found.")
	}
	var b strings.Builder
	b.WriteString(Header("Relevant context"))
	b.WriteString("\n")
	for _, item := range items {
		source := StyleBlue.Render(string(item.Domain))
		if item.Source == "conversation" {
			source = StylePurple.Render("conversation")
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			Dim(fmt.Sprintf("%.3f", item.Similarity)), source, item.Snippet))
	}
	return b.String()
}

// FormatImageResult summarizes what image processing produced.
func FormatImageResult(result *images.Result) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Processed %s (%dx%d)\n",
		Bold(result.Hash), result.Width, result.Height))
	for _, v := range result.Variants {
		b.WriteString(fmt.Sprintf("  %s %s  %dx%d  %s\n",
			StyleBlue.Render(fmt.Sprintf("%-9s", v.Preset)),
			Dim(fmt.Sprintf("%-4s", v.Format)),
			v.Width, v.Height,
			Dim(fmt.Sprintf("%d bytes", len(v.Data)))))
	}
	b.WriteString(Dim(fmt.Sprintf("blur placeholder: %d chars inline", len(result.BlurPlaceholder))) + "\n")
	return b.String()
}
