package formatter

import (
	"fmt"
	"strings"

	"github.com/aurumlife/aurum/internal/domain"
)

// FormatPillarList renders the pillar table.
func FormatPillarList(pillars []*domain.Pillar) string {
	headers := []string{"ID", "NAME", "TIME %", "CREATED"}
	rows := make([][]string, 0, len(pillars))
	for _, p := range pillars {
		name := Bold(p.Name)
		if p.ArchivedAt != nil {
			name += " " + Dim("(archived)")
		}
		rows = append(rows, []string{
			Dim(ShortID(p.ID)),
			name,
			fmt.Sprintf("%.0f", p.TimeAllocationPct),
			Dim(p.CreatedAt.Format("2006-01-02")),
		})
	}
	return RenderTable(headers, rows)
}

// FormatAreaList renders areas with their importance markers.
func FormatAreaList(areas []*domain.Area) string {
	headers := []string{"ID", "NAME", "IMPORTANCE", "CREATED"}
	rows := make([][]string, 0, len(areas))
	for _, a := range areas {
		name := Bold(a.Name)
		if a.ArchivedAt != nil {
			name += " " + Dim("(archived)")
		}
		rows = append(rows, []string{
			Dim(ShortID(a.ID)),
			name,
			importanceStars(a.Importance),
			Dim(a.CreatedAt.Format("2006-01-02")),
		})
	}
	return RenderTable(headers, rows)
}

// FormatProjectList renders the project table.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "NAME", "STATUS", "PRIORITY", "IMPORTANCE", "DEADLINE"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		name := Bold(p.Name)
		if p.ArchivedAt != nil {
			name += " " + Dim("(archived)")
		}
		deadline := Dim("--")
		if p.Deadline != nil {
			deadline = RelativeDateStyled(*p.Deadline)
		}
		rows = append(rows, []string{
			Dim(ShortID(p.ID)),
			name,
			projectStatusPill(p.Status),
			PriorityStyle(p.Priority).Render(string(p.Priority)),
			importanceStars(p.Importance),
			deadline,
		})
	}
	return RenderTable(headers, rows)
}

// FormatTaskList renders tasks within a project.
func FormatTaskList(tasks []*domain.Task) string {
	headers := []string{"ID", "NAME", "PRIORITY", "DUE", "SCORE", "STATE"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		due := Dim("--")
		if t.DueDate != nil {
			due = RelativeDateStyled(*t.DueDate)
		}
		state := StyleYellow.Render("todo")
		if t.Completed {
			state = StyleGreen.Render("done")
		} else if len(t.DependencyIDs) > 0 {
			state = StyleYellow.Render(fmt.Sprintf("todo (%d deps)", len(t.DependencyIDs)))
		}
		rows = append(rows, []string{
			Dim(ShortID(t.ID)),
			Bold(t.Name),
			PriorityStyle(t.Priority).Render(string(t.Priority)),
			due,
			fmt.Sprintf("%5.1f", t.CurrentScore),
			state,
		})
	}
	return RenderTable(headers, rows)
}

func projectStatusPill(s domain.ProjectStatus) string {
	switch s {
	case domain.ProjectCompleted:
		return StyleGreen.Render(string(s))
	case domain.ProjectInProgress:
		return StyleBlue.Render(string(s))
	case domain.ProjectOnHold:
		return StyleYellow.Render(string(s))
	default:
		return Dim(string(s))
	}
}

func importanceStars(n int) string {
	if n <= 0 {
		return Dim("--")
	}
	if n > 5 {
		n = 5
	}
	return StyleYellow.Render(strings.Repeat("★", n)) + Dim(strings.Repeat("☆", 5-n))
}
