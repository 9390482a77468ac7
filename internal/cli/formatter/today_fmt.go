package formatter

import (
	"fmt"
	"strings"

	"github.com/aurumlife/aurum/internal/contract"
	"github.com/aurumlife/aurum/internal/domain"
)

// FormatToday renders the ranked Today view with stats and optional
// coaching lines.
func FormatToday(resp *contract.TodayResponse) string {
	var b strings.Builder

	b.WriteString(Header("Today"))
	b.WriteString("\n")

	if len(resp.Tasks) == 0 {
		b.WriteString(Dim("Nothing due. Enjoy the slack or pull something forward.") + "\n")
		return b.String()
	}

	headers := []string{"#", "TASK", "PROJECT", "SCORE", "PRIORITY", "DUE"}
	rows := make([][]string, 0, len(resp.Tasks))
	for i, t := range resp.Tasks {
		name := Bold(t.Name)
		if t.Blocked {
			name += " " + StyleRed.Render("[blocked]")
		}

		due := Dim("--")
		if t.DueDate != nil {
			due = RelativeDateStyled(*t.DueDate)
		}

		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			name,
			StyleBlue.Render(t.ProjectName),
			fmt.Sprintf("%5.1f", t.Score),
			PriorityStyle(domain.Priority(t.Priority)).Render(t.Priority),
			due,
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")

	for i, t := range resp.Tasks {
		if t.Coaching == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(StylePurple.Render(fmt.Sprintf("coach › %s", resp.Tasks[i].Name)) + "\n")
		b.WriteString("  " + StyleFg.Render(t.Coaching) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s of %s done today (%.0f%%)\n",
		StyleGreen.Render(fmt.Sprintf("%d", resp.Stats.CompletedToday)),
		Bold(fmt.Sprintf("%d", resp.Stats.TotalToday)),
		resp.Stats.CompletionRate))

	return b.String()
}

// FormatTaskReasons renders the score factor list for one task.
func FormatTaskReasons(t contract.TodayTask) string {
	var b strings.Builder
	b.WriteString(Bold(t.Name) + " " + Dim(fmt.Sprintf("(score %.1f)", t.Score)) + "\n")
	for _, r := range t.Reasons {
		delta := fmt.Sprintf("%+.1f", r.Delta)
		style := StyleGreen
		if r.Delta < 0 {
			style = StyleRed
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", style.Render(delta), r.Message))
	}
	return b.String()
}
