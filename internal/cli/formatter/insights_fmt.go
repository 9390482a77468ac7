package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aurumlife/aurum/internal/contract"
	"github.com/aurumlife/aurum/internal/domain"
)

// FormatInsights renders the alignment snapshot.
func FormatInsights(resp *contract.InsightsResponse) string {
	var b strings.Builder

	b.WriteString(Header("Insights"))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Lifetime: %s tasks, %s projects completed\n",
		Bold(fmt.Sprintf("%d", resp.Lifetime.CompletedTasks)),
		Bold(fmt.Sprintf("%d", resp.Lifetime.CompletedProjects))))
	b.WriteString(fmt.Sprintf("Alignment: %s this week, %s this month\n\n",
		StyleGreen.Render(fmt.Sprintf("%d pts", resp.RollingWeekly)),
		StyleGreen.Render(fmt.Sprintf("%d pts", resp.Monthly))))

	if len(resp.Distribution) == 0 {
		b.WriteString(Dim("Complete some tasks to see the pillar distribution.") + "\n")
		return b.String()
	}

	b.WriteString(Bold("Pillar distribution") + "\n")
	for _, share := range resp.Distribution {
		b.WriteString(fmt.Sprintf("  %-20s %s %s\n",
			share.PillarName,
			RenderProgress(share.Percentage, 15),
			Dim(fmt.Sprintf("%d task(s)", share.TaskCount))))
	}
	return b.String()
}

// FormatDashboard renders the alignment score dashboard.
func FormatDashboard(d *contract.AlignmentDashboard) string {
	var b strings.Builder
	b.WriteString(Header("Alignment"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Rolling 7 days: %s\n", Bold(fmt.Sprintf("%d pts", d.RollingWeekly))))
	b.WriteString(fmt.Sprintf("This month:     %s\n", Bold(fmt.Sprintf("%d pts", d.Monthly))))
	if d.HasGoal && d.MonthlyGoal != nil {
		b.WriteString(fmt.Sprintf("Monthly goal:   %d pts %s\n", *d.MonthlyGoal, RenderProgress(d.ProgressPct, 15)))
	} else {
		b.WriteString(Dim("No monthly goal set. Try: aurum align goal 300") + "\n")
	}
	return b.String()
}

// FormatPoints renders a completion's points breakdown.
func FormatPoints(result *contract.CompletionResult) string {
	var b strings.Builder
	if result.AlreadyRecorded {
		b.WriteString(Dim("Task completed (points were already recorded earlier).") + "\n")
		return b.String()
	}
	p := result.Points
	b.WriteString(fmt.Sprintf("Completed! %s\n", StyleGreen.Render(fmt.Sprintf("+%d alignment pts", p.Total()))))
	b.WriteString(Dim(fmt.Sprintf("  base %d", p.Base)))
	if p.TaskPriority > 0 {
		b.WriteString(Dim(fmt.Sprintf(" · high task +%d", p.TaskPriority)))
	}
	if p.ProjectPriority > 0 {
		b.WriteString(Dim(fmt.Sprintf(" · high project +%d", p.ProjectPriority)))
	}
	if p.AreaImportance > 0 {
		b.WriteString(Dim(fmt.Sprintf(" · key area +%d", p.AreaImportance)))
	}
	b.WriteString("\n")
	return b.String()
}

// FormatQuota renders the AI quota status.
func FormatQuota(q *contract.QuotaStatus) string {
	var b strings.Builder
	b.WriteString(Header("AI quota"))
	b.WriteString("\n")

	used := float64(q.Used) / float64(q.Limit) * 100
	b.WriteString(fmt.Sprintf("Tier %s: %d of %d used %s\n",
		StylePurple.Render(string(q.Tier)), q.Used, q.Limit, RenderProgress(used, 15)))

	if len(q.Breakdown) > 0 {
		features := make([]domain.AIFeature, 0, len(q.Breakdown))
		for f := range q.Breakdown {
			features = append(features, f)
		}
		sort.Slice(features, func(i, j int) bool { return features[i] < features[j] })
		for _, f := range features {
			b.WriteString(fmt.Sprintf("  %-22s %d\n", string(f), q.Breakdown[f]))
		}
	}
	return b.String()
}

// FormatRescore reports a score recalculation.
func FormatRescore(updated int) string {
	return fmt.Sprintf("Recalculated scores for %s task(s).", Bold(fmt.Sprintf("%d", updated)))
}
