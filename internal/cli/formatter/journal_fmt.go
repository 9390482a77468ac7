package formatter

import (
	"fmt"
	"strings"

	"github.com/aurumlife/aurum/internal/contract"
	"github.com/aurumlife/aurum/internal/domain"
)

// FormatEntryList renders journal entries newest-first.
func FormatEntryList(entries []*domain.JournalEntry) string {
	headers := []string{"ID", "DATE", "TITLE", "MOOD", "SENTIMENT"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		title := e.Title
		if title == "" {
			title = firstLine(e.Content)
		}
		sentiment := Dim("unanalyzed")
		if e.Sentiment != nil {
			sentiment = SentimentStyle(e.Sentiment.Category).Render(
				fmt.Sprintf("%s (%.2f)", e.Sentiment.Category, e.Sentiment.Score))
		}
		rows = append(rows, []string{
			Dim(ShortID(e.ID)),
			Dim(e.CreatedAt.Format("2006-01-02")),
			Bold(title),
			StylePurple.Render(string(e.Mood)),
			sentiment,
		})
	}
	return RenderTable(headers, rows)
}

// FormatEntry renders one full journal entry.
func FormatEntry(e *domain.JournalEntry) string {
	var b strings.Builder
	title := e.Title
	if title == "" {
		title = "(untitled)"
	}
	b.WriteString(Header(title))
	b.WriteString("\n")
	b.WriteString(Dim(e.CreatedAt.Format("Mon, 02 Jan 2006 15:04")) + "\n\n")
	b.WriteString(e.Content + "\n")
	if e.Mood != "" {
		b.WriteString("\n" + Dim("mood: ") + StylePurple.Render(string(e.Mood)) + "\n")
	}
	if len(e.Tags) > 0 {
		b.WriteString(Dim("tags: ") + StyleBlue.Render(strings.Join(e.Tags, ", ")) + "\n")
	}
	if e.Sentiment != nil {
		s := e.Sentiment
		b.WriteString("\n" + Dim("sentiment: ") +
			SentimentStyle(s.Category).Render(fmt.Sprintf("%s (%.2f, confidence %.2f)", s.Category, s.Score, s.Confidence)) + "\n")
		if len(s.Keywords) > 0 {
			b.WriteString(Dim("keywords: ") + strings.Join(s.Keywords, ", ") + "\n")
		}
		if s.Reasoning != "" {
			b.WriteString(Dim(s.Reasoning) + "\n")
		}
	}
	return b.String()
}

// FormatTrends renders the sentiment trend summary.
func FormatTrends(t *contract.SentimentTrends) string {
	var b strings.Builder
	b.WriteString(Header("Sentiment trends"))
	b.WriteString("\n")

	if t.Total == 0 {
		b.WriteString(Dim("No journal entries in this window.") + "\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Wellness %s   Streak %s   Analyzed %s\n\n",
		RenderProgress(t.WellnessScore, 10),
		Bold(fmt.Sprintf("%d day(s)", t.StreakDays)),
		Dim(fmt.Sprintf("%d/%d", t.Analyzed, t.Total))))

	for _, p := range t.Points {
		marker := StyleYellow.Render("·")
		switch {
		case p.AvgScore >= 0.2:
			marker = StyleGreen.Render("▲")
		case p.AvgScore <= -0.2:
			marker = StyleRed.Render("▼")
		}
		b.WriteString(fmt.Sprintf("  %s %s  %+.2f  %s\n",
			Dim(p.Day.Format("Jan 02")), marker, p.AvgScore,
			Dim(fmt.Sprintf("%d entr%s", p.Entries, pluralY(p.Entries)))))
	}
	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 40 {
		return s[:40] + "…"
	}
	return s
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
