package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aurumlife/aurum/internal/cli/formatter"
	"github.com/aurumlife/aurum/internal/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newJournalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Keep a reflective journal with sentiment tracking",
	}

	cmd.AddCommand(
		newJournalAddCmd(app),
		newJournalListCmd(app),
		newJournalShowCmd(app),
		newJournalEditCmd(app),
		newJournalAnalyzeCmd(app),
		newJournalRemoveCmd(app),
		newJournalTrendsCmd(app),
	)

	return cmd
}

func newJournalAddCmd(app *App) *cobra.Command {
	var content, mood, tags string
	var skipAnalysis bool

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Write a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now := time.Now().UTC()

			if mood != "" && !domain.ValidMoods[mood] {
				return fmt.Errorf("invalid mood %q", mood)
			}

			e := &domain.JournalEntry{
				ID:        uuid.New().String(),
				Title:     args[0],
				Content:   content,
				Mood:      domain.Mood(mood),
				CreatedAt: now,
				UpdatedAt: now,
			}
			if tags != "" {
				for _, tag := range strings.Split(tags, ",") {
					if tag = strings.TrimSpace(tag); tag != "" {
						e.Tags = append(e.Tags, tag)
					}
				}
			}
			if err := app.Journal.Create(ctx, e); err != nil {
				return err
			}
			fmt.Printf("Saved entry %s [%s]\n", e.Title, formatter.ShortID(e.ID))

			if skipAnalysis {
				return nil
			}
			result, err := app.Sentiment.AnalyzeEntry(ctx, e.ID)
			if err != nil {
				return fmt.Errorf("entry saved, sentiment analysis failed: %w", err)
			}
			if result == nil {
				fmt.Println(formatter.Dim("Sentiment analysis skipped (AI quota exhausted)."))
				return nil
			}
			fmt.Printf("Sentiment: %s (score %+.2f)\n",
				formatter.SentimentStyle(result.Category).Render(string(result.Category)),
				result.Score)
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Entry body")
	cmd.Flags().StringVar(&mood, "mood", "", "Mood (optimistic, inspired, reflective, challenged, frustrated, anxious)")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")
	cmd.Flags().BoolVar(&skipAnalysis, "no-analyze", false, "Skip sentiment analysis")

	return cmd
}

func newJournalListCmd(app *App) *cobra.Command {
	var limit int
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Journal.List(context.Background(), limit, all)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No journal entries yet.")
				return nil
			}
			fmt.Println(formatter.FormatEntryList(entries))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show")
	cmd.Flags().BoolVar(&all, "all", false, "Include deleted entries")

	return cmd
}

func newJournalShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show REF",
		Short: "Show one entry with its sentiment detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEntryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			e, err := app.Journal.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatEntry(e))
			return nil
		},
	}
}

func newJournalEditCmd(app *App) *cobra.Command {
	var title, content, mood string
	var skipAnalysis bool

	cmd := &cobra.Command{
		Use:   "edit REF",
		Short: "Edit an entry and refresh its sentiment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEntryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			e, err := app.Journal.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("title") {
				e.Title = title
			}
			if cmd.Flags().Changed("content") {
				e.Content = content
			}
			if cmd.Flags().Changed("mood") {
				if mood != "" && !domain.ValidMoods[mood] {
					return fmt.Errorf("invalid mood %q", mood)
				}
				e.Mood = domain.Mood(mood)
			}
			if err := app.Journal.Update(ctx, e); err != nil {
				return err
			}
			fmt.Printf("Updated entry %s\n", e.Title)

			if skipAnalysis || !cmd.Flags().Changed("content") {
				return nil
			}
			result, err := app.Sentiment.AnalyzeEntry(ctx, e.ID)
			if err != nil {
				return fmt.Errorf("entry updated, sentiment analysis failed: %w", err)
			}
			if result == nil {
				fmt.Println(formatter.Dim("Sentiment analysis skipped (AI quota exhausted)."))
				return nil
			}
			fmt.Printf("Sentiment: %s (score %+.2f)\n",
				formatter.SentimentStyle(result.Category).Render(string(result.Category)),
				result.Score)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&content, "content", "", "New body")
	cmd.Flags().StringVar(&mood, "mood", "", "New mood")
	cmd.Flags().BoolVar(&skipAnalysis, "no-analyze", false, "Skip sentiment analysis")

	return cmd
}

func newJournalAnalyzeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze REF",
		Short: "Run (or rerun) sentiment analysis on an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEntryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			result, err := app.Sentiment.AnalyzeEntry(ctx, id)
			if err != nil {
				return err
			}
			if result == nil {
				fmt.Println(formatter.Dim("Sentiment analysis skipped (AI quota exhausted)."))
				return nil
			}
			fmt.Printf("Sentiment: %s (score %+.2f, confidence %.2f)\n",
				formatter.SentimentStyle(result.Category).Render(string(result.Category)),
				result.Score, result.Confidence)
			if result.Reasoning != "" {
				fmt.Println(formatter.Dim(result.Reasoning))
			}
			return nil
		},
	}
}

func newJournalRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove REF",
		Short: "Delete a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEntryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Journal.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Entry deleted.")
			return nil
		},
	}
}

func newJournalTrendsCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Show sentiment trends over the trailing window",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				days = app.Config.Journal.TrendDays
			}
			trends, err := app.Journal.Trends(context.Background(), days, time.Now().In(app.Location()))
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatTrends(trends))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Window in days (defaults to config)")

	return cmd
}
