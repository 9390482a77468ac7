package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/aurumlife/aurum/internal/cli/formatter"
	"github.com/aurumlife/aurum/internal/domain"
	"github.com/spf13/cobra"
)

func newSearchCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Semantic search across pillars, projects, tasks and journal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domains, err := parseDomainFilter(cmd.Flag("domain").Value.String())
			if err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetInt("limit")

			items, err := app.Context.RelevantContext(
				context.Background(), strings.Join(args, " "), domains, limit)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatContextItems(items))
			return nil
		},
	}

	cmd.Flags().String("domain", "", "Restrict to domains (comma-separated: pillar, area, project, task, journal_entry)")
	cmd.Flags().Int("limit", 0, "Maximum results")

	cmd.AddCommand(
		newSearchIndexCmd(app),
		newSearchRememberCmd(app),
	)

	return cmd
}

func parseDomainFilter(raw string) ([]domain.EmbeddingDomain, error) {
	if raw == "" {
		return nil, nil
	}
	valid := map[domain.EmbeddingDomain]bool{
		domain.DomainPillar:       true,
		domain.DomainArea:         true,
		domain.DomainProject:      true,
		domain.DomainTask:         true,
		domain.DomainJournalEntry: true,
	}
	var domains []domain.EmbeddingDomain
	for _, part := range strings.Split(raw, ",") {
		d := domain.EmbeddingDomain(strings.TrimSpace(part))
		if !valid[d] {
			return nil, fmt.Errorf("invalid domain %q", part)
		}
		domains = append(domains, d)
	}
	return domains, nil
}

func newSearchIndexCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Rebuild the embedding index from current data",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			indexed := 0

			pillars, err := app.Pillars.List(ctx, false)
			if err != nil {
				return err
			}
			for _, p := range pillars {
				snippet := p.Name
				if p.Description != "" {
					snippet += ": " + p.Description
				}
				if err := app.Context.IndexEntity(ctx, domain.DomainPillar, p.ID, snippet); err != nil {
					return err
				}
				indexed++
			}

			areas, err := app.Areas.List(ctx, false)
			if err != nil {
				return err
			}
			for _, a := range areas {
				snippet := a.Name
				if a.Description != "" {
					snippet += ": " + a.Description
				}
				if err := app.Context.IndexEntity(ctx, domain.DomainArea, a.ID, snippet); err != nil {
					return err
				}
				indexed++
			}

			projects, err := app.Projects.List(ctx, false)
			if err != nil {
				return err
			}
			for _, p := range projects {
				snippet := p.Name
				if p.Description != "" {
					snippet += ": " + p.Description
				}
				if err := app.Context.IndexEntity(ctx, domain.DomainProject, p.ID, snippet); err != nil {
					return err
				}
				indexed++

				tasks, terr := app.Tasks.ListByProject(ctx, p.ID)
				if terr != nil {
					return terr
				}
				for _, t := range tasks {
					snippet := t.Name
					if t.Description != "" {
						snippet += ": " + t.Description
					}
					if err := app.Context.IndexEntity(ctx, domain.DomainTask, t.ID, snippet); err != nil {
						return err
					}
					indexed++
				}
			}

			entries, err := app.Journal.List(ctx, 0, false)
			if err != nil {
				return err
			}
			for _, e := range entries {
				snippet := e.Title
				if e.Content != "" {
					snippet += ": " + e.Content
				}
				if err := app.Context.IndexEntity(ctx, domain.DomainJournalEntry, e.ID, snippet); err != nil {
					return err
				}
				indexed++
			}

			fmt.Printf("Indexed %d item(s).\n", indexed)
			return nil
		},
	}
}

func newSearchRememberCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remember TEXT",
		Short: "Store a note in conversation memory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Context.StoreConversation(context.Background(), strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Println("Remembered.")
			return nil
		},
	}
}
