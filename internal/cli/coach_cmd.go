package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aurumlife/aurum/internal/cli/formatter"
	"github.com/aurumlife/aurum/internal/coach"
	"github.com/spf13/cobra"
)

func newCoachCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coach",
		Short: "AI coaching: priorities, why statements, project breakdown",
	}

	cmd.AddCommand(
		newCoachPrioritiesCmd(app),
		newCoachWhyCmd(app),
		newCoachDecomposeCmd(app),
		newCoachQuotaCmd(app),
	)

	return cmd
}

func newCoachPrioritiesCmd(app *App) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "priorities",
		Short: "Show the coached top priorities with reasoning",
		RunE: func(cmd *cobra.Command, args []string) error {
			if top <= 0 {
				top = app.Config.Today.CoachTop
			}
			if top <= 0 {
				top = coach.DefaultCoachingTop
			}
			scored, err := app.Coach.TodayPriorities(context.Background(), top, time.Now().UTC())
			if err != nil {
				return err
			}
			if len(scored) == 0 {
				fmt.Println("No workable tasks to coach. Add some or clear a dependency.")
				return nil
			}

			fmt.Println(formatter.Header("Coached priorities"))
			for i, st := range scored {
				source := formatter.Dim("rules")
				if st.AIPowered {
					source = formatter.StylePurple.Render("ai")
				}
				fmt.Printf("%s %s %s %s\n",
					formatter.Dim(fmt.Sprintf("%d.", i+1)),
					formatter.Bold(st.Candidate.Task.Name),
					formatter.Dim(fmt.Sprintf("(%d pts)", st.Breakdown.Total)),
					source)
				if st.Coaching != "" {
					fmt.Printf("   %s\n", st.Coaching)
				} else if len(st.Breakdown.Reasons) > 0 {
					fmt.Printf("   %s\n", formatter.Dim(strings.Join(st.Breakdown.Reasons, ". ")))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 0, "How many tasks to coach (defaults to config)")

	return cmd
}

func newCoachWhyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "why [REF...]",
		Short: "Explain why tasks matter within the hierarchy",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskIDs := make([]string, 0, len(args))
			for _, ref := range args {
				id, err := resolveTaskID(ctx, app, ref)
				if err != nil {
					return err
				}
				taskIDs = append(taskIDs, id)
			}
			statements, err := app.Coach.WhyStatements(ctx, taskIDs)
			if err != nil {
				return err
			}
			if len(statements) == 0 {
				fmt.Println("No active tasks to explain.")
				return nil
			}
			fmt.Println(formatter.FormatWhyStatements(statements))
			return nil
		},
	}
	return cmd
}

func newCoachDecomposeCmd(app *App) *cobra.Command {
	var templateType string
	var create bool

	cmd := &cobra.Command{
		Use:   "decompose PROJECT",
		Short: "Suggest starter tasks for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			project, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			suggestions, err := app.Coach.SuggestProjectTasks(ctx, projectID, templateType)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSuggestions(project.Name, suggestions))

			if !create {
				fmt.Println(formatter.Dim("Rerun with --create to add these tasks."))
				return nil
			}
			created, err := app.Coach.CreateSuggestedTasks(ctx, projectID, suggestions)
			if err != nil {
				return err
			}
			fmt.Printf("Created %d task(s) in %s.\n", len(created), project.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&templateType, "type", "general", "Template type (learning, health, career, personal, work, general)")
	cmd.Flags().BoolVar(&create, "create", false, "Create the suggested tasks")

	return cmd
}

func newCoachQuotaCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show AI quota usage for the month",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := app.Quota.Status(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatQuota(status))
			return nil
		},
	}
}
