package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/aurumlife/aurum/internal/cli/formatter"
	"github.com/aurumlife/aurum/internal/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskUpdateCmd(app),
		newTaskCompleteCmd(app),
		newTaskReopenCmd(app),
		newTaskDepsCmd(app),
		newTaskRescoreCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var projectRef, desc, priority, due string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now := time.Now().UTC()

			projectID, err := resolveProjectID(ctx, app, projectRef)
			if err != nil {
				return err
			}
			prio, err := parsePriority(priority)
			if err != nil {
				return err
			}
			dueDate, err := parseDueDate(due)
			if err != nil {
				return err
			}

			t := &domain.Task{
				ID:          uuid.New().String(),
				ProjectID:   projectID,
				Name:        args[0],
				Description: desc,
				Status:      domain.TaskTodo,
				Priority:    prio,
				DueDate:     dueDate,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := app.Tasks.Create(ctx, t); err != nil {
				return err
			}
			fmt.Printf("Created task %s [%s]\n", t.Name, formatter.ShortID(t.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectRef, "project", "", "Parent project (ID or name, required)")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority (high, medium, low)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var projectRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, projectRef)
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks in this project.")
				return nil
			}
			fmt.Println(formatter.FormatTaskList(tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectRef, "project", "", "Project (ID or name, required)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var name, desc, priority, due string
	var progress int

	cmd := &cobra.Command{
		Use:   "update REF",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				t.Name = name
			}
			if cmd.Flags().Changed("desc") {
				t.Description = desc
			}
			if cmd.Flags().Changed("priority") {
				prio, perr := parsePriority(priority)
				if perr != nil {
					return perr
				}
				t.Priority = prio
			}
			if cmd.Flags().Changed("due") {
				dueDate, derr := parseDueDate(due)
				if derr != nil {
					return derr
				}
				t.DueDate = dueDate
			}
			if cmd.Flags().Changed("progress") {
				t.ProgressPct = progress
			}
			if err := app.Tasks.Update(ctx, t); err != nil {
				return err
			}
			fmt.Printf("Updated task %s\n", t.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&desc, "desc", "", "New description")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (high, medium, low)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD, empty clears)")
	cmd.Flags().IntVar(&progress, "progress", 0, "Progress percent (0-100)")

	return cmd
}

func newTaskCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete REF",
		Short: "Complete a task and earn alignment points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			result, err := app.Tasks.Complete(ctx, id)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatPoints(result))
			return nil
		},
	}
}

func newTaskReopenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen REF",
		Short: "Reopen a completed task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Reopen(ctx, id); err != nil {
				return err
			}
			fmt.Println("Task reopened. Earned points stay recorded.")
			return nil
		},
	}
}

func newTaskDepsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps REF [DEP...]",
		Short: "Set task dependencies (no DEP arguments clears them)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			depIDs := make([]string, 0, len(args)-1)
			for _, ref := range args[1:] {
				depID, derr := resolveTaskID(ctx, app, ref)
				if derr != nil {
					return derr
				}
				depIDs = append(depIDs, depID)
			}
			if err := app.Tasks.SetDependencies(ctx, id, depIDs); err != nil {
				return err
			}
			if len(depIDs) == 0 {
				fmt.Println("Dependencies cleared.")
			} else {
				fmt.Printf("Task now depends on %d task(s).\n", len(depIDs))
			}
			return nil
		},
	}
	return cmd
}

func newTaskRescoreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rescore",
		Short: "Recalculate cached priority scores for all active tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := app.Tasks.RecalculateScores(context.Background(), time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatRescore(updated))
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove REF",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Task deleted.")
			return nil
		},
	}
}
