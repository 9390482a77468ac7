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

func parsePriority(s string) (domain.Priority, error) {
	switch domain.Priority(s) {
	case domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow:
		return domain.Priority(s), nil
	}
	return "", fmt.Errorf("invalid priority %q (use high, medium or low)", s)
}

func parseProjectStatus(s string) (domain.ProjectStatus, error) {
	switch domain.ProjectStatus(s) {
	case domain.ProjectNotStarted, domain.ProjectInProgress,
		domain.ProjectCompleted, domain.ProjectOnHold:
		return domain.ProjectStatus(s), nil
	}
	return "", fmt.Errorf("invalid project status %q", s)
}

func parseDueDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return &t, nil
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectUpdateCmd(app),
		newProjectArchiveCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var areaRef, desc, priority, deadline string
	var importance int

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now := time.Now().UTC()

			areaID, err := resolveAreaID(ctx, app, areaRef)
			if err != nil {
				return err
			}
			prio, err := parsePriority(priority)
			if err != nil {
				return err
			}
			due, err := parseDueDate(deadline)
			if err != nil {
				return err
			}

			p := &domain.Project{
				ID:          uuid.New().String(),
				AreaID:      areaID,
				Name:        args[0],
				Description: desc,
				Status:      domain.ProjectNotStarted,
				Priority:    prio,
				Importance:  importance,
				Deadline:    due,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := app.Projects.Create(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Created project %s [%s]\n", p.Name, formatter.ShortID(p.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&areaRef, "area", "", "Parent area (ID or name, required)")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority (high, medium, low)")
	cmd.Flags().IntVar(&importance, "importance", 3, "Importance 1-5")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("area")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var all bool
	var areaRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var projects []*domain.Project
			var err error
			if areaRef != "" {
				areaID, rerr := resolveAreaID(ctx, app, areaRef)
				if rerr != nil {
					return rerr
				}
				projects, err = app.Projects.ListByArea(ctx, areaID)
			} else {
				projects, err = app.Projects.List(ctx, all)
			}
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}
			fmt.Println(formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived projects")
	cmd.Flags().StringVar(&areaRef, "area", "", "Filter by area")

	return cmd
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var name, desc, priority, status, deadline string
	var importance int

	cmd := &cobra.Command{
		Use:   "update REF",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("desc") {
				p.Description = desc
			}
			if cmd.Flags().Changed("priority") {
				prio, perr := parsePriority(priority)
				if perr != nil {
					return perr
				}
				p.Priority = prio
			}
			if cmd.Flags().Changed("status") {
				st, serr := parseProjectStatus(status)
				if serr != nil {
					return serr
				}
				p.Status = st
			}
			if cmd.Flags().Changed("importance") {
				p.Importance = importance
			}
			if cmd.Flags().Changed("deadline") {
				due, derr := parseDueDate(deadline)
				if derr != nil {
					return derr
				}
				p.Deadline = due
			}
			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Updated project %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&desc, "desc", "", "New description")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (high, medium, low)")
	cmd.Flags().StringVar(&status, "status", "", "Status (not_started, in_progress, completed, on_hold)")
	cmd.Flags().IntVar(&importance, "importance", 0, "Importance 1-5")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD, empty clears)")

	return cmd
}

func newProjectArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive REF",
		Short: "Archive a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Archive(ctx, id); err != nil {
				return err
			}
			fmt.Println("Project archived.")
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove REF",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, id, force); err != nil {
				return err
			}
			fmt.Println("Project deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete even when tasks exist")

	return cmd
}
