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

func newAreaCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "area",
		Short: "Manage focus areas",
	}

	cmd.AddCommand(
		newAreaAddCmd(app),
		newAreaListCmd(app),
		newAreaUpdateCmd(app),
		newAreaArchiveCmd(app),
		newAreaRemoveCmd(app),
	)

	return cmd
}

func newAreaAddCmd(app *App) *cobra.Command {
	var pillarRef, desc string
	var importance int

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create an area",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now := time.Now().UTC()

			a := &domain.Area{
				ID:          uuid.New().String(),
				Name:        args[0],
				Description: desc,
				Importance:  importance,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if pillarRef != "" {
				pillarID, err := resolvePillarID(ctx, app, pillarRef)
				if err != nil {
					return err
				}
				a.PillarID = &pillarID
			}
			if err := app.Areas.Create(ctx, a); err != nil {
				return err
			}
			fmt.Printf("Created area %s [%s]\n", a.Name, formatter.ShortID(a.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&pillarRef, "pillar", "", "Parent pillar (ID or name)")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().IntVar(&importance, "importance", 3, "Importance 1-5")

	return cmd
}

func newAreaListCmd(app *App) *cobra.Command {
	var all bool
	var pillarRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List areas",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var areas []*domain.Area
			var err error
			if pillarRef != "" {
				pillarID, rerr := resolvePillarID(ctx, app, pillarRef)
				if rerr != nil {
					return rerr
				}
				areas, err = app.Areas.ListByPillar(ctx, pillarID)
			} else {
				areas, err = app.Areas.List(ctx, all)
			}
			if err != nil {
				return err
			}
			if len(areas) == 0 {
				fmt.Println("No areas found.")
				return nil
			}
			fmt.Println(formatter.FormatAreaList(areas))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived areas")
	cmd.Flags().StringVar(&pillarRef, "pillar", "", "Filter by pillar")

	return cmd
}

func newAreaUpdateCmd(app *App) *cobra.Command {
	var name, desc string
	var importance int

	cmd := &cobra.Command{
		Use:   "update REF",
		Short: "Update an area",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveAreaID(ctx, app, args[0])
			if err != nil {
				return err
			}
			a, err := app.Areas.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				a.Name = name
			}
			if cmd.Flags().Changed("desc") {
				a.Description = desc
			}
			if cmd.Flags().Changed("importance") {
				a.Importance = importance
			}
			if err := app.Areas.Update(ctx, a); err != nil {
				return err
			}
			fmt.Printf("Updated area %s\n", a.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&desc, "desc", "", "New description")
	cmd.Flags().IntVar(&importance, "importance", 0, "Importance 1-5")

	return cmd
}

func newAreaArchiveCmd(app *App) *cobra.Command {
	var unarchive bool

	cmd := &cobra.Command{
		Use:   "archive REF",
		Short: "Archive (or unarchive) an area",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveAreaID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if unarchive {
				if err := app.Areas.Unarchive(ctx, id); err != nil {
					return err
				}
				fmt.Println("Area unarchived.")
				return nil
			}
			if err := app.Areas.Archive(ctx, id); err != nil {
				return err
			}
			fmt.Println("Area archived.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&unarchive, "undo", false, "Unarchive instead")

	return cmd
}

func newAreaRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove REF",
		Short: "Delete an area",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveAreaID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Areas.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Area deleted.")
			return nil
		},
	}
}
