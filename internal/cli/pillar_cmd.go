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

func newPillarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pillar",
		Short: "Manage life pillars",
	}

	cmd.AddCommand(
		newPillarAddCmd(app),
		newPillarListCmd(app),
		newPillarUpdateCmd(app),
		newPillarArchiveCmd(app),
		newPillarRemoveCmd(app),
	)

	return cmd
}

func newPillarAddCmd(app *App) *cobra.Command {
	var desc, icon, color string
	var timePct float64

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a pillar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now().UTC()
			p := &domain.Pillar{
				ID:                uuid.New().String(),
				Name:              args[0],
				Description:       desc,
				Icon:              icon,
				Color:             color,
				TimeAllocationPct: timePct,
				CreatedAt:         now,
				UpdatedAt:         now,
			}
			if err := app.Pillars.Create(context.Background(), p); err != nil {
				return err
			}
			fmt.Printf("Created pillar %s [%s]\n", p.Name, formatter.ShortID(p.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().StringVar(&icon, "icon", "", "Display icon")
	cmd.Flags().StringVar(&color, "color", "", "Display color (hex)")
	cmd.Flags().Float64Var(&timePct, "time", 0, "Ideal time allocation percent (0-100)")

	return cmd
}

func newPillarListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pillars",
		RunE: func(cmd *cobra.Command, args []string) error {
			pillars, err := app.Pillars.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(pillars) == 0 {
				fmt.Println("No pillars yet. Try: aurum seed")
				return nil
			}
			fmt.Println(formatter.FormatPillarList(pillars))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived pillars")

	return cmd
}

func newPillarUpdateCmd(app *App) *cobra.Command {
	var name, desc string
	var timePct float64

	cmd := &cobra.Command{
		Use:   "update REF",
		Short: "Update a pillar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePillarID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Pillars.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("desc") {
				p.Description = desc
			}
			if cmd.Flags().Changed("time") {
				p.TimeAllocationPct = timePct
			}
			if err := app.Pillars.Update(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Updated pillar %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&desc, "desc", "", "New description")
	cmd.Flags().Float64Var(&timePct, "time", 0, "New time allocation percent")

	return cmd
}

func newPillarArchiveCmd(app *App) *cobra.Command {
	var unarchive bool

	cmd := &cobra.Command{
		Use:   "archive REF",
		Short: "Archive (or unarchive) a pillar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePillarID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if unarchive {
				if err := app.Pillars.Unarchive(ctx, id); err != nil {
					return err
				}
				fmt.Println("Pillar unarchived.")
				return nil
			}
			if err := app.Pillars.Archive(ctx, id); err != nil {
				return err
			}
			fmt.Println("Pillar archived.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&unarchive, "undo", false, "Unarchive instead")

	return cmd
}

func newPillarRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove REF",
		Short: "Delete a pillar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePillarID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Pillars.Delete(ctx, id, force); err != nil {
				return err
			}
			fmt.Println("Pillar deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete even when not archived")

	return cmd
}
