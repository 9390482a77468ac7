package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aurumlife/aurum/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAlignCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "align",
		Short: "Track alignment scores and monthly goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := app.Alignment.Dashboard(context.Background(), time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatDashboard(d))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "goal POINTS",
		Short: "Set the monthly alignment goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid goal %q: expected a number", args[0])
			}
			if err := app.Alignment.SetMonthlyGoal(context.Background(), goal); err != nil {
				return err
			}
			fmt.Printf("Monthly goal set to %d pts.\n", goal)
			return nil
		},
	})

	return cmd
}
