package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/aurumlife/aurum/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newInsightsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show the alignment snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Insights.Snapshot(context.Background(), time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatInsights(resp))
			return nil
		},
	}
}
