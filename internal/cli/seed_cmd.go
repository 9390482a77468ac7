package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with a demo life structure",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Seeder.Seed(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Seeded %d pillars, %d areas, %d projects, %d tasks, %d journal entries.\n",
				result.Pillars, result.Areas, result.Projects, result.Tasks, result.Entries)
			return nil
		},
	}
}
