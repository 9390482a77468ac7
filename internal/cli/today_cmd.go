package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/aurumlife/aurum/internal/cli/formatter"
	"github.com/aurumlife/aurum/internal/contract"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	var limit, coachTop int
	var noCoach, explain bool

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's ranked priorities",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			loc := app.Location()
			now := time.Now().In(loc)

			req := contract.NewTodayRequest()
			req.Now = &now
			req.Location = loc
			if limit > 0 {
				req.Limit = limit
			} else if app.Config.Today.Limit > 0 {
				req.Limit = app.Config.Today.Limit
			}

			resp, err := app.Today.Today(ctx, req)
			if err != nil {
				return err
			}

			if !noCoach && len(resp.Tasks) > 0 {
				top := coachTop
				if top <= 0 {
					top = app.Config.Today.CoachTop
				}
				coached, cerr := app.Coach.TodayPriorities(ctx, top, now)
				if cerr != nil {
					return cerr
				}
				byTask := make(map[string]string, len(coached))
				for _, st := range coached {
					if st.Coaching != "" {
						byTask[st.Candidate.Task.ID] = st.Coaching
					}
				}
				for i := range resp.Tasks {
					resp.Tasks[i].Coaching = byTask[resp.Tasks[i].TaskID]
				}
			}

			fmt.Println(formatter.FormatToday(resp))

			if explain {
				for _, t := range resp.Tasks {
					fmt.Println(formatter.FormatTaskReasons(t))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum tasks to show (defaults to config)")
	cmd.Flags().IntVar(&coachTop, "coach-top", 0, "How many top tasks get coaching (defaults to config)")
	cmd.Flags().BoolVar(&noCoach, "no-coach", false, "Skip coaching messages")
	cmd.Flags().BoolVar(&explain, "explain", false, "Show score factor breakdown per task")

	return cmd
}
