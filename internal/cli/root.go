package cli

import (
	"time"

	"github.com/aurumlife/aurum/internal/coach"
	"github.com/aurumlife/aurum/internal/config"
	"github.com/aurumlife/aurum/internal/images"
	"github.com/aurumlife/aurum/internal/rag"
	"github.com/aurumlife/aurum/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all services used by CLI commands.
type App struct {
	Config config.Config

	Pillars   service.PillarService
	Areas     service.AreaService
	Projects  service.ProjectService
	Tasks     service.TaskService
	Journal   service.JournalService
	Alignment service.AlignmentService
	Today     service.TodayService
	Insights  service.InsightsService
	Quota     service.QuotaService
	Seeder    service.SeedService

	Coach     coach.CoachService
	Sentiment coach.SentimentService
	Context   rag.Service
	Images    *images.Processor
}

// Location resolves the configured timezone, falling back to UTC when the
// name does not parse.
func (a *App) Location() *time.Location {
	loc, err := time.LoadLocation(a.Config.Timezone)
	if err != nil || loc == nil {
		return time.UTC
	}
	return loc
}

// NewRootCmd creates the top-level "aurum" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "aurum",
		Short: "Personal operating system: pillars, areas, projects, tasks",
	}

	root.AddCommand(
		newPillarCmd(app),
		newAreaCmd(app),
		newProjectCmd(app),
		newTaskCmd(app),
		newJournalCmd(app),
		newTodayCmd(app),
		newInsightsCmd(app),
		newAlignCmd(app),
		newCoachCmd(app),
		newSearchCmd(app),
		newImageCmd(app),
		newSeedCmd(app),
	)

	return root
}
