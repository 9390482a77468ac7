package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aurumlife/aurum/internal/cli"
	"github.com/aurumlife/aurum/internal/coach"
	"github.com/aurumlife/aurum/internal/config"
	"github.com/aurumlife/aurum/internal/db"
	"github.com/aurumlife/aurum/internal/images"
	"github.com/aurumlife/aurum/internal/llm"
	"github.com/aurumlife/aurum/internal/rag"
	"github.com/aurumlife/aurum/internal/repository"
	"github.com/aurumlife/aurum/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Use-case telemetry goes to stderr when the output is piped, so that
	// interactive sessions stay clean.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	pillarRepo := repository.NewSQLitePillarRepo(database)
	areaRepo := repository.NewSQLiteAreaRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	journalRepo := repository.NewSQLiteJournalRepo(database)
	alignmentRepo := repository.NewSQLiteAlignmentRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	interactionRepo := repository.NewSQLiteInteractionRepo(database)
	embeddingRepo := repository.NewSQLiteEmbeddingRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	llmCfg := llm.LoadConfig()
	var llmObserver llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		llmObserver = llm.NewLogObserver(os.Stderr)
	}
	llmClient := llm.NewOllamaClient(llmCfg, llmObserver)

	quotaSvc := service.NewQuotaService(profileRepo, interactionRepo, uow)

	app := &cli.App{
		Config: cfg,

		Pillars:   service.NewPillarService(pillarRepo),
		Areas:     service.NewAreaService(areaRepo),
		Projects:  service.NewProjectService(projectRepo, areaRepo),
		Tasks:     service.NewTaskService(taskRepo, projectRepo, uow, observer),
		Journal:   service.NewJournalService(journalRepo),
		Alignment: service.NewAlignmentService(alignmentRepo, profileRepo),
		Today:     service.NewTodayService(taskRepo, observer),
		Insights:  service.NewInsightsService(pillarRepo, areaRepo, projectRepo, taskRepo, alignmentRepo),
		Quota:     quotaSvc,
		Seeder:    service.NewSeedService(uow),

		Coach:     coach.NewCoachService(taskRepo, projectRepo, llmClient, quotaSvc, observer),
		Sentiment: coach.NewSentimentService(journalRepo, llmClient, quotaSvc),
		Context:   rag.NewService(embeddingRepo, llmClient, quotaSvc),
		Images:    images.NewProcessor(),
	}

	return cli.NewRootCmd(app).Execute()
}
