package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/pathway/internal/catalog"
	"github.com/alexanderramin/pathway/internal/cli"
	"github.com/alexanderramin/pathway/internal/cli/formatter"
	"github.com/alexanderramin/pathway/internal/config"
	"github.com/alexanderramin/pathway/internal/corequisite"
	"github.com/alexanderramin/pathway/internal/db"
	"github.com/alexanderramin/pathway/internal/engine"
	"github.com/alexanderramin/pathway/internal/repository"
	"github.com/alexanderramin/pathway/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig().Resolve()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	// Load major configurations. Broken files are logged and skipped; a
	// missing directory leaves no majors configured.
	majors, err := catalog.LoadDir(cfg.ConfigDir, logger)
	if majors == nil {
		logger.Warn("no major configurations loaded", "dir", cfg.ConfigDir, "error", err)
		majors = catalog.NewSet()
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	recordRepo := repository.NewSQLiteCourseRecordRepo(database)
	runRepo := repository.NewSQLiteBatchRunRepo(database)
	resultRepo := repository.NewSQLiteBatchResultRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var engineObserver engine.Observer = engine.NoopObserver{}
	var useCaseObserver service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogEvents {
		engineObserver = engine.NewLogObserver(os.Stderr, cfg.LogLevel)
		useCaseObserver = service.NewLogUseCaseObserver(os.Stderr, cfg.LogLevel)
	}

	opts := engine.DefaultOptions()
	opts.Combiner = corequisite.Options{Passes: cfg.CoreqPasses, FixedPoint: cfg.FixedPoint}

	app := &cli.App{
		Import: service.NewImportService(recordRepo, uow, useCaseObserver),
		Runs: service.NewRunService(recordRepo, majors, service.RunSettings{
			Options:   opts,
			Workers:   cfg.Workers,
			ConfigDir: cfg.ConfigDir,
			Observer:  engineObserver,
		}, uow, useCaseObserver),
		Query:  service.NewQueryService(runRepo, resultRepo),
		Majors: majors,
	}

	formatter.SetColor(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))

	// An interrupted run still stores the students that finished.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	err = rootCmd.ExecuteContext(ctx)
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("interrupted: %w", err)
	}
	return err
}
