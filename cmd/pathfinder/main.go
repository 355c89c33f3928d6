package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pathfinder/internal/api"
	"pathfinder/internal/cli"
	"pathfinder/internal/config"
	"pathfinder/internal/db"
	"pathfinder/internal/dialogue"
	"pathfinder/internal/llm"
	"pathfinder/internal/repository"
	"pathfinder/internal/retrieval"
	"pathfinder/internal/router"
	"pathfinder/internal/strategy"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck // stderr sync failure is not actionable

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	store := repository.NewSQLiteSessionStore(database)

	llmCfg := llm.LoadConfig()
	client := llm.NewOllamaClient(llmCfg, llm.NewZapObserver(log))
	provider := strategy.NewProvider(client)

	rt := router.New(router.NewLLMClassifier(client), log)
	controller := dialogue.NewController(store, rt, provider, retrieval.PlanContextProvider{}, log)

	handler := api.NewHandler(controller, provider, log)
	health := api.NewHealthHandler(database)

	app := &cli.App{
		Controller: controller,
		Provider:   provider,
		Log:        log,
		APIHandler: api.NewRouter(handler, health, cfg.AllowedOrigins),
		Addr:       ":" + cfg.Port,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
