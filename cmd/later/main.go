package main

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alexanderramin/later/internal/cli"
	"github.com/alexanderramin/later/internal/config"
	"github.com/alexanderramin/later/internal/db"
	"github.com/alexanderramin/later/internal/repository"
	"github.com/alexanderramin/later/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var database *sql.DB
	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	app := &cli.App{Now: time.Now}
	app.Setup = func(configFile string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}

		// Wire the document store
		var repo repository.DocumentRepo
		switch cfg.Backend {
		case config.BackendSQLite:
			database, err = db.OpenDB(cfg.DataFile)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			repo = repository.NewSQLiteDocumentRepo(database, db.NewSQLiteUnitOfWork(database), cfg.DataFile)
		default:
			repo = repository.NewJSONDocumentRepo(cfg.DataFile)
		}

		var observer service.UseCaseObserver
		if cfg.LogEvents {
			logConfig(os.Stderr, cfg)
			observer = service.NewLogUseCaseObserver(os.Stderr)
		}
		app.Lists = service.NewListService(repo, time.Now, os.Stderr, observer)
		app.Prompt = newPrompter(cfg.Prompt)
		return nil
	}

	return cli.Execute(app, os.Args[1:])
}

// logConfig records where settings and data came from.
func logConfig(w io.Writer, cfg *config.Config) {
	configFile := cfg.ConfigFile
	if configFile == "" {
		configFile = "none"
	}
	slog.New(slog.NewTextHandler(w, nil)).Info("config_loaded",
		"config_file", configFile,
		"backend", string(cfg.Backend),
		"data_file", cfg.DataFile,
		"prompt", string(cfg.Prompt),
	)
}

// newPrompter picks terminal forms or line prompts. Prompts go to stderr so
// stdout carries only the rendered list.
func newPrompter(mode config.PromptMode) cli.Prompter {
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	if mode == config.PromptForm || (mode == config.PromptAuto && interactive) {
		return cli.NewFormPrompter(os.Stderr, time.Now)
	}
	return cli.NewLinePrompter(os.Stdin, os.Stderr, time.Now)
}
