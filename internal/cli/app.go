// Package cli is the interactive presentation layer. It only gathers input
// and renders output; every decision is delegated to the engine services.
package cli

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/borrowsafe/borrowsafe/internal/config"
	"github.com/borrowsafe/borrowsafe/internal/logging"
	"github.com/borrowsafe/borrowsafe/internal/services"
	"github.com/borrowsafe/borrowsafe/internal/store"
)

type App struct {
	config    *config.Config
	store     store.Store
	loans     *services.LoanService
	scorer    *services.ReliabilityService
	reminders *services.ReminderService
	log       logging.Logger
	scanner   *bufio.Scanner
	close     func() error
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	st := store.NewSQLiteStore(db, log)
	scorer := services.NewReliabilityService(st, log)

	return &App{
		config:    cfg,
		store:     st,
		loans:     services.NewLoanService(st, scorer, log),
		scorer:    scorer,
		reminders: services.NewReminderService(st, log),
		log:       log,
		scanner:   bufio.NewScanner(os.Stdin),
		close:     db.Close,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.close() }()
	runREPL(ctx, a, a.scanner)
}

func (a *App) now() time.Time { return time.Now() }
