package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/borrowsafe/borrowsafe/internal/logging"
	"github.com/borrowsafe/borrowsafe/internal/store"
)

// env wires all engine services over one in-memory store with a fixed clock.
type env struct {
	store     *store.SQLiteStore
	loans     *LoanService
	scorer    *ReliabilityService
	reminders *ReminderService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()

	db, err := store.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	st := store.NewSQLiteStore(db, log)

	scorer := NewReliabilityService(st, log)
	e := &env{
		store:     st,
		loans:     NewLoanService(st, scorer, log),
		scorer:    scorer,
		reminders: NewReminderService(st, log),
	}
	e.setNow(time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC))

	// Most tests want a clean slate rather than the demo seed.
	require.NoError(t, st.SaveRecords(ctx, nil))
	return e
}

// setNow pins the clock of every service that reads wall time.
func (e *env) setNow(now time.Time) {
	e.loans.now = func() time.Time { return now }
	e.reminders.now = func() time.Time { return now }
}
