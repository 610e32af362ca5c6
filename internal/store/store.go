// Package store implements the persistent collection layer: three logical
// collections (loan records, borrower stats, user settings) serialized as
// JSON documents into a SQLite key-value table.
//
// Collections are lazily seeded with documented defaults on first read, and
// reads that hit corrupted payloads fail soft by returning those defaults.
// Every write overwrites a whole collection; there is no transactional
// guarantee across collections.
package store

import (
	"context"

	"github.com/borrowsafe/borrowsafe/internal/models"
)

// Collection keys. The v1 suffix guards against future layout changes.
const (
	keyRecords  = "borrowsafe_records_v1"
	keyStats    = "borrowsafe_stats_v1"
	keySettings = "borrowsafe_settings_v1"
)

// Store is the persistence surface used by every engine component.
// Implementations own all durable state; callers hold none across calls.
type Store interface {
	// LoadRecords returns the loan records, newest first. First access seeds
	// the demo records.
	LoadRecords(ctx context.Context) ([]models.LoanRecord, error)

	// SaveRecords durably overwrites the records collection.
	SaveRecords(ctx context.Context, records []models.LoanRecord) error

	// LoadStats returns the borrower-name → counters mapping. First access
	// seeds an empty map.
	LoadStats(ctx context.Context) (map[string]models.BorrowerStats, error)

	// SaveStats durably overwrites the stats collection.
	SaveStats(ctx context.Context, stats map[string]models.BorrowerStats) error

	// LoadSettings returns the settings singleton, seeding defaults on first
	// access. Missing fields in a stored payload keep their defaults.
	LoadSettings(ctx context.Context) (models.Settings, error)

	// SaveSettings durably overwrites the settings singleton.
	SaveSettings(ctx context.Context, settings models.Settings) error

	// Export returns a full snapshot of all three collections.
	Export(ctx context.Context) (models.Snapshot, error)

	// Reset wipes all three collections back to "never initialized", so the
	// next read reseeds defaults. The wipe is a single operation.
	Reset(ctx context.Context) error
}
