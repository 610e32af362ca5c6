package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/borrowsafe/borrowsafe/internal/dbx"
	"github.com/borrowsafe/borrowsafe/internal/logging"
	"github.com/borrowsafe/borrowsafe/internal/models"
	"github.com/borrowsafe/borrowsafe/internal/repositories/kv"
)

// SQLiteStore implements Store over the kv repository.
type SQLiteStore struct {
	db  *sql.DB
	kv  kv.Repository
	log logging.Logger
}

// NewSQLiteStore returns a store bound to db. The logger is used to report
// fail-soft events (corrupted payloads replaced with defaults).
func NewSQLiteStore(db *sql.DB, log logging.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, kv: kv.NewSQLiteRepository(db), log: log.With("component", "store")}
}

func (s *SQLiteStore) LoadRecords(ctx context.Context) ([]models.LoanRecord, error) {
	raw, err := s.kv.Get(ctx, keyRecords)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		seed := SeedRecords()
		if err := s.SaveRecords(ctx, seed); err != nil {
			return nil, err
		}
		return seed, nil
	}

	var records []models.LoanRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		s.log.Warn(ctx, "records collection unreadable, falling back to seed data", "error", err)
		return SeedRecords(), nil
	}
	return records, nil
}

func (s *SQLiteStore) SaveRecords(ctx context.Context, records []models.LoanRecord) error {
	if records == nil {
		records = []models.LoanRecord{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	return s.kv.Set(ctx, keyRecords, raw)
}

func (s *SQLiteStore) LoadStats(ctx context.Context) (map[string]models.BorrowerStats, error) {
	raw, err := s.kv.Get(ctx, keyStats)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		initial := map[string]models.BorrowerStats{}
		if err := s.SaveStats(ctx, initial); err != nil {
			return nil, err
		}
		return initial, nil
	}

	var stats map[string]models.BorrowerStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		s.log.Warn(ctx, "stats collection unreadable, falling back to empty stats", "error", err)
		return map[string]models.BorrowerStats{}, nil
	}
	if stats == nil {
		stats = map[string]models.BorrowerStats{}
	}
	return stats, nil
}

func (s *SQLiteStore) SaveStats(ctx context.Context, stats map[string]models.BorrowerStats) error {
	if stats == nil {
		stats = map[string]models.BorrowerStats{}
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}
	return s.kv.Set(ctx, keyStats, raw)
}

func (s *SQLiteStore) LoadSettings(ctx context.Context) (models.Settings, error) {
	settings := models.DefaultSettings()

	raw, err := s.kv.Get(ctx, keySettings)
	if err != nil {
		return settings, err
	}
	if raw == nil {
		if err := s.SaveSettings(ctx, settings); err != nil {
			return settings, err
		}
		return settings, nil
	}

	// Unmarshalling over the defaults keeps them for any absent field.
	if err := json.Unmarshal(raw, &settings); err != nil {
		s.log.Warn(ctx, "settings unreadable, falling back to defaults", "error", err)
		return models.DefaultSettings(), nil
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(ctx context.Context, settings models.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return s.kv.Set(ctx, keySettings, raw)
}

func (s *SQLiteStore) Export(ctx context.Context) (models.Snapshot, error) {
	records, err := s.LoadRecords(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	stats, err := s.LoadStats(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	settings, err := s.LoadSettings(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	return models.Snapshot{Records: records, Stats: stats, Settings: settings}, nil
}

// Reset deletes all three collections in one transaction: either the store
// goes fully back to "never initialized" or it is left untouched.
func (s *SQLiteStore) Reset(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := kv.NewSQLiteRepository(tx)
		for _, key := range []string{keyRecords, keyStats, keySettings} {
			if err := r.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}
