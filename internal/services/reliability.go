package services

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/borrowsafe/borrowsafe/internal/logging"
	"github.com/borrowsafe/borrowsafe/internal/models"
	"github.com/borrowsafe/borrowsafe/internal/store"
)

// ReliabilityService aggregates per-borrower return outcomes into a ranked
// trust score. The counters are advisory: loan records stay the source of
// truth for status.
type ReliabilityService struct {
	store store.Store
	log   logging.Logger
}

func NewReliabilityService(st store.Store, log logging.Logger) *ReliabilityService {
	return &ReliabilityService{store: st, log: log.With("component", "reliability")}
}

// RecordOutcome increments the matching counter for the borrower, creating
// the entry if absent. Outcomes for unnamed borrowers are skipped entirely.
func (s *ReliabilityService) RecordOutcome(ctx context.Context, borrowerName string, onTime bool) error {
	name := strings.TrimSpace(borrowerName)
	if name == "" {
		return nil
	}

	stats, err := s.store.LoadStats(ctx)
	if err != nil {
		return err
	}

	entry := stats[name]
	if onTime {
		entry.ReturnsOnTime++
	} else {
		entry.ReturnsLate++
	}
	stats[name] = entry

	if err := s.store.SaveStats(ctx, stats); err != nil {
		return err
	}

	s.log.Debug(ctx, "recorded return outcome", "borrower", name, "onTime", onTime)
	return nil
}

// Rank returns all known borrowers ordered by descending score, breaking
// ties by ascending name. Score is the rounded on-time percentage; borrowers
// with no completed returns score 100.
func (s *ReliabilityService) Rank(ctx context.Context) ([]models.BorrowerRank, error) {
	stats, err := s.store.LoadStats(ctx)
	if err != nil {
		return nil, err
	}

	ranks := make([]models.BorrowerRank, 0, len(stats))
	for name, entry := range stats {
		total := entry.ReturnsOnTime + entry.ReturnsLate
		score := 100
		if total > 0 {
			score = int(math.Round(100 * float64(entry.ReturnsOnTime) / float64(total)))
		}
		ranks = append(ranks, models.BorrowerRank{
			Name:          name,
			ReturnsOnTime: entry.ReturnsOnTime,
			ReturnsLate:   entry.ReturnsLate,
			Total:         total,
			Score:         score,
		})
	}

	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Score != ranks[j].Score {
			return ranks[i].Score > ranks[j].Score
		}
		return ranks[i].Name < ranks[j].Name
	})

	return ranks, nil
}
