package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/borrowsafe/borrowsafe/internal/datex"
	"github.com/borrowsafe/borrowsafe/internal/logging"
	"github.com/borrowsafe/borrowsafe/internal/models"
	"github.com/borrowsafe/borrowsafe/internal/store"
)

// ReminderService scans active records and produces reminder payloads for
// those within the due-soon threshold. Nothing is delivered anywhere; the
// payloads are returned for presentation to hand off.
type ReminderService struct {
	store store.Store
	log   logging.Logger
	now   func() time.Time
}

func NewReminderService(st store.Store, log logging.Logger) *ReminderService {
	return &ReminderService{store: st, log: log.With("component", "reminder"), now: time.Now}
}

// Run selects every active record due within Settings.DueSoonDays (overdue
// ones included), stamps RemindedAt on each, and returns one message per
// selected record. When auto-reminders are disabled it returns an empty
// result and touches nothing. Re-running simply re-stamps; rate limiting is
// not this engine's job.
func (s *ReminderService) Run(ctx context.Context) ([]models.Reminder, error) {
	settings, err := s.store.LoadSettings(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.AutoReminder {
		return nil, nil
	}

	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var due []int
	for i, r := range records {
		if r.Status == models.StatusActive && datex.DaysLeft(r.ReturnDate, now) <= settings.DueSoonDays {
			due = append(due, i)
		}
	}
	if len(due) == 0 {
		return nil, nil
	}

	reminders := make([]models.Reminder, 0, len(due))
	for _, i := range due {
		stamp := now
		records[i].RemindedAt = &stamp
		reminders = append(reminders, models.Reminder{
			ID:           uuid.NewString(),
			RecordID:     records[i].ID,
			Kind:         records[i].Kind(),
			BorrowerName: records[i].BorrowerName,
			Message:      reminderMessage(records[i]),
		})
	}

	if err := s.store.SaveRecords(ctx, records); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "reminder pass finished", "due", len(reminders))
	return reminders, nil
}

func reminderMessage(r models.LoanRecord) string {
	if money, ok := r.Money(); ok {
		return fmt.Sprintf("Hey, just a reminder: %s is due %s 😊",
			models.FormatMoney(money.Amount, money.Currency), r.ReturnDate)
	}
	item, _ := r.Item()
	return fmt.Sprintf("Hey, just a reminder you borrowed %s, due %s 😊",
		item.ItemName, r.ReturnDate)
}
