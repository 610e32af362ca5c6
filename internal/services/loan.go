// Package services implements the loan lifecycle engine: record creation,
// lookup, confirmation and return transitions, status classification,
// reminders and borrower reliability scoring. All durable state lives in the
// store; services read a full collection, compute, and write it back.
package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/borrowsafe/borrowsafe/internal/common"
	"github.com/borrowsafe/borrowsafe/internal/datex"
	"github.com/borrowsafe/borrowsafe/internal/logging"
	"github.com/borrowsafe/borrowsafe/internal/models"
	"github.com/borrowsafe/borrowsafe/internal/shared"
	"github.com/borrowsafe/borrowsafe/internal/store"
)

// codePrefix starts every generated loan code.
const codePrefix = "BS-"

// defaultOwnerName is used when the owner leaves their name blank.
const defaultOwnerName = "You"

// LoanService drives the loan record state machine:
//
//	Created(active, unconfirmed) -> ConfirmBorrow -> active(confirmed)
//	                             -> MarkReturned -> returned (terminal)
//
// Confirmation and return are independent axes; a loan can be returned
// without ever being confirmed.
type LoanService struct {
	store  store.Store
	scorer *ReliabilityService
	log    logging.Logger
	now    func() time.Time
}

func NewLoanService(st store.Store, scorer *ReliabilityService, log logging.Logger) *LoanService {
	return &LoanService{store: st, scorer: scorer, log: log.With("component", "loans"), now: time.Now}
}

// ItemLoanParams are the creation inputs for an item loan.
type ItemLoanParams struct {
	ItemName     string
	BorrowerName string
	OwnerName    string
	ReturnDate   datex.Day
}

// MoneyLoanParams are the creation inputs for a money loan. Amount is the
// raw user input; anything that does not parse to a finite number is
// coerced to 0 rather than rejected.
type MoneyLoanParams struct {
	Amount       string
	Currency     models.Currency
	Note         string
	BorrowerName string
	OwnerName    string
	ReturnDate   datex.Day
}

// CreateItemLoan validates the item name, generates a code and prepends the
// new active, unconfirmed record to the records collection.
func (s *LoanService) CreateItemLoan(ctx context.Context, p ItemLoanParams) (*models.LoanRecord, error) {
	itemName := strings.TrimSpace(p.ItemName)
	if itemName == "" {
		return nil, common.ErrEmptyItemName
	}
	return s.create(ctx, models.ItemDetail{ItemName: itemName}, p.BorrowerName, p.OwnerName, p.ReturnDate)
}

// CreateMoneyLoan coerces the amount to a finite number (0 on bad input),
// defaults the currency to INR, and creates the record like CreateItemLoan.
func (s *LoanService) CreateMoneyLoan(ctx context.Context, p MoneyLoanParams) (*models.LoanRecord, error) {
	currency := p.Currency
	if currency == "" {
		currency = models.CurrencyINR
	}
	detail := models.MoneyDetail{
		Amount:   coerceAmount(p.Amount),
		Currency: currency,
		Note:     strings.TrimSpace(p.Note),
	}
	return s.create(ctx, detail, p.BorrowerName, p.OwnerName, p.ReturnDate)
}

func (s *LoanService) create(ctx context.Context, detail models.Detail, borrowerName, ownerName string, returnDate datex.Day) (*models.LoanRecord, error) {
	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := datex.FromTime(now)
	if returnDate.IsZero() {
		returnDate = today
	}

	code, err := generateCode(now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	owner := strings.TrimSpace(ownerName)
	if owner == "" {
		owner = defaultOwnerName
	}

	record := models.LoanRecord{
		ID:           code,
		Code:         code,
		Detail:       detail,
		OwnerName:    owner,
		BorrowerName: strings.TrimSpace(borrowerName),
		BorrowDate:   today,
		ReturnDate:   returnDate,
		Status:       models.StatusActive,
	}

	next := append([]models.LoanRecord{record}, records...)
	if err := s.store.SaveRecords(ctx, next); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "loan created", "code", record.Code, "kind", record.Kind())
	return &record, nil
}

// FindByCode returns the record whose code matches case-insensitively, or
// common.ErrNotFound. No partial or fuzzy matching.
func (s *LoanService) FindByCode(ctx context.Context, code string) (*models.LoanRecord, error) {
	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexByCode(records, code); i >= 0 {
		record := records[i]
		return &record, nil
	}
	return nil, fmt.Errorf("loan %q: %w", code, common.ErrNotFound)
}

// ConfirmBorrow marks the record as borrower-confirmed and, when a non-empty
// name is given, records it as the borrower. Confirmation is monotonic: a
// repeat call can rename the borrower but never unconfirms.
func (s *LoanService) ConfirmBorrow(ctx context.Context, code, borrowerName string) (*models.LoanRecord, error) {
	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}

	i := indexByCode(records, code)
	if i < 0 {
		return nil, fmt.Errorf("loan %q: %w", code, common.ErrNotFound)
	}

	records[i].BorrowerConfirmed = true
	if name := strings.TrimSpace(borrowerName); name != "" {
		records[i].BorrowerName = name
	}

	if err := s.store.SaveRecords(ctx, records); err != nil {
		return nil, err
	}

	record := records[i]
	s.log.Info(ctx, "borrow confirmed", "code", record.Code, "borrower", record.BorrowerName)
	return &record, nil
}

// MarkReturned transitions an active record to returned, stamps ReturnedOn,
// and records the borrower's outcome (late when the due date had already
// passed at the moment of return). Calling it again for an already-returned
// record returns the record unchanged without touching any counter, so the
// outcome is counted at most once per record. Unknown ids return
// common.ErrNotFound.
//
// Records and stats are two independent writes; a failure between them can
// leave the advisory counters behind the records (accepted, see store docs).
func (s *LoanService) MarkReturned(ctx context.Context, id string) (*models.LoanRecord, error) {
	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}

	i := -1
	for n := range records {
		if records[n].ID == id {
			i = n
			break
		}
	}
	if i < 0 {
		return nil, fmt.Errorf("loan %q: %w", id, common.ErrNotFound)
	}
	if records[i].Returned() {
		record := records[i]
		return &record, nil
	}

	now := s.now()
	returnedOn := datex.FromTime(now)
	records[i].Status = models.StatusReturned
	records[i].ReturnedOn = &returnedOn

	if err := s.store.SaveRecords(ctx, records); err != nil {
		return nil, err
	}

	record := records[i]
	late := datex.DaysLeft(record.ReturnDate, now) < 0
	if err := s.scorer.RecordOutcome(ctx, record.BorrowerName, !late); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "loan returned", "code", record.Code, "late", late)
	return &record, nil
}

// Active returns all records still out, newest first.
func (s *LoanService) Active(ctx context.Context) ([]models.LoanRecord, error) {
	return s.selectByStatus(ctx, models.StatusActive)
}

// History returns all returned records, newest first.
func (s *LoanService) History(ctx context.Context) ([]models.LoanRecord, error) {
	return s.selectByStatus(ctx, models.StatusReturned)
}

func (s *LoanService) selectByStatus(ctx context.Context, status models.Status) ([]models.LoanRecord, error) {
	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}
	selected := make([]models.LoanRecord, 0, len(records))
	for _, r := range records {
		if r.Status == status {
			selected = append(selected, r)
		}
	}
	return selected, nil
}

func indexByCode(records []models.LoanRecord, code string) int {
	for i := range records {
		if strings.EqualFold(records[i].Code, code) {
			return i
		}
	}
	return -1
}

// generateCode builds a shareable code: prefix, four random base-36 chars,
// and a two-digit time suffix. Uniqueness is probabilistic; collisions are
// not re-rolled.
func generateCode(now time.Time) (string, error) {
	frag, err := shared.MakeRandBase36String(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s%02d", codePrefix, frag, now.UnixMilli()%100), nil
}

// coerceAmount parses the raw amount, coercing anything non-numeric or
// non-finite to 0. Bad input is normalized, never rejected.
func coerceAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
