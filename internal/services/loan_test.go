package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borrowsafe/borrowsafe/internal/common"
	"github.com/borrowsafe/borrowsafe/internal/datex"
	"github.com/borrowsafe/borrowsafe/internal/models"
)

func TestCreateItemLoan_NewRecordShape(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	due := datex.New(2026, time.March, 15)

	r, err := e.loans.CreateItemLoan(ctx, ItemLoanParams{
		ItemName:   "  Charger  ",
		ReturnDate: due,
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusActive, r.Status)
	assert.False(t, r.BorrowerConfirmed)
	assert.Equal(t, r.ID, r.Code)
	assert.True(t, strings.HasPrefix(r.Code, "BS-"))
	assert.Len(t, r.Code, len("BS-")+6)
	assert.Equal(t, "You", r.OwnerName, "blank owner defaults")
	assert.Empty(t, r.BorrowerName)
	assert.True(t, r.BorrowDate.Equal(datex.New(2026, time.March, 10)))
	assert.True(t, r.ReturnDate.Equal(due))
	assert.Nil(t, r.ReturnedOn)

	item, ok := r.Item()
	require.True(t, ok)
	assert.Equal(t, "Charger", item.ItemName, "item name is trimmed")
}

func TestCreateItemLoan_PrependsNewestFirst(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	first, err := e.loans.CreateItemLoan(ctx, ItemLoanParams{ItemName: "Book"})
	require.NoError(t, err)
	second, err := e.loans.CreateItemLoan(ctx, ItemLoanParams{ItemName: "Drill"})
	require.NoError(t, err)

	records, err := e.store.LoadRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, second.ID, records[0].ID)
	assert.Equal(t, first.ID, records[1].ID)
}

func TestCreateItemLoan_EmptyNameRejected(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	for _, name := range []string{"", "   ", "\t"} {
		_, err := e.loans.CreateItemLoan(ctx, ItemLoanParams{ItemName: name})
		assert.ErrorIs(t, err, common.ErrEmptyItemName)
	}
}

func TestCreateItemLoan_ZeroReturnDateDefaultsToToday(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	r, err := e.loans.CreateItemLoan(ctx, ItemLoanParams{ItemName: "Umbrella"})
	require.NoError(t, err)
	assert.True(t, r.ReturnDate.Equal(datex.New(2026, time.March, 10)))
}

func TestCreateMoneyLoan_AmountCoercion(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		amount string
		want   float64
	}{
		{"plain number", "500", 500},
		{"decimal", " 250.5 ", 250.5},
		{"not a number coerces to zero", "lots", 0},
		{"empty coerces to zero", "", 0},
		{"infinity coerces to zero", "Inf", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := e.loans.CreateMoneyLoan(ctx, MoneyLoanParams{Amount: tc.amount})
			require.NoError(t, err)
			money, ok := r.Money()
			require.True(t, ok)
			assert.Equal(t, tc.want, money.Amount)
			assert.Equal(t, models.CurrencyINR, money.Currency, "currency defaults to INR")
		})
	}
}

func TestFindByCode_CaseInsensitiveRoundTrip(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	r, err := e.loans.CreateItemLoan(ctx, ItemLoanParams{ItemName: "Charger"})
	require.NoError(t, err)

	for _, code := range []string{r.Code, strings.ToLower(r.Code), strings.ToUpper(r.Code)} {
		found, err := e.loans.FindByCode(ctx, code)
		require.NoError(t, err)
		assert.Equal(t, r.ID, found.ID)
	}
}

func TestFindByCode_NotFound(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.loans.FindByCode(ctx, "BS-NOPE00")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestConfirmBorrow_SetsConfirmedAndName(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	r, err := e.loans.CreateItemLoan(ctx, ItemLoanParams{ItemName: "Helmet"})
	require.NoError(t, err)

	confirmed, err := e.loans.ConfirmBorrow(ctx, strings.ToLower(r.Code), " Dev ")
	require.NoError(t, err)
	assert.True(t, confirmed.BorrowerConfirmed)
	assert.Equal(t, "Dev", confirmed.BorrowerName)

	// The change is persisted, not just returned.
	found, err := e.loans.FindByCode(ctx, r.Code)
	require.NoError(t, err)
	assert.True(t, found.BorrowerConfirmed)
}

func TestConfirmBorrow_MonotonicAcrossRepeatCalls(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	r, err := e.loans.CreateItemLoan(ctx, ItemLoanParams{ItemName: "Helmet"})
	require.NoError(t, err)

	_, err = e.loans.ConfirmBorrow(ctx, r.Code, "Dev")
	require.NoError(t, err)

	// A later call with a new name renames, but never unconfirms.
	renamed, err := e.loans.ConfirmBorrow(ctx, r.Code, "Ajay")
	require.NoError(t, err)
	assert.True(t, renamed.BorrowerConfirmed)
	assert.Equal(t, "Ajay", renamed.BorrowerName)

	// An empty name keeps the previous borrower.
	kept, err := e.loans.ConfirmBorrow(ctx, r.Code, "  ")
	require.NoError(t, err)
	assert.True(t, kept.BorrowerConfirmed)
	assert.Equal(t, "Ajay", kept.BorrowerName)
}

func TestConfirmBorrow_NotFound(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.loans.ConfirmBorrow(ctx, "BS-NOPE00", "Dev")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMarkReturned_OnTime(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	r, err := e.loans.CreateItemLoan(ctx, ItemLoanParams{
		ItemName:     "Charger",
		BorrowerName: "Ajay",
		ReturnDate:   datex.New(2026, time.March, 15),
	})
	require.NoError(t, err)

	returned, err := e.loans.MarkReturned(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReturned, returned.Status)
	require.NotNil(t, returned.ReturnedOn)
	assert.True(t, returned.ReturnedOn.Equal(datex.New(2026, time.March, 10)))

	stats, err := e.store.LoadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.BorrowerStats{ReturnsOnTime: 1}, stats["Ajay"])
}

func TestMarkReturned_LateWhenPastDue(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	r, err := e.loans.CreateItemLoan(ctx, ItemLoanParams{
		ItemName:     "Charger",
		BorrowerName: "Ajay",
		ReturnDate:   datex.New(2026, time.March, 12),
	})
	require.NoError(t, err)

	e.setNow(time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC))

	_, err = e.loans.MarkReturned(ctx, r.ID)
	require.NoError(t, err)

	stats, err := e.store.LoadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.BorrowerStats{ReturnsLate: 1}, stats["Ajay"])
}

func TestMarkReturned_IdempotentNoDoubleCount(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	r, err := e.loans.CreateItemLoan(ctx, ItemLoanParams{
		ItemName:     "Charger",
		BorrowerName: "Ajay",
		ReturnDate:   datex.New(2026, time.March, 15),
	})
	require.NoError(t, err)

	first, err := e.loans.MarkReturned(ctx, r.ID)
	require.NoError(t, err)

	// Even much later, the second call changes nothing.
	e.setNow(time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC))
	second, err := e.loans.MarkReturned(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	stats, err := e.store.LoadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.BorrowerStats{ReturnsOnTime: 1}, stats["Ajay"])
}

func TestMarkReturned_UnknownID(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.loans.MarkReturned(ctx, "BS-NOPE00")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMarkReturned_UnnamedBorrowerSkipsStats(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	r, err := e.loans.CreateItemLoan(ctx, ItemLoanParams{ItemName: "Charger"})
	require.NoError(t, err)

	_, err = e.loans.MarkReturned(ctx, r.ID)
	require.NoError(t, err)

	stats, err := e.store.LoadStats(ctx)
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestActiveAndHistorySelectors(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	a, err := e.loans.CreateItemLoan(ctx, ItemLoanParams{ItemName: "Book"})
	require.NoError(t, err)
	b, err := e.loans.CreateItemLoan(ctx, ItemLoanParams{ItemName: "Drill"})
	require.NoError(t, err)

	_, err = e.loans.MarkReturned(ctx, a.ID)
	require.NoError(t, err)

	active, err := e.loans.Active(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, b.ID, active[0].ID)

	history, err := e.loans.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, a.ID, history[0].ID)
}

// Full lifecycle: borrowed, due soon, overdue, returned late.
func TestLoanLifecycle_ChargerScenario(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	settings := models.Settings{DueSoonDays: 1, AutoReminder: true}

	start := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	e.setNow(start)

	r, err := e.loans.CreateItemLoan(ctx, ItemLoanParams{
		ItemName:     "Charger",
		BorrowerName: "Ajay",
		ReturnDate:   datex.FromTime(start).AddDays(5),
	})
	require.NoError(t, err)

	assert.Equal(t, LabelBorrowed, Classify(*r, settings, start).Label)

	dueSoon := start.AddDate(0, 0, 4)
	assert.Equal(t, LabelDueSoon, Classify(*r, settings, dueSoon).Label)

	pastDue := start.AddDate(0, 0, 6)
	assert.Equal(t, LabelOverdue, Classify(*r, settings, pastDue).Label)

	e.setNow(pastDue)
	returned, err := e.loans.MarkReturned(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, LabelReturned, Classify(*returned, settings, pastDue).Label)

	stats, err := e.store.LoadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats["Ajay"].ReturnsLate)
}
