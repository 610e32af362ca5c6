package cli

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/borrowsafe/borrowsafe/internal/models"
	"github.com/borrowsafe/borrowsafe/internal/services"
)

func (a *App) Lend(ctx context.Context) error {
	record, err := a.loans.CreateItemLoan(ctx, services.ItemLoanParams{
		ItemName:     a.promptLine("Item name"),
		BorrowerName: a.promptLine("Borrower name (optional)"),
		OwnerName:    a.promptLine("Your name (optional)"),
		ReturnDate:   a.promptDay("Return date"),
	})
	if err != nil {
		return err
	}

	printlnFn("Created. Share this code with the borrower:", record.Code)
	printlnFn("QR image:", shareURL(record.Code))
	return nil
}

func (a *App) Owe(ctx context.Context) error {
	record, err := a.loans.CreateMoneyLoan(ctx, services.MoneyLoanParams{
		Amount:       a.promptLine("Amount"),
		Currency:     models.Currency(strings.ToUpper(a.promptLine("Currency (default INR)"))),
		Note:         a.promptLine("Note (optional)"),
		BorrowerName: a.promptLine("Borrower name (optional)"),
		OwnerName:    a.promptLine("Your name (optional)"),
		ReturnDate:   a.promptDay("Return date"),
	})
	if err != nil {
		return err
	}

	printlnFn("Created. Share this code with the borrower:", record.Code)
	printlnFn("QR image:", shareURL(record.Code))
	return nil
}

func (a *App) Find(ctx context.Context) error {
	record, err := a.loans.FindByCode(ctx, a.promptLine("Code"))
	if err != nil {
		return err
	}
	return a.printRecord(ctx, *record)
}

func (a *App) Confirm(ctx context.Context) error {
	code := a.promptLine("Code")
	name := a.promptLine("Your name (optional)")

	record, err := a.loans.ConfirmBorrow(ctx, code, name)
	if err != nil {
		return err
	}

	printlnFn("Confirmed:", describe(*record), "— due", record.ReturnDate.String())
	return nil
}

func (a *App) Return(ctx context.Context) error {
	record, err := a.loans.FindByCode(ctx, a.promptLine("Code"))
	if err != nil {
		return err
	}

	returned, err := a.loans.MarkReturned(ctx, record.ID)
	if err != nil {
		return err
	}

	printlnFn("Returned:", describe(*returned), "on", returned.ReturnedOn.String())
	return nil
}

func (a *App) Active(ctx context.Context) error {
	records, err := a.loans.Active(ctx)
	if err != nil {
		return err
	}
	return a.printRecords(ctx, records)
}

func (a *App) History(ctx context.Context) error {
	records, err := a.loans.History(ctx)
	if err != nil {
		return err
	}
	return a.printRecords(ctx, records)
}

func (a *App) Remind(ctx context.Context) error {
	reminders, err := a.reminders.Run(ctx)
	if err != nil {
		return err
	}
	if len(reminders) == 0 {
		printlnFn("Nothing due.")
		return nil
	}
	for _, r := range reminders {
		to := r.BorrowerName
		if to == "" {
			to = "(no borrower named)"
		}
		printfFn("→ %s: %s\n", to, r.Message)
	}
	return nil
}

func (a *App) Trust(ctx context.Context) error {
	ranks, err := a.scorer.Rank(ctx)
	if err != nil {
		return err
	}
	if len(ranks) == 0 {
		printlnFn("No return history yet.")
		return nil
	}
	for _, r := range ranks {
		printfFn("%3d%%  %-20s on time %d, late %d\n", r.Score, r.Name, r.ReturnsOnTime, r.ReturnsLate)
	}
	return nil
}

func (a *App) Export(ctx context.Context) error {
	snapshot, err := a.store.Export(ctx)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	printlnFn(string(b))
	return nil
}

func (a *App) Settings(ctx context.Context) error {
	settings, err := a.store.LoadSettings(ctx)
	if err != nil {
		return err
	}
	printfFn("Due-soon threshold: %d day(s), auto reminders: %v\n", settings.DueSoonDays, settings.AutoReminder)

	raw := a.promptLine("New due-soon days (empty to keep)")
	if raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 0 {
			printlnFn("Threshold must be a non-negative number; keeping", settings.DueSoonDays)
		} else {
			settings.DueSoonDays = days
		}
	}

	switch strings.ToLower(a.promptLine("Auto reminders on/off (empty to keep)")) {
	case "on":
		settings.AutoReminder = true
	case "off":
		settings.AutoReminder = false
	}

	return a.store.SaveSettings(ctx, settings)
}

func (a *App) Reset(ctx context.Context) error {
	if strings.ToLower(a.promptLine("Wipe ALL data? type yes to confirm")) != "yes" {
		printlnFn("Kept everything.")
		return nil
	}
	if err := a.store.Reset(ctx); err != nil {
		return err
	}
	printlnFn("All data cleared; defaults will be reseeded on next use.")
	return nil
}

func (a *App) printRecords(ctx context.Context, records []models.LoanRecord) error {
	if len(records) == 0 {
		printlnFn("Nothing here.")
		return nil
	}
	for _, r := range records {
		if err := a.printRecord(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) printRecord(ctx context.Context, r models.LoanRecord) error {
	settings, err := a.store.LoadSettings(ctx)
	if err != nil {
		return err
	}
	badge := services.Classify(r, settings, a.now())

	borrower := r.BorrowerName
	if borrower == "" {
		borrower = "?"
	}
	confirmed := ""
	if r.BorrowerConfirmed {
		confirmed = " (confirmed)"
	}

	printfFn("%s %-8s  %-10s %s → %s%s, due %s\n",
		badge.Indicator, badge.Label, r.Code, describe(r), borrower, confirmed, r.ReturnDate)
	return nil
}

func describe(r models.LoanRecord) string {
	if money, ok := r.Money(); ok {
		return models.FormatMoney(money.Amount, money.Currency)
	}
	item, _ := r.Item()
	return item.ItemName
}

// shareURL returns an external QR image URL for a loan code. Rendering the
// image is out of scope; the code itself is shared out-of-band.
func shareURL(code string) string {
	return "https://api.qrserver.com/v1/create-qr-code/?size=160x160&data=" + url.QueryEscape(code)
}
