package store

import (
	"time"

	"github.com/borrowsafe/borrowsafe/internal/datex"
	"github.com/borrowsafe/borrowsafe/internal/models"
)

// SeedRecords returns the demo loans the records collection is seeded with on
// first read. Also used as the fallback when the stored payload is unreadable.
func SeedRecords() []models.LoanRecord {
	penReturned := datex.New(2026, time.January, 5)

	return []models.LoanRecord{
		{
			ID:                "BS-1001",
			Code:              "CHG910",
			Detail:            models.ItemDetail{ItemName: "Charger"},
			OwnerName:         "Rahul",
			BorrowerName:      "Ajay",
			BorrowDate:        datex.New(2026, time.January, 3),
			ReturnDate:        datex.New(2026, time.January, 8),
			Status:            models.StatusActive,
			BorrowerConfirmed: true,
		},
		{
			ID:                "BS-1002",
			Code:              "HLM512",
			Detail:            models.ItemDetail{ItemName: "Helmet"},
			OwnerName:         "Nikita",
			BorrowerName:      "Dev",
			BorrowDate:        datex.New(2026, time.January, 2),
			ReturnDate:        datex.New(2026, time.January, 7),
			Status:            models.StatusActive,
			BorrowerConfirmed: true,
		},
		{
			ID:                "BS-2001",
			Code:              "MNY500",
			Detail:            models.MoneyDetail{Amount: 500, Currency: models.CurrencyINR, Note: "Emergency travel"},
			OwnerName:         "Rahul",
			BorrowerName:      "Ajay",
			BorrowDate:        datex.New(2026, time.January, 4),
			ReturnDate:        datex.New(2026, time.January, 9),
			Status:            models.StatusActive,
			BorrowerConfirmed: true,
		},
		{
			ID:                "BS-1003",
			Code:              "PEN204",
			Detail:            models.ItemDetail{ItemName: "Pen"},
			OwnerName:         "Sara",
			BorrowerName:      "Mihir",
			BorrowDate:        datex.New(2026, time.January, 1),
			ReturnDate:        datex.New(2026, time.January, 4),
			Status:            models.StatusReturned,
			BorrowerConfirmed: true,
			ReturnedOn:        &penReturned,
		},
	}
}
