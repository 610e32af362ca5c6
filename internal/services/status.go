package services

import (
	"time"

	"github.com/borrowsafe/borrowsafe/internal/datex"
	"github.com/borrowsafe/borrowsafe/internal/models"
)

// Badge is the derived display status of a loan record.
type Badge struct {
	Label     string
	Indicator string
}

// Display labels in classification order.
const (
	LabelReturned = "Returned"
	LabelOverdue  = "Overdue"
	LabelDueSoon  = "Due Soon"
	LabelBorrowed = "Borrowed"
)

// Classify derives the display status of a record from its state, its due
// date and the due-soon threshold, evaluated against now. A due date exactly
// at the threshold counts as Due Soon.
func Classify(r models.LoanRecord, settings models.Settings, now time.Time) Badge {
	if r.Returned() {
		return Badge{Label: LabelReturned, Indicator: "✅"}
	}

	left := datex.DaysLeft(r.ReturnDate, now)
	switch {
	case left < 0:
		return Badge{Label: LabelOverdue, Indicator: "🔴"}
	case left <= settings.DueSoonDays:
		return Badge{Label: LabelDueSoon, Indicator: "🟡"}
	default:
		return Badge{Label: LabelBorrowed, Indicator: "🟢"}
	}
}
