package models

// Reminder is a generated, non-delivered notification payload describing an
// upcoming or past due date. Delivery is presentation's problem.
type Reminder struct {
	// ID uniquely identifies this generated payload.
	ID string

	// RecordID is the loan record the reminder is about.
	RecordID string

	Kind         Kind
	BorrowerName string

	// Message is the human-readable templated text, phrased differently for
	// money and item loans.
	Message string
}
