// Package models defines the loan record types and their serialized shapes.
package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/borrowsafe/borrowsafe/internal/datex"
)

// Kind classifies what was lent out.
type Kind string

const (
	KindItem  Kind = "item"
	KindMoney Kind = "money"
)

// Status is the lifecycle state of a loan record. A returned record is
// terminal; no transition leaves it.
type Status string

const (
	StatusActive   Status = "active"
	StatusReturned Status = "returned"
)

// Detail is the kind-specific half of a loan record. Exactly one concrete
// detail type exists per Kind.
type Detail interface {
	Kind() Kind
}

// ItemDetail describes a lent physical item.
type ItemDetail struct {
	ItemName string `json:"itemName"`
}

func (ItemDetail) Kind() Kind { return KindItem }

// MoneyDetail describes lent money.
type MoneyDetail struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
	Note     string   `json:"note,omitempty"`
}

func (MoneyDetail) Kind() Kind { return KindMoney }

// LoanRecord is the central entity: one lending of an item or money between
// an owner and a borrower, keyed by a human-shareable code.
//
// Invariants: ID always equals Code; Code never changes after creation;
// Status is "returned" iff ReturnedOn is set; BorrowerConfirmed never
// reverts to false once set.
type LoanRecord struct {
	// ID is the unique identifier; equal to Code at creation.
	ID string

	// Code is the shareable lookup key. Lookups are case-insensitive.
	Code string

	// Detail holds the kind-specific fields (ItemDetail or MoneyDetail).
	Detail Detail

	// OwnerName is the lender's display name ("You" when left blank).
	OwnerName string

	// BorrowerName is empty until the borrower confirms or is named up front.
	BorrowerName string

	// BorrowDate is the day the loan was created.
	BorrowDate datex.Day

	// ReturnDate is the agreed due day.
	ReturnDate datex.Day

	Status            Status
	BorrowerConfirmed bool

	// ReturnedOn is set only when the loan is marked returned.
	ReturnedOn *datex.Day

	// RemindedAt is set only when a reminder pass selects this record.
	RemindedAt *time.Time
}

// Kind returns the record's variant tag.
func (r LoanRecord) Kind() Kind { return r.Detail.Kind() }

// Returned reports whether the record reached its terminal state.
func (r LoanRecord) Returned() bool { return r.Status == StatusReturned }

// Item returns the item detail, if this is an item loan.
func (r LoanRecord) Item() (ItemDetail, bool) {
	d, ok := r.Detail.(ItemDetail)
	return d, ok
}

// Money returns the money detail, if this is a money loan.
func (r LoanRecord) Money() (MoneyDetail, bool) {
	d, ok := r.Detail.(MoneyDetail)
	return d, ok
}

// loanRecordJSON is the flat persisted shape. Kind-specific fields are
// optional and populated according to the "type" tag.
type loanRecordJSON struct {
	ID                string     `json:"id"`
	Code              string     `json:"code"`
	Kind              Kind       `json:"type"`
	ItemName          string     `json:"itemName,omitempty"`
	Amount            *float64   `json:"amount,omitempty"`
	Currency          Currency   `json:"currency,omitempty"`
	Note              string     `json:"note,omitempty"`
	OwnerName         string     `json:"ownerName"`
	BorrowerName      string     `json:"borrowerName"`
	BorrowDate        datex.Day  `json:"borrowDate"`
	ReturnDate        datex.Day  `json:"returnDate"`
	Status            Status     `json:"status"`
	BorrowerConfirmed bool       `json:"borrowerConfirmed"`
	ReturnedOn        *datex.Day `json:"returnedOn,omitempty"`
	RemindedAt        *time.Time `json:"remindedAt,omitempty"`
}

// MarshalJSON flattens the record into its persisted shape.
func (r LoanRecord) MarshalJSON() ([]byte, error) {
	dto := loanRecordJSON{
		ID:                r.ID,
		Code:              r.Code,
		OwnerName:         r.OwnerName,
		BorrowerName:      r.BorrowerName,
		BorrowDate:        r.BorrowDate,
		ReturnDate:        r.ReturnDate,
		Status:            r.Status,
		BorrowerConfirmed: r.BorrowerConfirmed,
		ReturnedOn:        r.ReturnedOn,
		RemindedAt:        r.RemindedAt,
	}

	switch d := r.Detail.(type) {
	case ItemDetail:
		dto.Kind = KindItem
		dto.ItemName = d.ItemName
	case MoneyDetail:
		dto.Kind = KindMoney
		amount := d.Amount
		dto.Amount = &amount
		dto.Currency = d.Currency
		dto.Note = d.Note
	default:
		return nil, fmt.Errorf("loan record %s has unknown detail %T", r.ID, r.Detail)
	}

	return json.Marshal(dto)
}

// UnmarshalJSON reconstructs the kind-specific detail from the "type" tag.
func (r *LoanRecord) UnmarshalJSON(data []byte) error {
	var dto loanRecordJSON
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}

	var detail Detail
	switch dto.Kind {
	case KindItem:
		detail = ItemDetail{ItemName: dto.ItemName}
	case KindMoney:
		var amount float64
		if dto.Amount != nil {
			amount = *dto.Amount
		}
		detail = MoneyDetail{Amount: amount, Currency: dto.Currency, Note: dto.Note}
	default:
		return fmt.Errorf("loan record %s has unknown type %q", dto.ID, dto.Kind)
	}

	*r = LoanRecord{
		ID:                dto.ID,
		Code:              dto.Code,
		Detail:            detail,
		OwnerName:         dto.OwnerName,
		BorrowerName:      dto.BorrowerName,
		BorrowDate:        dto.BorrowDate,
		ReturnDate:        dto.ReturnDate,
		Status:            dto.Status,
		BorrowerConfirmed: dto.BorrowerConfirmed,
		ReturnedOn:        dto.ReturnedOn,
		RemindedAt:        dto.RemindedAt,
	}
	return nil
}
