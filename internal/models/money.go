package models

import (
	"math"
	"strconv"
)

// Currency is an ISO-style currency code. Codes outside the known set are
// carried through verbatim and rendered with a code suffix.
type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// Symbol returns the display symbol for known currencies, otherwise "".
func (c Currency) Symbol() string {
	switch c {
	case CurrencyINR:
		return "₹"
	case CurrencyUSD:
		return "$"
	case CurrencyEUR:
		return "€"
	default:
		return ""
	}
}

// FormatMoney renders an amount for display: "<symbol><amount>" for known
// currencies, "<amount> <code>" otherwise. Non-finite amounts render as 0.
func FormatMoney(amount float64, currency Currency) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	value := strconv.FormatFloat(amount, 'f', -1, 64)
	if symbol := currency.Symbol(); symbol != "" {
		return symbol + value
	}
	return value + " " + string(currency)
}
