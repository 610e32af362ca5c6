package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/borrowsafe/borrowsafe/internal/models"
)

func TestDescribe(t *testing.T) {
	item := models.LoanRecord{Detail: models.ItemDetail{ItemName: "Charger"}}
	assert.Equal(t, "Charger", describe(item))

	money := models.LoanRecord{Detail: models.MoneyDetail{Amount: 500, Currency: models.CurrencyINR}}
	assert.Equal(t, "₹500", describe(money))
}

func TestShareURL_EscapesCode(t *testing.T) {
	assert.Equal(t,
		"https://api.qrserver.com/v1/create-qr-code/?size=160x160&data=BS-AB12%2B03",
		shareURL("BS-AB12+03"))
}
