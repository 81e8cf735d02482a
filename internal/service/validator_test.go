package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihanetx/submonth-z/internal/core"
)

func validCheckout() *core.CheckoutRequest {
	return &core.CheckoutRequest{
		CustomerInfo: core.CustomerInfo{
			Name:  "Rahim Uddin",
			Phone: "01712345678",
			Email: "rahim@example.com",
		},
		PaymentInfo: core.PaymentInfo{Method: "bKash", TrxID: "AB12CD34EF"},
		Items: []core.CheckoutItem{
			{ID: "p1", Name: "Canva Pro", Quantity: 1, Pricing: core.PricingSnapshot{Duration: "1 Year", Price: 450}},
		},
		Totals: core.CheckoutTotals{Subtotal: 450, Total: 450},
	}
}

func TestValidateCheckoutAccepts(t *testing.T) {
	assert.NoError(t, ValidateCheckout(validCheckout()))
}

func TestValidateCheckoutPhone(t *testing.T) {
	for _, phone := range []string{"0171234567", "017123456789", "01212345678", "+8801712345678", ""} {
		req := validCheckout()
		req.CustomerInfo.Phone = phone
		err := ValidateCheckout(req)
		require.Error(t, err, "phone %q should be rejected", phone)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
	}
}

func TestValidateTrxIDWallet(t *testing.T) {
	// bKash and Nagad require exactly 10 alphanumeric characters.
	assert.Error(t, ValidateTrxID("bKash", "abc"))
	assert.Error(t, ValidateTrxID("bKash", "AB12CD34EF9")) // 11 chars
	assert.Error(t, ValidateTrxID("Nagad", "AB12-CD34!"))
	assert.NoError(t, ValidateTrxID("bKash", "AB12CD34EF"))
	assert.NoError(t, ValidateTrxID("Nagad", "0123456789"))
}

func TestValidateTrxIDBinance(t *testing.T) {
	assert.Error(t, ValidateTrxID("Binance Pay", "123456789012345678"))   // 18 digits
	assert.Error(t, ValidateTrxID("Binance Pay", "12345678901234567890")) // 20 digits
	assert.Error(t, ValidateTrxID("Binance Pay", "123456789012345678a"))
	assert.NoError(t, ValidateTrxID("Binance Pay", "1234567890123456789"))
}

func TestValidateTrxIDGeneric(t *testing.T) {
	assert.Error(t, ValidateTrxID("Rocket", "abc1234"))
	assert.NoError(t, ValidateTrxID("Rocket", "abcd1234"))
	assert.NoError(t, ValidateTrxID("Rocket", "abcd1234efgh"))
}

func TestValidateCheckoutEmptyCart(t *testing.T) {
	req := validCheckout()
	req.Items = nil
	assert.Error(t, ValidateCheckout(req))
}

func TestValidateCheckoutBadQuantity(t *testing.T) {
	req := validCheckout()
	req.Items[0].Quantity = 0
	assert.Error(t, ValidateCheckout(req))
}
