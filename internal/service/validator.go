package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/raihanetx/submonth-z/internal/core"
)

// ValidationError carries a message safe to show to the customer.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

var (
	phonePattern      = regexp.MustCompile(`^01[3-9]\d{8}$`)
	walletTrxPattern  = regexp.MustCompile(`^[a-zA-Z0-9]{10}$`)
	binanceTrxPattern = regexp.MustCompile(`^[0-9]{19}$`)
	genericTrxPattern = regexp.MustCompile(`^[a-zA-Z0-9]{8,}$`)
)

// ValidateCheckout re-applies the storefront's client-side rules on the
// server, since client validation is bypassable.
func ValidateCheckout(req *core.CheckoutRequest) error {
	info := req.CustomerInfo
	if strings.TrimSpace(info.Name) == "" || strings.TrimSpace(info.Email) == "" {
		return validationErrorf("Name and email are required.")
	}
	if !phonePattern.MatchString(info.Phone) {
		return validationErrorf("Please enter a valid 11-digit mobile number (e.g., 01712345678).")
	}

	if req.PaymentInfo.Method == "" {
		return validationErrorf("Please select a payment method.")
	}
	if err := ValidateTrxID(req.PaymentInfo.Method, req.PaymentInfo.TrxID); err != nil {
		return err
	}

	if len(req.Items) == 0 {
		return validationErrorf("Your cart is empty.")
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return validationErrorf("Item quantity must be at least 1.")
		}
		if item.Pricing.Price < 0 {
			return validationErrorf("Invalid item price.")
		}
	}

	return nil
}

// ValidateTrxID checks the transaction id format for the selected payment
// method: fixed 10 alphanumeric for the wallet methods, fixed 19 digits for
// Binance Pay, 8+ alphanumeric otherwise.
func ValidateTrxID(method, trxID string) error {
	switch method {
	case "bKash", "Nagad":
		if !walletTrxPattern.MatchString(trxID) {
			return validationErrorf("Please enter the valid 10-character %s Transaction ID.", method)
		}
	case "Binance Pay":
		if !binanceTrxPattern.MatchString(trxID) {
			return validationErrorf("Please enter a valid 19-digit Binance Pay Order ID.")
		}
	default:
		if !genericTrxPattern.MatchString(trxID) {
			return validationErrorf("Please enter a valid Transaction ID (at least 8 characters).")
		}
	}
	return nil
}
