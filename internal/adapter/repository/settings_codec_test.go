package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihanetx/submonth-z/internal/core"
)

func TestEncodeValueScalars(t *testing.T) {
	got, err := encodeValue("uploads/logo-1.png")
	require.NoError(t, err)
	assert.Equal(t, "uploads/logo-1.png", got)

	got, err = encodeValue(5000)
	require.NoError(t, err)
	assert.Equal(t, "5000", got)

	got, err = encodeValue(121.5)
	require.NoError(t, err)
	assert.Equal(t, "121.5", got)
}

func TestEncodeValueStructured(t *testing.T) {
	got, err := encodeValue(core.ContactInfo{Phone: "01712345678", WhatsApp: "01712345678", Email: "hi@example.com"})
	require.NoError(t, err)

	var back core.ContactInfo
	require.True(t, decodeValue(got, &back))
	assert.Equal(t, "01712345678", back.Phone)
	assert.Equal(t, "hi@example.com", back.Email)
}

func TestDecodeValueFallsBackOnScalar(t *testing.T) {
	// A bare scalar is not valid JSON for a struct target; the caller keeps
	// the raw string instead.
	var contact core.ContactInfo
	assert.False(t, decodeValue("just-a-string", &contact))
	assert.False(t, decodeValue("", &contact))
}

func TestPaymentMethodsRoundTrip(t *testing.T) {
	methods := map[string]core.PaymentMethod{
		"bKash":       {Number: "01700000000", LogoURL: "uploads/payment-bkash.png"},
		"Binance Pay": {PayID: "123456789"},
	}

	encoded, err := encodeValue(methods)
	require.NoError(t, err)

	var back map[string]core.PaymentMethod
	require.True(t, decodeValue(encoded, &back))
	assert.Equal(t, methods, back)
}
