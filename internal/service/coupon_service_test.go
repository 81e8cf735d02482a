package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raihanetx/submonth-z/internal/core"
)

func cartLines() []core.CheckoutLine {
	return []core.CheckoutLine{
		{ProductID: "p1", CategoryName: "Streaming", UnitPrice: 150, Quantity: 2},
		{ProductID: "p2", CategoryName: "Design", UnitPrice: 300, Quantity: 1},
	}
}

func TestEvaluateDiscountAllProducts(t *testing.T) {
	coupon := &core.Coupon{Code: "SAVE20", DiscountPercentage: 20, Scope: core.ScopeAllProducts}

	discount, ok := EvaluateDiscount(coupon, cartLines())

	assert.True(t, ok)
	assert.InDelta(t, 120, discount, 1e-9) // 20% of 600
}

func TestEvaluateDiscountCategoryScope(t *testing.T) {
	coupon := &core.Coupon{Code: "STREAM10", DiscountPercentage: 10, Scope: core.ScopeCategory, ScopeValue: "Streaming"}

	discount, ok := EvaluateDiscount(coupon, cartLines())

	assert.True(t, ok)
	assert.InDelta(t, 30, discount, 1e-9) // 10% of 2x150 only
}

func TestEvaluateDiscountCategoryScopeNoMatch(t *testing.T) {
	coupon := &core.Coupon{Code: "GAMES50", DiscountPercentage: 50, Scope: core.ScopeCategory, ScopeValue: "Gaming"}

	discount, ok := EvaluateDiscount(coupon, cartLines())

	assert.False(t, ok, "a coupon with zero eligible items is inapplicable, not zero-discount")
	assert.Zero(t, discount)
}

func TestEvaluateDiscountSingleProduct(t *testing.T) {
	coupon := &core.Coupon{Code: "P2ONLY", DiscountPercentage: 100, Scope: core.ScopeSingleProduct, ScopeValue: "p2"}

	discount, ok := EvaluateDiscount(coupon, cartLines())

	assert.True(t, ok)
	assert.InDelta(t, 300, discount, 1e-9)
}

func TestEvaluateDiscountEmptyCart(t *testing.T) {
	coupon := &core.Coupon{Code: "SAVE20", DiscountPercentage: 20, Scope: core.ScopeAllProducts}

	_, ok := EvaluateDiscount(coupon, nil)

	assert.False(t, ok)
}

func TestEvaluateDiscountMissingScopeDefaultsToAll(t *testing.T) {
	// Legacy rows may carry an empty scope; they behave like all_products.
	coupon := &core.Coupon{Code: "OLD", DiscountPercentage: 5}

	discount, ok := EvaluateDiscount(coupon, cartLines())

	assert.True(t, ok)
	assert.InDelta(t, 30, discount, 1e-9)
}

func TestFinalTotalNeverNegative(t *testing.T) {
	assert.Equal(t, 480.0, FinalTotal(600, 120))
	assert.Equal(t, 0.0, FinalTotal(100, 150))
	assert.Equal(t, 0.0, FinalTotal(0, 0))
}

func TestCheckoutSubtotal(t *testing.T) {
	assert.InDelta(t, 600, CheckoutSubtotal(cartLines()), 1e-9)
	assert.Zero(t, CheckoutSubtotal(nil))
}
