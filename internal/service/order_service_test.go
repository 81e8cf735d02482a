package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihanetx/submonth-z/internal/core"
)

type fakeCouponRepo struct {
	core.CouponRepository
	coupon *core.Coupon
}

func (f *fakeCouponRepo) GetByCode(code string) (*core.Coupon, error) {
	if f.coupon != nil && f.coupon.Code == code {
		return f.coupon, nil
	}
	return nil, nil
}

func newCouponCheckingOrderService(coupon *core.Coupon) *OrderService {
	return &OrderService{
		products:   &fakeProductRepo{existing: &core.Product{ID: "p1", CategoryID: "c1"}},
		categories: &fakeCategoryRepo{byID: map[string]*core.Category{"c1": {ID: "c1", Name: "Streaming"}}},
		coupons:    NewCouponService(&fakeCouponRepo{coupon: coupon}),
	}
}

func checkoutRequest(couponCode string) *core.CheckoutRequest {
	return &core.CheckoutRequest{
		CustomerInfo: core.CustomerInfo{Name: "Rahim", Phone: "01712345678", Email: "rahim@example.com"},
		PaymentInfo:  core.PaymentInfo{Method: "bKash", TrxID: "AB12CD34EF"},
		Items: []core.CheckoutItem{
			{ID: "p1", Name: "Netflix Premium", Quantity: 1, Pricing: core.PricingSnapshot{Duration: "1 Month", Price: 350}},
		},
		Coupon: core.CouponRef{Code: couponCode},
		Totals: core.CheckoutTotals{Subtotal: 350, Discount: 0, Total: 350},
	}
}

func TestPlaceRejectsUnknownCouponCode(t *testing.T) {
	svc := newCouponCheckingOrderService(nil)

	_, err := svc.Place(checkoutRequest("NOPE"))

	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
	assert.Equal(t, "Invalid coupon code.", err.Error())
}

func TestPlaceRejectsInapplicableCoupon(t *testing.T) {
	svc := newCouponCheckingOrderService(&core.Coupon{
		Code:               "SAVE10",
		DiscountPercentage: 10,
		IsActive:           true,
		Scope:              core.ScopeSingleProduct,
		ScopeValue:         "other-product",
	})

	_, err := svc.Place(checkoutRequest("save10"))

	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
	assert.Equal(t, "This coupon does not apply to the items in your cart.", err.Error())
}

func TestPlaceAcceptsCategoryScopedCoupon(t *testing.T) {
	svc := newCouponCheckingOrderService(&core.Coupon{
		Code:               "STREAM20",
		DiscountPercentage: 20,
		IsActive:           true,
		Scope:              core.ScopeCategory,
		ScopeValue:         "Streaming",
	})

	lines := svc.checkoutLines(checkoutRequest("STREAM20").Items)

	require.Len(t, lines, 1)
	assert.Equal(t, "Streaming", lines[0].CategoryName)
	_, discount, err := svc.coupons.Apply("STREAM20", lines)
	require.NoError(t, err)
	assert.InDelta(t, 70.0, discount, 0.001)
}

func TestResolveTotalsKeepsSubmittedValues(t *testing.T) {
	discount, total := resolveTotals(core.CheckoutTotals{Subtotal: 100, Discount: 100, Total: 0}, 100)
	assert.Equal(t, 100.0, discount)
	assert.Equal(t, 0.0, total)

	discount, total = resolveTotals(core.CheckoutTotals{Subtotal: 350, Discount: 35, Total: 315}, 350)
	assert.Equal(t, 35.0, discount)
	assert.Equal(t, 315.0, total)
}

func TestResolveTotalsFallsBackWhenAbsent(t *testing.T) {
	discount, total := resolveTotals(core.CheckoutTotals{}, 350)
	assert.Equal(t, 0.0, discount)
	assert.Equal(t, 350.0, total)
}

func TestAccessEmailBodyEscapesDetails(t *testing.T) {
	order := &core.Order{
		OrderNumber:  "1700000000-abcd1234",
		CustomerName: "Rahim <admin>",
		Items: []core.OrderItem{
			{Snapshot: core.PurchasedItemSnapshot{ProductName: "Canva Pro", Duration: "1 Month", Quantity: 2}},
		},
	}

	body := accessEmailBody(order, "user: a&b\npass: <secret>")

	assert.Contains(t, body, "Rahim &lt;admin&gt;")
	assert.Contains(t, body, "user: a&amp;b<br>pass: &lt;secret&gt;")
	assert.Contains(t, body, "Canva Pro (1 Month) x 2")
	assert.NotContains(t, body, "<secret>")
}

func TestAccessEmailBodyWithoutItems(t *testing.T) {
	order := &core.Order{OrderNumber: "1-x", CustomerName: "Karim"}

	body := accessEmailBody(order, "details")

	assert.NotContains(t, body, "Order summary")
	assert.Contains(t, body, "<blockquote>details</blockquote>")
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc := &OrderService{}

	err := svc.UpdateStatus("1-x", "Shipped")

	assert.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
}
