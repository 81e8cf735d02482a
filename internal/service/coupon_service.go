package service

import (
	"errors"
	"strings"

	"github.com/raihanetx/submonth-z/internal/core"
)

// Coupon evaluation outcomes the storefront must distinguish: an unknown or
// inactive code reads differently to the customer than a valid code that
// matches none of the cart items.
var (
	ErrCouponNotFound      = errors.New("coupon code is invalid or inactive")
	ErrCouponNotApplicable = errors.New("coupon is not valid for the items in the cart")
)

type CouponService struct {
	coupons core.CouponRepository
}

func NewCouponService(coupons core.CouponRepository) *CouponService {
	return &CouponService{coupons: coupons}
}

// Create stores a new coupon. Codes are uppercased; the percentage must be
// 1-100; scoped coupons require a scope value.
func (s *CouponService) Create(code string, percentage int, active bool, scope, scopeValue string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return validationErrorf("Coupon code is required.")
	}
	if percentage < 1 || percentage > 100 {
		return validationErrorf("Discount percentage must be between 1 and 100.")
	}

	switch scope {
	case core.ScopeAllProducts:
		scopeValue = ""
	case core.ScopeCategory, core.ScopeSingleProduct:
		if scopeValue == "" {
			return validationErrorf("A scope value is required for %s coupons.", scope)
		}
	default:
		return validationErrorf("Unknown coupon scope %q.", scope)
	}

	return s.coupons.Create(&core.Coupon{
		Code:               code,
		DiscountPercentage: percentage,
		IsActive:           active,
		Scope:              scope,
		ScopeValue:         scopeValue,
	})
}

func (s *CouponService) Delete(id string) error {
	return s.coupons.Delete(id)
}

func (s *CouponService) List() ([]*core.Coupon, error) {
	return s.coupons.GetAll()
}

// Apply resolves a code against the cart. It returns the coupon and the
// discount amount, or ErrCouponNotFound / ErrCouponNotApplicable.
func (s *CouponService) Apply(code string, lines []core.CheckoutLine) (*core.Coupon, float64, error) {
	coupon, err := s.coupons.GetByCode(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil || coupon == nil || !coupon.IsActive {
		return nil, 0, ErrCouponNotFound
	}

	discount, applicable := EvaluateDiscount(coupon, lines)
	if !applicable {
		return nil, 0, ErrCouponNotApplicable
	}
	return coupon, discount, nil
}

// EvaluateDiscount computes the discount a coupon yields for a cart. The
// eligible subtotal covers all lines for all_products coupons, lines whose
// category name matches for category coupons, and lines whose product id
// matches for single_product coupons. applicable is false when no line is
// eligible.
func EvaluateDiscount(coupon *core.Coupon, lines []core.CheckoutLine) (discount float64, applicable bool) {
	if len(lines) == 0 {
		return 0, false
	}

	var eligible float64
	matched := false

	for _, line := range lines {
		lineTotal := line.UnitPrice * float64(line.Quantity)

		switch coupon.Scope {
		case "", core.ScopeAllProducts:
			eligible += lineTotal
			matched = true
		case core.ScopeCategory:
			if line.CategoryName == coupon.ScopeValue {
				eligible += lineTotal
				matched = true
			}
		case core.ScopeSingleProduct:
			if line.ProductID == coupon.ScopeValue {
				eligible += lineTotal
				matched = true
			}
		}
	}

	if !matched {
		return 0, false
	}
	return eligible * float64(coupon.DiscountPercentage) / 100, true
}

// CheckoutSubtotal sums price x quantity over the cart.
func CheckoutSubtotal(lines []core.CheckoutLine) float64 {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}
	return subtotal
}

// FinalTotal applies a discount to a subtotal, clamped at zero.
func FinalTotal(subtotal, discount float64) float64 {
	total := subtotal - discount
	if total < 0 {
		return 0
	}
	return total
}
