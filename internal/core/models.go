package core

import "encoding/json"

// Category groups products for navigation and coupon scoping.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Icon string `json:"icon"` // CSS class reference
}

// Product is a single catalog entry owned by a category.
type Product struct {
	ID               string `json:"id"`
	CategoryID       string `json:"category_id"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	ShortDescription string `json:"description"`
	LongDescription  string `json:"long_description"` // markdown-lite: **bold** + newlines
	Image            string `json:"image"`            // public uploads path, empty when none
	StockOut         bool   `json:"stock_out"`
	Featured         bool   `json:"featured"`

	// Populated on reads that expand pricing.
	Pricing []PricingTier `json:"pricing,omitempty"`
}

// PricingTier is a (duration label, price) pair. A product always has at
// least one tier; single-price products carry exactly one tier named
// "Default".
type PricingTier struct {
	ID        string  `json:"id,omitempty"`
	ProductID string  `json:"-"`
	Duration  string  `json:"duration"`
	Price     float64 `json:"price"`
}

// DefaultDuration is the sentinel tier label for single-price products.
const DefaultDuration = "Default"

// Coupon scopes.
const (
	ScopeAllProducts   = "all_products"
	ScopeCategory      = "category"
	ScopeSingleProduct = "single_product"
)

// Coupon is a percentage discount. Codes are stored uppercase and are
// case-insensitively unique. Coupons are never edited, only added/deleted.
type Coupon struct {
	ID                 string `json:"id"`
	Code               string `json:"code"`
	DiscountPercentage int    `json:"discount_percentage"`
	IsActive           bool   `json:"is_active"`
	Scope              string `json:"scope"`
	ScopeValue         string `json:"scope_value"` // category name or product id, empty for all_products
}

// Order statuses.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
)

// Order is a placed checkout. Totals are snapshots computed at order time
// and are never recalculated from live prices.
type Order struct {
	ID              string  `json:"-"`
	OrderNumber     string  `json:"order_id"` // external-facing identifier
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerEmail   string  `json:"customer_email"`
	PaymentMethod   string  `json:"payment_method"`
	PaymentTrxID    string  `json:"payment_trx_id"`
	CouponCode      string  `json:"coupon_code"` // snapshot of the applied code, not a live reference
	Subtotal        float64 `json:"subtotal"`
	Discount        float64 `json:"discount"`
	Total           float64 `json:"total"`
	Status          string  `json:"status"`
	AccessEmailSent bool    `json:"access_email_sent"`
	Created         string  `json:"created"`

	Items []OrderItem `json:"items,omitempty"`
}

// PurchasedItemSnapshot is the immutable record of what was bought: name,
// tier and unit price at the time of sale, independent of the live catalog.
type PurchasedItemSnapshot struct {
	ProductName string  `json:"name"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// OrderItem pairs a purchase snapshot with a weak product reference. The
// reference may dangle once the product is deleted; callers must never use
// it as a substitute for the snapshot.
type OrderItem struct {
	ID         string
	OrderID    string
	ProductRef *string
	Snapshot   PurchasedItemSnapshot
}

// MarshalJSON flattens the item to its snapshot fields plus the weak
// product reference, the shape the storefront's order history expects.
func (i OrderItem) MarshalJSON() ([]byte, error) {
	payload := struct {
		ProductID string `json:"product_id,omitempty"`
		PurchasedItemSnapshot
	}{PurchasedItemSnapshot: i.Snapshot}
	if i.ProductRef != nil {
		payload.ProductID = *i.ProductRef
	}
	return json.Marshal(payload)
}

// CatalogProduct is the storefront's flattened product view: the product
// joined with its category's name and slug, plus pricing and reviews, as
// embedded into the page snapshot.
type CatalogProduct struct {
	Product
	Category     string    `json:"category"`
	CategorySlug string    `json:"category_slug"`
	Reviews      []*Review `json:"reviews"`
}

// Review is unauthenticated visitor feedback on a product.
type Review struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Rating    int    `json:"rating"` // 1-5
	Comment   string `json:"comment"`
	Created   string `json:"created"`
}

// HotDeal is an admin-curated promo entry. The whole selection is replaced
// on every save.
type HotDeal struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	CustomTitle string `json:"custom_title"` // optional display override of the product name
}

// AdminPrincipal identifies an authenticated admin for action handlers.
// There is a single shared credential, but handlers check for the principal
// explicitly instead of relying on ambient session state.
type AdminPrincipal struct {
	Name string
}
