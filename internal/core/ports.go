package core

// CategoryRepository defines data access for categories.
type CategoryRepository interface {
	GetByID(id string) (*Category, error)
	GetByName(name string) (*Category, error)
	GetAll() ([]*Category, error)
	Create(c *Category) error
	Update(c *Category) error
	Delete(id string) error
}

// ProductRepository defines data access for products and their pricing.
type ProductRepository interface {
	GetByID(id string) (*Product, error)
	FindByCategory(categoryID string) ([]*Product, error)
	Create(p *Product, tiers []PricingTier) error
	Update(p *Product) error
	Delete(id string) error

	// ReplacePricing deletes the product's tier set and reinserts the
	// given one. Callers must never pass an empty set.
	ReplacePricing(productID string, tiers []PricingTier) error
	GetPricing(productID string) ([]PricingTier, error)
	SetImage(productID, path string) error

	// Snapshot returns every product flattened with its category name and
	// slug, pricing tiers in insert order and reviews newest first. Built
	// fresh per call; the storefront takes one per page load.
	Snapshot() ([]*CatalogProduct, error)
}

// CouponRepository defines data access for coupons.
type CouponRepository interface {
	GetByCode(code string) (*Coupon, error)
	GetAll() ([]*Coupon, error)
	Create(c *Coupon) error
	Delete(id string) error

	// RenameCategoryScope follows a category rename so scoped coupons
	// keep matching.
	RenameCategoryScope(oldName, newName string) error
}

// OrderRepository defines data access for orders and their item snapshots.
type OrderRepository interface {
	// Create persists the order and its items atomically.
	Create(order *Order) error
	GetByOrderNumber(orderNumber string) (*Order, error)
	FindByOrderNumbers(orderNumbers []string) ([]*Order, error)
	FindAll(search string) ([]*Order, error)
	SetStatus(orderNumber, status string) error
	MarkAccessEmailSent(orderNumber string) error
}

// ReviewRepository defines data access for product reviews.
type ReviewRepository interface {
	Create(r *Review) error
	FindByProduct(productID string) ([]*Review, error)
	GetAll() ([]*Review, error)
	Delete(id string) error
}

// HotDealRepository defines data access for the promo selection.
type HotDealRepository interface {
	GetAll() ([]*HotDeal, error)
	ReplaceAll(deals []*HotDeal) error
}

// CheckoutLine is one cart row as seen by coupon evaluation: the resolved
// tier price and quantity plus enough product identity to match scopes.
type CheckoutLine struct {
	ProductID    string
	CategoryName string
	UnitPrice    float64
	Quantity     int
}

// CheckoutRequest mirrors the storefront checkout payload.
type CheckoutRequest struct {
	CustomerInfo CustomerInfo   `json:"customerInfo"`
	PaymentInfo  PaymentInfo    `json:"paymentInfo"`
	Items        []CheckoutItem `json:"items"`
	Coupon       CouponRef      `json:"coupon"`
	Totals       CheckoutTotals `json:"totals"`
}

type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type PaymentInfo struct {
	Method string `json:"method"`
	TrxID  string `json:"trx_id"`
}

type CheckoutItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Pricing  PricingSnapshot `json:"pricing"`
}

type PricingSnapshot struct {
	Duration string  `json:"duration"`
	Price    float64 `json:"price"`
}

type CouponRef struct {
	Code string `json:"code,omitempty"`
}

type CheckoutTotals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}
