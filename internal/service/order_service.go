package service

import (
	"errors"
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	"github.com/raihanetx/submonth-z/internal/core"
	"github.com/raihanetx/submonth-z/pkg/broker"
)

// OrderService owns order placement, status transitions and the manual
// access-details email flow.
type OrderService struct {
	orders     core.OrderRepository
	products   core.ProductRepository
	categories core.CategoryRepository
	coupons    *CouponService
	mail       *MailService
	events     *broker.Broker
}

func NewOrderService(
	orders core.OrderRepository,
	products core.ProductRepository,
	categories core.CategoryRepository,
	coupons *CouponService,
	mail *MailService,
	events *broker.Broker,
) *OrderService {
	return &OrderService{
		orders:     orders,
		products:   products,
		categories: categories,
		coupons:    coupons,
		mail:       mail,
		events:     events,
	}
}

// Place validates and persists a checkout. The subtotal is recomputed from
// the submitted item snapshots and a submitted coupon code is re-resolved
// server side; discount and total are accepted as the caller computed them
// and stored immutably. The order row and item rows commit atomically; on
// failure no partial order exists.
func (s *OrderService) Place(req *core.CheckoutRequest) (*core.Order, error) {
	if err := ValidateCheckout(req); err != nil {
		return nil, err
	}

	couponCode := strings.ToUpper(strings.TrimSpace(req.Coupon.Code))
	if couponCode != "" {
		if _, _, err := s.coupons.Apply(couponCode, s.checkoutLines(req.Items)); err != nil {
			switch {
			case errors.Is(err, ErrCouponNotFound):
				return nil, validationErrorf("Invalid coupon code.")
			case errors.Is(err, ErrCouponNotApplicable):
				return nil, validationErrorf("This coupon does not apply to the items in your cart.")
			default:
				return nil, err
			}
		}
	}

	var subtotal float64
	items := make([]core.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		subtotal += item.Pricing.Price * float64(item.Quantity)

		productRef := item.ID
		orderItem := core.OrderItem{
			Snapshot: core.PurchasedItemSnapshot{
				ProductName: item.Name,
				Duration:    item.Pricing.Duration,
				Price:       item.Pricing.Price,
				Quantity:    item.Quantity,
			},
		}
		if productRef != "" {
			orderItem.ProductRef = &productRef
		}
		items = append(items, orderItem)
	}

	discount, total := resolveTotals(req.Totals, subtotal)

	order := &core.Order{
		OrderNumber:   NewOrderNumber(),
		CustomerName:  req.CustomerInfo.Name,
		CustomerPhone: req.CustomerInfo.Phone,
		CustomerEmail: req.CustomerInfo.Email,
		PaymentMethod: req.PaymentInfo.Method,
		PaymentTrxID:  req.PaymentInfo.TrxID,
		CouponCode:    couponCode,
		Subtotal:      subtotal,
		Discount:      discount,
		Total:         total,
		Status:        core.StatusPending,
		Items:         items,
	}

	if err := s.orders.Create(order); err != nil {
		return nil, err
	}

	// Notify the admin side; neither may fail the placed order.
	s.events.Publish(broker.Event{
		Type:      "order.created",
		Timestamp: time.Now().Unix(),
		Data: map[string]any{
			"order_number": order.OrderNumber,
			"customer":     order.CustomerName,
			"total":        order.Total,
		},
	})
	go s.notifyAdmin(order)

	return order, nil
}

// checkoutLines maps submitted items to coupon-evaluation lines. Category
// names resolve through the catalog; an item whose product is gone keeps an
// empty category name and never matches a category-scoped coupon.
func (s *OrderService) checkoutLines(items []core.CheckoutItem) []core.CheckoutLine {
	lines := make([]core.CheckoutLine, 0, len(items))
	for _, item := range items {
		line := core.CheckoutLine{
			ProductID: item.ID,
			UnitPrice: item.Pricing.Price,
			Quantity:  item.Quantity,
		}
		if item.ID != "" {
			if product, err := s.products.GetByID(item.ID); err == nil && product != nil {
				if category, err := s.categories.GetByID(product.CategoryID); err == nil && category != nil {
					line.CategoryName = category.Name
				}
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// resolveTotals keeps the caller-computed discount and total as submitted,
// including a legitimate zero total on a fully discounted cart. Only an
// entirely absent totals block falls back to the recomputed subtotal.
func resolveTotals(submitted core.CheckoutTotals, subtotal float64) (discount, total float64) {
	if submitted.Subtotal == 0 && submitted.Discount == 0 && submitted.Total == 0 {
		return 0, subtotal
	}
	return submitted.Discount, submitted.Total
}

func (s *OrderService) notifyAdmin(order *core.Order) {
	adminEmail := s.mail.AdminAddress()
	if adminEmail == "" {
		return
	}

	subject := fmt.Sprintf("New Order #%s", order.OrderNumber)
	body := fmt.Sprintf(
		"<p>A new order has been placed by %s (total %.2f). Please check the admin panel.</p>",
		html.EscapeString(order.CustomerName), order.Total,
	)
	if err := s.mail.Send(adminEmail, subject, body); err != nil {
		log.Printf("orders: admin notification for #%s failed: %v", order.OrderNumber, err)
	}
}

// UpdateStatus overwrites the order status. There is deliberately no guard
// against repeated transitions; the admin panel is low-concurrency and
// last write wins.
func (s *OrderService) UpdateStatus(orderNumber, status string) error {
	switch status {
	case core.StatusPending, core.StatusConfirmed, core.StatusCancelled:
	default:
		return validationErrorf("Unknown order status %q.", status)
	}
	return s.orders.SetStatus(orderNumber, status)
}

// SendAccessEmail mails the admin-supplied access details to the customer
// of a confirmed order. The access_email_sent flag is set only after a
// confirmed delivery so a failed send stays retryable.
func (s *OrderService) SendAccessEmail(orderNumber, customerEmail, accessDetails string) error {
	order, err := s.orders.GetByOrderNumber(orderNumber)
	if err != nil {
		return err
	}
	if customerEmail == "" {
		customerEmail = order.CustomerEmail
	}

	subject := fmt.Sprintf("Your Submonth Order #%s is Confirmed!", order.OrderNumber)
	if err := s.mail.Send(customerEmail, subject, accessEmailBody(order, accessDetails)); err != nil {
		return err
	}

	return s.orders.MarkAccessEmailSent(orderNumber)
}

// accessEmailBody renders the confirmation mail. The free-text access
// details are escaped before newline conversion so they cannot inject
// markup.
func accessEmailBody(order *core.Order, accessDetails string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<p>Dear %s,</p>", html.EscapeString(order.CustomerName))
	fmt.Fprintf(&b, "<p>Your order <strong>#%s</strong> has been confirmed. Here are your access details:</p>", html.EscapeString(order.OrderNumber))

	details := strings.ReplaceAll(html.EscapeString(accessDetails), "\n", "<br>")
	fmt.Fprintf(&b, "<blockquote>%s</blockquote>", details)

	if len(order.Items) > 0 {
		b.WriteString("<p>Order summary:</p><ul>")
		for _, item := range order.Items {
			fmt.Fprintf(&b, "<li>%s (%s) x %d</li>",
				html.EscapeString(item.Snapshot.ProductName),
				html.EscapeString(item.Snapshot.Duration),
				item.Snapshot.Quantity,
			)
		}
		b.WriteString("</ul>")
	}

	b.WriteString("<p>Thank you for shopping with Submonth.</p>")
	return b.String()
}

// ListOrders exposes the admin order listing with optional search.
func (s *OrderService) ListOrders(search string) ([]*core.Order, error) {
	return s.orders.FindAll(search)
}

// FindByOrderNumbers resolves the storefront's locally remembered ids.
func (s *OrderService) FindByOrderNumbers(ids []string) ([]*core.Order, error) {
	return s.orders.FindByOrderNumbers(ids)
}
