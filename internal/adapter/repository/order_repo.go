package repository

import (
	"fmt"
	"strings"

	"github.com/pocketbase/dbx"
	pbCore "github.com/pocketbase/pocketbase/core"

	"github.com/raihanetx/submonth-z/internal/core"
)

type PBOrderRepo struct {
	app pbCore.App
}

func NewOrderRepo(app pbCore.App) core.OrderRepository {
	return &PBOrderRepo{app: app}
}

func (r *PBOrderRepo) toDomain(record *pbCore.Record) *core.Order {
	return &core.Order{
		ID:              record.Id,
		OrderNumber:     record.GetString("order_number"),
		CustomerName:    record.GetString("customer_name"),
		CustomerPhone:   record.GetString("customer_phone"),
		CustomerEmail:   record.GetString("customer_email"),
		PaymentMethod:   record.GetString("payment_method"),
		PaymentTrxID:    record.GetString("payment_trx_id"),
		CouponCode:      record.GetString("coupon_code"),
		Subtotal:        record.GetFloat("subtotal"),
		Discount:        record.GetFloat("discount"),
		Total:           record.GetFloat("total"),
		Status:          record.GetString("status"),
		AccessEmailSent: record.GetBool("access_email_sent"),
		Created:         record.GetString("created"),
	}
}

func (r *PBOrderRepo) itemToDomain(record *pbCore.Record) core.OrderItem {
	item := core.OrderItem{
		ID:      record.Id,
		OrderID: record.GetString("order_id"),
		Snapshot: core.PurchasedItemSnapshot{
			ProductName: record.GetString("product_name"),
			Duration:    record.GetString("duration"),
			Price:       record.GetFloat("price"),
			Quantity:    record.GetInt("quantity"),
		},
	}
	if productID := record.GetString("product_id"); productID != "" {
		item.ProductRef = &productID
	}
	return item
}

// Create persists the order row and all item rows in one transaction. On
// any failure nothing is committed and no partial order is ever visible.
func (r *PBOrderRepo) Create(order *core.Order) error {
	return r.app.RunInTransaction(func(txApp pbCore.App) error {
		orders, err := txApp.FindCollectionByNameOrId("orders")
		if err != nil {
			return err
		}

		record := pbCore.NewRecord(orders)
		record.Set("order_number", order.OrderNumber)
		record.Set("customer_name", order.CustomerName)
		record.Set("customer_phone", order.CustomerPhone)
		record.Set("customer_email", order.CustomerEmail)
		record.Set("payment_method", order.PaymentMethod)
		record.Set("payment_trx_id", order.PaymentTrxID)
		record.Set("coupon_code", order.CouponCode)
		record.Set("subtotal", order.Subtotal)
		record.Set("discount", order.Discount)
		record.Set("total", order.Total)
		record.Set("status", order.Status)
		record.Set("access_email_sent", order.AccessEmailSent)

		if err := txApp.Save(record); err != nil {
			return err
		}
		order.ID = record.Id
		order.Created = record.GetString("created")

		items, err := txApp.FindCollectionByNameOrId("order_items")
		if err != nil {
			return err
		}

		for i := range order.Items {
			item := &order.Items[i]
			itemRecord := pbCore.NewRecord(items)
			itemRecord.Set("order_id", order.ID)
			if item.ProductRef != nil {
				itemRecord.Set("product_id", *item.ProductRef)
			}
			itemRecord.Set("product_name", item.Snapshot.ProductName)
			itemRecord.Set("duration", item.Snapshot.Duration)
			itemRecord.Set("price", item.Snapshot.Price)
			itemRecord.Set("quantity", item.Snapshot.Quantity)

			if err := txApp.Save(itemRecord); err != nil {
				return err
			}
			item.ID = itemRecord.Id
			item.OrderID = order.ID
		}

		return nil
	})
}

func (r *PBOrderRepo) GetByOrderNumber(orderNumber string) (*core.Order, error) {
	record, err := r.findRecord(orderNumber)
	if err != nil {
		return nil, err
	}

	order := r.toDomain(record)
	order.Items, err = r.findItems(order.ID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// FindByOrderNumbers resolves the customer's locally remembered ids into
// full orders, newest first. Unknown ids are simply skipped.
func (r *PBOrderRepo) FindByOrderNumbers(orderNumbers []string) ([]*core.Order, error) {
	if len(orderNumbers) == 0 {
		return []*core.Order{}, nil
	}

	params := dbx.Params{}
	parts := make([]string, 0, len(orderNumbers))
	for i, n := range orderNumbers {
		key := fmt.Sprintf("n%d", i)
		parts = append(parts, fmt.Sprintf("order_number = {:%s}", key))
		params[key] = n
	}

	records, err := r.app.FindRecordsByFilter(
		"orders",
		strings.Join(parts, " || "),
		"-created", 0, 0,
		params,
	)
	if err != nil {
		return nil, err
	}

	var orders []*core.Order
	for _, rec := range records {
		order := r.toDomain(rec)
		order.Items, _ = r.findItems(order.ID)
		orders = append(orders, order)
	}
	return orders, nil
}

// FindAll lists orders for the admin view, optionally filtered by a search
// term matched against order number and customer fields.
func (r *PBOrderRepo) FindAll(search string) ([]*core.Order, error) {
	filter := ""
	var params dbx.Params
	if search != "" {
		filter = "order_number ~ {:q} || customer_name ~ {:q} || customer_phone ~ {:q} || customer_email ~ {:q}"
		params = dbx.Params{"q": search}
	}

	records, err := r.app.FindRecordsByFilter("orders", filter, "-created", 0, 0, params)
	if err != nil {
		return nil, err
	}

	var orders []*core.Order
	for _, rec := range records {
		order := r.toDomain(rec)
		order.Items, _ = r.findItems(order.ID)
		orders = append(orders, order)
	}
	return orders, nil
}

// SetStatus overwrites the order status unconditionally; repeated calls
// simply win last.
func (r *PBOrderRepo) SetStatus(orderNumber, status string) error {
	record, err := r.findRecord(orderNumber)
	if err != nil {
		return err
	}
	record.Set("status", status)
	return r.app.Save(record)
}

func (r *PBOrderRepo) MarkAccessEmailSent(orderNumber string) error {
	record, err := r.findRecord(orderNumber)
	if err != nil {
		return err
	}
	record.Set("access_email_sent", true)
	return r.app.Save(record)
}

func (r *PBOrderRepo) findRecord(orderNumber string) (*pbCore.Record, error) {
	return r.app.FindFirstRecordByData("orders", "order_number", orderNumber)
}

func (r *PBOrderRepo) findItems(orderID string) ([]core.OrderItem, error) {
	records, err := r.app.FindRecordsByFilter(
		"order_items",
		"order_id = {:orderId}",
		"created", 0, 0,
		dbx.Params{"orderId": orderID},
	)
	if err != nil {
		return nil, err
	}

	var items []core.OrderItem
	for _, rec := range records {
		items = append(items, r.itemToDomain(rec))
	}
	return items, nil
}
