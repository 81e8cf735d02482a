package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		minZero := float64(0)
		minOne := float64(1)
		maxHundred := float64(100)
		maxFive := float64(5)

		// Helper to add system fields if missing
		addSystemFields := func(c *core.Collection) {
			c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
			c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		}

		exists := func(name string) bool {
			_, err := app.FindCollectionByNameOrId(name)
			return err == nil
		}

		// ----------------------------------------------------
		// 1. CATEGORIES
		// ----------------------------------------------------
		if !exists("categories") {
			cats := core.NewBaseCollection("categories")
			addSystemFields(cats)
			cats.Fields.Add(&core.TextField{Name: "name", Required: true})
			cats.Fields.Add(&core.TextField{Name: "slug", Required: true})
			cats.Fields.Add(&core.TextField{Name: "icon"})

			cats.AddIndex("idx_categories_name", true, "name", "")

			if err := app.Save(cats); err != nil {
				return err
			}
		}

		// ----------------------------------------------------
		// 2. PRODUCTS
		// ----------------------------------------------------
		if !exists("products") {
			categories, err := app.FindCollectionByNameOrId("categories")
			if err != nil {
				return err
			}

			products := core.NewBaseCollection("products")
			addSystemFields(products)
			products.Fields.Add(&core.RelationField{
				Name:          "category_id",
				CollectionId:  categories.Id,
				MaxSelect:     1,
				Required:      true,
				CascadeDelete: true,
			})
			products.Fields.Add(&core.TextField{Name: "name", Required: true})
			// Slugs are display-only and may collide, so no unique index.
			products.Fields.Add(&core.TextField{Name: "slug", Required: true})
			products.Fields.Add(&core.TextField{Name: "short_description"})
			products.Fields.Add(&core.TextField{Name: "long_description", Max: 50000})
			products.Fields.Add(&core.TextField{Name: "image"})
			products.Fields.Add(&core.BoolField{Name: "stock_out"})
			products.Fields.Add(&core.BoolField{Name: "featured"})

			products.AddIndex("idx_products_category", false, "category_id", "")
			products.AddIndex("idx_products_slug", false, "slug", "")

			if err := app.Save(products); err != nil {
				return err
			}
		}

		// ----------------------------------------------------
		// 3. PRODUCT PRICING
		// ----------------------------------------------------
		if !exists("product_pricing") {
			products, err := app.FindCollectionByNameOrId("products")
			if err != nil {
				return err
			}

			pricing := core.NewBaseCollection("product_pricing")
			addSystemFields(pricing)
			pricing.Fields.Add(&core.RelationField{
				Name:          "product_id",
				CollectionId:  products.Id,
				MaxSelect:     1,
				Required:      true,
				CascadeDelete: true,
			})
			pricing.Fields.Add(&core.TextField{Name: "duration", Required: true})
			pricing.Fields.Add(&core.NumberField{Name: "price", Required: true, Min: &minZero})
			pricing.Fields.Add(&core.NumberField{Name: "sort_order", Min: &minZero})

			pricing.AddIndex("idx_pricing_product", false, "product_id", "")

			if err := app.Save(pricing); err != nil {
				return err
			}
		}

		// ----------------------------------------------------
		// 4. COUPONS
		// ----------------------------------------------------
		if !exists("coupons") {
			coupons := core.NewBaseCollection("coupons")
			addSystemFields(coupons)
			coupons.Fields.Add(&core.TextField{Name: "code", Required: true})
			coupons.Fields.Add(&core.NumberField{
				Name:     "discount_percentage",
				Required: true,
				Min:      &minOne,
				Max:      &maxHundred,
			})
			coupons.Fields.Add(&core.BoolField{Name: "is_active"})
			coupons.Fields.Add(&core.SelectField{
				Name:     "scope",
				Required: true,
				Values:   []string{"all_products", "category", "single_product"},
			})
			coupons.Fields.Add(&core.TextField{Name: "scope_value"})

			coupons.AddIndex("idx_coupons_code", true, "code", "")

			if err := app.Save(coupons); err != nil {
				return err
			}
		}

		// ----------------------------------------------------
		// 5. ORDERS
		// ----------------------------------------------------
		if !exists("orders") {
			orders := core.NewBaseCollection("orders")
			addSystemFields(orders)
			orders.Fields.Add(&core.TextField{Name: "order_number", Required: true})
			orders.Fields.Add(&core.TextField{Name: "customer_name", Required: true})
			orders.Fields.Add(&core.TextField{Name: "customer_phone", Required: true})
			orders.Fields.Add(&core.TextField{Name: "customer_email", Required: true})
			orders.Fields.Add(&core.TextField{Name: "payment_method", Required: true})
			orders.Fields.Add(&core.TextField{Name: "payment_trx_id", Required: true})
			orders.Fields.Add(&core.TextField{Name: "coupon_code"})
			orders.Fields.Add(&core.NumberField{Name: "subtotal", Required: true, Min: &minZero})
			orders.Fields.Add(&core.NumberField{Name: "discount", Min: &minZero})
			orders.Fields.Add(&core.NumberField{Name: "total", Min: &minZero})
			orders.Fields.Add(&core.SelectField{
				Name:     "status",
				Required: true,
				Values:   []string{"Pending", "Confirmed", "Cancelled"},
			})
			orders.Fields.Add(&core.BoolField{Name: "access_email_sent"})

			orders.AddIndex("idx_orders_number", true, "order_number", "")
			orders.AddIndex("idx_orders_status", false, "status", "")

			if err := app.Save(orders); err != nil {
				return err
			}
		}

		// ----------------------------------------------------
		// 6. ORDER ITEMS
		// ----------------------------------------------------
		if !exists("order_items") {
			orders, err := app.FindCollectionByNameOrId("orders")
			if err != nil {
				return err
			}

			items := core.NewBaseCollection("order_items")
			addSystemFields(items)
			items.Fields.Add(&core.RelationField{
				Name:          "order_id",
				CollectionId:  orders.Id,
				MaxSelect:     1,
				Required:      true,
				CascadeDelete: true,
			})
			// Weak reference on purpose: the product may be deleted later
			// while the snapshot fields below stay authoritative.
			items.Fields.Add(&core.TextField{Name: "product_id"})
			items.Fields.Add(&core.TextField{Name: "product_name", Required: true})
			items.Fields.Add(&core.TextField{Name: "duration", Required: true})
			items.Fields.Add(&core.NumberField{Name: "price", Required: true, Min: &minZero})
			items.Fields.Add(&core.NumberField{Name: "quantity", Required: true, Min: &minOne})

			items.AddIndex("idx_order_items_order", false, "order_id", "")

			if err := app.Save(items); err != nil {
				return err
			}
		}

		// ----------------------------------------------------
		// 7. REVIEWS
		// ----------------------------------------------------
		if !exists("reviews") {
			products, err := app.FindCollectionByNameOrId("products")
			if err != nil {
				return err
			}

			reviews := core.NewBaseCollection("reviews")
			addSystemFields(reviews)
			reviews.Fields.Add(&core.RelationField{
				Name:          "product_id",
				CollectionId:  products.Id,
				MaxSelect:     1,
				Required:      true,
				CascadeDelete: true,
			})
			reviews.Fields.Add(&core.TextField{Name: "name", Required: true})
			reviews.Fields.Add(&core.NumberField{Name: "rating", Required: true, Min: &minOne, Max: &maxFive})
			reviews.Fields.Add(&core.TextField{Name: "comment", Required: true, Max: 5000})

			reviews.AddIndex("idx_reviews_product", false, "product_id", "")

			if err := app.Save(reviews); err != nil {
				return err
			}
		}

		// ----------------------------------------------------
		// 8. HOT DEALS
		// ----------------------------------------------------
		if !exists("hot_deals") {
			products, err := app.FindCollectionByNameOrId("products")
			if err != nil {
				return err
			}

			deals := core.NewBaseCollection("hot_deals")
			addSystemFields(deals)
			deals.Fields.Add(&core.RelationField{
				Name:          "product_id",
				CollectionId:  products.Id,
				MaxSelect:     1,
				Required:      true,
				CascadeDelete: true,
			})
			deals.Fields.Add(&core.TextField{Name: "custom_title"})

			if err := app.Save(deals); err != nil {
				return err
			}
		}

		// ----------------------------------------------------
		// 9. SETTINGS (key/value)
		// ----------------------------------------------------
		if !exists("settings") {
			settings := core.NewBaseCollection("settings")
			addSystemFields(settings)
			settings.Fields.Add(&core.TextField{Name: "key", Required: true})
			settings.Fields.Add(&core.TextField{Name: "value", Max: 100000})

			settings.AddIndex("idx_settings_key", true, "key", "")

			if err := app.Save(settings); err != nil {
				return err
			}
		}

		return nil

	}, func(app core.App) error {
		// Rollback in dependency order
		for _, name := range []string{
			"order_items", "orders", "hot_deals", "reviews",
			"product_pricing", "coupons", "products", "categories", "settings",
		} {
			if collection, err := app.FindCollectionByNameOrId(name); err == nil {
				if err := app.Delete(collection); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
