package app

import (
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	internalApp "github.com/raihanetx/submonth-z/internal/app"
	"github.com/raihanetx/submonth-z/pkg/handlers"
	"github.com/raihanetx/submonth-z/pkg/middleware"
)

// RegisterRoutes configures all application routes.
func RegisterRoutes(pb *pocketbase.PocketBase, c *internalApp.Container) {
	sessions := middleware.NewSessions()

	pb.OnServe().BindFunc(func(se *core.ServeEvent) error {

		// ---------------------------------------------------------
		// 1. STATIC FILES
		// ---------------------------------------------------------
		se.Router.GET("/assets/{path...}", apis.Static(os.DirFS("./assets"), false))
		se.Router.GET("/uploads/{path...}", apis.Static(os.DirFS(internalApp.UploadDir), false))

		// Settings injection for every route
		se.Router.BindFunc(middleware.SettingsMiddleware(c.SettingsRepo))

		// ---------------------------------------------------------
		// 2. HANDLERS SETUP (Using Container dependencies)
		// ---------------------------------------------------------
		admin := &handlers.AdminHandler{
			Templates:    c.Templates,
			Sessions:     sessions,
			Broker:       c.Broker,
			SettingsRepo: c.SettingsRepo,
			Catalog:      c.CatalogService,
			Coupons:      c.CouponService,
			Orders:       c.OrderService,
			Reviews:      c.ReviewService,
			HotDeals:     c.HotDealRepo,
		}

		catalog := &handlers.AdminCatalogHandler{
			Catalog: c.CatalogService,
			Uploads: c.UploadService,
		}

		orders := &handlers.AdminOrdersHandler{
			Orders: c.OrderService,
		}

		settings := &handlers.AdminSettingsHandler{
			SettingsRepo: c.SettingsRepo,
			HotDeals:     c.HotDealRepo,
			Uploads:      c.UploadService,
		}

		store := &handlers.StorefrontHandler{
			Templates:  c.Templates,
			Catalog:    c.CatalogService,
			Coupons:    c.CouponService,
			Categories: c.CategoryRepo,
			HotDeals:   c.HotDealRepo,
		}

		api := &handlers.APIHandler{
			Orders:  c.OrderService,
			Reviews: c.ReviewService,
		}

		// ---------------------------------------------------------
		// 3. JSON API
		// ---------------------------------------------------------
		se.Router.POST("/api/checkout", api.Checkout)
		se.Router.GET("/api/orders", api.OrderLookup)
		se.Router.POST("/api/reviews", api.SubmitReview)

		// ---------------------------------------------------------
		// 4. AUTH ROUTES
		// ---------------------------------------------------------
		se.Router.GET("/admin/login", admin.ShowLogin)
		se.Router.POST("/admin/login", admin.ProcessLogin)
		se.Router.GET("/admin/logout", admin.Logout)

		// ---------------------------------------------------------
		// 5. ADMIN ROUTES (Protected)
		// ---------------------------------------------------------
		adminGroup := se.Router.Group("/admin")
		adminGroup.BindFunc(middleware.RequireAdmin(sessions))

		adminGroup.GET("/", admin.Dashboard)
		adminGroup.GET("/category/{id}/products", admin.CategoryProducts)
		adminGroup.GET("/events", admin.Events)

		adminGroup.POST("/categories", admin.AddCategory)
		adminGroup.POST("/categories/{id}/edit", admin.EditCategory)
		adminGroup.POST("/categories/{id}/delete", admin.DeleteCategory)

		adminGroup.POST("/products", catalog.AddProduct)
		adminGroup.POST("/products/{id}/edit", catalog.EditProduct)
		adminGroup.POST("/products/{id}/delete", catalog.DeleteProduct)

		adminGroup.POST("/coupons", admin.AddCoupon)
		adminGroup.POST("/coupons/{id}/delete", admin.DeleteCoupon)

		adminGroup.POST("/orders/{orderNumber}/status", orders.UpdateStatus)
		adminGroup.POST("/orders/{orderNumber}/email", orders.SendManualEmail)

		adminGroup.POST("/reviews/{id}/delete", admin.DeleteReview)

		adminGroup.POST("/settings", settings.UpdateSettings)

		// ---------------------------------------------------------
		// 6. STOREFRONT (catch-all shell, client-side routing)
		// ---------------------------------------------------------
		se.Router.GET("/admin", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusSeeOther, "/admin/")
		})
		se.Router.GET("/", store.Shell)
		se.Router.GET("/{path...}", store.Shell)

		return se.Next()
	})
}
