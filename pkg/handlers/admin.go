package handlers

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"
	"golang.org/x/crypto/bcrypt"

	"github.com/raihanetx/submonth-z/internal/adapter/repository"
	domain "github.com/raihanetx/submonth-z/internal/core"
	"github.com/raihanetx/submonth-z/internal/service"
	"github.com/raihanetx/submonth-z/pkg/broker"
	"github.com/raihanetx/submonth-z/pkg/middleware"
)

type AdminHandler struct {
	Templates    *template.Template
	Sessions     *middleware.Sessions
	Broker       *broker.Broker
	SettingsRepo *repository.SettingsRepo
	Catalog      *service.CatalogService
	Coupons      *service.CouponService
	Orders       *service.OrderService
	Reviews      *service.ReviewService
	HotDeals     domain.HotDealRepository
}

// pageData merges the per-request config context with page specific data.
func (h *AdminHandler) pageData(e *core.RequestEvent, extra map[string]interface{}) map[string]interface{} {
	data := map[string]interface{}{
		"Config":  middleware.ConfigFrom(e),
		"LogoUrl": e.Get("LogoUrl"),
	}
	if admin, ok := middleware.AdminFrom(e); ok {
		data["Admin"] = admin
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func (h *AdminHandler) ShowLogin(e *core.RequestEvent) error {
	return RenderPage(h.Templates, e, "layouts/auth.html", "admin/login.html", h.pageData(e, nil))
}

func (h *AdminHandler) ProcessLogin(e *core.RequestEvent) error {
	password := e.Request.FormValue("password")

	config := middleware.ConfigFrom(e)
	if config.AdminPasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(config.AdminPasswordHash), []byte(password)) != nil {
		return RenderPage(h.Templates, e, "layouts/auth.html", "admin/login.html", h.pageData(e, map[string]interface{}{
			"Error": "Incorrect password.",
		}))
	}

	token, err := h.Sessions.Issue()
	if err != nil {
		return e.String(http.StatusInternalServerError, "Could not create session")
	}
	h.Sessions.SetCookie(e, token)

	return e.Redirect(http.StatusSeeOther, "/admin/")
}

func (h *AdminHandler) Logout(e *core.RequestEvent) error {
	h.Sessions.ClearCookie(e)
	return e.Redirect(http.StatusSeeOther, "/admin/login")
}

// Dashboard renders the requested admin view. The panel is a single entry
// point switched on the view query parameter.
func (h *AdminHandler) Dashboard(e *core.RequestEvent) error {
	view := e.Request.URL.Query().Get("view")

	switch view {
	case "", "dashboard":
		tree, err := h.Catalog.AdminTree()
		if err != nil {
			return e.String(http.StatusInternalServerError, "Could not load catalog: "+err.Error())
		}
		coupons, err := h.Coupons.List()
		if err != nil {
			return e.String(http.StatusInternalServerError, "Could not load coupons: "+err.Error())
		}
		return RenderPage(h.Templates, e, "layouts/admin.html", "admin/dashboard.html", h.pageData(e, map[string]interface{}{
			"View":    "dashboard",
			"Tree":    tree,
			"Coupons": coupons,
		}))

	case "orders":
		search := e.Request.URL.Query().Get("search")
		orders, err := h.Orders.ListOrders(search)
		if err != nil {
			return e.String(http.StatusInternalServerError, "Could not load orders: "+err.Error())
		}
		return RenderPage(h.Templates, e, "layouts/admin.html", "admin/orders.html", h.pageData(e, map[string]interface{}{
			"View":       "orders",
			"Orders":     orders,
			"Search":     search,
			"EmailState": e.Request.URL.Query().Get("email"),
		}))

	case "reviews":
		reviews, err := h.Reviews.ListAll()
		if err != nil {
			return e.String(http.StatusInternalServerError, "Could not load reviews: "+err.Error())
		}
		return RenderPage(h.Templates, e, "layouts/admin.html", "admin/reviews.html", h.pageData(e, map[string]interface{}{
			"View":         "reviews",
			"Reviews":      reviews,
			"ProductNames": h.productNames(),
		}))

	case "hotdeals":
		tree, err := h.Catalog.AdminTree()
		if err != nil {
			return e.String(http.StatusInternalServerError, "Could not load catalog: "+err.Error())
		}
		deals, err := h.HotDeals.GetAll()
		if err != nil {
			return e.String(http.StatusInternalServerError, "Could not load hot deals: "+err.Error())
		}
		selected := make(map[string]string, len(deals))
		for _, deal := range deals {
			selected[deal.ProductID] = deal.CustomTitle
		}
		return RenderPage(h.Templates, e, "layouts/admin.html", "admin/hotdeals.html", h.pageData(e, map[string]interface{}{
			"View":     "hotdeals",
			"Tree":     tree,
			"Selected": selected,
		}))

	case "pages":
		return RenderPage(h.Templates, e, "layouts/admin.html", "admin/pages.html", h.pageData(e, map[string]interface{}{
			"View": "pages",
		}))

	case "settings":
		return RenderPage(h.Templates, e, "layouts/admin.html", "admin/settings.html", h.pageData(e, map[string]interface{}{
			"View": "settings",
		}))
	}

	return e.Redirect(http.StatusSeeOther, "/admin/")
}

// productNames maps product ids to names for the review listing.
func (h *AdminHandler) productNames() map[string]string {
	names := map[string]string{}
	tree, err := h.Catalog.AdminTree()
	if err != nil {
		return names
	}
	for _, branch := range tree {
		for _, product := range branch.Products {
			names[product.ID] = product.Name
		}
	}
	return names
}

// CategoryProducts lists one category's products for the catalog drill-down.
func (h *AdminHandler) CategoryProducts(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")

	view, err := h.Catalog.CategoryView(id)
	if err != nil {
		return e.String(http.StatusNotFound, "Category not found")
	}

	return RenderPage(h.Templates, e, "layouts/admin.html", "admin/products.html", h.pageData(e, map[string]interface{}{
		"View":     "dashboard",
		"Category": view.Category,
		"Products": view.Products,
	}))
}

// Events streams order events to the admin dashboard over SSE.
func (h *AdminHandler) Events(e *core.RequestEvent) error {
	e.Response.Header().Set("Content-Type", "text/event-stream")
	e.Response.Header().Set("Cache-Control", "no-cache")
	e.Response.Header().Set("Connection", "keep-alive")

	eventChan := h.Broker.Subscribe()
	defer h.Broker.Unsubscribe(eventChan)

	initialEvent := broker.Event{
		Type:      "connection.established",
		Timestamp: time.Now().Unix(),
		Data: map[string]interface{}{
			"role": "admin",
		},
	}
	eventJSON, _ := json.Marshal(initialEvent)
	fmt.Fprintf(e.Response, "data: %s\n\n", eventJSON)
	e.Response.(http.Flusher).Flush()

	for {
		select {
		case event := <-eventChan:
			eventJSON, err := json.Marshal(event)
			if err != nil {
				continue
			}
			fmt.Fprintf(e.Response, "data: %s\n\n", eventJSON)
			e.Response.(http.Flusher).Flush()

		case <-e.Request.Context().Done():
			return nil
		}
	}
}

// ----- Category actions -----

func (h *AdminHandler) AddCategory(e *core.RequestEvent) error {
	name := e.Request.FormValue("category_name")
	icon := e.Request.FormValue("category_icon")

	if err := h.Catalog.CreateCategory(name, icon); err != nil {
		return e.String(http.StatusInternalServerError, "Could not create category: "+err.Error())
	}
	return e.Redirect(http.StatusSeeOther, "/admin/")
}

func (h *AdminHandler) EditCategory(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")
	name := e.Request.FormValue("category_name")
	icon := e.Request.FormValue("category_icon")

	if err := h.Catalog.UpdateCategory(id, name, icon); err != nil {
		return e.String(http.StatusInternalServerError, "Could not update category: "+err.Error())
	}
	return e.Redirect(http.StatusSeeOther, "/admin/")
}

func (h *AdminHandler) DeleteCategory(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")

	if err := h.Catalog.DeleteCategory(id); err != nil {
		return e.String(http.StatusInternalServerError, "Could not delete category: "+err.Error())
	}
	return e.Redirect(http.StatusSeeOther, "/admin/")
}

// ----- Coupon actions -----

func (h *AdminHandler) AddCoupon(e *core.RequestEvent) error {
	err := h.Coupons.Create(
		e.Request.FormValue("coupon_code"),
		cast.ToInt(e.Request.FormValue("discount_percentage")),
		e.Request.FormValue("is_active") == "on",
		e.Request.FormValue("scope"),
		e.Request.FormValue("scope_value"),
	)
	if err != nil {
		return e.String(http.StatusBadRequest, "Could not create coupon: "+err.Error())
	}
	return e.Redirect(http.StatusSeeOther, "/admin/")
}

func (h *AdminHandler) DeleteCoupon(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")

	if err := h.Coupons.Delete(id); err != nil {
		return e.String(http.StatusInternalServerError, "Could not delete coupon: "+err.Error())
	}
	return e.Redirect(http.StatusSeeOther, "/admin/")
}

// ----- Review actions -----

func (h *AdminHandler) DeleteReview(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")

	if err := h.Reviews.Delete(id); err != nil {
		return e.String(http.StatusInternalServerError, "Could not delete review: "+err.Error())
	}
	return e.Redirect(http.StatusSeeOther, "/admin/?view=reviews")
}
