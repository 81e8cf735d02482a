package handlers

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	domain "github.com/raihanetx/submonth-z/internal/core"
	"github.com/raihanetx/submonth-z/internal/service"
	"github.com/raihanetx/submonth-z/pkg/middleware"
)

// StorefrontHandler serves the client-rendered shop shell. Every storefront
// path gets the same page with a fresh catalog snapshot embedded as JSON;
// the client router resolves the actual view.
type StorefrontHandler struct {
	Templates  *template.Template
	Catalog    *service.CatalogService
	Coupons    *service.CouponService
	Categories domain.CategoryRepository
	HotDeals   domain.HotDealRepository
}

// publicConfig is the settings subset exposed to the storefront. SMTP
// credentials and the password hash never leave the server.
type publicConfig struct {
	SiteLogo           string                          `json:"site_logo"`
	Favicon            string                          `json:"favicon"`
	HeroBanners        []string                        `json:"hero_banner"`
	HeroSliderInterval int                             `json:"hero_slider_interval"`
	HotDealsSpeed      int                             `json:"hot_deals_speed"`
	UsdToBdtRate       float64                         `json:"usd_to_bdt_rate"`
	ContactInfo        domain.ContactInfo              `json:"contact_info"`
	PaymentMethods     map[string]domain.PaymentMethod `json:"payment_methods"`
	PageContent        domain.PageContent              `json:"page_content"`
}

type storefrontSnapshot struct {
	Products   []*domain.CatalogProduct `json:"products"`
	Categories []*domain.Category       `json:"categories"`
	Coupons    []*domain.Coupon         `json:"coupons"`
	HotDeals   []*domain.HotDeal        `json:"hot_deals"`
	Config     publicConfig             `json:"config"`
}

// Shell renders the storefront page for any public path.
func (h *StorefrontHandler) Shell(e *core.RequestEvent) error {
	snapshot, err := h.buildSnapshot(e)
	if err != nil {
		fmt.Println("Storefront snapshot error:", err)
		return e.String(http.StatusInternalServerError, "Store is temporarily unavailable")
	}

	encoded, err := json.Marshal(snapshot)
	if err != nil {
		return e.String(http.StatusInternalServerError, "Store is temporarily unavailable")
	}

	return RenderPage(h.Templates, e, "layouts/store.html", "public/index.html", map[string]interface{}{
		"Config":   middleware.ConfigFrom(e),
		"LogoUrl":  e.Get("LogoUrl"),
		"Snapshot": template.JS(encoded),
	})
}

func (h *StorefrontHandler) buildSnapshot(e *core.RequestEvent) (*storefrontSnapshot, error) {
	products, err := h.Catalog.Snapshot()
	if err != nil {
		return nil, err
	}
	categories, err := h.Categories.GetAll()
	if err != nil {
		return nil, err
	}
	coupons, err := h.Coupons.List()
	if err != nil {
		return nil, err
	}
	deals, err := h.HotDeals.GetAll()
	if err != nil {
		return nil, err
	}

	// Only active coupons are shipped to the client for cart math.
	active := make([]*domain.Coupon, 0, len(coupons))
	for _, coupon := range coupons {
		if coupon.IsActive {
			active = append(active, coupon)
		}
	}

	config := middleware.ConfigFrom(e)
	return &storefrontSnapshot{
		Products:   products,
		Categories: categories,
		Coupons:    active,
		HotDeals:   deals,
		Config: publicConfig{
			SiteLogo:           config.SiteLogo,
			Favicon:            config.Favicon,
			HeroBanners:        config.HeroBanners,
			HeroSliderInterval: config.HeroSliderInterval,
			HotDealsSpeed:      config.HotDealsSpeed,
			UsdToBdtRate:       config.UsdToBdtRate,
			ContactInfo:        config.ContactInfo,
			PaymentMethods:     config.PaymentMethods,
			PageContent:        config.PageContent,
		},
	}, nil
}
