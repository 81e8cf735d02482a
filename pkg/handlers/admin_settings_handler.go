package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"
	"golang.org/x/crypto/bcrypt"

	"github.com/raihanetx/submonth-z/internal/adapter/repository"
	domain "github.com/raihanetx/submonth-z/internal/core"
	"github.com/raihanetx/submonth-z/internal/service"
	"github.com/raihanetx/submonth-z/pkg/middleware"
)

// AdminSettingsHandler owns every settings form action. Like the original
// panel, all of them post to one endpoint and dispatch on the action field.
type AdminSettingsHandler struct {
	SettingsRepo *repository.SettingsRepo
	HotDeals     domain.HotDealRepository
	Uploads      *service.UploadService
}

const maxHeroBanners = 10

// paymentMethods fixes the set of manual payment destinations shown on the
// settings page and the checkout, keyed by their form field prefix.
var paymentMethods = map[string]string{
	"bKash":       "bkash",
	"Nagad":       "nagad",
	"Binance Pay": "binance",
}

func (h *AdminSettingsHandler) UpdateSettings(e *core.RequestEvent) error {
	// Multipart because several actions carry file uploads; plain forms
	// still parse fine through this path.
	if err := e.Request.ParseMultipartForm(maxUploadMemory); err != nil && err != http.ErrNotMultipart {
		return e.String(http.StatusBadRequest, "Invalid form data")
	}

	action := e.Request.FormValue("action")
	config := middleware.ConfigFrom(e)

	switch action {
	case "update_hot_deals":
		return h.updateHotDeals(e)
	case "update_hero_banner":
		return h.updateHeroBanner(e, config)
	case "update_site_logo":
		return h.updateImageSetting(e, config.SiteLogo, domain.KeySiteLogo, "site_logo", "logo-")
	case "update_favicon":
		return h.updateImageSetting(e, config.Favicon, domain.KeyFavicon, "favicon", "favicon-")
	case "update_payment_methods":
		return h.updatePaymentMethods(e, config)
	case "update_smtp_settings":
		return h.setAndRedirect(e, domain.KeySMTPSettings, domain.SMTPSettings{
			AdminEmail:  e.Request.FormValue("admin_email"),
			AppPassword: e.Request.FormValue("app_password"),
		}, "/admin/?view=settings")
	case "update_currency_rate":
		return h.setAndRedirect(e, domain.KeyUsdToBdtRate,
			cast.ToFloat64(e.Request.FormValue("usd_to_bdt_rate")), "/admin/?view=settings")
	case "update_contact_info":
		return h.setAndRedirect(e, domain.KeyContactInfo, domain.ContactInfo{
			Phone:    e.Request.FormValue("contact_phone"),
			WhatsApp: e.Request.FormValue("contact_whatsapp"),
			Email:    e.Request.FormValue("contact_email"),
		}, "/admin/?view=settings")
	case "update_admin_password":
		return h.updateAdminPassword(e, config)
	case "update_page_content":
		return h.updatePageContent(e)
	}

	return e.String(http.StatusBadRequest, "Unknown settings action")
}

func (h *AdminSettingsHandler) setAndRedirect(e *core.RequestEvent, key string, value any, target string) error {
	if err := h.SettingsRepo.Set(key, value); err != nil {
		return e.String(http.StatusInternalServerError, "Could not save setting: "+err.Error())
	}
	return e.Redirect(http.StatusSeeOther, target)
}

// updateHotDeals replaces the whole selection and saves the scroll speed.
func (h *AdminSettingsHandler) updateHotDeals(e *core.RequestEvent) error {
	var deals []*domain.HotDeal
	for _, productID := range e.Request.PostForm["deal_products[]"] {
		deals = append(deals, &domain.HotDeal{
			ProductID:   productID,
			CustomTitle: e.Request.FormValue("custom_title_" + productID),
		})
	}

	if err := h.HotDeals.ReplaceAll(deals); err != nil {
		return e.String(http.StatusInternalServerError, "Could not save hot deals: "+err.Error())
	}
	if speed := cast.ToInt(e.Request.FormValue("hot_deals_speed")); speed > 0 {
		if err := h.SettingsRepo.Set(domain.KeyHotDealsSpeed, speed); err != nil {
			return e.String(http.StatusInternalServerError, "Could not save setting: "+err.Error())
		}
	}
	return e.Redirect(http.StatusSeeOther, "/admin/?view=hotdeals")
}

// updateHeroBanner removes checked banners, appends new uploads up to the
// cap and saves the slider interval.
func (h *AdminSettingsHandler) updateHeroBanner(e *core.RequestEvent, config *domain.SiteConfig) error {
	removed := map[string]bool{}
	for _, path := range e.Request.PostForm["remove_banners[]"] {
		removed[path] = true
	}

	var banners []string
	for _, path := range config.HeroBanners {
		if removed[path] {
			h.Uploads.Remove(path)
			continue
		}
		banners = append(banners, path)
	}

	if e.Request.MultipartForm != nil {
		for _, fh := range e.Request.MultipartForm.File["hero_banners[]"] {
			if len(banners) >= maxHeroBanners {
				break
			}
			path, err := h.Uploads.Save(fh, "hero-")
			if err != nil {
				return e.String(http.StatusInternalServerError, "Could not store banner: "+err.Error())
			}
			banners = append(banners, path)
		}
	}

	if err := h.SettingsRepo.Set(domain.KeyHeroBanner, banners); err != nil {
		return e.String(http.StatusInternalServerError, "Could not save banners: "+err.Error())
	}
	if interval := cast.ToInt(e.Request.FormValue("hero_slider_interval")); interval > 0 {
		if err := h.SettingsRepo.Set(domain.KeyHeroSliderInterval, interval); err != nil {
			return e.String(http.StatusInternalServerError, "Could not save setting: "+err.Error())
		}
	}
	return e.Redirect(http.StatusSeeOther, "/admin/?view=settings")
}

// updateImageSetting handles the single-image settings (logo, favicon): a
// new upload replaces and deletes the previous file.
func (h *AdminSettingsHandler) updateImageSetting(e *core.RequestEvent, current, key, field, prefix string) error {
	var fh *multipart.FileHeader
	if e.Request.MultipartForm != nil {
		if files := e.Request.MultipartForm.File[field]; len(files) > 0 {
			fh = files[0]
		}
	}
	if fh == nil {
		return e.Redirect(http.StatusSeeOther, "/admin/?view=settings")
	}

	path, err := h.Uploads.Save(fh, prefix)
	if err != nil {
		return e.String(http.StatusInternalServerError, "Could not store image: "+err.Error())
	}
	if current != "" {
		h.Uploads.Remove(current)
	}
	return h.setAndRedirect(e, key, path, "/admin/?view=settings")
}

// updatePaymentMethods rewrites the manual payment destinations. Wallets
// carry a number, the crypto method a pay id; logos are optional uploads.
func (h *AdminSettingsHandler) updatePaymentMethods(e *core.RequestEvent, config *domain.SiteConfig) error {
	methods := map[string]domain.PaymentMethod{}

	for name, field := range paymentMethods {
		method := domain.PaymentMethod{
			Number: e.Request.FormValue(field + "_number"),
			PayID:  e.Request.FormValue(field + "_pay_id"),
		}
		if existing, ok := config.PaymentMethods[name]; ok {
			method.LogoURL = existing.LogoURL
		}

		if e.Request.MultipartForm != nil {
			if files := e.Request.MultipartForm.File[field+"_logo"]; len(files) > 0 {
				path, err := h.Uploads.Save(files[0], "payment-")
				if err != nil {
					return e.String(http.StatusInternalServerError, "Could not store logo: "+err.Error())
				}
				if method.LogoURL != "" {
					h.Uploads.Remove(method.LogoURL)
				}
				method.LogoURL = path
			}
		}

		methods[name] = method
	}

	return h.setAndRedirect(e, domain.KeyPaymentMethods, methods, "/admin/?view=settings")
}

func (h *AdminSettingsHandler) updateAdminPassword(e *core.RequestEvent, config *domain.SiteConfig) error {
	current := e.Request.FormValue("current_password")
	next := e.Request.FormValue("new_password")

	if next == "" {
		return e.String(http.StatusBadRequest, "New password is required")
	}
	if config.AdminPasswordHash != "" &&
		bcrypt.CompareHashAndPassword([]byte(config.AdminPasswordHash), []byte(current)) != nil {
		return e.String(http.StatusForbidden, "Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return e.String(http.StatusInternalServerError, "Could not hash password")
	}
	return h.setAndRedirect(e, domain.KeyAdminPassword, string(hash), "/admin/?view=settings")
}

func (h *AdminSettingsHandler) updatePageContent(e *core.RequestEvent) error {
	page := e.Request.FormValue("page")
	switch page {
	case "about_us", "terms", "privacy", "refund":
	default:
		return e.String(http.StatusBadRequest, "Unknown page")
	}

	content := e.Request.FormValue("content")
	return h.setAndRedirect(e, domain.KeyPageContentPrefix+page, content, "/admin/?view=pages")
}
