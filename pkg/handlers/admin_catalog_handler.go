package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"

	domain "github.com/raihanetx/submonth-z/internal/core"
	"github.com/raihanetx/submonth-z/internal/service"
)

// AdminCatalogHandler owns the product form actions, including the
// multipart image upload lifecycle.
type AdminCatalogHandler struct {
	Catalog *service.CatalogService
	Uploads *service.UploadService
}

const maxUploadMemory = 32 << 20

// parseProductForm reads the shared create/edit product fields. Pricing
// comes either as a single price (one "Default" tier) or as parallel
// duration/price columns.
func parseProductForm(e *core.RequestEvent) service.ProductInput {
	input := service.ProductInput{
		Name:             e.Request.FormValue("product_name"),
		ShortDescription: e.Request.FormValue("short_description"),
		LongDescription:  e.Request.FormValue("long_description"),
		StockOut:         e.Request.FormValue("stock_out") == "on",
		Featured:         e.Request.FormValue("featured") == "on",
	}

	if single := e.Request.FormValue("price"); single != "" {
		input.Tiers = []domain.PricingTier{{
			Duration: domain.DefaultDuration,
			Price:    cast.ToFloat64(single),
		}}
		return input
	}

	durations := e.Request.PostForm["durations[]"]
	prices := e.Request.PostForm["prices[]"]
	for i, duration := range durations {
		if duration == "" || i >= len(prices) {
			continue
		}
		input.Tiers = append(input.Tiers, domain.PricingTier{
			Duration: duration,
			Price:    cast.ToFloat64(prices[i]),
		})
	}
	return input
}

func (h *AdminCatalogHandler) AddProduct(e *core.RequestEvent) error {
	if err := e.Request.ParseMultipartForm(maxUploadMemory); err != nil {
		return e.String(http.StatusBadRequest, "Invalid form data")
	}

	input := parseProductForm(e)

	imagePath := ""
	if files := e.Request.MultipartForm.File["product_image"]; len(files) > 0 {
		path, err := h.Uploads.Save(files[0], "product-")
		if err != nil {
			return e.String(http.StatusInternalServerError, "Could not store image: "+err.Error())
		}
		imagePath = path
	}

	if err := h.Catalog.CreateProduct(e.Request.FormValue("category_name"), input, imagePath); err != nil {
		return e.String(http.StatusBadRequest, "Could not create product: "+err.Error())
	}
	return e.Redirect(http.StatusSeeOther, "/admin/")
}

func (h *AdminCatalogHandler) EditProduct(e *core.RequestEvent) error {
	if err := e.Request.ParseMultipartForm(maxUploadMemory); err != nil {
		return e.String(http.StatusBadRequest, "Invalid form data")
	}

	id := e.Request.PathValue("id")
	input := parseProductForm(e)

	newImagePath := ""
	if files := e.Request.MultipartForm.File["product_image"]; len(files) > 0 {
		path, err := h.Uploads.Save(files[0], "product-")
		if err != nil {
			return e.String(http.StatusInternalServerError, "Could not store image: "+err.Error())
		}
		newImagePath = path
	}

	deleteImage := e.Request.FormValue("delete_image") == "on"
	if err := h.Catalog.UpdateProduct(id, input, deleteImage, newImagePath); err != nil {
		return e.String(http.StatusBadRequest, "Could not update product: "+err.Error())
	}
	return e.Redirect(http.StatusSeeOther, "/admin/")
}

func (h *AdminCatalogHandler) DeleteProduct(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")

	if err := h.Catalog.DeleteProduct(id); err != nil {
		return e.String(http.StatusInternalServerError, "Could not delete product: "+err.Error())
	}
	return e.Redirect(http.StatusSeeOther, "/admin/")
}
