package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	domain "github.com/raihanetx/submonth-z/internal/core"
	"github.com/raihanetx/submonth-z/internal/service"
)

// APIHandler serves the storefront's JSON endpoints.
type APIHandler struct {
	Orders  *service.OrderService
	Reviews *service.ReviewService
}

// Checkout places an order. Validation failures come back as 400 with a
// user-facing message; persistence failures as 500.
func (h *APIHandler) Checkout(e *core.RequestEvent) error {
	var req domain.CheckoutRequest
	if err := e.BindBody(&req); err != nil {
		return e.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Invalid request body.",
		})
	}

	order, err := h.Orders.Place(&req)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			return e.JSON(http.StatusBadRequest, map[string]any{
				"success": false,
				"message": vErr.Message,
			})
		}
		return e.JSON(http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "Could not place the order. Please try again.",
		})
	}

	return e.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"order_id": order.OrderNumber,
	})
}

// OrderLookup returns the full orders for the ids the storefront remembers
// locally. The ids parameter is a JSON-encoded array of order numbers.
func (h *APIHandler) OrderLookup(e *core.RequestEvent) error {
	raw := e.Request.URL.Query().Get("ids")

	var ids []string
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]any{
				"success": false,
				"message": "ids must be a JSON array of order ids.",
			})
		}
	}
	if len(ids) == 0 {
		return e.JSON(http.StatusOK, []*domain.Order{})
	}

	orders, err := h.Orders.FindByOrderNumbers(ids)
	if err != nil {
		return e.JSON(http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "Could not load orders.",
		})
	}
	return e.JSON(http.StatusOK, orders)
}

type reviewRequest struct {
	Action string `json:"action"`
	Review struct {
		ProductID string `json:"productId"`
		Name      string `json:"name"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
	} `json:"review"`
}

// SubmitReview stores a visitor review.
func (h *APIHandler) SubmitReview(e *core.RequestEvent) error {
	var req reviewRequest
	if err := e.BindBody(&req); err != nil || req.Action != "add_review" {
		return e.JSON(http.StatusBadRequest, map[string]any{"success": false})
	}

	err := h.Reviews.Submit(req.Review.ProductID, req.Review.Name, req.Review.Rating, req.Review.Comment)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			return e.JSON(http.StatusBadRequest, map[string]any{
				"success": false,
				"message": vErr.Message,
			})
		}
		return e.JSON(http.StatusInternalServerError, map[string]any{"success": false})
	}

	return e.JSON(http.StatusOK, map[string]any{"success": true})
}
