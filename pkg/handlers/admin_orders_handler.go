package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"github.com/raihanetx/submonth-z/internal/service"
)

// AdminOrdersHandler owns the order status and manual email actions. The
// order listing itself is part of the dashboard view switch.
type AdminOrdersHandler struct {
	Orders *service.OrderService
}

func (h *AdminOrdersHandler) UpdateStatus(e *core.RequestEvent) error {
	orderNumber := e.Request.PathValue("orderNumber")
	status := e.Request.FormValue("status")

	if err := h.Orders.UpdateStatus(orderNumber, status); err != nil {
		return e.String(http.StatusBadRequest, "Could not update order: "+err.Error())
	}
	return e.Redirect(http.StatusSeeOther, "/admin/?view=orders")
}

// SendManualEmail mails the access details typed into the order row form. A
// failed send keeps the order unflagged and surfaces via the email query
// parameter on the redirect.
func (h *AdminOrdersHandler) SendManualEmail(e *core.RequestEvent) error {
	orderNumber := e.Request.PathValue("orderNumber")
	customerEmail := e.Request.FormValue("customer_email")
	accessDetails := e.Request.FormValue("access_details")

	if err := h.Orders.SendAccessEmail(orderNumber, customerEmail, accessDetails); err != nil {
		return e.Redirect(http.StatusSeeOther, "/admin/?view=orders&email=failed")
	}
	return e.Redirect(http.StatusSeeOther, "/admin/?view=orders&email=sent")
}
