package handler

import (
	"net/http"

	"molle-settlement/internal/service"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service service.TicketService
}

func NewTicketHandler(service service.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("tickets/verify", RequireCapability(CapVerifyTickets), h.Verify)
		router.GET("orders/:orderId/tickets", RequireCapability(CapViewTickets), h.ListByOrder)
	}
}

type verifyQuery struct {
	QR string `form:"qr" binding:"required"`
}

func (h *TicketHandler) Verify(c *gin.Context) {
	var query verifyQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	verification, err := h.service.VerifyByQR(c, query.QR)
	if err != nil {
		handleError(c, err, "Verify")
		return
	}

	handleSuccess(c, verification, http.StatusOK)
}

func (h *TicketHandler) ListByOrder(c *gin.Context) {
	var uri orderURI
	if err := BindUri(c, &uri); err != nil {
		return
	}

	tickets, err := h.service.ListByOrderID(c, uri.OrderID)
	if err != nil {
		handleError(c, err, "ListByOrder")
		return
	}

	handleSuccess(c, tickets, http.StatusOK)
}
