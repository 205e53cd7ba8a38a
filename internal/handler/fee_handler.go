package handler

import (
	"net/http"

	"molle-settlement/internal/service"

	"github.com/gin-gonic/gin"
)

type FeeHandler struct {
	service service.FeeService
}

func NewFeeHandler(service service.FeeService) *FeeHandler {
	return &FeeHandler{service: service}
}

func (h *FeeHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events/:id/quote", h.Quote)
		router.GET("fees", h.Percentages)
		router.POST("admin/fees/refresh", RequireCapability(CapManageFees), h.Refresh)
	}
}

type eventURI struct {
	ID int `uri:"id" binding:"required,min=1"`
}

// QuoteQuery 結帳試算參數
type QuoteQuery struct {
	PackageID int `form:"package_id" binding:"required,min=1"`
	Quantity  int `form:"quantity,default=1" binding:"min=1"`
}

func (h *FeeHandler) Quote(c *gin.Context) {
	var uri eventURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	var query QuoteQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	quote, err := h.service.Quote(c, uri.ID, query.PackageID, query.Quantity)
	if err != nil {
		handleError(c, err, "Quote")
		return
	}

	handleSuccess(c, quote, http.StatusOK)
}

// Percentages 目前的平台預設費率
func (h *FeeHandler) Percentages(c *gin.Context) {
	p, err := h.service.PlatformDefaults(c)
	if err != nil {
		handleError(c, err, "Percentages")
		return
	}

	handleSuccess(c, p, http.StatusOK)
}

// Refresh platform_settings 修改後讓新費率立即生效
func (h *FeeHandler) Refresh(c *gin.Context) {
	p, err := h.service.RefreshDefaults(c)
	if err != nil {
		handleError(c, err, "Refresh")
		return
	}

	handleSuccess(c, p, http.StatusOK)
}
