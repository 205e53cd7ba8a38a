package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"molle-settlement/config"
	"molle-settlement/internal/model"
	"molle-settlement/internal/queue"
	"molle-settlement/internal/service"
	apperrors "molle-settlement/pkg/app_errors"
	"molle-settlement/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SettlementHandler struct {
	service service.SettlementService
	// queue 非 nil 時 webhook 改為非同步處理
	queue   queue.SettlementQueue
	webhook config.WebhookConfig
	now     func() time.Time
}

func NewSettlementHandler(service service.SettlementService, queue queue.SettlementQueue, webhook config.WebhookConfig) *SettlementHandler {
	return &SettlementHandler{
		service: service,
		queue:   queue,
		webhook: webhook,
		now:     time.Now,
	}
}

// RegisterRoutes webhook 以簽章驗證；admin 路由依賴 gateway 注入的身分 header
func (h *SettlementHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("webhooks/payments", h.Webhook)
		router.POST("admin/payments/release", RequireCapability(CapReleasePayments), h.ReleasePayment)
		router.GET("admin/orders/:orderId/credits", RequireCapability(CapViewCredits), h.Credits)
	}
}

// ReleasePayment 後台手動放款，body 與 webhook 相同並包在 payload 內
func (h *SettlementHandler) ReleasePayment(c *gin.Context) {
	var envelope model.WebhookEnvelope
	if err := BindJson(c, &envelope); err != nil {
		return
	}

	cmd := model.SettlementCommand{
		Source:  model.SettlementSourceManual,
		ActorID: currentUserID(c),
		Data:    envelope.Payload.Data,
	}
	logger.WithComponent("handler").Info("manual payment release",
		zap.String("order_id", cmd.OrderID()),
		zap.Int("actor_id", cmd.ActorID),
	)

	result, err := h.service.ApplySettlement(c, cmd)
	if err != nil {
		handleError(c, err, "ReleasePayment")
		return
	}

	handleSuccess(c, result, http.StatusOK)
}

func (h *SettlementHandler) Webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		handleError(c, fmt.Errorf("%w: %v", apperrors.ErrInvalidPayload, err), "Webhook")
		return
	}

	err = VerifyWebhook(
		h.webhook.Secret,
		c.GetHeader(HeaderWebhookTimestamp),
		c.GetHeader(HeaderWebhookSignature),
		body,
		h.webhook.MaxSkew,
		h.now(),
	)
	if err != nil {
		handleError(c, err, "Webhook")
		return
	}

	data, err := decodeWebhookData(body)
	if err != nil {
		handleError(c, err, "Webhook")
		return
	}
	cmd := model.SettlementCommand{Source: model.SettlementSourceWebhook, Data: data}

	if h.queue != nil {
		if strings.TrimSpace(cmd.OrderID()) == "" {
			handleError(c, apperrors.ErrMissingOrderID, "Webhook")
			return
		}
		if err := h.queue.Publish(c, &cmd); err != nil {
			handleError(c, err, "Webhook")
			return
		}
		handleSuccess(c, gin.H{"success": true, "message": "Settlement queued"}, http.StatusAccepted)
		return
	}

	result, err := h.service.ApplySettlement(c, cmd)
	if err != nil {
		handleError(c, err, "Webhook")
		return
	}

	handleSuccess(c, result, http.StatusOK)
}

// decodeWebhookData 接受金流商原始格式 {"data": ...} 或後台格式 {"payload": {"data": ...}}
func decodeWebhookData(body []byte) (model.WebhookData, error) {
	var envelope struct {
		Payload *model.WebhookPayload `json:"payload"`
		model.WebhookPayload
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return model.WebhookData{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidPayload, err)
	}
	if envelope.Payload != nil {
		return envelope.Payload.Data, nil
	}
	return envelope.Data, nil
}

type orderURI struct {
	OrderID string `uri:"orderId" binding:"required"`
}

func (h *SettlementHandler) Credits(c *gin.Context) {
	var uri orderURI
	if err := BindUri(c, &uri); err != nil {
		return
	}

	credits, err := h.service.Credits(c, uri.OrderID)
	if err != nil {
		handleError(c, err, "Credits")
		return
	}

	handleSuccess(c, credits, http.StatusOK)
}
