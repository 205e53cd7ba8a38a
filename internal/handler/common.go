package handler

import (
	"errors"
	"net/http"

	apperrors "molle-settlement/pkg/app_errors"
	"molle-settlement/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// handleError 將 sentinel error 轉成 HTTP 狀態碼與 {"error": ...}
func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	status, message := http.StatusInternalServerError, "Internal server error"
	switch {
	case errors.Is(err, apperrors.ErrMissingOrderID):
		status, message = http.StatusBadRequest, "Missing order id"
	case errors.Is(err, apperrors.ErrInvalidPayload):
		status, message = http.StatusBadRequest, "Invalid payload"
	case errors.Is(err, apperrors.ErrInvalidInput):
		status, message = http.StatusBadRequest, "Invalid input"
	case errors.Is(err, apperrors.ErrPaymentNotSuccessful):
		status, message = http.StatusBadRequest, "Payment not successful"
	case errors.Is(err, apperrors.ErrInvalidStatus):
		status, message = http.StatusBadRequest, "Invalid booking status"
	case errors.Is(err, apperrors.ErrUnauthorized):
		status, message = http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, apperrors.ErrInvalidSignature):
		status, message = http.StatusUnauthorized, "Invalid signature"
	case errors.Is(err, apperrors.ErrForbidden):
		status, message = http.StatusForbidden, "Forbidden"
	case errors.Is(err, apperrors.ErrBookingNotFound):
		status, message = http.StatusNotFound, "Booking not found"
	case errors.Is(err, apperrors.ErrEventNotFound):
		status, message = http.StatusNotFound, "Event not found"
	case errors.Is(err, apperrors.ErrPackageNotFound):
		status, message = http.StatusNotFound, "Package not found"
	case errors.Is(err, apperrors.ErrTicketNotFound):
		status, message = http.StatusNotFound, "Ticket not found"
	case errors.Is(err, apperrors.ErrUserNotFound):
		status, message = http.StatusNotFound, "User not found"
	case errors.Is(err, apperrors.ErrSettlementInProgress):
		status, message = http.StatusConflict, "Settlement already in progress"
	case errors.Is(err, apperrors.ErrNoTicketsIssued):
		status, message = http.StatusUnprocessableEntity, "No tickets could be issued"
	}

	if status >= http.StatusInternalServerError {
		log.Error("Unexpected error")
	} else {
		log.Warn(message)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

func handleSuccess(c *gin.Context, data interface{}, statusCode int) {
	if data != nil {
		c.JSON(statusCode, data)
	} else {
		c.Status(statusCode)
	}
}
