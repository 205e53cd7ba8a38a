package apperrors

import "errors"

var (
	ErrBookingNotFound       = errors.New("booking not found")
	ErrEventNotFound         = errors.New("event not found")
	ErrPackageNotFound       = errors.New("package not found")
	ErrTicketNotFound        = errors.New("ticket not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrTicketDataNotFound    = errors.New("ticket data not found")
	ErrPaymentNotSuccessful  = errors.New("payment not successful")
	ErrMissingOrderID        = errors.New("missing order id")
	ErrInvalidPayload        = errors.New("invalid payload")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidStatus         = errors.New("invalid booking status transition")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrInvalidSignature      = errors.New("invalid webhook signature")
	ErrSettlementInProgress  = errors.New("settlement already in progress")
	ErrTreasuryNotConfigured = errors.New("no treasury account available")
	ErrNoTicketsIssued       = errors.New("no tickets could be issued for booking")
	ErrInternalServerError   = errors.New("internal server error")
)
