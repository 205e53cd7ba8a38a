package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 與 tickets.holder_name / tickets.holder_phone 欄位長度一致（字元數）
const (
	MaxHolderNameLength  = 255
	MaxHolderPhoneLength = 32
)

// Ticket 一個入場名額
type Ticket struct {
	ID           int             `json:"id" db:"id"`
	TicketNumber string          `json:"ticket_number" db:"ticket_number"`
	QRCode       string          `json:"qr_code" db:"qr_code"`
	HolderName   string          `json:"holder_name" db:"holder_name"`
	HolderAge    int             `json:"holder_age" db:"holder_age"`
	HolderPhone  string          `json:"holder_phone" db:"holder_phone"`
	Price        decimal.Decimal `json:"price" db:"price"`
	EventID      int             `json:"event_id" db:"event_id"`
	PackageID    int             `json:"package_id" db:"package_id"`
	BookingID    int             `json:"booking_id" db:"booking_id"`
	UserID       int             `json:"user_id" db:"user_id"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

// TicketVerification 驗票結果
type TicketVerification struct {
	Ticket        *Ticket         `json:"ticket"`
	ExpectedPrice decimal.Decimal `json:"expected_price"`
	PriceMatches  bool            `json:"price_matches"`
}
