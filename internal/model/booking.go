package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus 訂單狀態類型
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
)

// IsValid 驗證狀態是否有效
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed:
		return true
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	transitions := map[BookingStatus][]BookingStatus{
		BookingStatusPending:   {BookingStatusConfirmed},
		BookingStatusConfirmed: {}, // terminal
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// Booking 一次購票
type Booking struct {
	ID          int             `json:"id" db:"id"`
	OrderID     string          `json:"order_id" db:"order_id"`
	UserID      int             `json:"user_id" db:"user_id"`
	EventID     int             `json:"event_id" db:"event_id"`
	PackageID   *int            `json:"package_id,omitempty" db:"package_id"`
	ReferrerID  *int            `json:"referrer_id,omitempty" db:"referrer_id"`
	TicketCount int             `json:"ticket_count" db:"ticket_count"`
	TotalAmount decimal.Decimal `json:"total_amount" db:"total_amount"`
	Status      BookingStatus   `json:"status" db:"status"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingStatusConfirmed
}

// TicketData 付款前暫存的選購內容，開票後刪除
type TicketData struct {
	ID        int             `json:"id" db:"id"`
	BookingID int             `json:"booking_id" db:"booking_id"`
	Data      json.RawMessage `json:"data" db:"data"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// Selection 一個票種的選購行
type Selection struct {
	PackageID int      `json:"packageId"`
	Quantity  int      `json:"quantity"`
	Holders   []Holder `json:"holders"`
}

type Holder struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Phone string `json:"phone"`
}
