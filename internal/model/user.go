package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleHost  Role = "HOST"
	RoleAdmin Role = "ADMIN"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleHost, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID            int             `json:"id" db:"id"`
	Name          string          `json:"name" db:"name"`
	Email         string          `json:"email" db:"email"`
	Phone         *string         `json:"phone,omitempty" db:"phone"`
	Role          Role            `json:"role" db:"role"`
	WalletBalance decimal.Decimal `json:"wallet_balance" db:"wallet_balance"`
	// CustomHostFeePercentage 主辦方個別議定的 host fee，nil 時使用平台預設
	CustomHostFeePercentage *decimal.Decimal `json:"custom_host_fee_percentage,omitempty" db:"custom_host_fee_percentage"`
	CreatedAt               time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt               time.Time        `json:"updated_at" db:"updated_at"`
}

// WalletParty 入帳對象
type WalletParty string

const (
	WalletPartyHost     WalletParty = "host"
	WalletPartyAdmin    WalletParty = "admin"
	WalletPartyReferrer WalletParty = "referrer"
)

// WalletTransaction 結算入帳紀錄
type WalletTransaction struct {
	ID        int             `json:"id" db:"id"`
	UserID    int             `json:"user_id" db:"user_id"`
	BookingID int             `json:"booking_id" db:"booking_id"`
	Party     WalletParty     `json:"party" db:"party"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}
