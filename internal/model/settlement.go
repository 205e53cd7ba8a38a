package model

import "github.com/shopspring/decimal"

type SettlementSource string

const (
	SettlementSourceWebhook SettlementSource = "webhook"
	SettlementSourceManual  SettlementSource = "manual"
)

// SettlementCommand 一次結算請求
type SettlementCommand struct {
	Source  SettlementSource `json:"source"`
	ActorID int              `json:"actor_id,omitempty"`
	Data    WebhookData      `json:"data"`
}

func (c SettlementCommand) OrderID() string {
	return c.Data.Order.OrderID
}

// SkippedLine 因資料問題略過的選購行
type SkippedLine struct {
	Line      int    `json:"line"`
	PackageID int    `json:"packageId"`
	Reason    string `json:"reason"`
}

type WalletCredit struct {
	UserID int             `json:"userId"`
	Party  WalletParty     `json:"party"`
	Amount decimal.Decimal `json:"amount"`
}

type SettlementResult struct {
	Success        bool           `json:"success"`
	Message        string         `json:"message,omitempty"`
	BookingID      int            `json:"bookingId"`
	TicketCount    int            `json:"ticketCount"`
	TicketsCreated int            `json:"ticketsCreated"`
	AlreadySettled bool           `json:"alreadySettled,omitempty"`
	Degraded       bool           `json:"degraded,omitempty"`
	SkippedLines   []SkippedLine  `json:"skippedLines,omitempty"`
	Credits        []WalletCredit `json:"credits,omitempty"`
}
