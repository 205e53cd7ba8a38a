package model

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// WebhookEnvelope 後台手動放款的請求格式，外層多一層 payload
type WebhookEnvelope struct {
	Payload WebhookPayload `json:"payload"`
}

// WebhookPayload 金流商 webhook 本體
type WebhookPayload struct {
	Type      string      `json:"type,omitempty"`
	EventTime string      `json:"event_time,omitempty"`
	Data      WebhookData `json:"data"`
}

type WebhookData struct {
	Order           OrderInfo       `json:"order"`
	Payment         PaymentInfo     `json:"payment"`
	CustomerDetails CustomerDetails `json:"customer_details"`
}

type OrderInfo struct {
	OrderID     string            `json:"order_id"`
	OrderAmount decimal.Decimal   `json:"order_amount"`
	OrderTags   map[string]string `json:"order_tags,omitempty"`
}

type PaymentInfo struct {
	CfPaymentID   FlexString      `json:"cf_payment_id"`
	PaymentStatus string          `json:"payment_status"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
}

type CustomerDetails struct {
	CustomerID    string `json:"customer_id,omitempty"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
}

// FlexString 接受 JSON 字串或數字
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}
