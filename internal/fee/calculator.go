// Package fee splits a package price into what the buyer pays and what the
// host, the platform and a referrer receive.
package fee

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNegativePrice package 價格為負數
var ErrNegativePrice = errors.New("package price must not be negative")

var (
	hundred = decimal.NewFromInt(100)
	zero    = decimal.Zero
)

// Percentages 已解析的費率，單位為百分比 (5 = 5%)
type Percentages struct {
	UserFee     decimal.Decimal `json:"user_fee_percentage"`
	HostFee     decimal.Decimal `json:"host_fee_percentage"`
	PlatformFee decimal.Decimal `json:"platform_fee_percentage"`
	CGST        decimal.Decimal `json:"cgst_percentage"`
	SGST        decimal.Decimal `json:"sgst_percentage"`
	Referral    decimal.Decimal `json:"referral_percentage"`
}

// Clamp 將每個費率限制在 [0, 100]
func (p Percentages) Clamp() Percentages {
	return Percentages{
		UserFee:     clampPct(p.UserFee),
		HostFee:     clampPct(p.HostFee),
		PlatformFee: clampPct(p.PlatformFee),
		CGST:        clampPct(p.CGST),
		SGST:        clampPct(p.SGST),
		Referral:    clampPct(p.Referral),
	}
}

func clampPct(v decimal.Decimal) decimal.Decimal {
	if v.LessThan(zero) {
		return zero
	}
	if v.GreaterThan(hundred) {
		return hundred
	}
	return v
}

// Breakdown 單張票的金額拆分
type Breakdown struct {
	PackagePrice           decimal.Decimal `json:"package_price"`
	UserFeeAmount          decimal.Decimal `json:"user_fee_amount"`
	HostFeeAmount          decimal.Decimal `json:"host_fee_amount"`
	PlatformFeeAmount      decimal.Decimal `json:"platform_fee_amount"`
	CGSTAmount             decimal.Decimal `json:"cgst_amount"`
	SGSTAmount             decimal.Decimal `json:"sgst_amount"`
	TotalTax               decimal.Decimal `json:"total_tax"`
	TicketPrice            decimal.Decimal `json:"ticket_price"`
	HostGetsBeforeReferral decimal.Decimal `json:"host_gets_before_referral"`
	ReferralAmount         decimal.Decimal `json:"referral_amount"`
	HostGets               decimal.Decimal `json:"host_gets"`
	AdminGets              decimal.Decimal `json:"admin_gets"`
}

// Calculate 計算單張票的費用拆分。費率先 Clamp；中間值保持完整精度，不做四捨五入。
func Calculate(packagePrice decimal.Decimal, pct Percentages) (Breakdown, error) {
	if packagePrice.LessThan(zero) {
		return Breakdown{}, ErrNegativePrice
	}
	p := pct.Clamp()

	b := Breakdown{PackagePrice: packagePrice}
	b.UserFeeAmount = percentOf(packagePrice, p.UserFee)
	b.HostFeeAmount = percentOf(packagePrice, p.HostFee)
	b.PlatformFeeAmount = percentOf(packagePrice, p.PlatformFee)
	b.CGSTAmount = percentOf(packagePrice, p.CGST)
	b.SGSTAmount = percentOf(packagePrice, p.SGST)
	b.TotalTax = b.CGSTAmount.Add(b.SGSTAmount)
	b.TicketPrice = packagePrice.Add(b.UserFeeAmount).Add(b.TotalTax)
	b.HostGetsBeforeReferral = packagePrice.Sub(b.HostFeeAmount)
	b.ReferralAmount = percentOf(b.HostGetsBeforeReferral, p.Referral)
	b.HostGets = b.HostGetsBeforeReferral.Sub(b.ReferralAmount)
	b.AdminGets = b.UserFeeAmount.Add(b.HostFeeAmount)
	return b, nil
}

func percentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred)
}

// Times 乘上張數得到批次總額
func (b Breakdown) Times(quantity int) Breakdown {
	q := decimal.NewFromInt(int64(quantity))
	return Breakdown{
		PackagePrice:           b.PackagePrice.Mul(q),
		UserFeeAmount:          b.UserFeeAmount.Mul(q),
		HostFeeAmount:          b.HostFeeAmount.Mul(q),
		PlatformFeeAmount:      b.PlatformFeeAmount.Mul(q),
		CGSTAmount:             b.CGSTAmount.Mul(q),
		SGSTAmount:             b.SGSTAmount.Mul(q),
		TotalTax:               b.TotalTax.Mul(q),
		TicketPrice:            b.TicketPrice.Mul(q),
		HostGetsBeforeReferral: b.HostGetsBeforeReferral.Mul(q),
		ReferralAmount:         b.ReferralAmount.Mul(q),
		HostGets:               b.HostGets.Mul(q),
		AdminGets:              b.AdminGets.Mul(q),
	}
}

// Add 合併兩個拆分 (多個選購行加總用)
func (b Breakdown) Add(o Breakdown) Breakdown {
	return Breakdown{
		PackagePrice:           b.PackagePrice.Add(o.PackagePrice),
		UserFeeAmount:          b.UserFeeAmount.Add(o.UserFeeAmount),
		HostFeeAmount:          b.HostFeeAmount.Add(o.HostFeeAmount),
		PlatformFeeAmount:      b.PlatformFeeAmount.Add(o.PlatformFeeAmount),
		CGSTAmount:             b.CGSTAmount.Add(o.CGSTAmount),
		SGSTAmount:             b.SGSTAmount.Add(o.SGSTAmount),
		TotalTax:               b.TotalTax.Add(o.TotalTax),
		TicketPrice:            b.TicketPrice.Add(o.TicketPrice),
		HostGetsBeforeReferral: b.HostGetsBeforeReferral.Add(o.HostGetsBeforeReferral),
		ReferralAmount:         b.ReferralAmount.Add(o.ReferralAmount),
		HostGets:               b.HostGets.Add(o.HostGets),
		AdminGets:              b.AdminGets.Add(o.AdminGets),
	}
}

// Rounded 四捨五入到小數兩位。只在寫入或顯示時呼叫一次。
func (b Breakdown) Rounded() Breakdown {
	return Breakdown{
		PackagePrice:           Round(b.PackagePrice),
		UserFeeAmount:          Round(b.UserFeeAmount),
		HostFeeAmount:          Round(b.HostFeeAmount),
		PlatformFeeAmount:      Round(b.PlatformFeeAmount),
		CGSTAmount:             Round(b.CGSTAmount),
		SGSTAmount:             Round(b.SGSTAmount),
		TotalTax:               Round(b.TotalTax),
		TicketPrice:            Round(b.TicketPrice),
		HostGetsBeforeReferral: Round(b.HostGetsBeforeReferral),
		ReferralAmount:         Round(b.ReferralAmount),
		HostGets:               Round(b.HostGets),
		AdminGets:              Round(b.AdminGets),
	}
}

// Round 四捨五入到最小貨幣單位（小數兩位，0.5 遠離零進位）
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
