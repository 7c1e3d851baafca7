package request

// CheckoutConfigRequest sets the terminal's discount, tax, fee, tendered
// cash and payment method ahead of preview or payment. Range checks happen in
// the handler so a response can name every offending field at once.
type CheckoutConfigRequest struct {
	DiscountFlat int64   `json:"discount_flat"`
	DiscountPct  float64 `json:"discount_pct"`
	TaxEnabled   bool    `json:"tax_enabled"`
	ServiceFee   int64   `json:"service_fee"`
	CashTendered int64   `json:"cash_tendered"`
	Method       string  `json:"method" binding:"required"`
}
