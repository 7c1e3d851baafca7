package entity

// PricingConfig holds the discount, tax, fee and tendered-cash inputs for one
// pricing computation. It is session state, never persisted. Callers are
// responsible for rejecting negative amounts before it reaches the pricing
// engine.
type PricingConfig struct {
	DiscountFlat int64   `json:"discount_flat"`
	DiscountPct  float64 `json:"discount_pct"`
	TaxEnabled   bool    `json:"tax_enabled"`
	ServiceFee   int64   `json:"service_fee"`
	CashTendered int64   `json:"cash_tendered"`
}

// DefaultPricingConfig returns the config a fresh session starts with.
// Tax defaults to enabled, everything else to zero.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{TaxEnabled: true}
}

// Totals is the derived price breakdown for a cart. It is a pure function of
// cart and config and is never stored; the relevant amounts are copied onto
// the Sale record at finalize.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Discount int64 `json:"discount"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
	Change   int64 `json:"change"`
}
