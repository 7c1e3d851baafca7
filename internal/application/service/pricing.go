package service

import (
	"math"

	"github.com/adiwira/kasirpos/internal/domain/entity"
)

// taxRatePct is the fixed PPN rate applied to the discounted subtotal.
const taxRatePct = 11

// ComputeTotals derives the price breakdown for a cart. Pure: no state, no
// error path. Inputs are assumed non-negative; callers validate before this
// point. All rounding is half away from zero to the nearest whole rupiah.
//
//	subtotal = Σ price * qty
//	discount = min(subtotal, flat + round(subtotal * pct / 100))
//	tax      = taxEnabled ? round((subtotal - discount) * 11%) : 0
//	total    = subtotal - discount + tax + serviceFee
//	change   = max(0, tendered - total)
func ComputeTotals(lines []entity.CartLine, cfg entity.PricingConfig) entity.Totals {
	var subtotal int64
	for _, line := range lines {
		subtotal += line.LineTotal()
	}

	pctDiscount := int64(math.Round(float64(subtotal) * cfg.DiscountPct / 100))
	discount := cfg.DiscountFlat + pctDiscount
	if discount > subtotal {
		discount = subtotal
	}

	taxableBase := subtotal - discount
	var tax int64
	if cfg.TaxEnabled {
		// integer round-half-up; equals half-away-from-zero for the
		// non-negative base
		tax = (taxableBase*taxRatePct + 50) / 100
	}

	total := taxableBase + tax + cfg.ServiceFee

	change := cfg.CashTendered - total
	if change < 0 {
		change = 0
	}

	return entity.Totals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    total,
		Change:   change,
	}
}
