package entity

import (
	"math"
	"time"

	"github.com/adiwira/kasirpos/internal/domain/enum"
)

// Sale is one finalized transaction in the ledger. Immutable once created
// except for the Voided flag, which can only ever flip to true. The JSON field
// names follow the persisted sales document format.
type Sale struct {
	ID           string             `json:"id"`
	OrderNo      int64              `json:"orderNo"`
	Time         time.Time          `json:"time"`
	Items        []CartLine         `json:"items"`
	SubTotal     int64              `json:"subTotal"`
	DiscountFlat int64              `json:"discountRp"`
	DiscountPct  float64            `json:"discountPct"`
	Tax          int64              `json:"tax"`
	ServiceFee   int64              `json:"serviceFee"`
	Total        int64              `json:"total"`
	Paid         int64              `json:"paid"`
	Method       enum.PaymentMethod `json:"method"`
	Change       int64              `json:"change"`
	Cashier      string             `json:"cashier"`
	Voided       bool               `json:"voided"`
}

// DiscountTotal returns the combined flat and percentage discount applied to
// the sale, capped at the subtotal.
func (s *Sale) DiscountTotal() int64 {
	pct := int64(math.Round(float64(s.SubTotal) * s.DiscountPct / 100))
	d := s.DiscountFlat + pct
	if d > s.SubTotal {
		return s.SubTotal
	}
	return d
}
