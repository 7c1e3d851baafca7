package entity

import (
	"time"

	"github.com/adiwira/kasirpos/internal/domain/enum"
)

// ReceiptHeader holds the shop identity printed at the top of a receipt.
type ReceiptHeader struct {
	ShopName string `json:"shop_name"`
	Address  string `json:"address,omitempty"`
	LogoData string `json:"logo_data,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	LineTotal int64  `json:"line_total"`
}

// Receipt is a value object consumed by the external receipt renderer.
// It is not a persisted entity; it is composed from settings and sale data
// at preview or finalize time. Tax and service fee are omitted when zero so
// the renderer only shows them when they apply.
type Receipt struct {
	Header     ReceiptHeader      `json:"header"`
	OrderNo    int64              `json:"order_no"`
	Time       time.Time          `json:"time"`
	Cashier    string             `json:"cashier,omitempty"`
	Items      []ReceiptItem      `json:"items"`
	SubTotal   int64              `json:"sub_total"`
	Discount   int64              `json:"discount"`
	Tax        int64              `json:"tax,omitempty"`
	ServiceFee int64              `json:"service_fee,omitempty"`
	Total      int64              `json:"total"`
	Method     enum.PaymentMethod `json:"method"`
	Paid       int64              `json:"paid"`
	Change     int64              `json:"change"`
	Footer     string             `json:"footer,omitempty"`
}

// NewReceipt composes the receipt data contract from shop settings and a sale
func NewReceipt(settings ShopSettings, sale *Sale) *Receipt {
	items := make([]ReceiptItem, len(sale.Items))
	for i, line := range sale.Items {
		items[i] = ReceiptItem{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Price,
			LineTotal: line.LineTotal(),
		}
	}

	return &Receipt{
		Header: ReceiptHeader{
			ShopName: settings.ShopName,
			Address:  settings.Address,
			LogoData: settings.LogoData,
		},
		OrderNo:    sale.OrderNo,
		Time:       sale.Time,
		Cashier:    sale.Cashier,
		Items:      items,
		SubTotal:   sale.SubTotal,
		Discount:   sale.DiscountTotal(),
		Tax:        sale.Tax,
		ServiceFee: sale.ServiceFee,
		Total:      sale.Total,
		Method:     sale.Method,
		Paid:       sale.Paid,
		Change:     sale.Change,
		Footer:     settings.Footer,
	}
}
