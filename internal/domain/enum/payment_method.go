package enum

// PaymentMethod represents how a sale was paid
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "Cash"
	PaymentTransfer PaymentMethod = "Transfer"
	PaymentQRIS     PaymentMethod = "QRIS"
)

// Valid reports whether the method is one of the accepted values
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentTransfer, PaymentQRIS:
		return true
	}
	return false
}

func (m PaymentMethod) String() string {
	return string(m)
}
