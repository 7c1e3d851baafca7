package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adiwira/kasirpos/internal/presentation/http/dto/request"
)

func TestValidateCheckoutConfigNamesEveryBadField(t *testing.T) {
	req := &request.CheckoutConfigRequest{
		DiscountFlat: -1,
		DiscountPct:  120,
		ServiceFee:   -5,
		CashTendered: 10000,
		Method:       "Barter",
	}

	errs := validateCheckoutConfig(req)

	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	assert.Equal(t, []string{"discount_flat", "discount_pct", "service_fee", "method"}, fields)
}

func TestValidateCheckoutConfigAcceptsDefaults(t *testing.T) {
	req := &request.CheckoutConfigRequest{Method: "Cash"}
	assert.Empty(t, validateCheckoutConfig(req))
}
