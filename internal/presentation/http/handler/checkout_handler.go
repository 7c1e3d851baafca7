package handler

import (
	"github.com/adiwira/kasirpos/internal/application/service"
	"github.com/adiwira/kasirpos/internal/domain/entity"
	"github.com/adiwira/kasirpos/internal/domain/enum"
	"github.com/adiwira/kasirpos/internal/presentation/http/dto/request"
	"github.com/adiwira/kasirpos/internal/presentation/http/dto/response"
	"github.com/adiwira/kasirpos/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles the pay-and-commit flow
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
	settingsService *service.SettingsService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService, settingsService *service.SettingsService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, settingsService: settingsService}
}

// GetConfig returns the terminal's pricing configuration and payment method
func (h *CheckoutHandler) GetConfig(c *gin.Context) {
	cfg, method := h.checkoutService.Config(c.Request.Context())
	response.OK(c, "Checkout config retrieved successfully", gin.H{
		"config": cfg,
		"method": method,
	})
}

// SetConfig replaces the pricing configuration and payment method
func (h *CheckoutHandler) SetConfig(c *gin.Context) {
	var req request.CheckoutConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if fieldErrs := validateCheckoutConfig(&req); len(fieldErrs) > 0 {
		response.ValidationError(c, fieldErrs)
		return
	}

	ctx := c.Request.Context()
	cfg := entity.PricingConfig{
		DiscountFlat: req.DiscountFlat,
		DiscountPct:  req.DiscountPct,
		TaxEnabled:   req.TaxEnabled,
		ServiceFee:   req.ServiceFee,
		CashTendered: req.CashTendered,
	}
	if err := h.checkoutService.SetConfig(ctx, cfg, enum.PaymentMethod(req.Method)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Checkout config updated", gin.H{
		"totals": h.checkoutService.Totals(ctx),
	})
}

// validateCheckoutConfig collects every out-of-range field so the caller can
// fix the whole form in one round trip.
func validateCheckoutConfig(req *request.CheckoutConfigRequest) []apperror.FieldError {
	var errs []apperror.FieldError
	if req.DiscountFlat < 0 {
		errs = append(errs, apperror.FieldError{Field: "discount_flat", Message: "must not be negative"})
	}
	if req.DiscountPct < 0 || req.DiscountPct > 100 {
		errs = append(errs, apperror.FieldError{Field: "discount_pct", Message: "must be between 0 and 100"})
	}
	if req.ServiceFee < 0 {
		errs = append(errs, apperror.FieldError{Field: "service_fee", Message: "must not be negative"})
	}
	if req.CashTendered < 0 {
		errs = append(errs, apperror.FieldError{Field: "cash_tendered", Message: "must not be negative"})
	}
	if !enum.PaymentMethod(req.Method).Valid() {
		errs = append(errs, apperror.FieldError{Field: "method", Message: "unknown payment method"})
	}
	return errs
}

// Preview returns receipt-shaped data for the current cart without
// committing anything
func (h *CheckoutHandler) Preview(c *gin.Context) {
	ctx := c.Request.Context()
	sale, err := h.checkoutService.Preview(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt := entity.NewReceipt(h.settingsService.Get(ctx), &sale)
	response.OK(c, "Preview generated", gin.H{
		"sale":    sale,
		"receipt": receipt,
	})
}

// Pay validates payment and commits the sale
func (h *CheckoutHandler) Pay(c *gin.Context) {
	ctx := c.Request.Context()
	sale, err := h.checkoutService.Finalize(ctx, GetUsername(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt := entity.NewReceipt(h.settingsService.Get(ctx), &sale)
	response.Created(c, "Sale completed", gin.H{
		"sale":    sale,
		"receipt": receipt,
	})
}
