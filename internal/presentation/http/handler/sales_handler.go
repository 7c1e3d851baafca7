package handler

import (
	"github.com/adiwira/kasirpos/internal/application/service"
	"github.com/adiwira/kasirpos/internal/domain/entity"
	"github.com/adiwira/kasirpos/internal/presentation/http/dto/response"
	"github.com/adiwira/kasirpos/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// SalesHandler handles sales ledger HTTP requests
type SalesHandler struct {
	ledgerService   *service.LedgerService
	settingsService *service.SettingsService
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(ledgerService *service.LedgerService, settingsService *service.SettingsService) *SalesHandler {
	return &SalesHandler{ledgerService: ledgerService, settingsService: settingsService}
}

// List returns the ledger, most recent first, paginated
func (h *SalesHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	sales := h.ledgerService.List(c.Request.Context())
	page, meta := pagination.Slice(sales, params)
	result := pagination.NewPaginatedResult(page, meta)
	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Get returns one sale by id
func (h *SalesHandler) Get(c *gin.Context) {
	sale, err := h.ledgerService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale retrieved successfully", sale)
}

// Receipt returns the receipt data contract for a finalized sale
func (h *SalesHandler) Receipt(c *gin.Context) {
	ctx := c.Request.Context()
	sale, err := h.ledgerService.Get(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt := entity.NewReceipt(h.settingsService.Get(ctx), &sale)
	response.OK(c, "Receipt generated", receipt)
}

// Void marks a sale cancelled. Stock consumed by the sale is not returned.
func (h *SalesHandler) Void(c *gin.Context) {
	sale, err := h.ledgerService.Void(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale voided", sale)
}
