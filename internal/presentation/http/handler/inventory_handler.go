package handler

import (
	"github.com/adiwira/kasirpos/internal/application/service"
	"github.com/adiwira/kasirpos/internal/domain/entity"
	"github.com/adiwira/kasirpos/internal/presentation/http/dto/request"
	"github.com/adiwira/kasirpos/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// InventoryHandler handles catalog HTTP requests
type InventoryHandler struct {
	catalogService *service.CatalogService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(catalogService *service.CatalogService) *InventoryHandler {
	return &InventoryHandler{catalogService: catalogService}
}

// List returns the full catalog
func (h *InventoryHandler) List(c *gin.Context) {
	items := h.catalogService.List(c.Request.Context())
	response.OK(c, "Items retrieved successfully", items)
}

// Get returns one catalog item by name
func (h *InventoryHandler) Get(c *gin.Context) {
	item, err := h.catalogService.Find(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item retrieved successfully", item)
}

// Add creates a catalog item
func (h *InventoryHandler) Add(c *gin.Context) {
	var req request.AddMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.catalogService.Add(c.Request.Context(), entity.MenuItem{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Stock:    req.Stock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Item created successfully", nil)
}

// UpdatePrice changes an item's unit price
func (h *InventoryHandler) UpdatePrice(c *gin.Context) {
	var req request.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.catalogService.UpdatePrice(c.Request.Context(), c.Param("name"), req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Price updated successfully", nil)
}

// AdjustStock applies a signed stock delta, clamped at zero
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	var req request.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.catalogService.AdjustStock(c.Request.Context(), c.Param("name"), req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock adjusted successfully", item)
}

// Remove deletes a catalog item
func (h *InventoryHandler) Remove(c *gin.Context) {
	if err := h.catalogService.Remove(c.Request.Context(), c.Param("name")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item removed successfully", nil)
}
