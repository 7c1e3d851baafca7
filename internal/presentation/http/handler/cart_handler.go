package handler

import (
	"github.com/adiwira/kasirpos/internal/application/service"
	"github.com/adiwira/kasirpos/internal/presentation/http/dto/request"
	"github.com/adiwira/kasirpos/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// CartHandler handles cart HTTP requests. Each mutation responds with the
// updated lines and the recomputed totals so the terminal never goes stale.
type CartHandler struct {
	cartService     *service.CartService
	checkoutService *service.CheckoutService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService, checkoutService *service.CheckoutService) *CartHandler {
	return &CartHandler{cartService: cartService, checkoutService: checkoutService}
}

// Get returns the current cart and totals
func (h *CartHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, "Cart retrieved successfully", gin.H{
		"lines":  h.cartService.Lines(ctx),
		"totals": h.checkoutService.Totals(ctx),
	})
}

// AddItem puts one unit of a catalog item into the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	ctx := c.Request.Context()
	lines, err := h.cartService.AddItem(ctx, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added to cart", gin.H{
		"lines":  lines,
		"totals": h.checkoutService.Totals(ctx),
	})
}

// SetQuantity changes a cart line's quantity
func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req request.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	ctx := c.Request.Context()
	lines, err := h.cartService.SetQuantity(ctx, c.Param("name"), req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quantity updated", gin.H{
		"lines":  lines,
		"totals": h.checkoutService.Totals(ctx),
	})
}

// SetNote attaches free text to a cart line
func (h *CartHandler) SetNote(c *gin.Context) {
	var req request.SetNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lines, err := h.cartService.SetNote(c.Request.Context(), c.Param("name"), req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Note updated", gin.H{"lines": lines})
}

// RemoveItem drops a line from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	ctx := c.Request.Context()
	lines := h.cartService.RemoveItem(ctx, c.Param("name"))
	response.OK(c, "Item removed from cart", gin.H{
		"lines":  lines,
		"totals": h.checkoutService.Totals(ctx),
	})
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	h.cartService.Clear(c.Request.Context())
	response.OK(c, "Cart cleared", nil)
}
