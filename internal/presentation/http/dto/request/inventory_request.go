package request

// AddMenuItemRequest creates a catalog item
type AddMenuItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Price    int64  `json:"price" binding:"required,gte=0"`
	Category string `json:"category"`
	Stock    int    `json:"stock" binding:"gte=0"`
}

// UpdatePriceRequest changes an item's unit price
type UpdatePriceRequest struct {
	Price int64 `json:"price" binding:"gte=0"`
}

// AdjustStockRequest applies a signed stock delta
type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}
