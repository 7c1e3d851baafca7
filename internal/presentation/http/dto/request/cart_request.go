package request

// AddCartItemRequest puts one unit of a catalog item into the cart
type AddCartItemRequest struct {
	Name string `json:"name" binding:"required"`
}

// SetQuantityRequest changes a cart line's quantity
type SetQuantityRequest struct {
	Quantity int `json:"qty" binding:"required"`
}

// SetNoteRequest attaches free text to a cart line
type SetNoteRequest struct {
	Note string `json:"note"`
}
