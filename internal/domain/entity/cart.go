package entity

import "strings"

// CartLine is one distinct item in the in-progress selection. Price is a
// snapshot taken when the line was added; a later catalog price edit does not
// change lines already in the cart.
type CartLine struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"qty"`
	Note     string `json:"note"`
}

// LineTotal returns the extended amount for the line
func (l CartLine) LineTotal() int64 {
	return l.Price * int64(l.Quantity)
}

// Cart is the ordered sequence of cart lines for one customer visit.
// Ordering is insertion order, kept for display only.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// FindLine returns the index of the line for the named item, or -1. Names
// match case-insensitively, same as catalog lookups.
func (c *Cart) FindLine(name string) int {
	for i := range c.Lines {
		if strings.EqualFold(c.Lines[i].Name, name) {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the cart
func (c *Cart) Clone() Cart {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}
