package utils

import "github.com/google/uuid"

// NewSaleID generates a unique identifier for a sale record.
// Ledger appends treat a collision as an internal invariant violation, so a
// random UUID is used rather than the wall clock.
func NewSaleID() string {
	return uuid.New().String()
}

// NewRequestID generates a request correlation identifier
func NewRequestID() string {
	return uuid.New().String()
}
