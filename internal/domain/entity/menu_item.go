package entity

// MenuItem represents a catalog item and its live stock count.
// The name is the unique key within the catalog. Price is a whole-rupiah
// amount; no fractional currency exists anywhere in the system.
type MenuItem struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
}
