package models

// SizeCounts maps a size (S, M, L, XL) to a non-negative stock count
type SizeCounts map[string]int

// InventoryEntry holds the stock for a single product. Exactly one of the
// two fields is populated depending on the product type:
//   - t-shirts: Styles, a style -> size -> count matrix
//   - jorts and everything else: Sizes, a flat size -> count map
//
// Example (t-shirt):
//
//	{"styles": {"grey-black": {"S": 0, "M": 5, "L": 0, "XL": 0}}}
//
// Example (jort):
//
//	{"sizes": {"S": 2, "M": 0, "L": 1, "XL": 0}}
type InventoryEntry struct {
	Styles map[string]SizeCounts `json:"styles,omitempty"`
	Sizes  SizeCounts            `json:"sizes,omitempty"`
}

// Styled reports whether the entry carries a style dimension.
func (e *InventoryEntry) Styled() bool {
	return e != nil && e.Styles != nil
}

// Inventory is the full stock snapshot, keyed by product id
type Inventory struct {
	Products map[string]*InventoryEntry `json:"products"`
}

// CheckStockResponse represents the response for GET /api/inventory/check
// Example: {"available": 3}
type CheckStockResponse struct {
	Available int `json:"available"`
}
