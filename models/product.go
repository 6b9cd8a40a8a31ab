package models

// Product types with a dedicated inventory shape. Any other value is
// treated as a generic product with a flat per-size stock map.
const (
	ProductTypeTshirt = "tshirt"
	ProductTypeJort   = "jort"
)

// Style represents a product style variant (t-shirts only)
// Example: {"value": "grey-black", "label": "Grey / Black"}
type Style struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// Product represents a product in the catalog
type Product struct {
	ID     string  `json:"id,omitempty"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Type   string  `json:"type"`
	Styles []Style `json:"styles,omitempty"`
}

// UpsertProductResponse represents the response after creating or updating a product
// Example: {"success": true, "id": "a1b2c3d4"}
type UpsertProductResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}
