package models

// CartLine represents a single purchase line in a submitted cart.
// Quantity defaults to 1 when omitted; repeated identical lines are
// aggregated additively when the order is processed.
// Example: {"id": "p1", "type": "tshirt", "style": "grey-black", "size": "M", "quantity": 2}
type CartLine struct {
	ID        string `json:"id,omitempty"`
	ProductID string `json:"productId,omitempty"`
	Name      string `json:"name,omitempty"`
	Type      string `json:"type,omitempty"`
	Style     string `json:"style,omitempty"`
	Size      string `json:"size,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
}

// Order represents a recorded customer order. Date is assigned by the
// server (RFC3339) when the order is committed.
// Example:
// {
//   "cart": [{"id": "p1", "type": "tshirt", "style": "grey-black", "size": "M"}],
//   "name": "Juan Pérez",
//   "number": "+57 300 000 0000",
//   "email": "juan@example.com",
//   "address": "Calle 1 #2-3",
//   "date": "2026-01-04T10:30:00Z"
// }
type Order struct {
	Cart    []CartLine `json:"cart"`
	Name    string     `json:"name"`
	Number  string     `json:"number"`
	Email   string     `json:"email"`
	Address string     `json:"address"`
	Date    string     `json:"date,omitempty"`
}
