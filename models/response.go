package models

// SuccessResponse is the envelope returned by mutating endpoints
// Example: {"success": true} or {"success": false, "error": "Product not found"}
type SuccessResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
