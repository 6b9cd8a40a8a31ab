package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"merch-store-backend/models"
	"merch-store-backend/repository"
	"merch-store-backend/service"
)

// OrderController handles HTTP requests for orders
type OrderController struct {
	repository repository.OrderRepositoryInterface
	orders     service.OrderServiceInterface
}

// NewOrderController creates a new OrderController
func NewOrderController(repo repository.OrderRepositoryInterface, orders service.OrderServiceInterface) *OrderController {
	return &OrderController{repository: repo, orders: orders}
}

// Collection handles GET and POST /api/orders
func (c *OrderController) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.list(w, r)
	case http.MethodPost:
		c.submit(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (c *OrderController) list(w http.ResponseWriter, r *http.Request) {
	orders, err := c.repository.List(r.Context())
	if err != nil {
		log.Printf("❌ ListOrders: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// submit processes an order submission. The whole cart is checked against
// current stock and committed all-or-nothing; a rejected order leaves
// stock untouched.
// Example request:
// POST /api/orders
// {
//   "cart": [{"id": "p1", "type": "tshirt", "style": "grey-black", "size": "M"}],
//   "name": "Juan Pérez", "number": "+57...", "email": "j@e.co", "address": "..."
// }
func (c *OrderController) submit(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SubmitOrder: received %s request to %s", r.Method, r.URL.Path)

	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		log.Printf("❌ SubmitOrder: failed to decode request body: %v", err)
		writeJSON(w, http.StatusBadRequest, models.SuccessResponse{Success: false, Error: "Invalid order data"})
		return
	}

	if _, err := c.orders.Submit(r.Context(), order); err != nil {
		log.Printf("❌ SubmitOrder: %v", err)
		writeError(w, err)
		return
	}

	writeSuccess(w)
}

// Delete handles DELETE /api/orders/{index} — admin removal of the order
// record at that position. The order's items are not restocked.
func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DeleteOrder: received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idxStr := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	index, err := strconv.Atoi(idxStr)
	if err != nil {
		log.Printf("❌ DeleteOrder: invalid order index: %s", idxStr)
		writeJSON(w, http.StatusBadRequest, models.SuccessResponse{Success: false, Error: "invalid order index"})
		return
	}

	if err := c.repository.DeleteByIndex(r.Context(), index); err != nil {
		log.Printf("❌ DeleteOrder: %v", err)
		writeError(w, err)
		return
	}

	writeSuccess(w)
}
