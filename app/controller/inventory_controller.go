package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"merch-store-backend/models"
	"merch-store-backend/repository"
)

// InventoryController handles HTTP requests for stock levels
type InventoryController struct {
	repository repository.InventoryRepositoryInterface
	products   repository.ProductRepositoryInterface
}

// NewInventoryController creates a new InventoryController
func NewInventoryController(repo repository.InventoryRepositoryInterface, products repository.ProductRepositoryInterface) *InventoryController {
	return &InventoryController{repository: repo, products: products}
}

// Collection handles GET and POST /api/inventory. POST is the same
// verbatim replacement as /api/inventory/bulk.
func (c *InventoryController) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.get(w, r)
	case http.MethodPost:
		c.replace(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (c *InventoryController) get(w http.ResponseWriter, r *http.Request) {
	inv, err := c.repository.Get(r.Context())
	if err != nil {
		log.Printf("❌ GetInventory: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

// UpdateProductStock handles POST /api/inventory/product/{id}
// The body shape follows the product type:
//   - tshirt: {"grey-black": {"S": 5, "M": 3}}
//   - jort/other: {"S": 5, "M": 3}
func (c *InventoryController) UpdateProductStock(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdateProductStock: received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/inventory/product/")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, models.SuccessResponse{Success: false, Error: "product id is required"})
		return
	}

	product, err := c.products.Get(r.Context(), id)
	if err != nil {
		log.Printf("❌ UpdateProductStock: %v", err)
		writeError(w, err)
		return
	}

	var styled map[string]models.SizeCounts
	var flat models.SizeCounts
	if product.Type == models.ProductTypeTshirt {
		err = json.NewDecoder(r.Body).Decode(&styled)
	} else {
		err = json.NewDecoder(r.Body).Decode(&flat)
	}
	if err != nil {
		log.Printf("❌ UpdateProductStock: failed to decode request body: %v", err)
		writeJSON(w, http.StatusBadRequest, models.SuccessResponse{Success: false, Error: "Invalid stock data"})
		return
	}

	if err := c.repository.UpdateProductStock(r.Context(), id, styled, flat); err != nil {
		log.Printf("❌ UpdateProductStock: %v", err)
		writeError(w, err)
		return
	}

	writeSuccess(w)
}

// Bulk handles POST /api/inventory/bulk — verbatim replacement of the
// whole inventory snapshot, used for administrative recovery/import.
func (c *InventoryController) Bulk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	c.replace(w, r)
}

func (c *InventoryController) replace(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 BulkInventory: received %s request to %s", r.Method, r.URL.Path)

	var next models.Inventory
	if err := json.NewDecoder(r.Body).Decode(&next); err != nil {
		log.Printf("❌ BulkInventory: failed to decode request body: %v", err)
		writeJSON(w, http.StatusBadRequest, models.SuccessResponse{Success: false, Error: "Invalid inventory data"})
		return
	}

	if err := c.repository.Replace(r.Context(), next); err != nil {
		log.Printf("❌ BulkInventory: %v", err)
		writeError(w, err)
		return
	}

	writeSuccess(w)
}

// Check handles GET /api/inventory/check?productId=&style=&size=
// Unknown products and missing keys report zero availability, never an error.
// Example response: {"available": 3}
func (c *InventoryController) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	available, err := c.repository.CheckAvailability(r.Context(), q.Get("productId"), q.Get("style"), q.Get("size"))
	if err != nil {
		log.Printf("❌ CheckStock: %v", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.CheckStockResponse{Available: available})
}
