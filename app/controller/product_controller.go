package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"merch-store-backend/models"
	"merch-store-backend/repository"
)

// ProductController handles HTTP requests for the product catalog
type ProductController struct {
	repository repository.ProductRepositoryInterface
}

// NewProductController creates a new ProductController
func NewProductController(repo repository.ProductRepositoryInterface) *ProductController {
	return &ProductController{repository: repo}
}

// Collection handles GET and POST /api/products
func (c *ProductController) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.list(w, r)
	case http.MethodPost:
		c.upsert(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (c *ProductController) list(w http.ResponseWriter, r *http.Request) {
	products, err := c.repository.List(r.Context())
	if err != nil {
		log.Printf("❌ ListProducts: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// upsert creates a product (no id in the payload) or updates an existing
// one. Creation assigns a server-side id and zero-initializes the
// product's inventory entry.
// Example request:
// POST /api/products
// {"name": "Classic Tee", "price": 25, "type": "tshirt", "styles": [{"value": "grey-black"}]}
// Example response: {"success": true, "id": "9f1c2a44-..."}
func (c *ProductController) upsert(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpsertProduct: received %s request to %s", r.Method, r.URL.Path)

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		log.Printf("❌ UpsertProduct: failed to decode request body: %v", err)
		writeJSON(w, http.StatusBadRequest, models.SuccessResponse{Success: false, Error: "Invalid product data"})
		return
	}

	saved, err := c.repository.Upsert(r.Context(), product)
	if err != nil {
		log.Printf("❌ UpsertProduct: %v", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.UpsertProductResponse{Success: true, ID: saved.ID})
}

// Delete handles DELETE /api/products/{id}
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DeleteProduct: received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, models.SuccessResponse{Success: false, Error: "product id is required"})
		return
	}

	if err := c.repository.Delete(r.Context(), id); err != nil {
		log.Printf("❌ DeleteProduct: %v", err)
		writeError(w, err)
		return
	}

	log.Printf("🗑️ DeleteProduct: removed product id=%s", id)
	writeSuccess(w)
}
