package router

import (
	"net/http"

	"merch-store-backend/app/controller"
)

// Controllers groups the HTTP controllers wired by app.Initialize.
type Controllers struct {
	Product   *controller.ProductController
	Inventory *controller.InventoryController
	Order     *controller.OrderController
	Catalog   *controller.CatalogController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes builds the route table and wraps it with the CORS and
// rate-limiting middleware.
func SetupRoutes(controllers *Controllers, cors *CORSConfig, limiter *RateLimiter) http.Handler {
	mux := http.NewServeMux()

	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Product catalog
	mux.HandleFunc("/api/products", controllers.Product.Collection)
	mux.HandleFunc("/api/products/", controllers.Product.Delete)

	// Inventory
	mux.HandleFunc("/api/inventory", controllers.Inventory.Collection)
	mux.HandleFunc("/api/inventory/bulk", controllers.Inventory.Bulk)
	mux.HandleFunc("/api/inventory/check", controllers.Inventory.Check)
	mux.HandleFunc("/api/inventory/product/", controllers.Inventory.UpdateProductStock)

	// Orders
	mux.HandleFunc("/api/orders", controllers.Order.Collection)
	mux.HandleFunc("/api/orders/", controllers.Order.Delete)

	// Admin catalog export
	mux.HandleFunc("/api/catalog/pdf", controllers.Catalog.ExportPDF)

	var handler http.Handler = mux
	handler = RateLimitMiddleware(handler, limiter)
	handler = CORSMiddleware(handler, cors)
	return handler
}
