package controller

import (
	"fmt"
	"log"
	"net/http"

	"merch-store-backend/service"
)

// CatalogController handles the admin catalog export
type CatalogController struct {
	catalog service.CatalogServiceInterface
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalog service.CatalogServiceInterface) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// ExportPDF handles GET /api/catalog/pdf?size=
// Renders the product catalog with current availability and returns it as
// a PDF attachment. Requires a local Chrome/Chromium install.
func (c *CatalogController) ExportPDF(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ExportPDF: received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	size := r.URL.Query().Get("size")
	pdf, err := c.catalog.GeneratePDF(r.Context(), size)
	if err != nil {
		log.Printf("❌ ExportPDF: %v", err)
		http.Error(w, fmt.Sprintf("Failed to generate catalog PDF: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="catalog.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("❌ ExportPDF: failed to write response: %v", err)
	}
}
