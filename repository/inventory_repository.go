package repository

import (
	"context"
	"fmt"
	"log"

	"merch-store-backend/apperrors"
	"merch-store-backend/inventory"
	"merch-store-backend/models"
)

// InventoryRepository handles stock queries and admin stock updates
type InventoryRepository struct {
	docs *DocumentRepository
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(docs *DocumentRepository) *InventoryRepository {
	return &InventoryRepository{docs: docs}
}

// Ensure InventoryRepository implements InventoryRepositoryInterface
var _ InventoryRepositoryInterface = (*InventoryRepository)(nil)

// Get returns the full inventory snapshot.
func (r *InventoryRepository) Get(ctx context.Context) (models.Inventory, error) {
	var out models.Inventory
	err := r.docs.View(func(doc *models.Document) error {
		out = doc.Clone().Inventory
		return nil
	})
	return out, err
}

// CheckAvailability returns the current stock level for the given path.
// Unknown products and missing keys report zero, never an error.
func (r *InventoryRepository) CheckAvailability(ctx context.Context, productID, style, size string) (int, error) {
	var available int
	err := r.docs.View(func(doc *models.Document) error {
		available = inventory.Level(&doc.Inventory, productID, style, size)
		return nil
	})
	return available, err
}

// UpdateProductStock merges an admin stock update into one product's
// entry. The product must exist; the update shape follows its type.
func (r *InventoryRepository) UpdateProductStock(ctx context.Context, productID string, styled map[string]models.SizeCounts, flat models.SizeCounts) error {
	err := r.docs.Update(ctx, func(doc *models.Document) error {
		p := doc.FindProduct(productID)
		if p == nil {
			return fmt.Errorf("%w: product %q", apperrors.ErrNotFound, productID)
		}
		return inventory.ApplyStockUpdate(&doc.Inventory, *p, styled, flat)
	})
	if err != nil {
		return err
	}
	log.Printf("📦 UpdateProductStock: updated stock for product id=%s", productID)
	return nil
}

// Replace swaps in a whole inventory snapshot verbatim (admin import).
func (r *InventoryRepository) Replace(ctx context.Context, next models.Inventory) error {
	err := r.docs.Update(ctx, func(doc *models.Document) error {
		inventory.Replace(&doc.Inventory, next)
		return nil
	})
	if err != nil {
		return err
	}
	log.Printf("📦 Replace: bulk inventory replacement applied (%d products)", len(next.Products))
	return nil
}
