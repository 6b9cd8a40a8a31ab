package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"merch-store-backend/apperrors"
	"merch-store-backend/inventory"
	"merch-store-backend/models"
)

// ProductRepository handles catalog operations over the document
type ProductRepository struct {
	docs *DocumentRepository
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(docs *DocumentRepository) *ProductRepository {
	return &ProductRepository{docs: docs}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

// List returns all products.
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	err := r.docs.View(func(doc *models.Document) error {
		out = make([]models.Product, len(doc.Products))
		copy(out, doc.Products)
		return nil
	})
	return out, err
}

// Get returns the product with the given id.
func (r *ProductRepository) Get(ctx context.Context, id string) (models.Product, error) {
	var out models.Product
	err := r.docs.View(func(doc *models.Document) error {
		p := doc.FindProduct(id)
		if p == nil {
			return fmt.Errorf("%w: product %q", apperrors.ErrNotFound, id)
		}
		out = *p
		return nil
	})
	return out, err
}

// Upsert creates or updates a product. A product without an id is created
// with a server-assigned uuid and its inventory entry initialized to zero
// across all recognized style/size combinations. Updating a t-shirt with
// new styles backfills zeroed rows for them, preserving existing counts.
func (r *ProductRepository) Upsert(ctx context.Context, p models.Product) (models.Product, error) {
	if p.Name == "" {
		return models.Product{}, fmt.Errorf("%w: product name is required", apperrors.ErrValidation)
	}
	if p.Price < 0 {
		return models.Product{}, fmt.Errorf("%w: product price must be non-negative", apperrors.ErrValidation)
	}
	if p.Type == "" {
		return models.Product{}, fmt.Errorf("%w: product type is required", apperrors.ErrValidation)
	}

	creating := p.ID == ""
	if creating {
		p.ID = uuid.NewString()
	}

	err := r.docs.Update(ctx, func(doc *models.Document) error {
		if creating {
			doc.Products = append(doc.Products, p)
			inventory.Initialize(&doc.Inventory, p)
			return nil
		}

		existing := doc.FindProduct(p.ID)
		if existing == nil {
			return fmt.Errorf("%w: product %q", apperrors.ErrNotFound, p.ID)
		}
		*existing = p
		if p.Type == models.ProductTypeTshirt && len(p.Styles) > 0 {
			inventory.Initialize(&doc.Inventory, p)
		}
		return nil
	})
	if err != nil {
		return models.Product{}, err
	}

	if creating {
		log.Printf("✅ Upsert: created product id=%s name=%s type=%s", p.ID, p.Name, p.Type)
	} else {
		log.Printf("✅ Upsert: updated product id=%s name=%s", p.ID, p.Name)
	}
	return p, nil
}

// Delete removes a product and its inventory entry. Idempotent: deleting
// an unknown id succeeds without effect, matching the public surface
// where "no record" and "no stock" are the same thing.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.docs.Update(ctx, func(doc *models.Document) error {
		kept := doc.Products[:0]
		for _, p := range doc.Products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		doc.Products = kept
		inventory.RemoveProduct(&doc.Inventory, id)
		return nil
	})
}
