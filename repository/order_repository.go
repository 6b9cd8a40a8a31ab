package repository

import (
	"context"
	"fmt"
	"log"

	"merch-store-backend/apperrors"
	"merch-store-backend/models"
)

// OrderRepository handles the order log
type OrderRepository struct {
	docs *DocumentRepository
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(docs *DocumentRepository) *OrderRepository {
	return &OrderRepository{docs: docs}
}

// Ensure OrderRepository implements OrderRepositoryInterface
var _ OrderRepositoryInterface = (*OrderRepository)(nil)

// List returns all recorded orders in submission order.
func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	err := r.docs.View(func(doc *models.Document) error {
		out = make([]models.Order, len(doc.Orders))
		copy(out, doc.Orders)
		return nil
	})
	return out, err
}

// DeleteByIndex removes the order at the given position. This deletes the
// historical record only: the items are not restocked.
func (r *OrderRepository) DeleteByIndex(ctx context.Context, index int) error {
	err := r.docs.Update(ctx, func(doc *models.Document) error {
		if index < 0 || index >= len(doc.Orders) {
			return fmt.Errorf("%w: order index %d", apperrors.ErrNotFound, index)
		}
		doc.Orders = append(doc.Orders[:index], doc.Orders[index+1:]...)
		return nil
	})
	if err != nil {
		return err
	}
	log.Printf("🗑️ DeleteByIndex: removed order at index=%d", index)
	return nil
}
