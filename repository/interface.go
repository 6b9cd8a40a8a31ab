package repository

import (
	"context"

	"merch-store-backend/models"
)

// ProductRepositoryInterface defines the contract for product catalog operations
type ProductRepositoryInterface interface {
	List(ctx context.Context) ([]models.Product, error)
	Upsert(ctx context.Context, p models.Product) (models.Product, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (models.Product, error)
}

// InventoryRepositoryInterface defines the contract for inventory operations
type InventoryRepositoryInterface interface {
	Get(ctx context.Context) (models.Inventory, error)
	CheckAvailability(ctx context.Context, productID, style, size string) (int, error)
	UpdateProductStock(ctx context.Context, productID string, styled map[string]models.SizeCounts, flat models.SizeCounts) error
	Replace(ctx context.Context, next models.Inventory) error
}

// OrderRepositoryInterface defines the contract for order record operations
type OrderRepositoryInterface interface {
	List(ctx context.Context) ([]models.Order, error)
	DeleteByIndex(ctx context.Context, index int) error
}
