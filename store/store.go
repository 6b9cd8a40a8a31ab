// Package store provides the persistence boundary: implementations load
// and save the whole document. The logic layers never touch disk or a
// database directly.
package store

import (
	"context"

	"merch-store-backend/models"
)

// Store loads and saves the full document. Save must be atomic: a failed
// save leaves the previously persisted document intact.
type Store interface {
	Load(ctx context.Context) (*models.Document, error)
	Save(ctx context.Context, doc *models.Document) error
}
