package store

import (
	"context"

	"merch-store-backend/models"
)

// MemoryStore keeps the document in memory only. Useful for tests and
// local development (STORE_BACKEND=memory); everything is lost on restart.
type MemoryStore struct {
	doc *models.Document
}

// Ensure MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a MemoryStore seeded with the given document,
// or an empty document when nil.
func NewMemoryStore(doc *models.Document) *MemoryStore {
	if doc == nil {
		doc = models.NewDocument()
	}
	return &MemoryStore{doc: doc}
}

// Load returns a deep copy of the held document.
func (s *MemoryStore) Load(ctx context.Context) (*models.Document, error) {
	return s.doc.Clone(), nil
}

// Save replaces the held document with a deep copy of the given one.
func (s *MemoryStore) Save(ctx context.Context, doc *models.Document) error {
	s.doc = doc.Clone()
	return nil
}
