// Package repository mediates all access to the document: it owns the
// in-memory copy, the single-writer lock, and the copy-on-write update
// discipline around the Store.
package repository

import (
	"context"
	"fmt"
	"sync"

	"merch-store-backend/apperrors"
	"merch-store-backend/models"
	"merch-store-backend/store"
)

// DocumentRepository holds the current document and serializes access to
// it. Reads run under a shared lock against a consistent snapshot;
// updates run under the exclusive lock for the whole read-validate-write
// sequence, mutate a deep copy, persist it, and only then publish it.
type DocumentRepository struct {
	mu    sync.RWMutex
	store store.Store
	doc   *models.Document
}

// NewDocumentRepository loads the document from the store.
func NewDocumentRepository(ctx context.Context, s store.Store) (*DocumentRepository, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	return &DocumentRepository{store: s, doc: doc}, nil
}

// View runs fn against the current document under the read lock. fn must
// not mutate the document or retain references past its return.
func (r *DocumentRepository) View(fn func(doc *models.Document) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return fn(r.doc)
}

// Update runs fn against a deep copy of the document under the write
// lock, persists the copy, and swaps it in. When fn or the store fails,
// the published document is untouched and the copy is discarded — no
// partial state survives.
func (r *DocumentRepository) Update(ctx context.Context, fn func(doc *models.Document) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	working := r.doc.Clone()
	if err := fn(working); err != nil {
		return err
	}
	if err := r.store.Save(ctx, working); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	r.doc = working
	return nil
}
