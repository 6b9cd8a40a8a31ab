package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"merch-store-backend/models"
)

// FileStore persists the document as pretty-printed JSON in a single
// file. Saves go through a temp file renamed over the target, with the
// previous file copied to <path>.bak first.
type FileStore struct {
	path string
}

// Ensure FileStore implements Store
var _ Store = (*FileStore)(nil)

// NewFileStore creates a FileStore for the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the document from disk. A missing file yields the default
// empty document, which is written out immediately so the file exists
// from first use onward.
func (s *FileStore) Load(ctx context.Context) (*models.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("📄 FileStore: %s does not exist, initializing empty document", s.path)
			doc := models.NewDocument()
			if err := s.Save(ctx, doc); err != nil {
				return nil, err
			}
			return doc, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	normalize(&doc)
	return &doc, nil
}

// Save writes the document atomically: marshal, write to a temp file in
// the same directory, back up the current file, then rename the temp
// file over the target.
func (s *FileStore) Save(ctx context.Context, doc *models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".db-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// Snapshot the previous document before replacing it
	if prev, err := os.ReadFile(s.path); err == nil {
		if err := os.WriteFile(s.path+".bak", prev, 0644); err != nil {
			log.Printf("⚠️ FileStore: failed to write backup %s.bak: %v", s.path, err)
		}
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

// normalize makes sure the top-level containers are non-nil so the logic
// layers never have to guard against a hand-edited or partial file.
func normalize(doc *models.Document) {
	if doc.Products == nil {
		doc.Products = []models.Product{}
	}
	if doc.Inventory.Products == nil {
		doc.Inventory.Products = map[string]*models.InventoryEntry{}
	}
	if doc.Orders == nil {
		doc.Orders = []models.Order{}
	}
}
