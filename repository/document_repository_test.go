package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merch-store-backend/apperrors"
	"merch-store-backend/models"
	"merch-store-backend/store"
)

// failingStore loads fine but refuses every save.
type failingStore struct {
	doc *models.Document
}

func (s *failingStore) Load(ctx context.Context) (*models.Document, error) {
	return s.doc.Clone(), nil
}

func (s *failingStore) Save(ctx context.Context, doc *models.Document) error {
	return errors.New("disk full")
}

func newTestRepo(t *testing.T, doc *models.Document) *DocumentRepository {
	t.Helper()
	repo, err := NewDocumentRepository(context.Background(), store.NewMemoryStore(doc))
	require.NoError(t, err)
	return repo
}

func TestUpdateCommitsOnSuccess(t *testing.T) {
	repo := newTestRepo(t, nil)

	err := repo.Update(context.Background(), func(doc *models.Document) error {
		doc.Products = append(doc.Products, models.Product{ID: "p1", Name: "Tee", Type: "other"})
		return nil
	})
	require.NoError(t, err)

	err = repo.View(func(doc *models.Document) error {
		assert.Len(t, doc.Products, 1)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdateDiscardsCopyOnFnError(t *testing.T) {
	repo := newTestRepo(t, nil)

	boom := errors.New("boom")
	err := repo.Update(context.Background(), func(doc *models.Document) error {
		doc.Products = append(doc.Products, models.Product{ID: "p1", Name: "Tee", Type: "other"})
		return boom
	})
	require.ErrorIs(t, err, boom)

	repo.View(func(doc *models.Document) error {
		assert.Empty(t, doc.Products, "a failed update must leave the published document untouched")
		return nil
	})
}

func TestUpdateRollsBackOnSaveFailure(t *testing.T) {
	repo, err := NewDocumentRepository(context.Background(), &failingStore{doc: models.NewDocument()})
	require.NoError(t, err)

	err = repo.Update(context.Background(), func(doc *models.Document) error {
		doc.Products = append(doc.Products, models.Product{ID: "p1", Name: "Tee", Type: "other"})
		return nil
	})
	require.ErrorIs(t, err, apperrors.ErrPersistence)

	repo.View(func(doc *models.Document) error {
		assert.Empty(t, doc.Products, "a failed save must not publish the working copy")
		return nil
	})
}
