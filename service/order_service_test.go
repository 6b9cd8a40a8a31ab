package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merch-store-backend/apperrors"
	"merch-store-backend/inventory"
	"merch-store-backend/models"
	"merch-store-backend/repository"
	"merch-store-backend/store"
)

var fixedNow = time.Date(2026, 1, 4, 10, 30, 0, 0, time.UTC)

// seedDocument builds a catalog with one t-shirt (p1, grey-black M = 5)
// and one jort (j1, L = 2).
func seedDocument() *models.Document {
	doc := models.NewDocument()
	doc.Products = []models.Product{
		{ID: "p1", Name: "Classic Tee", Price: 25, Type: models.ProductTypeTshirt, Styles: []models.Style{{Value: "grey-black"}}},
		{ID: "j1", Name: "Jort", Price: 40, Type: models.ProductTypeJort},
	}
	inventory.Initialize(&doc.Inventory, doc.Products[0])
	inventory.Initialize(&doc.Inventory, doc.Products[1])
	doc.Inventory.Products["p1"].Styles["grey-black"]["M"] = 5
	doc.Inventory.Products["j1"].Sizes["L"] = 2
	return doc
}

func newTestService(t *testing.T, doc *models.Document) (*OrderService, *repository.DocumentRepository) {
	t.Helper()
	docs, err := repository.NewDocumentRepository(context.Background(), store.NewMemoryStore(doc))
	require.NoError(t, err)
	svc := NewOrderService(docs, nil)
	svc.now = func() time.Time { return fixedNow }
	return svc, docs
}

func stockLevel(t *testing.T, docs *repository.DocumentRepository, productID, style, size string) int {
	t.Helper()
	var level int
	require.NoError(t, docs.View(func(doc *models.Document) error {
		level = inventory.Level(&doc.Inventory, productID, style, size)
		return nil
	}))
	return level
}

func orderCount(t *testing.T, docs *repository.DocumentRepository) int {
	t.Helper()
	var n int
	require.NoError(t, docs.View(func(doc *models.Document) error {
		n = len(doc.Orders)
		return nil
	}))
	return n
}

func TestSubmitAggregatesRepeatedLines(t *testing.T) {
	svc, docs := newTestService(t, seedDocument())

	order := models.Order{
		Cart: []models.CartLine{
			{ID: "p1", Type: "tshirt", Style: "grey-black", Size: "M"},
			{ID: "p1", Type: "tshirt", Style: "grey-black", Size: "M"},
		},
		Name: "Ana", Number: "123", Email: "ana@example.com", Address: "Calle 1",
	}

	committed, err := svc.Submit(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Format(time.RFC3339), committed.Date)
	assert.Equal(t, 3, stockLevel(t, docs, "p1", "grey-black", "M"))
	assert.Equal(t, 1, orderCount(t, docs))
}

func TestSubmitHonorsExplicitQuantity(t *testing.T) {
	svc, docs := newTestService(t, seedDocument())

	order := models.Order{Cart: []models.CartLine{
		{ID: "p1", Style: "grey-black", Size: "M", Quantity: 3},
		{ID: "p1", Style: "grey-black", Size: "M"}, // implicit quantity 1
	}}

	_, err := svc.Submit(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, 1, stockLevel(t, docs, "p1", "grey-black", "M"))
}

func TestSubmitIsAtomic(t *testing.T) {
	svc, docs := newTestService(t, seedDocument())

	// p1 M is in stock (5), j1 S is not (0): the whole order must fail
	// and p1's stock must be untouched.
	order := models.Order{Cart: []models.CartLine{
		{ID: "p1", Style: "grey-black", Size: "M"},
		{ID: "j1", Size: "S"},
	}}

	_, err := svc.Submit(context.Background(), order)
	require.ErrorIs(t, err, apperrors.ErrOutOfStock)
	assert.Equal(t, 5, stockLevel(t, docs, "p1", "grey-black", "M"))
	assert.Equal(t, 0, orderCount(t, docs))
}

func TestSubmitRejectsAggregateOverstock(t *testing.T) {
	svc, docs := newTestService(t, seedDocument())

	// Each line alone fits, the aggregate (6 > 5) does not.
	order := models.Order{Cart: []models.CartLine{
		{ID: "p1", Style: "grey-black", Size: "M", Quantity: 4},
		{ID: "p1", Style: "grey-black", Size: "M", Quantity: 2},
	}}

	_, err := svc.Submit(context.Background(), order)
	require.ErrorIs(t, err, apperrors.ErrOutOfStock)
	assert.Equal(t, 5, stockLevel(t, docs, "p1", "grey-black", "M"))
}

func TestSubmitZeroStock(t *testing.T) {
	svc, docs := newTestService(t, seedDocument())

	order := models.Order{Cart: []models.CartLine{{ID: "j1", Size: "S"}}}
	_, err := svc.Submit(context.Background(), order)
	require.ErrorIs(t, err, apperrors.ErrOutOfStock)
	assert.Equal(t, 0, stockLevel(t, docs, "j1", "", "S"))
}

func TestSubmitUnknownProduct(t *testing.T) {
	svc, docs := newTestService(t, seedDocument())

	order := models.Order{Cart: []models.CartLine{{ID: "ghost", Size: "M"}}}
	_, err := svc.Submit(context.Background(), order)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, 0, orderCount(t, docs))
}

func TestSubmitResolvesByBaseName(t *testing.T) {
	svc, docs := newTestService(t, seedDocument())

	order := models.Order{Cart: []models.CartLine{
		{Name: "Classic Tee (grey-black, M)", Type: "tshirt", Style: "grey-black", Size: "M"},
	}}

	_, err := svc.Submit(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, 4, stockLevel(t, docs, "p1", "grey-black", "M"))
}

func TestSubmitResolvesByExactName(t *testing.T) {
	svc, docs := newTestService(t, seedDocument())

	order := models.Order{Cart: []models.CartLine{{Name: "Jort", Size: "L"}}}
	_, err := svc.Submit(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, 1, stockLevel(t, docs, "j1", "", "L"))
}

func TestSubmitIgnoresStyleOnFlatProducts(t *testing.T) {
	svc, docs := newTestService(t, seedDocument())

	// A style on a jort is dropped, so both lines hit the same size path.
	order := models.Order{Cart: []models.CartLine{
		{ID: "j1", Style: "grey-black", Size: "L"},
		{ID: "j1", Size: "L"},
	}}

	_, err := svc.Submit(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, 0, stockLevel(t, docs, "j1", "", "L"))
}

func TestSubmitValidation(t *testing.T) {
	svc, docs := newTestService(t, seedDocument())
	ctx := context.Background()

	tests := []struct {
		name  string
		order models.Order
	}{
		{"empty cart", models.Order{}},
		{"negative quantity", models.Order{Cart: []models.CartLine{{ID: "p1", Size: "M", Quantity: -1}}}},
		{"missing size", models.Order{Cart: []models.CartLine{{ID: "p1", Style: "grey-black"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, tt.order)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
	assert.Equal(t, 0, orderCount(t, docs))
}

// brokenStore fails every save.
type brokenStore struct{}

func (brokenStore) Load(ctx context.Context) (*models.Document, error) {
	return seedDocument(), nil
}

func (brokenStore) Save(ctx context.Context, doc *models.Document) error {
	return errors.New("disk full")
}

func TestSubmitSurfacesPersistenceFailure(t *testing.T) {
	docs, err := repository.NewDocumentRepository(context.Background(), brokenStore{})
	require.NoError(t, err)
	svc := NewOrderService(docs, nil)
	svc.now = func() time.Time { return fixedNow }

	order := models.Order{Cart: []models.CartLine{{ID: "p1", Style: "grey-black", Size: "M"}}}
	_, err = svc.Submit(context.Background(), order)
	require.ErrorIs(t, err, apperrors.ErrPersistence)

	// The in-memory document must not retain the failed decrement.
	assert.Equal(t, 5, stockLevel(t, docs, "p1", "grey-black", "M"))
	assert.Equal(t, 0, orderCount(t, docs))
}
