package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merch-store-backend/repository"
	"merch-store-backend/store"
)

func TestRenderCatalogHTML(t *testing.T) {
	docs, err := repository.NewDocumentRepository(context.Background(), store.NewMemoryStore(seedDocument()))
	require.NoError(t, err)
	svc := NewCatalogService(repository.NewProductRepository(docs), repository.NewInventoryRepository(docs))

	html, err := svc.RenderCatalogHTML(context.Background(), "")
	require.NoError(t, err)

	assert.Contains(t, html, "Classic Tee")
	assert.Contains(t, html, "grey-black")
	assert.Contains(t, html, "Jort")
	// p1 grey-black M = 5 must show up in the availability grid
	assert.Contains(t, html, ">5<")
}

func TestRenderCatalogHTMLSizeFilter(t *testing.T) {
	docs, err := repository.NewDocumentRepository(context.Background(), store.NewMemoryStore(seedDocument()))
	require.NoError(t, err)
	svc := NewCatalogService(repository.NewProductRepository(docs), repository.NewInventoryRepository(docs))

	html, err := svc.RenderCatalogHTML(context.Background(), "M")
	require.NoError(t, err)

	assert.Contains(t, html, "size M")
	assert.NotContains(t, html, "<th>XL</th>")
}
