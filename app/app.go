package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"merch-store-backend/app/controller"
	"merch-store-backend/app/router"
	"merch-store-backend/events"
	"merch-store-backend/repository"
	"merch-store-backend/service"
	"merch-store-backend/store"
)

// Initialize wires the application: store backend, document repository,
// services, controllers and middleware. The returned cleanup function
// closes whatever resources the chosen backend holds.
func Initialize(ctx context.Context) (http.Handler, func(), error) {
	s, closeStore, err := newStore(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	docs, err := repository.NewDocumentRepository(ctx, s)
	if err != nil {
		closeStore()
		return nil, nil, fmt.Errorf("failed to load document: %w", err)
	}

	productRepo := repository.NewProductRepository(docs)
	inventoryRepo := repository.NewInventoryRepository(docs)
	orderRepo := repository.NewOrderRepository(docs)

	publisher := events.NewPublisherFromEnv()
	if publisher != nil {
		log.Printf("✓ Kafka order events enabled")
	}

	orderService := service.NewOrderService(docs, publisher)
	catalogService := service.NewCatalogService(productRepo, inventoryRepo)

	controllers := &router.Controllers{
		Product:   controller.NewProductController(productRepo),
		Inventory: controller.NewInventoryController(inventoryRepo, productRepo),
		Order:     controller.NewOrderController(orderRepo, orderService),
		Catalog:   controller.NewCatalogController(catalogService),
	}

	handler := router.SetupRoutes(controllers, corsConfig(), rateLimiter())

	cleanup := func() {
		if err := publisher.Close(); err != nil {
			log.Printf("⚠️ Failed to close event publisher: %v", err)
		}
		closeStore()
	}
	return handler, cleanup, nil
}

// newStore selects the persistence backend from STORE_BACKEND:
// "file" (default), "postgres" or "memory".
func newStore(ctx context.Context) (store.Store, func(), error) {
	backend := strings.ToLower(os.Getenv("STORE_BACKEND"))
	switch backend {
	case "postgres":
		pg, err := store.NewPostgresStore(ctx)
		if err != nil {
			return nil, nil, err
		}
		return pg, func() {
			if err := pg.Close(); err != nil {
				log.Printf("⚠️ Failed to close database: %v", err)
			}
		}, nil
	case "memory":
		log.Printf("⚠️ Using in-memory store, all data is lost on restart")
		return store.NewMemoryStore(nil), func() {}, nil
	default:
		path := os.Getenv("DB_FILE")
		if path == "" {
			path = "db.json"
		}
		log.Printf("📄 Using file store at %s", path)
		return store.NewFileStore(path), func() {}, nil
	}
}

func corsConfig() *router.CORSConfig {
	raw := os.Getenv("CORS_ALLOWED_ORIGINS")
	if raw == "" {
		return &router.CORSConfig{}
	}
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return &router.CORSConfig{AllowedOrigins: origins}
}

func rateLimiter() *router.RateLimiter {
	limit := 60
	if raw := os.Getenv("RATE_LIMIT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			log.Printf("⚠️ Invalid RATE_LIMIT %q, using default %d", raw, limit)
		} else if n == 0 {
			return nil
		} else {
			limit = n
		}
	}

	window := 60 * time.Second
	if raw := os.Getenv("RATE_WINDOW_SECONDS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			window = time.Duration(n) * time.Second
		} else {
			log.Printf("⚠️ Invalid RATE_WINDOW_SECONDS %q, using default %s", raw, window)
		}
	}

	return router.NewRateLimiter(limit, window)
}
