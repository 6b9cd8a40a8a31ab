package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"merch-store-backend/apperrors"
	"merch-store-backend/events"
	"merch-store-backend/inventory"
	"merch-store-backend/models"
	"merch-store-backend/repository"
)

// OrderServiceInterface defines the contract for order submission
type OrderServiceInterface interface {
	Submit(ctx context.Context, order models.Order) (models.Order, error)
}

// OrderService turns a submitted cart into either a committed order plus
// inventory decrement, or a rejection with no side effects. The whole
// aggregate-validate-commit sequence runs inside one exclusive document
// update, so a concurrent submission can never under-validate against
// stock another cart is about to take.
type OrderService struct {
	docs      *repository.DocumentRepository
	publisher *events.Publisher
	now       func() time.Time
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(docs *repository.DocumentRepository, publisher *events.Publisher) *OrderService {
	return &OrderService{docs: docs, publisher: publisher, now: time.Now}
}

// Ensure OrderService implements OrderServiceInterface
var _ OrderServiceInterface = (*OrderService)(nil)

// demandKey identifies one aggregated stock requirement. Style is empty
// for products without a style dimension.
type demandKey struct {
	productID string
	style     string
	size      string
}

// Submit processes an order submission:
//  1. validate the payload
//  2. aggregate cart lines into per-(product, style, size) demand
//  3. validate every demand against the current stock snapshot
//  4. only when all demands pass, decrement them all, stamp the order
//     date and append it to the order log
//
// Any failure rejects the whole order with zero mutation. The committed
// order (with its assigned date) is returned on success.
func (s *OrderService) Submit(ctx context.Context, order models.Order) (models.Order, error) {
	log.Printf("🛒 Submit: received order with %d cart lines from %q", len(order.Cart), order.Name)

	if len(order.Cart) == 0 {
		return models.Order{}, fmt.Errorf("%w: order cart is empty", apperrors.ErrValidation)
	}
	for i, line := range order.Cart {
		if line.Quantity < 0 {
			return models.Order{}, fmt.Errorf("%w: cart line %d has negative quantity", apperrors.ErrValidation, i)
		}
		if line.Size == "" {
			return models.Order{}, fmt.Errorf("%w: cart line %d has no size", apperrors.ErrValidation, i)
		}
	}

	stamped := order
	err := s.docs.Update(ctx, func(doc *models.Document) error {
		demand, err := aggregateCart(doc, order.Cart)
		if err != nil {
			return err
		}

		for key, qty := range demand {
			if !inventory.HasSufficient(&doc.Inventory, key.productID, key.style, key.size, qty) {
				log.Printf("❌ Submit: insufficient stock for product=%s style=%q size=%s requested=%d available=%d",
					key.productID, key.style, key.size, qty,
					inventory.Level(&doc.Inventory, key.productID, key.style, key.size))
				return fmt.Errorf("%w: product %s size %s", apperrors.ErrOutOfStock, key.productID, key.size)
			}
		}

		for key, qty := range demand {
			inventory.Decrement(&doc.Inventory, key.productID, key.style, key.size, qty)
		}

		stamped.Date = s.now().UTC().Format(time.RFC3339)
		doc.Orders = append(doc.Orders, stamped)
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	log.Printf("✅ Submit: order committed for %q at %s", stamped.Name, stamped.Date)

	// The order is durable at this point; a publish failure must not fail
	// the request.
	if err := s.publisher.OrderPlaced(ctx, stamped); err != nil {
		log.Printf("⚠️ Submit: failed to publish order-placed event: %v", err)
	}

	return stamped, nil
}

// aggregateCart groups cart lines by (resolved product, style, size),
// summing quantities. A line without an id is resolved by name: first the
// name with any trailing parenthetical variant suffix stripped, then the
// exact name. Best effort only — when two products share a base name the
// first in catalog order wins.
func aggregateCart(doc *models.Document, cart []models.CartLine) (map[demandKey]int, error) {
	demand := make(map[demandKey]int, len(cart))
	for _, line := range cart {
		p, err := resolveProduct(doc, line)
		if err != nil {
			return nil, err
		}

		qty := line.Quantity
		if qty == 0 {
			qty = 1
		}

		style := line.Style
		if p.Type != models.ProductTypeTshirt {
			// Style has no meaning for flat-stock products; drop it so
			// styled and unstyled lines for the same size aggregate together.
			style = ""
		}

		demand[demandKey{productID: p.ID, style: style, size: line.Size}] += qty
	}
	return demand, nil
}

// resolveProduct finds the product a cart line refers to.
func resolveProduct(doc *models.Document, line models.CartLine) (*models.Product, error) {
	id := line.ID
	if id == "" {
		id = line.ProductID
	}
	if id != "" {
		if p := doc.FindProduct(id); p != nil {
			return p, nil
		}
		return nil, fmt.Errorf("%w: product %q", apperrors.ErrNotFound, id)
	}

	// Display names carry the variant as a trailing parenthetical, e.g.
	// "Classic Tee (grey-black, M)".
	if base, _, found := strings.Cut(line.Name, " ("); found {
		if p := doc.FindProductByName(base); p != nil {
			return p, nil
		}
	}
	if p := doc.FindProductByName(line.Name); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("%w: product named %q", apperrors.ErrNotFound, line.Name)
}
