// Package inventory implements the stock model: per-product entries with
// either a style×size matrix (t-shirts) or a flat size map (jorts and
// everything else). All functions are pure logic over models.Inventory;
// locking and persistence are the repository layer's concern.
//
// Missing keys always mean zero stock, never an error. An unknown product
// id reads as "no record = no stock".
package inventory

import (
	"fmt"

	"merch-store-backend/apperrors"
	"merch-store-backend/models"
)

// DefaultSizes is the recognized size set used when initializing entries.
var DefaultSizes = []string{"S", "M", "L", "XL"}

// DefaultTshirtStyles is used when a t-shirt product carries no explicit styles.
var DefaultTshirtStyles = []models.Style{
	{Value: "grey-black"},
	{Value: "white-black"},
	{Value: "white-red"},
}

// Initialize populates the inventory entry for a product, zeroing every
// recognized style/size combination. Existing counts are preserved, so it
// also backfills newly added t-shirt styles on product update.
func Initialize(inv *models.Inventory, p models.Product) {
	if inv.Products == nil {
		inv.Products = map[string]*models.InventoryEntry{}
	}

	if p.Type == models.ProductTypeTshirt {
		entry := inv.Products[p.ID]
		if entry == nil || entry.Styles == nil {
			entry = &models.InventoryEntry{Styles: map[string]models.SizeCounts{}}
			inv.Products[p.ID] = entry
		}
		styles := p.Styles
		if len(styles) == 0 {
			styles = DefaultTshirtStyles
		}
		for _, style := range styles {
			if _, ok := entry.Styles[style.Value]; !ok {
				entry.Styles[style.Value] = zeroSizes()
			}
		}
		return
	}

	if entry := inv.Products[p.ID]; entry != nil && entry.Sizes != nil {
		return
	}
	inv.Products[p.ID] = &models.InventoryEntry{Sizes: zeroSizes()}
}

// Level returns the current stock count for (productID, style, size).
// Style is ignored for flat-shape entries; a styled entry queried without
// a style reads as zero.
func Level(inv *models.Inventory, productID, style, size string) int {
	counts := stockPath(inv, productID, style)
	if counts == nil || size == "" {
		return 0
	}
	return counts[size]
}

// HasSufficient reports whether at least qty units are in stock.
func HasSufficient(inv *models.Inventory, productID, style, size string, qty int) bool {
	return Level(inv, productID, style, size) >= qty
}

// Decrement subtracts qty from the stock count, clamping at zero. Stock
// is never allowed to go negative; a decrement through a missing path is
// a no-op (the level already reads as zero).
func Decrement(inv *models.Inventory, productID, style, size string, qty int) {
	counts := stockPath(inv, productID, style)
	if counts == nil || size == "" {
		return
	}
	next := counts[size] - qty
	if next < 0 {
		next = 0
	}
	counts[size] = next
}

// ApplyStockUpdate merges an admin stock update into a product's entry.
// For t-shirts the update is a style -> size -> count map, otherwise a
// flat size -> count map. Negative counts are rejected.
func ApplyStockUpdate(inv *models.Inventory, p models.Product, styled map[string]models.SizeCounts, flat models.SizeCounts) error {
	Initialize(inv, p)
	entry := inv.Products[p.ID]

	if p.Type == models.ProductTypeTshirt {
		for style, counts := range styled {
			if err := validateCounts(counts); err != nil {
				return err
			}
			if entry.Styles[style] == nil {
				entry.Styles[style] = zeroSizes()
			}
			for size, n := range counts {
				entry.Styles[style][size] = n
			}
		}
		return nil
	}

	if err := validateCounts(flat); err != nil {
		return err
	}
	for size, n := range flat {
		entry.Sizes[size] = n
	}
	return nil
}

// Replace swaps in a whole new inventory snapshot verbatim. No validation
// against the product catalog is performed; this is the administrative
// recovery/import path.
func Replace(inv *models.Inventory, next models.Inventory) {
	if next.Products == nil {
		next.Products = map[string]*models.InventoryEntry{}
	}
	inv.Products = next.Products
}

// RemoveProduct deletes a product's entry. No-op when absent.
func RemoveProduct(inv *models.Inventory, productID string) {
	delete(inv.Products, productID)
}

// stockPath resolves the size->count map holding the stock for
// (productID, style). This is the single place that dispatches on the
// entry shape: styled entries route through the style key, flat entries
// ignore the style entirely. Returns nil when any key on the path is
// absent.
func stockPath(inv *models.Inventory, productID, style string) models.SizeCounts {
	entry := inv.Products[productID]
	if entry == nil {
		return nil
	}
	if entry.Styled() {
		return entry.Styles[style]
	}
	return entry.Sizes
}

func validateCounts(counts models.SizeCounts) error {
	for size, n := range counts {
		if n < 0 {
			return fmt.Errorf("%w: negative stock count %d for size %q", apperrors.ErrValidation, n, size)
		}
	}
	return nil
}

func zeroSizes() models.SizeCounts {
	counts := make(models.SizeCounts, len(DefaultSizes))
	for _, size := range DefaultSizes {
		counts[size] = 0
	}
	return counts
}
