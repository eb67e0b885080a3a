// Package storefront implements the shopper-facing state modules: cart,
// wishlist, orders, authentication and pricing. Each module is an owned
// state object constructed once per session around the persisted store;
// every operation is a plain read-modify-write of its collection.
package storefront

import (
	"github.com/vastrakart/vastrakart-api/models"
	"github.com/vastrakart/vastrakart-api/store"
)

// DefaultSize is used when a product is added to the cart without an
// explicit size selection.
const DefaultSize = "Free Size"

type Cart struct {
	store *store.Store
}

func NewCart(st *store.Store) *Cart {
	return &Cart{store: st}
}

// Items returns the current persisted cart, never nil.
func (c *Cart) Items() []models.CartItem {
	items := make([]models.CartItem, 0)
	c.store.Read(store.KeyCart, &items)
	return items
}

// Add puts a product into the cart. A line already holding the same
// (product id, size) pair has its quantity incremented; otherwise a new line
// is appended with a snapshot of the product. Returns the updated cart.
func (c *Cart) Add(product models.Product, size string, quantity int) []models.CartItem {
	if size == "" {
		size = DefaultSize
	}
	if quantity < 1 {
		quantity = 1
	}

	items := c.Items()
	for i := range items {
		if items[i].ID == product.ID && items[i].Size == size {
			items[i].Quantity += quantity
			c.store.Write(store.KeyCart, items)
			return items
		}
	}

	items = append(items, models.CartItem{Product: product, Size: size, Quantity: quantity})
	c.store.Write(store.KeyCart, items)
	return items
}

// Remove drops the line matching (productID, size). An empty size addresses
// the default-size line, mirroring Add. Removing an absent line is a no-op,
// not an error.
func (c *Cart) Remove(productID int, size string) []models.CartItem {
	if size == "" {
		size = DefaultSize
	}
	items := c.Items()
	kept := items[:0]
	for _, item := range items {
		if item.ID == productID && item.Size == size {
			continue
		}
		kept = append(kept, item)
	}
	c.store.Write(store.KeyCart, kept)
	return kept
}

// SetQuantity sets the quantity of the line matching (productID, size).
// An empty size addresses the default-size line, mirroring Add. A quantity
// of zero or less removes the line; a missing line leaves the cart
// unchanged.
func (c *Cart) SetQuantity(productID int, size string, quantity int) []models.CartItem {
	if size == "" {
		size = DefaultSize
	}
	if quantity <= 0 {
		return c.Remove(productID, size)
	}

	items := c.Items()
	for i := range items {
		if items[i].ID == productID && items[i].Size == size {
			items[i].Quantity = quantity
			c.store.Write(store.KeyCart, items)
			break
		}
	}
	return items
}

// Total returns the sum of price times quantity over all lines.
func (c *Cart) Total() int {
	total := 0
	for _, item := range c.Items() {
		total += item.LineTotal()
	}
	return total
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.Items() {
		count += item.Quantity
	}
	return count
}

// Clear removes the whole cart collection.
func (c *Cart) Clear() {
	c.store.Delete(store.KeyCart)
}
