package storefront

import (
	"github.com/vastrakart/vastrakart-api/models"
	"github.com/vastrakart/vastrakart-api/store"
)

type Wishlist struct {
	store *store.Store
}

func NewWishlist(st *store.Store) *Wishlist {
	return &Wishlist{store: st}
}

// Items returns the current persisted wishlist, never nil.
func (w *Wishlist) Items() []models.Product {
	items := make([]models.Product, 0)
	w.store.Read(store.KeyWishlist, &items)
	return items
}

// Add appends the product unless its id is already present. Returns the
// updated wishlist either way.
func (w *Wishlist) Add(product models.Product) []models.Product {
	items := w.Items()
	for _, item := range items {
		if item.ID == product.ID {
			return items
		}
	}
	items = append(items, product)
	w.store.Write(store.KeyWishlist, items)
	return items
}

// Remove drops the product with the given id. Removing an absent product is
// a no-op.
func (w *Wishlist) Remove(productID int) []models.Product {
	items := w.Items()
	kept := items[:0]
	for _, item := range items {
		if item.ID == productID {
			continue
		}
		kept = append(kept, item)
	}
	w.store.Write(store.KeyWishlist, kept)
	return kept
}

// Contains re-reads the persisted wishlist and reports membership of the
// given product id.
func (w *Wishlist) Contains(productID int) bool {
	for _, item := range w.Items() {
		if item.ID == productID {
			return true
		}
	}
	return false
}
