package models

// CartItem is a cart line: a product snapshot plus the chosen size and
// quantity. Line identity is (product id, size) - the same product in two
// different sizes is two distinct lines.
type CartItem struct {
	Product
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// LineTotal returns price times quantity for this line.
func (ci CartItem) LineTotal() int {
	return ci.Price * ci.Quantity
}
