package storefront

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/vastrakart/vastrakart-api/models"
	"github.com/vastrakart/vastrakart-api/store"
	"github.com/vastrakart/vastrakart-api/utils"
)

const (
	orderIDPrefix        = "ORD-"
	trackingPrefix       = "TRK"
	trackingCodeLen      = 9
	estimatedDeliveryDur = 7 * 24 * time.Hour
)

type Orders struct {
	store *store.Store
	cart  *Cart
	node  *snowflake.Node
}

func NewOrders(st *store.Store, cart *Cart) (*Orders, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, fmt.Errorf("order id generator: %w", err)
	}
	return &Orders{store: st, cart: cart, node: node}, nil
}

// Create builds an order from the given cart lines, prepends it to the
// persisted orders collection and clears the cart. The caller is expected to
// have verified that the cart is non-empty and the shopper is signed in.
//
// Writing the orders collection and clearing the cart are two separate store
// operations; there is no atomicity across the two keys.
func (o *Orders) Create(items []models.CartItem) models.Order {
	now := time.Now().UTC()
	estimated := now.Add(estimatedDeliveryDur)

	total := 0
	for _, item := range items {
		total += item.LineTotal()
	}

	order := models.Order{
		ID:                orderIDPrefix + o.node.Generate().String(),
		Date:              now,
		Status:            models.OrderStatusProcessing,
		Total:             total,
		Items:             snapshotItems(items),
		Tracking:          trackingPrefix + utils.GenerateCode(trackingCodeLen),
		EstimatedDelivery: &estimated,
	}

	orders := o.List()
	orders = append([]models.Order{order}, orders...)
	o.store.Write(store.KeyOrders, orders)
	o.cart.Clear()

	return order
}

// List returns the persisted orders, newest first, never nil.
func (o *Orders) List() []models.Order {
	orders := make([]models.Order, 0)
	o.store.Read(store.KeyOrders, &orders)
	return orders
}

// FilterByStatus returns the orders currently in the given status,
// preserving newest-first order.
func (o *Orders) FilterByStatus(status models.OrderStatus) []models.Order {
	out := make([]models.Order, 0)
	for _, order := range o.List() {
		if order.Status == status {
			out = append(out, order)
		}
	}
	return out
}

// Get returns the order with the given id.
func (o *Orders) Get(id string) (models.Order, bool) {
	for _, order := range o.List() {
		if order.ID == id {
			return order, true
		}
	}
	return models.Order{}, false
}

// snapshotItems value-copies the cart lines, including the nested features
// slice, so the persisted order is isolated from later cart mutation.
func snapshotItems(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	copy(out, items)
	for i := range out {
		if len(out[i].Features) > 0 {
			features := make([]string, len(out[i].Features))
			copy(features, out[i].Features)
			out[i].Features = features
		}
	}
	return out
}
