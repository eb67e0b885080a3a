package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vastrakart/vastrakart-api/models"
	"github.com/vastrakart/vastrakart-api/storefront"
)

const (
	msgEmptyCart       = "cart is empty"
	msgOrderNotFound   = "order not found"
	msgInvalidStatus   = "invalid order status"
	msgOrderCreated    = "order placed successfully"
	msgLoginToCheckout = "log in to place an order"
)

type OrderController struct {
	Orders *storefront.Orders
	Cart   *storefront.Cart
	Auth   *storefront.Auth
}

func NewOrderController(orders *storefront.Orders, cart *storefront.Cart, auth *storefront.Auth) *OrderController {
	return &OrderController{Orders: orders, Cart: cart, Auth: auth}
}

// CreateOrder checks out the current cart: the order module snapshots the
// lines, persists the order newest-first and clears the cart.
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	if !c.Auth.IsAuthenticated() {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgLoginToCheckout)
		return
	}

	items := c.Cart.Items()
	if len(items) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgEmptyCart)
		return
	}

	order := c.Orders.Create(items)
	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": msgOrderCreated,
		"order":   order,
	})
}

// GetOrders returns the order history, newest first, optionally filtered by
// the status query parameter.
func (c *OrderController) GetOrders(ctx *gin.Context) {
	if status := ctx.Query("status"); status != "" {
		s := models.OrderStatus(status)
		if !models.ValidOrderStatus(s) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidStatus)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": c.Orders.FilterByStatus(s)})
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": c.Orders.List()})
}

// GetOrderById returns a single order by its id.
func (c *OrderController) GetOrderById(ctx *gin.Context) {
	order, ok := c.Orders.Get(ctx.Param("orderId"))
	if !ok {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}
