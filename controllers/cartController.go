package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vastrakart/vastrakart-api/catalog"
	"github.com/vastrakart/vastrakart-api/storefront"
)

const (
	msgProductNotFound = "product not found"
	msgInvalidCoupon   = "invalid coupon code"
)

type CartController struct {
	Cart    *storefront.Cart
	Pricing storefront.PricingConfig
}

func NewCartController(cart *storefront.Cart, pricing storefront.PricingConfig) *CartController {
	return &CartController{Cart: cart, Pricing: pricing}
}

type cartItemInput struct {
	ProductID int    `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// GetCart returns the current cart together with its derived count and total.
func (c *CartController) GetCart(ctx *gin.Context) {
	items := c.Cart.Items()
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"cart":  items,
		"count": c.Cart.Count(),
		"total": c.Cart.Total(),
	})
}

// CreateCartItem adds a catalog product to the cart, merging quantity into
// an existing line with the same product and size.
func (c *CartController) CreateCartItem(ctx *gin.Context) {
	var input cartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	product, ok := catalog.ProductByID(input.ProductID)
	if !ok {
		sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		return
	}

	items := c.Cart.Add(product, input.Size, input.Quantity)
	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": product.Name + " added to cart",
		"cart":    items,
	})
}

// UpdateCartItem sets the quantity of a cart line. Zero or negative
// quantities remove the line; an absent line leaves the cart unchanged.
func (c *CartController) UpdateCartItem(ctx *gin.Context) {
	var input cartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	items := c.Cart.SetQuantity(input.ProductID, input.Size, input.Quantity)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": items})
}

// DeleteCartItem removes the line identified by the productId path parameter
// and the size query parameter.
func (c *CartController) DeleteCartItem(ctx *gin.Context) {
	productID, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	items := c.Cart.Remove(productID, ctx.Query("size"))
	sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": items})
}

// GetCartSummary returns the pricing breakdown for the current cart, with an
// optional coupon code applied via the coupon query parameter.
func (c *CartController) GetCartSummary(ctx *gin.Context) {
	couponPercent := 0
	code := ctx.Query("coupon")
	if code != "" {
		percent, err := storefront.CouponPercent(code)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCoupon)
			return
		}
		couponPercent = percent
	}

	quote := storefront.PriceCart(c.Cart.Items(), couponPercent, c.Pricing)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"summary": quote})
}
