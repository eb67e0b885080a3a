package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vastrakart/vastrakart-api/catalog"
	"github.com/vastrakart/vastrakart-api/storefront"
)

type WishlistController struct {
	Wishlist *storefront.Wishlist
}

func NewWishlistController(wishlist *storefront.Wishlist) *WishlistController {
	return &WishlistController{Wishlist: wishlist}
}

type wishlistItemInput struct {
	ProductID int `json:"productId" binding:"required"`
}

// GetWishlist returns the current wishlist.
func (c *WishlistController) GetWishlist(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{"wishlist": c.Wishlist.Items()})
}

// CreateWishlistItem adds a catalog product to the wishlist. Adding a
// product that is already present returns the unchanged wishlist.
func (c *WishlistController) CreateWishlistItem(ctx *gin.Context) {
	var input wishlistItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	product, ok := catalog.ProductByID(input.ProductID)
	if !ok {
		sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		return
	}

	items := c.Wishlist.Add(product)
	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":  product.Name + " added to wishlist",
		"wishlist": items,
	})
}

// GetWishlistItem reports whether the given product id is on the wishlist.
func (c *WishlistController) GetWishlistItem(ctx *gin.Context) {
	productID, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"inWishlist": c.Wishlist.Contains(productID)})
}

// DeleteWishlistItem removes the given product from the wishlist.
func (c *WishlistController) DeleteWishlistItem(ctx *gin.Context) {
	productID, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	items := c.Wishlist.Remove(productID)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"wishlist": items})
}
