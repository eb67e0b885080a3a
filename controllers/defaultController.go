package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the VastraKart API ❤️. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account
- POST "/auth/logout" - End the current session
- GET "/auth/me" - Get the signed-in user

PRODUCT
- GET "/product" - Get all products (supports ?category= and ?search=)
- GET "/product/:id" - Get product by ID

CART
- GET "/cart" - Get the cart with count and total
- POST "/cart" - Add a product to the cart
- PATCH "/cart" - Update a cart line quantity
- DELETE "/cart/:productId?size=" - Remove a cart line
- GET "/cart/summary?coupon=" - Get the pricing breakdown

WISHLIST
- GET "/wishlist" - Get the wishlist
- POST "/wishlist" - Add a product to the wishlist
- GET "/wishlist/:productId" - Check wishlist membership
- DELETE "/wishlist/:productId" - Remove a product from the wishlist

ORDER
- POST "/order" - Place an order from the current cart
- GET "/order" - Retrieve order history (supports ?status=)
- GET "/order/:orderId" - Get order by ID`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
