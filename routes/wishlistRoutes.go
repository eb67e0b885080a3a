package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vastrakart/vastrakart-api/controllers"
)

func WishlistRoutes(server *gin.Engine, ctrl *controllers.WishlistController) {
	server.GET("/wishlist", ctrl.GetWishlist)
	server.POST("/wishlist", ctrl.CreateWishlistItem)
	server.GET("/wishlist/:productId", ctrl.GetWishlistItem)
	server.DELETE("/wishlist/:productId", ctrl.DeleteWishlistItem)
}
