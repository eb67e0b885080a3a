package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vastrakart/vastrakart-api/controllers"
)

func CartRoutes(server *gin.Engine, ctrl *controllers.CartController) {
	server.GET("/cart", ctrl.GetCart)
	server.GET("/cart/summary", ctrl.GetCartSummary)
	server.POST("/cart", ctrl.CreateCartItem)
	server.PATCH("/cart", ctrl.UpdateCartItem)
	server.DELETE("/cart/:productId", ctrl.DeleteCartItem)
}
