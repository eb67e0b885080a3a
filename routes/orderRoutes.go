package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vastrakart/vastrakart-api/controllers"
	"github.com/vastrakart/vastrakart-api/middlewares"
)

func OrderRoutes(server *gin.Engine, ctrl *controllers.OrderController) {
	server.POST("/order", middlewares.RequireAuth(), ctrl.CreateOrder)
	server.GET("/order", ctrl.GetOrders)
	server.GET("/order/:orderId", ctrl.GetOrderById)
}
