package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vastrakart/vastrakart-api/controllers"
)

func ProductRoutes(server *gin.Engine, ctrl *controllers.ProductController) {
	server.GET("/product", ctrl.GetProducts)
	server.GET("/product/:id", ctrl.GetProduct)
}
