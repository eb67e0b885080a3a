package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vastrakart/vastrakart-api/controllers"
)

func AuthRoutes(server *gin.Engine, ctrl *controllers.AuthController) {
	auth := server.Group("/auth")
	{
		auth.POST("/signup", ctrl.Signup)
		auth.POST("/login", ctrl.Login)
		auth.POST("/logout", ctrl.Logout)
		auth.GET("/me", ctrl.GetCurrentUser)
	}
}
