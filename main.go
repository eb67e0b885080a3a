package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vastrakart/vastrakart-api/controllers"
	"github.com/vastrakart/vastrakart-api/initializers"
	"github.com/vastrakart/vastrakart-api/routes"
	"github.com/vastrakart/vastrakart-api/storefront"
)

func init() {
	initializers.LoadEnv()
	initializers.InitLogger()
}

func main() {
	st := initializers.ConnectToStore()
	defer st.Close()

	cart := storefront.NewCart(st)
	wishlist := storefront.NewWishlist(st)
	auth := storefront.NewAuth(st)
	orders, err := storefront.NewOrders(st, cart)
	if err != nil {
		zap.S().Fatalf("order module init: %v", err)
	}
	pricing := storefront.PricingConfigFromEnv()

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://www.vastrakart.store"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, controllers.NewAuthController(auth))
	routes.ProductRoutes(server, controllers.NewProductController())
	routes.CartRoutes(server, controllers.NewCartController(cart, pricing))
	routes.WishlistRoutes(server, controllers.NewWishlistController(wishlist))
	routes.OrderRoutes(server, controllers.NewOrderController(orders, cart, auth))

	server.Run()
}
