package routes

import (
	"github.com/gin-gonic/gin"

	"rentease-backend/handlers"
)

type CartRouteHandler struct {
	cartHandler    handlers.CartHandler
	authMiddleware gin.HandlerFunc
}

func NewCartRouteHandler(cartHandler handlers.CartHandler, authMiddleware gin.HandlerFunc) CartRouteHandler {
	return CartRouteHandler{cartHandler, authMiddleware}
}

func (rc *CartRouteHandler) CartRoute(rg *gin.RouterGroup) {
	router := rg.Group("/cart")
	router.Use(rc.authMiddleware)

	router.POST("/add", rc.cartHandler.AddToCart)
	router.GET("", rc.cartHandler.GetCart)
	router.DELETE("/remove/:itemId", rc.cartHandler.RemoveFromCart)
}
