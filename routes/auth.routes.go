package routes

import (
	"github.com/gin-gonic/gin"

	"rentease-backend/handlers"
)

type AuthRouteHandler struct {
	authHandler    handlers.AuthHandler
	authMiddleware gin.HandlerFunc
}

func NewAuthRouteHandler(authHandler handlers.AuthHandler, authMiddleware gin.HandlerFunc) AuthRouteHandler {
	return AuthRouteHandler{authHandler, authMiddleware}
}

func (rc *AuthRouteHandler) AuthRoute(rg *gin.RouterGroup) {
	router := rg.Group("/auth")

	router.POST("/register", rc.authHandler.Registration)
	router.POST("/login", rc.authHandler.Login)
	router.POST("/logout", rc.authMiddleware, rc.authHandler.Logout)
}
