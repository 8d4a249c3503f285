package routes

import (
	"github.com/gin-gonic/gin"

	"rentease-backend/handlers"
)

type PropertyRouteHandler struct {
	propertyHandler handlers.PropertyHandler
}

func NewPropertyRouteHandler(propertyHandler handlers.PropertyHandler) PropertyRouteHandler {
	return PropertyRouteHandler{propertyHandler}
}

// The catalog is browsable without a credential.
func (rc *PropertyRouteHandler) PropertyRoute(rg *gin.RouterGroup) {
	router := rg.Group("/properties")

	router.GET("", rc.propertyHandler.GetAllProperties)
	router.GET("/:id", rc.propertyHandler.GetPropertyById)
}
