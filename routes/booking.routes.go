package routes

import (
	"github.com/gin-gonic/gin"

	"rentease-backend/handlers"
)

type BookingRouteHandler struct {
	bookingHandler handlers.BookingHandler
	authMiddleware gin.HandlerFunc
}

func NewBookingRouteHandler(bookingHandler handlers.BookingHandler, authMiddleware gin.HandlerFunc) BookingRouteHandler {
	return BookingRouteHandler{bookingHandler, authMiddleware}
}

func (rc *BookingRouteHandler) BookingRoute(rg *gin.RouterGroup) {
	router := rg.Group("/bookings")
	router.Use(rc.authMiddleware)

	router.POST("", rc.bookingHandler.CreateBooking)
	router.POST("/checkout", rc.bookingHandler.Checkout)
	router.GET("/booking/:id", rc.bookingHandler.GetBooking)
	router.GET("/:userId", rc.bookingHandler.GetBookingsForUser)
	router.PUT("/:id", rc.bookingHandler.UpdateStatus)
}
