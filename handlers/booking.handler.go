package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"rentease-backend/domain"
	"rentease-backend/services"
	"rentease-backend/utils"
)

type BookingHandler struct {
	bookingService services.BookingService
	Tracer         trace.Tracer
	logger         *logrus.Logger
}

func NewBookingHandler(bookingService services.BookingService, tr trace.Tracer, logger *logrus.Logger) BookingHandler {
	return BookingHandler{bookingService, tr, logger}
}

func (s *BookingHandler) CreateBooking(ctx *gin.Context) {
	spanCtx, span := s.Tracer.Start(ctx.Request.Context(), "BookingHandler.CreateBooking")
	defer span.End()

	currentUser := CurrentUser(ctx)
	if currentUser == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided."})
		return
	}

	var input *domain.CreateBookingInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": domain.ErrMissingFields().Error()})
		return
	}

	// The booking is always created for the resolved credential. A body
	// that names somebody else is rejected rather than trusted.
	if input.UserID != "" && input.UserID != currentUser.ID.Hex() {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "userId does not match the authenticated user"})
		return
	}

	booking, err := s.bookingService.CreateBooking(spanCtx, currentUser.ID.Hex(), input.Properties)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPropertyNotFound()):
			ctx.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		case errors.Is(err, domain.ErrMissingFields()):
			ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			span.SetStatus(codes.Error, err.Error())
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	s.logger.WithFields(logrus.Fields{"userId": currentUser.ID.Hex(), "bookingId": booking.ID.Hex()}).Info("booking created")
	ctx.JSON(http.StatusCreated, booking)
}

func (s *BookingHandler) GetBookingsForUser(ctx *gin.Context) {
	spanCtx, span := s.Tracer.Start(ctx.Request.Context(), "BookingHandler.GetBookingsForUser")
	defer span.End()

	currentUser := CurrentUser(ctx)
	if currentUser == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided."})
		return
	}

	userID := ctx.Param("userId")
	if currentUser.ID.Hex() != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to view these bookings"})
		return
	}

	bookings, err := s.bookingService.GetBookingsForUser(spanCtx, userID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, bookings)
}

func (s *BookingHandler) GetBooking(ctx *gin.Context) {
	spanCtx, span := s.Tracer.Start(ctx.Request.Context(), "BookingHandler.GetBooking")
	defer span.End()

	currentUser := CurrentUser(ctx)
	if currentUser == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided."})
		return
	}

	booking, err := s.bookingService.GetBooking(spanCtx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound()) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": domain.ErrBookingNotFound().Error()})
			return
		}
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	if currentUser.ID != booking.UserID && !currentUser.IsAdmin() {
		ctx.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to view this booking"})
		return
	}

	ctx.JSON(http.StatusOK, s.bookingService.ResolveBooking(spanCtx, booking))
}

type checkoutInput struct {
	Status domain.BookingStatus `json:"status"`
}

func (s *BookingHandler) Checkout(ctx *gin.Context) {
	spanCtx, span := s.Tracer.Start(ctx.Request.Context(), "BookingHandler.Checkout")
	defer span.End()

	currentUser := CurrentUser(ctx)
	if currentUser == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided."})
		return
	}

	var input checkoutInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if input.Status != domain.BookingStatusConfirmed {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": `Invalid status. Only "Confirmed" is allowed.`})
		return
	}

	totalCost, bookings, err := s.bookingService.Checkout(spanCtx, currentUser.ID.Hex())
	if err != nil {
		if errors.Is(err, domain.ErrNoPendingBookings()) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "No pending bookings found for the user."})
			return
		}
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	s.logger.WithFields(logrus.Fields{"userId": currentUser.ID.Hex(), "totalCost": totalCost}).Info("checkout completed")
	ctx.JSON(http.StatusOK, gin.H{
		"message":   "Checkout successful!",
		"totalCost": totalCost,
		"bookings":  bookings,
	})
}

func (s *BookingHandler) UpdateStatus(ctx *gin.Context) {
	spanCtx, span := s.Tracer.Start(ctx.Request.Context(), "BookingHandler.UpdateStatus")
	defer span.End()

	currentUser := CurrentUser(ctx)
	if currentUser == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided."})
		return
	}

	var input *domain.UpdateStatusInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if !domain.IsRequestableStatus(input.Status) {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": `Invalid status. Allowed values are "Confirmed" or "Cancelled".`})
		return
	}

	booking, err := s.bookingService.GetBooking(spanCtx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound()) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": domain.ErrBookingNotFound().Error()})
			return
		}
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	if currentUser.ID != booking.UserID && !currentUser.IsAdmin() {
		ctx.JSON(http.StatusForbidden, gin.H{"message": "Not authorized"})
		return
	}

	updated, err := s.bookingService.UpdateStatus(spanCtx, ctx.Param("id"), input.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookingNotFound()):
			ctx.JSON(http.StatusNotFound, gin.H{"message": domain.ErrBookingNotFound().Error()})
		case errors.Is(err, domain.ErrStatusTransition()):
			ctx.JSON(http.StatusBadRequest, gin.H{"message": domain.ErrStatusTransition().Error()})
		default:
			span.SetStatus(codes.Error, err.Error())
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update booking status"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Booking status updated to %s", input.Status),
		"booking": updated,
	})
}
