package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"rentease-backend/domain"
	"rentease-backend/services"
)

type CartHandler struct {
	cartService services.CartService
	Tracer      trace.Tracer
	logger      *logrus.Logger
}

func NewCartHandler(cartService services.CartService, tr trace.Tracer, logger *logrus.Logger) CartHandler {
	return CartHandler{cartService, tr, logger}
}

type addToCartInput struct {
	PropertyID string `json:"propertyId"`
	Quantity   *int   `json:"quantity"`
}

func (s *CartHandler) AddToCart(ctx *gin.Context) {
	spanCtx, span := s.Tracer.Start(ctx.Request.Context(), "CartHandler.AddToCart")
	defer span.End()

	currentUser := CurrentUser(ctx)
	if currentUser == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided."})
		return
	}

	var input addToCartInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if input.PropertyID == "" || input.Quantity == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Property ID and quantity are required."})
		return
	}
	if *input.Quantity < 1 {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Quantity must be at least 1."})
		return
	}

	cart, err := s.cartService.AddToCart(spanCtx, currentUser.ID.Hex(), input.PropertyID, *input.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPropertyNotFound()):
			ctx.JSON(http.StatusNotFound, gin.H{"message": domain.ErrPropertyNotFound().Error()})
		case errors.Is(err, domain.ErrQuantityLimit()), errors.Is(err, domain.ErrInvalidQuantity()):
			ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			span.SetStatus(codes.Error, err.Error())
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Item added to cart", "cart": cart})
}

func (s *CartHandler) GetCart(ctx *gin.Context) {
	spanCtx, span := s.Tracer.Start(ctx.Request.Context(), "CartHandler.GetCart")
	defer span.End()

	currentUser := CurrentUser(ctx)
	if currentUser == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided."})
		return
	}

	cart, err := s.cartService.GetCart(spanCtx, currentUser.ID.Hex())
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound()) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Cart not found."})
			return
		}
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

func (s *CartHandler) RemoveFromCart(ctx *gin.Context) {
	spanCtx, span := s.Tracer.Start(ctx.Request.Context(), "CartHandler.RemoveFromCart")
	defer span.End()

	currentUser := CurrentUser(ctx)
	if currentUser == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided."})
		return
	}

	cart, err := s.cartService.RemoveFromCart(spanCtx, currentUser.ID.Hex(), ctx.Param("itemId"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCartNotFound()):
			ctx.JSON(http.StatusNotFound, gin.H{"message": domain.ErrCartNotFound().Error()})
		case errors.Is(err, domain.ErrItemNotFound()):
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Item not found in cart."})
		default:
			span.SetStatus(codes.Error, err.Error())
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Item removed from cart", "cart": cart})
}
