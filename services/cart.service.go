package services

import (
	"context"

	"rentease-backend/domain"
)

type CartService interface {
	AddToCart(ctx context.Context, userID string, propertyID string, quantity int) (*domain.Cart, error)
	GetCart(ctx context.Context, userID string) (*domain.ResolvedCart, error)
	RemoveFromCart(ctx context.Context, userID string, itemID string) (*domain.Cart, error)
}
