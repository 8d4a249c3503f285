package services

import (
	"context"

	"rentease-backend/domain"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID string, items []domain.LineItemRequest) (*domain.ResolvedBooking, error)
	GetBookingsForUser(ctx context.Context, userID string) ([]*domain.ResolvedBooking, error)
	GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
	ResolveBooking(ctx context.Context, booking *domain.Booking) *domain.ResolvedBooking
	Checkout(ctx context.Context, userID string) (float64, domain.Bookings, error)
	UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error)
}
