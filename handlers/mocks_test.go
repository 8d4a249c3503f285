package handlers

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"rentease-backend/domain"
)

func testTracer() trace.Tracer {
	return otel.Tracer("test")
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// MockUserService is a mock implementation of services.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) FindUserById(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockPropertyService is a mock implementation of services.PropertyService
type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) GetAllProperties(ctx context.Context, filter *domain.PropertyFilter) (domain.Properties, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Properties), args.Error(1)
}

func (m *MockPropertyService) GetPropertyById(ctx context.Context, id string) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

// MockCartService is a mock implementation of services.CartService
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) AddToCart(ctx context.Context, userID string, propertyID string, quantity int) (*domain.Cart, error) {
	args := m.Called(ctx, userID, propertyID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *MockCartService) GetCart(ctx context.Context, userID string) (*domain.ResolvedCart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResolvedCart), args.Error(1)
}

func (m *MockCartService) RemoveFromCart(ctx context.Context, userID string, itemID string) (*domain.Cart, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

// MockBookingService is a mock implementation of services.BookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(ctx context.Context, userID string, items []domain.LineItemRequest) (*domain.ResolvedBooking, error) {
	args := m.Called(ctx, userID, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResolvedBooking), args.Error(1)
}

func (m *MockBookingService) GetBookingsForUser(ctx context.Context, userID string) ([]*domain.ResolvedBooking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ResolvedBooking), args.Error(1)
}

func (m *MockBookingService) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) ResolveBooking(ctx context.Context, booking *domain.Booking) *domain.ResolvedBooking {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.ResolvedBooking)
}

func (m *MockBookingService) Checkout(ctx context.Context, userID string) (float64, domain.Bookings, error) {
	args := m.Called(ctx, userID)
	if args.Get(1) == nil {
		return args.Get(0).(float64), nil, args.Error(2)
	}
	return args.Get(0).(float64), args.Get(1).(domain.Bookings), args.Error(2)
}

func (m *MockBookingService) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
