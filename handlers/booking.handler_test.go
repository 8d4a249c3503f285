package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rentease-backend/domain"
)

func newTestContext(t *testing.T, method, path string, body interface{}, user *domain.User) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")

	if user != nil {
		c.Set("currentUser", user)
	}
	return c, w
}

func guestUser() *domain.User {
	return &domain.User{
		ID:       primitive.NewObjectID(),
		Name:     "Guest User",
		Email:    "guest@example.com",
		UserRole: domain.Guest,
	}
}

func adminUser() *domain.User {
	user := guestUser()
	user.UserRole = domain.Admin
	return user
}

func TestCreateBooking_EmptyLineItems(t *testing.T) {
	mockService := &MockBookingService{}
	handler := NewBookingHandler(mockService, testTracer(), testLogger())

	c, w := newTestContext(t, "POST", "/api/bookings", gin.H{"properties": []gin.H{}}, guestUser())
	handler.CreateBooking(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreateBooking")
}

func TestCreateBooking_BodyUserIdMismatch(t *testing.T) {
	mockService := &MockBookingService{}
	handler := NewBookingHandler(mockService, testTracer(), testLogger())

	user := guestUser()
	body := gin.H{
		"userId": primitive.NewObjectID().Hex(),
		"properties": []gin.H{
			{"property": primitive.NewObjectID().Hex(), "startDate": "2025-01-01T00:00:00Z", "endDate": "2025-01-31T00:00:00Z"},
		},
	}
	c, w := newTestContext(t, "POST", "/api/bookings", body, user)
	handler.CreateBooking(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreateBooking")
}

func TestCreateBooking_UnknownProperty(t *testing.T) {
	mockService := &MockBookingService{}
	handler := NewBookingHandler(mockService, testTracer(), testLogger())

	user := guestUser()
	missing := primitive.NewObjectID().Hex()
	mockService.On("CreateBooking", mock.Anything, user.ID.Hex(), mock.Anything).
		Return(nil, fmt.Errorf("%w: %s", domain.ErrPropertyNotFound(), missing))

	body := gin.H{
		"properties": []gin.H{
			{"property": missing, "startDate": "2025-01-01T00:00:00Z", "endDate": "2025-01-31T00:00:00Z"},
		},
	}
	c, w := newTestContext(t, "POST", "/api/bookings", body, user)
	handler.CreateBooking(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), missing)
}

func TestCreateBooking_Success(t *testing.T) {
	mockService := &MockBookingService{}
	handler := NewBookingHandler(mockService, testTracer(), testLogger())

	user := guestUser()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	resolved := &domain.ResolvedBooking{
		ID:        primitive.NewObjectID(),
		UserID:    user.ID,
		Status:    domain.BookingStatusPending,
		TotalCost: 250000,
		Properties: []domain.ResolvedBookingLineItem{
			{ID: primitive.NewObjectID(), StartDate: start, EndDate: end, Cost: 250000},
		},
	}
	mockService.On("CreateBooking", mock.Anything, user.ID.Hex(), mock.Anything).Return(resolved, nil)

	body := gin.H{
		"userId": user.ID.Hex(),
		"properties": []gin.H{
			{"property": primitive.NewObjectID().Hex(), "startDate": "2025-01-01T00:00:00Z", "endDate": "2025-01-31T00:00:00Z"},
		},
	}
	c, w := newTestContext(t, "POST", "/api/bookings", body, user)
	handler.CreateBooking(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var got domain.ResolvedBooking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, domain.BookingStatusPending, got.Status)
	assert.InDelta(t, 250000.0, got.TotalCost, 1e-9)
	mockService.AssertExpectations(t)
}

func TestGetBookingsForUser_OtherUserForbidden(t *testing.T) {
	mockService := &MockBookingService{}
	handler := NewBookingHandler(mockService, testTracer(), testLogger())

	user := guestUser()
	c, w := newTestContext(t, "GET", "/api/bookings/other", nil, user)
	c.Params = gin.Params{{Key: "userId", Value: primitive.NewObjectID().Hex()}}
	handler.GetBookingsForUser(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockService.AssertNotCalled(t, "GetBookingsForUser")
}

func TestGetBookingsForUser_Owner(t *testing.T) {
	mockService := &MockBookingService{}
	handler := NewBookingHandler(mockService, testTracer(), testLogger())

	user := guestUser()
	mockService.On("GetBookingsForUser", mock.Anything, user.ID.Hex()).
		Return([]*domain.ResolvedBooking{{ID: primitive.NewObjectID(), UserID: user.ID}}, nil)

	c, w := newTestContext(t, "GET", "/api/bookings/"+user.ID.Hex(), nil, user)
	c.Params = gin.Params{{Key: "userId", Value: user.ID.Hex()}}
	handler.GetBookingsForUser(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestGetBooking_NotFound(t *testing.T) {
	mockService := &MockBookingService{}
	handler := NewBookingHandler(mockService, testTracer(), testLogger())

	mockService.On("GetBooking", mock.Anything, "deadbeef").Return(nil, domain.ErrBookingNotFound())

	c, w := newTestContext(t, "GET", "/api/bookings/booking/deadbeef", nil, guestUser())
	c.Params = gin.Params{{Key: "id", Value: "deadbeef"}}
	handler.GetBooking(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBooking_NonOwnerForbidden(t *testing.T) {
	mockService := &MockBookingService{}
	handler := NewBookingHandler(mockService, testTracer(), testLogger())

	booking := &domain.Booking{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID()}
	mockService.On("GetBooking", mock.Anything, booking.ID.Hex()).Return(booking, nil)

	c, w := newTestContext(t, "GET", "/api/bookings/booking/"+booking.ID.Hex(), nil, guestUser())
	c.Params = gin.Params{{Key: "id", Value: booking.ID.Hex()}}
	handler.GetBooking(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockService.AssertNotCalled(t, "ResolveBooking")
}

func TestGetBooking_AdminMayReadAnyBooking(t *testing.T) {
	mockService := &MockBookingService{}
	handler := NewBookingHandler(mockService, testTracer(), testLogger())

	booking := &domain.Booking{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID()}
	mockService.On("GetBooking", mock.Anything, booking.ID.Hex()).Return(booking, nil)
	mockService.On("ResolveBooking", mock.Anything, booking).
		Return(&domain.ResolvedBooking{ID: booking.ID, UserID: booking.UserID})

	c, w := newTestContext(t, "GET", "/api/bookings/booking/"+booking.ID.Hex(), nil, adminUser())
	c.Params = gin.Params{{Key: "id", Value: booking.ID.Hex()}}
	handler.GetBooking(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestCheckout_OnlyConfirmedAccepted(t *testing.T) {
	mockService := &MockBookingService{}
	handler := NewBookingHandler(mockService, testTracer(), testLogger())

	c, w := newTestContext(t, "POST", "/api/bookings/checkout", gin.H{"status": "Cancelled"}, guestUser())
	handler.Checkout(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Checkout")
}

func TestCheckout_NoPendingBookings(t *testing.T) {
	mockService := &MockBookingService{}
	handler := NewBookingHandler(mockService, testTracer(), testLogger())

	user := guestUser()
	mockService.On("Checkout", mock.Anything, user.ID.Hex()).Return(0.0, nil, domain.ErrNoPendingBookings())

	c, w := newTestContext(t, "POST", "/api/bookings/checkout", gin.H{"status": "Confirmed"}, user)
	handler.Checkout(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckout_ConfirmsAllPending(t *testing.T) {
	mockService := &MockBookingService{}
	handler := NewBookingHandler(mockService, testTracer(), testLogger())

	user := guestUser()
	confirmed := domain.Bookings{
		{ID: primitive.NewObjectID(), UserID: user.ID, Status: domain.BookingStatusConfirmed, TotalCost: 1500},
		{ID: primitive.NewObjectID(), UserID: user.ID, Status: domain.BookingStatusConfirmed, TotalCost: 2500},
	}
	mockService.On("Checkout", mock.Anything, user.ID.Hex()).Return(4000.0, confirmed, nil)

	c, w := newTestContext(t, "POST", "/api/bookings/checkout", gin.H{"status": "Confirmed"}, user)
	handler.Checkout(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Message   string           `json:"message"`
		TotalCost float64          `json:"totalCost"`
		Bookings  []domain.Booking `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Checkout successful!", response.Message)
	assert.InDelta(t, 4000.0, response.TotalCost, 1e-9)
	assert.Len(t, response.Bookings, 2)
	for _, booking := range response.Bookings {
		assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	}
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	mockService := &MockBookingService{}
	handler := NewBookingHandler(mockService, testTracer(), testLogger())

	c, w := newTestContext(t, "PUT", "/api/bookings/abc", gin.H{"status": "Pending"}, guestUser())
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	handler.UpdateStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "UpdateStatus")
}

func TestUpdateStatus_NonOwnerForbiddenRegardlessOfStatus(t *testing.T) {
	for _, status := range []string{"Confirmed", "Cancelled"} {
		mockService := &MockBookingService{}
		handler := NewBookingHandler(mockService, testTracer(), testLogger())

		booking := &domain.Booking{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID()}
		mockService.On("GetBooking", mock.Anything, booking.ID.Hex()).Return(booking, nil)

		c, w := newTestContext(t, "PUT", "/api/bookings/"+booking.ID.Hex(), gin.H{"status": status}, guestUser())
		c.Params = gin.Params{{Key: "id", Value: booking.ID.Hex()}}
		handler.UpdateStatus(c)

		assert.Equal(t, http.StatusForbidden, w.Code, "status %s", status)
		mockService.AssertNotCalled(t, "UpdateStatus")
	}
}

func TestUpdateStatus_OwnerCancels(t *testing.T) {
	mockService := &MockBookingService{}
	handler := NewBookingHandler(mockService, testTracer(), testLogger())

	user := guestUser()
	booking := &domain.Booking{ID: primitive.NewObjectID(), UserID: user.ID, Status: domain.BookingStatusConfirmed}
	updated := &domain.Booking{ID: booking.ID, UserID: user.ID, Status: domain.BookingStatusCancelled}
	mockService.On("GetBooking", mock.Anything, booking.ID.Hex()).Return(booking, nil)
	mockService.On("UpdateStatus", mock.Anything, booking.ID.Hex(), domain.BookingStatusCancelled).Return(updated, nil)

	c, w := newTestContext(t, "PUT", "/api/bookings/"+booking.ID.Hex(), gin.H{"status": "Cancelled"}, user)
	c.Params = gin.Params{{Key: "id", Value: booking.ID.Hex()}}
	handler.UpdateStatus(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Booking status updated to Cancelled")
	mockService.AssertExpectations(t)
}

func TestUpdateStatus_StrictPolicyRejection(t *testing.T) {
	mockService := &MockBookingService{}
	handler := NewBookingHandler(mockService, testTracer(), testLogger())

	user := guestUser()
	booking := &domain.Booking{ID: primitive.NewObjectID(), UserID: user.ID, Status: domain.BookingStatusCancelled}
	mockService.On("GetBooking", mock.Anything, booking.ID.Hex()).Return(booking, nil)
	mockService.On("UpdateStatus", mock.Anything, booking.ID.Hex(), domain.BookingStatusConfirmed).
		Return(nil, domain.ErrStatusTransition())

	c, w := newTestContext(t, "PUT", "/api/bookings/"+booking.ID.Hex(), gin.H{"status": "Confirmed"}, user)
	c.Params = gin.Params{{Key: "id", Value: booking.ID.Hex()}}
	handler.UpdateStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
