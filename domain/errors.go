package domain

import "errors"

var (
	errUserAlreadyExists  error = errors.New("User already exists")
	errInvalidCredentials error = errors.New("Invalid credentials")
	errPropertyNotFound   error = errors.New("Property not found")
	errCartNotFound       error = errors.New("Cart not found")
	errItemNotFound       error = errors.New("Item not found in cart")
	errInvalidQuantity    error = errors.New("Quantity must be at least 1")
	errQuantityLimit      error = errors.New("Quantity limit reached for this property")
	errBookingNotFound    error = errors.New("Booking not found")
	errNoPendingBookings  error = errors.New("No pending bookings found for the user")
	errNotAuthorized      error = errors.New("Not authorized")
	errInvalidStatus      error = errors.New("Invalid status")
	errStatusTransition   error = errors.New("Status transition not allowed")
	errMissingFields      error = errors.New("Please provide all required fields")
)

// specific errors that may occur during the program
type BookingError struct {
	Message string
}

func (e BookingError) Error() string {
	return e.Message
}

func ErrUserAlreadyExists() error {
	return errUserAlreadyExists
}

func ErrInvalidCredentials() error {
	return errInvalidCredentials
}

func ErrPropertyNotFound() error {
	return errPropertyNotFound
}

func ErrCartNotFound() error {
	return errCartNotFound
}

func ErrItemNotFound() error {
	return errItemNotFound
}

func ErrInvalidQuantity() error {
	return errInvalidQuantity
}

func ErrQuantityLimit() error {
	return errQuantityLimit
}

func ErrBookingNotFound() error {
	return errBookingNotFound
}

func ErrNoPendingBookings() error {
	return errNoPendingBookings
}

func ErrNotAuthorized() error {
	return errNotAuthorized
}

func ErrInvalidStatus() error {
	return errInvalidStatus
}

func ErrStatusTransition() error {
	return errStatusTransition
}

func ErrMissingFields() error {
	return errMissingFields
}
