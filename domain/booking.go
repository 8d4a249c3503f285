package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

func (s BookingStatus) IsValid() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed || s == BookingStatusCancelled
}

type BookingLineItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PropertyID primitive.ObjectID `bson:"property" json:"property"`
	StartDate  time.Time          `bson:"startDate" json:"startDate"`
	EndDate    time.Time          `bson:"endDate" json:"endDate"`
	Cost       float64            `bson:"cost" json:"cost"`
}

type Booking struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	Properties []BookingLineItem  `bson:"properties" json:"properties"`
	TotalCost  float64            `bson:"totalCost" json:"totalCost"`
	Status     BookingStatus      `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

type Bookings []*Booking

// LineItemCost prices a stay as a linear fraction of the monthly rent:
// price * (duration in days) / 30. The duration is taken from the raw
// timestamps, so time-of-day differences yield fractional days and a
// non-positive duration yields a zero or negative cost. Callers that want
// to reject such ranges must do so themselves.
func LineItemCost(price float64, startDate, endDate time.Time) float64 {
	duration := endDate.Sub(startDate).Hours() / (24 * 30)
	return price * duration
}

// RecomputeTotalCost refreshes the stored total from the current line
// items. Run before every persist, mirroring the document's save hook.
func (b *Booking) RecomputeTotalCost() {
	total := 0.0
	for _, item := range b.Properties {
		total += item.Cost
	}
	b.TotalCost = total
}

type ResolvedBookingLineItem struct {
	ID        primitive.ObjectID `json:"_id"`
	Property  *Property          `json:"property"`
	StartDate time.Time          `json:"startDate"`
	EndDate   time.Time          `json:"endDate"`
	Cost      float64            `json:"cost"`
}

type ResolvedBooking struct {
	ID         primitive.ObjectID        `json:"_id"`
	UserID     primitive.ObjectID        `json:"userId"`
	Properties []ResolvedBookingLineItem `json:"properties"`
	TotalCost  float64                   `json:"totalCost"`
	Status     BookingStatus             `json:"status"`
	CreatedAt  time.Time                 `json:"createdAt"`
}

type LineItemRequest struct {
	Property  string    `json:"property" validate:"required"`
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required"`
}

type CreateBookingInput struct {
	UserID     string            `json:"userId"`
	Properties []LineItemRequest `json:"properties" validate:"required,min=1,dive"`
}

type UpdateStatusInput struct {
	Status BookingStatus `json:"status" validate:"required"`
}
