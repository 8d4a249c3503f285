package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"rentease-backend/domain"
)

type BookingServiceImpl struct {
	collection      *mongo.Collection
	propertyService PropertyService
	policy          *domain.TransitionPolicy
	Tracer          trace.Tracer
}

func NewBookingServiceImpl(collection *mongo.Collection, propertyService PropertyService,
	policy *domain.TransitionPolicy, tr trace.Tracer) BookingService {
	return &BookingServiceImpl{collection, propertyService, policy, tr}
}

// CreateBooking resolves every requested line item, prices it and persists
// one Pending booking. A single unresolvable property aborts the whole
// request, nothing is written.
func (s *BookingServiceImpl) CreateBooking(ctx context.Context, userID string, items []domain.LineItemRequest) (*domain.ResolvedBooking, error) {
	ctx, span := s.Tracer.Start(ctx, "BookingService.CreateBooking")
	defer span.End()

	if len(items) == 0 {
		return nil, domain.ErrMissingFields()
	}

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, domain.ErrMissingFields()
	}

	lineItems := make([]domain.BookingLineItem, 0, len(items))
	resolvedItems := make([]domain.ResolvedBookingLineItem, 0, len(items))
	for _, item := range items {
		property, err := s.propertyService.GetPropertyById(ctx, item.Property)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("%w: %s", domain.ErrPropertyNotFound(), item.Property)
		}

		cost := domain.LineItemCost(property.Price, item.StartDate, item.EndDate)
		lineItem := domain.BookingLineItem{
			ID:         primitive.NewObjectID(),
			PropertyID: property.ID,
			StartDate:  item.StartDate,
			EndDate:    item.EndDate,
			Cost:       cost,
		}
		lineItems = append(lineItems, lineItem)
		resolvedItems = append(resolvedItems, domain.ResolvedBookingLineItem{
			ID:        lineItem.ID,
			Property:  property,
			StartDate: item.StartDate,
			EndDate:   item.EndDate,
			Cost:      cost,
		})
	}

	booking := &domain.Booking{
		UserID:     uid,
		Properties: lineItems,
		Status:     domain.BookingStatusPending,
		CreatedAt:  time.Now(),
	}
	booking.RecomputeTotalCost()

	result, err := s.collection.InsertOne(ctx, booking)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if insertedID, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = insertedID
	}

	return &domain.ResolvedBooking{
		ID:         booking.ID,
		UserID:     booking.UserID,
		Properties: resolvedItems,
		TotalCost:  booking.TotalCost,
		Status:     booking.Status,
		CreatedAt:  booking.CreatedAt,
	}, nil
}

func (s *BookingServiceImpl) GetBookingsForUser(ctx context.Context, userID string) ([]*domain.ResolvedBooking, error) {
	ctx, span := s.Tracer.Start(ctx, "BookingService.GetBookingsForUser")
	defer span.End()

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	cursor, err := s.collection.Find(ctx, bson.M{"userId": uid})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := domain.Bookings{}
	if err := cursor.All(ctx, &bookings); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	resolved := make([]*domain.ResolvedBooking, 0, len(bookings))
	for _, booking := range bookings {
		resolved = append(resolved, s.ResolveBooking(ctx, booking))
	}
	return resolved, nil
}

func (s *BookingServiceImpl) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	ctx, span := s.Tracer.Start(ctx, "BookingService.GetBooking")
	defer span.End()

	oid, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, domain.ErrBookingNotFound()
	}

	var booking *domain.Booking
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBookingNotFound()
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return booking, nil
}

// ResolveBooking swaps every line item's property id for the full property
// document. A property that can no longer be resolved comes back null.
func (s *BookingServiceImpl) ResolveBooking(ctx context.Context, booking *domain.Booking) *domain.ResolvedBooking {
	resolved := &domain.ResolvedBooking{
		ID:         booking.ID,
		UserID:     booking.UserID,
		Properties: []domain.ResolvedBookingLineItem{},
		TotalCost:  booking.TotalCost,
		Status:     booking.Status,
		CreatedAt:  booking.CreatedAt,
	}
	for _, item := range booking.Properties {
		property, err := s.propertyService.GetPropertyById(ctx, item.PropertyID.Hex())
		if err != nil {
			property = nil
		}
		resolved.Properties = append(resolved.Properties, domain.ResolvedBookingLineItem{
			ID:        item.ID,
			Property:  property,
			StartDate: item.StartDate,
			EndDate:   item.EndDate,
			Cost:      item.Cost,
		})
	}
	return resolved
}

// Checkout confirms every Pending booking the user owns and reports the
// summed cost of their line items. The scan, the bulk update and the
// re-read are three separate operations; a booking created in between may
// or may not be picked up.
func (s *BookingServiceImpl) Checkout(ctx context.Context, userID string) (float64, domain.Bookings, error) {
	ctx, span := s.Tracer.Start(ctx, "BookingService.Checkout")
	defer span.End()

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, nil, err
	}

	cursor, err := s.collection.Find(ctx, bson.M{"userId": uid, "status": domain.BookingStatusPending})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, nil, err
	}

	pending := domain.Bookings{}
	if err := cursor.All(ctx, &pending); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, nil, err
	}

	if len(pending) == 0 {
		return 0, nil, domain.ErrNoPendingBookings()
	}

	totalCost := 0.0
	for _, booking := range pending {
		for _, item := range booking.Properties {
			totalCost += item.Cost
		}
	}

	_, err = s.collection.UpdateMany(ctx,
		bson.M{"userId": uid, "status": domain.BookingStatusPending},
		bson.M{"$set": bson.M{"status": domain.BookingStatusConfirmed}})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, nil, err
	}

	cursor, err = s.collection.Find(ctx, bson.M{"userId": uid, "status": domain.BookingStatusConfirmed})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, nil, err
	}

	confirmed := domain.Bookings{}
	if err := cursor.All(ctx, &confirmed); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, nil, err
	}

	return totalCost, confirmed, nil
}

func (s *BookingServiceImpl) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error) {
	ctx, span := s.Tracer.Start(ctx, "BookingService.UpdateStatus")
	defer span.End()

	booking, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !s.policy.CanTransition(booking.Status, status) {
		return nil, domain.ErrStatusTransition()
	}

	booking.Status = status
	booking.RecomputeTotalCost()

	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": booking.ID}, booking); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return booking, nil
}
