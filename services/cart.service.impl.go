package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"rentease-backend/domain"
)

type CartServiceImpl struct {
	collection      *mongo.Collection
	propertyService PropertyService
	Tracer          trace.Tracer
}

func NewCartServiceImpl(collection *mongo.Collection, propertyService PropertyService, tr trace.Tracer) CartService {
	return &CartServiceImpl{collection, propertyService, tr}
}

func (s *CartServiceImpl) AddToCart(ctx context.Context, userID string, propertyID string, quantity int) (*domain.Cart, error) {
	ctx, span := s.Tracer.Start(ctx, "CartService.AddToCart")
	defer span.End()

	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity()
	}

	property, err := s.propertyService.GetPropertyById(ctx, propertyID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	now := time.Now()

	var cart *domain.Cart
	err = s.collection.FindOne(ctx, bson.M{"userId": uid}).Decode(&cart)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		// Create new cart if not found
		cart = &domain.Cart{
			UserID:    uid,
			Items:     []domain.CartItem{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := cart.AddItem(property.ID, quantity); err != nil {
			return nil, err
		}
		result, err := s.collection.InsertOne(ctx, cart)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		if insertedID, ok := result.InsertedID.(primitive.ObjectID); ok {
			cart.ID = insertedID
		}
		return cart, nil
	}

	if err := cart.AddItem(property.ID, quantity); err != nil {
		return nil, err
	}
	cart.UpdatedAt = now

	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": cart.ID}, cart); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return cart, nil
}

// GetCart returns the user's cart with every item's property resolved, the
// way the client expects a populated cart.
func (s *CartServiceImpl) GetCart(ctx context.Context, userID string) (*domain.ResolvedCart, error) {
	ctx, span := s.Tracer.Start(ctx, "CartService.GetCart")
	defer span.End()

	cart, err := s.findCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	resolved := &domain.ResolvedCart{
		ID:        cart.ID,
		UserID:    cart.UserID,
		Items:     []domain.ResolvedCartItem{},
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}
	for _, item := range cart.Items {
		property, err := s.propertyService.GetPropertyById(ctx, item.PropertyID.Hex())
		if err != nil {
			// A property deleted after being carted resolves to null,
			// the entry itself stays.
			property = nil
		}
		resolved.Items = append(resolved.Items, domain.ResolvedCartItem{
			ID:       item.ID,
			Property: property,
			Quantity: item.Quantity,
		})
	}

	return resolved, nil
}

func (s *CartServiceImpl) RemoveFromCart(ctx context.Context, userID string, itemID string) (*domain.Cart, error) {
	ctx, span := s.Tracer.Start(ctx, "CartService.RemoveFromCart")
	defer span.End()

	cart, err := s.findCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, domain.ErrItemNotFound()
	}

	if ok := cart.RemoveItem(oid); !ok {
		return nil, domain.ErrItemNotFound()
	}
	cart.UpdatedAt = time.Now()

	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": cart.ID}, cart); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return cart, nil
}

func (s *CartServiceImpl) findCart(ctx context.Context, userID string) (*domain.Cart, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrCartNotFound()
	}

	var cart *domain.Cart
	err = s.collection.FindOne(ctx, bson.M{"userId": uid}).Decode(&cart)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCartNotFound()
		}
		return nil, err
	}
	return cart, nil
}
