package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"rentease-backend/cache"
	"rentease-backend/domain"
)

type PropertyServiceImpl struct {
	collection *mongo.Collection
	cache      *cache.PropertyCache
	Tracer     trace.Tracer
}

func NewPropertyServiceImpl(collection *mongo.Collection, propertyCache *cache.PropertyCache, tr trace.Tracer) PropertyService {
	return &PropertyServiceImpl{collection, propertyCache, tr}
}

// GetAllProperties runs the catalog query. The unfiltered listing is served
// through the redis cache when possible; filtered queries always go to the
// database. A cache failure degrades to a database read.
func (s *PropertyServiceImpl) GetAllProperties(ctx context.Context, filter *domain.PropertyFilter) (domain.Properties, error) {
	ctx, span := s.Tracer.Start(ctx, "PropertyService.GetAllProperties")
	defer span.End()

	unfiltered := filter.IsEmpty()
	if unfiltered && s.cache != nil {
		if properties, err := s.cache.GetAll(ctx); err == nil {
			return properties, nil
		}
	}

	cursor, err := s.collection.Find(ctx, filter.ToQuery())
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer cursor.Close(ctx)

	properties := domain.Properties{}
	if err := cursor.All(ctx, &properties); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if unfiltered && s.cache != nil {
		_ = s.cache.PostAll(properties, ctx)
	}

	return properties, nil
}

func (s *PropertyServiceImpl) GetPropertyById(ctx context.Context, id string) (*domain.Property, error) {
	ctx, span := s.Tracer.Start(ctx, "PropertyService.GetPropertyById")
	defer span.End()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, domain.ErrPropertyNotFound()
	}

	if s.cache != nil {
		if property, err := s.cache.GetProperty(id, ctx); err == nil {
			return property, nil
		}
	}

	var property *domain.Property
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPropertyNotFound()
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.PostProperty(property, ctx)
	}

	return property, nil
}
