package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"rentease-backend/domain"
)

type UserServiceImpl struct {
	collection *mongo.Collection
	Tracer     trace.Tracer
}

func NewUserServiceImpl(collection *mongo.Collection, tr trace.Tracer) UserService {
	return &UserServiceImpl{collection, tr}
}

func (us *UserServiceImpl) FindUserById(ctx context.Context, id string) (*domain.User, error) {
	ctx, span := us.Tracer.Start(ctx, "UserService.FindUserById")
	defer span.End()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var user *domain.User

	query := bson.M{"_id": oid}
	err = us.collection.FindOne(ctx, query).Decode(&user)

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return user, nil
}

func (us *UserServiceImpl) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, span := us.Tracer.Start(ctx, "UserService.FindUserByEmail")
	defer span.End()

	var user *domain.User

	query := bson.M{"email": strings.ToLower(email)}
	err := us.collection.FindOne(ctx, query).Decode(&user)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // No user found, return nil user and nil error
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return user, nil
}

func (us *UserServiceImpl) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, span := us.Tracer.Start(ctx, "UserService.CreateUser")
	defer span.End()

	user.Email = strings.ToLower(user.Email)
	if user.UserRole == "" {
		user.UserRole = domain.Guest
	}

	result, err := us.collection.InsertOne(ctx, user)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if ok {
		user.ID = insertedID
	}
	return user, nil
}
