package services

import (
	"context"

	"rentease-backend/domain"
)

type UserService interface {
	FindUserById(ctx context.Context, id string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
}
