package services

import (
	"context"

	"rentease-backend/domain"
)

type PropertyService interface {
	GetAllProperties(ctx context.Context, filter *domain.PropertyFilter) (domain.Properties, error)
	GetPropertyById(ctx context.Context, id string) (*domain.Property, error)
}
