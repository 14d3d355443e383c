package db

import (
	"context"

	"go-weather/internal/domain/entity"
)

// UserGateway persists accounts. Find methods return nil, nil when nothing matches.
type UserGateway interface {
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user entity.User) (*entity.User, error)
}
