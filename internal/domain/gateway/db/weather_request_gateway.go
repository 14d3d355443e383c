package db

import (
	"context"

	"go-weather/internal/domain/entity"
)

// WeatherRequestGateway persists saved lookups. Find methods return nil, nil when nothing matches.
type WeatherRequestGateway interface {
	FindByID(ctx context.Context, id int64) (*entity.WeatherRequest, error)
	FindAllByUser(ctx context.Context, userID int64) ([]entity.WeatherRequest, error)
	// FindIDsAfter pages through every record by ascending id.
	FindIDsAfter(ctx context.Context, afterID int64, limit int) ([]int64, error)

	Create(ctx context.Context, rec entity.WeatherRequest) (*entity.WeatherRequest, error)
	Update(ctx context.Context, rec entity.WeatherRequest) (*entity.WeatherRequest, error)
	UpdateResponse(ctx context.Context, id int64, response string) error

	DeleteByID(ctx context.Context, id int64) error
}
