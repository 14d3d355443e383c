package weather

import (
	"context"

	"go-weather/internal/domain/model"
)

type UseCase interface {
	// Create validates the request, fetches OpenWeather and saves the lookup for userID
	Create(ctx context.Context, userID int64, dto model.CreateWeatherDTO) (*model.WeatherOut, error)

	// List returns every lookup saved by userID
	List(ctx context.Context, userID int64) ([]model.WeatherOut, error)

	// Get returns one lookup owned by userID
	Get(ctx context.Context, userID int64, id int64) (*model.WeatherOut, error)

	// Update changes location and dates without re-fetching
	Update(ctx context.Context, userID int64, id int64, dto model.UpdateWeatherDTO) (*model.WeatherOut, error)

	// Edit applies the HTML edit form and re-fetches the stored response
	Edit(ctx context.Context, userID int64, id int64, dto model.EditWeatherDTO) error

	// Delete removes one lookup owned by userID
	Delete(ctx context.Context, userID int64, id int64) error

	// Forecast fetches the live 5-day forecast for the saved location
	Forecast(ctx context.Context, userID int64, id int64) (*model.ForecastResponse, error)

	// SunTimes resolves sunrise and sunset from the stored coordinates
	SunTimes(ctx context.Context, userID int64, id int64) (*model.SunTimesResponse, error)

	// Export lists the user's lookups in export form
	Export(ctx context.Context, userID int64) ([]model.ExportRow, error)

	// SavedCards builds the home page cards, skipping records without main or weather data
	SavedCards(ctx context.Context, userID int64) ([]model.SavedCard, error)

	// Refresh re-fetches a saved lookup with the creation rules
	Refresh(ctx context.Context, id int64) error

	// EnqueueAllForRefresh pages through every lookup and sends refresh messages
	EnqueueAllForRefresh(ctx context.Context, requestID string) error
}
