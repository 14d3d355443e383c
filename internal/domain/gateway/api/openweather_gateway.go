package api

import (
	"context"
)

// Location selects how OpenWeather resolves a place: by zip or by free-text query.
type Location struct {
	Zip   string
	Query string
}

// Key is a stable cache key for the location.
func (l Location) Key() string {
	if l.Zip != "" {
		return "zip:" + l.Zip
	}
	return "q:" + l.Query
}

// OpenWeatherGateway fetches raw OpenWeather JSON in imperial units.
// Non-2xx answers come back as *http.StatusError.
type OpenWeatherGateway interface {
	// Current calls /data/2.5/weather
	Current(ctx context.Context, loc Location) ([]byte, error)
	// Forecast calls /data/2.5/forecast (5 days, 3-hour steps)
	Forecast(ctx context.Context, loc Location) ([]byte, error)
}
