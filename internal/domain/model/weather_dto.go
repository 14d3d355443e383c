package model

import (
	"time"

	"go-weather/internal/domain/entity"
)

// DateLayout is the wire format of start_date and end_date.
const DateLayout = "2006-01-02"

// CreateWeatherDTO is the body of POST /weather. Empty dates travel as null.
type CreateWeatherDTO struct {
	Location  string  `json:"location"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// UpdateWeatherDTO is the body of PUT /weather/{id}. Nil or empty fields are left unchanged.
type UpdateWeatherDTO struct {
	Location  *string `json:"location"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// EditWeatherDTO is the HTML edit form. The location is always replaced.
type EditWeatherDTO struct {
	Location  string `form:"location"`
	StartDate string `form:"start_date_raw"`
	EndDate   string `form:"end_date_raw"`
}

type WeatherOut struct {
	ID        int64      `json:"id"`
	Location  string     `json:"location"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Response  string     `json:"response"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewWeatherOut(rec *entity.WeatherRequest) *WeatherOut {
	return &WeatherOut{
		ID:        rec.ID,
		Location:  rec.Location,
		StartDate: rec.StartDate,
		EndDate:   rec.EndDate,
		Response:  rec.Response,
		CreatedAt: rec.CreatedAt,
	}
}

// ForecastResponse wraps the live forecast JSON as text.
type ForecastResponse struct {
	Response string `json:"response"`
}

// SunTimesResponse carries ISO 8601 instants.
type SunTimesResponse struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// ExportRow is one line of GET /export.
type ExportRow struct {
	ID        int64   `json:"id"`
	Location  string  `json:"location"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Response  string  `json:"response"`
	CreatedAt *string `json:"created_at"`
}

// ExportColumns is the CSV header order.
var ExportColumns = []string{"id", "location", "start_date", "end_date", "response", "created_at"}

// RefreshMessage asks the worker to re-fetch a saved lookup.
type RefreshMessage struct {
	ID        int64  `json:"id"`
	RequestID string `json:"requestId"`
}
