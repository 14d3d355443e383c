package lookup

import (
	"context"

	"go-weather/internal/domain/model"
)

// Outcome is what the lookup form shows after a submission.
type Outcome struct {
	State State
	// Superseded is set when a newer submission from the same session started meanwhile.
	Superseded bool
	// IsForecast selects Forecast over Current.
	IsForecast bool
	Forecast   []model.DayForecast
	Current    *model.CurrentWeather
	// Message is the failure text shown after "Error: ".
	Message string
}

type UseCase interface {
	// Submit posts the form to POST /weather on behalf of userID and decodes the result
	Submit(ctx context.Context, userID int64, accessToken string, form model.LookupForm) Outcome

	// Machine returns the session's form state machine
	Machine(userID int64) *Machine
}
