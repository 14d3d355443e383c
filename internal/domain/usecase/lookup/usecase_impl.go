package lookup

import (
	"context"
	"errors"

	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/internal/domain/usecase/forecast"
	"go-weather/internal/domain/usecase/session"
	"go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"go.uber.org/zap"
)

type lookupUseCase struct {
	weatherAPI api.WeatherAPIGateway
	sessions   *session.Store[*Machine]
}

func NewLookupUseCase(weatherAPI api.WeatherAPIGateway, sessions *session.Store[*Machine]) UseCase {
	return &lookupUseCase{weatherAPI: weatherAPI, sessions: sessions}
}

// NewSessions builds the per-user machine registry.
func NewSessions() *session.Store[*Machine] {
	return session.NewStore(func(int64) *Machine { return NewMachine() })
}

func (uc *lookupUseCase) Machine(userID int64) *Machine {
	return uc.sessions.Get(userID)
}

func (uc *lookupUseCase) Submit(ctx context.Context, userID int64, accessToken string, form model.LookupForm) Outcome {
	machine := uc.sessions.Get(userID)
	token := machine.Begin()

	outcome, err := uc.fetch(ctx, accessToken, form.CreateDTO())
	if err != nil {
		log.Warn(msg.GetMessage("lookup.failed", userID), zap.Uint64("token", token), zap.Error(err))
		outcome = Outcome{State: Failure, Message: failureMessage(err)}
	}

	if !machine.Finish(token, err == nil) {
		return Outcome{State: machine.State(), Superseded: true}
	}
	return outcome
}

func (uc *lookupUseCase) fetch(ctx context.Context, accessToken string, dto model.CreateWeatherDTO) (Outcome, error) {
	record, err := uc.weatherAPI.CreateWeather(ctx, accessToken, dto)
	if err != nil {
		return Outcome{}, err
	}

	payload, err := external.DecodeWeatherRecord(record)
	if err != nil {
		return Outcome{}, err
	}

	if payload.IsForecast() {
		return Outcome{
			State:      Success,
			IsForecast: true,
			Forecast:   forecast.Reduce(forecast.SamplesFromPayload(payload)),
		}, nil
	}

	current := forecast.CurrentFromPayload(payload)
	return Outcome{State: Success, Current: &current}, nil
}

// failureMessage is the status text for non-OK responses and a fixed line otherwise.
func failureMessage(err error) string {
	var statusErr *http.StatusError
	switch {
	case errors.As(err, &statusErr):
		return statusErr.Text()
	case errors.Is(err, model.ErrMalformedPayload):
		return msg.GetMessageOr("lookup.invalid-response", "Invalid response from server")
	default:
		return msg.GetMessageOr("lookup.request-failed", "Failed to fetch")
	}
}
