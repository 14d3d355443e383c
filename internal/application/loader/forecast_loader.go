package loader

import (
	"context"

	"go-weather/internal/application/view"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model/external"
	"go-weather/internal/domain/usecase/forecast"
	"go-weather/internal/domain/usecase/panel"
	"go-weather/pkg/msg"
)

// ForecastLoader fills a card's forecast panel from GET /weather/{id}/forecast.
type ForecastLoader struct {
	weatherAPI api.WeatherAPIGateway
	renderer   *view.Renderer
}

var _ panel.Loader = (*ForecastLoader)(nil)

func NewForecastLoader(weatherAPI api.WeatherAPIGateway, renderer *view.Renderer) *ForecastLoader {
	return &ForecastLoader{weatherAPI: weatherAPI, renderer: renderer}
}

func (l *ForecastLoader) Load(ctx context.Context, accessToken string, cardID int64) (string, error) {
	body, err := l.weatherAPI.Forecast(ctx, accessToken, cardID)
	if err != nil {
		return "", err
	}

	payload, err := external.DecodeEnvelope(body)
	if err != nil {
		return "", err
	}
	return l.renderer.DailyForecast(forecast.Reduce(forecast.SamplesFromPayload(payload)))
}

func (l *ForecastLoader) Failure(error) string {
	return l.renderer.Error(msg.GetMessageOr("panel.forecast-failed", "Forecast load failed"))
}
