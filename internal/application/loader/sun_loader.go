package loader

import (
	"context"
	"fmt"
	"time"

	"go-weather/internal/application/view"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/panel"
	"go-weather/pkg/msg"
)

// SunLoader fills a card's sun panel from GET /weather/{id}/sun.
type SunLoader struct {
	weatherAPI api.WeatherAPIGateway
	renderer   *view.Renderer
}

var _ panel.Loader = (*SunLoader)(nil)

func NewSunLoader(weatherAPI api.WeatherAPIGateway, renderer *view.Renderer) *SunLoader {
	return &SunLoader{weatherAPI: weatherAPI, renderer: renderer}
}

func (l *SunLoader) Load(ctx context.Context, accessToken string, cardID int64) (string, error) {
	response, err := l.weatherAPI.SunTimes(ctx, accessToken, cardID)
	if err != nil {
		return "", err
	}

	sunrise, err := time.Parse(time.RFC3339, response.Sunrise)
	if err != nil {
		return "", fmt.Errorf("%w: sunrise: %v", model.ErrMalformedPayload, err)
	}
	sunset, err := time.Parse(time.RFC3339, response.Sunset)
	if err != nil {
		return "", fmt.Errorf("%w: sunset: %v", model.ErrMalformedPayload, err)
	}
	return l.renderer.SunTimes(model.SunTimes{Sunrise: sunrise, Sunset: sunset})
}

func (l *SunLoader) Failure(error) string {
	return l.renderer.Error(msg.GetMessageOr("panel.sun-failed", "Sun times load failed"))
}
