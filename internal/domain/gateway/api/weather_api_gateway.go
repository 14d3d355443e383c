package api

import (
	"context"
	"fmt"

	"go-weather/internal/domain/model"
	"go-weather/pkg/http"
)

// AccessTokenCookie is the cookie carrying the session JWT.
const AccessTokenCookie = "access_token"

// WeatherAPIGateway calls this service's own JSON API on behalf of a signed-in browser session.
type WeatherAPIGateway interface {
	// CreateWeather issues POST /weather
	CreateWeather(ctx context.Context, accessToken string, dto model.CreateWeatherDTO) (*model.WeatherOut, error)
	// Forecast issues GET /weather/{id}/forecast and returns the raw {"response": ...} body
	Forecast(ctx context.Context, accessToken string, id int64) ([]byte, error)
	// SunTimes issues GET /weather/{id}/sun
	SunTimes(ctx context.Context, accessToken string, id int64) (*model.SunTimesResponse, error)
}

type weatherAPIGatewayImpl struct {
	httpClient *http.Client
}

func NewWeatherAPIGateway(baseUrl string, clientOptions http.ClientOptions) WeatherAPIGateway {
	return &weatherAPIGatewayImpl{httpClient: http.NewHttpClient(baseUrl, clientOptions)}
}

func (w *weatherAPIGatewayImpl) CreateWeather(ctx context.Context, accessToken string, dto model.CreateWeatherDTO) (*model.WeatherOut, error) {
	successResp, _, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.POST).
		WithPath("/weather").
		WithHeaders(sessionHeaders(accessToken)).
		WithBody(dto).
		WithSuccessResp(&model.WeatherOut{}).
		Execute()
	if err != nil {
		return nil, err
	}
	return successResp.(*model.WeatherOut), nil
}

func (w *weatherAPIGatewayImpl) Forecast(ctx context.Context, accessToken string, id int64) ([]byte, error) {
	var body []byte
	_, _, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(fmt.Sprintf("/weather/%d/forecast", id)).
		WithHeaders(sessionHeaders(accessToken)).
		WithSuccessResp(&body).
		Execute()
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (w *weatherAPIGatewayImpl) SunTimes(ctx context.Context, accessToken string, id int64) (*model.SunTimesResponse, error) {
	successResp, _, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(fmt.Sprintf("/weather/%d/sun", id)).
		WithHeaders(sessionHeaders(accessToken)).
		WithSuccessResp(&model.SunTimesResponse{}).
		Execute()
	if err != nil {
		return nil, err
	}
	return successResp.(*model.SunTimesResponse), nil
}

func sessionHeaders(accessToken string) map[string]string {
	return map[string]string{"Cookie": AccessTokenCookie + "=" + accessToken}
}
