package api

import (
	"context"
	"fmt"

	"go-weather/pkg/http"

	"golang.org/x/time/rate"
)

type openWeatherGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
	limiter    *rate.Limiter
}

// NewOpenWeatherGateway creates a gateway throttled to requestsPerSecond (burst of the same size).
// A non-positive rate disables throttling.
func NewOpenWeatherGateway(baseUrl, apiKey string, requestsPerSecond float64, clientOptions http.ClientOptions) OpenWeatherGateway {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), max(1, int(requestsPerSecond)))
	}

	return &openWeatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		apiKey:     apiKey,
		limiter:    limiter,
	}
}

func (o *openWeatherGatewayImpl) Current(ctx context.Context, loc Location) ([]byte, error) {
	return o.fetch(ctx, "/data/2.5/weather", loc)
}

func (o *openWeatherGatewayImpl) Forecast(ctx context.Context, loc Location) ([]byte, error) {
	return o.fetch(ctx, "/data/2.5/forecast", loc)
}

func (o *openWeatherGatewayImpl) fetch(ctx context.Context, path string, loc Location) ([]byte, error) {
	if err := o.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("openweather rate limit: %w", err)
	}

	params := map[string]string{
		"appid": o.apiKey,
		"units": "imperial",
	}
	if loc.Zip != "" {
		params["zip"] = loc.Zip
	} else {
		params["q"] = loc.Query
	}

	var body []byte
	_, _, _, err := o.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithQueryParams(params).
		WithSuccessResp(&body).
		Execute()
	if err != nil {
		return nil, err
	}
	return body, nil
}
