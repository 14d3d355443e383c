package api

import (
	"context"
	"strconv"

	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
)

// SunGateway looks up sunrise and sunset for coordinates.
type SunGateway interface {
	SunTimes(ctx context.Context, lat, lon float64) (*external.SunriseSunsetResults, error)
}

type sunGatewayImpl struct {
	httpClient *http.Client
}

func NewSunGateway(baseUrl string, clientOptions http.ClientOptions) SunGateway {
	return &sunGatewayImpl{httpClient: http.NewHttpClient(baseUrl, clientOptions)}
}

func (s *sunGatewayImpl) SunTimes(ctx context.Context, lat, lon float64) (*external.SunriseSunsetResults, error) {
	successResp, _, _, err := s.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/json").
		WithQueryParams(map[string]string{
			"lat":       strconv.FormatFloat(lat, 'f', -1, 64),
			"lng":       strconv.FormatFloat(lon, 'f', -1, 64),
			"formatted": "0",
		}).
		WithSuccessResp(&external.SunriseSunsetResponse{}).
		Execute()
	if err != nil {
		return nil, err
	}

	response := successResp.(*external.SunriseSunsetResponse)
	return &response.Results, nil
}
