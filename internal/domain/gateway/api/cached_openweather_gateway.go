package api

import (
	"context"

	"go-weather/pkg/log"

	"go.uber.org/zap"
)

// ResponseCache stores raw upstream bodies. *redis.Cache implements it.
type ResponseCache interface {
	GetBytes(ctx context.Context, key string) ([]byte, bool, error)
	SetBytes(ctx context.Context, key string, value []byte) error
}

// CachedOpenWeatherGateway serves forecasts from cache when possible.
// Current weather always goes upstream. Cache failures fall through to the delegate.
type CachedOpenWeatherGateway struct {
	delegate OpenWeatherGateway
	cache    ResponseCache
}

var _ OpenWeatherGateway = (*CachedOpenWeatherGateway)(nil)

func NewCachedOpenWeatherGateway(delegate OpenWeatherGateway, cache ResponseCache) *CachedOpenWeatherGateway {
	return &CachedOpenWeatherGateway{delegate: delegate, cache: cache}
}

func (c *CachedOpenWeatherGateway) Current(ctx context.Context, loc Location) ([]byte, error) {
	return c.delegate.Current(ctx, loc)
}

func (c *CachedOpenWeatherGateway) Forecast(ctx context.Context, loc Location) ([]byte, error) {
	key := loc.Key()

	cached, found, err := c.cache.GetBytes(ctx, key)
	if err != nil {
		log.Warn("forecast cache read failed", zap.String("key", key), zap.Error(err))
	} else if found {
		return cached, nil
	}

	body, err := c.delegate.Forecast(ctx, loc)
	if err != nil {
		return nil, err
	}

	if err := c.cache.SetBytes(ctx, key, body); err != nil {
		log.Warn("forecast cache write failed", zap.String("key", key), zap.Error(err))
	}
	return body, nil
}
