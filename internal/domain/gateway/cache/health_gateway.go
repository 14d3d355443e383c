package cache

import (
	"context"
	"time"

	"go-weather/internal/domain/model"
)

// Pinger is the part of *redis.Client the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

type RedisHealthGateway struct {
	client  Pinger
	addr    string
	timeout time.Duration
}

var _ HealthGateway = (*RedisHealthGateway)(nil)

// NewRedisHealthGateway reports UNKNOWN when client is nil, which is the case when caching is disabled.
func NewRedisHealthGateway(client Pinger, addr string) *RedisHealthGateway {
	return &RedisHealthGateway{client: client, addr: addr, timeout: 2 * time.Second}
}

func (gateway *RedisHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	if gateway.client == nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusUnknown,
			Details: map[string]string{"message": "Cache disabled"},
		}
	}

	ctx, cancel := context.WithTimeout(ctx, gateway.timeout)
	defer cancel()

	start := time.Now()
	if err := gateway.client.Ping(ctx); err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"address": gateway.addr,
				"error":   err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"address":      gateway.addr,
			"ping_latency": time.Since(start).String(),
		},
	}
}
