package health

import (
	"context"
	"testing"

	"go-weather/internal/domain/gateway/queue"
	"go-weather/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

type staticDB model.HealthStatus

func (s staticDB) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.HealthStatus(s)}
}

type staticCache model.HealthStatus

func (s staticCache) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.HealthStatus(s)}
}

func TestCheckHealthIgnoresUnknownComponents(t *testing.T) {
	uc := NewHealthUseCase(staticDB(model.StatusUp), staticCache(model.StatusUnknown), queue.NewQueueHealthGateway())

	response := uc.CheckHealth(context.Background())

	assert.Equal(t, model.StatusUp, response.Status)
	assert.Equal(t, model.StatusUnknown, response.Cache.Status)
	assert.Equal(t, model.StatusUnknown, response.Queue.Status)
}

func TestCheckHealthDownWhenDatabaseDown(t *testing.T) {
	uc := NewHealthUseCase(staticDB(model.StatusDown), staticCache(model.StatusUp), queue.NewQueueHealthGateway())

	assert.Equal(t, model.StatusDown, uc.CheckHealth(context.Background()).Status)
}
