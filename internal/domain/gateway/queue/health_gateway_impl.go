package queue

import (
	"strconv"
	"sync"

	"go-weather/internal/domain/model"
	"go-weather/pkg/sqs"
)

type QueueHealthGateway struct {
	workers map[string]WorkerHealthChecker
	mutex   sync.RWMutex
}

var _ HealthGateway = (*QueueHealthGateway)(nil)

func NewQueueHealthGateway() *QueueHealthGateway {
	return &QueueHealthGateway{workers: make(map[string]WorkerHealthChecker)}
}

func (gateway *QueueHealthGateway) RegisterWorker(name string, worker WorkerHealthChecker) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	gateway.workers[name] = worker
}

func (gateway *QueueHealthGateway) UnregisterWorker(name string) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	delete(gateway.workers, name)
}

// Health is UNKNOWN without workers, DOWN if any worker is down, UP otherwise.
func (gateway *QueueHealthGateway) Health() model.ComponentHealthStatus {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	if len(gateway.workers) == 0 {
		return model.ComponentHealthStatus{
			Status: model.StatusUnknown,
			Details: map[string]string{
				"message":       "No workers registered",
				"workers_total": "0",
			},
		}
	}

	status := model.StatusUp
	details := make(map[string]string)
	up := 0

	for name, worker := range gateway.workers {
		health := worker.HealthCheck()
		details[name+"_status"] = string(health.Status)
		if health.Status == sqs.StatusUp {
			up++
		} else {
			status = model.StatusDown
		}
		for key, value := range health.Details {
			details[name+"_"+key] = value
		}
	}

	details["workers_total"] = strconv.Itoa(len(gateway.workers))
	details["workers_up"] = strconv.Itoa(up)
	details["workers_down"] = strconv.Itoa(len(gateway.workers) - up)

	return model.ComponentHealthStatus{Status: status, Details: details}
}
