package queue

import (
	"go-weather/internal/domain/model"
	"go-weather/pkg/sqs"
)

// WorkerHealthChecker is the part of *sqs.Worker the health gateway needs.
type WorkerHealthChecker interface {
	HealthCheck() sqs.WorkerHealth
}

type HealthGateway interface {
	Health() model.ComponentHealthStatus
	RegisterWorker(name string, worker WorkerHealthChecker)
	UnregisterWorker(name string)
}
