package queue

import (
	"context"

	"go-weather/pkg/sqs"
)

// Sender publishes JSON messages to a named queue. *sqs.Sender implements it.
type Sender interface {
	SendMessage(ctx context.Context, queueName string, body any) error
	SendMessageBatch(ctx context.Context, queueName string, messages []sqs.BatchMessage) (*sqs.BatchResult, error)
}

var _ Sender = (*sqs.Sender)(nil)
