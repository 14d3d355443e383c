package sqs

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go-weather/pkg/log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"
)

// HandlerFunc defines a function that handles a SQS Message
type HandlerFunc func(ctx context.Context, msg types.Message) error

// HandleMessage implements the Handler interface for HandlerFunc
func (f HandlerFunc) HandleMessage(ctx context.Context, msg types.Message) error {
	return f(ctx, msg)
}

// Handler processes one SQS message. A nil error deletes the message from the queue.
type Handler interface {
	HandleMessage(ctx context.Context, msg types.Message) error
}

// WorkerConfig defines the configuration options for a Worker
type WorkerConfig struct {
	MaxNumberOfMessages int32
	WaitTimeSeconds     int32
	PoolSize            int
	// ErrorDelay is how long a poller sleeps after a failed receive.
	ErrorDelay time.Duration
}

// Worker polls and processes messages from a SQS queue
type Worker struct {
	sqsClient           SQSClient
	queueName           string
	queueURL            string
	maxNumberOfMessages int32
	waitTimeSeconds     int32
	poolSize            int
	errorDelay          time.Duration
	handler             Handler

	running   atomic.Bool
	processed atomic.Int64
	failed    atomic.Int64
	lastErr   atomic.Value
}

// HealthStatus is the state reported by HealthCheck
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// WorkerHealth reports whether the pollers are running and what they have done so far.
type WorkerHealth struct {
	Status  HealthStatus
	Details map[string]string
}

// NewWorker creates and returns a new Worker.
//
// Zero config fields default to 10 messages, a 20 second long poll and one poller.
// MaxNumberOfMessages must be between 1 and 10 and WaitTimeSeconds between 1 and 20.
func NewWorker(ctx context.Context, sqsClient SQSClient, queueName string, handler Handler, config *WorkerConfig) (*Worker, error) {
	w := &Worker{
		sqsClient:           sqsClient,
		queueName:           queueName,
		maxNumberOfMessages: 10,
		waitTimeSeconds:     20,
		poolSize:            1,
		errorDelay:          time.Second,
		handler:             handler,
	}

	if config != nil {
		if config.MaxNumberOfMessages != 0 {
			w.maxNumberOfMessages = config.MaxNumberOfMessages
		}
		if config.WaitTimeSeconds != 0 {
			w.waitTimeSeconds = config.WaitTimeSeconds
		}
		if config.PoolSize != 0 {
			w.poolSize = config.PoolSize
		}
		if config.ErrorDelay != 0 {
			w.errorDelay = config.ErrorDelay
		}
	}

	if w.maxNumberOfMessages < 1 || w.maxNumberOfMessages > 10 {
		return nil, errors.New("maxNumberOfMessages must be between 1 and 10")
	}
	if w.waitTimeSeconds < 1 || w.waitTimeSeconds > 20 {
		return nil, errors.New("waitTimeSeconds must be between 1 and 20")
	}
	if w.poolSize < 1 {
		return nil, errors.New("poolSize must be greater than 0")
	}

	url, err := resolveQueueURL(ctx, sqsClient, queueName)
	if err != nil {
		return nil, err
	}
	w.queueURL = url
	return w, nil
}

// Start runs PoolSize pollers until ctx is canceled, then waits for in-flight messages.
func (w *Worker) Start(ctx context.Context) {
	var pollers, inflight sync.WaitGroup

	w.running.Store(true)
	defer w.running.Store(false)

	for i := 0; i < w.poolSize; i++ {
		pollers.Add(1)
		go func() {
			defer pollers.Done()
			w.pollMessages(ctx, &inflight)
		}()
	}

	pollers.Wait()
	inflight.Wait()
}

func (w *Worker) pollMessages(ctx context.Context, inflight *sync.WaitGroup) {
	for ctx.Err() == nil {
		output, err := w.sqsClient.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(w.queueURL),
			MaxNumberOfMessages: w.maxNumberOfMessages,
			WaitTimeSeconds:     w.waitTimeSeconds,
		})
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.lastErr.Store(err.Error())
			log.Error("failed to receive messages", zap.String("queue", w.queueName), zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.errorDelay):
			}
			continue
		}

		for _, msg := range output.Messages {
			inflight.Add(1)
			go func(m types.Message) {
				defer inflight.Done()
				w.handleMessage(context.WithoutCancel(ctx), m)
			}(msg)
		}
	}
}

func (w *Worker) handleMessage(ctx context.Context, msg types.Message) {
	id := aws.ToString(msg.MessageId)

	if err := w.handler.HandleMessage(ctx, msg); err != nil {
		w.failed.Add(1)
		log.Error("error processing message", zap.String("queue", w.queueName), zap.String("message_id", id), zap.Error(err))
		return
	}

	_, err := w.sqsClient.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(w.queueURL),
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		log.Error("failed to delete message", zap.String("queue", w.queueName), zap.String("message_id", id), zap.Error(err))
		return
	}
	w.processed.Add(1)
	log.Debug("message processed", zap.String("queue", w.queueName), zap.String("message_id", id))
}

// HealthCheck reports UP while Start is running.
func (w *Worker) HealthCheck() WorkerHealth {
	details := map[string]string{
		"queue":     w.queueName,
		"processed": strconv.FormatInt(w.processed.Load(), 10),
		"failed":    strconv.FormatInt(w.failed.Load(), 10),
	}
	if last, ok := w.lastErr.Load().(string); ok {
		details["last_receive_error"] = last
	}

	status := StatusDown
	if w.running.Load() {
		status = StatusUp
	}
	return WorkerHealth{Status: status, Details: details}
}
