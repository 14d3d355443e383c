package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// maxBatchEntries is the SQS limit for SendMessageBatch
const maxBatchEntries = 10

// BatchMessage represents a message to be sent in batch
type BatchMessage struct {
	MessageID string `json:"messageId"`
	Body      any    `json:"body"`
}

// BatchResult represents the result of a batch send operation
type BatchResult struct {
	Successful []string `json:"successful"`
	Failed     []string `json:"failed"`
}

func (r *BatchResult) merge(other *BatchResult) {
	r.Successful = append(r.Successful, other.Successful...)
	r.Failed = append(r.Failed, other.Failed...)
}

// SQSClient is the subset of the SQS API used by Sender and Worker
type SQSClient interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	SendMessageBatch(ctx context.Context, params *sqs.SendMessageBatchInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// Sender handles sending messages to SQS queues
type Sender struct {
	sqsClient SQSClient
	mu        sync.Mutex
	urls      map[string]string
}

// NewSender creates and returns a new Sender
func NewSender(sqsClient SQSClient) *Sender {
	return &Sender{
		sqsClient: sqsClient,
		urls:      make(map[string]string),
	}
}

// SendMessage serializes the provided body to JSON and sends it to the specified queue
func (s *Sender) SendMessage(ctx context.Context, queueName string, body any) error {
	queueURL, err := s.queueURL(ctx, queueName)
	if err != nil {
		return err
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to serialize message body to JSON: %w", err)
	}

	_, err = s.sqsClient.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(queueURL),
		MessageBody: aws.String(string(jsonBody)),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to queue %s: %w", queueName, err)
	}
	return nil
}

// SendMessageBatch splits messages into chunks of ten and sends the chunks concurrently.
// A chunk that fails as a whole reports every one of its ids as failed.
func (s *Sender) SendMessageBatch(ctx context.Context, queueName string, messages []BatchMessage) (*BatchResult, error) {
	result := &BatchResult{Successful: []string{}, Failed: []string{}}
	if len(messages) == 0 {
		return result, nil
	}

	queueURL, err := s.queueURL(ctx, queueName)
	if err != nil {
		return nil, err
	}

	chunks := chunk(messages, maxBatchEntries)
	results := make(chan *BatchResult, len(chunks))
	var wg sync.WaitGroup

	for _, c := range chunks {
		wg.Add(1)
		go func(batch []BatchMessage) {
			defer wg.Done()
			res, err := s.sendBatch(ctx, queueURL, batch)
			if err != nil {
				res = &BatchResult{Failed: messageIDs(batch)}
			}
			results <- res
		}(c)
	}

	wg.Wait()
	close(results)

	for res := range results {
		result.merge(res)
	}
	return result, nil
}

func (s *Sender) sendBatch(ctx context.Context, queueURL string, messages []BatchMessage) (*BatchResult, error) {
	result := &BatchResult{}
	entries := make([]types.SendMessageBatchRequestEntry, 0, len(messages))

	for _, msg := range messages {
		jsonBody, err := json.Marshal(msg.Body)
		if err != nil {
			result.Failed = append(result.Failed, msg.MessageID)
			continue
		}
		entries = append(entries, types.SendMessageBatchRequestEntry{
			Id:          aws.String(msg.MessageID),
			MessageBody: aws.String(string(jsonBody)),
		})
	}
	if len(entries) == 0 {
		return result, nil
	}

	output, err := s.sqsClient.SendMessageBatch(ctx, &sqs.SendMessageBatchInput{
		QueueUrl: aws.String(queueURL),
		Entries:  entries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send message batch: %w", err)
	}

	for _, ok := range output.Successful {
		result.Successful = append(result.Successful, aws.ToString(ok.Id))
	}
	for _, failed := range output.Failed {
		result.Failed = append(result.Failed, aws.ToString(failed.Id))
	}
	return result, nil
}

// queueURL resolves and memoizes the URL of a queue name
func (s *Sender) queueURL(ctx context.Context, queueName string) (string, error) {
	s.mu.Lock()
	url, ok := s.urls[queueName]
	s.mu.Unlock()
	if ok {
		return url, nil
	}

	url, err := resolveQueueURL(ctx, s.sqsClient, queueName)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.urls[queueName] = url
	s.mu.Unlock()
	return url, nil
}

func resolveQueueURL(ctx context.Context, client SQSClient, queueName string) (string, error) {
	out, err := client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{QueueName: aws.String(queueName)})
	if err != nil {
		return "", fmt.Errorf("failed to get queue URL for %s: %w", queueName, err)
	}
	if out.QueueUrl == nil {
		return "", fmt.Errorf("queue URL is nil for queue %s", queueName)
	}
	return *out.QueueUrl, nil
}

func chunk(messages []BatchMessage, size int) [][]BatchMessage {
	var chunks [][]BatchMessage
	for start := 0; start < len(messages); start += size {
		end := min(start+size, len(messages))
		chunks = append(chunks, messages[start:end])
	}
	return chunks
}

func messageIDs(messages []BatchMessage) []string {
	ids := make([]string, len(messages))
	for i, msg := range messages {
		ids[i] = msg.MessageID
	}
	return ids
}
