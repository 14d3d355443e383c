package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/sqs"
)

type RefreshProcessor struct {
	weatherUseCase weather.UseCase
}

var _ sqs.Handler = (*RefreshProcessor)(nil)

func NewRefreshProcessor(weatherUseCase weather.UseCase) *RefreshProcessor {
	return &RefreshProcessor{weatherUseCase: weatherUseCase}
}

// HandleMessage implements the sqs.Handler interface. A lookup deleted since the
// message was sent is acknowledged without retry.
func (p *RefreshProcessor) HandleMessage(ctx context.Context, message types.Message) error {
	if message.Body == nil {
		return fmt.Errorf("received message without body")
	}

	var refresh model.RefreshMessage
	if err := json.Unmarshal([]byte(*message.Body), &refresh); err != nil {
		return fmt.Errorf("failed to unmarshal refresh message: %w", err)
	}

	fields := []zap.Field{
		zap.String("message_id", aws.ToString(message.MessageId)),
		zap.String("request_id", refresh.RequestID),
		zap.Int64("weather_id", refresh.ID),
	}

	err := p.weatherUseCase.Refresh(ctx, refresh.ID)
	if err == nil {
		log.Info(msg.GetMessage("refresh.processed"), fields...)
		return nil
	}
	if errors.Is(err, model.ErrNotFound) {
		log.Warn(msg.GetMessage("refresh.skipped"), fields...)
		return nil
	}
	return fmt.Errorf("failed to refresh weather %d: %w", refresh.ID, err)
}
