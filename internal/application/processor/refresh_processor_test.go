package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/weather"
)

type refreshUseCase struct {
	weather.UseCase
	ids []int64
	err error
}

func (f *refreshUseCase) Refresh(_ context.Context, id int64) error {
	f.ids = append(f.ids, id)
	return f.err
}

func message(body string) types.Message {
	return types.Message{MessageId: aws.String("m-1"), Body: aws.String(body)}
}

func TestHandleMessageRefreshesLookup(t *testing.T) {
	uc := &refreshUseCase{}
	err := NewRefreshProcessor(uc).HandleMessage(context.Background(), message(`{"id":42,"requestId":"r-1"}`))

	require.NoError(t, err)
	assert.Equal(t, []int64{42}, uc.ids)
}

func TestHandleMessageAcknowledgesDeletedLookup(t *testing.T) {
	uc := &refreshUseCase{err: model.ErrNotFound}
	err := NewRefreshProcessor(uc).HandleMessage(context.Background(), message(`{"id":7}`))

	assert.NoError(t, err)
}

func TestHandleMessageReturnsRefreshFailure(t *testing.T) {
	uc := &refreshUseCase{err: errors.New("upstream down")}
	err := NewRefreshProcessor(uc).HandleMessage(context.Background(), message(`{"id":7}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestHandleMessageRejectsBadBody(t *testing.T) {
	uc := &refreshUseCase{}
	p := NewRefreshProcessor(uc)

	assert.Error(t, p.HandleMessage(context.Background(), message(`not json`)))
	assert.Error(t, p.HandleMessage(context.Background(), types.Message{}))
	assert.Empty(t, uc.ids)
}
