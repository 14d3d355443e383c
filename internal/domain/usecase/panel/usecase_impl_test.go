package panel

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-weather/internal/domain/usecase/session"
	"go-weather/pkg/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoader struct {
	calls   []int64
	content string
	err     error
	during  func()
}

func (f *fakeLoader) Load(_ context.Context, _ string, cardID int64) (string, error) {
	f.calls = append(f.calls, cardID)
	if f.during != nil {
		f.during()
	}
	return f.content, f.err
}

func (f *fakeLoader) Failure(error) string {
	return `<p class="error">Sun times load failed</p>`
}

func newToggler(forecast, sun *fakeLoader) (UseCase, *session.Store[*Board]) {
	sessions := NewSessions(nil)
	return NewPanelUseCase(map[Kind]Loader{KindForecast: forecast, KindSun: sun}, sessions), sessions
}

func TestToggleOpenThenCollapse(t *testing.T) {
	forecast := &fakeLoader{content: "<div>days</div>"}
	uc, _ := newToggler(forecast, &fakeLoader{})
	ctx := context.Background()

	result, err := uc.Toggle(ctx, 1, "tok", KindForecast, 10, PageState{})
	require.NoError(t, err)
	assert.True(t, result.Opened)
	assert.Equal(t, "<div>days</div>", result.Content)
	assert.Len(t, forecast.calls, 1)

	result, err = uc.Toggle(ctx, 1, "tok", KindForecast, 10, PageState{})
	require.NoError(t, err)
	assert.False(t, result.Opened)
	assert.Empty(t, result.Content)
	assert.Len(t, forecast.calls, 1, "collapse issues no fetch")
}

func TestToggleMovesPanelBetweenCards(t *testing.T) {
	forecast := &fakeLoader{content: "B"}
	uc, sessions := newToggler(forecast, &fakeLoader{})
	ctx := context.Background()

	_, err := uc.Toggle(ctx, 1, "tok", KindForecast, 1, PageState{})
	require.NoError(t, err)
	result, err := uc.Toggle(ctx, 1, "tok", KindForecast, 2, PageState{OpenCard: 1})
	require.NoError(t, err)

	assert.True(t, result.Opened)
	assert.Equal(t, []int64{1}, result.Closed)
	assert.Equal(t, []int64{1, 2}, forecast.calls)
	_, ok := sessions.Get(1).Content(KindForecast, 1)
	assert.False(t, ok)
	content, ok := sessions.Get(1).Content(KindForecast, 2)
	assert.True(t, ok)
	assert.Equal(t, "B", content)
}

func TestToggleSunFailureRendersMessage(t *testing.T) {
	sun := &fakeLoader{err: &http.StatusError{StatusCode: 502}}
	uc, sessions := newToggler(&fakeLoader{}, sun)

	var result *ToggleResult
	var err error
	assert.NotPanics(t, func() {
		result, err = uc.Toggle(context.Background(), 1, "tok", KindSun, 3, PageState{})
	})
	require.NoError(t, err)
	assert.True(t, result.Opened)
	assert.Equal(t, `<p class="error">Sun times load failed</p>`, result.Content)
	_, ok := sessions.Get(1).Content(KindSun, 3)
	assert.True(t, ok)
}

func TestToggleSupersededWhileLoading(t *testing.T) {
	forecast := &fakeLoader{content: "late"}
	uc, sessions := newToggler(forecast, &fakeLoader{})
	forecast.during = func() {
		forecast.during = nil
		sessions.Get(1).Toggle(KindForecast, 5, PageState{})
	}

	result, err := uc.Toggle(context.Background(), 1, "tok", KindForecast, 5, PageState{})

	require.NoError(t, err)
	assert.True(t, result.Superseded)
	assert.Empty(t, result.Content)
	_, ok := sessions.Get(1).Content(KindForecast, 5)
	assert.False(t, ok)
}

func TestToggleSessionsAreIndependent(t *testing.T) {
	uc, sessions := newToggler(&fakeLoader{content: "x"}, &fakeLoader{})
	ctx := context.Background()

	_, err := uc.Toggle(ctx, 1, "tok", KindForecast, 1, PageState{})
	require.NoError(t, err)
	result, err := uc.Toggle(ctx, 2, "tok", KindForecast, 2, PageState{})
	require.NoError(t, err)

	assert.Empty(t, result.Closed)
	_, ok := sessions.Get(1).Content(KindForecast, 1)
	assert.True(t, ok)

	uc.Reset(1)
	_, ok = sessions.Get(1).Content(KindForecast, 1)
	assert.False(t, ok)
}

func TestToggleCollapsesAfterSessionSweep(t *testing.T) {
	forecast := &fakeLoader{content: "days"}
	uc, sessions := newToggler(forecast, &fakeLoader{})
	ctx := context.Background()

	result, err := uc.Toggle(ctx, 1, "tok", KindForecast, 10, PageState{})
	require.NoError(t, err)
	require.True(t, result.Opened)

	time.Sleep(2 * time.Millisecond)
	require.Equal(t, 1, sessions.Sweep(time.Millisecond))

	result, err = uc.Toggle(ctx, 1, "tok", KindForecast, 10, PageState{Open: true, OpenCard: 10})
	require.NoError(t, err)
	assert.False(t, result.Opened)
	assert.Len(t, forecast.calls, 1, "collapse issues no fetch")
}

func TestToggleClosesPanelOpenedBeforeReset(t *testing.T) {
	forecast := &fakeLoader{content: "days"}
	uc, _ := newToggler(forecast, &fakeLoader{})
	ctx := context.Background()

	_, err := uc.Toggle(ctx, 1, "tok", KindForecast, 3, PageState{})
	require.NoError(t, err)
	uc.Reset(1)

	result, err := uc.Toggle(ctx, 1, "tok", KindForecast, 4, PageState{OpenCard: 3})
	require.NoError(t, err)
	assert.True(t, result.Opened)
	assert.Equal(t, []int64{3}, result.Closed)
	assert.Equal(t, []int64{3, 4}, forecast.calls)
}

func TestToggleUnknownKind(t *testing.T) {
	uc := NewPanelUseCase(map[Kind]Loader{}, NewSessions(nil))
	_, err := uc.Toggle(context.Background(), 1, "tok", KindSun, 1, PageState{})
	assert.True(t, errors.Is(err, ErrUnknownKind))
}
