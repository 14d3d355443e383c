package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("sun")
	require.NoError(t, err)
	assert.Equal(t, KindSun, kind)
	assert.Equal(t, "show-sun", kind.OpenClass())
	assert.Equal(t, "sun-container", kind.ContainerClass())
	assert.Equal(t, "sun-7", kind.ContainerID(7))

	_, err = ParseKind("moon")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestBoardKeepsOnePanelPerKind(t *testing.T) {
	b := NewBoard()

	opened, tokenA, closed := b.Toggle(KindForecast, 1, PageState{})
	assert.True(t, opened)
	assert.Empty(t, closed)
	require.True(t, b.Complete(KindForecast, 1, tokenA, "A"))

	_, sunToken, _ := b.Toggle(KindSun, 1, PageState{})
	require.True(t, b.Complete(KindSun, 1, sunToken, "S"))

	opened, tokenB, closed := b.Toggle(KindForecast, 2, PageState{OpenCard: 1})
	assert.True(t, opened)
	assert.Greater(t, tokenB, tokenA)
	assert.Equal(t, []int64{1}, closed)
	_, ok := b.Content(KindForecast, 1)
	assert.False(t, ok)
	content, ok := b.Content(KindSun, 1)
	assert.True(t, ok, "kinds are independent")
	assert.Equal(t, "S", content)

	opened, _, closed = b.Toggle(KindForecast, 2, PageState{})
	assert.False(t, opened)
	assert.Empty(t, closed)
	assert.False(t, b.Complete(KindForecast, 2, tokenB, "late"))
}

func TestBoardFollowsPageAfterLosingState(t *testing.T) {
	b := NewBoard()

	opened, _, closed := b.Toggle(KindForecast, 10, PageState{Open: true, OpenCard: 10})
	assert.False(t, opened, "a panel the page shows open collapses")
	assert.Empty(t, closed)

	opened, token, closed := b.Toggle(KindSun, 4, PageState{OpenCard: 9})
	assert.True(t, opened)
	assert.Equal(t, []int64{9}, closed)
	require.True(t, b.Complete(KindSun, 4, token, "S"))

	_, _, closed = b.Toggle(KindSun, 5, PageState{OpenCard: 4})
	assert.Equal(t, []int64{4}, closed, "board and page agree on one card")
}

func TestBoardCompleteRejectsStaleToken(t *testing.T) {
	b := NewBoard()
	_, first, _ := b.Toggle(KindSun, 1, PageState{})
	b.Toggle(KindSun, 1, PageState{})
	_, second, _ := b.Toggle(KindSun, 1, PageState{})

	_, ok := b.Content(KindSun, 1)
	assert.False(t, ok, "loading panels have no content")
	assert.False(t, b.Complete(KindSun, 1, first, "stale"))
	assert.False(t, b.Complete(KindSun, 2, second, "wrong card"))
	assert.True(t, b.Complete(KindSun, 1, second, "fresh"))

	content, ok := b.Content(KindSun, 1)
	assert.True(t, ok)
	assert.Equal(t, "fresh", content)
}

func TestBoardPublishesEvents(t *testing.T) {
	b := NewBoard()
	var events []Event
	b.Subscribe(func(e Event) { events = append(events, e) })

	_, token, _ := b.Toggle(KindForecast, 1, PageState{})
	b.Complete(KindForecast, 1, token, "x")
	b.Toggle(KindForecast, 2, PageState{})
	b.Reset()

	types := make([]string, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type.String())
	}
	assert.Equal(t, []string{"opened", "loaded", "closed", "opened", "closed"}, types)
	assert.Equal(t, int64(2), events[4].CardID)
}
