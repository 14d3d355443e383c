package panel

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var ErrUnknownKind = errors.New("unknown panel kind")

// Kind names a family of panels of which at most one card may be open at a time.
type Kind string

const (
	KindForecast Kind = "forecast"
	KindSun      Kind = "sun"
)

func ParseKind(value string) (Kind, error) {
	switch Kind(value) {
	case KindForecast, KindSun:
		return Kind(value), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, value)
}

// OpenClass is the card class marking the panel as open ("show-forecast").
func (k Kind) OpenClass() string {
	return "show-" + string(k)
}

// ContainerClass is the class of the panel container ("forecast-container").
func (k Kind) ContainerClass() string {
	return string(k) + "-container"
}

// ContainerID is the element id of a card's panel container ("forecast-12").
func (k Kind) ContainerID(cardID int64) string {
	return fmt.Sprintf("%s-%d", k, cardID)
}

type EventType int

const (
	EventOpened EventType = iota
	EventLoaded
	EventClosed
)

func (t EventType) String() string {
	switch t {
	case EventOpened:
		return "opened"
	case EventLoaded:
		return "loaded"
	case EventClosed:
		return "closed"
	default:
		return "unknown"
	}
}

type Event struct {
	Type   EventType
	Kind   Kind
	CardID int64
	Token  uint64
}

type openPanel struct {
	cardID  int64
	token   uint64
	content string
	loaded  bool
}

// Board holds which card has each kind of panel open, with the request token and content of that panel.
type Board struct {
	mu          sync.Mutex
	open        map[Kind]*openPanel
	tokens      uint64
	subscribers []func(Event)
}

func NewBoard() *Board {
	return &Board{open: make(map[Kind]*openPanel)}
}

// Subscribe registers fn for every event. fn runs outside the board lock.
func (b *Board) Subscribe(fn func(Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// PageState is what the page showed for a kind when a toggle was clicked.
type PageState struct {
	// Open is set when the clicked card's panel was shown open.
	Open bool
	// OpenCard is the card whose panel of the kind was shown open, 0 for none.
	OpenCard int64
}

// Toggle closes whichever card has kind open, on the board or on the page. Unless
// that card was cardID, it then opens cardID under a new token. closed lists the
// cards other than cardID that were closed.
func (b *Board) Toggle(kind Kind, cardID int64, page PageState) (opened bool, token uint64, closed []int64) {
	b.mu.Lock()
	var events []Event

	wasOpen := page.Open
	if current, ok := b.open[kind]; ok {
		if current.cardID == cardID {
			wasOpen = true
		} else {
			closed = append(closed, current.cardID)
		}
		delete(b.open, kind)
		events = append(events, Event{Type: EventClosed, Kind: kind, CardID: current.cardID, Token: current.token})
	}
	if page.OpenCard > 0 && page.OpenCard != cardID && !slices.Contains(closed, page.OpenCard) {
		closed = append(closed, page.OpenCard)
	}

	if !wasOpen {
		b.tokens++
		token = b.tokens
		b.open[kind] = &openPanel{cardID: cardID, token: token}
		opened = true
		events = append(events, Event{Type: EventOpened, Kind: kind, CardID: cardID, Token: token})
	}

	subscribers := b.subscribers
	b.mu.Unlock()

	publish(subscribers, events)
	return opened, token, closed
}

// Complete stores content for the open panel if token still identifies it.
// It returns false when the request was superseded by a later toggle.
func (b *Board) Complete(kind Kind, cardID int64, token uint64, content string) bool {
	b.mu.Lock()
	current, ok := b.open[kind]
	if !ok || current.cardID != cardID || current.token != token {
		b.mu.Unlock()
		return false
	}
	current.content = content
	current.loaded = true
	subscribers := b.subscribers
	b.mu.Unlock()

	publish(subscribers, []Event{{Type: EventLoaded, Kind: kind, CardID: cardID, Token: token}})
	return true
}

// Content returns the loaded content of cardID's panel. Closed or loading panels have none.
func (b *Board) Content(kind Kind, cardID int64) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	current, ok := b.open[kind]
	if !ok || current.cardID != cardID || !current.loaded {
		return "", false
	}
	return current.content, true
}

// Reset closes every panel.
func (b *Board) Reset() {
	b.mu.Lock()
	var events []Event
	for kind, current := range b.open {
		events = append(events, Event{Type: EventClosed, Kind: kind, CardID: current.cardID, Token: current.token})
	}
	b.open = make(map[Kind]*openPanel)
	subscribers := b.subscribers
	b.mu.Unlock()

	publish(subscribers, events)
}

func publish(subscribers []func(Event), events []Event) {
	for _, e := range events {
		for _, fn := range subscribers {
			fn(e)
		}
	}
}
