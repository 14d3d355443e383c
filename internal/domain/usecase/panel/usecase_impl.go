package panel

import (
	"context"
	"fmt"

	"go-weather/internal/domain/usecase/session"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"go.uber.org/zap"
)

type panelUseCase struct {
	loaders  map[Kind]Loader
	sessions *session.Store[*Board]
}

func NewPanelUseCase(loaders map[Kind]Loader, sessions *session.Store[*Board]) UseCase {
	return &panelUseCase{loaders: loaders, sessions: sessions}
}

// NewSessions builds the per-user board registry. subscriber, when set, is attached to every new board.
func NewSessions(subscriber func(userID int64, e Event)) *session.Store[*Board] {
	return session.NewStore(func(userID int64) *Board {
		board := NewBoard()
		if subscriber != nil {
			board.Subscribe(func(e Event) { subscriber(userID, e) })
		}
		return board
	})
}

// LogEvents is a subscriber that writes board events to the debug log.
func LogEvents(userID int64, e Event) {
	log.Debug(msg.GetMessage("panel.event", e.Kind, e.Type, e.CardID),
		zap.Int64("user_id", userID),
		zap.Uint64("token", e.Token))
}

func (uc *panelUseCase) Reset(userID int64) {
	uc.sessions.Get(userID).Reset()
}

func (uc *panelUseCase) Toggle(ctx context.Context, userID int64, accessToken string, kind Kind, cardID int64, page PageState) (*ToggleResult, error) {
	loader, ok := uc.loaders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	board := uc.sessions.Get(userID)
	opened, token, closed := board.Toggle(kind, cardID, page)
	result := &ToggleResult{Kind: kind, CardID: cardID, Opened: opened, Closed: closed}
	if !opened {
		return result, nil
	}

	content, err := loader.Load(ctx, accessToken, cardID)
	if err != nil {
		log.Warn(msg.GetMessage("panel.load-failed", kind, cardID), zap.Int64("user_id", userID), zap.Error(err))
		content = loader.Failure(err)
	}

	if !board.Complete(kind, cardID, token, content) {
		result.Superseded = true
		return result, nil
	}
	// rendering reads the board; a toggle since Complete leaves nothing to render
	if result.Content, ok = board.Content(kind, cardID); !ok {
		result.Superseded = true
	}
	return result, nil
}
