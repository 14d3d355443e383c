package panel

import "context"

// Loader fetches and renders the content of one kind of panel.
type Loader interface {
	// Load fetches the panel content for cardID with the session's access token
	Load(ctx context.Context, accessToken string, cardID int64) (string, error)

	// Failure renders the line shown when Load fails
	Failure(err error) string
}

type ToggleResult struct {
	Kind   Kind
	CardID int64
	// Opened is false for a pure collapse.
	Opened  bool
	Content string
	// Closed holds the other cards whose panel of Kind this toggle closed.
	Closed []int64
	// Superseded is set when a later toggle replaced this request before it finished.
	Superseded bool
}

type UseCase interface {
	// Toggle opens or collapses cardID's panel of kind, closing any other open panel of that kind.
	// page carries what the browser showed, which wins over a board that was swept or reset.
	Toggle(ctx context.Context, userID int64, accessToken string, kind Kind, cardID int64, page PageState) (*ToggleResult, error)

	// Reset closes every panel of the session, used when the home page is rendered again
	Reset(userID int64)
}
