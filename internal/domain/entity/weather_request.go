package entity

import "time"

// WeatherRequest is a saved lookup. Response holds the raw upstream JSON.
type WeatherRequest struct {
	ID        int64
	UserID    int64
	Location  string
	StartDate *time.Time
	EndDate   *time.Time
	Response  string
	CreatedAt time.Time
}

// OwnedBy reports whether the record belongs to userID.
func (w *WeatherRequest) OwnedBy(userID int64) bool {
	return w != nil && w.UserID == userID
}
