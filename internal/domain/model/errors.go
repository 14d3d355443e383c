package model

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidDateRange   = errors.New("start_date must be on or before end_date")
	ErrInvalidDateFormat  = errors.New("invalid date format")
	ErrDateRangeTooLong   = errors.New("date range cannot exceed 5 days on free API")
	ErrLocationRequired   = errors.New("location is required")
	ErrUpstream           = errors.New("location not found or API error")
	ErrNoCoordinates      = errors.New("no coordinates available")
	ErrSunAPI             = errors.New("sun API error")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrMalformedPayload   = errors.New("malformed weather payload")
	ErrMissingCredentials = errors.New("email and password are required")
)
