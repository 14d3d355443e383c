package model

import "strings"

// LookupForm is the #weatherForm submission. Empty date inputs arrive as "".
type LookupForm struct {
	Location  string `form:"location"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// CreateDTO trims the location and turns empty dates into null.
func (f LookupForm) CreateDTO() CreateWeatherDTO {
	return CreateWeatherDTO{
		Location:  strings.TrimSpace(f.Location),
		StartDate: nullIfEmpty(f.StartDate),
		EndDate:   nullIfEmpty(f.EndDate),
	}
}

func nullIfEmpty(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
