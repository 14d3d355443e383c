package model

import "time"

// ForecastSample is one timestamped forecast entry. Timestamp has the form "YYYY-MM-DD HH:MM:SS".
type ForecastSample struct {
	Timestamp          string
	Temperature        float64
	Humidity           int
	WeatherIcon        string
	WeatherDescription string
}

// DailyPick maps a calendar day to the sample chosen for it.
type DailyPick map[string]ForecastSample

// DayForecast is one entry of the day-sorted forecast strip.
type DayForecast struct {
	Day    string
	Sample ForecastSample
}

// CurrentWeather is the single-card view of a current-weather payload.
type CurrentWeather struct {
	Name        string
	Temperature float64
	Humidity    int
	Icon        string
	Description string
}

// SunTimes carries the parsed sunrise and sunset instants.
type SunTimes struct {
	Sunrise time.Time
	Sunset  time.Time
}

// SavedCard is what the home page shows for one saved lookup.
type SavedCard struct {
	ID          int64
	City        string
	Temperature float64
	Humidity    int
	Description string
	Icon        string
}
