// Package forecast collapses 3-hourly forecast samples into one sample per calendar day.
package forecast

import (
	"sort"
	"strings"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
)

// preferredTime is the slot that wins over any other sample of the same day.
const preferredTime = "12:00:00"

// PickDaily chooses one sample per day. The noon sample wins if present,
// otherwise the first sample seen for that day is kept.
func PickDaily(samples []model.ForecastSample) model.DailyPick {
	pick := make(model.DailyPick)
	for _, s := range samples {
		day, clock, _ := strings.Cut(s.Timestamp, " ")
		if _, seen := pick[day]; !seen || clock == preferredTime {
			pick[day] = s
		}
	}
	return pick
}

// Days returns the picked samples ordered by day.
func Days(pick model.DailyPick) []model.DayForecast {
	days := make([]model.DayForecast, 0, len(pick))
	for day, s := range pick {
		days = append(days, model.DayForecast{Day: day, Sample: s})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })
	return days
}

// Reduce is Days(PickDaily(samples)).
func Reduce(samples []model.ForecastSample) []model.DayForecast {
	return Days(PickDaily(samples))
}

// SamplesFromPayload converts the forecast list of a payload. A missing list yields no samples.
func SamplesFromPayload(p *external.WeatherPayload) []model.ForecastSample {
	items := p.Items()
	samples := make([]model.ForecastSample, 0, len(items))
	for _, item := range items {
		samples = append(samples, SampleFromItem(item))
	}
	return samples
}

// SampleFromItem maps one list entry. Missing main or weather blocks leave zero values.
func SampleFromItem(item external.ForecastItem) model.ForecastSample {
	w := external.FirstWeather(item.Weather)
	s := model.ForecastSample{
		Timestamp:          item.DtTxt,
		WeatherIcon:        w.Icon,
		WeatherDescription: w.Description,
	}
	if item.Main != nil {
		s.Temperature = item.Main.Temp
		s.Humidity = int(item.Main.Humidity)
	}
	return s
}

// CurrentFromPayload maps a current-weather payload.
func CurrentFromPayload(p *external.WeatherPayload) model.CurrentWeather {
	w := external.FirstWeather(p.Weather)
	c := model.CurrentWeather{
		Name:        p.Name,
		Icon:        w.Icon,
		Description: w.Description,
	}
	if p.Main != nil {
		c.Temperature = p.Main.Temp
		c.Humidity = int(p.Main.Humidity)
	}
	return c
}
