package forecast

import (
	"testing"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(ts string, temp float64) model.ForecastSample {
	return model.ForecastSample{Timestamp: ts, Temperature: temp, Humidity: 50, WeatherIcon: "01d", WeatherDescription: "clear"}
}

func TestReduceTwoDays(t *testing.T) {
	samples := []model.ForecastSample{
		sample("2024-05-02 09:00:00", 60),
		sample("2024-05-01 09:00:00", 61),
		sample("2024-05-01 12:00:00", 70),
		sample("2024-05-01 15:00:00", 72),
		sample("2024-05-02 18:00:00", 55),
	}

	days := Reduce(samples)

	require.Len(t, days, 2)
	assert.Equal(t, "2024-05-01", days[0].Day)
	assert.Equal(t, 70.0, days[0].Sample.Temperature)
	assert.Equal(t, "2024-05-02", days[1].Day)
	assert.Equal(t, 60.0, days[1].Sample.Temperature)
}

func TestPickDailyFirstSampleWithoutNoon(t *testing.T) {
	pick := PickDaily([]model.ForecastSample{
		sample("2024-05-01 03:00:00", 1),
		sample("2024-05-01 06:00:00", 2),
	})

	assert.Equal(t, 1.0, pick["2024-05-01"].Temperature)
}

func TestPickDailyLaterNoonReplacesEarlierChoice(t *testing.T) {
	pick := PickDaily([]model.ForecastSample{
		sample("2024-05-01 21:00:00", 1),
		sample("2024-05-01 12:00:00", 2),
		sample("2024-05-01 23:00:00", 3),
	})

	assert.Equal(t, 2.0, pick["2024-05-01"].Temperature)
}

func TestReduceProperties(t *testing.T) {
	samples := []model.ForecastSample{
		sample("2024-05-03 00:00:00", 1),
		sample("2024-05-01 12:00:00", 2),
		sample("2024-05-02 12:00:00", 3),
		sample("2024-05-01 15:00:00", 4),
		sample("2024-05-03 12:00:00", 5),
	}

	days := Reduce(samples)

	seen := map[string]bool{}
	for i, d := range days {
		assert.False(t, seen[d.Day], "day %s repeated", d.Day)
		seen[d.Day] = true
		if i > 0 {
			assert.Less(t, days[i-1].Day, d.Day)
		}
		assert.Contains(t, samples, d.Sample)
	}
	assert.Len(t, days, 3)
	assert.Equal(t, Reduce(samples), days)
}

func TestReduceEmpty(t *testing.T) {
	assert.Empty(t, Reduce(nil))
}

func TestTimestampWithoutSpaceIsWholeDay(t *testing.T) {
	pick := PickDaily([]model.ForecastSample{sample("2024-05-01", 9)})
	assert.Equal(t, 9.0, pick["2024-05-01"].Temperature)
}

func TestSamplesFromPayload(t *testing.T) {
	payload, err := external.DecodePayload(`{"list":[
		{"dt_txt":"2024-05-01 12:00:00","main":{"temp":80.5,"humidity":40},"weather":[{"icon":"01d","description":"clear sky"}]},
		{"dt_txt":"2024-05-01 15:00:00","main":{"temp":81,"humidity":41},"weather":[]}
	]}`)
	require.NoError(t, err)

	samples := SamplesFromPayload(payload)

	require.Len(t, samples, 2)
	assert.Equal(t, model.ForecastSample{Timestamp: "2024-05-01 12:00:00", Temperature: 80.5, Humidity: 40, WeatherIcon: "01d", WeatherDescription: "clear sky"}, samples[0])
	assert.Empty(t, samples[1].WeatherIcon)
	assert.Empty(t, samples[1].WeatherDescription)
}

func TestSamplesFromPayloadWithoutList(t *testing.T) {
	payload, err := external.DecodePayload(`{"name":"Paris"}`)
	require.NoError(t, err)
	assert.Empty(t, SamplesFromPayload(payload))

	payload, err = external.DecodePayload(`{"list":null}`)
	require.NoError(t, err)
	assert.Empty(t, SamplesFromPayload(payload))
}

func TestCurrentFromPayload(t *testing.T) {
	payload, err := external.DecodePayload(`{"name":"Paris","main":{"temp":60.2,"humidity":70},"weather":[{"icon":"10d","description":"light rain"}]}`)
	require.NoError(t, err)

	assert.Equal(t, model.CurrentWeather{Name: "Paris", Temperature: 60.2, Humidity: 70, Icon: "10d", Description: "light rain"}, CurrentFromPayload(payload))
}
