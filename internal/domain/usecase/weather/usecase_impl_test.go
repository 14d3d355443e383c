package weather

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/pkg/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const forecastBody = `{"city":{"name":"Austin","coord":{"lat":30.25,"lon":-97.75}},"list":[
	{"dt_txt":"2024-04-30 21:00:00","main":{"temp":70,"humidity":40},"weather":[{"icon":"01n","description":"clear"}]},
	{"dt_txt":"2024-05-01 12:00:00","main":{"temp":80,"humidity":30},"weather":[{"icon":"01d","description":"sunny"}]},
	{"dt_txt":"2024-05-03 12:00:00","main":{"temp":82,"humidity":35},"weather":[{"icon":"02d","description":"clouds"}]},
	{"dt_txt":"2024-05-04 00:00:00","main":{"temp":65,"humidity":60},"weather":[{"icon":"10n","description":"rain"}]}
]}`

const currentBody = `{"name":"Austin","coord":{"lat":30.25,"lon":-97.75},"main":{"temp":75.5,"humidity":45},"weather":[{"icon":"01d","description":"clear sky"}]}`

func ptr(s string) *string { return &s }

func newUseCase(ow *fakeOpenWeather, gateway *memoryGateway) UseCase {
	return NewWeatherUseCase("refresh", 2, &fakeSender{}, ow, &fakeSun{}, gateway)
}

func TestCreateCurrentWeatherWithoutDates(t *testing.T) {
	ow := &fakeOpenWeather{current: []byte(currentBody)}
	gateway := newMemoryGateway()

	out, err := newUseCase(ow, gateway).Create(context.Background(), 1, model.CreateWeatherDTO{Location: "  Austin  "})

	require.NoError(t, err)
	assert.Equal(t, "Austin", out.Location)
	assert.Equal(t, currentBody, out.Response)
	assert.Equal(t, []string{"current"}, ow.calls)
	assert.Equal(t, api.Location{Query: "Austin,US"}, ow.locations[0])
	assert.Nil(t, out.StartDate)
}

func TestCreateUsesZipForDigits(t *testing.T) {
	ow := &fakeOpenWeather{current: []byte(currentBody)}

	_, err := newUseCase(ow, newMemoryGateway()).Create(context.Background(), 1, model.CreateWeatherDTO{Location: "787 01"})

	require.NoError(t, err)
	assert.Equal(t, api.Location{Zip: "787 01,US"}, ow.locations[0])
}

func TestCreateForecastFiltersToRange(t *testing.T) {
	ow := &fakeOpenWeather{forecast: []byte(forecastBody)}

	out, err := newUseCase(ow, newMemoryGateway()).Create(context.Background(), 1, model.CreateWeatherDTO{
		Location:  "Austin",
		StartDate: ptr("2024-05-01"),
		EndDate:   ptr("2024-05-03"),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"forecast"}, ow.calls)

	var stored struct {
		City struct {
			Name string `json:"name"`
		} `json:"city"`
		List []struct {
			DtTxt string `json:"dt_txt"`
		} `json:"list"`
	}
	require.NoError(t, json.Unmarshal([]byte(out.Response), &stored))
	assert.Equal(t, "Austin", stored.City.Name)
	require.Len(t, stored.List, 2)
	assert.Equal(t, "2024-05-01 12:00:00", stored.List[0].DtTxt)
	assert.Equal(t, "2024-05-03 12:00:00", stored.List[1].DtTxt)
}

func TestCreateSameDayUsesCurrent(t *testing.T) {
	ow := &fakeOpenWeather{current: []byte(currentBody)}

	_, err := newUseCase(ow, newMemoryGateway()).Create(context.Background(), 1, model.CreateWeatherDTO{
		Location: "Austin", StartDate: ptr("2024-05-01"), EndDate: ptr("2024-05-01"),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"current"}, ow.calls)
}

func TestCreateValidation(t *testing.T) {
	uc := newUseCase(&fakeOpenWeather{}, newMemoryGateway())
	ctx := context.Background()

	_, err := uc.Create(ctx, 1, model.CreateWeatherDTO{Location: "Austin", StartDate: ptr("2024-05-03"), EndDate: ptr("2024-05-01")})
	assert.ErrorIs(t, err, model.ErrInvalidDateRange)

	_, err = uc.Create(ctx, 1, model.CreateWeatherDTO{Location: "Austin", StartDate: ptr("2024-05-01"), EndDate: ptr("2024-05-07")})
	assert.ErrorIs(t, err, model.ErrDateRangeTooLong)

	_, err = uc.Create(ctx, 1, model.CreateWeatherDTO{Location: "   "})
	assert.ErrorIs(t, err, model.ErrLocationRequired)

	_, err = uc.Create(ctx, 1, model.CreateWeatherDTO{Location: "Austin", StartDate: ptr("05/01/2024")})
	assert.ErrorIs(t, err, model.ErrInvalidDateFormat)
}

func TestCreateFiveDaySpanIsAllowed(t *testing.T) {
	ow := &fakeOpenWeather{forecast: []byte(forecastBody)}

	_, err := newUseCase(ow, newMemoryGateway()).Create(context.Background(), 1, model.CreateWeatherDTO{
		Location: "Austin", StartDate: ptr("2024-05-01"), EndDate: ptr("2024-05-06"),
	})
	assert.NoError(t, err)
}

func TestCreateUpstreamFailure(t *testing.T) {
	ow := &fakeOpenWeather{err: &http.StatusError{StatusCode: 404}}
	gateway := newMemoryGateway()

	_, err := newUseCase(ow, gateway).Create(context.Background(), 1, model.CreateWeatherDTO{Location: "Nowhere"})

	assert.ErrorIs(t, err, model.ErrUpstream)
	assert.Empty(t, gateway.records)
}

func TestGetHidesOtherUsersRecords(t *testing.T) {
	gateway := newMemoryGateway(entity.WeatherRequest{ID: 5, UserID: 2, Location: "Paris", Response: "{}"})
	uc := newUseCase(&fakeOpenWeather{}, gateway)

	_, err := uc.Get(context.Background(), 1, 5)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = uc.Get(context.Background(), 1, 99)
	assert.ErrorIs(t, err, model.ErrNotFound)

	out, err := uc.Get(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.Equal(t, "Paris", out.Location)

	assert.ErrorIs(t, uc.Delete(context.Background(), 1, 5), model.ErrNotFound)
	assert.NoError(t, uc.Delete(context.Background(), 2, 5))
	assert.Empty(t, gateway.records)
}

func TestUpdateChangesOnlyGivenFields(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	gateway := newMemoryGateway(entity.WeatherRequest{ID: 1, UserID: 1, Location: "Paris", StartDate: &start, Response: "{}"})
	ow := &fakeOpenWeather{}

	out, err := newUseCase(ow, gateway).Update(context.Background(), 1, 1, model.UpdateWeatherDTO{EndDate: ptr("2024-05-02")})

	require.NoError(t, err)
	assert.Equal(t, "Paris", out.Location)
	assert.True(t, start.Equal(*out.StartDate))
	assert.Equal(t, "2024-05-02", out.EndDate.Format(model.DateLayout))
	assert.Empty(t, ow.calls)

	_, err = newUseCase(ow, gateway).Update(context.Background(), 1, 1, model.UpdateWeatherDTO{StartDate: ptr("2024-05-09"), EndDate: ptr("2024-05-02")})
	assert.ErrorIs(t, err, model.ErrInvalidDateRange)
}

func TestEditRefetchesWithPlainQuery(t *testing.T) {
	gateway := newMemoryGateway(entity.WeatherRequest{ID: 1, UserID: 1, Location: "Paris", Response: "{}"})
	ow := &fakeOpenWeather{forecast: []byte(forecastBody)}

	err := newUseCase(ow, gateway).Edit(context.Background(), 1, 1, model.EditWeatherDTO{
		Location: " Austin ", StartDate: "2024-05-01", EndDate: "2024-05-03",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"forecast"}, ow.calls)
	assert.Equal(t, api.Location{Query: "Austin"}, ow.locations[0])
	assert.Equal(t, "Austin", gateway.records[1].Location)
	assert.Equal(t, forecastBody, gateway.records[1].Response)
}

func TestEditRejectsBadInput(t *testing.T) {
	gateway := newMemoryGateway(entity.WeatherRequest{ID: 1, UserID: 1, Location: "Paris", Response: "{}"})
	uc := newUseCase(&fakeOpenWeather{}, gateway)

	assert.ErrorIs(t, uc.Edit(context.Background(), 1, 1, model.EditWeatherDTO{Location: "x", StartDate: "bad"}), model.ErrInvalidDateFormat)
	assert.ErrorIs(t, uc.Edit(context.Background(), 1, 1, model.EditWeatherDTO{Location: "x", StartDate: "2024-05-03", EndDate: "2024-05-01"}), model.ErrInvalidDateRange)
}

func TestForecastKeepsUpstreamStatus(t *testing.T) {
	gateway := newMemoryGateway(entity.WeatherRequest{ID: 1, UserID: 1, Location: "Austin", Response: "{}"})
	ow := &fakeOpenWeather{err: &http.StatusError{StatusCode: 401}}

	_, err := newUseCase(ow, gateway).Forecast(context.Background(), 1, 1)

	var statusErr *http.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, 401, statusErr.StatusCode)
	assert.ErrorIs(t, err, model.ErrUpstream)
}

func TestForecastReturnsBodyAsText(t *testing.T) {
	gateway := newMemoryGateway(entity.WeatherRequest{ID: 1, UserID: 1, Location: "Austin", Response: "{}"})
	ow := &fakeOpenWeather{forecast: []byte(forecastBody)}

	out, err := newUseCase(ow, gateway).Forecast(context.Background(), 1, 1)

	require.NoError(t, err)
	assert.Equal(t, forecastBody, out.Response)
	assert.Equal(t, api.Location{Query: "Austin"}, ow.locations[0])
}

func TestSunTimesUsesStoredCoordinates(t *testing.T) {
	gateway := newMemoryGateway(
		entity.WeatherRequest{ID: 1, UserID: 1, Response: forecastBody},
		entity.WeatherRequest{ID: 2, UserID: 1, Response: `{"name":"x"}`},
		entity.WeatherRequest{ID: 3, UserID: 1, Response: currentBody},
	)
	sun := &fakeSun{}
	uc := NewWeatherUseCase("refresh", 10, nil, &fakeOpenWeather{}, sun, gateway)

	out, err := uc.SunTimes(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T11:45:00+00:00", out.Sunrise)
	assert.InDelta(t, 30.25, sun.lat, 1e-9)
	assert.InDelta(t, -97.75, sun.lon, 1e-9)

	_, err = uc.SunTimes(context.Background(), 1, 2)
	assert.ErrorIs(t, err, model.ErrNoCoordinates)

	sun.err = errors.New("boom")
	_, err = uc.SunTimes(context.Background(), 1, 3)
	assert.ErrorIs(t, err, model.ErrSunAPI)
}

func TestSavedCards(t *testing.T) {
	gateway := newMemoryGateway(
		entity.WeatherRequest{ID: 1, UserID: 1, Response: forecastBody},
		entity.WeatherRequest{ID: 2, UserID: 1, Response: currentBody},
		entity.WeatherRequest{ID: 3, UserID: 1, Response: `{"name":"NoMain"}`},
		entity.WeatherRequest{ID: 4, UserID: 1, Response: `not json`},
		entity.WeatherRequest{ID: 5, UserID: 1, Response: `{"list":[],"name":"Empty","main":{"temp":1,"humidity":2},"weather":[{"icon":"x","description":"y"}]}`},
	)

	cards, err := newUseCase(&fakeOpenWeather{}, gateway).SavedCards(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, model.SavedCard{ID: 1, City: "Austin", Temperature: 70, Humidity: 40, Description: "clear", Icon: "01n"}, cards[0])
	assert.Equal(t, "Austin", cards[1].City)
	assert.Equal(t, 75.5, cards[1].Temperature)
	assert.Equal(t, "Empty", cards[2].City)
}

func TestExportFormatsDates(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 4, 30, 8, 15, 0, 0, time.UTC)
	gateway := newMemoryGateway(entity.WeatherRequest{ID: 1, UserID: 1, Location: "Austin", StartDate: &start, Response: "{}", CreatedAt: created})

	rows, err := newUseCase(&fakeOpenWeather{}, gateway).Export(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-05-01T00:00:00", *rows[0].StartDate)
	assert.Nil(t, rows[0].EndDate)
	assert.Equal(t, "2024-04-30T08:15:00", *rows[0].CreatedAt)
}

func TestRefreshAppliesCreationRules(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).Add(48 * time.Hour)
	gateway := newMemoryGateway(entity.WeatherRequest{ID: 1, UserID: 1, Location: "Austin", StartDate: &start, EndDate: &end, Response: "{}"})
	ow := &fakeOpenWeather{forecast: []byte(forecastBody)}

	require.NoError(t, newUseCase(ow, gateway).Refresh(context.Background(), 1))

	assert.Equal(t, api.Location{Query: "Austin,US"}, ow.locations[0])
	assert.Contains(t, gateway.records[1].Response, "2024-05-03 12:00:00")
	assert.NotContains(t, gateway.records[1].Response, "2024-04-30 21:00:00")

	assert.ErrorIs(t, newUseCase(ow, gateway).Refresh(context.Background(), 42), model.ErrNotFound)
}

func TestEnqueueAllForRefreshPagesByID(t *testing.T) {
	gateway := newMemoryGateway(
		entity.WeatherRequest{ID: 1}, entity.WeatherRequest{ID: 2},
		entity.WeatherRequest{ID: 3}, entity.WeatherRequest{ID: 7},
		entity.WeatherRequest{ID: 9},
	)
	sender := &fakeSender{}
	uc := NewWeatherUseCase("refresh", 2, sender, &fakeOpenWeather{}, &fakeSun{}, gateway)

	require.NoError(t, uc.EnqueueAllForRefresh(context.Background(), "req-1"))

	require.Len(t, sender.batches, 3)
	var ids []int64
	for _, batch := range sender.batches {
		for _, m := range batch {
			body := m.Body.(model.RefreshMessage)
			assert.Equal(t, "req-1", body.RequestID)
			ids = append(ids, body.ID)
		}
	}
	assert.Equal(t, []int64{1, 2, 3, 7, 9}, ids)
}

func TestEnqueueAllForRefreshWithoutQueue(t *testing.T) {
	uc := NewWeatherUseCase("refresh", 2, nil, &fakeOpenWeather{}, &fakeSun{}, newMemoryGateway())
	assert.Error(t, uc.EnqueueAllForRefresh(context.Background(), "req"))
}
