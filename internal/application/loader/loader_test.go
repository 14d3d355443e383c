package loader

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-weather/internal/application/view"
	"go-weather/internal/domain/model"
	"go-weather/pkg/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWeatherAPI struct {
	forecast []byte
	sun      *model.SunTimesResponse
	err      error
	token    string
	id       int64
}

func (f *fakeWeatherAPI) CreateWeather(context.Context, string, model.CreateWeatherDTO) (*model.WeatherOut, error) {
	return nil, errors.New("unused")
}

func (f *fakeWeatherAPI) Forecast(_ context.Context, accessToken string, id int64) ([]byte, error) {
	f.token, f.id = accessToken, id
	return f.forecast, f.err
}

func (f *fakeWeatherAPI) SunTimes(_ context.Context, accessToken string, id int64) (*model.SunTimesResponse, error) {
	f.token, f.id = accessToken, id
	return f.sun, f.err
}

func newRenderer(t *testing.T) *view.Renderer {
	t.Helper()
	r, err := view.NewRenderer(view.Options{Location: time.UTC})
	require.NoError(t, err)
	return r
}

func TestForecastLoaderDecodesEnvelope(t *testing.T) {
	api := &fakeWeatherAPI{forecast: []byte(`{"response":"{\"list\":[{\"dt_txt\":\"2024-01-01 09:00:00\",\"main\":{\"temp\":50,\"humidity\":20},\"weather\":[{\"icon\":\"01d\",\"description\":\"early\"}]},{\"dt_txt\":\"2024-01-01 12:00:00\",\"main\":{\"temp\":55,\"humidity\":25},\"weather\":[{\"icon\":\"02d\",\"description\":\"noon\"}]}]}"}`)}

	html, err := NewForecastLoader(api, newRenderer(t)).Load(context.Background(), "tok", 4)

	require.NoError(t, err)
	assert.Equal(t, "tok", api.token)
	assert.Equal(t, int64(4), api.id)
	assert.Contains(t, html, "noon")
	assert.NotContains(t, html, "early")
}

func TestForecastLoaderMissingListRendersNothing(t *testing.T) {
	api := &fakeWeatherAPI{forecast: []byte(`{"response":"{}"}`)}

	html, err := NewForecastLoader(api, newRenderer(t)).Load(context.Background(), "tok", 4)

	require.NoError(t, err)
	assert.Empty(t, html)
}

func TestForecastLoaderErrors(t *testing.T) {
	l := NewForecastLoader(&fakeWeatherAPI{forecast: []byte(`{"response":"nope"}`)}, newRenderer(t))
	_, err := l.Load(context.Background(), "tok", 1)
	assert.ErrorIs(t, err, model.ErrMalformedPayload)

	assert.Equal(t, `<p class="error">Forecast load failed</p>`, l.Failure(err))
}

func TestSunLoader(t *testing.T) {
	api := &fakeWeatherAPI{sun: &model.SunTimesResponse{Sunrise: "2024-05-01T11:45:00+00:00", Sunset: "2024-05-02T01:10:00+00:00"}}

	html, err := NewSunLoader(api, newRenderer(t)).Load(context.Background(), "tok", 9)

	require.NoError(t, err)
	assert.Contains(t, html, "Sunrise: 11:45:00 AM")
	assert.Contains(t, html, "Sunset:  1:10:00 AM")
}

func TestSunLoaderFailure(t *testing.T) {
	l := NewSunLoader(&fakeWeatherAPI{err: &http.StatusError{StatusCode: 502}}, newRenderer(t))

	_, err := l.Load(context.Background(), "tok", 9)
	require.Error(t, err)
	assert.Equal(t, `<p class="error">Sun times load failed</p>`, l.Failure(err))

	bad := NewSunLoader(&fakeWeatherAPI{sun: &model.SunTimesResponse{Sunrise: "dawn", Sunset: "dusk"}}, newRenderer(t))
	_, err = bad.Load(context.Background(), "tok", 9)
	assert.ErrorIs(t, err, model.ErrMalformedPayload)
}
