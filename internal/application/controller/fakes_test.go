package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"go-weather/internal/application/middleware"
	"go-weather/internal/application/view"
	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/health"
	"go-weather/internal/domain/usecase/lookup"
	"go-weather/internal/domain/usecase/panel"
	"go-weather/internal/domain/usecase/weather"
)

const (
	goodToken = "good"
	userID    = int64(7)
)

type fakeWeather struct {
	weather.UseCase

	out      *model.WeatherOut
	list     []model.WeatherOut
	forecast *model.ForecastResponse
	sun      *model.SunTimesResponse
	rows     []model.ExportRow
	cards    []model.SavedCard
	err      error

	userID  int64
	created model.CreateWeatherDTO
	updated model.UpdateWeatherDTO
	edited  model.EditWeatherDTO
	deleted int64
}

func (f *fakeWeather) Create(_ context.Context, userID int64, dto model.CreateWeatherDTO) (*model.WeatherOut, error) {
	f.userID, f.created = userID, dto
	return f.out, f.err
}

func (f *fakeWeather) List(_ context.Context, userID int64) ([]model.WeatherOut, error) {
	f.userID = userID
	return f.list, f.err
}

func (f *fakeWeather) Get(_ context.Context, userID int64, _ int64) (*model.WeatherOut, error) {
	f.userID = userID
	return f.out, f.err
}

func (f *fakeWeather) Update(_ context.Context, userID int64, _ int64, dto model.UpdateWeatherDTO) (*model.WeatherOut, error) {
	f.userID, f.updated = userID, dto
	return f.out, f.err
}

func (f *fakeWeather) Edit(_ context.Context, userID int64, _ int64, dto model.EditWeatherDTO) error {
	f.userID, f.edited = userID, dto
	return f.err
}

func (f *fakeWeather) Delete(_ context.Context, userID int64, id int64) error {
	f.userID, f.deleted = userID, id
	return f.err
}

func (f *fakeWeather) Forecast(context.Context, int64, int64) (*model.ForecastResponse, error) {
	return f.forecast, f.err
}

func (f *fakeWeather) SunTimes(context.Context, int64, int64) (*model.SunTimesResponse, error) {
	return f.sun, f.err
}

func (f *fakeWeather) Export(context.Context, int64) ([]model.ExportRow, error) {
	return f.rows, f.err
}

func (f *fakeWeather) SavedCards(context.Context, int64) ([]model.SavedCard, error) {
	return f.cards, f.err
}

type fakeUser struct {
	registered *model.UserOut
	token      *model.TokenResponse
	err        error
	dto        model.UserCredentialsDTO
}

func (f *fakeUser) Register(_ context.Context, dto model.UserCredentialsDTO) (*model.UserOut, error) {
	f.dto = dto
	return f.registered, f.err
}

func (f *fakeUser) Login(_ context.Context, dto model.UserCredentialsDTO) (*model.TokenResponse, error) {
	f.dto = dto
	return f.token, f.err
}

func (f *fakeUser) Authenticate(_ context.Context, token string) (*entity.User, error) {
	if token == goodToken {
		return &entity.User{ID: userID, Email: "ana@example.com"}, nil
	}
	return nil, model.ErrUnauthenticated
}

type fakeLookup struct {
	outcome lookup.Outcome
	form    model.LookupForm
	token   string
}

func (f *fakeLookup) Submit(_ context.Context, _ int64, accessToken string, form model.LookupForm) lookup.Outcome {
	f.form, f.token = form, accessToken
	return f.outcome
}

func (f *fakeLookup) Machine(int64) *lookup.Machine {
	return lookup.NewMachine()
}

type fakePanel struct {
	result *panel.ToggleResult
	err    error
	resets []int64
	kind   panel.Kind
	cardID int64
	page   panel.PageState
}

func (f *fakePanel) Toggle(_ context.Context, _ int64, _ string, kind panel.Kind, cardID int64, page panel.PageState) (*panel.ToggleResult, error) {
	f.kind, f.cardID, f.page = kind, cardID, page
	return f.result, f.err
}

func (f *fakePanel) Reset(userID int64) {
	f.resets = append(f.resets, userID)
}

type fakeHealth struct {
	response model.HealthResponse
}

func (f fakeHealth) CheckHealth(context.Context) model.HealthResponse {
	return f.response
}

var _ health.UseCase = fakeHealth{}

type fixture struct {
	e        *echo.Echo
	weather  *fakeWeather
	user     *fakeUser
	lookup   *fakeLookup
	panel    *fakePanel
	renderer *view.Renderer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	renderer, err := view.NewRenderer(view.Options{Location: time.UTC})
	require.NoError(t, err)

	f := &fixture{
		e:        echo.New(),
		weather:  &fakeWeather{},
		user:     &fakeUser{},
		lookup:   &fakeLookup{},
		panel:    &fakePanel{},
		renderer: renderer,
	}
	f.e.Renderer = renderer
	f.e.Use(middleware.CurrentUser(f.user))

	group := f.e.Group("")
	NewWeatherController(group, f.weather).InitWeatherRoutes()
	NewUserController(group, f.user).InitUserRoutes()
	NewLookupController(group, f.lookup, renderer).InitLookupRoutes()
	NewPanelController(group, f.panel, renderer).InitPanelRoutes()
	NewPageController(group, f.weather, f.user, f.panel, PageConfig{CookieTTL: time.Hour}).InitPageRoutes()
	return f
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func signedIn(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: "access_token", Value: goodToken})
	return req
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}
