package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"go-weather/internal/application/middleware"
	"go-weather/internal/application/view"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/panel"
	"go-weather/internal/domain/usecase/user"
	"go-weather/internal/domain/usecase/weather"
	httpclient "go-weather/pkg/http"
	"go-weather/pkg/util/numberutils"
)

// PageConfig holds what the page routes need beyond the use cases.
type PageConfig struct {
	BasePath     string
	CookieTTL    time.Duration
	SecureCookie bool
}

// PageController serves the server-rendered pages and their form posts.
type PageController struct {
	api            *echo.Group
	weatherUseCase weather.UseCase
	userUseCase    user.UseCase
	panelUseCase   panel.UseCase
	config         PageConfig
}

func NewPageController(api *echo.Group, weatherUseCase weather.UseCase, userUseCase user.UseCase, panelUseCase panel.UseCase, config PageConfig) *PageController {
	return &PageController{
		api:            api,
		weatherUseCase: weatherUseCase,
		userUseCase:    userUseCase,
		panelUseCase:   panelUseCase,
		config:         config,
	}
}

// InitPageRoutes initializes the HTML routes
func (controller *PageController) InitPageRoutes() {
	requirePage := middleware.RequirePageUser(controller.path("/login"))

	controller.api.GET("/", controller.Home)
	controller.api.GET("/history", controller.Home, requirePage)
	controller.api.GET("/weather-ui", controller.WeatherForm, requirePage)
	controller.api.GET("/register", controller.RegisterPage)
	controller.api.POST("/register", controller.RegisterSubmit)
	controller.api.GET("/login", controller.LoginPage)
	controller.api.POST("/login", controller.LoginSubmit)
	controller.api.GET("/logout", controller.Logout)
	controller.api.GET("/history/:id/edit", controller.EditPage, requirePage)
	controller.api.POST("/history/:id/edit", controller.EditSubmit, requirePage)
	controller.api.POST("/history/:id/delete", controller.Delete, requirePage)
}

func (controller *PageController) path(p string) string {
	return controller.config.BasePath + p
}

func (controller *PageController) page(c echo.Context, title string) view.Page {
	p := view.Page{Title: title}
	if u := middleware.UserFrom(c); u != nil {
		p.SignedIn = true
		p.Email = u.Email
	}
	return p
}

// Home shows the index to anonymous visitors and the saved cards otherwise.
// Rendering the cards starts a fresh panel board for the session.
func (controller *PageController) Home(c echo.Context) error {
	u := middleware.UserFrom(c)
	if u == nil {
		return c.Render(http.StatusOK, view.PageIndex, controller.page(c, "Welcome"))
	}

	cards, err := controller.weatherUseCase.SavedCards(c.Request().Context(), u.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	controller.panelUseCase.Reset(u.ID)

	page := controller.page(c, "Saved lookups")
	page.Data = cards
	return c.Render(http.StatusOK, view.PageHome, page)
}

func (controller *PageController) WeatherForm(c echo.Context) error {
	return c.Render(http.StatusOK, view.PageWeather, controller.page(c, "Look up the weather"))
}

func (controller *PageController) RegisterPage(c echo.Context) error {
	if middleware.UserFrom(c) != nil {
		return c.Redirect(http.StatusSeeOther, controller.path("/"))
	}
	return c.Render(http.StatusOK, view.PageRegister, controller.page(c, "Register"))
}

func (controller *PageController) RegisterSubmit(c echo.Context) error {
	var dto model.UserCredentialsDTO
	if err := c.Bind(&dto); err != nil {
		return controller.formError(c, view.PageRegister, "Register", http.StatusBadRequest, "Invalid form")
	}

	_, err := controller.userUseCase.Register(c.Request().Context(), dto)
	switch {
	case errors.Is(err, model.ErrEmailTaken):
		return controller.formError(c, view.PageRegister, "Register", http.StatusBadRequest, "Email already registered")
	case errors.Is(err, model.ErrMissingCredentials):
		return controller.formError(c, view.PageRegister, "Register", http.StatusBadRequest, "Email and password are required")
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.Redirect(http.StatusSeeOther, controller.path("/login"))
}

func (controller *PageController) LoginPage(c echo.Context) error {
	if middleware.UserFrom(c) != nil {
		return c.Redirect(http.StatusSeeOther, controller.path("/"))
	}
	return c.Render(http.StatusOK, view.PageLogin, controller.page(c, "Log in"))
}

func (controller *PageController) LoginSubmit(c echo.Context) error {
	var dto model.UserCredentialsDTO
	if err := c.Bind(&dto); err != nil {
		return controller.formError(c, view.PageLogin, "Log in", http.StatusBadRequest, "Invalid form")
	}

	token, err := controller.userUseCase.Login(c.Request().Context(), dto)
	if errors.Is(err, model.ErrInvalidCredentials) {
		return controller.formError(c, view.PageLogin, "Log in", http.StatusUnauthorized, "Bad credentials")
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	c.SetCookie(&http.Cookie{
		Name:     api.AccessTokenCookie,
		Value:    token.AccessToken,
		Path:     controller.path("/"),
		MaxAge:   int(controller.config.CookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   controller.config.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, controller.path("/"))
}

func (controller *PageController) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     api.AccessTokenCookie,
		Value:    "",
		Path:     controller.path("/"),
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusSeeOther, controller.path("/"))
}

func (controller *PageController) EditPage(c echo.Context) error {
	id, err := numberutils.ToPositiveInt64(c.Param("id"))
	if err != nil {
		return invalidID(c)
	}

	out, err := controller.weatherUseCase.Get(c.Request().Context(), middleware.UserFrom(c).ID, id)
	if errors.Is(err, model.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	page := controller.page(c, "Edit lookup")
	page.Data = out
	return c.Render(http.StatusOK, view.PageEdit, page)
}

func (controller *PageController) EditSubmit(c echo.Context) error {
	id, err := numberutils.ToPositiveInt64(c.Param("id"))
	if err != nil {
		return invalidID(c)
	}

	var dto model.EditWeatherDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid form"})
	}

	err = controller.weatherUseCase.Edit(c.Request().Context(), middleware.UserFrom(c).ID, id, dto)
	if err == nil {
		return c.Redirect(http.StatusSeeOther, controller.path("/history"))
	}

	var statusErr *httpclient.StatusError
	switch {
	case errors.Is(err, model.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	case errors.Is(err, model.ErrInvalidDateFormat):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid date format"})
	case errors.Is(err, model.ErrInvalidDateRange):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid date range"})
	case errors.As(err, &statusErr):
		return c.JSON(statusErr.StatusCode, map[string]string{"error": "Failed to fetch updated weather"})
	case errors.Is(err, model.ErrUpstream):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Failed to fetch updated weather"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func (controller *PageController) Delete(c echo.Context) error {
	id, err := numberutils.ToPositiveInt64(c.Param("id"))
	if err != nil {
		return invalidID(c)
	}

	err = controller.weatherUseCase.Delete(c.Request().Context(), middleware.UserFrom(c).ID, id)
	if errors.Is(err, model.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.Redirect(http.StatusSeeOther, controller.path("/history"))
}

func (controller *PageController) formError(c echo.Context, name, title string, status int, message string) error {
	page := controller.page(c, title)
	page.Error = message
	return c.Render(status, name, page)
}
