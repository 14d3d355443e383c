package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"go-weather/internal/application/middleware"
	"go-weather/internal/application/view"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/lookup"
)

// LookupController serves the #weatherForm fragment endpoint.
type LookupController struct {
	api      *echo.Group
	useCase  lookup.UseCase
	renderer *view.Renderer
}

func NewLookupController(api *echo.Group, useCase lookup.UseCase, renderer *view.Renderer) *LookupController {
	return &LookupController{api: api, useCase: useCase, renderer: renderer}
}

// InitLookupRoutes initializes the lookup fragment route
func (controller *LookupController) InitLookupRoutes() {
	controller.api.POST("/ui/lookup", controller.Submit, middleware.RequireUser)
}

// Submit answers with the fragment for #weatherResult. Failures are rendered inline with status 200
// so htmx swaps them in. A submission superseded by a newer one gets 204 and swaps nothing.
func (controller *LookupController) Submit(c echo.Context) error {
	var form model.LookupForm
	if err := c.Bind(&form); err != nil {
		return c.HTML(http.StatusOK, controller.renderer.Error("Error: Invalid form"))
	}

	outcome := controller.useCase.Submit(c.Request().Context(), middleware.UserFrom(c).ID, middleware.TokenFrom(c), form)
	if outcome.Superseded {
		return c.NoContent(http.StatusNoContent)
	}

	if outcome.State == lookup.Failure {
		return c.HTML(http.StatusOK, controller.renderer.Error("Error: "+outcome.Message))
	}

	var html string
	var err error
	if outcome.IsForecast {
		html, err = controller.renderer.ForecastStrip(outcome.Forecast)
	} else {
		html, err = controller.renderer.CurrentWeather(*outcome.Current)
	}
	if err != nil {
		return c.HTML(http.StatusInternalServerError, controller.renderer.Error("Error: "+err.Error()))
	}
	return c.HTML(http.StatusOK, html)
}
