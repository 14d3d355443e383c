package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"go-weather/internal/application/middleware"
	"go-weather/internal/application/view"
	"go-weather/internal/domain/usecase/panel"
	"go-weather/pkg/util/numberutils"
)

// PanelController serves the forecast and sun panel toggles of the home cards.
type PanelController struct {
	api      *echo.Group
	useCase  panel.UseCase
	renderer *view.Renderer
}

func NewPanelController(api *echo.Group, useCase panel.UseCase, renderer *view.Renderer) *PanelController {
	return &PanelController{api: api, useCase: useCase, renderer: renderer}
}

// InitPanelRoutes initializes the panel toggle route
func (controller *PanelController) InitPanelRoutes() {
	controller.api.POST("/ui/panels/:kind/:id", controller.Toggle, middleware.RequireUser)
}

// Toggle answers with the card's panel container and out-of-band empty containers
// for the cards it closed. The form fields open and current report what the page
// shows for the kind. A toggle superseded while loading gets 204.
func (controller *PanelController) Toggle(c echo.Context) error {
	kind, err := panel.ParseKind(c.Param("kind"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	cardID, err := numberutils.ToPositiveInt64(c.Param("id"))
	if err != nil {
		return invalidID(c)
	}

	page := panel.PageState{Open: c.FormValue("open") == "true"}
	if openCard, err := numberutils.ToPositiveInt64(c.FormValue("current")); err == nil {
		page.OpenCard = openCard
	}

	user := middleware.UserFrom(c)
	result, err := controller.useCase.Toggle(c.Request().Context(), user.ID, middleware.TokenFrom(c), kind, cardID, page)
	if errors.Is(err, panel.ErrUnknownKind) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if result.Superseded {
		return c.NoContent(http.StatusNoContent)
	}

	html, err := controller.renderer.PanelUpdate(result)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.HTML(http.StatusOK, html)
}
