package controller

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"go-weather/internal/application/middleware"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/weather"
	httpclient "go-weather/pkg/http"
	"go-weather/pkg/util/numberutils"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes. Every route needs a signed-in user.
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.POST("/weather", controller.CreateWeather, middleware.RequireUser)
	controller.api.GET("/weather", controller.ListWeather, middleware.RequireUser)
	controller.api.GET("/weather/:id", controller.GetWeather, middleware.RequireUser)
	controller.api.PUT("/weather/:id", controller.UpdateWeather, middleware.RequireUser)
	controller.api.DELETE("/weather/:id", controller.DeleteWeather, middleware.RequireUser)
	controller.api.GET("/weather/:id/forecast", controller.GetForecast, middleware.RequireUser)
	controller.api.GET("/weather/:id/sun", controller.GetSunTimes, middleware.RequireUser)
	controller.api.GET("/export", controller.Export, middleware.RequireUser)
}

// CreateWeather godoc
// @Summary Save a weather lookup
// @Description Fetch current weather, or a forecast filtered to the date range, and save it
// @Tags weather
// @Accept json
// @Produce json
// @Param lookup body model.CreateWeatherDTO true "Location and optional date range"
// @Success 201 {object} model.WeatherOut
// @Failure 400 {object} map[string]string "Invalid date range or location"
// @Failure 401 {object} map[string]string "Not authenticated"
// @Failure 404 {object} map[string]string "Location not found or API error"
// @Router /weather [post]
func (controller *WeatherController) CreateWeather(c echo.Context) error {
	var dto model.CreateWeatherDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	out, err := controller.useCase.Create(c.Request().Context(), middleware.UserFrom(c).ID, dto)
	if err != nil {
		return weatherError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

// ListWeather godoc
// @Summary List saved lookups
// @Tags weather
// @Produce json
// @Success 200 {array} model.WeatherOut
// @Failure 401 {object} map[string]string "Not authenticated"
// @Router /weather [get]
func (controller *WeatherController) ListWeather(c echo.Context) error {
	out, err := controller.useCase.List(c.Request().Context(), middleware.UserFrom(c).ID)
	if err != nil {
		return weatherError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GetWeather godoc
// @Summary Get a saved lookup
// @Tags weather
// @Produce json
// @Param id path int true "Lookup id"
// @Success 200 {object} model.WeatherOut
// @Failure 404 {object} map[string]string "Record not found"
// @Router /weather/{id} [get]
func (controller *WeatherController) GetWeather(c echo.Context) error {
	id, err := numberutils.ToPositiveInt64(c.Param("id"))
	if err != nil {
		return invalidID(c)
	}

	out, err := controller.useCase.Get(c.Request().Context(), middleware.UserFrom(c).ID, id)
	if err != nil {
		return weatherError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateWeather godoc
// @Summary Update a saved lookup
// @Description Change location or dates without fetching new data. Empty fields are left unchanged.
// @Tags weather
// @Accept json
// @Produce json
// @Param id path int true "Lookup id"
// @Param lookup body model.UpdateWeatherDTO true "Fields to change"
// @Success 200 {object} model.WeatherOut
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 404 {object} map[string]string "Record not found"
// @Router /weather/{id} [put]
func (controller *WeatherController) UpdateWeather(c echo.Context) error {
	id, err := numberutils.ToPositiveInt64(c.Param("id"))
	if err != nil {
		return invalidID(c)
	}

	var dto model.UpdateWeatherDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	out, err := controller.useCase.Update(c.Request().Context(), middleware.UserFrom(c).ID, id, dto)
	if errors.Is(err, model.ErrInvalidDateRange) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid date range"})
	}
	if err != nil {
		return weatherError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// DeleteWeather godoc
// @Summary Delete a saved lookup
// @Tags weather
// @Param id path int true "Lookup id"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Record not found"
// @Router /weather/{id} [delete]
func (controller *WeatherController) DeleteWeather(c echo.Context) error {
	id, err := numberutils.ToPositiveInt64(c.Param("id"))
	if err != nil {
		return invalidID(c)
	}

	if err := controller.useCase.Delete(c.Request().Context(), middleware.UserFrom(c).ID, id); err != nil {
		return weatherError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetForecast godoc
// @Summary Live 5-day forecast for a saved location
// @Description The forecast JSON is returned as text in the response field
// @Tags weather
// @Produce json
// @Param id path int true "Lookup id"
// @Success 200 {object} model.ForecastResponse
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 502 {object} map[string]string "Forecast API error"
// @Router /weather/{id}/forecast [get]
func (controller *WeatherController) GetForecast(c echo.Context) error {
	id, err := numberutils.ToPositiveInt64(c.Param("id"))
	if err != nil {
		return invalidID(c)
	}

	out, err := controller.useCase.Forecast(c.Request().Context(), middleware.UserFrom(c).ID, id)
	if errors.Is(err, model.ErrUpstream) {
		status := http.StatusBadGateway
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) {
			status = statusErr.StatusCode
		}
		return c.JSON(status, map[string]string{"error": "Forecast API error"})
	}
	if err != nil {
		return weatherError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GetSunTimes godoc
// @Summary Sunrise and sunset for a saved location
// @Tags weather
// @Produce json
// @Param id path int true "Lookup id"
// @Success 200 {object} model.SunTimesResponse
// @Failure 400 {object} map[string]string "No coordinates available"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 502 {object} map[string]string "Sun API error"
// @Router /weather/{id}/sun [get]
func (controller *WeatherController) GetSunTimes(c echo.Context) error {
	id, err := numberutils.ToPositiveInt64(c.Param("id"))
	if err != nil {
		return invalidID(c)
	}

	out, err := controller.useCase.SunTimes(c.Request().Context(), middleware.UserFrom(c).ID, id)
	if err != nil {
		return weatherError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Export godoc
// @Summary Export saved lookups
// @Tags weather
// @Produce json
// @Produce text/csv
// @Param format query string false "json or csv" default(json)
// @Success 200 {array} model.ExportRow
// @Failure 401 {object} map[string]string "Not authenticated"
// @Router /export [get]
func (controller *WeatherController) Export(c echo.Context) error {
	rows, err := controller.useCase.Export(c.Request().Context(), middleware.UserFrom(c).ID)
	if err != nil {
		return weatherError(c, err)
	}

	if c.QueryParam("format") != "csv" {
		return c.JSON(http.StatusOK, rows)
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=weather_export.csv")
	c.Response().WriteHeader(http.StatusOK)

	writer := csv.NewWriter(c.Response())
	if len(rows) > 0 {
		if err := writer.Write(model.ExportColumns); err != nil {
			return err
		}
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.ID, 10),
			row.Location,
			optional(row.StartDate),
			optional(row.EndDate),
			row.Response,
			optional(row.CreatedAt),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func optional(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func invalidID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid id"})
}

// weatherError maps domain errors to the API error body.
func weatherError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Record not found"})
	case errors.Is(err, model.ErrInvalidDateRange):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "start_date must be on or before end_date"})
	case errors.Is(err, model.ErrDateRangeTooLong):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Date range cannot exceed 5 days on free API"})
	case errors.Is(err, model.ErrInvalidDateFormat):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "Dates must use YYYY-MM-DD"})
	case errors.Is(err, model.ErrLocationRequired):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Location is required"})
	case errors.Is(err, model.ErrUpstream):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Location not found or API error"})
	case errors.Is(err, model.ErrNoCoordinates):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No coordinates available"})
	case errors.Is(err, model.ErrSunAPI):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Sun API error"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
