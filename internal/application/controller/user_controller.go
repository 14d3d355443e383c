package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/user"
)

type UserController struct {
	api     *echo.Group
	useCase user.UseCase
}

func NewUserController(api *echo.Group, useCase user.UseCase) *UserController {
	return &UserController{api: api, useCase: useCase}
}

// InitUserRoutes initializes account routes
func (controller *UserController) InitUserRoutes() {
	controller.api.POST("/users/register", controller.Register)
	controller.api.POST("/users/login", controller.Login)
}

// Register godoc
// @Summary Create an account
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body model.UserCredentialsDTO true "Email and password"
// @Success 201 {object} model.UserOut
// @Failure 400 {object} map[string]string "Email already registered"
// @Router /users/register [post]
func (controller *UserController) Register(c echo.Context) error {
	var dto model.UserCredentialsDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	out, err := controller.useCase.Register(c.Request().Context(), dto)
	switch {
	case errors.Is(err, model.ErrEmailTaken):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email already registered"})
	case errors.Is(err, model.ErrMissingCredentials):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email and password are required"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

// Login godoc
// @Summary Issue an access token
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body model.UserCredentialsDTO true "Email and password"
// @Success 200 {object} model.TokenResponse
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /users/login [post]
func (controller *UserController) Login(c echo.Context) error {
	var dto model.UserCredentialsDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	out, err := controller.useCase.Login(c.Request().Context(), dto)
	if errors.Is(err, model.ErrInvalidCredentials) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
