package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"go-weather/internal/domain/model"
)

func TestCheckHealthStatusCodes(t *testing.T) {
	cases := map[model.HealthStatus]int{
		model.StatusUp:   http.StatusOK,
		model.StatusDown: http.StatusServiceUnavailable,
	}
	for status, code := range cases {
		e := echo.New()
		NewHealthController(e.Group(""), fakeHealth{response: model.HealthResponse{Status: status}}).InitHealthRoutes()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, code, rec.Code, string(status))
		assert.Contains(t, rec.Body.String(), `"status":"`+string(status)+`"`)
	}
}
