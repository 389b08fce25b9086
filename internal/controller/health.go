package controller

import (
	"net/http"

	"github.com/Knoblauchpilze/record-api/internal/service"
	"github.com/Knoblauchpilze/record-api/pkg/communication"
	"github.com/Knoblauchpilze/record-api/pkg/errors"
	"github.com/labstack/echo/v4"
)

func HealthCheckEndpoints(service service.HealthService) Routes {
	var out Routes

	getHandler := createComponentAwareHttpHandler(healthcheck, service)
	get := NewRoute(http.MethodGet, "/health", getHandler)
	out = append(out, get)

	return out
}

func healthcheck(c echo.Context, s service.HealthService) error {
	report, err := errors.SafeCall(func() service.HealthReport {
		return s.Check(c.Request().Context())
	})
	if err != nil {
		out := communication.HealthDtoResponse{
			ServiceStatus: communication.ServiceDown,
			Error:         err.Error(),
		}
		return c.JSON(http.StatusServiceUnavailable, out)
	}

	out := communication.HealthDtoResponse{
		ServiceStatus:        communication.ServiceUp,
		DatabaseStatus:       report.DatabaseStatus,
		DatabaseErrorDetails: report.DatabaseErrorDetails,
	}

	if !report.DatabaseOk {
		return c.JSON(http.StatusServiceUnavailable, out)
	}

	return c.JSON(http.StatusOK, out)
}
