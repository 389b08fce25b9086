package internal

import (
	"context"
	goerrors "errors"
	"fmt"
	"net/http"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/logger"
	"github.com/Knoblauchpilze/record-api/internal/controller"
	"github.com/Knoblauchpilze/record-api/internal/service"
	"github.com/Knoblauchpilze/record-api/pkg/communication"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const maxBodySize = "1M"

type HttpServerProps struct {
	Config   Configuration
	Services service.Services
	Log      logger.Logger
}

// RunHttpServer serves the API until the context is cancelled, after which
// in-flight requests are given the configured shutdown timeout to complete.
func RunHttpServer(ctx context.Context, props HttpServerProps) error {
	e := newHttpServer(props)

	address := fmt.Sprintf(":%d", props.Config.Server.Port)
	props.Log.Infof("Starting server on %s", address)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- e.Start(address)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	props.Log.Infof("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(), props.Config.Server.ShutdownTimeout,
	)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-serveErr; !goerrors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func newHttpServer(props HttpServerProps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = createErrorHandler(props.Log)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(createRequestLogger(props.Log))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(maxBodySize))

	registerRoutes(e, controller.HealthCheckEndpoints(props.Services.Health))
	registerRoutes(e, controller.MessageEndpoints(props.Services.Message))

	return e
}

func registerRoutes(e *echo.Echo, routes controller.Routes) {
	for _, route := range routes {
		e.Add(route.Method, route.Path, route.Handler)
	}
}

func createRequestLogger(log logger.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				log.Warnf(
					"[%s] %s %s %d (%v): %v",
					v.RequestID,
					v.Method,
					v.URI,
					v.Status,
					v.Latency,
					v.Error,
				)
				return nil
			}

			log.Infof("[%s] %s %s %d (%v)", v.RequestID, v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	})
}

// createErrorHandler answers errors escaping the handlers with the same
// {"error": ...} body the controllers produce.
func createErrorHandler(log logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var httpErr *echo.HTTPError
		if goerrors.As(err, &httpErr) {
			code = httpErr.Code
			message = fmt.Sprintf("%v", httpErr.Message)
		} else {
			log.Errorf("Unexpected error while serving %s: %v", c.Request().URL.Path, err)
		}

		out := communication.ErrorDtoResponse{
			Error: message,
		}
		if err := c.JSON(code, out); err != nil {
			log.Errorf("Failed to send error response: %v", err)
		}
	}
}
