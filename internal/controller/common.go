package controller

import (
	"github.com/Knoblauchpilze/record-api/pkg/communication"
	"github.com/labstack/echo/v4"
)

type Route struct {
	Method  string
	Path    string
	Handler echo.HandlerFunc
}

type Routes []Route

func NewRoute(method string, path string, handler echo.HandlerFunc) Route {
	return Route{
		Method:  method,
		Path:    path,
		Handler: handler,
	}
}

type componentAwareHttpHandler[T any] func(echo.Context, T) error

func createComponentAwareHttpHandler[T any](handler componentAwareHttpHandler[T], component T) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handler(c, component)
	}
}

func errorResponse(c echo.Context, code int, message string) error {
	out := communication.ErrorDtoResponse{
		Error: message,
	}
	return c.JSON(code, out)
}
