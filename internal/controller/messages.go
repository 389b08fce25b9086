package controller

import (
	"net/http"
	"strconv"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/errors"
	"github.com/Knoblauchpilze/record-api/internal/service"
	"github.com/Knoblauchpilze/record-api/pkg/communication"
	"github.com/labstack/echo/v4"
)

const userIdKey = "userId"

func MessageEndpoints(service service.MessageService) Routes {
	var out Routes

	postHandler := createComponentAwareHttpHandler(recordMessage, service)
	post := NewRoute(http.MethodPost, "/message", postHandler)
	out = append(out, post)

	listHandler := createComponentAwareHttpHandler(listMessages, service)
	list := NewRoute(http.MethodGet, "/message", listHandler)
	out = append(out, list)

	return out
}

func recordMessage(c echo.Context, s service.MessageService) error {
	var messageDtoRequest communication.MessageDtoRequest
	err := c.Bind(&messageDtoRequest)
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "Invalid message syntax")
	}

	out, err := s.Record(c.Request().Context(), messageDtoRequest)
	if err != nil {
		if service.IsValidationError(err) {
			return errorResponse(c, http.StatusBadRequest, service.Describe(err))
		}
		if errors.IsErrorWithCode(err, service.ErrStoreUnavailable) {
			return errorResponse(c, http.StatusServiceUnavailable, service.Describe(err))
		}

		return errorResponse(c, http.StatusInternalServerError, service.Describe(err))
	}

	return c.JSON(http.StatusCreated, out)
}

func listMessages(c echo.Context, s service.MessageService) error {
	maybeUser := c.QueryParam(userIdKey)
	// Out of range values could never match a stored participant.
	user, err := strconv.ParseInt(maybeUser, 10, 32)
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, service.Describe(errors.NewCode(service.ErrInvalidUser)))
	}

	messages, err := s.ListForUser(c.Request().Context(), user)
	if err != nil {
		if service.IsValidationError(err) {
			return errorResponse(c, http.StatusBadRequest, service.Describe(err))
		}

		return errorResponse(c, http.StatusInternalServerError, service.Describe(err))
	}

	out, err := marshalNilToEmptySlice(messages)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSONBlob(http.StatusOK, out)
}
