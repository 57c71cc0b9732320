package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/employeehub/internal/common"
	"github.com/labstack/echo/v4"
)

const (
	msgInternal       = "Internal Server Error"
	msgBadRequest     = "Invalid request body"
	msgUserExists     = "User already exists, please login"
	msgUserNotFound   = "User not found"
	msgBadCredentials = "Invalid credentials"
	msgEmpNotFound    = "Employee not found"
	msgEmpExists      = "Employee already exists"
)

type messageResponse struct {
	Message string `json:"message"`
}

func message(m string) messageResponse {
	return messageResponse{Message: m}
}

// statusFor maps a service error to a status code and client message.
// notFound and conflict name the resource-specific wording.
func statusFor(err error, notFound, conflict string) (int, string) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, notFound
	case errors.Is(err, common.ErrorConflict):
		return http.StatusConflict, conflict
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized, msgBadCredentials
	case errors.Is(err, common.ErrorForbidden), errors.Is(err, common.ErrInvalidToken):
		return http.StatusForbidden, msgInvalidToken
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

// handleError renders errors returned by handlers and by echo itself
// (unknown route, oversized body) as {"message": ...}.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := msgInternal

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	} else {
		s.logger.Error(c.Request().Context(), "unhandled error", "error", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, message(msg))
	}
	if err != nil {
		s.logger.Error(c.Request().Context(), "error response failed", "error", err)
	}
}
