package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/employeehub/internal/common"
	"github.com/dmitrijs2005/employeehub/internal/server/auth"
	"github.com/dmitrijs2005/employeehub/internal/server/models"
	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type protectedResponse struct {
	Message string        `json:"message"`
	User    auth.Identity `json:"user"`
}

func (s *Server) handleRoot(c echo.Context) error {
	return c.String(http.StatusOK, "API is working")
}

func (s *Server) handleSignup(c echo.Context) error {
	in := new(models.SignupInput)
	if err := c.Bind(in); err != nil {
		return c.JSON(http.StatusBadRequest, message(msgBadRequest))
	}

	if _, err := s.accounts.Signup(c.Request().Context(), in); err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return c.JSON(http.StatusBadRequest, message(msgUserExists))
		}
		code, msg := statusFor(err, msgUserNotFound, msgUserExists)
		return c.JSON(code, message(msg))
	}

	return c.JSON(http.StatusCreated, message("Signup Successful"))
}

func (s *Server) handleLogin(c echo.Context) error {
	req := new(loginRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, message(msgBadRequest))
	}

	token, err := s.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		code, msg := statusFor(err, msgUserNotFound, msgUserExists)
		return c.JSON(code, message(msg))
	}

	return c.JSON(http.StatusOK, loginResponse{Message: "Login Successful", Token: token})
}

func (s *Server) handleProtected(c echo.Context) error {
	id, _ := identity(c)
	return c.JSON(http.StatusOK, protectedResponse{Message: "This is a protected route", User: id})
}
