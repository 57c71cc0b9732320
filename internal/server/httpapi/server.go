// Package httpapi exposes the account and employee services over a JSON
// REST API built on echo.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/employeehub/internal/common"
	"github.com/dmitrijs2005/employeehub/internal/logging"
	"github.com/dmitrijs2005/employeehub/internal/server/auth"
	"github.com/dmitrijs2005/employeehub/internal/server/services"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	shutdownTimeout = 10 * time.Second
	maxBodySize     = "5M"
)

type Server struct {
	address   string
	echo      *echo.Echo
	accounts  *services.AccountService
	employees *services.EmployeeService
	tokens    *auth.TokenIssuer
	logger    logging.Logger
}

// NewServer registers all routes. allowedOrigins are the CORS origins that
// may call the API with credentials.
func NewServer(address string, allowedOrigins []string, l logging.Logger, as *services.AccountService,
	es *services.EmployeeService, tokens *auth.TokenIssuer) *Server {
	s := &Server{
		address:   address,
		echo:      echo.New(),
		accounts:  as,
		employees: es,
		tokens:    tokens,
		logger:    l.With("module", "http_server"),
	}

	e := s.echo
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			args := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				args = append(args, "error", v.Error)
			}
			s.logger.Info(c.Request().Context(), "request", args...)
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAccept, common.AuthHeaderName},
	}))
	e.Use(middleware.BodyLimit(maxBodySize))

	e.GET("/", s.handleRoot)

	a := e.Group("/auth")
	a.POST("/signup", s.handleSignup)
	a.POST("/login", s.handleLogin)

	gate := authGate(tokens, s.logger)
	e.GET("/protected", s.handleProtected, gate)

	emp := e.Group("/employees", gate)
	emp.POST("", s.handleCreateEmployee)
	emp.GET("", s.handleListEmployees)
	emp.GET("/:id", s.handleGetEmployee)
	emp.PUT("/:id", s.handleUpdateEmployee)
	emp.DELETE("/:id", s.handleDeleteEmployee)

	return s
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled and then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
