package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/employeehub/internal/client/models"
)

// Picture is a profile picture to upload with a new employee.
type Picture struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type Client interface {
	Ping(ctx context.Context) error
	Signup(ctx context.Context, name, email string, password []byte) error
	Login(ctx context.Context, email string, password []byte) error
	Logout()
	Whoami(ctx context.Context) (*models.Identity, error)
	ListEmployees(ctx context.Context) ([]*models.Employee, error)
	GetEmployee(ctx context.Context, id string) (*models.Employee, error)
	CreateEmployee(ctx context.Context, in *models.EmployeeInput, pic *Picture) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
}
