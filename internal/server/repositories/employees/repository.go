package employees

import (
	"context"

	"github.com/dmitrijs2005/employeehub/internal/server/models"
)

// Repository stores employee records. Create and Update return
// common.ErrorConflict when employee number or email is taken, and lookups by
// id return common.ErrorNotFound for unknown records.
type Repository interface {
	Create(ctx context.Context, e *models.Employee) (*models.Employee, error)
	List(ctx context.Context) ([]*models.Employee, error)
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	// GetForUpdate is GetByID that locks the row until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, id string) (*models.Employee, error)
	Update(ctx context.Context, e *models.Employee) (*models.Employee, error)
	Delete(ctx context.Context, id string) (*models.Employee, error)
}
