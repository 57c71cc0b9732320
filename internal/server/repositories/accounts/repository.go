package accounts

import (
	"context"

	"github.com/dmitrijs2005/employeehub/internal/server/models"
)

// Repository is the credential store. Create must reject a duplicate email
// with common.ErrorConflict atomically.
type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}
