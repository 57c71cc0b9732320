package repomanager

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/employeehub/internal/dbx"
	"github.com/dmitrijs2005/employeehub/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/employeehub/internal/server/repositories/employees"
)

// InMemoryRepositoryManager hands out the same process-local repositories
// regardless of the DBTX passed in. Data is lost on restart.
type InMemoryRepositoryManager struct {
	txMu      sync.Mutex
	accounts  *accounts.MemoryRepository
	employees *employees.MemoryRepository
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{
		accounts:  accounts.NewMemoryRepository(),
		employees: employees.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

// WithTx serializes fn against other WithTx callers. There is no rollback.
func (m *InMemoryRepositoryManager) WithTx(ctx context.Context, _ *sql.DB, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(ctx, nil)
}

func (m *InMemoryRepositoryManager) Accounts(dbx.DBTX) accounts.Repository {
	return m.accounts
}

func (m *InMemoryRepositoryManager) Employees(dbx.DBTX) employees.Repository {
	return m.employees
}
