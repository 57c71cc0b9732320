package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/employeehub/internal/dbx"
	"github.com/dmitrijs2005/employeehub/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/employeehub/internal/server/repositories/employees"
)

// RepositoryManager vends repositories bound to a DBTX and runs the schema
// setup for its backend.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	// WithTx runs fn in a transaction on db; repositories obtained from
	// the tx argument take part in it.
	WithTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx dbx.DBTX) error) error
	Accounts(db dbx.DBTX) accounts.Repository
	Employees(db dbx.DBTX) employees.Repository
}
