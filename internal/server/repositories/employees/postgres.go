// Package employees provides storage for employee records.
package employees

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/employeehub/internal/common"
	"github.com/dmitrijs2005/employeehub/internal/dbx"
	"github.com/dmitrijs2005/employeehub/internal/server/models"
	"github.com/dmitrijs2005/employeehub/internal/server/repositories/pgerr"
)

const columns = `id, employee_id, name, email, age, department, designation, date_of_joining,
		contact_number, status, location, picture_key, COALESCE(created_by::text, ''), created_at, updated_at`

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(s scanner) (*models.Employee, error) {
	var e models.Employee
	if err := s.Scan(
		&e.ID, &e.EmployeeID, &e.Name, &e.Email, &e.Age, &e.Department, &e.Designation, &e.DateOfJoining,
		&e.ContactNumber, &e.Status, &e.Location, &e.PictureKey, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PostgresRepository) queryOne(ctx context.Context, query string, args ...any) (*models.Employee, error) {
	e, err := scanEmployee(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, pgerr.Wrap(err)
	}
	return e, nil
}

// Create inserts e and returns the stored row with ID and timestamps set.
func (r *PostgresRepository) Create(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	query := `
		INSERT INTO employees (employee_id, name, email, age, department, designation, date_of_joining,
			contact_number, status, location, picture_key, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULLIF($12, '')::uuid)
		RETURNING ` + columns

	return r.queryOne(ctx, query,
		e.EmployeeID, e.Name, e.Email, e.Age, e.Department, e.Designation, e.DateOfJoining,
		e.ContactNumber, e.Status, e.Location, e.PictureKey, e.CreatedBy)
}

// List returns all employees in creation order.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Employee, error) {
	query := `SELECT ` + columns + ` FROM employees ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select employees: %w", err)
	}
	defer rows.Close()

	result := []*models.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	return r.queryOne(ctx, `SELECT `+columns+` FROM employees WHERE id = $1`, id)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, id string) (*models.Employee, error) {
	return r.queryOne(ctx, `SELECT `+columns+` FROM employees WHERE id = $1 FOR UPDATE`, id)
}

// Update overwrites the editable fields of the row with e.ID. The employee
// number and creator are left untouched.
func (r *PostgresRepository) Update(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	query := `
		UPDATE employees SET
			name = $2, email = $3, age = $4, department = $5, designation = $6, date_of_joining = $7,
			contact_number = $8, status = $9, location = $10, picture_key = $11, updated_at = now()
		WHERE id = $1
		RETURNING ` + columns

	return r.queryOne(ctx, query,
		e.ID, e.Name, e.Email, e.Age, e.Department, e.Designation, e.DateOfJoining,
		e.ContactNumber, e.Status, e.Location, e.PictureKey)
}

// Delete removes the row and returns it as it was.
func (r *PostgresRepository) Delete(ctx context.Context, id string) (*models.Employee, error) {
	return r.queryOne(ctx, `DELETE FROM employees WHERE id = $1 RETURNING `+columns, id)
}
