package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"sync"

	"github.com/dmitrijs2005/employeehub/internal/dbx"
	"github.com/dmitrijs2005/employeehub/internal/server/models"
	"github.com/dmitrijs2005/employeehub/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/employeehub/internal/server/repositories/employees"
)

var errDB = errors.New("db error: connection refused")

// brokenAccounts fails every call with errDB, or with createErr on Create
// when set.
type brokenAccounts struct {
	getErr    error
	createErr error
}

func (b *brokenAccounts) Create(context.Context, *models.Account) (*models.Account, error) {
	return nil, b.createErr
}

func (b *brokenAccounts) GetByEmail(context.Context, string) (*models.Account, error) {
	return nil, b.getErr
}

type brokenEmployees struct{}

func (brokenEmployees) Create(context.Context, *models.Employee) (*models.Employee, error) {
	return nil, errDB
}
func (brokenEmployees) List(context.Context) ([]*models.Employee, error) { return nil, errDB }
func (brokenEmployees) GetByID(context.Context, string) (*models.Employee, error) {
	return nil, errDB
}
func (brokenEmployees) GetForUpdate(context.Context, string) (*models.Employee, error) {
	return nil, errDB
}
func (brokenEmployees) Update(context.Context, *models.Employee) (*models.Employee, error) {
	return nil, errDB
}
func (brokenEmployees) Delete(context.Context, string) (*models.Employee, error) {
	return nil, errDB
}

type fakeRepoManager struct {
	accounts  accounts.Repository
	employees employees.Repository
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) WithTx(ctx context.Context, _ *sql.DB, fn func(context.Context, dbx.DBTX) error) error {
	return fn(ctx, nil)
}
func (m *fakeRepoManager) Accounts(dbx.DBTX) accounts.Repository   { return m.accounts }
func (m *fakeRepoManager) Employees(dbx.DBTX) employees.Repository { return m.employees }

// fakeStore is an in-memory blobstore.Store.
type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
	putErr  error
	urlErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) Put(_ context.Context, key, _ string, body io.Reader, _ int64) error {
	if f.putErr != nil {
		return f.putErr
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = b
	return nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeStore) URL(_ context.Context, key string) (string, error) {
	if f.urlErr != nil {
		return "", f.urlErr
	}
	return "https://blobs.test/" + key, nil
}

func (f *fakeStore) keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for k := range f.objects {
		out = append(out, k)
	}
	return out
}

func png(name string) *Picture {
	return &Picture{Filename: name, ContentType: "image/png", Size: 3, Body: bytes.NewReader([]byte("png"))}
}
