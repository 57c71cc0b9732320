package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/employeehub/internal/common"
	"github.com/dmitrijs2005/employeehub/internal/dbx"
	"github.com/dmitrijs2005/employeehub/internal/logging"
	"github.com/dmitrijs2005/employeehub/internal/server/blobstore"
	"github.com/dmitrijs2005/employeehub/internal/server/models"
	"github.com/dmitrijs2005/employeehub/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// PictureExtensions are the accepted profile picture file extensions.
var PictureExtensions = []string{".jpg", ".jpeg", ".png"}

// Picture is an uploaded profile picture. Size is -1 when unknown.
type Picture struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

func (p *Picture) ext() (string, error) {
	ext := strings.ToLower(filepath.Ext(p.Filename))
	for _, ok := range PictureExtensions {
		if ext == ok {
			return ext, nil
		}
	}
	return "", fmt.Errorf("%w: profilePicture: only .jpg, .jpeg and .png files are accepted", common.ErrorValidation)
}

type EmployeeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       blobstore.Store
	logger      logging.Logger
	now         func() time.Time
}

// NewEmployeeService wires the service. store may be nil, in which case
// pictures are rejected and records carry no picture URL.
func NewEmployeeService(db *sql.DB, m repomanager.RepositoryManager, store blobstore.Store, logger logging.Logger) *EmployeeService {
	return &EmployeeService{
		db:          db,
		repomanager: m,
		store:       store,
		logger:      logger.With("module", "employees"),
		now:         time.Now,
	}
}

func (s *EmployeeService) internal(ctx context.Context, msg string, err error) error {
	s.logger.Error(ctx, msg, "error", err)
	return common.ErrorInternal
}

// upload stores pic under a new key and returns the key.
func (s *EmployeeService) upload(ctx context.Context, pic *Picture) (string, error) {
	if s.store == nil {
		return "", fmt.Errorf("%w: profilePicture: picture uploads are disabled", common.ErrorValidation)
	}
	ext, err := pic.ext()
	if err != nil {
		return "", err
	}
	key := blobstore.NewKey(s.now(), ext)
	if err := s.store.Put(ctx, key, pic.ContentType, pic.Body, pic.Size); err != nil {
		return "", s.internal(ctx, "picture upload failed", err)
	}
	return key, nil
}

// discard removes a blob. Failures are logged and otherwise ignored.
func (s *EmployeeService) discard(ctx context.Context, key string) {
	if key == "" || s.store == nil {
		return
	}
	if err := s.store.Delete(ctx, key); err != nil {
		s.logger.Warn(ctx, "picture cleanup failed", "key", key, "error", err)
	}
}

func (s *EmployeeService) translate(ctx context.Context, msg string, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return common.ErrorNotFound
	case errors.Is(err, common.ErrorConflict):
		return common.ErrorConflict
	case errors.Is(err, common.ErrorValidation):
		return err
	default:
		return s.internal(ctx, msg, err)
	}
}

// Create validates in, uploads the optional picture and stores the record
// as created by createdBy.
func (s *EmployeeService) Create(ctx context.Context, createdBy string, in *models.EmployeeInput, pic *Picture) (*models.Employee, error) {
	if err := in.ValidateCreate(); err != nil {
		return nil, err
	}

	e := &models.Employee{EmployeeID: in.EmployeeID, CreatedBy: createdBy}
	if err := in.ApplyTo(e); err != nil {
		return nil, err
	}

	if pic != nil {
		key, err := s.upload(ctx, pic)
		if err != nil {
			return nil, err
		}
		e.PictureKey = key
	}

	created, err := s.repomanager.Employees(s.db).Create(ctx, e)
	if err != nil {
		s.discard(ctx, e.PictureKey)
		return nil, s.translate(ctx, "employee insert failed", err)
	}

	s.logger.Info(ctx, "employee created", "id", created.ID, "created_by", createdBy)
	return created, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]*models.Employee, error) {
	list, err := s.repomanager.Employees(s.db).List(ctx)
	if err != nil {
		return nil, s.internal(ctx, "employee list failed", err)
	}
	return list, nil
}

// Get returns common.ErrorNotFound for unknown or malformed ids.
func (s *EmployeeService) Get(ctx context.Context, id string) (*models.Employee, error) {
	if uuid.Validate(id) != nil {
		return nil, common.ErrorNotFound
	}
	e, err := s.repomanager.Employees(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(ctx, "employee lookup failed", err)
	}
	return e, nil
}

// Update replaces the editable fields of employee id. A new picture
// replaces the old one, whose blob is removed after the update commits.
func (s *EmployeeService) Update(ctx context.Context, id string, in *models.EmployeeInput, pic *Picture) (*models.Employee, error) {
	if uuid.Validate(id) != nil {
		return nil, common.ErrorNotFound
	}
	if err := in.ValidateUpdate(); err != nil {
		return nil, err
	}

	var newKey string
	if pic != nil {
		key, err := s.upload(ctx, pic)
		if err != nil {
			return nil, err
		}
		newKey = key
	}

	var updated *models.Employee
	var oldKey string
	err := s.repomanager.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Employees(tx)

		cur, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := in.ApplyTo(cur); err != nil {
			return err
		}
		if newKey != "" {
			oldKey = cur.PictureKey
			cur.PictureKey = newKey
		}

		updated, err = repo.Update(ctx, cur)
		return err
	})
	if err != nil {
		s.discard(ctx, newKey)
		return nil, s.translate(ctx, "employee update failed", err)
	}

	s.discard(ctx, oldKey)
	return updated, nil
}

// Delete removes employee id and then its picture.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return common.ErrorNotFound
	}
	e, err := s.repomanager.Employees(s.db).Delete(ctx, id)
	if err != nil {
		return s.translate(ctx, "employee delete failed", err)
	}
	s.discard(ctx, e.PictureKey)
	s.logger.Info(ctx, "employee deleted", "id", id)
	return nil
}

// PictureURL returns a presigned link to the employee's picture, or "" when
// there is none or it cannot be signed.
func (s *EmployeeService) PictureURL(ctx context.Context, e *models.Employee) string {
	if e.PictureKey == "" || s.store == nil {
		return ""
	}
	u, err := s.store.URL(ctx, e.PictureKey)
	if err != nil {
		s.logger.Warn(ctx, "picture url signing failed", "key", e.PictureKey, "error", err)
		return ""
	}
	return u
}
