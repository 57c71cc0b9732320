// Package services contains server-side business logic. AccountService
// handles signup and login; EmployeeService manages the employee directory
// and its profile pictures.
package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/employeehub/internal/common"
	"github.com/dmitrijs2005/employeehub/internal/logging"
	"github.com/dmitrijs2005/employeehub/internal/server/auth"
	"github.com/dmitrijs2005/employeehub/internal/server/models"
	"github.com/dmitrijs2005/employeehub/internal/server/repositories/repomanager"
)

// AccountService registers accounts and exchanges credentials for access
// tokens.
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *auth.PasswordHasher
	tokens      *auth.TokenIssuer
	logger      logging.Logger
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, hasher *auth.PasswordHasher,
	tokens *auth.TokenIssuer, logger logging.Logger) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		tokens:      tokens,
		logger:      logger.With("module", "accounts"),
	}
}

// Signup creates an account. It returns common.ErrorConflict when the email
// is already registered, including when a concurrent signup for the same
// email commits first. No token is issued.
func (s *AccountService) Signup(ctx context.Context, in *models.SignupInput) (*models.Account, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	repo := s.repomanager.Accounts(s.db)

	_, err := repo.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, common.ErrorConflict
	case !errors.Is(err, common.ErrorNotFound):
		s.logger.Error(ctx, "account lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			return nil, err
		}
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, common.ErrorInternal
	}

	a, err := repo.Create(ctx, &models.Account{Email: in.Email, Name: in.Name, PasswordHash: digest})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		s.logger.Error(ctx, "account insert failed", "error", err)
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "account created", "id", a.ID)
	return a, nil
}

// Login returns a signed token for the account. Unknown emails yield
// common.ErrorNotFound and wrong passwords common.ErrorUnauthorized.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Accounts(s.db)

	a, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		s.logger.Error(ctx, "account lookup failed", "error", err)
		return "", common.ErrorInternal
	}

	if !s.hasher.Verify(password, a.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := s.tokens.Issue(a.ID, a.Email)
	if err != nil {
		s.logger.Error(ctx, "token signing failed", "error", err)
		return "", common.ErrorInternal
	}

	return token, nil
}
