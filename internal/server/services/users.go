// Package services contains server-side business logic: the credential
// store, account flows and the chat reply service.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/fruitie/internal/common"
	"github.com/dmitrijs2005/fruitie/internal/dbx"
	"github.com/dmitrijs2005/fruitie/internal/server/auth"
	"github.com/dmitrijs2005/fruitie/internal/server/config"
	"github.com/dmitrijs2005/fruitie/internal/server/models"
	"github.com/dmitrijs2005/fruitie/internal/server/repositories/repomanager"
)

// ProfileUpdate lists the fields a user may change on their own record.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Name        *string
	Location    *string
	PhoneNumber *string
	Password    *string
}

// UserService handles registration, login, token checks and profile access.
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	credentials           *CredentialStore
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, credentials *CredentialStore, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		credentials:           credentials,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a standard account. Callers cannot choose the role.
func (s *UserService) Register(ctx context.Context, in NewUser) (*models.User, error) {
	in.Role = models.RoleUser
	return s.credentials.Create(ctx, in)
}

// Login returns a signed token. Unknown email and wrong password both
// yield common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, ok, err := s.credentials.Verify(ctx, email, password)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	if !ok {
		return "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	return token, nil
}

// Authenticate checks signature and expiry of token. Any failure is
// reported as common.ErrorUnauthorized.
func (s *UserService) Authenticate(token string) (auth.Identity, error) {
	if strings.TrimSpace(token) == "" {
		return auth.Identity{}, common.ErrorUnauthorized
	}

	id, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return auth.Identity{}, fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}

	return id, nil
}

func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error loading profile: %w", err)
	}
	return user, nil
}

// UpdateProfile loads, modifies and saves the user in one transaction.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*models.User, error) {
	var saved *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		user, err := s.repomanager.Users(tx).GetByID(ctx, userID)
		if err != nil {
			return err
		}

		if upd.Name != nil {
			user.Name = strings.TrimSpace(*upd.Name)
		}
		if upd.Location != nil {
			user.Location = strings.TrimSpace(*upd.Location)
		}
		if upd.PhoneNumber != nil {
			user.PhoneNumber = strings.TrimSpace(*upd.PhoneNumber)
		}
		if upd.Password != nil {
			user.SetPassword(*upd.Password)
		}

		verr := common.NewValidationError()
		validateProfile(verr, user)
		if err := verr.OrNil(); err != nil {
			return err
		}

		saved, err = s.credentials.Save(ctx, tx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}
