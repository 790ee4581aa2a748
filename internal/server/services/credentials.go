package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/fruitie/internal/common"
	"github.com/dmitrijs2005/fruitie/internal/cryptox"
	"github.com/dmitrijs2005/fruitie/internal/dbx"
	"github.com/dmitrijs2005/fruitie/internal/server/models"
	"github.com/dmitrijs2005/fruitie/internal/server/repositories/repomanager"
)

const (
	minLocationLength = 3
	minPhoneLength    = 6
)

// NewUser is the input for creating an account.
type NewUser struct {
	Name        string
	Email       string
	Password    string
	Location    string
	PhoneNumber string
	Role        models.Role
}

// CredentialStore owns user records and everything that touches the
// password hash.
type CredentialStore struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cost        int

	// compared against when the email is unknown so both paths pay for one bcrypt run
	dummyHash string
}

func NewCredentialStore(db *sql.DB, m repomanager.RepositoryManager, cost int) (*CredentialStore, error) {
	if cost == 0 {
		cost = cryptox.DefaultCost
	}

	plain, err := cryptox.MakeRandHexString(16)
	if err != nil {
		return nil, fmt.Errorf("dummy password: %w", err)
	}
	dummy, err := cryptox.HashPassword(plain, cost)
	if err != nil {
		return nil, fmt.Errorf("dummy hash: %w", err)
	}

	return &CredentialStore{db: db, repomanager: m, cost: cost, dummyHash: dummy}, nil
}

// Create validates in, hashes the password and inserts the user.
func (s *CredentialStore) Create(ctx context.Context, in NewUser) (*models.User, error) {
	user := &models.User{
		Name:        strings.TrimSpace(in.Name),
		Email:       NormalizeEmail(in.Email),
		Location:    strings.TrimSpace(in.Location),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Role:        in.Role,
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	verr := common.NewValidationError()
	validateProfile(verr, user)
	if user.Email == "" {
		verr.Add("email", "is required")
	} else if _, err := mail.ParseAddress(user.Email); err != nil {
		verr.Add("email", "is not a valid address")
	}
	if !user.Role.Valid() {
		verr.Add("role", "must be one of user, admin")
	}
	validatePassword(verr, in.Password)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	user.SetPassword(in.Password)
	if err := s.hashPending(user); err != nil {
		return nil, err
	}

	created, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return created, nil
}

// Verify checks candidate against the stored hash for email. An unknown
// email reports false without an error.
func (s *CredentialStore) Verify(ctx context.Context, email, candidate string) (*models.User, bool, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			cryptox.ComparePassword(s.dummyHash, candidate)
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error loading user: %w", err)
	}

	if !cryptox.ComparePassword(user.PasswordHash, candidate) {
		return nil, false, nil
	}

	return user, true, nil
}

// Save writes user through db. The hash is recomputed only when a new
// plaintext was staged with SetPassword.
func (s *CredentialStore) Save(ctx context.Context, db dbx.DBTX, user *models.User) (*models.User, error) {
	if plain, ok := user.PendingPassword(); ok {
		verr := common.NewValidationError()
		validatePassword(verr, plain)
		if err := verr.OrNil(); err != nil {
			return nil, err
		}
		if err := s.hashPending(user); err != nil {
			return nil, err
		}
	}

	saved, err := s.repomanager.Users(db).Update(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("error saving user: %w", err)
	}

	return saved, nil
}

func (s *CredentialStore) hashPending(user *models.User) error {
	plain, ok := user.PendingPassword()
	if !ok {
		return nil
	}

	hash, err := cryptox.HashPassword(plain, s.cost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user.PasswordHash = hash
	user.ClearPendingPassword()
	return nil
}

// NormalizeEmail trims and lowercases an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validatePassword(verr *common.ValidationError, password string) {
	if password == "" {
		verr.Add("password", "is required")
	} else if utf8.RuneCountInString(password) < common.MinPasswordLength {
		verr.Add("password", fmt.Sprintf("must be at least %d characters", common.MinPasswordLength))
	} else if len(password) > common.MaxPasswordBytes {
		verr.Add("password", fmt.Sprintf("must be at most %d bytes", common.MaxPasswordBytes))
	}
}

func validateProfile(verr *common.ValidationError, u *models.User) {
	if u.Name == "" {
		verr.Add("name", "is required")
	}
	if u.Location != "" && utf8.RuneCountInString(u.Location) < minLocationLength {
		verr.Add("location", fmt.Sprintf("must be at least %d characters", minLocationLength))
	}
	if u.PhoneNumber != "" && utf8.RuneCountInString(u.PhoneNumber) < minPhoneLength {
		verr.Add("phoneNumber", fmt.Sprintf("must be at least %d characters", minPhoneLength))
	}
}
