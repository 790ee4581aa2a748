// Package users persists account records. Implementations exist for
// PostgreSQL (production) and SQLite (local development and tests).
package users

import (
	"context"

	"github.com/dmitrijs2005/fruitie/internal/server/models"
)

// Repository stores users. Lookups that match nothing return
// common.ErrorNotFound; writes that collide on email return
// common.ErrDuplicateEmail. Email lookups are case-insensitive.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
}

const userColumns = `id, name, email, password_hash, location, phone_number, role, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	u := &models.User{}
	var role string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Location, &u.PhoneNumber, &role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.Role = models.Role(role)
	return u, nil
}
