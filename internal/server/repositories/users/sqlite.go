package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/fruitie/internal/common"
	"github.com/dmitrijs2005/fruitie/internal/dbx"
	"github.com/dmitrijs2005/fruitie/internal/server/models"
	"github.com/google/uuid"
)

type SQLiteRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (id, name, email, password_hash, location, phone_number, role, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id := uuid.NewString()
	now := r.now()

	_, err := r.db.ExecContext(ctx, query,
		id, user.Name, user.Email, user.PasswordHash, user.Location, user.PhoneNumber, string(user.Role), now, now)
	if err != nil {
		return nil, mapSQLiteError(err)
	}

	user.ID = id
	user.CreatedAt = now
	user.UpdatedAt = now
	return user, nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ? COLLATE NOCASE`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, mapSQLiteError(err)
	}
	return user, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapSQLiteError(err)
	}
	return user, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`UPDATE users
		 SET name = ?, email = ?, password_hash = ?, location = ?, phone_number = ?, role = ?, updated_at = ?
		 WHERE id = ?`

	now := r.now()
	res, err := r.db.ExecContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Location, user.PhoneNumber, string(user.Role), now, user.ID)
	if err != nil {
		return nil, mapSQLiteError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return nil, common.ErrorNotFound
	}

	user.UpdatedAt = now
	return user, nil
}

func mapSQLiteError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return common.ErrDuplicateEmail
	}
	return fmt.Errorf("db error: %w", err)
}
