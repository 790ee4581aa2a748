package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/fruitie/internal/common"
	"github.com/dmitrijs2005/fruitie/internal/dbx"
	"github.com/dmitrijs2005/fruitie/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes handled by the repository.
const (
	pgUniqueViolation   = "23505"
	pgInvalidTextFormat = "22P02"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (name, email, password_hash, location, phone_number, role)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Location, user.PhoneNumber, string(user.Role)).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return nil, mapPostgresError(err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, mapPostgresError(err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapPostgresError(err)
	}

	return user, nil
}

func (r *PostgresRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`UPDATE users
		 SET name = $2, email = $3, password_hash = $4, location = $5, phone_number = $6, role = $7, updated_at = now()
		 WHERE id = $1
		 RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Location, user.PhoneNumber, string(user.Role)).
		Scan(&user.UpdatedAt)

	if err != nil {
		return nil, mapPostgresError(err)
	}

	return user, nil
}

func mapPostgresError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return common.ErrDuplicateEmail
		case pgInvalidTextFormat:
			// malformed uuid can never match a row
			return common.ErrorNotFound
		}
	}

	return fmt.Errorf("db error: %w", err)
}
