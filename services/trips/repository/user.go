package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mpawlak/wedrownik/internal/pkg/apperrors"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
)

// UserRepo implements account persistence on Postgres
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateUser stores a new account. The ID is assigned here when the caller
// left it zero.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	stored := *user
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}

	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO users (id, email, password_hash, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at`,
		stored.ID, stored.Email, stored.PasswordHash, stored.IsActive,
	).Scan(&stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: insert user: %v", apperrors.ErrPersistenceFailure, err)
	}

	return &stored, nil
}

// GetUserByEmail returns the account for an email, or (nil, nil) when no
// account matches.
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user,
		`SELECT id, email, password_hash, is_active, created_at, updated_at
		FROM users WHERE email = $1`,
		email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: get user by email: %v", apperrors.ErrPersistenceFailure, err)
	}

	return &user, nil
}
