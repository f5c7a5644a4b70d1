package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"vocabox/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// IsAuthorized checks if user is authorized
func (r *UserRepo) IsAuthorized(ctx context.Context, userID int64) (bool, error) {
	var authorized bool
	query := `SELECT authorized FROM users WHERE user_id = $1`
	err := r.db.GetContext(ctx, &authorized, query, userID)

	if errors.Is(err, sql.ErrNoRows) {
		// User doesn't exist yet
		return false, nil
	}
	if err != nil {
		return false, domain.NewStoreError("is authorized", err)
	}

	return authorized, nil
}

// AuthorizeUser marks user as authorized
func (r *UserRepo) AuthorizeUser(ctx context.Context, userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, TRUE)
		ON CONFLICT (user_id)
		DO UPDATE SET authorized = TRUE
	`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return domain.NewStoreError("authorize user", err)
	}
	return nil
}

// EnsureUserExists creates user if not exists
func (r *UserRepo) EnsureUserExists(ctx context.Context, userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, FALSE)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return domain.NewStoreError("ensure user", err)
	}
	return nil
}

// ListAuthorized returns ids of all authorized users
func (r *UserRepo) ListAuthorized(ctx context.Context) ([]int64, error) {
	var ids []int64
	query := `SELECT user_id FROM users WHERE authorized = TRUE ORDER BY user_id`
	if err := r.db.SelectContext(ctx, &ids, query); err != nil {
		return nil, domain.NewStoreError("list authorized", err)
	}
	return ids, nil
}
