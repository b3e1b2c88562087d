package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/class-schedule-api/internal/models"
)

// UserRepository handles persistence for users.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new repository instance.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsername returns the user joined with its role name.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `SELECT u.id, u.username, u.password, u.role_id, r.name AS role_name, u.full_name FROM users u JOIN roles r ON u.role_id = r.role_id WHERE u.username = $1 LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUsername checks username uniqueness.
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists int
	if err := r.db.GetContext(ctx, &exists, `SELECT 1 FROM users WHERE username = $1 LIMIT 1`, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check username: %w", err)
	}
	return true, nil
}

// Create inserts a user and returns it with its role name.
func (r *UserRepository) Create(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	const query = `INSERT INTO users (username, password, role_id, full_name) VALUES ($1, $2, $3, $4)
RETURNING id, username, password, role_id, (SELECT name FROM roles WHERE role_id = $3) AS role_name, full_name`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, req.Username, req.Password, req.RoleID, req.FullName); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}
