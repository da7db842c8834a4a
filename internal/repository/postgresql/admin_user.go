package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/asistenciapp/attendance-backend-go/internal/domain/auth"
	"github.com/asistenciapp/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type adminUserRepository struct {
	db *database.DB
}

func NewAdminUserRepository(db *database.DB) auth.AdminUserRepository {
	return &adminUserRepository{db: db}
}

// Create implements auth.AdminUserRepository.
func (r *adminUserRepository) Create(ctx context.Context, u auth.AdminUser) (auth.AdminUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO admin_users (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, u.Username, u.PasswordHash, u.Role).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return auth.AdminUser{}, auth.ErrUsernameExists
		}
		return auth.AdminUser{}, fmt.Errorf("failed to create admin user: %w", err)
	}

	return u, nil
}

// GetByUsername implements auth.AdminUserRepository.
func (r *adminUserRepository) GetByUsername(ctx context.Context, username string) (auth.AdminUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, password_hash, role, created_at
		FROM admin_users
		WHERE username = $1
	`

	var u auth.AdminUser
	err := q.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.AdminUser{}, auth.ErrUserNotFound
		}
		return auth.AdminUser{}, fmt.Errorf("failed to get admin user: %w", err)
	}

	return u, nil
}

// GetByID implements auth.AdminUserRepository.
func (r *adminUserRepository) GetByID(ctx context.Context, id string) (auth.AdminUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, password_hash, role, created_at
		FROM admin_users
		WHERE id = $1
	`

	var u auth.AdminUser
	err := q.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.AdminUser{}, auth.ErrUserNotFound
		}
		return auth.AdminUser{}, fmt.Errorf("failed to get admin user: %w", err)
	}

	return u, nil
}
