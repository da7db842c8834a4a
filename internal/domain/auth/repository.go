package auth

import "context"

type AdminUserRepository interface {
	Create(ctx context.Context, user AdminUser) (AdminUser, error)
	GetByUsername(ctx context.Context, username string) (AdminUser, error)
	GetByID(ctx context.Context, id string) (AdminUser, error)
}
