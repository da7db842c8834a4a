package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// CreateAdmin bootstraps an administrator account. Conflicts when the
	// username is taken.
	CreateAdmin(ctx context.Context, req CreateAdminRequest) (UserResponse, error)
}
