package auth

import (
	"context"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
)

type AuthService interface {
	// Login verifies credentials and issues an access token
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Register creates a new user account (administrator action)
	Register(ctx context.Context, req user.CreateUserRequest) (user.User, error)
}
