package user

import (
	"context"
)

type UserRepository interface {
	// Create inserts a new user and returns it with generated fields set
	Create(ctx context.Context, u User) (User, error)

	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	// ListByRole returns users with the given role ordered by username
	ListByRole(ctx context.Context, role Role) ([]User, error)

	CountByRole(ctx context.Context, role Role) (int, error)

	Delete(ctx context.Context, id string) error
}
