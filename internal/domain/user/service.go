package user

import (
	"context"
)

type UserService interface {
	// ListStaff returns all staff accounts ordered by username
	ListStaff(ctx context.Context) ([]User, error)

	// DeleteStaff removes a staff account together with its timesheets and
	// leave requests. Admin accounts cannot be deleted.
	DeleteStaff(ctx context.Context, userID string) error
}
