package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrUsernameExists         = errors.New("username already taken")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrCannotDeleteAdmin      = errors.New("admin accounts cannot be deleted")
)
