package user

import (
	"time"
)

type Role string

const (
	RoleAdmin Role = "Admin"
	RoleStaff Role = "Staff"
)

type User struct {
	ID                string
	Username          string
	Email             string
	PasswordHash      string
	Role              Role
	ProfilePictureURL *string
	CreatedAt         time.Time
}
