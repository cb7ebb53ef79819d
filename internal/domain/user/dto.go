package user

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "Username is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Invalid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "Password must be at least 8 characters"})
	}
	if !validator.IsInSlice(r.Role, []string{string(RoleAdmin), string(RoleStaff)}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "Role must be Admin or Staff"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeleteUserRequest struct {
	UserID string `json:"user_id"`
}

func (r DeleteUserRequest) Validate() error {
	if validator.IsEmpty(r.UserID) {
		return validator.ValidationErrors{{Field: "user_id", Message: "User ID is required"}}
	}
	return nil
}

type UserResponse struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	Role              Role      `json:"role"`
	ProfilePictureURL *string   `json:"profile_picture_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Username:          u.Username,
		Email:             u.Email,
		Role:              u.Role,
		ProfilePictureURL: u.ProfilePictureURL,
		CreatedAt:         u.CreatedAt,
	}
}
