package user

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
	"github.com/staffdesk/staffdesk-backend-go/internal/repository/postgresql"
)

type UserServiceImpl struct {
	db database.Pool
	user.UserRepository
	attendance.TimesheetRepository
	leave.LeaveRequestRepository
}

func NewUserService(
	db database.Pool,
	userRepository user.UserRepository,
	timesheetRepository attendance.TimesheetRepository,
	leaveRepository leave.LeaveRequestRepository,
) user.UserService {
	return &UserServiceImpl{
		db:                     db,
		UserRepository:         userRepository,
		TimesheetRepository:    timesheetRepository,
		LeaveRequestRepository: leaveRepository,
	}
}

// ListStaff implements user.UserService.
func (s *UserServiceImpl) ListStaff(ctx context.Context) ([]user.User, error) {
	staff, err := s.UserRepository.ListByRole(ctx, user.RoleStaff)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

// DeleteStaff implements user.UserService. The account and all its history
// go together or not at all.
func (s *UserServiceImpl) DeleteStaff(ctx context.Context, userID string) error {
	target, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if target.Role == user.RoleAdmin {
		return user.ErrCannotDeleteAdmin
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.TimesheetRepository.DeleteByUser(txCtx, userID); err != nil {
			return fmt.Errorf("failed to delete timesheets: %w", err)
		}
		if err := s.LeaveRequestRepository.DeleteByUser(txCtx, userID); err != nil {
			return fmt.Errorf("failed to delete leave requests: %w", err)
		}
		if err := s.UserRepository.Delete(txCtx, userID); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}
