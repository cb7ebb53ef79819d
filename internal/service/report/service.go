package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/report"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/schedule"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
)

type ReportServiceImpl struct {
	user.UserRepository
	attendance.TimesheetRepository
	leave.LeaveRequestRepository
	schedule.WorkingHoursRepository
}

func NewReportService(
	userRepository user.UserRepository,
	timesheetRepository attendance.TimesheetRepository,
	leaveRepository leave.LeaveRequestRepository,
	workingHoursRepository schedule.WorkingHoursRepository,
) report.ReportService {
	return &ReportServiceImpl{
		UserRepository:         userRepository,
		TimesheetRepository:    timesheetRepository,
		LeaveRequestRepository: leaveRepository,
		WorkingHoursRepository: workingHoursRepository,
	}
}

// OwedForRange implements report.ReportService.
func (s *ReportServiceImpl) OwedForRange(ctx context.Context, userID string, start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, leave.ErrInvalidDateRange
	}

	hours, err := s.WorkingHoursRepository.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list working hours: %w", err)
	}

	return s.owedForRange(ctx, NewCalculator(hours), userID, start, end)
}

// OwedForUserWindow implements report.ReportService.
func (s *ReportServiceImpl) OwedForUserWindow(ctx context.Context, userID string) (int, error) {
	bounds, err := s.TimesheetRepository.DateBounds(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get date bounds: %w", err)
	}
	if bounds == nil {
		return 0, nil
	}

	return s.OwedForRange(ctx, userID, bounds.First, bounds.Last)
}

// TimeOwedLeaderboard implements report.ReportService. Each staff member is
// scored over their own first-to-last observation window; staff without any
// timesheet rows are left off the board entirely.
func (s *ReportServiceImpl) TimeOwedLeaderboard(ctx context.Context) ([]report.TimeOwedResult, error) {
	hours, err := s.WorkingHoursRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list working hours: %w", err)
	}
	calc := NewCalculator(hours)

	staff, err := s.UserRepository.ListByRole(ctx, user.RoleStaff)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	results := make([]report.TimeOwedResult, 0, len(staff))
	for _, member := range staff {
		bounds, err := s.TimesheetRepository.DateBounds(ctx, member.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get date bounds for %s: %w", member.ID, err)
		}
		if bounds == nil {
			continue
		}

		owed, err := s.owedForRange(ctx, calc, member.ID, bounds.First, bounds.Last)
		if err != nil {
			return nil, err
		}

		results = append(results, report.TimeOwedResult{
			UserID:           member.ID,
			Username:         member.Username,
			TotalMinutesOwed: owed,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalMinutesOwed > results[j].TotalMinutesOwed
	})

	return results, nil
}

func (s *ReportServiceImpl) owedForRange(ctx context.Context, calc *Calculator, userID string, start, end time.Time) (int, error) {
	sheets, err := s.TimesheetRepository.ListByUserBetween(ctx, userID, start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to list timesheets: %w", err)
	}

	approved, err := s.LeaveRequestRepository.ListApprovedOverlapping(ctx, userID, start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to list approved leave: %w", err)
	}

	return calc.OwedBetween(start, end, sheets, approved), nil
}
