package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/dashboard"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/report"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/schedule"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	attendance.TimesheetRepository
	leave.LeaveRequestRepository
	schedule.WorkingHoursRepository
	reportService report.ReportService

	now func() time.Time
}

func NewDashboardService(
	dashboardRepository dashboard.DashboardRepository,
	timesheetRepository attendance.TimesheetRepository,
	leaveRepository leave.LeaveRequestRepository,
	workingHoursRepository schedule.WorkingHoursRepository,
	reportService report.ReportService,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository:    dashboardRepository,
		TimesheetRepository:    timesheetRepository,
		LeaveRequestRepository: leaveRepository,
		WorkingHoursRepository: workingHoursRepository,
		reportService:          reportService,
		now:                    time.Now,
	}
}

// Admin implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Admin(ctx context.Context) (dashboard.AdminDashboardResponse, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	totalStaff, err := s.DashboardRepository.TotalStaff(ctx)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to count staff: %w", err)
	}

	presentToday, err := s.DashboardRepository.StaffPresentOn(ctx, today)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to count present staff: %w", err)
	}

	pendingCount, err := s.LeaveRequestRepository.CountPending(ctx)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to count pending leave: %w", err)
	}

	todayAttendance, err := s.TimesheetRepository.ListForDate(ctx, today)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to list today's attendance: %w", err)
	}

	pendingRequests, err := s.LeaveRequestRepository.ListPending(ctx)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to list pending leave: %w", err)
	}

	hours, err := s.WorkingHoursRepository.List(ctx)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to list working hours: %w", err)
	}

	timeOwed, err := s.reportService.TimeOwedLeaderboard(ctx)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, err
	}

	hoursResponses := make([]schedule.WorkingHoursResponse, 0, len(hours))
	for _, h := range hours {
		hoursResponses = append(hoursResponses, schedule.ToResponse(h))
	}

	return dashboard.AdminDashboardResponse{
		TotalStaff:        totalStaff,
		StaffPresentToday: presentToday,
		PendingLeaves:     pendingCount,
		TodayAttendance:   attendance.ToResponses(todayAttendance),
		PendingRequests:   leave.ToResponses(pendingRequests),
		WorkingHours:      hoursResponses,
		TimeOwed:          timeOwed,
	}, nil
}

// Staff implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Staff(ctx context.Context, userID string, start, end time.Time) (dashboard.StaffDashboardResponse, error) {
	sheets, err := s.TimesheetRepository.ListByUserBetween(ctx, userID, start, end)
	if err != nil {
		return dashboard.StaffDashboardResponse{}, fmt.Errorf("failed to list timesheets: %w", err)
	}

	leaveRecords, err := s.LeaveRequestRepository.ListByUser(ctx, userID)
	if err != nil {
		return dashboard.StaffDashboardResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	owed, err := s.reportService.OwedForRange(ctx, userID, start, end)
	if err != nil {
		return dashboard.StaffDashboardResponse{}, err
	}

	return dashboard.StaffDashboardResponse{
		StartDate:    start.Format("2006-01-02"),
		EndDate:      end.Format("2006-01-02"),
		Timesheet:    attendance.ToResponses(sheets),
		LeaveRecords: leave.ToResponses(leaveRecords),
		TimeOwed:     owed,
	}, nil
}
