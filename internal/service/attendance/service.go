package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendance.TimesheetRepository

	now func() time.Time
}

func NewAttendanceService(timesheetRepository attendance.TimesheetRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		TimesheetRepository: timesheetRepository,
		now:                 time.Now,
	}
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, userID string) (attendance.Timesheet, error) {
	now := s.now()
	today := dateOf(now)

	existing, err := s.TimesheetRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.Timesheet{}, fmt.Errorf("failed to get today's timesheet: %w", err)
	}
	if existing != nil {
		return attendance.Timesheet{}, attendance.ErrAlreadyClockedIn
	}

	created, err := s.TimesheetRepository.Create(ctx, attendance.Timesheet{
		UserID: userID,
		Date:   today,
		TimeIn: &now,
	})
	if err != nil {
		return attendance.Timesheet{}, fmt.Errorf("failed to create timesheet: %w", err)
	}

	return created, nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, userID string) (attendance.Timesheet, error) {
	now := s.now()
	today := dateOf(now)

	existing, err := s.TimesheetRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.Timesheet{}, fmt.Errorf("failed to get today's timesheet: %w", err)
	}
	if existing == nil || existing.TimeIn == nil {
		return attendance.Timesheet{}, attendance.ErrNotClockedIn
	}
	if existing.TimeOut != nil {
		return attendance.Timesheet{}, attendance.ErrAlreadyClockedOut
	}

	if err := s.TimesheetRepository.SetTimeOut(ctx, userID, today, now); err != nil {
		return attendance.Timesheet{}, fmt.Errorf("failed to set time out: %w", err)
	}

	existing.TimeOut = &now
	return *existing, nil
}

// TimeStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TimeStatus(ctx context.Context, userID string) (attendance.TimeStatusResponse, error) {
	today := dateOf(s.now())

	existing, err := s.TimesheetRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.TimeStatusResponse{}, fmt.Errorf("failed to get today's timesheet: %w", err)
	}

	if existing == nil {
		return attendance.TimeStatusResponse{CanTimeIn: true}, nil
	}

	return attendance.TimeStatusResponse{
		CanTimeOut:  existing.TimeIn != nil && existing.TimeOut == nil,
		CurrentNote: existing.Notes,
	}, nil
}

// SaveNote implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SaveNote(ctx context.Context, userID string, note string) error {
	today := dateOf(s.now())

	existing, err := s.TimesheetRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return fmt.Errorf("failed to get today's timesheet: %w", err)
	}
	if existing == nil {
		return attendance.ErrNotClockedIn
	}

	if err := s.TimesheetRepository.UpdateNotes(ctx, userID, today, note); err != nil {
		return fmt.Errorf("failed to update notes: %w", err)
	}

	return nil
}

// MyTimesheet implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MyTimesheet(ctx context.Context, userID string, start, end time.Time) ([]attendance.Timesheet, error) {
	sheets, err := s.TimesheetRepository.ListByUserBetween(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	return sheets, nil
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
