package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/schedule"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
	"github.com/staffdesk/staffdesk-backend-go/internal/repository/postgresql"
	"github.com/staffdesk/staffdesk-backend-go/internal/service/file"
)

type LeaveServiceImpl struct {
	db database.Pool
	leave.LeaveRequestRepository
	attendance.TimesheetRepository
	schedule.WorkingHoursRepository
	fileService file.FileService
}

func NewLeaveService(
	db database.Pool,
	leaveRepository leave.LeaveRequestRepository,
	timesheetRepository attendance.TimesheetRepository,
	workingHoursRepository schedule.WorkingHoursRepository,
	fileService file.FileService,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: leaveRepository,
		TimesheetRepository:    timesheetRepository,
		WorkingHoursRepository: workingHoursRepository,
		fileService:            fileService,
	}
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	var documentURL *string
	if req.File != nil && req.FileHeader != nil {
		path, err := s.fileService.UploadLeaveDocument(ctx, req.UserID, req.File, req.FileHeader.Filename)
		if err != nil {
			return leave.LeaveRequest{}, err
		}
		url, err := s.fileService.GetFileURL(ctx, path, 0)
		if err != nil {
			return leave.LeaveRequest{}, fmt.Errorf("failed to resolve document url: %w", err)
		}
		documentURL = &url
	}

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		UserID:      req.UserID,
		LeaveType:   leave.LeaveType(req.LeaveType),
		StartDate:   start,
		EndDate:     end,
		Status:      leave.StatusPending,
		Reason:      req.Reason,
		DocumentURL: documentURL,
	})
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// Decide implements leave.LeaveService. Approval materializes timesheet rows
// for every covered non-Sunday day inside one transaction; rejection only
// records the status. Deciding an already processed request fails.
func (s *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, req.LeaveID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
	}

	status := leave.Status(req.Status)

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.LeaveRequestRepository.UpdateStatus(txCtx, request.ID, status); err != nil {
			return fmt.Errorf("failed to update leave status: %w", err)
		}

		if status == leave.StatusApproved {
			if err := s.materialize(txCtx, request); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	request.Status = status
	return request, nil
}

// materialize rewrites the attendance rows covered by an approved request.
// Re-approving the same range stays idempotent because every covered day is
// deleted before it is reinserted.
func (s *LeaveServiceImpl) materialize(ctx context.Context, request leave.LeaveRequest) error {
	note := attendance.LeaveNote(request.Reason)

	for day := request.StartDate; !day.After(request.EndDate); day = day.AddDate(0, 0, 1) {
		dayType := schedule.ResolveDayType(day)
		if dayType == schedule.DayTypeSunday {
			continue
		}

		hours, err := s.WorkingHoursRepository.GetByDayType(ctx, dayType)
		if err != nil {
			return fmt.Errorf("failed to get working hours for %s: %w", dayType, err)
		}
		if hours == nil {
			// No configured window means nothing is owed that day, so
			// there is nothing to cover.
			continue
		}

		timeIn, err := punchAt(day, hours.StartTime)
		if err != nil {
			return err
		}
		timeOut, err := punchAt(day, hours.EndTime)
		if err != nil {
			return err
		}

		if err := s.TimesheetRepository.DeleteByUserAndDate(ctx, request.UserID, day); err != nil {
			return fmt.Errorf("failed to clear timesheet for %s: %w", day.Format("2006-01-02"), err)
		}

		_, err = s.TimesheetRepository.Create(ctx, attendance.Timesheet{
			UserID:  request.UserID,
			Date:    day,
			TimeIn:  &timeIn,
			TimeOut: &timeOut,
			Notes:   &note,
		})
		if err != nil {
			return fmt.Errorf("failed to materialize timesheet for %s: %w", day.Format("2006-01-02"), err)
		}
	}

	return nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	requests, err := s.LeaveRequestRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

// ListPending implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	requests, err := s.LeaveRequestRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	return requests, nil
}

// punchAt combines a calendar date with an "HH:MM" clock value.
func punchAt(day time.Time, clock string) (time.Time, error) {
	minutes, err := schedule.ClockMinutes(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC).
		Add(time.Duration(minutes) * time.Minute), nil
}
