package leave

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/schedule"
)

type fakeLeaveRepo struct {
	leave.LeaveRequestRepository
	requests map[string]leave.LeaveRequest
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	l, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return l, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.Status) error {
	l, ok := f.requests[id]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	l.Status = status
	f.requests[id] = l
	return nil
}

type fakeTimesheetRepo struct {
	attendance.TimesheetRepository
	rows map[string]attendance.Timesheet // keyed by userID|date
}

func tsKey(userID string, date time.Time) string {
	return userID + "|" + date.Format("2006-01-02")
}

func (f *fakeTimesheetRepo) Create(ctx context.Context, t attendance.Timesheet) (attendance.Timesheet, error) {
	f.rows[tsKey(t.UserID, t.Date)] = t
	return t, nil
}

func (f *fakeTimesheetRepo) DeleteByUserAndDate(ctx context.Context, userID string, date time.Time) error {
	delete(f.rows, tsKey(userID, date))
	return nil
}

type fakeWorkingHoursRepo struct {
	schedule.WorkingHoursRepository
	byType map[schedule.DayType]schedule.WorkingHours
}

func (f *fakeWorkingHoursRepo) GetByDayType(ctx context.Context, dayType schedule.DayType) (*schedule.WorkingHours, error) {
	h, ok := f.byType[dayType]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func newDecideFixture(t *testing.T, request leave.LeaveRequest) (leave.LeaveService, *fakeLeaveRepo, *fakeTimesheetRepo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	leaveRepo := &fakeLeaveRepo{requests: map[string]leave.LeaveRequest{request.ID: request}}
	sheetRepo := &fakeTimesheetRepo{rows: map[string]attendance.Timesheet{}}
	hoursRepo := &fakeWorkingHoursRepo{byType: map[schedule.DayType]schedule.WorkingHours{
		schedule.DayTypeWeekday:  {DayType: schedule.DayTypeWeekday, StartTime: "09:00", EndTime: "17:30"},
		schedule.DayTypeSaturday: {DayType: schedule.DayTypeSaturday, StartTime: "09:00", EndTime: "13:00"},
	}}

	svc := NewLeaveService(mock, leaveRepo, sheetRepo, hoursRepo, nil)
	return svc, leaveRepo, sheetRepo, mock
}

func TestDecide_ApproveMaterializesNonSundayDays(t *testing.T) {
	// Friday 2024-03-08 through Monday 2024-03-11: the Sunday in between
	// must not produce a row.
	request := leave.LeaveRequest{
		ID:        "lr-1",
		UserID:    "alice",
		LeaveType: leave.LeaveTypeVacation,
		StartDate: day("2024-03-08"),
		EndDate:   day("2024-03-11"),
		Status:    leave.StatusPending,
		Reason:    "sister's wedding",
	}

	svc, leaveRepo, sheetRepo, mock := newDecideFixture(t, request)
	mock.ExpectBegin()
	mock.ExpectCommit()

	decided, err := svc.Decide(context.Background(), leave.DecideLeaveRequest{LeaveID: "lr-1", Status: "Approved"})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, decided.Status)
	assert.Equal(t, leave.StatusApproved, leaveRepo.requests["lr-1"].Status)

	require.Len(t, sheetRepo.rows, 3)
	assert.NotContains(t, sheetRepo.rows, tsKey("alice", day("2024-03-10")))

	friday := sheetRepo.rows[tsKey("alice", day("2024-03-08"))]
	require.NotNil(t, friday.TimeIn)
	require.NotNil(t, friday.TimeOut)
	assert.Equal(t, 9, friday.TimeIn.Hour())
	assert.Equal(t, 17, friday.TimeOut.Hour())
	require.NotNil(t, friday.Notes)
	// The note carries the stated reason, not the leave type.
	assert.Equal(t, "On sister's wedding leave", *friday.Notes)
	assert.True(t, friday.IsLeaveDay())

	saturday := sheetRepo.rows[tsKey("alice", day("2024-03-09"))]
	require.NotNil(t, saturday.TimeOut)
	assert.Equal(t, 13, saturday.TimeOut.Hour())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecide_ReapprovalStaysIdempotent(t *testing.T) {
	request := leave.LeaveRequest{
		ID:        "lr-1",
		UserID:    "alice",
		LeaveType: leave.LeaveTypeMedical,
		StartDate: day("2024-03-08"),
		EndDate:   day("2024-03-11"),
		Status:    leave.StatusPending,
	}

	svc, leaveRepo, sheetRepo, mock := newDecideFixture(t, request)
	mock.ExpectBegin()
	mock.ExpectCommit()

	_, err := svc.Decide(context.Background(), leave.DecideLeaveRequest{LeaveID: "lr-1", Status: "Approved"})
	require.NoError(t, err)
	require.Len(t, sheetRepo.rows, 3)

	// A second decision on the same request is rejected outright.
	_, err = svc.Decide(context.Background(), leave.DecideLeaveRequest{LeaveID: "lr-1", Status: "Approved"})
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
	assert.Len(t, sheetRepo.rows, 3)

	// Even a forced re-run of the materialization produces 3 rows, not 6:
	// covered days are cleared before they are rewritten.
	reset := leaveRepo.requests["lr-1"]
	reset.Status = leave.StatusPending
	leaveRepo.requests["lr-1"] = reset

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err = svc.Decide(context.Background(), leave.DecideLeaveRequest{LeaveID: "lr-1", Status: "Approved"})
	require.NoError(t, err)
	assert.Len(t, sheetRepo.rows, 3)
}

func TestDecide_RejectLeavesTimesheetsAlone(t *testing.T) {
	request := leave.LeaveRequest{
		ID:        "lr-2",
		UserID:    "bob",
		LeaveType: leave.LeaveTypePersonal,
		StartDate: day("2024-03-08"),
		EndDate:   day("2024-03-09"),
		Status:    leave.StatusPending,
	}

	svc, leaveRepo, sheetRepo, mock := newDecideFixture(t, request)
	mock.ExpectBegin()
	mock.ExpectCommit()

	decided, err := svc.Decide(context.Background(), leave.DecideLeaveRequest{LeaveID: "lr-2", Status: "Rejected"})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, decided.Status)
	assert.Equal(t, leave.StatusRejected, leaveRepo.requests["lr-2"].Status)
	assert.Empty(t, sheetRepo.rows)
}

func TestDecide_InvalidStatus(t *testing.T) {
	svc, _, _, _ := newDecideFixture(t, leave.LeaveRequest{ID: "lr-3", Status: leave.StatusPending})

	_, err := svc.Decide(context.Background(), leave.DecideLeaveRequest{LeaveID: "lr-3", Status: "Maybe"})
	assert.Error(t, err)
}
