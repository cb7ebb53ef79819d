package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/schedule"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
)

type fakeUserRepo struct {
	user.UserRepository
	staff []user.User
}

func (f *fakeUserRepo) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	return f.staff, nil
}

type fakeTimesheetRepo struct {
	attendance.TimesheetRepository
	byUser map[string][]attendance.Timesheet
}

func (f *fakeTimesheetRepo) ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]attendance.Timesheet, error) {
	var out []attendance.Timesheet
	for _, t := range f.byUser[userID] {
		if !t.Date.Before(start) && !t.Date.After(end) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTimesheetRepo) DateBounds(ctx context.Context, userID string) (*attendance.DateBounds, error) {
	rows := f.byUser[userID]
	if len(rows) == 0 {
		return nil, nil
	}
	bounds := attendance.DateBounds{First: rows[0].Date, Last: rows[0].Date}
	for _, t := range rows[1:] {
		if t.Date.Before(bounds.First) {
			bounds.First = t.Date
		}
		if t.Date.After(bounds.Last) {
			bounds.Last = t.Date
		}
	}
	return &bounds, nil
}

type fakeLeaveRepo struct {
	leave.LeaveRequestRepository
	approved map[string][]leave.LeaveRequest
}

func (f *fakeLeaveRepo) ListApprovedOverlapping(ctx context.Context, userID string, start, end time.Time) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, l := range f.approved[userID] {
		if !l.StartDate.After(end) && !l.EndDate.Before(start) {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeWorkingHoursRepo struct {
	schedule.WorkingHoursRepository
	hours []schedule.WorkingHours
}

func (f *fakeWorkingHoursRepo) List(ctx context.Context) ([]schedule.WorkingHours, error) {
	return f.hours, nil
}

func fullDay(userID string, d time.Time) attendance.Timesheet {
	endClock := "17:30"
	if d.Weekday() == time.Saturday {
		endClock = "13:00"
	}
	in, out := punches(d, "09:00", endClock)
	return attendance.Timesheet{UserID: userID, Date: d, TimeIn: in, TimeOut: out}
}

func TestTimeOwedLeaderboard(t *testing.T) {
	monday := day("2024-03-04")
	tuesday := day("2024-03-05")

	sheets := &fakeTimesheetRepo{byUser: map[string][]attendance.Timesheet{
		// alice worked both days in full.
		"alice": {fullDay("alice", monday), fullDay("alice", tuesday)},
		// bob only shows a row on Monday; Tuesday is a full-day deficit.
		"bob": {fullDay("bob", monday), {UserID: "bob", Date: tuesday}},
		// carol has no rows at all.
	}}
	// bob's Tuesday row exists but has no punches, so it still owes 510.
	sheets.byUser["bob"][1].TimeIn = nil

	svc := NewReportService(
		&fakeUserRepo{staff: []user.User{
			{ID: "alice", Username: "alice", Role: user.RoleStaff},
			{ID: "bob", Username: "bob", Role: user.RoleStaff},
			{ID: "carol", Username: "carol", Role: user.RoleStaff},
		}},
		sheets,
		&fakeLeaveRepo{},
		&fakeWorkingHoursRepo{hours: defaultHours()},
	)

	results, err := svc.TimeOwedLeaderboard(context.Background())
	require.NoError(t, err)

	// carol never appears: no observation window.
	require.Len(t, results, 2)
	assert.Equal(t, "bob", results[0].Username)
	assert.Equal(t, 510, results[0].TotalMinutesOwed)
	assert.Equal(t, "alice", results[1].Username)
	assert.Equal(t, 0, results[1].TotalMinutesOwed)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].TotalMinutesOwed, results[i].TotalMinutesOwed)
	}
}

func TestOwedForUserWindow_NoRows(t *testing.T) {
	svc := NewReportService(
		&fakeUserRepo{},
		&fakeTimesheetRepo{byUser: map[string][]attendance.Timesheet{}},
		&fakeLeaveRepo{},
		&fakeWorkingHoursRepo{hours: defaultHours()},
	)

	owed, err := svc.OwedForUserWindow(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, owed)
}

func TestOwedForRange_ReversedRange(t *testing.T) {
	svc := NewReportService(
		&fakeUserRepo{},
		&fakeTimesheetRepo{byUser: map[string][]attendance.Timesheet{}},
		&fakeLeaveRepo{},
		&fakeWorkingHoursRepo{hours: defaultHours()},
	)

	_, err := svc.OwedForRange(context.Background(), "alice", day("2024-03-05"), day("2024-03-04"))
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestOwedForRange_ApprovedLeaveCoverage(t *testing.T) {
	monday := day("2024-03-04")
	tuesday := day("2024-03-05")

	svc := NewReportService(
		&fakeUserRepo{},
		&fakeTimesheetRepo{byUser: map[string][]attendance.Timesheet{
			"alice": {fullDay("alice", monday)},
		}},
		&fakeLeaveRepo{approved: map[string][]leave.LeaveRequest{
			"alice": {{UserID: "alice", StartDate: tuesday, EndDate: tuesday, Status: leave.StatusApproved}},
		}},
		&fakeWorkingHoursRepo{hours: defaultHours()},
	)

	owed, err := svc.OwedForRange(context.Background(), "alice", monday, tuesday)
	require.NoError(t, err)
	assert.Equal(t, 0, owed)
}
