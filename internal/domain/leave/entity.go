package leave

import (
	"time"
)

type LeaveType string

const (
	LeaveTypeMedical  LeaveType = "Medical"
	LeaveTypeVacation LeaveType = "Vacation"
	LeaveTypePersonal LeaveType = "Personal"
	LeaveTypeOther    LeaveType = "Other"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// LeaveRequest is a staff leave application. StartDate and EndDate are
// inclusive. Status transitions exactly once, from Pending to Approved or
// Rejected, by an administrator action.
type LeaveRequest struct {
	ID          string
	UserID      string
	LeaveType   LeaveType
	StartDate   time.Time
	EndDate     time.Time
	Status      Status
	Reason      string
	DocumentURL *string
	CreatedAt   time.Time

	// Joined for admin views
	Username *string
}

// CoversDate reports whether date falls inside the request's range.
func (l LeaveRequest) CoversDate(date time.Time) bool {
	return !date.Before(l.StartDate) && !date.After(l.EndDate)
}
