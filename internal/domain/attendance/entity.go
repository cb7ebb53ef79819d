package attendance

import (
	"strings"
	"time"
)

// Timesheet is one attendance record. At most one row exists per
// (UserID, Date); a row is created by clock-in (TimeOut nil) or by leave
// materialization (both punches set).
type Timesheet struct {
	ID        string
	UserID    string
	Date      time.Time
	TimeIn    *time.Time
	TimeOut   *time.Time
	Notes     *string
	CreatedAt time.Time

	// Joined for admin views
	Username *string
}

// IsLeaveDay reports whether the record was materialized from an approved
// leave request. Such days count as fully worked.
func (t Timesheet) IsLeaveDay() bool {
	if t.Notes == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*t.Notes), "leave")
}

// LeaveNote builds the notes value written by leave materialization.
func LeaveNote(reason string) string {
	return "On " + reason + " leave"
}
