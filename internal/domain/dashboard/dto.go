package dashboard

import (
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/report"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/schedule"
)

// AdminDashboardResponse is the combined payload for the administrator view
type AdminDashboardResponse struct {
	TotalStaff        int                             `json:"total_staff"`
	StaffPresentToday int                             `json:"staff_present_today"`
	PendingLeaves     int                             `json:"pending_leaves"`
	TodayAttendance   []attendance.TimesheetResponse  `json:"today_attendance"`
	PendingRequests   []leave.LeaveRequestResponse    `json:"pending_requests"`
	WorkingHours      []schedule.WorkingHoursResponse `json:"working_hours"`
	TimeOwed          []report.TimeOwedResult         `json:"time_owed"`
}

// StaffDashboardResponse is the combined payload for a staff member's view
type StaffDashboardResponse struct {
	StartDate    string                         `json:"start_date"`
	EndDate      string                         `json:"end_date"`
	Timesheet    []attendance.TimesheetResponse `json:"timesheet"`
	LeaveRecords []leave.LeaveRequestResponse   `json:"leave_records"`
	TimeOwed     int                            `json:"time_owed"`
}
