package dashboard

import (
	"context"
	"time"
)

// DashboardRepository serves the aggregate counts on the admin view.
type DashboardRepository interface {
	// TotalStaff counts users with the Staff role
	TotalStaff(ctx context.Context) (int, error)

	// StaffPresentOn counts distinct staff members with a timesheet row on
	// the given date
	StaffPresentOn(ctx context.Context, date time.Time) (int, error)
}
