package dashboard

import (
	"context"
	"time"
)

type DashboardService interface {
	// Admin assembles the administrator dashboard
	Admin(ctx context.Context) (AdminDashboardResponse, error)

	// Staff assembles a staff member's dashboard over [start, end]
	Staff(ctx context.Context, userID string, start, end time.Time) (StaffDashboardResponse, error)
}
