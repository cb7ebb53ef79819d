package report

import (
	"context"
	"time"
)

type ReportService interface {
	// OwedForRange computes the user's signed minutes owed over
	// [start, end]. Approved leave takes precedence over raw punches.
	OwedForRange(ctx context.Context, userID string, start, end time.Time) (int, error)

	// OwedForUserWindow computes minutes owed over the user's own
	// first-to-last timesheet window; 0 when the user has no rows.
	OwedForUserWindow(ctx context.Context, userID string) (int, error)

	// TimeOwedLeaderboard ranks every staff member by minutes owed over
	// their own observation window, most owed first. Users without any
	// timesheet rows are excluded.
	TimeOwedLeaderboard(ctx context.Context) ([]TimeOwedResult, error)

	// TimeOwedLeaderboardPDF renders the leaderboard as a PDF document.
	TimeOwedLeaderboardPDF(ctx context.Context) ([]byte, error)
}

// DefaultWindow returns the fallback reporting range ending today: the last
// six days, or seven when today is Sunday, keeping the window anchored to
// the most recent Monday-Saturday block.
func DefaultWindow(today time.Time) (start, end time.Time) {
	end = today
	days := 6
	if today.Weekday() == time.Sunday {
		days = 7
	}
	start = today.AddDate(0, 0, -days)
	return start, end
}
