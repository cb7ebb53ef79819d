package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	// ClockIn opens today's timesheet row for the user
	ClockIn(ctx context.Context, userID string) (Timesheet, error)

	// ClockOut closes today's open row
	ClockOut(ctx context.Context, userID string) (Timesheet, error)

	// TimeStatus reports what punch actions are currently available
	TimeStatus(ctx context.Context, userID string) (TimeStatusResponse, error)

	// SaveNote updates the note on today's row
	SaveNote(ctx context.Context, userID string, note string) error

	// MyTimesheet lists the user's rows over [start, end]
	MyTimesheet(ctx context.Context, userID string, start, end time.Time) ([]Timesheet, error)
}
