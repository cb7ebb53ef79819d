package attendance

import (
	"context"
	"time"
)

// DateBounds is a user's observation window: the first and last dates with
// a timesheet row.
type DateBounds struct {
	First time.Time
	Last  time.Time
}

type TimesheetRepository interface {
	// Create inserts a new row. The (user, date) uniqueness invariant is
	// guarded by the schema.
	Create(ctx context.Context, t Timesheet) (Timesheet, error)

	// GetByUserAndDate returns nil without error when no row exists
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Timesheet, error)

	// SetTimeOut closes the open row for (user, date)
	SetTimeOut(ctx context.Context, userID string, date time.Time, timeOut time.Time) error

	// UpdateNotes replaces the notes on the row for (user, date)
	UpdateNotes(ctx context.Context, userID string, date time.Time, notes string) error

	// ListByUserBetween returns rows for the user with date in [start, end],
	// newest first
	ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]Timesheet, error)

	// ListForDate returns all staff rows for one date with usernames joined
	ListForDate(ctx context.Context, date time.Time) ([]Timesheet, error)

	// DateBounds returns nil without error when the user has no rows
	DateBounds(ctx context.Context, userID string) (*DateBounds, error)

	DeleteByUserAndDate(ctx context.Context, userID string, date time.Time) error

	// DeleteByUser removes every row for the user (staff deletion)
	DeleteByUser(ctx context.Context, userID string) error
}
