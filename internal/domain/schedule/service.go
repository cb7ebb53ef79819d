package schedule

import (
	"context"
	"time"
)

type ScheduleService interface {
	// List returns the configured working hours
	List(ctx context.Context) ([]WorkingHours, error)

	// Update persists a new work window for a day type
	Update(ctx context.Context, req UpdateWorkingHoursRequest, actorID string) error

	// ExpectedMinutes resolves a date to its configured work duration.
	// Sundays and unconfigured day types yield 0.
	ExpectedMinutes(ctx context.Context, date time.Time) (int, error)
}
