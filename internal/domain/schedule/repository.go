package schedule

import (
	"context"
)

type WorkingHoursRepository interface {
	// List returns all configured rows ordered by day type
	List(ctx context.Context) ([]WorkingHours, error)

	// GetByDayType returns nil without error when the day type has no row
	GetByDayType(ctx context.Context, dayType DayType) (*WorkingHours, error)

	// Upsert persists the work window for a day type, recording the actor
	Upsert(ctx context.Context, dayType DayType, startTime, endTime, actorID string) error
}
