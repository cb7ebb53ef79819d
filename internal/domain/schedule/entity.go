package schedule

import (
	"fmt"
	"time"
)

// DayType classifies a calendar date for working-hours purposes. Only
// Weekday and Saturday carry a configured row; Sunday is implicitly
// non-working and never persisted.
type DayType string

const (
	DayTypeWeekday  DayType = "Weekday"
	DayTypeSaturday DayType = "Saturday"
	DayTypeSunday   DayType = "Sunday"
)

// WorkingHours is the configured work window for one day type.
// Invariant (not runtime-checked): StartTime < EndTime.
type WorkingHours struct {
	ID          string
	DayType     DayType
	StartTime   string // "HH:MM"
	EndTime     string // "HH:MM"
	UpdatedBy   *string
	LastUpdated time.Time
}

// SpanMinutes returns the configured work duration in minutes, or 0 when
// either clock value is malformed.
func (w WorkingHours) SpanMinutes() int {
	start, err := ClockMinutes(w.StartTime)
	if err != nil {
		return 0
	}
	end, err := ClockMinutes(w.EndTime)
	if err != nil {
		return 0
	}
	return end - start
}

// ResolveDayType maps a date to its day type from the ISO weekday.
func ResolveDayType(date time.Time) DayType {
	switch date.Weekday() {
	case time.Sunday:
		return DayTypeSunday
	case time.Saturday:
		return DayTypeSaturday
	default:
		return DayTypeWeekday
	}
}

// ClockMinutes parses an "HH:MM" clock value into minutes from midnight.
func ClockMinutes(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
