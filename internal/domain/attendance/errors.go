package attendance

import "errors"

var (
	ErrAlreadyClockedIn  = errors.New("already timed in for today")
	ErrAlreadyClockedOut = errors.New("already timed out for today")
	ErrNotClockedIn      = errors.New("no time in recorded for today")
	ErrTimesheetNotFound = errors.New("timesheet entry not found")
)
