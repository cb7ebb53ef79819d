package schedule

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type UpdateWorkingHoursRequest struct {
	DayType   string `json:"day_type"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Validate checks presence and format only. The start < end invariant is a
// documented contract with the caller and is not enforced here.
func (r UpdateWorkingHoursRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.DayType, []string{string(DayTypeWeekday), string(DayTypeSaturday)}) {
		errs = append(errs, validator.ValidationError{Field: "day_type", Message: "Day type must be Weekday or Saturday"})
	}
	if !validator.IsValidClock(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "Start time must be HH:MM"})
	}
	if !validator.IsValidClock(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "End time must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkingHoursResponse struct {
	DayType     DayType   `json:"day_type"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	UpdatedBy   *string   `json:"updated_by,omitempty"`
	LastUpdated time.Time `json:"last_updated"`
}

func ToResponse(w WorkingHours) WorkingHoursResponse {
	return WorkingHoursResponse{
		DayType:     w.DayType,
		StartTime:   w.StartTime,
		EndTime:     w.EndTime,
		UpdatedBy:   w.UpdatedBy,
		LastUpdated: w.LastUpdated,
	}
}
