package attendance

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type TimeStatusResponse struct {
	CanTimeIn   bool    `json:"can_time_in"`
	CanTimeOut  bool    `json:"can_time_out"`
	CurrentNote *string `json:"current_note,omitempty"`
}

type SaveNoteRequest struct {
	Note string `json:"note"`
}

// RangeQuery carries an optional explicit date range; both bounds must be
// valid ISO dates when present.
type RangeQuery struct {
	StartDate string
	EndDate   string
}

func (q RangeQuery) Validate() error {
	var errs validator.ValidationErrors

	if q.StartDate != "" {
		if _, ok := validator.IsValidDate(q.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date must be YYYY-MM-DD"})
		}
	}
	if q.EndDate != "" {
		if _, ok := validator.IsValidDate(q.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimesheetResponse struct {
	ID       string     `json:"id"`
	UserID   string     `json:"user_id"`
	Username *string    `json:"username,omitempty"`
	Date     string     `json:"date"`
	TimeIn   *time.Time `json:"time_in,omitempty"`
	TimeOut  *time.Time `json:"time_out,omitempty"`
	Notes    *string    `json:"notes,omitempty"`
}

func ToResponse(t Timesheet) TimesheetResponse {
	return TimesheetResponse{
		ID:       t.ID,
		UserID:   t.UserID,
		Username: t.Username,
		Date:     t.Date.Format("2006-01-02"),
		TimeIn:   t.TimeIn,
		TimeOut:  t.TimeOut,
		Notes:    t.Notes,
	}
}

func ToResponses(rows []Timesheet) []TimesheetResponse {
	out := make([]TimesheetResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, ToResponse(row))
	}
	return out
}
