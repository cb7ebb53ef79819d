package leave

import (
	"mime/multipart"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	UserID    string
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`

	// Optional supporting document from the multipart form
	File       multipart.File
	FileHeader *multipart.FileHeader
}

func (r SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.LeaveType, []string{
		string(LeaveTypeMedical), string(LeaveTypeVacation), string(LeaveTypePersonal), string(LeaveTypeOther),
	}) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "Invalid leave type"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must be YYYY-MM-DD"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must not be before start date"})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "Reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DecideLeaveRequest is an administrator's approval decision.
type DecideLeaveRequest struct {
	LeaveID string `json:"leave_id"`
	Status  string `json:"status"`
}

func (r DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveID) {
		errs = append(errs, validator.ValidationError{Field: "leave_id", Message: "Leave ID is required"})
	}
	if !validator.IsInSlice(r.Status, []string{string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "Status must be Approved or Rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Username    *string   `json:"username,omitempty"`
	LeaveType   LeaveType `json:"leave_type"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Status      Status    `json:"status"`
	Reason      string    `json:"reason"`
	DocumentURL *string   `json:"document_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToResponse(l LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:          l.ID,
		UserID:      l.UserID,
		Username:    l.Username,
		LeaveType:   l.LeaveType,
		StartDate:   l.StartDate.Format("2006-01-02"),
		EndDate:     l.EndDate.Format("2006-01-02"),
		Status:      l.Status,
		Reason:      l.Reason,
		DocumentURL: l.DocumentURL,
		CreatedAt:   l.CreatedAt,
	}
}

func ToResponses(rows []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, ToResponse(row))
	}
	return out
}
