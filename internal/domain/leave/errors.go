package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidDateRange      = errors.New("end date before start date")
	ErrUnsupportedDocument   = errors.New("unsupported document type")
)
