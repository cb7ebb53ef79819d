package leave

import (
	"context"
)

type LeaveService interface {
	// Submit files a new Pending request, storing the supporting document
	// when one was attached
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveRequest, error)

	// Decide applies an administrator's approval decision. Approval
	// materializes timesheet rows for every covered non-Sunday day;
	// rejection only records the status.
	Decide(ctx context.Context, req DecideLeaveRequest) (LeaveRequest, error)

	// ListMine returns the user's own requests
	ListMine(ctx context.Context, userID string) ([]LeaveRequest, error)

	// ListPending returns all Pending staff requests for review
	ListPending(ctx context.Context) ([]LeaveRequest, error)
}
