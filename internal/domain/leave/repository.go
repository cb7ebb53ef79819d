package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, l LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	UpdateStatus(ctx context.Context, id string, status Status) error

	// ListByUser returns the user's requests newest first
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)

	// ListPending returns all Pending staff requests oldest first with
	// usernames joined
	ListPending(ctx context.Context) ([]LeaveRequest, error)

	// ListApprovedOverlapping returns the user's Approved requests whose
	// [start_date, end_date] overlaps [start, end]
	ListApprovedOverlapping(ctx context.Context, userID string, start, end time.Time) ([]LeaveRequest, error)

	CountPending(ctx context.Context) (int, error)

	// DeleteByUser removes every request for the user (staff deletion)
	DeleteByUser(ctx context.Context, userID string) error
}
