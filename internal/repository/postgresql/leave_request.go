package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db database.Pool
}

func NewLeaveRequestRepository(db database.Pool) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.Status == "" {
		l.Status = leave.StatusPending
	}

	query := `
		INSERT INTO leave_requests (id, user_id, leave_type, start_date, end_date, status, reason, document_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	now := time.Now()
	err := q.QueryRow(ctx, query,
		l.ID,
		l.UserID,
		string(l.LeaveType),
		l.StartDate,
		l.EndDate,
		string(l.Status),
		l.Reason,
		l.DocumentURL,
		now,
	).Scan(&l.CreatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return l, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, leave_type, start_date, end_date, status, reason, document_url, created_at
		FROM leave_requests
		WHERE id = $1
	`

	var l leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&l.ID,
		&l.UserID,
		&l.LeaveType,
		&l.StartDate,
		&l.EndDate,
		&l.Status,
		&l.Reason,
		&l.DocumentURL,
		&l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return l, nil
}

func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, string(status))
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

func (r *leaveRequestRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, leave_type, start_date, end_date, status, reason, document_url, created_at
		FROM leave_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaveRequests(rows, false)
}

func (r *leaveRequestRepositoryImpl) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.user_id, lr.leave_type, lr.start_date, lr.end_date, lr.status, lr.reason, lr.document_url, lr.created_at, u.username
		FROM leave_requests lr
		INNER JOIN users u ON lr.user_id = u.id
		WHERE lr.status = 'Pending' AND u.role = 'Staff'
		ORDER BY lr.created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaveRequests(rows, true)
}

func (r *leaveRequestRepositoryImpl) ListApprovedOverlapping(ctx context.Context, userID string, start, end time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, leave_type, start_date, end_date, status, reason, document_url, created_at
		FROM leave_requests
		WHERE user_id = $1
		  AND status = 'Approved'
		  AND start_date <= $3
		  AND end_date >= $2
		ORDER BY start_date ASC
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaveRequests(rows, false)
}

func (r *leaveRequestRepositoryImpl) CountPending(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM leave_requests
		WHERE status = 'Pending'
	`

	var count int
	if err := q.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *leaveRequestRepositoryImpl) DeleteByUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM leave_requests
		WHERE user_id = $1
	`

	_, err := q.Exec(ctx, query, userID)
	return err
}

func scanLeaveRequests(rows pgx.Rows, withUsername bool) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		var l leave.LeaveRequest
		dest := []any{
			&l.ID,
			&l.UserID,
			&l.LeaveType,
			&l.StartDate,
			&l.EndDate,
			&l.Status,
			&l.Reason,
			&l.DocumentURL,
			&l.CreatedAt,
		}
		if withUsername {
			dest = append(dest, &l.Username)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		requests = append(requests, l)
	}

	return requests, rows.Err()
}
