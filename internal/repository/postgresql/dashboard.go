package postgresql

import (
	"context"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/dashboard"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db database.Pool
}

func NewDashboardRepository(db database.Pool) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) TotalStaff(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM users
		WHERE role = 'Staff'
	`

	var count int
	if err := q.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *dashboardRepositoryImpl) StaffPresentOn(ctx context.Context, date time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT t.user_id)
		FROM timesheets t
		INNER JOIN users u ON t.user_id = u.id
		WHERE t.date = $1 AND u.role = 'Staff'
	`

	var count int
	if err := q.QueryRow(ctx, query, date).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
