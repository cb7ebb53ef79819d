package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type timesheetRepositoryImpl struct {
	db database.Pool
}

func NewTimesheetRepository(db database.Pool) attendance.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

func (r *timesheetRepositoryImpl) Create(ctx context.Context, t attendance.Timesheet) (attendance.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	query := `
		INSERT INTO timesheets (id, user_id, date, time_in, time_out, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	now := time.Now()
	err := q.QueryRow(ctx, query,
		t.ID,
		t.UserID,
		t.Date,
		t.TimeIn,
		t.TimeOut,
		t.Notes,
		now,
	).Scan(&t.CreatedAt)
	if err != nil {
		return attendance.Timesheet{}, err
	}

	return t, nil
}

func (r *timesheetRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, time_in, time_out, notes, created_at
		FROM timesheets
		WHERE user_id = $1 AND date = $2
	`

	var t attendance.Timesheet
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&t.ID,
		&t.UserID,
		&t.Date,
		&t.TimeIn,
		&t.TimeOut,
		&t.Notes,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &t, nil
}

func (r *timesheetRepositoryImpl) SetTimeOut(ctx context.Context, userID string, date time.Time, timeOut time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET time_out = $3
		WHERE user_id = $1 AND date = $2
	`

	commandTag, err := q.Exec(ctx, query, userID, date, timeOut)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrTimesheetNotFound
	}

	return nil
}

func (r *timesheetRepositoryImpl) UpdateNotes(ctx context.Context, userID string, date time.Time, notes string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET notes = $3
		WHERE user_id = $1 AND date = $2
	`

	commandTag, err := q.Exec(ctx, query, userID, date, notes)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrTimesheetNotFound
	}

	return nil
}

func (r *timesheetRepositoryImpl) ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]attendance.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, time_in, time_out, notes, created_at
		FROM timesheets
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sheets []attendance.Timesheet
	for rows.Next() {
		var t attendance.Timesheet
		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Date,
			&t.TimeIn,
			&t.TimeOut,
			&t.Notes,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, t)
	}

	return sheets, rows.Err()
}

func (r *timesheetRepositoryImpl) ListForDate(ctx context.Context, date time.Time) ([]attendance.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.user_id, t.date, t.time_in, t.time_out, t.notes, t.created_at, u.username
		FROM timesheets t
		INNER JOIN users u ON t.user_id = u.id
		WHERE t.date = $1 AND u.role = 'Staff'
		ORDER BY u.username ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sheets []attendance.Timesheet
	for rows.Next() {
		var t attendance.Timesheet
		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Date,
			&t.TimeIn,
			&t.TimeOut,
			&t.Notes,
			&t.CreatedAt,
			&t.Username,
		)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, t)
	}

	return sheets, rows.Err()
}

func (r *timesheetRepositoryImpl) DateBounds(ctx context.Context, userID string) (*attendance.DateBounds, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT MIN(date), MAX(date)
		FROM timesheets
		WHERE user_id = $1
	`

	// MIN/MAX over zero rows yield NULL, not an empty result set.
	var first, last *time.Time
	if err := q.QueryRow(ctx, query, userID).Scan(&first, &last); err != nil {
		return nil, err
	}
	if first == nil || last == nil {
		return nil, nil
	}

	return &attendance.DateBounds{First: *first, Last: *last}, nil
}

func (r *timesheetRepositoryImpl) DeleteByUserAndDate(ctx context.Context, userID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM timesheets
		WHERE user_id = $1 AND date = $2
	`

	_, err := q.Exec(ctx, query, userID, date)
	return err
}

func (r *timesheetRepositoryImpl) DeleteByUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM timesheets
		WHERE user_id = $1
	`

	_, err := q.Exec(ctx, query, userID)
	return err
}
