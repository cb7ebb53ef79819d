package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/schedule"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type workingHoursRepositoryImpl struct {
	db database.Pool
}

func NewWorkingHoursRepository(db database.Pool) schedule.WorkingHoursRepository {
	return &workingHoursRepositoryImpl{db: db}
}

func (r *workingHoursRepositoryImpl) List(ctx context.Context) ([]schedule.WorkingHours, error) {
	q := GetQuerier(ctx, r.db)

	// Clock values are stored as TIME columns; read them back as "HH:MM".
	query := `
		SELECT id, day_type,
			   to_char(start_time, 'HH24:MI'),
			   to_char(end_time, 'HH24:MI'),
			   updated_by, last_updated
		FROM working_hours
		ORDER BY day_type ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hours []schedule.WorkingHours
	for rows.Next() {
		var w schedule.WorkingHours
		err := rows.Scan(
			&w.ID,
			&w.DayType,
			&w.StartTime,
			&w.EndTime,
			&w.UpdatedBy,
			&w.LastUpdated,
		)
		if err != nil {
			return nil, err
		}
		hours = append(hours, w)
	}

	return hours, rows.Err()
}

func (r *workingHoursRepositoryImpl) GetByDayType(ctx context.Context, dayType schedule.DayType) (*schedule.WorkingHours, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, day_type,
			   to_char(start_time, 'HH24:MI'),
			   to_char(end_time, 'HH24:MI'),
			   updated_by, last_updated
		FROM working_hours
		WHERE day_type = $1
	`

	var w schedule.WorkingHours
	err := q.QueryRow(ctx, query, string(dayType)).Scan(
		&w.ID,
		&w.DayType,
		&w.StartTime,
		&w.EndTime,
		&w.UpdatedBy,
		&w.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &w, nil
}

func (r *workingHoursRepositoryImpl) Upsert(ctx context.Context, dayType schedule.DayType, startTime, endTime, actorID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO working_hours (id, day_type, start_time, end_time, updated_by, last_updated)
		VALUES ($1, $2, $3::time, $4::time, $5, $6)
		ON CONFLICT (day_type) DO UPDATE SET
			start_time   = EXCLUDED.start_time,
			end_time     = EXCLUDED.end_time,
			updated_by   = EXCLUDED.updated_by,
			last_updated = EXCLUDED.last_updated
	`

	_, err := q.Exec(ctx, query,
		uuid.NewString(),
		string(dayType),
		startTime,
		endTime,
		actorID,
		time.Now(),
	)
	return err
}
