package postgresql

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/schedule"
)

func TestWorkingHoursRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWorkingHoursRepository(mock)

	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "day_type", "to_char", "to_char", "updated_by", "last_updated"}).
		AddRow("wh-1", "Saturday", "09:00", "13:00", nil, now).
		AddRow("wh-2", "Weekday", "09:00", "17:30", nil, now)

	mock.ExpectQuery(`SELECT id, day_type`).WillReturnRows(rows)

	hours, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, hours, 2)
	assert.Equal(t, schedule.DayTypeSaturday, hours[0].DayType)
	assert.Equal(t, "09:00", hours[0].StartTime)
	assert.Equal(t, "17:30", hours[1].EndTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkingHoursRepository_GetByDayType_NotConfigured(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWorkingHoursRepository(mock)

	mock.ExpectQuery(`SELECT id, day_type`).
		WithArgs("Saturday").
		WillReturnRows(pgxmock.NewRows([]string{"id", "day_type", "to_char", "to_char", "updated_by", "last_updated"}))

	w, err := repo.GetByDayType(context.Background(), schedule.DayTypeSaturday)
	require.NoError(t, err)
	assert.Nil(t, w)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkingHoursRepository_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWorkingHoursRepository(mock)

	mock.ExpectExec(`INSERT INTO working_hours`).
		WithArgs(pgxmock.AnyArg(), "Weekday", "08:30", "17:00", "admin-1", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Upsert(context.Background(), schedule.DayTypeWeekday, "08:30", "17:00", "admin-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
