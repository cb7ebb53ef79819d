package postgresql

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
)

func TestTimesheetRepository_GetByUserAndDate_NoRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTimesheetRepository(mock)
	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, user_id, date`).
		WithArgs("user-1", date).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "date", "time_in", "time_out", "notes", "created_at"}))

	sheet, err := repo.GetByUserAndDate(context.Background(), "user-1", date)
	require.NoError(t, err)
	assert.Nil(t, sheet)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimesheetRepository_GetByUserAndDate_Found(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTimesheetRepository(mock)
	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	timeIn := date.Add(9 * time.Hour)

	rows := pgxmock.NewRows([]string{"id", "user_id", "date", "time_in", "time_out", "notes", "created_at"}).
		AddRow("ts-1", "user-1", date, &timeIn, nil, nil, time.Now())

	mock.ExpectQuery(`SELECT id, user_id, date`).
		WithArgs("user-1", date).
		WillReturnRows(rows)

	sheet, err := repo.GetByUserAndDate(context.Background(), "user-1", date)
	require.NoError(t, err)
	require.NotNil(t, sheet)
	assert.Equal(t, "ts-1", sheet.ID)
	require.NotNil(t, sheet.TimeIn)
	assert.Nil(t, sheet.TimeOut)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimesheetRepository_SetTimeOut_MissingRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTimesheetRepository(mock)
	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE timesheets`).
		WithArgs("user-1", date, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.SetTimeOut(context.Background(), "user-1", date, date.Add(17*time.Hour))
	assert.ErrorIs(t, err, attendance.ErrTimesheetNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimesheetRepository_DateBounds_NoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTimesheetRepository(mock)

	mock.ExpectQuery(`SELECT MIN\(date\), MAX\(date\)`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"min", "max"}).AddRow(nil, nil))

	bounds, err := repo.DateBounds(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Nil(t, bounds)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimesheetRepository_DateBounds_Found(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTimesheetRepository(mock)
	first := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT MIN\(date\), MAX\(date\)`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"min", "max"}).AddRow(&first, &last))

	bounds, err := repo.DateBounds(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, bounds)
	assert.Equal(t, first, bounds.First)
	assert.Equal(t, last, bounds.Last)
	assert.NoError(t, mock.ExpectationsWereMet())
}
