package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/schedule"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type fakeWorkingHoursRepo struct {
	schedule.WorkingHoursRepository
	byType  map[schedule.DayType]schedule.WorkingHours
	upserts []schedule.DayType
}

func (f *fakeWorkingHoursRepo) GetByDayType(ctx context.Context, dayType schedule.DayType) (*schedule.WorkingHours, error) {
	h, ok := f.byType[dayType]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

func (f *fakeWorkingHoursRepo) Upsert(ctx context.Context, dayType schedule.DayType, startTime, endTime, actorID string) error {
	if f.byType == nil {
		f.byType = map[schedule.DayType]schedule.WorkingHours{}
	}
	f.byType[dayType] = schedule.WorkingHours{DayType: dayType, StartTime: startTime, EndTime: endTime, UpdatedBy: &actorID}
	f.upserts = append(f.upserts, dayType)
	return nil
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestExpectedMinutes(t *testing.T) {
	svc := NewScheduleService(&fakeWorkingHoursRepo{byType: map[schedule.DayType]schedule.WorkingHours{
		schedule.DayTypeWeekday:  {DayType: schedule.DayTypeWeekday, StartTime: "09:00", EndTime: "17:30"},
		schedule.DayTypeSaturday: {DayType: schedule.DayTypeSaturday, StartTime: "09:00", EndTime: "13:00"},
	}})

	// Monday, Saturday, Sunday
	minutes, err := svc.ExpectedMinutes(context.Background(), day("2024-03-04"))
	require.NoError(t, err)
	assert.Equal(t, 510, minutes)

	minutes, err = svc.ExpectedMinutes(context.Background(), day("2024-03-09"))
	require.NoError(t, err)
	assert.Equal(t, 240, minutes)

	minutes, err = svc.ExpectedMinutes(context.Background(), day("2024-03-10"))
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)
}

func TestExpectedMinutes_UnconfiguredDayType(t *testing.T) {
	svc := NewScheduleService(&fakeWorkingHoursRepo{byType: map[schedule.DayType]schedule.WorkingHours{}})

	minutes, err := svc.ExpectedMinutes(context.Background(), day("2024-03-04"))
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)
}

func TestUpdate(t *testing.T) {
	repo := &fakeWorkingHoursRepo{}
	svc := NewScheduleService(repo)

	err := svc.Update(context.Background(), schedule.UpdateWorkingHoursRequest{
		DayType:   "Weekday",
		StartTime: "08:30",
		EndTime:   "17:00",
	}, "admin-1")
	require.NoError(t, err)
	require.Len(t, repo.upserts, 1)

	stored := repo.byType[schedule.DayTypeWeekday]
	assert.Equal(t, "08:30", stored.StartTime)
	require.NotNil(t, stored.UpdatedBy)
	assert.Equal(t, "admin-1", *stored.UpdatedBy)
}

func TestUpdate_Invalid(t *testing.T) {
	svc := NewScheduleService(&fakeWorkingHoursRepo{})

	err := svc.Update(context.Background(), schedule.UpdateWorkingHoursRequest{
		DayType:   "Sunday",
		StartTime: "09:00",
		EndTime:   "17:00",
	}, "admin-1")

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "day_type")
}
