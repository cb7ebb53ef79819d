package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/schedule"
)

type ScheduleServiceImpl struct {
	schedule.WorkingHoursRepository
}

func NewScheduleService(workingHoursRepository schedule.WorkingHoursRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		WorkingHoursRepository: workingHoursRepository,
	}
}

// List implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) List(ctx context.Context) ([]schedule.WorkingHours, error) {
	hours, err := s.WorkingHoursRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list working hours: %w", err)
	}
	return hours, nil
}

// Update implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Update(ctx context.Context, req schedule.UpdateWorkingHoursRequest, actorID string) error {
	if err := req.Validate(); err != nil {
		return err
	}

	err := s.WorkingHoursRepository.Upsert(ctx, schedule.DayType(req.DayType), req.StartTime, req.EndTime, actorID)
	if err != nil {
		return fmt.Errorf("failed to update working hours: %w", err)
	}

	return nil
}

// ExpectedMinutes implements schedule.ScheduleService. Sundays and day types
// without a configured row yield 0 without error.
func (s *ScheduleServiceImpl) ExpectedMinutes(ctx context.Context, date time.Time) (int, error) {
	dayType := schedule.ResolveDayType(date)
	if dayType == schedule.DayTypeSunday {
		return 0, nil
	}

	hours, err := s.WorkingHoursRepository.GetByDayType(ctx, dayType)
	if err != nil {
		return 0, fmt.Errorf("failed to get working hours for %s: %w", dayType, err)
	}
	if hours == nil {
		return 0, nil
	}

	return hours.SpanMinutes(), nil
}
