package report

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/schedule"
)

// Calculator computes time owed from data already in memory. All database
// reads happen before construction, so a whole range costs a fixed number of
// queries regardless of its length.
type Calculator struct {
	hours map[schedule.DayType]schedule.WorkingHours
}

func NewCalculator(hours []schedule.WorkingHours) *Calculator {
	byType := make(map[schedule.DayType]schedule.WorkingHours, len(hours))
	for _, h := range hours {
		byType[h.DayType] = h
	}
	return &Calculator{hours: byType}
}

// ExpectedMinutes returns the configured work duration for a date. Sundays
// and unconfigured day types expect nothing.
func (c *Calculator) ExpectedMinutes(date time.Time) int {
	dayType := schedule.ResolveDayType(date)
	if dayType == schedule.DayTypeSunday {
		return 0
	}
	h, ok := c.hours[dayType]
	if !ok {
		return 0
	}
	return h.SpanMinutes()
}

// ActualMinutes returns the minutes credited for one day. A missing row
// credits nothing; a leave-marked row credits the full expectation; a row
// with both punches credits the real span, overtime included; an open row
// (clock-in without clock-out) credits nothing.
func (c *Calculator) ActualMinutes(sheet *attendance.Timesheet, expected int) int {
	if sheet == nil {
		return 0
	}
	if sheet.IsLeaveDay() {
		return expected
	}
	if sheet.TimeIn != nil && sheet.TimeOut != nil {
		return int(sheet.TimeOut.Sub(*sheet.TimeIn).Minutes())
	}
	return 0
}

// OwedBetween sums expected minus actual over every day in [start, end].
// Days covered by an approved leave request owe nothing, whatever the
// attendance rows say. The result is signed; overtime drives it negative.
func (c *Calculator) OwedBetween(start, end time.Time, sheets []attendance.Timesheet, approved []leave.LeaveRequest) int {
	byDate := make(map[string]*attendance.Timesheet, len(sheets))
	for i := range sheets {
		byDate[sheets[i].Date.Format("2006-01-02")] = &sheets[i]
	}

	total := 0
	for day := dateOnly(start); !day.After(end); day = day.AddDate(0, 0, 1) {
		expected := c.ExpectedMinutes(day)
		if expected == 0 {
			continue
		}

		if coveredByLeave(day, approved) {
			continue
		}

		actual := c.ActualMinutes(byDate[day.Format("2006-01-02")], expected)
		total += expected - actual
	}

	return total
}

func coveredByLeave(day time.Time, approved []leave.LeaveRequest) bool {
	for _, l := range approved {
		if l.CoversDate(day) {
			return true
		}
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
