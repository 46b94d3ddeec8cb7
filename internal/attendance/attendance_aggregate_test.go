package attendance_test

import (
	"testing"
	"time"

	"go-salon/internal/attendance"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestSummarize_OvertimePerRecord(t *testing.T) {
	records := []attendance.Attendance{
		{Status: attendance.StatusPresent, WorkDate: day(1), WorkHours: "10"},
		{Status: attendance.StatusPresent, WorkDate: day(2), WorkHours: "6"},
	}

	summary := attendance.Summarize(records, 8)

	// One long day does not average out against a short one.
	assert.Equal(t, 2.0, summary.OvertimeHours)
	assert.Equal(t, 16.0, summary.TotalWorkHours)
	assert.Equal(t, 2, summary.PresentDays)
}

func TestSummarize_LateCountsAsPresent(t *testing.T) {
	records := []attendance.Attendance{
		{Status: attendance.StatusLate, WorkDate: day(1), WorkHours: "8", LateMinutes: 15},
		{Status: attendance.StatusLate, WorkDate: day(2), WorkHours: "8", LateMinutes: 30},
		{Status: attendance.StatusAbsent, WorkDate: day(3)},
		{Status: attendance.StatusLeave, WorkDate: day(4)},
	}

	summary := attendance.Summarize(records, 8)

	assert.Equal(t, 2, summary.PresentDays)
	assert.Equal(t, 2, summary.LateDays)
	assert.Equal(t, 45, summary.TotalLateMinutes)
	assert.Equal(t, 1, summary.AbsentDays)
	assert.Equal(t, 1, summary.LeaveDays)
}

func TestSummarize_Idempotent(t *testing.T) {
	records := []attendance.Attendance{
		{Status: attendance.StatusPresent, WorkDate: day(1), WorkHours: "9.5"},
		{Status: attendance.StatusLate, WorkDate: day(2), WorkHours: "8", LateMinutes: 5},
	}

	first := attendance.Summarize(records, 8)
	second := attendance.Summarize(records, 8)

	assert.Equal(t, first, second)
}

func TestParseHours_MalformedIsZero(t *testing.T) {
	assert.Equal(t, 0.0, attendance.ParseHours(""))
	assert.Equal(t, 0.0, attendance.ParseHours("abc"))
	assert.Equal(t, 0.0, attendance.ParseHours("-3"))
	assert.Equal(t, 7.5, attendance.ParseHours("7.5"))
}

func TestAdvances_OrderAndTotal(t *testing.T) {
	records := []attendance.Attendance{
		{Status: attendance.StatusPresent, WorkDate: day(3), Advance: 100},
		{Status: attendance.StatusPresent, WorkDate: day(10)},
		{Status: attendance.StatusPresent, WorkDate: day(17), Advance: 50},
	}

	details, total := attendance.Advances(records)

	assert.Equal(t, 150.0, total)
	if assert.Len(t, details, 2) {
		assert.Equal(t, "2026-03-03", details[0].Date)
		assert.Equal(t, 100.0, details[0].Amount)
		assert.Equal(t, "2026-03-17", details[1].Date)
	}
}
