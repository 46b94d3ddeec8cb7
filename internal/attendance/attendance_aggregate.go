package attendance

import "strconv"

// MonthlySummary is the reduction of one employee's attendance records for
// one calendar month. Produced fresh on every query; never stored.
type MonthlySummary struct {
	PresentDays      int
	LateDays         int
	AbsentDays       int
	LeaveDays        int
	TotalWorkHours   float64
	OvertimeHours    float64
	TotalLateMinutes int
}

// Summarize reduces records already filtered to one employee and month.
// Overtime is measured per record against shiftHours: one long day never
// averages out against short days. A LATE day still counts as present.
func Summarize(records []Attendance, shiftHours float64) MonthlySummary {
	var summary MonthlySummary

	for _, rec := range records {
		switch rec.Status {
		case StatusPresent:
			summary.PresentDays++
		case StatusLate:
			summary.PresentDays++
			summary.LateDays++
			summary.TotalLateMinutes += rec.LateMinutes
		case StatusAbsent:
			summary.AbsentDays++
		case StatusLeave:
			summary.LeaveDays++
		}

		hours := ParseHours(rec.WorkHours)
		summary.TotalWorkHours += hours
		if shiftHours > 0 && hours > shiftHours {
			summary.OvertimeHours += hours - shiftHours
		}
	}

	return summary
}

// ParseHours reads a work-hours field. Missing or malformed values are
// zero, never an error.
func ParseHours(raw string) float64 {
	if raw == "" {
		return 0
	}
	hours, err := strconv.ParseFloat(raw, 64)
	if err != nil || hours < 0 {
		return 0
	}
	return hours
}

// Advances lists the mid-month cash advances in record order, together with
// their total.
func Advances(records []Attendance) (details []AdvanceDetail, total float64) {
	for _, rec := range records {
		if rec.Advance > 0 {
			details = append(details, AdvanceDetail{
				Date:   rec.WorkDate.Format("2006-01-02"),
				Amount: rec.Advance,
			})
			total += rec.Advance
		}
	}
	return details, total
}

type AdvanceDetail struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}
