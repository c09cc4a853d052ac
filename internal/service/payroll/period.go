package payroll

import (
	"time"

	"github.com/buildsite/worksite-backend-go/internal/domain/payroll"
)

// PeriodCalculator converts a company's closing-day/pay-day convention into
// concrete settlement periods. It is pure and stateless: no clock reads, no
// I/O, and it never substitutes defaults for bad input.
type PeriodCalculator struct {
}

func NewPeriodCalculator() *PeriodCalculator {
	return &PeriodCalculator{}
}

// ComputePeriod returns the settlement period that ref falls into.
//
// Closing and pay days are day-of-month selectors, not literal indexes: a
// value past the end of a month clamps to that month's last day, so
// closingDay=31 closes February on the 28th (29th in leap years). The pay
// date always trails the closing month by exactly one calendar month.
func (c *PeriodCalculator) ComputePeriod(ref time.Time, closingDay, payDay int) (payroll.Period, error) {
	if closingDay < 1 || closingDay > 31 {
		return payroll.Period{}, payroll.ErrInvalidClosingDay
	}
	if payDay < 1 || payDay > 31 {
		return payroll.Period{}, payroll.ErrInvalidPayDay
	}

	endYear, endMonth := ref.Year(), ref.Month()

	// Compare against the closing day as it lands in the reference month, so
	// a clamped closing date still terminates its own period.
	if ref.Day() < dayOfMonth(endYear, endMonth, closingDay).Day() {
		// ref lies in the period that closed last month
		endYear, endMonth = shiftMonth(endYear, endMonth, -1)
	}

	end := dayOfMonth(endYear, endMonth, closingDay)

	prevYear, prevMonth := shiftMonth(endYear, endMonth, -1)
	start := dayOfMonth(prevYear, prevMonth, closingDay).AddDate(0, 0, 1)

	payYear, payMonth := shiftMonth(endYear, endMonth, 1)
	pay := dayOfMonth(payYear, payMonth, payDay)

	return payroll.Period{
		StartDate:   start,
		EndDate:     end,
		ClosingDate: end,
		PayDate:     pay,
	}, nil
}

// GeneratePeriods returns the monthsBack most recent settlement periods,
// newest first. Each reference month maps to a distinct period under the
// rollover rule, so the list never contains duplicates.
func (c *PeriodCalculator) GeneratePeriods(from time.Time, closingDay, payDay, monthsBack int) ([]payroll.Period, error) {
	if monthsBack < 1 {
		return nil, payroll.ErrInvalidMonthsBack
	}

	periods := make([]payroll.Period, 0, monthsBack)
	for i := 0; i < monthsBack; i++ {
		ref := time.Date(from.Year(), from.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		p, err := c.ComputePeriod(ref, closingDay, payDay)
		if err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}

	return periods, nil
}

// dayOfMonth places a day-of-month selector in a given month, clamping past
// the month's last day. Dates are normalized to midnight UTC.
func dayOfMonth(year int, month time.Month, day int) time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// shiftMonth moves a (year, month) pair by delta months, rolling the year.
func shiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}
