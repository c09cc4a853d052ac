package payroll

import "errors"

var (
	ErrPayrollSettingsNotFound = errors.New("payroll settings not found")
	ErrInvalidClosingDay       = errors.New("closing day must be between 1 and 31")
	ErrInvalidPayDay           = errors.New("pay day must be between 1 and 31")
	ErrClosingDayEqualsPayDay  = errors.New("closing day and pay day must differ")
	ErrInvalidMonthsBack       = errors.New("months back must be at least 1")
)
