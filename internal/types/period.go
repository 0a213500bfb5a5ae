package types

import "errors"

// Period is the renewal cadence of a budget.
type Period string

const (
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
)

var ErrPeriodInvalid = errors.New("the period must be one of 'weekly' or 'monthly'")

// Valid reports if the period is one of the known values.
func (p Period) Valid() bool {
	return p == Weekly || p == Monthly
}

// EndDate returns the end date of a period starting at start.
//
// Weekly periods end 7 days after their start, monthly periods one calendar
// month after it.
func (p Period) EndDate(start Date) (Date, error) {
	switch p {
	case Weekly:
		return start.AddDays(7), nil
	case Monthly:
		return start.AddMonths(1), nil
	}

	return Date{}, ErrPeriodInvalid
}
