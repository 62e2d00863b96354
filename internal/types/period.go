package types

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jinzhu/now"
)

var (
	ErrInvalidMonth = errors.New("the month query parameter must be an integer between 1 and 12")
	ErrInvalidYear  = errors.New("the year query parameter must be an integer between 1 and 9999")
)

// Period is an optional month of a specific year used to scope
// transaction queries. The zero value means "no period", i.e. all
// transactions.
type Period struct {
	Month time.Month
	Year  int
}

// NewPeriod returns the Period for a month in a year.
func NewPeriod(year int, month time.Month) Period {
	return Period{Month: month, Year: year}
}

// ParsePeriod parses the month and year query parameters.
//
// Filtering only happens when both are given. If either one is
// empty, the zero Period is returned and the other value is not
// inspected.
func ParsePeriod(month, year string) (Period, error) {
	if month == "" || year == "" {
		return Period{}, nil
	}

	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return Period{}, ErrInvalidMonth
	}

	y, err := strconv.Atoi(year)
	if err != nil || y < 1 || y > 9999 {
		return Period{}, ErrInvalidYear
	}

	return NewPeriod(y, time.Month(m)), nil
}

// IsZero reports if the period is unset.
func (p Period) IsZero() bool {
	return p.Month == 0 && p.Year == 0
}

// Start returns midnight UTC of the first day of the period.
func (p Period) Start() time.Time {
	return now.With(time.Date(p.Year, p.Month, 1, 12, 0, 0, 0, time.UTC)).BeginningOfMonth()
}

// End returns midnight UTC of the first day after the period.
func (p Period) End() time.Time {
	return now.With(p.Start()).EndOfMonth().Add(time.Nanosecond)
}

// Contains reports whether the date is in the period. The zero
// Period contains every date.
func (p Period) Contains(d Date) bool {
	if p.IsZero() {
		return true
	}

	t := d.Time()
	return t.Year() == p.Year && t.Month() == p.Month
}

// String returns the period as month/year without padding, e.g. 3/2024.
func (p Period) String() string {
	if p.IsZero() {
		return ""
	}

	return fmt.Sprintf("%d/%d", int(p.Month), p.Year)
}
