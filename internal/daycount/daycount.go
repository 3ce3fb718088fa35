// Package daycount computes the chargeable day count for a leave request
// date range. Weekends are excluded unless the policy counts them, holidays
// are excluded unless the request is flagged as holiday-spanning, and a
// single-day request under a half-day policy may charge half a day.
package daycount

import (
	"time"

	"github.com/shopspring/decimal"
)

// Options carries the policy flags and request flags that shape the count.
type Options struct {
	// CountWeekends comes from the leave policy: weekend days charge
	// normally when set.
	CountWeekends bool
	// IncludeHolidays comes from the request's is_holiday flag: holiday
	// days charge normally when set. The policy's count_holidays only
	// supplies the default for that flag at request creation.
	IncludeHolidays bool
	// AllowHalfDay comes from the leave policy.
	AllowHalfDay bool
	// HalfDay is the request's half-day flag. It only takes effect for a
	// single-day span under a policy that allows half days.
	HalfDay bool
}

var half = decimal.NewFromFloat(0.5)

// Calculate walks every date in [from, to] inclusive and sums the chargeable
// days to one fractional digit. weekend is the employee's weekend set;
// isHoliday reports whether a date falls inside any holiday range. Result is
// never negative; from after to yields zero.
func Calculate(
	from, to time.Time,
	weekend map[time.Weekday]bool,
	isHoliday func(time.Time) bool,
	opts Options,
) decimal.Decimal {
	if from.After(to) {
		return decimal.Zero
	}

	singleDay := from.Equal(to)
	days := decimal.Zero

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if !opts.CountWeekends && weekend[d.Weekday()] {
			continue
		}
		if !opts.IncludeHolidays && isHoliday != nil && isHoliday(d) {
			continue
		}

		if singleDay && opts.AllowHalfDay && opts.HalfDay {
			days = days.Add(half)
		} else {
			days = days.Add(decimal.NewFromInt(1))
		}
	}

	return days.Round(1)
}
