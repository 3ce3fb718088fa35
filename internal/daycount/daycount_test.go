package daycount_test

import (
	"testing"
	"time"

	"go-leavehub/internal/daycount"

	"github.com/stretchr/testify/assert"
)

var satSun = map[time.Weekday]bool{
	time.Saturday: true,
	time.Sunday:   true,
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculate_SingleDayHalfDay(t *testing.T) {
	// 2026-03-04 is a Wednesday
	from := day(2026, 3, 4)

	t.Run("half day flag with policy allowing half days", func(t *testing.T) {
		got := daycount.Calculate(from, from, satSun, nil, daycount.Options{
			AllowHalfDay: true,
			HalfDay:      true,
		})

		assert.Equal(t, "0.5", got.String())
	})

	t.Run("no half day flag charges a full day", func(t *testing.T) {
		got := daycount.Calculate(from, from, satSun, nil, daycount.Options{
			AllowHalfDay: true,
		})

		assert.Equal(t, "1", got.String())
	})

	t.Run("half day flag ignored when policy disallows it", func(t *testing.T) {
		got := daycount.Calculate(from, from, satSun, nil, daycount.Options{
			HalfDay: true,
		})

		assert.Equal(t, "1", got.String())
	})

	t.Run("half day flag ignored for multi day spans", func(t *testing.T) {
		got := daycount.Calculate(from, from.AddDate(0, 0, 1), satSun, nil, daycount.Options{
			AllowHalfDay: true,
			HalfDay:      true,
		})

		assert.Equal(t, "2", got.String())
	})
}

func TestCalculate_WeekendExclusion(t *testing.T) {
	// Monday 2026-03-02 through the following Monday 2026-03-09: 8 calendar
	// days spanning one Sat/Sun weekend.
	from := day(2026, 3, 2)
	to := day(2026, 3, 9)

	t.Run("weekends excluded", func(t *testing.T) {
		got := daycount.Calculate(from, to, satSun, nil, daycount.Options{})

		assert.Equal(t, "6", got.String())
	})

	t.Run("weekends counted when policy says so", func(t *testing.T) {
		got := daycount.Calculate(from, to, satSun, nil, daycount.Options{CountWeekends: true})

		assert.Equal(t, "8", got.String())
	})

	t.Run("wrapped weekend set", func(t *testing.T) {
		fridayOnly := map[time.Weekday]bool{time.Friday: true}

		got := daycount.Calculate(from, to, fridayOnly, nil, daycount.Options{})

		assert.Equal(t, "7", got.String())
	})
}

func TestCalculate_HolidayExclusion(t *testing.T) {
	from := day(2026, 3, 2)
	to := day(2026, 3, 6)
	holiday := func(d time.Time) bool {
		// Wednesday 2026-03-04 is a holiday
		return d.Equal(day(2026, 3, 4))
	}

	t.Run("holiday skipped by default", func(t *testing.T) {
		got := daycount.Calculate(from, to, satSun, holiday, daycount.Options{})

		assert.Equal(t, "4", got.String())
	})

	t.Run("holiday counted when request spans it deliberately", func(t *testing.T) {
		got := daycount.Calculate(from, to, satSun, holiday, daycount.Options{IncludeHolidays: true})

		assert.Equal(t, "5", got.String())
	})
}

func TestCalculate_EdgeCases(t *testing.T) {
	t.Run("from after to yields zero", func(t *testing.T) {
		got := daycount.Calculate(day(2026, 3, 5), day(2026, 3, 2), satSun, nil, daycount.Options{})

		assert.True(t, got.IsZero())
	})

	t.Run("single weekend day yields zero", func(t *testing.T) {
		// 2026-03-07 is a Saturday
		sat := day(2026, 3, 7)

		got := daycount.Calculate(sat, sat, satSun, nil, daycount.Options{})

		assert.True(t, got.IsZero())
	})
}
