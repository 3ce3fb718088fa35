package calendar

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go-leavehub/internal/shared/apperror"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultCutoffDay applies when no CutOffDate row is configured.
const DefaultCutoffDay = 25

var dayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Resolver answers calendar questions for the leave and adjustment engines:
// which days are weekends for an employee, whether a date is a holiday, what
// the current reset (accounting) period is, and whether a date violates the
// cutoff rule. Missing configuration rows fall back to documented defaults
// and are never surfaced as errors.
//
//go:generate mockgen -source=resolver.go -destination=mock/resolver_mock.go -package=mock
type Resolver interface {
	WeekendDays(officeDays string) map[time.Weekday]bool
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
	CurrentResetPeriod(ctx context.Context, date time.Time) (time.Time, time.Time)
	ResetPeriodForYear(ctx context.Context, year int) (time.Time, time.Time)
	CutoffDay(ctx context.Context) int
	CheckCutoff(ctx context.Context, fromDate, today time.Time) error
}

type resolver struct {
	repo   Repository
	logger *zap.Logger
}

func NewResolver(repo Repository, logger ...*zap.Logger) Resolver {
	l := zap.L().Named("calendar.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.resolver")
	}
	return &resolver{repo: repo, logger: l}
}

// WeekendDays parses office_days as a "Start-End" weekday range and returns
// the complement as the weekend set. The range may wrap the week boundary
// ("Saturday-Thursday"). Unparsable or empty input yields {Saturday, Sunday}.
func (r *resolver) WeekendDays(officeDays string) map[time.Weekday]bool {
	defaultWeekend := map[time.Weekday]bool{
		time.Saturday: true,
		time.Sunday:   true,
	}

	if !strings.Contains(officeDays, "-") {
		return defaultWeekend
	}

	parts := strings.SplitN(strings.ToLower(officeDays), "-", 2)
	start, okStart := dayNames[strings.TrimSpace(parts[0])]
	end, okEnd := dayNames[strings.TrimSpace(parts[1])]
	if !okStart || !okEnd {
		return defaultWeekend
	}

	working := make(map[time.Weekday]bool, 7)
	for d := start; ; d = (d + 1) % 7 {
		working[d] = true
		if d == end {
			break
		}
	}

	weekend := make(map[time.Weekday]bool)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if !working[d] {
			weekend[d] = true
		}
	}
	return weekend
}

func (r *resolver) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	return r.repo.HasHolidayContaining(ctx, date)
}

// CurrentResetPeriod returns the reset window containing date. When the
// configured window spans a calendar-year boundary (end month before start
// month), the start or end year is shifted depending on which side of the
// boundary date falls. No active configuration means the calendar year.
func (r *resolver) CurrentResetPeriod(ctx context.Context, date time.Time) (time.Time, time.Time) {
	reset, err := r.repo.ActiveLeaveReset(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("active leave reset lookup failed, using calendar year", zap.Error(err))
		}
		start := time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(date.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
		return start, end
	}

	year := date.Year()
	start := time.Date(year, time.Month(reset.StartMonth), reset.StartDay, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(reset.EndMonth), reset.EndDay, 0, 0, 0, 0, time.UTC)

	if reset.EndMonth < reset.StartMonth {
		if !date.Before(start) {
			// period started this year, ends next year
			end = end.AddDate(1, 0, 0)
		} else {
			// period started last year, ends this year
			start = start.AddDate(-1, 0, 0)
		}
	}

	return start, end
}

func (r *resolver) ResetPeriodForYear(ctx context.Context, year int) (time.Time, time.Time) {
	return r.CurrentResetPeriod(ctx, time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
}

func (r *resolver) CutoffDay(ctx context.Context) int {
	cutoff, err := r.repo.CurrentCutOff(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("cutoff lookup failed, using default", zap.Error(err))
		}
		return DefaultCutoffDay
	}
	if cutoff.CutOffDay < 1 || cutoff.CutOffDay > 31 {
		return DefaultCutoffDay
	}
	return cutoff.CutOffDay
}

// CheckCutoff rejects requests targeting dates at or before the cutoff day
// once the cutoff has passed. The same check runs at request creation and
// again before every approval save, so an approval cannot rescue a request
// that has since fallen into a blocked window.
func (r *resolver) CheckCutoff(ctx context.Context, fromDate, today time.Time) error {
	cutoffDay := r.CutoffDay(ctx)

	if today.Day() > cutoffDay &&
		fromDate.Month() == today.Month() && fromDate.Year() == today.Year() &&
		fromDate.Day() <= cutoffDay {
		return apperror.Newf(
			apperror.CodeInvalidState,
			http.StatusBadRequest,
			"cannot apply for dates before or on the %dth of this month after the cutoff date", cutoffDay,
		)
	}
	if today.Day() < cutoffDay &&
		fromDate.Before(time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)) &&
		fromDate.Day() <= cutoffDay {
		return apperror.Newf(
			apperror.CodeInvalidState,
			http.StatusBadRequest,
			"cannot apply for dates before or on the %dth of a previous month", cutoffDay,
		)
	}
	return nil
}
