package calendar

import (
	"context"
	"database/sql"
	"errors"
	"time"

	calendarerrors "go-leavehub/internal/calendar/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=calendar_service.go -destination=mock/calendar_service_mock.go -package=mock
type Service interface {
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	ListHolidays(ctx context.Context) ([]HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error
	SetLeaveReset(ctx context.Context, req SetLeaveResetRequest) (LeaveResetResponse, error)
	SetCutOff(ctx context.Context, req SetCutOffRequest) (CutOffResponse, error)
	GetCutOff(ctx context.Context) (CutOffResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("calendar.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error) {
	s.logger.Debug("create holiday requested",
		zap.String("name", req.Name),
		zap.String("from_date", req.FromDate),
		zap.String("to_date", req.ToDate),
	)

	fromDate, err := parseDate(req.FromDate)
	if err != nil {
		return HolidayResponse{}, err
	}
	toDate, err := parseDate(req.ToDate)
	if err != nil {
		return HolidayResponse{}, err
	}
	if fromDate.After(toDate) {
		s.logger.Warn("create holiday date order invalid",
			zap.String("from_date", req.FromDate),
			zap.String("to_date", req.ToDate),
		)
		return HolidayResponse{}, calendarerrors.ErrHolidayDateOrder
	}

	h := &Holiday{
		ID:       uuid.New(),
		Name:     req.Name,
		FromDate: fromDate,
		ToDate:   toDate,
		// inclusive span
		DaysCount:   int(toDate.Sub(fromDate).Hours()/24) + 1,
		Description: req.Description,
	}

	if err := s.repo.CreateHoliday(ctx, h); err != nil {
		s.logger.Error("create holiday persist failed", zap.Error(err))
		return HolidayResponse{}, err
	}

	s.logger.Info("create holiday success",
		zap.String("holiday_id", h.ID.String()),
		zap.Int("days_count", h.DaysCount),
	)
	return mapHolidayToResponse(*h), nil
}

func (s *service) ListHolidays(ctx context.Context) ([]HolidayResponse, error) {
	holidays, err := s.repo.ListHolidays(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		resp[i] = mapHolidayToResponse(h)
	}
	return resp, nil
}

func (s *service) DeleteHoliday(ctx context.Context, id string) error {
	if _, err := s.repo.FindHolidayByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return calendarerrors.ErrHolidayNotFound
		}
		return err
	}
	return s.repo.DeleteHoliday(ctx, id)
}

func (s *service) SetLeaveReset(ctx context.Context, req SetLeaveResetRequest) (LeaveResetResponse, error) {
	if !validMonthDay(req.StartMonth, req.StartDay) || !validMonthDay(req.EndMonth, req.EndDay) {
		return LeaveResetResponse{}, calendarerrors.ErrInvalidResetWindow
	}

	reset := &LeaveReset{
		ID:         uuid.New(),
		StartMonth: req.StartMonth,
		StartDay:   req.StartDay,
		EndMonth:   req.EndMonth,
		EndDay:     req.EndDay,
		IsActive:   true,
	}

	if err := s.repo.SaveLeaveReset(ctx, reset); err != nil {
		s.logger.Error("save leave reset failed", zap.Error(err))
		return LeaveResetResponse{}, err
	}

	s.logger.Info("leave reset configured",
		zap.Int("start_month", reset.StartMonth),
		zap.Int("end_month", reset.EndMonth),
	)
	return LeaveResetResponse{
		ID:         reset.ID.String(),
		StartMonth: reset.StartMonth,
		StartDay:   reset.StartDay,
		EndMonth:   reset.EndMonth,
		EndDay:     reset.EndDay,
		IsActive:   reset.IsActive,
	}, nil
}

func (s *service) SetCutOff(ctx context.Context, req SetCutOffRequest) (CutOffResponse, error) {
	if req.CutOffDay < 1 || req.CutOffDay > 28 {
		return CutOffResponse{}, calendarerrors.ErrInvalidCutOffDay
	}

	existing, err := s.repo.CurrentCutOff(ctx)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return CutOffResponse{}, err
	}

	cutoff := &CutOffDate{ID: uuid.New(), CutOffDay: req.CutOffDay}
	if existing != nil {
		cutoff.ID = existing.ID
		cutoff.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.SaveCutOff(ctx, cutoff); err != nil {
		s.logger.Error("save cutoff failed", zap.Error(err))
		return CutOffResponse{}, err
	}

	s.logger.Info("cutoff configured", zap.Int("cut_off_day", cutoff.CutOffDay))
	return CutOffResponse{CutOffDay: cutoff.CutOffDay}, nil
}

func (s *service) GetCutOff(ctx context.Context) (CutOffResponse, error) {
	cutoff, err := s.repo.CurrentCutOff(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CutOffResponse{CutOffDay: DefaultCutoffDay}, nil
		}
		return CutOffResponse{}, err
	}
	return CutOffResponse{CutOffDay: cutoff.CutOffDay}, nil
}

// validMonthDay rejects day-of-month combinations that never exist, like
// February 30. Leap-year February 29 is accepted.
func validMonthDay(month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	switch time.Month(month) {
	case time.February:
		return day <= 29
	case time.April, time.June, time.September, time.November:
		return day <= 30
	default:
		return day <= 31
	}
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, calendarerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapHolidayToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID.String(),
		Name:        h.Name,
		FromDate:    h.FromDate.Format("2006-01-02"),
		ToDate:      h.ToDate.Format("2006-01-02"),
		DaysCount:   h.DaysCount,
		Description: h.Description,
	}
}
