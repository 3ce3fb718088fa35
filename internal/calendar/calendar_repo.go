package calendar

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//go:generate mockgen -source=calendar_repo.go -destination=mock/calendar_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateHoliday(ctx context.Context, h *Holiday) error
	ListHolidays(ctx context.Context) ([]Holiday, error)
	FindHolidayByID(ctx context.Context, id string) (*Holiday, error)
	UpdateHoliday(ctx context.Context, h *Holiday) error
	DeleteHoliday(ctx context.Context, id string) error
	HasHolidayContaining(ctx context.Context, date time.Time) (bool, error)
	ActiveLeaveReset(ctx context.Context) (*LeaveReset, error)
	SaveLeaveReset(ctx context.Context, r *LeaveReset) error
	CurrentCutOff(ctx context.Context) (*CutOffDate, error)
	SaveCutOff(ctx context.Context, c *CutOffDate) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: tx}), &gorm.Config{})
	if err != nil {
		return r
	}
	return &repository{db: db}
}

func (r *repository) CreateHoliday(ctx context.Context, h *Holiday) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *repository) ListHolidays(ctx context.Context) ([]Holiday, error) {
	var holidays []Holiday
	err := r.db.WithContext(ctx).
		Order("from_date ASC").
		Find(&holidays).Error
	return holidays, err
}

func (r *repository) FindHolidayByID(ctx context.Context, id string) (*Holiday, error) {
	var h Holiday
	err := r.db.WithContext(ctx).First(&h, "id = ?", id).Error
	return &h, err
}

func (r *repository) UpdateHoliday(ctx context.Context, h *Holiday) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *repository) DeleteHoliday(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Holiday{}, "id = ?", id).Error
}

func (r *repository) HasHolidayContaining(ctx context.Context, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Holiday{}).
		Where("from_date <= ?", date).
		Where("to_date >= ?", date).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ActiveLeaveReset(ctx context.Context) (*LeaveReset, error) {
	var reset LeaveReset
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		First(&reset).Error
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *repository) SaveLeaveReset(ctx context.Context, reset *LeaveReset) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if reset.IsActive {
			// only one active reset period at a time
			if err := tx.Model(&LeaveReset{}).
				Where("is_active = ?", true).
				Where("id <> ?", reset.ID).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Save(reset).Error
	})
}

func (r *repository) CurrentCutOff(ctx context.Context) (*CutOffDate, error) {
	var cutoff CutOffDate
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		First(&cutoff).Error
	if err != nil {
		return nil, err
	}
	return &cutoff, nil
}

func (r *repository) SaveCutOff(ctx context.Context, c *CutOffDate) error {
	return r.db.WithContext(ctx).Save(c).Error
}
