package transfer

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//go:generate mockgen -source=transfer_repo.go -destination=mock/transfer_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *LeaveTransfer) error
	Update(ctx context.Context, t *LeaveTransfer) error
	ActiveInPeriod(ctx context.Context, employeeID uuid.UUID, periodStart time.Time) ([]LeaveTransfer, error)
	ListByEmployeeInPeriod(ctx context.Context, employeeID uuid.UUID, periodStart time.Time) ([]LeaveTransfer, error)
	SumIncoming(ctx context.Context, employeeID uuid.UUID, groupID, leaveType string, periodStart time.Time) (decimal.Decimal, error)
	SumOutgoing(ctx context.Context, employeeID uuid.UUID, groupID, leaveType string, periodStart time.Time) (decimal.Decimal, error)
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

func (r *repository) Create(ctx context.Context, t *LeaveTransfer) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) Update(ctx context.Context, t *LeaveTransfer) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// ActiveInPeriod returns the employee's non-reversed transfers in the period,
// oldest first. The first row carries the original from_leave_group the
// return-to-origin check compares against.
func (r *repository) ActiveInPeriod(ctx context.Context, employeeID uuid.UUID, periodStart time.Time) ([]LeaveTransfer, error) {
	var rows []LeaveTransfer
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("year = ?", periodStart).
		Where("is_reversed = ?", false).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListByEmployeeInPeriod(ctx context.Context, employeeID uuid.UUID, periodStart time.Time) ([]LeaveTransfer, error) {
	var rows []LeaveTransfer
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("year = ?", periodStart).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) SumIncoming(ctx context.Context, employeeID uuid.UUID, groupID, leaveType string, periodStart time.Time) (decimal.Decimal, error) {
	return r.sumDays(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("to_leave_group_id = ?", groupID)
	}, employeeID, leaveType, periodStart)
}

// SumOutgoing excludes rows whose to_leave_group equals the current group:
// an in-place retarget within the same period is not an outgoing transfer.
func (r *repository) SumOutgoing(ctx context.Context, employeeID uuid.UUID, groupID, leaveType string, periodStart time.Time) (decimal.Decimal, error) {
	return r.sumDays(ctx, func(q *gorm.DB) *gorm.DB {
		return q.
			Where("from_leave_group_id = ?", groupID).
			Where("to_leave_group_id <> ?", groupID)
	}, employeeID, leaveType, periodStart)
}

func (r *repository) sumDays(
	ctx context.Context,
	scope func(*gorm.DB) *gorm.DB,
	employeeID uuid.UUID,
	leaveType string,
	periodStart time.Time,
) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := scope(r.db.WithContext(ctx).
		Model(&LeaveTransfer{}).
		Select("SUM(days_transferred)").
		Where("employee_id = ?", employeeID).
		Where("leave_type = ?", leaveType).
		Where("year = ?", periodStart).
		Where("is_reversed = ?", false)).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
