package leave

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateRequest(ctx context.Context, req *LeaveRequest) error
	FindRequestByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindRequestByIDLocked(ctx context.Context, id uuid.UUID) (*LeaveRequest, error)
	ListRequests(ctx context.Context) ([]LeaveRequest, error)
	ListRequestsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveRequest, error)
	LatestActiveRequest(ctx context.Context, employeeID uuid.UUID, from, to time.Time) (*LeaveRequest, error)
	UpdateRequest(ctx context.Context, req *LeaveRequest) error

	CreateApprovals(ctx context.Context, approvals []LeaveApproval) error
	FindApprovalByID(ctx context.Context, id string) (*LeaveApproval, error)
	ApprovalsForRequestLocked(ctx context.Context, requestID uuid.UUID) ([]LeaveApproval, error)
	ApprovalsForRequest(ctx context.Context, requestID uuid.UUID) ([]LeaveApproval, error)
	PendingApprovalsBySupervisor(ctx context.Context, supervisorID uuid.UUID) ([]LeaveApproval, error)
	UpdateApproval(ctx context.Context, approval *LeaveApproval) error
	MarkPendingApprovals(ctx context.Context, ids []uuid.UUID, status string, decidedAt time.Time) error

	SumApprovedDaysByTypeInPeriod(ctx context.Context, employeeID uuid.UUID, leaveType string, from, to time.Time) (decimal.Decimal, error)
	SumPendingDaysByTypeInPeriod(ctx context.Context, employeeID uuid.UUID, leaveType string, from, to time.Time) (decimal.Decimal, error)
	SumApprovedDaysByTypeEndingBy(ctx context.Context, employeeID uuid.UUID, leaveType string, endBy time.Time) (decimal.Decimal, error)
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

func (r *repository) CreateRequest(ctx context.Context, req *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindRequestByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var req LeaveRequest
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	return &req, err
}

// FindRequestByIDLocked takes a row lock so concurrent approval decisions on
// the same request serialize.
func (r *repository) FindRequestByIDLocked(ctx context.Context, id uuid.UUID) (*LeaveRequest, error) {
	var req LeaveRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) ListRequests(ctx context.Context) ([]LeaveRequest, error) {
	var reqs []LeaveRequest
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) ListRequestsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveRequest, error) {
	var reqs []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("from_date DESC").
		Find(&reqs).Error
	return reqs, err
}

// LatestActiveRequest returns the employee's most recent non-rejected
// request in the window, if any.
func (r *repository) LatestActiveRequest(ctx context.Context, employeeID uuid.UUID, from, to time.Time) (*LeaveRequest, error) {
	var req LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("status <> ?", "rejected").
		Where("from_date >= ? AND to_date <= ?", from, to).
		Order("from_date DESC").
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repository) UpdateRequest(ctx context.Context, req *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *repository) CreateApprovals(ctx context.Context, approvals []LeaveApproval) error {
	if len(approvals) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&approvals).Error
}

func (r *repository) FindApprovalByID(ctx context.Context, id string) (*LeaveApproval, error) {
	var approval LeaveApproval
	err := r.db.WithContext(ctx).First(&approval, "id = ?", id).Error
	return &approval, err
}

func (r *repository) ApprovalsForRequestLocked(ctx context.Context, requestID uuid.UUID) ([]LeaveApproval, error) {
	var approvals []LeaveApproval
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("leave_request_id = ?", requestID).
		Order("level ASC").
		Find(&approvals).Error
	return approvals, err
}

func (r *repository) ApprovalsForRequest(ctx context.Context, requestID uuid.UUID) ([]LeaveApproval, error) {
	var approvals []LeaveApproval
	err := r.db.WithContext(ctx).
		Where("leave_request_id = ?", requestID).
		Order("level ASC").
		Find(&approvals).Error
	return approvals, err
}

func (r *repository) PendingApprovalsBySupervisor(ctx context.Context, supervisorID uuid.UUID) ([]LeaveApproval, error) {
	var approvals []LeaveApproval
	err := r.db.WithContext(ctx).
		Where("supervisor_id = ?", supervisorID).
		Where("status = ?", "pending").
		Order("created_at ASC").
		Find(&approvals).Error
	return approvals, err
}

func (r *repository) UpdateApproval(ctx context.Context, approval *LeaveApproval) error {
	return r.db.WithContext(ctx).Save(approval).Error
}

// MarkPendingApprovals moves the still-pending approvals in ids to status;
// already-decided rows are left alone.
func (r *repository) MarkPendingApprovals(ctx context.Context, ids []uuid.UUID, status string, decidedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&LeaveApproval{}).
		Where("id IN ?", ids).
		Where("status = ?", "pending").
		Updates(map[string]any{
			"status":     status,
			"decided_at": decidedAt,
			"updated_at": decidedAt,
		}).Error
}

func (r *repository) SumApprovedDaysByTypeInPeriod(ctx context.Context, employeeID uuid.UUID, leaveType string, from, to time.Time) (decimal.Decimal, error) {
	return r.sumDays(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("status = ?", "approved")
	}, employeeID, leaveType, from, to)
}

func (r *repository) SumPendingDaysByTypeInPeriod(ctx context.Context, employeeID uuid.UUID, leaveType string, from, to time.Time) (decimal.Decimal, error) {
	return r.sumDays(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("status LIKE ?", "pending\\_L%")
	}, employeeID, leaveType, from, to)
}

func (r *repository) SumApprovedDaysByTypeEndingBy(ctx context.Context, employeeID uuid.UUID, leaveType string, endBy time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Select("SUM(days_count)").
		Where("employee_id = ?", employeeID).
		Where("leave_type = ?", leaveType).
		Where("status = ?", "approved").
		Where("to_date <= ?", endBy).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *repository) sumDays(
	ctx context.Context,
	scope func(*gorm.DB) *gorm.DB,
	employeeID uuid.UUID,
	leaveType string,
	from, to time.Time,
) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := scope(r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Select("SUM(days_count)").
		Where("employee_id = ?", employeeID).
		Where("leave_type = ?", leaveType).
		Where("from_date >= ? AND to_date <= ?", from, to)).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
