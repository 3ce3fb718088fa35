package adjustment

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=adjustment_repo.go -destination=mock/adjustment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, adj *AttendanceAdjustment) error
	FindByID(ctx context.Context, id string) (*AttendanceAdjustment, error)
	FindByIDLocked(ctx context.Context, id uuid.UUID) (*AttendanceAdjustment, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]AttendanceAdjustment, error)
	Update(ctx context.Context, adj *AttendanceAdjustment) error

	CreateApprovals(ctx context.Context, approvals []AdjustmentApproval) error
	FindApprovalByID(ctx context.Context, id string) (*AdjustmentApproval, error)
	ApprovalsForAdjustmentLocked(ctx context.Context, adjustmentID uuid.UUID) ([]AdjustmentApproval, error)
	PendingApprovalsBySupervisor(ctx context.Context, supervisorID uuid.UUID) ([]AdjustmentApproval, error)
	UpdateApproval(ctx context.Context, approval *AdjustmentApproval) error
	MarkPendingApprovals(ctx context.Context, ids []uuid.UUID, status string, decidedAt time.Time) error
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

func (r *repository) Create(ctx context.Context, adj *AttendanceAdjustment) error {
	return r.db.WithContext(ctx).Create(adj).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*AttendanceAdjustment, error) {
	var adj AttendanceAdjustment
	err := r.db.WithContext(ctx).First(&adj, "id = ?", id).Error
	return &adj, err
}

func (r *repository) FindByIDLocked(ctx context.Context, id uuid.UUID) (*AttendanceAdjustment, error) {
	var adj AttendanceAdjustment
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&adj, "id = ?", id).Error
	return &adj, err
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]AttendanceAdjustment, error) {
	var adjs []AttendanceAdjustment
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("attendance_date DESC").
		Find(&adjs).Error
	return adjs, err
}

func (r *repository) Update(ctx context.Context, adj *AttendanceAdjustment) error {
	return r.db.WithContext(ctx).Save(adj).Error
}

func (r *repository) CreateApprovals(ctx context.Context, approvals []AdjustmentApproval) error {
	if len(approvals) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&approvals).Error
}

func (r *repository) FindApprovalByID(ctx context.Context, id string) (*AdjustmentApproval, error) {
	var approval AdjustmentApproval
	err := r.db.WithContext(ctx).First(&approval, "id = ?", id).Error
	return &approval, err
}

func (r *repository) ApprovalsForAdjustmentLocked(ctx context.Context, adjustmentID uuid.UUID) ([]AdjustmentApproval, error) {
	var approvals []AdjustmentApproval
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("adjustment_id = ?", adjustmentID).
		Order("level ASC").
		Find(&approvals).Error
	return approvals, err
}

func (r *repository) PendingApprovalsBySupervisor(ctx context.Context, supervisorID uuid.UUID) ([]AdjustmentApproval, error) {
	var approvals []AdjustmentApproval
	err := r.db.WithContext(ctx).
		Where("supervisor_id = ?", supervisorID).
		Where("status = ?", "pending").
		Order("created_at ASC").
		Find(&approvals).Error
	return approvals, err
}

func (r *repository) UpdateApproval(ctx context.Context, approval *AdjustmentApproval) error {
	return r.db.WithContext(ctx).Save(approval).Error
}

func (r *repository) MarkPendingApprovals(ctx context.Context, ids []uuid.UUID, status string, decidedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&AdjustmentApproval{}).
		Where("id IN ?", ids).
		Where("status = ?", "pending").
		Updates(map[string]any{
			"status":     status,
			"decided_at": decidedAt,
			"updated_at": decidedAt,
		}).Error
}
