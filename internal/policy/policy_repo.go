package policy

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//go:generate mockgen -source=policy_repo.go -destination=mock/policy_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *LeavePolicy) error
	FindByID(ctx context.Context, id string) (*LeavePolicy, error)
	ListAll(ctx context.Context) ([]LeavePolicy, error)
	ActiveByGroup(ctx context.Context, groupID string) ([]LeavePolicy, error)
	ActiveByGroupAndType(ctx context.Context, groupID, leaveType string) (*LeavePolicy, error)
	Update(ctx context.Context, p *LeavePolicy) error
	CreateGroup(ctx context.Context, g *LeaveGroup) error
	FindGroupByID(ctx context.Context, id string) (*LeaveGroup, error)
	AllowedNextPolicyIDs(ctx context.Context, policyID uuid.UUID) ([]uuid.UUID, bool, error)
	AddAllowedNext(ctx context.Context, policyID, allowedPolicyID uuid.UUID) error
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

func (r *repository) Create(ctx context.Context, p *LeavePolicy) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeavePolicy, error) {
	var p LeavePolicy
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) ListAll(ctx context.Context) ([]LeavePolicy, error) {
	var policies []LeavePolicy
	err := r.db.WithContext(ctx).
		Order("leave_group_id ASC, leave_type ASC").
		Find(&policies).Error
	return policies, err
}

func (r *repository) ActiveByGroup(ctx context.Context, groupID string) ([]LeavePolicy, error) {
	var policies []LeavePolicy
	err := r.db.WithContext(ctx).
		Where("leave_group_id = ?", groupID).
		Where("is_active = ?", true).
		Order("leave_type ASC").
		Find(&policies).Error
	return policies, err
}

func (r *repository) ActiveByGroupAndType(ctx context.Context, groupID, leaveType string) (*LeavePolicy, error) {
	var p LeavePolicy
	err := r.db.WithContext(ctx).
		Where("leave_group_id = ?", groupID).
		Where("leave_type = ?", leaveType).
		Where("is_active = ?", true).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *LeavePolicy) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) CreateGroup(ctx context.Context, g *LeaveGroup) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *repository) FindGroupByID(ctx context.Context, id string) (*LeaveGroup, error) {
	var g LeaveGroup
	err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error
	return &g, err
}

// AllowedNextPolicyIDs returns the allowed successor policies. The second
// result is false when no restriction rows exist for the policy at all, in
// which case any successor is permitted.
func (r *repository) AllowedNextPolicyIDs(ctx context.Context, policyID uuid.UUID) ([]uuid.UUID, bool, error) {
	var rows []AllowedLeaveType
	err := r.db.WithContext(ctx).
		Where("leave_policy_id = ?", policyID).
		Find(&rows).Error
	if err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		return nil, false, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.AllowedPolicyID
	}
	return ids, true, nil
}

func (r *repository) AddAllowedNext(ctx context.Context, policyID, allowedPolicyID uuid.UUID) error {
	return r.db.WithContext(ctx).Create(&AllowedLeaveType{
		ID:              uuid.New(),
		LeavePolicyID:   policyID,
		AllowedPolicyID: allowedPolicyID,
	}).Error
}
