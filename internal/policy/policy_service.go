package policy

import (
	"context"
	"database/sql"
	"errors"

	policyerrors "go-leavehub/internal/policy/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=policy_service.go -destination=mock/policy_service_mock.go -package=mock
type Service interface {
	CreateGroup(ctx context.Context, req CreateLeaveGroupRequest) error
	CreatePolicy(ctx context.Context, req CreatePolicyRequest) (PolicyResponse, error)
	GetPolicy(ctx context.Context, id string) (PolicyResponse, error)
	ListPolicies(ctx context.Context) ([]PolicyResponse, error)
	AllowNextType(ctx context.Context, req AllowNextTypeRequest) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("policy.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("policy.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) CreateGroup(ctx context.Context, req CreateLeaveGroupRequest) error {
	s.logger.Debug("create leave group requested", zap.String("group_id", req.ID))

	return s.repo.CreateGroup(ctx, &LeaveGroup{ID: req.ID, Name: req.Name})
}

func (s *service) CreatePolicy(ctx context.Context, req CreatePolicyRequest) (PolicyResponse, error) {
	s.logger.Debug("create policy requested",
		zap.String("leave_type", req.LeaveType),
		zap.String("leave_group_id", req.LeaveGroupID),
	)

	if !KnownLeaveType(req.LeaveType) {
		return PolicyResponse{}, policyerrors.ErrUnknownLeaveType
	}
	if _, err := s.repo.FindGroupByID(ctx, req.LeaveGroupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PolicyResponse{}, policyerrors.ErrGroupNotFound
		}
		return PolicyResponse{}, err
	}
	if existing, err := s.repo.ActiveByGroupAndType(ctx, req.LeaveGroupID, req.LeaveType); err == nil && existing != nil {
		return PolicyResponse{}, policyerrors.ErrDuplicatePolicy
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return PolicyResponse{}, err
	}

	gender := req.Gender
	if gender == "" {
		gender = GenderAny
	}

	p := &LeavePolicy{
		ID:                uuid.New(),
		LeaveType:         req.LeaveType,
		LeaveGroupID:      req.LeaveGroupID,
		Gender:            gender,
		ApplyBeforeDays:   req.ApplyBeforeDays,
		EffectiveFrom:     req.EffectiveFrom,
		TotalLeaveDays:    req.TotalLeaveDays,
		MaxDaysPerRequest: req.MaxDaysPerRequest,
		MinDaysPerRequest: req.MinDaysPerRequest,
		AllowHalfDay:      req.AllowHalfDay,
		CountHolidays:     req.CountHolidays,
		CountWeekends:     req.CountWeekends,
		IsActive:          true,
		ValidityDays:      req.ValidityDays,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create policy persist failed", zap.Error(err))
		return PolicyResponse{}, err
	}

	s.logger.Info("create policy success",
		zap.String("policy_id", p.ID.String()),
		zap.String("leave_type", p.LeaveType),
	)
	return mapPolicyToResponse(*p), nil
}

func (s *service) GetPolicy(ctx context.Context, id string) (PolicyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PolicyResponse{}, policyerrors.ErrInvalidPolicyID
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PolicyResponse{}, policyerrors.ErrPolicyNotFound
		}
		return PolicyResponse{}, err
	}
	return mapPolicyToResponse(*p), nil
}

func (s *service) ListPolicies(ctx context.Context) ([]PolicyResponse, error) {
	policies, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]PolicyResponse, len(policies))
	for i, p := range policies {
		resp[i] = mapPolicyToResponse(p)
	}
	return resp, nil
}

func (s *service) AllowNextType(ctx context.Context, req AllowNextTypeRequest) error {
	policyID, err := uuid.Parse(req.LeavePolicyID)
	if err != nil {
		return policyerrors.ErrInvalidPolicyID
	}
	allowedID, err := uuid.Parse(req.AllowedPolicyID)
	if err != nil {
		return policyerrors.ErrInvalidPolicyID
	}

	for _, id := range []uuid.UUID{policyID, allowedID} {
		if _, err := s.repo.FindByID(ctx, id.String()); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return policyerrors.ErrPolicyNotFound
			}
			return err
		}
	}

	return s.repo.AddAllowedNext(ctx, policyID, allowedID)
}

func mapPolicyToResponse(p LeavePolicy) PolicyResponse {
	return PolicyResponse{
		ID:                p.ID.String(),
		LeaveType:         p.LeaveType,
		LeaveGroupID:      p.LeaveGroupID,
		Gender:            p.Gender,
		ApplyBeforeDays:   p.ApplyBeforeDays,
		EffectiveFrom:     p.EffectiveFrom,
		TotalLeaveDays:    p.TotalLeaveDays,
		MaxDaysPerRequest: p.MaxDaysPerRequest,
		MinDaysPerRequest: p.MinDaysPerRequest,
		AllowHalfDay:      p.AllowHalfDay,
		CountHolidays:     p.CountHolidays,
		CountWeekends:     p.CountWeekends,
		IsActive:          p.IsActive,
		ValidityDays:      p.ValidityDays,
	}
}
