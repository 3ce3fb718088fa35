package adjustment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	adjustmenterrors "go-leavehub/internal/adjustment/errors"
	"go-leavehub/internal/employee"
	employeeerrors "go-leavehub/internal/employee/errors"
	"go-leavehub/internal/shared/contextutil"
	"go-leavehub/internal/supervisor"
	"go-leavehub/internal/workflow"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=adjustment_service.go -destination=mock/adjustment_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAdjustmentRequest) (AdjustmentResponse, error)
	Get(ctx context.Context, id string) (AdjustmentResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]AdjustmentResponse, error)
	PendingApprovalsBySupervisor(ctx context.Context, supervisorID string) ([]ApprovalResponse, error)
	SubmitApproval(ctx context.Context, approvalID string, req SubmitApprovalRequest) (AdjustmentResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	employees   employee.Repository
	supervisors supervisor.Repository
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	supervisors supervisor.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("adjustment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("adjustment.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		employees:   employees,
		supervisors: supervisors,
		logger:      l,
	}
}

func (s *service) Create(ctx context.Context, req CreateAdjustmentRequest) (AdjustmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create adjustment requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("adjustment_type", req.AdjustmentType),
		zap.String("attendance_date", req.AttendanceDate),
	)

	if !KnownAdjustmentType(req.AdjustmentType) {
		return AdjustmentResponse{}, adjustmenterrors.ErrUnknownAdjustmentType
	}
	attendanceDate, err := time.Parse("2006-01-02", req.AttendanceDate)
	if err != nil {
		return AdjustmentResponse{}, adjustmenterrors.ErrInvalidAttendanceDate
	}
	for _, v := range []string{req.RequestedInTime, req.RequestedOutTime} {
		if v == "" {
			continue
		}
		if _, err := time.Parse("15:04", v); err != nil {
			return AdjustmentResponse{}, adjustmenterrors.ErrInvalidTimeFrame
		}
	}

	empl, err := s.employees.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AdjustmentResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("create adjustment employee lookup failed", zap.Error(err))
		return AdjustmentResponse{}, err
	}

	chain, err := s.supervisors.ChainForEmployee(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("create adjustment supervisor chain lookup failed", zap.Error(err))
		return AdjustmentResponse{}, err
	}

	adj := &AttendanceAdjustment{
		ID:               uuid.New(),
		EmployeeID:       empl.ID,
		AttendanceDate:   attendanceDate,
		AdjustmentType:   req.AdjustmentType,
		RequestedInTime:  req.RequestedInTime,
		RequestedOutTime: req.RequestedOutTime,
		Reason:           req.Reason,
		Status:           workflow.InitialStatus(),
	}

	approvals := make([]AdjustmentApproval, len(chain))
	for i, link := range chain {
		approvals[i] = AdjustmentApproval{
			ID:           uuid.New(),
			AdjustmentID: adj.ID,
			SupervisorID: link.SupervisorID,
			Level:        link.Level,
			Status:       workflow.ApprovalPending,
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create adjustment begin tx failed", zap.Error(err))
		return AdjustmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, adj); err != nil {
		s.logger.Error("create adjustment persist failed", zap.Error(err))
		return AdjustmentResponse{}, mapRepositoryError(err)
	}
	if err := qtx.CreateApprovals(ctx, approvals); err != nil {
		s.logger.Error("create adjustment approvals persist failed", zap.Error(err))
		return AdjustmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create adjustment commit failed", zap.Error(err))
		return AdjustmentResponse{}, err
	}

	s.logger.Info("create adjustment success",
		zap.String("request_id", rid),
		zap.String("adjustment_id", adj.ID.String()),
		zap.Int("approval_levels", len(approvals)),
	)
	return mapAdjustmentToResponse(*adj), nil
}

func (s *service) Get(ctx context.Context, id string) (AdjustmentResponse, error) {
	adj, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AdjustmentResponse{}, mapRepositoryError(err)
	}
	return mapAdjustmentToResponse(*adj), nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]AdjustmentResponse, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, adjustmenterrors.ErrInvalidID
	}
	adjs, err := s.repo.ListByEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	res := make([]AdjustmentResponse, len(adjs))
	for i, a := range adjs {
		res[i] = mapAdjustmentToResponse(a)
	}
	return res, nil
}

func (s *service) PendingApprovalsBySupervisor(ctx context.Context, supervisorID string) ([]ApprovalResponse, error) {
	id, err := uuid.Parse(supervisorID)
	if err != nil {
		return nil, adjustmenterrors.ErrInvalidID
	}
	rows, err := s.repo.PendingApprovalsBySupervisor(ctx, id)
	if err != nil {
		return nil, err
	}

	res := make([]ApprovalResponse, len(rows))
	for i, row := range rows {
		res[i] = mapApprovalToResponse(row)
	}
	return res, nil
}

// SubmitApproval applies one decision and its cascade, identical in shape to
// the leave chain: row locks on the adjustment and its approvals, atomic
// writes.
func (s *service) SubmitApproval(ctx context.Context, approvalID string, req SubmitApprovalRequest) (AdjustmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit adjustment approval requested",
		zap.String("request_id", rid),
		zap.String("approval_id", approvalID),
		zap.String("decision", req.Decision),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit adjustment approval begin tx failed", zap.Error(err))
		return AdjustmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	acted, err := qtx.FindApprovalByID(ctx, approvalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AdjustmentResponse{}, adjustmenterrors.ErrApprovalNotFound
		}
		s.logger.Error("submit adjustment approval lookup failed", zap.Error(err))
		return AdjustmentResponse{}, err
	}

	adj, err := qtx.FindByIDLocked(ctx, acted.AdjustmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AdjustmentResponse{}, adjustmenterrors.ErrAdjustmentNotFound
		}
		s.logger.Error("submit adjustment approval lock failed", zap.Error(err))
		return AdjustmentResponse{}, err
	}
	if workflow.IsTerminal(adj.Status) {
		return AdjustmentResponse{}, adjustmenterrors.ErrAlreadyDecided
	}

	rows, err := qtx.ApprovalsForAdjustmentLocked(ctx, adj.ID)
	if err != nil {
		s.logger.Error("submit adjustment approval chain lock failed", zap.Error(err))
		return AdjustmentResponse{}, err
	}

	chain := make([]workflow.Approval, len(rows))
	for i, row := range rows {
		chain[i] = workflow.Approval{ID: row.ID, Level: row.Level, Status: row.Status}
	}

	outcome, err := workflow.Progress(chain, acted.ID, workflow.Decision(req.Decision))
	if err != nil {
		s.logger.Warn("submit adjustment approval rejected by state machine",
			zap.String("approval_id", approvalID),
			zap.Error(err),
		)
		return AdjustmentResponse{}, err
	}

	now := time.Now().UTC()
	acted.Status = req.Decision
	acted.Comment = req.Comment
	acted.DecidedAt = &now
	if err := qtx.UpdateApproval(ctx, acted); err != nil {
		s.logger.Error("submit adjustment approval persist failed", zap.Error(err))
		return AdjustmentResponse{}, err
	}

	if err := qtx.MarkPendingApprovals(ctx, outcome.AutoApprove, workflow.ApprovalApproved, now); err != nil {
		s.logger.Error("submit adjustment auto-approve cascade failed", zap.Error(err))
		return AdjustmentResponse{}, err
	}
	if err := qtx.MarkPendingApprovals(ctx, outcome.RejectAll, workflow.ApprovalRejected, now); err != nil {
		s.logger.Error("submit adjustment reject cascade failed", zap.Error(err))
		return AdjustmentResponse{}, err
	}

	adj.Status = outcome.RequestStatus
	if outcome.Final {
		adj.DecidedAt = &now
	}
	if err := qtx.Update(ctx, adj); err != nil {
		s.logger.Error("submit adjustment update failed", zap.Error(err))
		return AdjustmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit adjustment approval commit failed", zap.Error(err))
		return AdjustmentResponse{}, err
	}

	s.logger.Info("submit adjustment approval success",
		zap.String("request_id", rid),
		zap.String("adjustment_id", adj.ID.String()),
		zap.String("status", adj.Status),
		zap.Bool("final", outcome.Final),
	)
	return mapAdjustmentToResponse(*adj), nil
}

func mapAdjustmentToResponse(adj AttendanceAdjustment) AdjustmentResponse {
	resp := AdjustmentResponse{
		ID:               adj.ID.String(),
		EmployeeID:       adj.EmployeeID.String(),
		AttendanceDate:   adj.AttendanceDate.Format("2006-01-02"),
		AdjustmentType:   adj.AdjustmentType,
		RequestedInTime:  adj.RequestedInTime,
		RequestedOutTime: adj.RequestedOutTime,
		Reason:           adj.Reason,
		Status:           adj.Status,
	}
	if adj.DecidedAt != nil {
		resp.DecidedAt = adj.DecidedAt.Format(time.RFC3339)
	}
	return resp
}

func mapApprovalToResponse(row AdjustmentApproval) ApprovalResponse {
	resp := ApprovalResponse{
		ID:           row.ID.String(),
		AdjustmentID: row.AdjustmentID.String(),
		SupervisorID: row.SupervisorID.String(),
		Level:        row.Level,
		Status:       row.Status,
		Comment:      row.Comment,
	}
	if row.DecidedAt != nil {
		resp.DecidedAt = row.DecidedAt.Format(time.RFC3339)
	}
	return resp
}
