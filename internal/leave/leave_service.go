package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-leavehub/internal/calendar"
	"go-leavehub/internal/daycount"
	"go-leavehub/internal/employee"
	employeeerrors "go-leavehub/internal/employee/errors"
	"go-leavehub/internal/events"
	leaveerrors "go-leavehub/internal/leave/errors"
	"go-leavehub/internal/messaging/kafka"
	"go-leavehub/internal/policy"
	"go-leavehub/internal/shared/contextutil"
	"go-leavehub/internal/supervisor"
	"go-leavehub/internal/workflow"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	CreateRequest(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	GetRequest(ctx context.Context, id string) (LeaveResponse, error)
	ListRequests(ctx context.Context) ([]LeaveResponse, error)
	ListRequestsByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	ListApprovals(ctx context.Context, requestID string) ([]ApprovalResponse, error)
	PendingApprovalsBySupervisor(ctx context.Context, supervisorID string) ([]ApprovalResponse, error)
	SubmitApproval(ctx context.Context, approvalID string, req SubmitApprovalRequest) (LeaveResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	employees   employee.Repository
	policies    policy.Repository
	supervisors supervisor.Repository
	resolver    calendar.Resolver
	outbox      kafka.OutboxRepository
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	policies policy.Repository,
	supervisors supervisor.Repository,
	resolver calendar.Resolver,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		employees:   employees,
		policies:    policies,
		supervisors: supervisors,
		resolver:    resolver,
		outbox:      outboxRepo,
		logger:      l,
	}
}

// CreateRequest validates a leave application against the employee's policy,
// computes its day count, and opens the approval chain. All validation runs
// before the transaction; a failed check writes nothing.
func (s *service) CreateRequest(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave request",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type", req.LeaveType),
		zap.String("from_date", req.FromDate),
		zap.String("to_date", req.ToDate),
	)

	fromDate, err := parseDate(req.FromDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	toDate, err := parseDate(req.ToDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if fromDate.After(toDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	empl, err := s.employees.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("create leave employee lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if empl.Status != employee.StatusActive {
		return LeaveResponse{}, leaveerrors.ErrEmployeeInactive
	}
	if empl.LeaveGroupID == nil || *empl.LeaveGroupID == "" {
		return LeaveResponse{}, leaveerrors.ErrNoLeaveGroup
	}

	pol, err := s.policies.ActiveByGroupAndType(ctx, *empl.LeaveGroupID, req.LeaveType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrNoPolicyForType
		}
		s.logger.Error("create leave policy lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	today := truncateToDate(time.Now().UTC())
	if err := s.validateAgainstPolicy(ctx, empl, pol, fromDate, today); err != nil {
		s.logger.Warn("create leave validation failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("leave_type", req.LeaveType),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	includeHolidays := pol.CountHolidays
	if req.IsHoliday != nil {
		includeHolidays = *req.IsHoliday
	}

	var holidayErr error
	isHoliday := func(d time.Time) bool {
		h, err := s.resolver.IsHoliday(ctx, d)
		if err != nil {
			holidayErr = err
			return false
		}
		return h
	}

	days := daycount.Calculate(fromDate, toDate, s.resolver.WeekendDays(empl.OfficeDays), isHoliday, daycount.Options{
		CountWeekends:   pol.CountWeekends,
		IncludeHolidays: includeHolidays,
		AllowHalfDay:    pol.AllowHalfDay,
		HalfDay:         req.IsHalfDay,
	})
	if holidayErr != nil {
		s.logger.Error("create leave holiday lookup failed", zap.Error(holidayErr))
		return LeaveResponse{}, holidayErr
	}
	if !days.IsPositive() {
		return LeaveResponse{}, leaveerrors.ErrZeroDays
	}
	if pol.MinDaysPerRequest > 0 && days.LessThan(decimalFromInt(pol.MinDaysPerRequest)) {
		return LeaveResponse{}, leaveerrors.ErrBelowMinDays
	}
	if pol.MaxDaysPerRequest > 0 && days.GreaterThan(decimalFromInt(pol.MaxDaysPerRequest)) {
		return LeaveResponse{}, leaveerrors.ErrAboveMaxDays
	}

	chain, err := s.supervisors.ChainForEmployee(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("create leave supervisor chain lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	request := &LeaveRequest{
		ID:            uuid.New(),
		EmployeeID:    empl.ID,
		LeavePolicyID: pol.ID,
		LeaveType:     pol.LeaveType,
		FromDate:      fromDate,
		ToDate:        toDate,
		DaysCount:     days,
		IsHalfDay:     req.IsHalfDay,
		IsHoliday:     includeHolidays,
		Reason:        req.Reason,
		Status:        workflow.InitialStatus(),
	}

	approvals := make([]LeaveApproval, len(chain))
	for i, link := range chain {
		approvals[i] = LeaveApproval{
			ID:             uuid.New(),
			LeaveRequestID: request.ID,
			SupervisorID:   link.SupervisorID,
			Level:          link.Level,
			Status:         workflow.ApprovalPending,
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.CreateRequest(ctx, request); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := qtx.CreateApprovals(ctx, approvals); err != nil {
		s.logger.Error("create leave approvals persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("create leave success",
		zap.String("request_id", rid),
		zap.String("leave_request_id", request.ID.String()),
		zap.String("days_count", days.String()),
		zap.Int("approval_levels", len(approvals)),
	)
	return mapRequestToResponse(*request), nil
}

// validateAgainstPolicy runs the policy gates in the order the caller sees
// them reported: gender, cutoff, effective-from, advance notice, allowed
// sequence.
func (s *service) validateAgainstPolicy(
	ctx context.Context,
	empl *employee.Employee,
	pol *policy.LeavePolicy,
	fromDate, today time.Time,
) error {
	if pol.Gender != policy.GenderAny && pol.Gender != empl.Gender {
		return leaveerrors.ErrGenderNotEligible
	}

	if err := s.resolver.CheckCutoff(ctx, fromDate, today); err != nil {
		return err
	}

	switch pol.EffectiveFrom {
	case policy.EffectiveFromJoining:
		if fromDate.Before(empl.JoiningDate) {
			return leaveerrors.ErrBeforeJoining
		}
	case policy.EffectiveFromConfirmation:
		if empl.ConfirmationDate == nil || fromDate.Before(*empl.ConfirmationDate) {
			return leaveerrors.ErrBeforeConfirmation
		}
	case policy.EffectiveFromOneYear:
		if fromDate.Before(empl.JoiningDate.AddDate(1, 0, 0)) {
			return leaveerrors.ErrBeforeOneYear
		}
	}

	if pol.ApplyBeforeDays > 0 && fromDate.Before(today.AddDate(0, 0, pol.ApplyBeforeDays)) {
		return leaveerrors.ErrApplyBeforeDays
	}

	periodStart, periodEnd := s.resolver.CurrentResetPeriod(ctx, today)
	last, err := s.repo.LatestActiveRequest(ctx, empl.ID, periodStart, periodEnd)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	allowed, restricted, err := s.policies.AllowedNextPolicyIDs(ctx, last.LeavePolicyID)
	if err != nil {
		return err
	}
	if !restricted {
		return nil
	}
	for _, id := range allowed {
		if id == pol.ID {
			return nil
		}
	}
	return leaveerrors.ErrLeaveTypeNotAllowedNext
}

// SubmitApproval applies one supervisor's decision and the resulting
// cascade. The request row and its approval set are read under row locks so
// concurrent decisions serialize; every write commits atomically.
func (s *service) SubmitApproval(ctx context.Context, approvalID string, req SubmitApprovalRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit approval requested",
		zap.String("request_id", rid),
		zap.String("approval_id", approvalID),
		zap.String("decision", req.Decision),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit approval begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	acted, err := qtx.FindApprovalByID(ctx, approvalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrApprovalNotFound
		}
		s.logger.Error("submit approval lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	request, err := qtx.FindRequestByIDLocked(ctx, acted.LeaveRequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrRequestNotFound
		}
		s.logger.Error("submit approval request lock failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if workflow.IsTerminal(request.Status) {
		return LeaveResponse{}, leaveerrors.ErrRequestAlreadyDecided
	}

	now := time.Now().UTC()
	if err := s.resolver.CheckCutoff(ctx, request.FromDate, truncateToDate(now)); err != nil {
		s.logger.Warn("submit approval cutoff violation",
			zap.String("leave_request_id", request.ID.String()),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	rows, err := qtx.ApprovalsForRequestLocked(ctx, request.ID)
	if err != nil {
		s.logger.Error("submit approval chain lock failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	chain := make([]workflow.Approval, len(rows))
	for i, row := range rows {
		chain[i] = workflow.Approval{ID: row.ID, Level: row.Level, Status: row.Status}
	}

	outcome, err := workflow.Progress(chain, acted.ID, workflow.Decision(req.Decision))
	if err != nil {
		s.logger.Warn("submit approval rejected by state machine",
			zap.String("approval_id", approvalID),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	acted.Status = req.Decision
	acted.Comment = req.Comment
	acted.DecidedAt = &now
	if err := qtx.UpdateApproval(ctx, acted); err != nil {
		s.logger.Error("submit approval persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := qtx.MarkPendingApprovals(ctx, outcome.AutoApprove, workflow.ApprovalApproved, now); err != nil {
		s.logger.Error("submit approval auto-approve cascade failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := qtx.MarkPendingApprovals(ctx, outcome.RejectAll, workflow.ApprovalRejected, now); err != nil {
		s.logger.Error("submit approval reject cascade failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	request.Status = outcome.RequestStatus
	if outcome.Final {
		request.DecidedAt = &now
	}
	if err := qtx.UpdateRequest(ctx, request); err != nil {
		s.logger.Error("submit approval request update failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if outcome.Final {
		if err := s.queueDecidedEvent(ctx, tx, rid, request); err != nil {
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit approval commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("submit approval success",
		zap.String("request_id", rid),
		zap.String("leave_request_id", request.ID.String()),
		zap.String("status", request.Status),
		zap.Bool("final", outcome.Final),
	)
	return mapRequestToResponse(*request), nil
}

func (s *service) GetRequest(ctx context.Context, id string) (LeaveResponse, error) {
	req, err := s.repo.FindRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrRequestNotFound
		}
		return LeaveResponse{}, err
	}
	return mapRequestToResponse(*req), nil
}

func (s *service) ListRequests(ctx context.Context) ([]LeaveResponse, error) {
	reqs, err := s.repo.ListRequests(ctx)
	if err != nil {
		return nil, err
	}
	return mapRequestsToResponse(reqs), nil
}

func (s *service) ListRequestsByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, leaveerrors.ErrInvalidRequestID
	}
	reqs, err := s.repo.ListRequestsByEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapRequestsToResponse(reqs), nil
}

func (s *service) ListApprovals(ctx context.Context, requestID string) ([]ApprovalResponse, error) {
	id, err := uuid.Parse(requestID)
	if err != nil {
		return nil, leaveerrors.ErrInvalidRequestID
	}
	rows, err := s.repo.ApprovalsForRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapApprovalsToResponse(rows), nil
}

func (s *service) PendingApprovalsBySupervisor(ctx context.Context, supervisorID string) ([]ApprovalResponse, error) {
	id, err := uuid.Parse(supervisorID)
	if err != nil {
		return nil, leaveerrors.ErrInvalidRequestID
	}
	rows, err := s.repo.PendingApprovalsBySupervisor(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapApprovalsToResponse(rows), nil
}

func (s *service) queueDecidedEvent(ctx context.Context, tx *sql.Tx, rid string, request *LeaveRequest) error {
	if s.outbox == nil {
		return nil
	}

	event := events.LeaveRequestDecidedEvent{
		EventType:      "leave_request_decided",
		RequestID:      rid,
		LeaveRequestID: request.ID.String(),
		EmployeeID:     request.EmployeeID.String(),
		LeaveType:      request.LeaveType,
		Status:         request.Status,
		DaysCount:      request.DaysCount.String(),
		OccurredAt:     time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal decided event failed", zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "leave_request",
		AggregateID:   request.ID.String(),
		EventType:     event.EventType,
		Topic:         events.LeaveRequestDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("queue decided event failed", zap.Error(err))
		return err
	}
	return nil
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

func parseDate(v string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return d, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func mapRequestToResponse(req LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:            req.ID.String(),
		EmployeeID:    req.EmployeeID.String(),
		LeavePolicyID: req.LeavePolicyID.String(),
		LeaveType:     req.LeaveType,
		FromDate:      req.FromDate.Format("2006-01-02"),
		ToDate:        req.ToDate.Format("2006-01-02"),
		DaysCount:     req.DaysCount.StringFixed(1),
		IsHalfDay:     req.IsHalfDay,
		IsHoliday:     req.IsHoliday,
		Reason:        req.Reason,
		Status:        req.Status,
	}
	if req.DecidedAt != nil {
		resp.DecidedAt = req.DecidedAt.Format(time.RFC3339)
	}
	return resp
}

func mapRequestsToResponse(reqs []LeaveRequest) []LeaveResponse {
	res := make([]LeaveResponse, len(reqs))
	for i, r := range reqs {
		res[i] = mapRequestToResponse(r)
	}
	return res
}

func mapApprovalsToResponse(rows []LeaveApproval) []ApprovalResponse {
	res := make([]ApprovalResponse, len(rows))
	for i, row := range rows {
		res[i] = ApprovalResponse{
			ID:             row.ID.String(),
			LeaveRequestID: row.LeaveRequestID.String(),
			SupervisorID:   row.SupervisorID.String(),
			Level:          row.Level,
			Status:         row.Status,
			Comment:        row.Comment,
		}
		if row.DecidedAt != nil {
			res[i].DecidedAt = row.DecidedAt.Format(time.RFC3339)
		}
	}
	return res
}
