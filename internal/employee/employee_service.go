package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	employeeerrors "go-leavehub/internal/employee/errors"
	"go-leavehub/internal/events"
	"go-leavehub/internal/messaging/kafka"
	"go-leavehub/internal/policy"
	"go-leavehub/internal/shared/contextutil"
	"go-leavehub/internal/shared/counter"
	"go-leavehub/internal/transfer"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	counter  counter.Repository
	policies policy.Repository
	ledger   transfer.Ledger
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	policies policy.Repository,
	ledger transfer.Ledger,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		counter:  counterRepo,
		policies: policies,
		ledger:   ledger,
		outbox:   outboxRepo,
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		s.logger.Warn("create employee invalid joining_date",
			zap.String("joining_date", req.JoiningDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}

	if req.LeaveGroupID != "" {
		if _, err := s.policies.FindGroupByID(ctx, req.LeaveGroupID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return EmployeeResponse{}, employeeerrors.ErrUnknownLeaveGroup
			}
			s.logger.Error("create employee leave group lookup failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	if req.EmployeeNumber == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "employee_number")
		if err != nil {
			s.logger.Error("create employee generate number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeNumber = fmt.Sprintf("EMP-%06d", nextVal)
	}

	empl := &Employee{
		ID:               uuid.New(),
		EmployeeNumber:   req.EmployeeNumber,
		FullName:         req.FullName,
		Email:            req.Email,
		Gender:           req.Gender,
		EmploymentType:   defaultString(req.EmploymentType, EmploymentTypeGeneral),
		EmploymentStatus: defaultString(req.EmploymentStatus, EmploymentStatusProbation),
		JoiningDate:      joiningDate,
		ProbationMonths:  req.ProbationMonths,
		OfficeDays:       defaultString(req.OfficeDays, DefaultOfficeDays),
		OfficeTime:       defaultString(req.OfficeTime, DefaultOfficeTime),
		Status:           StatusActive,
	}
	if req.LeaveGroupID != "" {
		empl.LeaveGroupID = &req.LeaveGroupID
	}
	empl.ConfirmationDate = deriveConfirmationDate(joiningDate, req.ProbationMonths)

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_number", empl.EmployeeNumber),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

// Update persists the employee and, when the leave group changed, runs the
// transfer ledger and queues the group-change event inside the same
// transaction.
func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if req.LeaveGroupID != "" {
		if _, err := s.policies.FindGroupByID(ctx, req.LeaveGroupID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return EmployeeResponse{}, employeeerrors.ErrUnknownLeaveGroup
			}
			s.logger.Error("update employee leave group lookup failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	oldGroupID := ""
	if empl.LeaveGroupID != nil {
		oldGroupID = *empl.LeaveGroupID
	}

	empl.FullName = req.FullName
	empl.Email = req.Email
	empl.Gender = req.Gender
	empl.EmploymentType = defaultString(req.EmploymentType, empl.EmploymentType)
	empl.EmploymentStatus = defaultString(req.EmploymentStatus, empl.EmploymentStatus)
	empl.OfficeDays = defaultString(req.OfficeDays, empl.OfficeDays)
	empl.OfficeTime = defaultString(req.OfficeTime, empl.OfficeTime)
	empl.Status = defaultString(req.Status, empl.Status)
	if req.LeaveGroupID == "" {
		empl.LeaveGroupID = nil
	} else {
		empl.LeaveGroupID = &req.LeaveGroupID
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if oldGroupID != req.LeaveGroupID {
		if err := s.ledger.ProcessGroupChange(ctx, tx, transfer.GroupChange{
			EmployeeID: empl.ID,
			OldGroupID: oldGroupID,
			NewGroupID: req.LeaveGroupID,
			Now:        time.Now().UTC(),
		}); err != nil {
			s.logger.Error("update employee transfer ledger failed",
				zap.String("employee_id", id),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}

		if err := s.queueGroupChangedEvent(ctx, tx, rid, empl, oldGroupID, req.LeaveGroupID); err != nil {
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
		zap.Bool("leave_group_changed", oldGroupID != req.LeaveGroupID),
	)
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) queueGroupChangedEvent(
	ctx context.Context,
	tx *sql.Tx,
	rid string,
	empl *Employee,
	oldGroupID, newGroupID string,
) error {
	if s.outbox == nil {
		return nil
	}

	event := events.LeaveGroupChangedEvent{
		EventType:       "leave_group_changed",
		RequestID:       rid,
		EmployeeID:      empl.ID.String(),
		OldLeaveGroupID: oldGroupID,
		NewLeaveGroupID: newGroupID,
		OccurredAt:      time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal group change event failed", zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   empl.ID.String(),
		EventType:     event.EventType,
		Topic:         events.LeaveGroupChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("queue group change event failed", zap.Error(err))
		return err
	}
	return nil
}

// deriveConfirmationDate places confirmation at joining plus thirty days per
// probation month. Zero probation months means confirmed at joining.
func deriveConfirmationDate(joining time.Time, probationMonths int) *time.Time {
	confirmation := joining.AddDate(0, 0, 30*probationMonths)
	return &confirmation
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               empl.ID.String(),
		EmployeeNumber:   empl.EmployeeNumber,
		FullName:         empl.FullName,
		Email:            empl.Email,
		Gender:           empl.Gender,
		EmploymentType:   empl.EmploymentType,
		EmploymentStatus: empl.EmploymentStatus,
		JoiningDate:      empl.JoiningDate.Format("2006-01-02"),
		ProbationMonths:  empl.ProbationMonths,
		OfficeDays:       empl.OfficeDays,
		OfficeTime:       empl.OfficeTime,
		Status:           empl.Status,
	}
	if empl.LeaveGroupID != nil {
		resp.LeaveGroupID = *empl.LeaveGroupID
	}
	if empl.ConfirmationDate != nil {
		resp.ConfirmationDate = empl.ConfirmationDate.Format("2006-01-02")
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
