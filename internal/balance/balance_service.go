package balance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	balanceerrors "go-leavehub/internal/balance/errors"
	"go-leavehub/internal/calendar"
	"go-leavehub/internal/employee"
	employeeerrors "go-leavehub/internal/employee/errors"
	"go-leavehub/internal/policy"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	// BalanceKeyPrefix namespaces cached balance sheets per employee and
	// period anchor year.
	BalanceKeyPrefix = "balances:employee:"

	// balanceCacheTTL is short: balances change with every approval, and
	// this package owns no writes to invalidate on.
	balanceCacheTTL = 5 * time.Minute

	probationWindowDays = 90
)

func GetBalanceKey(employeeID string, year int) string {
	return fmt.Sprintf("%s%s:%d", BalanceKeyPrefix, employeeID, year)
}

// LeaveUsageSource is the slice of the leave repository the balance engine
// reads. Satisfied by leave.Repository.
type LeaveUsageSource interface {
	SumApprovedDaysByTypeInPeriod(ctx context.Context, employeeID uuid.UUID, leaveType string, from, to time.Time) (decimal.Decimal, error)
	SumPendingDaysByTypeInPeriod(ctx context.Context, employeeID uuid.UUID, leaveType string, from, to time.Time) (decimal.Decimal, error)
	SumApprovedDaysByTypeEndingBy(ctx context.Context, employeeID uuid.UUID, leaveType string, endBy time.Time) (decimal.Decimal, error)
}

// TransferSource is the slice of the transfer repository the balance engine
// reads. Satisfied by transfer.Repository.
type TransferSource interface {
	SumIncoming(ctx context.Context, employeeID uuid.UUID, groupID, leaveType string, periodStart time.Time) (decimal.Decimal, error)
	SumOutgoing(ctx context.Context, employeeID uuid.UUID, groupID, leaveType string, periodStart time.Time) (decimal.Decimal, error)
}

// EmployeeSource is the slice of the employee repository the balance engine
// reads. Satisfied by employee.Repository.
type EmployeeSource interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]employee.Employee, error)
	FindAllActive(ctx context.Context) ([]employee.Employee, error)
}

// PolicySource is the slice of the policy repository the balance engine
// reads. Satisfied by policy.Repository.
type PolicySource interface {
	ActiveByGroup(ctx context.Context, groupID string) ([]policy.LeavePolicy, error)
}

// TeamSource resolves which employees report to a supervisor. Satisfied by
// supervisor.Repository.
type TeamSource interface {
	EmployeeIDsUnder(ctx context.Context, supervisorID string) ([]uuid.UUID, error)
}

// Service computes per-policy remaining balances. year == 0 means the reset
// period containing today; any other value anchors the period to that year.
//
//go:generate mockgen -source=balance_service.go -destination=mock/balance_service_mock.go -package=mock
type Service interface {
	QueryBalance(ctx context.Context, employeeID string, year int) (EmployeeBalanceResponse, error)
	QueryBalanceBySupervisor(ctx context.Context, supervisorID string, year int) ([]EmployeeBalanceResponse, error)
	QueryAllActive(ctx context.Context, year int) ([]EmployeeBalanceResponse, error)
}

type service struct {
	employees EmployeeSource
	policies  PolicySource
	usage     LeaveUsageSource
	transfers TransferSource
	team      TeamSource
	resolver  calendar.Resolver
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(
	employees EmployeeSource,
	policies PolicySource,
	usage LeaveUsageSource,
	transfers TransferSource,
	team TeamSource,
	resolver calendar.Resolver,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("balance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.service")
	}
	return &service{
		employees: employees,
		policies:  policies,
		usage:     usage,
		transfers: transfers,
		team:      team,
		resolver:  resolver,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func (s *service) QueryBalance(ctx context.Context, employeeID string, year int) (EmployeeBalanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return EmployeeBalanceResponse{}, balanceerrors.ErrInvalidEmployeeID
	}

	cacheKey := GetBalanceKey(employeeID, year)
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp EmployeeBalanceResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		empl, err := s.employees.FindByID(ctx, employeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, employeeerrors.ErrEmployeeNotFound
			}
			return nil, err
		}

		resp, err := s.computeForEmployee(ctx, empl, year)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, balanceCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return EmployeeBalanceResponse{}, err
	}
	return v.(EmployeeBalanceResponse), nil
}

func (s *service) QueryBalanceBySupervisor(ctx context.Context, supervisorID string, year int) ([]EmployeeBalanceResponse, error) {
	if _, err := uuid.Parse(supervisorID); err != nil {
		return nil, balanceerrors.ErrInvalidEmployeeID
	}

	ids, err := s.team.EmployeeIDsUnder(ctx, supervisorID)
	if err != nil {
		s.logger.Error("team lookup failed", zap.String("supervisor_id", supervisorID), zap.Error(err))
		return nil, err
	}
	if len(ids) == 0 {
		return []EmployeeBalanceResponse{}, nil
	}

	team, err := s.employees.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return s.computeForEmployees(ctx, team, year)
}

func (s *service) QueryAllActive(ctx context.Context, year int) ([]EmployeeBalanceResponse, error) {
	active, err := s.employees.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	return s.computeForEmployees(ctx, active, year)
}

// computeForEmployees skips employees without a leave group instead of
// failing the whole roster. Direct single-employee queries still surface the
// missing group as a domain error.
func (s *service) computeForEmployees(ctx context.Context, employees []employee.Employee, year int) ([]EmployeeBalanceResponse, error) {
	res := make([]EmployeeBalanceResponse, 0, len(employees))
	for i := range employees {
		if employees[i].LeaveGroupID == nil || *employees[i].LeaveGroupID == "" {
			continue
		}
		resp, err := s.computeForEmployee(ctx, &employees[i], year)
		if err != nil {
			return nil, err
		}
		res = append(res, resp)
	}
	return res, nil
}

func (s *service) computeForEmployee(ctx context.Context, empl *employee.Employee, year int) (EmployeeBalanceResponse, error) {
	if empl.LeaveGroupID == nil || *empl.LeaveGroupID == "" {
		return EmployeeBalanceResponse{}, balanceerrors.ErrNoLeaveGroup
	}
	groupID := *empl.LeaveGroupID

	var periodStart, periodEnd time.Time
	if year == 0 {
		periodStart, periodEnd = s.resolver.CurrentResetPeriod(ctx, time.Now().UTC())
	} else {
		periodStart, periodEnd = s.resolver.ResetPeriodForYear(ctx, year)
	}

	policies, err := s.policies.ActiveByGroup(ctx, groupID)
	if err != nil {
		return EmployeeBalanceResponse{}, err
	}

	sort.Slice(policies, func(i, j int) bool {
		return policies[i].LeaveType < policies[j].LeaveType
	})

	balances := make([]PolicyBalance, 0, len(policies))
	for _, p := range policies {
		line, err := s.computePolicyLine(ctx, empl, groupID, p, periodStart, periodEnd)
		if err != nil {
			return EmployeeBalanceResponse{}, err
		}
		balances = append(balances, line)
	}

	return EmployeeBalanceResponse{
		EmployeeID:     empl.ID.String(),
		EmployeeNumber: empl.EmployeeNumber,
		FullName:       empl.FullName,
		LeaveGroupID:   groupID,
		PeriodStart:    periodStart.Format("2006-01-02"),
		PeriodEnd:      periodEnd.Format("2006-01-02"),
		Balances:       balances,
	}, nil
}

func (s *service) computePolicyLine(
	ctx context.Context,
	empl *employee.Employee,
	groupID string,
	p policy.LeavePolicy,
	periodStart, periodEnd time.Time,
) (PolicyBalance, error) {
	used, err := s.usage.SumApprovedDaysByTypeInPeriod(ctx, empl.ID, p.LeaveType, periodStart, periodEnd)
	if err != nil {
		return PolicyBalance{}, err
	}
	pending, err := s.usage.SumPendingDaysByTypeInPeriod(ctx, empl.ID, p.LeaveType, periodStart, periodEnd)
	if err != nil {
		return PolicyBalance{}, err
	}
	transferredIn, err := s.transfers.SumIncoming(ctx, empl.ID, groupID, p.LeaveType, periodStart)
	if err != nil {
		return PolicyBalance{}, err
	}
	transferredOut, err := s.transfers.SumOutgoing(ctx, empl.ID, groupID, p.LeaveType, periodStart)
	if err != nil {
		return PolicyBalance{}, err
	}

	probation := decimal.Zero
	if empl.OnProbation() {
		boundary := empl.JoiningDate.AddDate(0, 0, probationWindowDays)
		if !periodStart.After(boundary) {
			probation, err = s.usage.SumApprovedDaysByTypeEndingBy(ctx, empl.ID, p.LeaveType, boundary)
			if err != nil {
				return PolicyBalance{}, err
			}
		}
	}

	remaining := decimal.NewFromInt(int64(p.TotalLeaveDays)).
		Sub(used).
		Sub(pending).
		Sub(probation).
		Sub(transferredIn).
		Add(transferredOut)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return PolicyBalance{
		PolicyID:            p.ID.String(),
		LeaveType:           p.LeaveType,
		TotalLeaveDays:      p.TotalLeaveDays,
		Used:                used,
		Pending:             pending,
		TransferredIn:       transferredIn,
		TransferredOut:      transferredOut,
		ProbationAdjustment: probation,
		Remaining:           remaining,
	}, nil
}
