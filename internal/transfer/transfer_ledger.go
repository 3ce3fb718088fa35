package transfer

import (
	"context"
	"database/sql"
	"time"

	"go-leavehub/internal/calendar"
	"go-leavehub/internal/policy"
	"go-leavehub/internal/shared/contextutil"
	transfererrors "go-leavehub/internal/transfer/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// UsageSource reports how many leave days an employee has consumed per leave
// type in a period. Satisfied by the leave repository.
type UsageSource interface {
	SumApprovedDaysByTypeInPeriod(ctx context.Context, employeeID uuid.UUID, leaveType string, from, to time.Time) (decimal.Decimal, error)
	SumPendingDaysByTypeInPeriod(ctx context.Context, employeeID uuid.UUID, leaveType string, from, to time.Time) (decimal.Decimal, error)
}

type GroupChange struct {
	EmployeeID uuid.UUID
	OldGroupID string
	NewGroupID string
	Now        time.Time
}

//go:generate mockgen -source=transfer_ledger.go -destination=mock/transfer_ledger_mock.go -package=mock
type Ledger interface {
	// ProcessGroupChange records, retargets, or reverses transfers for a
	// leave-group change. It writes through the caller's transaction so the
	// ledger rows commit or roll back with the employee update.
	ProcessGroupChange(ctx context.Context, tx *sql.Tx, change GroupChange) error
	ListForEmployee(ctx context.Context, employeeID string, at time.Time) ([]LeaveTransfer, error)
}

type ledger struct {
	repo     Repository
	policies policy.Repository
	resolver calendar.Resolver
	usage    UsageSource
	logger   *zap.Logger
}

func NewLedger(
	repo Repository,
	policies policy.Repository,
	resolver calendar.Resolver,
	usage UsageSource,
	logger ...*zap.Logger,
) Ledger {
	l := zap.L().Named("transfer.ledger")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("transfer.ledger")
	}
	return &ledger{
		repo:     repo,
		policies: policies,
		resolver: resolver,
		usage:    usage,
		logger:   l,
	}
}

func (l *ledger) ProcessGroupChange(ctx context.Context, tx *sql.Tx, change GroupChange) error {
	rid := contextutil.GetRequestID(ctx)
	l.logger.Debug("leave group change received",
		zap.String("request_id", rid),
		zap.String("employee_id", change.EmployeeID.String()),
		zap.String("old_group", change.OldGroupID),
		zap.String("new_group", change.NewGroupID),
	)

	if change.OldGroupID == "" || change.NewGroupID == "" || change.OldGroupID == change.NewGroupID {
		return nil
	}

	repo := l.repo
	if tx != nil {
		repo = l.repo.WithTx(tx)
	}

	periodStart, periodEnd := l.resolver.CurrentResetPeriod(ctx, change.Now)

	existing, err := repo.ActiveInPeriod(ctx, change.EmployeeID, periodStart)
	if err != nil {
		l.logger.Error("load existing transfers failed", zap.Error(err))
		return err
	}

	switch {
	case len(existing) == 0:
		return l.recordInitial(ctx, repo, change, periodStart, periodEnd)
	case change.NewGroupID == existing[0].FromLeaveGroupID:
		return l.reverseBatch(ctx, repo, existing)
	default:
		return l.retarget(ctx, repo, change, existing, periodStart, periodEnd)
	}
}

// recordInitial handles the first group change in a period: one transfer per
// leave type present in both the old and new group, for types with usage.
func (l *ledger) recordInitial(
	ctx context.Context,
	repo Repository,
	change GroupChange,
	periodStart, periodEnd time.Time,
) error {
	pairs, err := l.policyPairs(ctx, change.OldGroupID, change.NewGroupID)
	if err != nil {
		return err
	}

	batchID := uuid.New()
	created := 0
	for _, pair := range pairs {
		used, err := l.usedDays(ctx, change.EmployeeID, pair.leaveType, periodStart, periodEnd)
		if err != nil {
			return err
		}
		if !used.IsPositive() {
			continue
		}

		if err := repo.Create(ctx, &LeaveTransfer{
			ID:                 uuid.New(),
			EmployeeID:         change.EmployeeID,
			FromLeavePolicyID:  pair.fromPolicyID,
			ToLeavePolicyID:    pair.toPolicyID,
			FromLeaveGroupID:   change.OldGroupID,
			ToLeaveGroupID:     change.NewGroupID,
			LeaveType:          pair.leaveType,
			DaysTransferred:    used,
			Year:               periodStart,
			TransferIdentifier: batchID,
		}); err != nil {
			l.logger.Error("create transfer failed",
				zap.String("leave_type", pair.leaveType),
				zap.Error(err),
			)
			return err
		}
		created++
	}

	l.logger.Info("leave group change recorded",
		zap.String("employee_id", change.EmployeeID.String()),
		zap.String("transfer_identifier", batchID.String()),
		zap.Int("transfers", created),
	)
	return nil
}

// reverseBatch handles an employee returning to the original group within
// the same period: each live transfer gets a negated mirror row and both
// sides are flagged reversed.
func (l *ledger) reverseBatch(ctx context.Context, repo Repository, existing []LeaveTransfer) error {
	for i := range existing {
		orig := &existing[i]

		mirror := &LeaveTransfer{
			ID:                 uuid.New(),
			EmployeeID:         orig.EmployeeID,
			FromLeavePolicyID:  orig.ToLeavePolicyID,
			ToLeavePolicyID:    orig.FromLeavePolicyID,
			FromLeaveGroupID:   orig.ToLeaveGroupID,
			ToLeaveGroupID:     orig.FromLeaveGroupID,
			LeaveType:          orig.LeaveType,
			DaysTransferred:    orig.DaysTransferred.Neg(),
			Year:               orig.Year,
			TransferIdentifier: orig.TransferIdentifier,
			IsReversed:         true,
		}
		if err := repo.Create(ctx, mirror); err != nil {
			l.logger.Error("create reversal transfer failed", zap.Error(err))
			return err
		}

		orig.IsReversed = true
		orig.ReversedByID = &mirror.ID
		if err := repo.Update(ctx, orig); err != nil {
			l.logger.Error("flag reversed transfer failed", zap.Error(err))
			return err
		}
	}

	l.logger.Info("leave group change reversed",
		zap.Int("transfers", len(existing)),
	)
	return nil
}

// retarget handles a move to a third group: transfers already covering a
// leave type are updated in place, new types get fresh rows in the same
// batch.
func (l *ledger) retarget(
	ctx context.Context,
	repo Repository,
	change GroupChange,
	existing []LeaveTransfer,
	periodStart, periodEnd time.Time,
) error {
	pairs, err := l.policyPairs(ctx, change.OldGroupID, change.NewGroupID)
	if err != nil {
		return err
	}

	byType := make(map[string]*LeaveTransfer, len(existing))
	for i := range existing {
		byType[existing[i].LeaveType] = &existing[i]
	}

	for _, pair := range pairs {
		used, err := l.usedDays(ctx, change.EmployeeID, pair.leaveType, periodStart, periodEnd)
		if err != nil {
			return err
		}

		if current, ok := byType[pair.leaveType]; ok {
			current.ToLeaveGroupID = change.NewGroupID
			current.ToLeavePolicyID = pair.toPolicyID
			current.DaysTransferred = used
			if err := repo.Update(ctx, current); err != nil {
				l.logger.Error("retarget transfer failed",
					zap.String("leave_type", pair.leaveType),
					zap.Error(err),
				)
				return err
			}
			continue
		}

		if !used.IsPositive() {
			continue
		}
		if err := repo.Create(ctx, &LeaveTransfer{
			ID:                 uuid.New(),
			EmployeeID:         change.EmployeeID,
			FromLeavePolicyID:  pair.fromPolicyID,
			ToLeavePolicyID:    pair.toPolicyID,
			FromLeaveGroupID:   change.OldGroupID,
			ToLeaveGroupID:     change.NewGroupID,
			LeaveType:          pair.leaveType,
			DaysTransferred:    used,
			Year:               periodStart,
			TransferIdentifier: existing[0].TransferIdentifier,
		}); err != nil {
			l.logger.Error("create transfer on retarget failed",
				zap.String("leave_type", pair.leaveType),
				zap.Error(err),
			)
			return err
		}
	}

	l.logger.Info("leave group change retargeted",
		zap.String("employee_id", change.EmployeeID.String()),
		zap.String("new_group", change.NewGroupID),
	)
	return nil
}

func (l *ledger) ListForEmployee(ctx context.Context, employeeID string, at time.Time) ([]LeaveTransfer, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, transfererrors.ErrInvalidEmployeeID
	}
	periodStart, _ := l.resolver.CurrentResetPeriod(ctx, at)
	return l.repo.ListByEmployeeInPeriod(ctx, id, periodStart)
}

type policyPair struct {
	leaveType    string
	fromPolicyID uuid.UUID
	toPolicyID   uuid.UUID
}

// policyPairs matches the old group's active policies against the new
// group's by leave type. Types absent from either side do not transfer.
func (l *ledger) policyPairs(ctx context.Context, oldGroupID, newGroupID string) ([]policyPair, error) {
	oldPolicies, err := l.policies.ActiveByGroup(ctx, oldGroupID)
	if err != nil {
		l.logger.Error("load old group policies failed", zap.Error(err))
		return nil, err
	}
	newPolicies, err := l.policies.ActiveByGroup(ctx, newGroupID)
	if err != nil {
		l.logger.Error("load new group policies failed", zap.Error(err))
		return nil, err
	}

	newByType := make(map[string]uuid.UUID, len(newPolicies))
	for _, p := range newPolicies {
		newByType[p.LeaveType] = p.ID
	}

	var pairs []policyPair
	for _, p := range oldPolicies {
		toID, ok := newByType[p.LeaveType]
		if !ok {
			continue
		}
		pairs = append(pairs, policyPair{
			leaveType:    p.LeaveType,
			fromPolicyID: p.ID,
			toPolicyID:   toID,
		})
	}
	return pairs, nil
}

func (l *ledger) usedDays(ctx context.Context, employeeID uuid.UUID, leaveType string, from, to time.Time) (decimal.Decimal, error) {
	approved, err := l.usage.SumApprovedDaysByTypeInPeriod(ctx, employeeID, leaveType, from, to)
	if err != nil {
		l.logger.Error("sum approved days failed", zap.String("leave_type", leaveType), zap.Error(err))
		return decimal.Zero, err
	}
	pending, err := l.usage.SumPendingDaysByTypeInPeriod(ctx, employeeID, leaveType, from, to)
	if err != nil {
		l.logger.Error("sum pending days failed", zap.String("leave_type", leaveType), zap.Error(err))
		return decimal.Zero, err
	}
	return approved.Add(pending), nil
}
