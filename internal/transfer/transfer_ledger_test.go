package transfer_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-leavehub/internal/policy"
	"go-leavehub/internal/transfer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeTransferRepository struct {
	created        []*transfer.LeaveTransfer
	updated        []*transfer.LeaveTransfer
	activeInPeriod []transfer.LeaveTransfer
}

func (f *fakeTransferRepository) WithTx(tx *sql.Tx) transfer.Repository { return f }
func (f *fakeTransferRepository) Create(ctx context.Context, t *transfer.LeaveTransfer) error {
	f.created = append(f.created, t)
	return nil
}
func (f *fakeTransferRepository) Update(ctx context.Context, t *transfer.LeaveTransfer) error {
	f.updated = append(f.updated, t)
	return nil
}
func (f *fakeTransferRepository) ActiveInPeriod(ctx context.Context, employeeID uuid.UUID, periodStart time.Time) ([]transfer.LeaveTransfer, error) {
	return f.activeInPeriod, nil
}
func (f *fakeTransferRepository) ListByEmployeeInPeriod(ctx context.Context, employeeID uuid.UUID, periodStart time.Time) ([]transfer.LeaveTransfer, error) {
	return f.activeInPeriod, nil
}
func (f *fakeTransferRepository) SumIncoming(ctx context.Context, employeeID uuid.UUID, groupID, leaveType string, periodStart time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (f *fakeTransferRepository) SumOutgoing(ctx context.Context, employeeID uuid.UUID, groupID, leaveType string, periodStart time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type fakePolicyRepository struct {
	byGroup map[string][]policy.LeavePolicy
}

func (f *fakePolicyRepository) WithTx(tx *sql.Tx) policy.Repository       { return f }
func (f *fakePolicyRepository) Create(context.Context, *policy.LeavePolicy) error { return nil }
func (f *fakePolicyRepository) FindByID(context.Context, string) (*policy.LeavePolicy, error) {
	return nil, nil
}
func (f *fakePolicyRepository) ListAll(context.Context) ([]policy.LeavePolicy, error) {
	return nil, nil
}
func (f *fakePolicyRepository) ActiveByGroup(ctx context.Context, groupID string) ([]policy.LeavePolicy, error) {
	return f.byGroup[groupID], nil
}
func (f *fakePolicyRepository) ActiveByGroupAndType(ctx context.Context, groupID, leaveType string) (*policy.LeavePolicy, error) {
	for _, p := range f.byGroup[groupID] {
		if p.LeaveType == leaveType {
			return &p, nil
		}
	}
	return nil, nil
}
func (f *fakePolicyRepository) Update(context.Context, *policy.LeavePolicy) error  { return nil }
func (f *fakePolicyRepository) CreateGroup(context.Context, *policy.LeaveGroup) error { return nil }
func (f *fakePolicyRepository) FindGroupByID(context.Context, string) (*policy.LeaveGroup, error) {
	return nil, nil
}
func (f *fakePolicyRepository) AllowedNextPolicyIDs(context.Context, uuid.UUID) ([]uuid.UUID, bool, error) {
	return nil, false, nil
}
func (f *fakePolicyRepository) AddAllowedNext(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

type fakeResolver struct {
	periodStart time.Time
	periodEnd   time.Time
}

func (f *fakeResolver) WeekendDays(string) map[time.Weekday]bool { return nil }
func (f *fakeResolver) IsHoliday(context.Context, time.Time) (bool, error) {
	return false, nil
}
func (f *fakeResolver) CurrentResetPeriod(context.Context, time.Time) (time.Time, time.Time) {
	return f.periodStart, f.periodEnd
}
func (f *fakeResolver) ResetPeriodForYear(ctx context.Context, year int) (time.Time, time.Time) {
	return f.periodStart, f.periodEnd
}
func (f *fakeResolver) CutoffDay(context.Context) int { return 25 }
func (f *fakeResolver) CheckCutoff(context.Context, time.Time, time.Time) error {
	return nil
}

type fakeUsage struct {
	approved map[string]decimal.Decimal
	pending  map[string]decimal.Decimal
}

func (f *fakeUsage) SumApprovedDaysByTypeInPeriod(ctx context.Context, employeeID uuid.UUID, leaveType string, from, to time.Time) (decimal.Decimal, error) {
	return f.approved[leaveType], nil
}
func (f *fakeUsage) SumPendingDaysByTypeInPeriod(ctx context.Context, employeeID uuid.UUID, leaveType string, from, to time.Time) (decimal.Decimal, error) {
	return f.pending[leaveType], nil
}

func period2025() (time.Time, time.Time) {
	return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
}

func groupPolicies(groupID string, types ...string) []policy.LeavePolicy {
	policies := make([]policy.LeavePolicy, len(types))
	for i, t := range types {
		policies[i] = policy.LeavePolicy{
			ID:           uuid.New(),
			LeaveType:    t,
			LeaveGroupID: groupID,
			IsActive:     true,
		}
	}
	return policies
}

func TestLedger_ProcessGroupChange_FirstChange(t *testing.T) {
	start, end := period2025()
	employeeID := uuid.New()

	t.Run("success records one transfer per matching type with usage", func(t *testing.T) {
		repo := &fakeTransferRepository{}
		policies := &fakePolicyRepository{byGroup: map[string][]policy.LeavePolicy{
			"staff":   groupPolicies("staff", "casual", "medical", "study"),
			"faculty": groupPolicies("faculty", "casual", "medical"),
		}}
		usage := &fakeUsage{
			approved: map[string]decimal.Decimal{"casual": decimal.NewFromInt(3)},
			pending:  map[string]decimal.Decimal{"casual": decimal.NewFromInt(2)},
		}
		ledger := transfer.NewLedger(repo, policies, &fakeResolver{periodStart: start, periodEnd: end}, usage)

		err := ledger.ProcessGroupChange(context.Background(), nil, transfer.GroupChange{
			EmployeeID: employeeID,
			OldGroupID: "staff",
			NewGroupID: "faculty",
			Now:        time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		})

		assert.NoError(t, err)
		assert.Len(t, repo.created, 1)
		created := repo.created[0]
		assert.Equal(t, "casual", created.LeaveType)
		assert.True(t, created.DaysTransferred.Equal(decimal.NewFromInt(5)))
		assert.Equal(t, "staff", created.FromLeaveGroupID)
		assert.Equal(t, "faculty", created.ToLeaveGroupID)
		assert.Equal(t, start, created.Year)
		assert.False(t, created.IsReversed)
	})

	t.Run("negative no-op when group unchanged", func(t *testing.T) {
		repo := &fakeTransferRepository{}
		ledger := transfer.NewLedger(repo, &fakePolicyRepository{}, &fakeResolver{periodStart: start, periodEnd: end}, &fakeUsage{})

		err := ledger.ProcessGroupChange(context.Background(), nil, transfer.GroupChange{
			EmployeeID: employeeID,
			OldGroupID: "staff",
			NewGroupID: "staff",
			Now:        time.Now(),
		})

		assert.NoError(t, err)
		assert.Empty(t, repo.created)
	})

	t.Run("negative zero usage creates nothing", func(t *testing.T) {
		repo := &fakeTransferRepository{}
		policies := &fakePolicyRepository{byGroup: map[string][]policy.LeavePolicy{
			"staff":   groupPolicies("staff", "casual"),
			"faculty": groupPolicies("faculty", "casual"),
		}}
		ledger := transfer.NewLedger(repo, policies, &fakeResolver{periodStart: start, periodEnd: end}, &fakeUsage{})

		err := ledger.ProcessGroupChange(context.Background(), nil, transfer.GroupChange{
			EmployeeID: employeeID,
			OldGroupID: "staff",
			NewGroupID: "faculty",
			Now:        time.Now(),
		})

		assert.NoError(t, err)
		assert.Empty(t, repo.created)
	})
}

func TestLedger_ProcessGroupChange_ReturnToOrigin(t *testing.T) {
	start, end := period2025()
	employeeID := uuid.New()
	batchID := uuid.New()

	original := transfer.LeaveTransfer{
		ID:                 uuid.New(),
		EmployeeID:         employeeID,
		FromLeavePolicyID:  uuid.New(),
		ToLeavePolicyID:    uuid.New(),
		FromLeaveGroupID:   "staff",
		ToLeaveGroupID:     "faculty",
		LeaveType:          "casual",
		DaysTransferred:    decimal.NewFromInt(5),
		Year:               start,
		TransferIdentifier: batchID,
	}

	repo := &fakeTransferRepository{activeInPeriod: []transfer.LeaveTransfer{original}}
	ledger := transfer.NewLedger(repo, &fakePolicyRepository{}, &fakeResolver{periodStart: start, periodEnd: end}, &fakeUsage{})

	err := ledger.ProcessGroupChange(context.Background(), nil, transfer.GroupChange{
		EmployeeID: employeeID,
		OldGroupID: "faculty",
		NewGroupID: "staff",
		Now:        time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Len(t, repo.created, 1)
	assert.Len(t, repo.updated, 1)

	mirror := repo.created[0]
	assert.Equal(t, "faculty", mirror.FromLeaveGroupID)
	assert.Equal(t, "staff", mirror.ToLeaveGroupID)
	assert.True(t, mirror.DaysTransferred.Equal(decimal.NewFromInt(-5)))
	assert.True(t, mirror.IsReversed)
	assert.Equal(t, batchID, mirror.TransferIdentifier)

	flagged := repo.updated[0]
	assert.True(t, flagged.IsReversed)
	if assert.NotNil(t, flagged.ReversedByID) {
		assert.Equal(t, mirror.ID, *flagged.ReversedByID)
	}

	// round trip nets to zero
	net := flagged.DaysTransferred.Add(mirror.DaysTransferred)
	assert.True(t, net.IsZero())
}

func TestLedger_ProcessGroupChange_ThirdGroup(t *testing.T) {
	start, end := period2025()
	employeeID := uuid.New()
	batchID := uuid.New()

	existing := transfer.LeaveTransfer{
		ID:                 uuid.New(),
		EmployeeID:         employeeID,
		FromLeavePolicyID:  uuid.New(),
		ToLeavePolicyID:    uuid.New(),
		FromLeaveGroupID:   "staff",
		ToLeaveGroupID:     "faculty",
		LeaveType:          "casual",
		DaysTransferred:    decimal.NewFromInt(5),
		Year:               start,
		TransferIdentifier: batchID,
	}

	repo := &fakeTransferRepository{activeInPeriod: []transfer.LeaveTransfer{existing}}
	policies := &fakePolicyRepository{byGroup: map[string][]policy.LeavePolicy{
		"faculty": groupPolicies("faculty", "casual", "medical"),
		"admin":   groupPolicies("admin", "casual", "medical"),
	}}
	usage := &fakeUsage{
		approved: map[string]decimal.Decimal{
			"casual":  decimal.NewFromInt(6),
			"medical": decimal.NewFromInt(1),
		},
	}
	ledger := transfer.NewLedger(repo, policies, &fakeResolver{periodStart: start, periodEnd: end}, usage)

	err := ledger.ProcessGroupChange(context.Background(), nil, transfer.GroupChange{
		EmployeeID: employeeID,
		OldGroupID: "faculty",
		NewGroupID: "admin",
		Now:        time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)

	// casual had a live transfer: retargeted in place with recomputed days
	assert.Len(t, repo.updated, 1)
	retargeted := repo.updated[0]
	assert.Equal(t, "casual", retargeted.LeaveType)
	assert.Equal(t, "admin", retargeted.ToLeaveGroupID)
	assert.Equal(t, "staff", retargeted.FromLeaveGroupID)
	assert.True(t, retargeted.DaysTransferred.Equal(decimal.NewFromInt(6)))
	assert.False(t, retargeted.IsReversed)

	// medical had no transfer yet: fresh row in the same batch
	assert.Len(t, repo.created, 1)
	created := repo.created[0]
	assert.Equal(t, "medical", created.LeaveType)
	assert.Equal(t, batchID, created.TransferIdentifier)
	assert.True(t, created.DaysTransferred.Equal(decimal.NewFromInt(1)))
}
