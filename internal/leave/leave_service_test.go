package leave_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-leavehub/internal/employee"
	"go-leavehub/internal/leave"
	leaveerrors "go-leavehub/internal/leave/errors"
	"go-leavehub/internal/messaging/kafka"
	"go-leavehub/internal/policy"
	"go-leavehub/internal/supervisor"
	"go-leavehub/internal/workflow"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveRepository struct {
	request  *leave.LeaveRequest
	approval *leave.LeaveApproval
	chain    []leave.LeaveApproval

	createdRequest   *leave.LeaveRequest
	createdApprovals []leave.LeaveApproval
	updatedRequest   *leave.LeaveRequest
	updatedApproval  *leave.LeaveApproval
	marked           map[string][]uuid.UUID

	latestActive *leave.LeaveRequest
}

func newFakeLeaveRepository() *fakeLeaveRepository {
	return &fakeLeaveRepository{marked: map[string][]uuid.UUID{}}
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository { return f }
func (f *fakeLeaveRepository) CreateRequest(ctx context.Context, req *leave.LeaveRequest) error {
	f.createdRequest = req
	return nil
}
func (f *fakeLeaveRepository) FindRequestByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	if f.request == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.request, nil
}
func (f *fakeLeaveRepository) FindRequestByIDLocked(ctx context.Context, id uuid.UUID) (*leave.LeaveRequest, error) {
	if f.request == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.request, nil
}
func (f *fakeLeaveRepository) ListRequests(ctx context.Context) ([]leave.LeaveRequest, error) {
	return nil, nil
}
func (f *fakeLeaveRepository) ListRequestsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]leave.LeaveRequest, error) {
	return nil, nil
}
func (f *fakeLeaveRepository) LatestActiveRequest(ctx context.Context, employeeID uuid.UUID, from, to time.Time) (*leave.LeaveRequest, error) {
	if f.latestActive == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.latestActive, nil
}
func (f *fakeLeaveRepository) UpdateRequest(ctx context.Context, req *leave.LeaveRequest) error {
	f.updatedRequest = req
	return nil
}
func (f *fakeLeaveRepository) CreateApprovals(ctx context.Context, approvals []leave.LeaveApproval) error {
	f.createdApprovals = approvals
	return nil
}
func (f *fakeLeaveRepository) FindApprovalByID(ctx context.Context, id string) (*leave.LeaveApproval, error) {
	if f.approval == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.approval, nil
}
func (f *fakeLeaveRepository) ApprovalsForRequestLocked(ctx context.Context, requestID uuid.UUID) ([]leave.LeaveApproval, error) {
	return f.chain, nil
}
func (f *fakeLeaveRepository) ApprovalsForRequest(ctx context.Context, requestID uuid.UUID) ([]leave.LeaveApproval, error) {
	return f.chain, nil
}
func (f *fakeLeaveRepository) PendingApprovalsBySupervisor(ctx context.Context, supervisorID uuid.UUID) ([]leave.LeaveApproval, error) {
	return nil, nil
}
func (f *fakeLeaveRepository) UpdateApproval(ctx context.Context, approval *leave.LeaveApproval) error {
	f.updatedApproval = approval
	return nil
}
func (f *fakeLeaveRepository) MarkPendingApprovals(ctx context.Context, ids []uuid.UUID, status string, decidedAt time.Time) error {
	if len(ids) > 0 {
		f.marked[status] = append(f.marked[status], ids...)
	}
	return nil
}
func (f *fakeLeaveRepository) SumApprovedDaysByTypeInPeriod(ctx context.Context, employeeID uuid.UUID, leaveType string, from, to time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (f *fakeLeaveRepository) SumPendingDaysByTypeInPeriod(ctx context.Context, employeeID uuid.UUID, leaveType string, from, to time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (f *fakeLeaveRepository) SumApprovedDaysByTypeEndingBy(ctx context.Context, employeeID uuid.UUID, leaveType string, endBy time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type fakeEmployeeFinder struct {
	empl *employee.Employee
}

func (f *fakeEmployeeFinder) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeEmployeeFinder) Create(context.Context, *employee.Employee) error {
	return nil
}
func (f *fakeEmployeeFinder) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.empl == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.empl, nil
}
func (f *fakeEmployeeFinder) FindByIDs(context.Context, []uuid.UUID) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeFinder) FindAll(context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeFinder) FindAllActive(context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeFinder) Update(context.Context, *employee.Employee) error { return nil }
func (f *fakeEmployeeFinder) Delete(context.Context, string) error             { return nil }

type fakePolicySource struct {
	policy *policy.LeavePolicy
}

func (f *fakePolicySource) WithTx(tx *sql.Tx) policy.Repository               { return f }
func (f *fakePolicySource) Create(context.Context, *policy.LeavePolicy) error { return nil }
func (f *fakePolicySource) FindByID(context.Context, string) (*policy.LeavePolicy, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakePolicySource) ListAll(context.Context) ([]policy.LeavePolicy, error) { return nil, nil }
func (f *fakePolicySource) ActiveByGroup(context.Context, string) ([]policy.LeavePolicy, error) {
	return nil, nil
}
func (f *fakePolicySource) ActiveByGroupAndType(ctx context.Context, groupID, leaveType string) (*policy.LeavePolicy, error) {
	if f.policy == nil || f.policy.LeaveType != leaveType {
		return nil, gorm.ErrRecordNotFound
	}
	return f.policy, nil
}
func (f *fakePolicySource) Update(context.Context, *policy.LeavePolicy) error     { return nil }
func (f *fakePolicySource) CreateGroup(context.Context, *policy.LeaveGroup) error { return nil }
func (f *fakePolicySource) FindGroupByID(context.Context, string) (*policy.LeaveGroup, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakePolicySource) AllowedNextPolicyIDs(context.Context, uuid.UUID) ([]uuid.UUID, bool, error) {
	return nil, false, nil
}
func (f *fakePolicySource) AddAllowedNext(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type fakeSupervisorSource struct {
	chain []supervisor.Link
}

func (f *fakeSupervisorSource) WithTx(tx *sql.Tx) supervisor.Repository      { return f }
func (f *fakeSupervisorSource) Create(context.Context, *supervisor.Link) error { return nil }
func (f *fakeSupervisorSource) Delete(context.Context, string) error         { return nil }
func (f *fakeSupervisorSource) ChainForEmployee(ctx context.Context, employeeID string) ([]supervisor.Link, error) {
	return f.chain, nil
}
func (f *fakeSupervisorSource) EmployeeIDsUnder(context.Context, string) ([]uuid.UUID, error) {
	return nil, nil
}

type fakeLeaveResolver struct {
	cutoffErr error
}

func (f *fakeLeaveResolver) WeekendDays(string) map[time.Weekday]bool {
	return map[time.Weekday]bool{time.Saturday: true, time.Sunday: true}
}
func (f *fakeLeaveResolver) IsHoliday(context.Context, time.Time) (bool, error) {
	return false, nil
}
func (f *fakeLeaveResolver) CurrentResetPeriod(ctx context.Context, date time.Time) (time.Time, time.Time) {
	return time.Date(date.Year(), 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(date.Year(), 12, 31, 0, 0, 0, 0, time.UTC)
}
func (f *fakeLeaveResolver) ResetPeriodForYear(ctx context.Context, year int) (time.Time, time.Time) {
	return time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
}
func (f *fakeLeaveResolver) CutoffDay(context.Context) int { return 25 }
func (f *fakeLeaveResolver) CheckCutoff(context.Context, time.Time, time.Time) error {
	return f.cutoffErr
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error            { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id, reason string) error { return nil }

func activeEmployee(group string) *employee.Employee {
	confirmation := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	return &employee.Employee{
		ID:               uuid.New(),
		EmployeeNumber:   "EMP-000007",
		FullName:         "Nabila Hossain",
		Email:            "nabila@example.com",
		Gender:           "female",
		LeaveGroupID:     &group,
		EmploymentType:   employee.EmploymentTypeGeneral,
		EmploymentStatus: employee.EmploymentStatusRegular,
		JoiningDate:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		ConfirmationDate: &confirmation,
		OfficeDays:       employee.DefaultOfficeDays,
		OfficeTime:       employee.DefaultOfficeTime,
		Status:           employee.StatusActive,
	}
}

func casualPolicy(group string) *policy.LeavePolicy {
	return &policy.LeavePolicy{
		ID:                uuid.New(),
		LeaveType:         policy.TypeCasual,
		LeaveGroupID:      group,
		Gender:            policy.GenderAny,
		EffectiveFrom:     policy.EffectiveFromJoining,
		TotalLeaveDays:    12,
		MaxDaysPerRequest: 5,
		AllowHalfDay:      true,
		CountWeekends:     true,
		IsActive:          true,
	}
}

// dates far in the future keep the requests clear of the cutoff window and
// the one-year gates
func futureDate(days int) string {
	return time.Now().UTC().AddDate(1, 0, days).Format("2006-01-02")
}

func TestLeaveService_CreateRequest(t *testing.T) {
	t.Run("success creates request and approval chain", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		empl := activeEmployee("staff")
		repo := newFakeLeaveRepository()
		supervisors := &fakeSupervisorSource{chain: []supervisor.Link{
			{ID: uuid.New(), EmployeeID: empl.ID, SupervisorID: uuid.New(), Level: 1},
			{ID: uuid.New(), EmployeeID: empl.ID, SupervisorID: uuid.New(), Level: 2},
		}}
		svc := leave.NewService(db, repo, &fakeEmployeeFinder{empl: empl},
			&fakePolicySource{policy: casualPolicy("staff")}, supervisors,
			&fakeLeaveResolver{}, nil)

		resp, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequest{
			EmployeeID: empl.ID.String(),
			LeaveType:  policy.TypeCasual,
			FromDate:   futureDate(0),
			ToDate:     futureDate(2),
			Reason:     "family event",
		})

		assert.NoError(t, err)
		assert.Equal(t, workflow.InitialStatus(), resp.Status)
		assert.Equal(t, "3.0", resp.DaysCount)
		assert.Len(t, repo.createdApprovals, 2)
		for _, a := range repo.createdApprovals {
			assert.Equal(t, workflow.ApprovalPending, a.Status)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success no supervisors leaves request pending at level one", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		empl := activeEmployee("staff")
		repo := newFakeLeaveRepository()
		svc := leave.NewService(db, repo, &fakeEmployeeFinder{empl: empl},
			&fakePolicySource{policy: casualPolicy("staff")}, &fakeSupervisorSource{},
			&fakeLeaveResolver{}, nil)

		resp, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequest{
			EmployeeID: empl.ID.String(),
			LeaveType:  policy.TypeCasual,
			FromDate:   futureDate(0),
			ToDate:     futureDate(0),
		})

		assert.NoError(t, err)
		assert.Equal(t, "pending_L1", resp.Status)
		assert.Empty(t, repo.createdApprovals)
	})

	t.Run("success half day on single date counts half", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		empl := activeEmployee("staff")
		svc := leave.NewService(db, newFakeLeaveRepository(), &fakeEmployeeFinder{empl: empl},
			&fakePolicySource{policy: casualPolicy("staff")}, &fakeSupervisorSource{},
			&fakeLeaveResolver{}, nil)

		resp, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequest{
			EmployeeID: empl.ID.String(),
			LeaveType:  policy.TypeCasual,
			FromDate:   futureDate(0),
			ToDate:     futureDate(0),
			IsHalfDay:  true,
		})

		assert.NoError(t, err)
		assert.Equal(t, "0.5", resp.DaysCount)
	})

	t.Run("negative from after to", func(t *testing.T) {
		empl := activeEmployee("staff")
		svc := leave.NewService(nil, newFakeLeaveRepository(), &fakeEmployeeFinder{empl: empl},
			&fakePolicySource{policy: casualPolicy("staff")}, &fakeSupervisorSource{},
			&fakeLeaveResolver{}, nil)

		_, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequest{
			EmployeeID: empl.ID.String(),
			LeaveType:  policy.TypeCasual,
			FromDate:   futureDate(3),
			ToDate:     futureDate(0),
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("negative no leave group", func(t *testing.T) {
		empl := activeEmployee("staff")
		empl.LeaveGroupID = nil
		svc := leave.NewService(nil, newFakeLeaveRepository(), &fakeEmployeeFinder{empl: empl},
			&fakePolicySource{}, &fakeSupervisorSource{}, &fakeLeaveResolver{}, nil)

		_, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequest{
			EmployeeID: empl.ID.String(),
			LeaveType:  policy.TypeCasual,
			FromDate:   futureDate(0),
			ToDate:     futureDate(1),
		})

		assert.ErrorIs(t, err, leaveerrors.ErrNoLeaveGroup)
	})

	t.Run("negative gender restricted policy", func(t *testing.T) {
		empl := activeEmployee("staff")
		pol := casualPolicy("staff")
		pol.LeaveType = policy.TypePaternity
		pol.Gender = policy.GenderMale
		svc := leave.NewService(nil, newFakeLeaveRepository(), &fakeEmployeeFinder{empl: empl},
			&fakePolicySource{policy: pol}, &fakeSupervisorSource{}, &fakeLeaveResolver{}, nil)

		_, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequest{
			EmployeeID: empl.ID.String(),
			LeaveType:  policy.TypePaternity,
			FromDate:   futureDate(0),
			ToDate:     futureDate(1),
		})

		assert.ErrorIs(t, err, leaveerrors.ErrGenderNotEligible)
	})

	t.Run("negative exceeds max days per request", func(t *testing.T) {
		empl := activeEmployee("staff")
		svc := leave.NewService(nil, newFakeLeaveRepository(), &fakeEmployeeFinder{empl: empl},
			&fakePolicySource{policy: casualPolicy("staff")}, &fakeSupervisorSource{},
			&fakeLeaveResolver{}, nil)

		_, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequest{
			EmployeeID: empl.ID.String(),
			LeaveType:  policy.TypeCasual,
			FromDate:   futureDate(0),
			ToDate:     futureDate(9),
		})

		assert.ErrorIs(t, err, leaveerrors.ErrAboveMaxDays)
	})

	t.Run("negative inactive employee", func(t *testing.T) {
		empl := activeEmployee("staff")
		empl.Status = employee.StatusResigned
		svc := leave.NewService(nil, newFakeLeaveRepository(), &fakeEmployeeFinder{empl: empl},
			&fakePolicySource{policy: casualPolicy("staff")}, &fakeSupervisorSource{},
			&fakeLeaveResolver{}, nil)

		_, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequest{
			EmployeeID: empl.ID.String(),
			LeaveType:  policy.TypeCasual,
			FromDate:   futureDate(0),
			ToDate:     futureDate(1),
		})

		assert.ErrorIs(t, err, leaveerrors.ErrEmployeeInactive)
	})
}

func submitFixture(levels []int, decidedBelow int) (*fakeLeaveRepository, *leave.LeaveRequest, []leave.LeaveApproval) {
	request := &leave.LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		LeaveType:  policy.TypeCasual,
		FromDate:   time.Now().UTC().AddDate(1, 0, 0),
		ToDate:     time.Now().UTC().AddDate(1, 0, 2),
		DaysCount:  decimal.NewFromInt(3),
		Status:     workflow.InitialStatus(),
	}

	chain := make([]leave.LeaveApproval, len(levels))
	for i, level := range levels {
		status := workflow.ApprovalPending
		if level <= decidedBelow {
			status = workflow.ApprovalApproved
		}
		chain[i] = leave.LeaveApproval{
			ID:             uuid.New(),
			LeaveRequestID: request.ID,
			SupervisorID:   uuid.New(),
			Level:          level,
			Status:         status,
		}
	}

	repo := newFakeLeaveRepository()
	repo.request = request
	repo.chain = chain
	return repo, request, chain
}

func TestLeaveService_SubmitApproval(t *testing.T) {
	newService := func(repo *fakeLeaveRepository, db *sql.DB, outbox kafka.OutboxRepository) leave.Service {
		return leave.NewService(db, repo, &fakeEmployeeFinder{}, &fakePolicySource{},
			&fakeSupervisorSource{}, &fakeLeaveResolver{}, outbox)
	}

	t.Run("success approval advances to next level", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		repo, request, chain := submitFixture([]int{1, 2}, 0)
		repo.approval = &chain[0]
		outbox := &fakeOutbox{}
		svc := newService(repo, db, outbox)

		resp, err := svc.SubmitApproval(context.Background(), chain[0].ID.String(), leave.SubmitApprovalRequest{
			Decision: workflow.ApprovalApproved,
		})

		assert.NoError(t, err)
		assert.Equal(t, "pending_L2", resp.Status)
		assert.Equal(t, "pending_L2", request.Status)
		assert.Nil(t, request.DecidedAt)
		assert.Empty(t, outbox.created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success top level approval auto-approves lower pending levels", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		repo, request, chain := submitFixture([]int{1, 2, 3}, 0)
		repo.approval = &chain[2]
		outbox := &fakeOutbox{}
		svc := newService(repo, db, outbox)

		resp, err := svc.SubmitApproval(context.Background(), chain[2].ID.String(), leave.SubmitApprovalRequest{
			Decision: workflow.ApprovalApproved,
		})

		assert.NoError(t, err)
		assert.Equal(t, workflow.RequestApproved, resp.Status)
		assert.NotNil(t, request.DecidedAt)
		assert.ElementsMatch(t,
			[]uuid.UUID{chain[0].ID, chain[1].ID},
			repo.marked[workflow.ApprovalApproved],
		)
		if assert.Len(t, outbox.created, 1) {
			assert.Equal(t, "leave_request_decided", outbox.created[0].EventType)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success rejection cascades to every approval", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		repo, request, chain := submitFixture([]int{1, 2, 3}, 0)
		repo.approval = &chain[1]
		outbox := &fakeOutbox{}
		svc := newService(repo, db, outbox)

		resp, err := svc.SubmitApproval(context.Background(), chain[1].ID.String(), leave.SubmitApprovalRequest{
			Decision: workflow.ApprovalRejected,
			Comment:  "overlapping project deadline",
		})

		assert.NoError(t, err)
		assert.Equal(t, workflow.RequestRejected, resp.Status)
		assert.Len(t, repo.marked[workflow.ApprovalRejected], len(chain))
		if assert.Len(t, outbox.created, 1) {
			assert.Equal(t, workflow.RequestRejected, request.Status)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative approval already decided", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		repo, _, chain := submitFixture([]int{1, 2}, 1)
		repo.approval = &chain[0]
		svc := newService(repo, db, nil)

		_, err = svc.SubmitApproval(context.Background(), chain[0].ID.String(), leave.SubmitApprovalRequest{
			Decision: workflow.ApprovalApproved,
		})

		assert.ErrorIs(t, err, workflow.ErrApprovalAlreadyDecided)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative request already decided", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		repo, request, chain := submitFixture([]int{1}, 0)
		request.Status = workflow.RequestApproved
		repo.approval = &chain[0]
		svc := newService(repo, db, nil)

		_, err = svc.SubmitApproval(context.Background(), chain[0].ID.String(), leave.SubmitApprovalRequest{
			Decision: workflow.ApprovalApproved,
		})

		assert.ErrorIs(t, err, leaveerrors.ErrRequestAlreadyDecided)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative unknown approval id", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		svc := newService(newFakeLeaveRepository(), db, nil)

		_, err = svc.SubmitApproval(context.Background(), uuid.NewString(), leave.SubmitApprovalRequest{
			Decision: workflow.ApprovalApproved,
		})

		assert.ErrorIs(t, err, leaveerrors.ErrApprovalNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
