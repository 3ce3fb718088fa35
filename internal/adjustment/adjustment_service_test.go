package adjustment_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-leavehub/internal/adjustment"
	adjustmenterrors "go-leavehub/internal/adjustment/errors"
	"go-leavehub/internal/employee"
	"go-leavehub/internal/supervisor"
	"go-leavehub/internal/workflow"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeAdjustmentRepository struct {
	adjustment *adjustment.AttendanceAdjustment
	approval   *adjustment.AdjustmentApproval
	chain      []adjustment.AdjustmentApproval

	createErr        error
	created          *adjustment.AttendanceAdjustment
	createdApprovals []adjustment.AdjustmentApproval
	marked           map[string][]uuid.UUID
}

func newFakeAdjustmentRepository() *fakeAdjustmentRepository {
	return &fakeAdjustmentRepository{marked: map[string][]uuid.UUID{}}
}

func (f *fakeAdjustmentRepository) WithTx(tx *sql.Tx) adjustment.Repository { return f }
func (f *fakeAdjustmentRepository) Create(ctx context.Context, adj *adjustment.AttendanceAdjustment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = adj
	return nil
}
func (f *fakeAdjustmentRepository) FindByID(ctx context.Context, id string) (*adjustment.AttendanceAdjustment, error) {
	if f.adjustment == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.adjustment, nil
}
func (f *fakeAdjustmentRepository) FindByIDLocked(ctx context.Context, id uuid.UUID) (*adjustment.AttendanceAdjustment, error) {
	if f.adjustment == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.adjustment, nil
}
func (f *fakeAdjustmentRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]adjustment.AttendanceAdjustment, error) {
	return nil, nil
}
func (f *fakeAdjustmentRepository) Update(ctx context.Context, adj *adjustment.AttendanceAdjustment) error {
	return nil
}
func (f *fakeAdjustmentRepository) CreateApprovals(ctx context.Context, approvals []adjustment.AdjustmentApproval) error {
	f.createdApprovals = approvals
	return nil
}
func (f *fakeAdjustmentRepository) FindApprovalByID(ctx context.Context, id string) (*adjustment.AdjustmentApproval, error) {
	if f.approval == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.approval, nil
}
func (f *fakeAdjustmentRepository) ApprovalsForAdjustmentLocked(ctx context.Context, adjustmentID uuid.UUID) ([]adjustment.AdjustmentApproval, error) {
	return f.chain, nil
}
func (f *fakeAdjustmentRepository) PendingApprovalsBySupervisor(ctx context.Context, supervisorID uuid.UUID) ([]adjustment.AdjustmentApproval, error) {
	return nil, nil
}
func (f *fakeAdjustmentRepository) UpdateApproval(ctx context.Context, approval *adjustment.AdjustmentApproval) error {
	return nil
}
func (f *fakeAdjustmentRepository) MarkPendingApprovals(ctx context.Context, ids []uuid.UUID, status string, decidedAt time.Time) error {
	if len(ids) > 0 {
		f.marked[status] = append(f.marked[status], ids...)
	}
	return nil
}

type fakeEmployeeSource struct {
	empl *employee.Employee
}

func (f *fakeEmployeeSource) WithTx(tx *sql.Tx) employee.Repository           { return f }
func (f *fakeEmployeeSource) Create(context.Context, *employee.Employee) error { return nil }
func (f *fakeEmployeeSource) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.empl == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.empl, nil
}
func (f *fakeEmployeeSource) FindByIDs(context.Context, []uuid.UUID) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeSource) FindAll(context.Context) ([]employee.Employee, error) { return nil, nil }
func (f *fakeEmployeeSource) FindAllActive(context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeSource) Update(context.Context, *employee.Employee) error { return nil }
func (f *fakeEmployeeSource) Delete(context.Context, string) error             { return nil }

type fakeChainSource struct {
	chain []supervisor.Link
}

func (f *fakeChainSource) WithTx(tx *sql.Tx) supervisor.Repository        { return f }
func (f *fakeChainSource) Create(context.Context, *supervisor.Link) error { return nil }
func (f *fakeChainSource) Delete(context.Context, string) error           { return nil }
func (f *fakeChainSource) ChainForEmployee(ctx context.Context, employeeID string) ([]supervisor.Link, error) {
	return f.chain, nil
}
func (f *fakeChainSource) EmployeeIDsUnder(context.Context, string) ([]uuid.UUID, error) {
	return nil, nil
}

func TestAdjustmentService_Create(t *testing.T) {
	empl := &employee.Employee{ID: uuid.New(), Status: employee.StatusActive}

	t.Run("success creates adjustment with approval chain", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := newFakeAdjustmentRepository()
		chain := &fakeChainSource{chain: []supervisor.Link{
			{ID: uuid.New(), EmployeeID: empl.ID, SupervisorID: uuid.New(), Level: 1},
		}}
		svc := adjustment.NewService(db, repo, &fakeEmployeeSource{empl: empl}, chain)

		resp, err := svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
			EmployeeID:      empl.ID.String(),
			AttendanceDate:  "2025-08-11",
			AdjustmentType:  adjustment.TypeForgotSignIn,
			RequestedInTime: "09:05",
			Reason:          "badge left at home",
		})

		assert.NoError(t, err)
		assert.Equal(t, workflow.InitialStatus(), resp.Status)
		assert.Len(t, repo.createdApprovals, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative unknown adjustment type", func(t *testing.T) {
		svc := adjustment.NewService(nil, newFakeAdjustmentRepository(), &fakeEmployeeSource{empl: empl}, &fakeChainSource{})

		_, err := svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
			EmployeeID:     empl.ID.String(),
			AttendanceDate: "2025-08-11",
			AdjustmentType: "overslept",
		})

		assert.ErrorIs(t, err, adjustmenterrors.ErrUnknownAdjustmentType)
	})

	t.Run("negative invalid requested time", func(t *testing.T) {
		svc := adjustment.NewService(nil, newFakeAdjustmentRepository(), &fakeEmployeeSource{empl: empl}, &fakeChainSource{})

		_, err := svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
			EmployeeID:      empl.ID.String(),
			AttendanceDate:  "2025-08-11",
			AdjustmentType:  adjustment.TypeTrafficDelay,
			RequestedInTime: "9am",
		})

		assert.ErrorIs(t, err, adjustmenterrors.ErrInvalidTimeFrame)
	})

	t.Run("negative duplicate adjustment for same day and type", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := newFakeAdjustmentRepository()
		repo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "uq_adjustment_per_day"}
		svc := adjustment.NewService(db, repo, &fakeEmployeeSource{empl: empl}, &fakeChainSource{})

		_, err = svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
			EmployeeID:     empl.ID.String(),
			AttendanceDate: "2025-08-11",
			AdjustmentType: adjustment.TypeForgotSignOut,
		})

		assert.ErrorIs(t, err, adjustmenterrors.ErrDuplicateAdjustment)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAdjustmentService_SubmitApproval(t *testing.T) {
	t.Run("success rejection cascades through chain", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		adj := &adjustment.AttendanceAdjustment{
			ID:             uuid.New(),
			EmployeeID:     uuid.New(),
			AttendanceDate: time.Date(2025, 8, 11, 0, 0, 0, 0, time.UTC),
			AdjustmentType: adjustment.TypeForgotSignIn,
			Status:         workflow.InitialStatus(),
		}
		chain := []adjustment.AdjustmentApproval{
			{ID: uuid.New(), AdjustmentID: adj.ID, SupervisorID: uuid.New(), Level: 1, Status: workflow.ApprovalPending},
			{ID: uuid.New(), AdjustmentID: adj.ID, SupervisorID: uuid.New(), Level: 2, Status: workflow.ApprovalPending},
		}
		repo := newFakeAdjustmentRepository()
		repo.adjustment = adj
		repo.chain = chain
		repo.approval = &chain[0]
		svc := adjustment.NewService(db, repo, &fakeEmployeeSource{}, &fakeChainSource{})

		resp, err := svc.SubmitApproval(context.Background(), chain[0].ID.String(), adjustment.SubmitApprovalRequest{
			Decision: workflow.ApprovalRejected,
			Comment:  "attendance record already corrected",
		})

		assert.NoError(t, err)
		assert.Equal(t, workflow.RequestRejected, resp.Status)
		assert.Len(t, repo.marked[workflow.ApprovalRejected], 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative adjustment already decided", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		adj := &adjustment.AttendanceAdjustment{
			ID:     uuid.New(),
			Status: workflow.RequestApproved,
		}
		approval := &adjustment.AdjustmentApproval{
			ID:           uuid.New(),
			AdjustmentID: adj.ID,
			Level:        1,
			Status:       workflow.ApprovalPending,
		}
		repo := newFakeAdjustmentRepository()
		repo.adjustment = adj
		repo.approval = approval
		svc := adjustment.NewService(db, repo, &fakeEmployeeSource{}, &fakeChainSource{})

		_, err = svc.SubmitApproval(context.Background(), approval.ID.String(), adjustment.SubmitApprovalRequest{
			Decision: workflow.ApprovalApproved,
		})

		assert.ErrorIs(t, err, adjustmenterrors.ErrAlreadyDecided)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
